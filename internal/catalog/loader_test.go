package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"menu-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCatalogFile writes restaurants to a catalog file in a temp
// directory, gzipped when the name ends in ".gz".
func createTestCatalogFile(t *testing.T, name string, restaurants []model.Restaurant) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, WriteFile(path, restaurants))
	return path
}

func TestWriteFile_GzipRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.json.gz")
	require.NoError(t, WriteFile(path, SampleRestaurants()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// gzip magic number
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	restaurants, err := decodeMaybeGzip(file, path)
	require.NoError(t, err)
	assert.Equal(t, SampleRestaurants(), restaurants)
}

func TestFileLoader_Load(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		file string
	}{
		{name: "Plain JSON", file: "catalog.json"},
		{name: "Gzipped JSON", file: "catalog.json.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTestCatalogFile(t, tt.file, SampleRestaurants())

			restaurants, err := NewFileLoader(logger).Load(ctx, path)

			require.NoError(t, err)
			assert.Equal(t, SampleRestaurants(), restaurants)
		})
	}
}

func TestFileLoader_MissingInStockMeansSoldOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := `{"restaurants":[{"id":"r","name":"R","tagline":"","eta":"","menu":[
		{"id":"s","title":"S","items":[{"id":"a","title":"A"},{"id":"b","title":"B","inStock":true,"quantity":2}]}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	restaurants, err := NewFileLoader(zerolog.Nop()).Load(context.Background(), path)

	require.NoError(t, err)
	items := restaurants[0].Menu[0].Items
	assert.Equal(t, model.Item{ID: "a", Title: "A"}, items[0])
	assert.Equal(t, model.Item{ID: "b", Title: "B", InStock: true, Quantity: 2}, items[1])
}

func TestFileLoader_Errors(t *testing.T) {
	logger := zerolog.Nop()
	dir := t.TempDir()

	notGzip := filepath.Join(dir, "bad.json.gz")
	require.NoError(t, os.WriteFile(notGzip, []byte("plain text"), 0o644))

	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"restaurants": [`), 0o644))

	unknownField := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknownField, []byte(`{"shops": []}`), 0o644))

	tests := []struct {
		name     string
		path     string
		errorMsg string
	}{
		{name: "Missing file", path: filepath.Join(dir, "missing.json"), errorMsg: "failed to open catalog file"},
		{name: "Invalid gzip", path: notGzip, errorMsg: "gzip"},
		{name: "Invalid JSON", path: badJSON, errorMsg: "failed to decode catalog"},
		{name: "Unknown field", path: unknownField, errorMsg: "unknown field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restaurants, err := NewFileLoader(logger).Load(context.Background(), tt.path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			assert.Nil(t, restaurants)
		})
	}
}

func TestFileLoader_CancelledContext(t *testing.T) {
	path := createTestCatalogFile(t, "catalog.json", SampleRestaurants())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader(zerolog.Nop()).Load(ctx, path)

	assert.ErrorIs(t, err, context.Canceled)
}
