package catalog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"menu-kart/internal/model"
)

// Document is the on-disk catalog format.
type Document struct {
	Restaurants []model.Restaurant `json:"restaurants"`
}

// Decode reads a JSON catalog document.
func Decode(r io.Reader) ([]model.Restaurant, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return doc.Restaurants, nil
}

// Encode writes restaurants as an indented JSON catalog document.
func Encode(w io.Writer, restaurants []model.Restaurant) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Restaurants: restaurants}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

// decodeMaybeGzip decodes r, gunzipping first when name ends in ".gz".
func decodeMaybeGzip(r io.Reader, name string) ([]model.Restaurant, error) {
	if !strings.HasSuffix(name, ".gz") {
		return Decode(r)
	}

	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
	}
	defer gzipReader.Close()

	return Decode(gzipReader)
}

// WriteFile writes restaurants to path as a catalog document, gzipped when
// path ends in ".gz". Parent directories are created as needed.
func WriteFile(path string, restaurants []model.Restaurant) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Encode(file, restaurants)
	}

	gzipWriter := gzip.NewWriter(file)
	if err := Encode(gzipWriter, restaurants); err != nil {
		return err
	}
	return gzipWriter.Close()
}
