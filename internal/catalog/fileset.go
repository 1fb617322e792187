package catalog

import (
	"context"
	"fmt"
	"sync"

	"menu-kart/internal/model"

	"github.com/rs/zerolog"
)

// FileSetConfig lists the catalog files merged into one catalog.
type FileSetConfig struct {
	// FilePaths are loaded concurrently and merged in this order.
	FilePaths []string
}

// DefaultFileSetConfig returns the default file set configuration.
func DefaultFileSetConfig() *FileSetConfig {
	return &FileSetConfig{
		FilePaths: []string{"data/catalog/restaurants.json.gz"},
	}
}

// NewFileSetProvider loads every configured catalog file through loader
// and serves the merged result. A restaurant ID appearing in more than one
// file is an error.
func NewFileSetProvider(ctx context.Context, cfg *FileSetConfig, loader Loader, logger zerolog.Logger) (Provider, error) {
	if cfg == nil {
		cfg = DefaultFileSetConfig()
	}
	if len(cfg.FilePaths) == 0 {
		return nil, fmt.Errorf("at least one catalog file is required")
	}

	logger = logger.With().Str("component", "catalog-fileset").Logger()

	logger.Info().
		Int("file_count", len(cfg.FilePaths)).
		Msg("loading catalog files")

	type loadResult struct {
		index       int
		restaurants []model.Restaurant
		err         error
	}

	resultChan := make(chan loadResult, len(cfg.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range cfg.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			restaurants, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index:       index,
				restaurants: restaurants,
				err:         err,
			}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(cfg.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	var merged []model.Restaurant
	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", cfg.FilePaths[i]).
				Msg("failed to load catalog file")
			return nil, fmt.Errorf("failed to load catalog file %s: %w", cfg.FilePaths[i], result.err)
		}
		merged = append(merged, result.restaurants...)
	}

	provider, err := NewStaticProvider(merged)
	if err != nil {
		logger.Error().Err(err).Msg("catalog files failed validation")
		return nil, err
	}

	logger.Info().
		Int("restaurants", len(merged)).
		Msg("catalog loaded successfully")

	return provider, nil
}
