package repository

import (
	"context"
	"fmt"

	"menu-kart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const schema = `
	CREATE TABLE IF NOT EXISTS restaurants (
		id VARCHAR(100) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		tagline VARCHAR(255) NOT NULL DEFAULT '',
		eta VARCHAR(50) NOT NULL DEFAULT '',
		image_url VARCHAR(500) NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS menu_sections (
		restaurant_id VARCHAR(100) NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		id VARCHAR(100) NOT NULL,
		title VARCHAR(255) NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (restaurant_id, id)
	);

	CREATE TABLE IF NOT EXISTS menu_items (
		restaurant_id VARCHAR(100) NOT NULL,
		section_id VARCHAR(100) NOT NULL,
		id VARCHAR(100) NOT NULL,
		title VARCHAR(255) NOT NULL,
		in_stock BOOLEAN NOT NULL DEFAULT FALSE,
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		position INTEGER NOT NULL,
		PRIMARY KEY (restaurant_id, section_id, id),
		FOREIGN KEY (restaurant_id, section_id)
			REFERENCES menu_sections(restaurant_id, id) ON DELETE CASCADE
	);
`

// catalogRepository implements the CatalogRepository interface using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// Migrate creates the catalog tables if they do not exist.
func (r *catalogRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create catalog schema")
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// ListRestaurants retrieves every restaurant with its full menu.
func (r *catalogRepository) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	return r.fetch(ctx, "")
}

// GetRestaurant retrieves a single restaurant with its menu.
func (r *catalogRepository) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	restaurants, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(restaurants) == 0 {
		r.logger.Debug().Str("restaurant_id", id).Msg("restaurant not found")
		return nil, nil
	}

	return &restaurants[0], nil
}

// fetch loads restaurants, all of them when id is empty, and assembles
// their menus in position order.
func (r *catalogRepository) fetch(ctx context.Context, id string) ([]model.Restaurant, error) {
	filter := ""
	args := []any{}
	if id != "" {
		filter = "WHERE restaurant_id = $1"
		args = append(args, id)
	}

	restaurantQuery := `
		SELECT id, name, tagline, eta, image_url
		FROM restaurants
	`
	if id != "" {
		restaurantQuery += " WHERE id = $1"
	}
	restaurantQuery += " ORDER BY position, id"

	rows, err := r.pool.Query(ctx, restaurantQuery, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", id).Msg("failed to query restaurants")
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}

	restaurants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Restaurant, error) {
		var rest model.Restaurant
		err := row.Scan(&rest.ID, &rest.Name, &rest.Tagline, &rest.ETA, &rest.ImageURL)
		rest.Menu = []model.Section{}
		return rest, err
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan restaurant rows")
		return nil, fmt.Errorf("failed to scan restaurants: %w", err)
	}

	if len(restaurants) == 0 {
		return restaurants, nil
	}

	index := make(map[string]int, len(restaurants))
	for i, rest := range restaurants {
		index[rest.ID] = i
	}

	// sectionPos maps restaurant id + section id to the section's slice index.
	sectionPos := make(map[[2]string]int)

	sectionRows, err := r.pool.Query(ctx, `
		SELECT restaurant_id, id, title
		FROM menu_sections
		`+filter+`
		ORDER BY restaurant_id, position, id
	`, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu sections")
		return nil, fmt.Errorf("failed to query menu sections: %w", err)
	}
	defer sectionRows.Close()

	for sectionRows.Next() {
		var restaurantID string
		s := model.Section{Items: []model.Item{}}
		if err := sectionRows.Scan(&restaurantID, &s.ID, &s.Title); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu section row")
			return nil, fmt.Errorf("failed to scan menu section: %w", err)
		}
		i, ok := index[restaurantID]
		if !ok {
			continue
		}
		sectionPos[[2]string{restaurantID, s.ID}] = len(restaurants[i].Menu)
		restaurants[i].Menu = append(restaurants[i].Menu, s)
	}
	if err := sectionRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu section rows")
		return nil, fmt.Errorf("error iterating menu sections: %w", err)
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT restaurant_id, section_id, id, title, in_stock, quantity
		FROM menu_items
		`+filter+`
		ORDER BY restaurant_id, section_id, position, id
	`, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var restaurantID, sectionID string
		var it model.Item
		if err := itemRows.Scan(&restaurantID, &sectionID, &it.ID, &it.Title, &it.InStock, &it.Quantity); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		i, ok := index[restaurantID]
		if !ok {
			continue
		}
		pos, ok := sectionPos[[2]string{restaurantID, sectionID}]
		if !ok {
			continue
		}
		restaurants[i].Menu[pos].Items = append(restaurants[i].Menu[pos].Items, it)
	}
	if err := itemRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return restaurants, nil
}

// Seed replaces the stored definition of each given restaurant.
func (r *catalogRepository) Seed(ctx context.Context, restaurants []model.Restaurant) error {
	for i := range restaurants {
		if err := model.ValidateRestaurant(&restaurants[i]); err != nil {
			return err
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	batch := &pgx.Batch{}
	for pos, rest := range restaurants {
		batch.Queue(`DELETE FROM restaurants WHERE id = $1`, rest.ID)
		batch.Queue(`
			INSERT INTO restaurants (id, name, tagline, eta, image_url, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, rest.ID, rest.Name, rest.Tagline, rest.ETA, rest.ImageURL, pos)

		for sPos, s := range rest.Menu {
			batch.Queue(`
				INSERT INTO menu_sections (restaurant_id, id, title, position)
				VALUES ($1, $2, $3, $4)
			`, rest.ID, s.ID, s.Title, sPos)

			for iPos, it := range s.Items {
				batch.Queue(`
					INSERT INTO menu_items (restaurant_id, section_id, id, title, in_stock, quantity, position)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
				`, rest.ID, s.ID, it.ID, it.Title, it.InStock, it.Quantity, iPos)
			}
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Error().Err(err).Int("restaurants", len(restaurants)).Msg("failed to seed catalog")
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().Int("restaurants", len(restaurants)).Msg("catalog seeded")

	return nil
}
