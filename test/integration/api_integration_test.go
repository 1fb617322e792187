package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menu-kart/internal/handler"
	"menu-kart/internal/menu"
	"menu-kart/internal/model"
	"menu-kart/internal/router"
	"menu-kart/internal/service"
	"menu-kart/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiKey = "test-api-key"

func setupTestServer(t *testing.T, testDB *TestDB, opts menu.Options) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	store := session.NewStore(time.Hour, logger)
	catalogService := service.NewCatalogService(testDB.Repo, logger)
	sessionService := service.NewSessionService(testDB.Repo, store, opts, logger)

	return router.New(
		handler.NewRestaurantHandler(catalogService, logger),
		handler.NewSessionHandler(sessionService, logger),
		apiKey,
		logger,
	)
}

func call(t *testing.T, server http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	return w
}

func TestCatalogAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB, menu.DefaultOptions())

	t.Run("GET /api/restaurants pages through Postgres", func(t *testing.T) {
		w := call(t, server, http.MethodGet, "/api/restaurants?limit=2&offset=5", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var summaries []model.RestaurantSummary
		require.NoError(t, json.NewDecoder(w.Body).Decode(&summaries))
		require.Len(t, summaries, 2)
		assert.Equal(t, "curry-house", summaries[0].ID)
		assert.Equal(t, "taco-fiesta", summaries[1].ID)
	})

	t.Run("GET /api/restaurants/{id} preserves menu order", func(t *testing.T) {
		w := call(t, server, http.MethodGet, "/api/restaurants/joes-pasta", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var r model.Restaurant
		require.NoError(t, json.NewDecoder(w.Body).Decode(&r))
		require.Len(t, r.Menu, 3)
		assert.Equal(t, []string{"pasta", "pizza", "salad"}, []string{r.Menu[0].ID, r.Menu[1].ID, r.Menu[2].ID})
		assert.False(t, r.Menu[0].Items[2].InStock)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		w := call(t, server, http.MethodGet, "/api/restaurants/nowhere", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSessionAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB, menu.Options{MaxQuantity: 3})

	w := call(t, server, http.MethodPost, "/api/sessions", model.StartSessionRequest{RestaurantID: "sushi-haven"})
	require.Equal(t, http.StatusCreated, w.Code)

	var view model.SessionView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))

	itemPath := func(section, item, action string) string {
		return fmt.Sprintf("/api/sessions/%s/sections/%s/items/%s/%s", view.ID, section, item, action)
	}

	for range 3 {
		w = call(t, server, http.MethodPost, itemPath("nigiri", "salmon-nigiri", "increment"), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = call(t, server, http.MethodPost, itemPath("nigiri", "salmon-nigiri", "increment"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, server, http.MethodPost, itemPath("nigiri", "eel-nigiri", "increment"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, server, http.MethodPost, itemPath("nigiri", "salmon-nigiri", "cart"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var line model.CartLine
	require.NoError(t, json.NewDecoder(w.Body).Decode(&line))
	assert.Equal(t, 3, line.Quantity)

	// Catalog changes after a session starts do not leak into it.
	r, err := testDB.Repo.GetRestaurant(context.Background(), "sushi-haven")
	require.NoError(t, err)
	r.Menu[1].Items[2].InStock = true
	require.NoError(t, testDB.Repo.Seed(context.Background(), []model.Restaurant{*r}))

	w = call(t, server, http.MethodPost, itemPath("nigiri", "eel-nigiri", "increment"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, server, http.MethodGet, "/api/sessions/"+view.ID.String()+"/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cart []model.CartLine
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cart))
	require.Len(t, cart, 1)
	assert.Equal(t, "salmon-nigiri", cart[0].ItemID)
}
