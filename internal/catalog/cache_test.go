package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"menu-kart/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProvider is a mock implementation of Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockProvider) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestCachedProvider_ReadThrough(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	client.Del(ctx, cacheListKey, cacheRestaurantKey+"joes-gelato", cacheRestaurantKey+"nowhere")

	sample := SampleRestaurants()
	next := new(MockProvider)
	next.On("ListRestaurants", mock.Anything).Return(sample, nil).Once()
	next.On("GetRestaurant", mock.Anything, "joes-gelato").Return(&sample[0], nil).Once()
	next.On("GetRestaurant", mock.Anything, "nowhere").Return(nil, nil).Twice()

	provider := NewCachedProvider(next, client, time.Minute, zerolog.Nop())

	for i := 0; i < 2; i++ {
		restaurants, err := provider.ListRestaurants(ctx)
		require.NoError(t, err)
		assert.Equal(t, sample, restaurants)

		r, err := provider.GetRestaurant(ctx, "joes-gelato")
		require.NoError(t, err)
		assert.Equal(t, sample[0], *r)

		missing, err := provider.GetRestaurant(ctx, "nowhere")
		require.NoError(t, err)
		assert.Nil(t, missing)
	}

	ttl, err := client.TTL(ctx, cacheListKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	next.AssertExpectations(t)
}

func TestCachedProvider_RedisDownFallsThrough(t *testing.T) {
	// Nothing listens on this port, so every redis call fails fast.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	ctx := context.Background()
	sample := SampleRestaurants()

	next := new(MockProvider)
	next.On("ListRestaurants", mock.Anything).Return(sample, nil).Twice()
	next.On("GetRestaurant", mock.Anything, "sushi-haven").Return(&sample[3], nil).Once()

	provider := NewCachedProvider(next, client, time.Minute, zerolog.Nop())

	for i := 0; i < 2; i++ {
		restaurants, err := provider.ListRestaurants(ctx)
		require.NoError(t, err)
		assert.Len(t, restaurants, 7)
	}

	r, err := provider.GetRestaurant(ctx, "sushi-haven")
	require.NoError(t, err)
	assert.Equal(t, "Sushi Haven", r.Name)

	next.AssertExpectations(t)
}
