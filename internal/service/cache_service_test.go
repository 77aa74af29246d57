package service

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type mockCacheRepo struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	deleted []string
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mockCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *mockCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	for key := range m.data {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.data, key)
		}
	}
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newMockCacheRepo()
	cache := NewCacheService(repo, nil, time.Minute, nil, true)
	ctx := context.Background()

	var miss []string
	hit, err := cache.Get(ctx, "autocomplete:courses:CS", &miss)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "autocomplete:courses:CS", []string{"CS701"}, 0))
	assert.Equal(t, time.Minute, repo.ttls["autocomplete:courses:CS"])

	var got []string
	hit, err = cache.Get(ctx, "autocomplete:courses:CS", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"CS701"}, got)
}

func TestCacheServiceInvalidate(t *testing.T) {
	repo := newMockCacheRepo()
	cache := NewCacheService(repo, nil, time.Minute, nil, true)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "schedule:day:monday", "payload", 0))
	require.NoError(t, cache.Invalidate(ctx, "schedule:*"))

	var got string
	hit, err := cache.Get(ctx, "schedule:day:monday", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"schedule:*"}, repo.deleted)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := newMockCacheRepo()
	cache := NewCacheService(repo, nil, time.Minute, nil, false)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	assert.Empty(t, repo.data)

	var got string
	hit, err := cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceNilReceiver(t *testing.T) {
	var cache *CacheService
	ctx := context.Background()

	assert.False(t, cache.Enabled())
	require.NoError(t, cache.Set(ctx, "k", "v", 0))
	require.NoError(t, cache.Invalidate(ctx, "*"))

	var got string
	hit, err := cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceSurfacesBackendErrors(t *testing.T) {
	repo := newMockCacheRepo()
	repo.getErr = errors.New("connection refused")
	cache := NewCacheService(repo, nil, time.Minute, nil, true)

	var got string
	hit, err := cache.Get(context.Background(), "k", &got)
	require.Error(t, err)
	assert.False(t, hit)
}
