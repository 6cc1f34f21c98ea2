package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedTruck struct {
	Number  string `json:"number"`
	Company string `json:"company"`
}

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewManager(client, "truckops:"), mr
}

func TestManagerSetGet(t *testing.T) {
	manager, _ := newTestManager(t)

	truck := cachedTruck{Number: "T-1021", Company: "Jawhara Transport"}
	require.NoError(t, manager.Set("trucks:T-1021", truck, time.Minute))

	var loaded cachedTruck
	hit, err := manager.Get("trucks:T-1021", &loaded)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, truck, loaded)
}

func TestManagerGetMiss(t *testing.T) {
	manager, _ := newTestManager(t)

	var loaded cachedTruck
	hit, err := manager.Get("trucks:missing", &loaded)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestManagerDelete(t *testing.T) {
	manager, _ := newTestManager(t)

	require.NoError(t, manager.Set("trucks:all", []cachedTruck{{Number: "T-1"}}, time.Minute))
	require.NoError(t, manager.Delete("trucks:all", "trucks:missing"))

	var loaded []cachedTruck
	hit, err := manager.Get("trucks:all", &loaded)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestManagerTTLExpiry(t *testing.T) {
	manager, mr := newTestManager(t)

	require.NoError(t, manager.Set("trucks:T-9", cachedTruck{Number: "T-9"}, 50*time.Millisecond))
	mr.FastForward(100 * time.Millisecond)

	var loaded cachedTruck
	hit, err := manager.Get("trucks:T-9", &loaded)
	require.NoError(t, err)
	assert.False(t, hit)
}
