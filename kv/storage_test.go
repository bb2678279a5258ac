package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func getHeaders() *Storage {
	return New().
		Add("host", "example.com").
		Add("connection", "Upgrade").
		Add("upgrade", "websocket")
}

func TestStorage(t *testing.T) {
	t.Run("lookup folds case", func(t *testing.T) {
		kv := getHeaders()

		require.Equal(t, "example.com", kv.Value("Host"))
		require.True(t, kv.Has("CONNECTION"))
		require.False(t, kv.Has("origin"))
		require.Equal(t, "none", kv.ValueOr("origin", "none"))
	})

	t.Run("set overwrites in place", func(t *testing.T) {
		kv := getHeaders().Set("Connection", "close")

		require.Equal(t, 3, kv.Len())
		require.Equal(t, "close", kv.Value("connection"))
		// the entry keeps its position and takes the new spelling of the key
		require.Equal(t, Pair{"Connection", "close"}, kv.Expose()[1])
	})

	t.Run("set new key appends", func(t *testing.T) {
		kv := getHeaders().Set("origin", "http://example.com")

		require.Equal(t, 4, kv.Len())
		require.Equal(t, "http://example.com", kv.Value("origin"))
	})

	t.Run("pairs preserve insertion order", func(t *testing.T) {
		var keys []string
		for key, value := range getHeaders().Pairs() {
			keys = append(keys, key)
			require.NotEmpty(t, value)
		}

		require.Equal(t, []string{"host", "connection", "upgrade"}, keys)
	})

	t.Run("keys are unique", func(t *testing.T) {
		kv := getHeaders().Add("HOST", "other.com")

		require.Equal(t, []string{"host", "connection", "upgrade"}, slices.Collect(kv.Keys()))
		require.Equal(t, []string{"example.com", "other.com"}, slices.Collect(kv.Values("host")))
	})

	t.Run("clone is deep", func(t *testing.T) {
		kv := getHeaders()
		clone := kv.Clone()
		kv.Set("host", "mutated")

		require.Equal(t, "example.com", clone.Value("host"))
	})

	t.Run("clear", func(t *testing.T) {
		kv := getHeaders().Clear()

		require.True(t, kv.Empty())
		require.Equal(t, 0, kv.Len())
	})
}
