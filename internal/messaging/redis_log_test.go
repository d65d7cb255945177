package messaging

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLog(t *testing.T) *RedisLog {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLog(client, "test-session")
}

func TestRedisLogRoundTrip(t *testing.T) {
	log := newTestRedisLog(t)

	recs := []Record{
		{ID: "a", CustomerID: 1, Name: "A", MessageType: "upsell", Content: "one", SentAt: time.Now().UTC().Truncate(time.Second), Status: StatusSuccess},
		{ID: "b", CustomerID: 2, Name: "B", MessageType: "upsell", Content: "two", SentAt: time.Now().UTC().Truncate(time.Second), Status: StatusFailed},
	}
	for _, rec := range recs {
		require.NoError(t, log.Append(rec))
	}

	n, err := log.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := log.Records()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, StatusFailed, got[1].Status)
}

func TestRedisLogEmpty(t *testing.T) {
	log := newTestRedisLog(t)

	n, err := log.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := log.Records()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisLogPreservesBatchOrder(t *testing.T) {
	log := newTestRedisLog(t)
	for i := 0; i < 25; i++ {
		require.NoError(t, log.Append(Record{ID: string(rune('a' + i)), CustomerID: i}))
	}
	got, err := log.Records()
	require.NoError(t, err)
	require.Len(t, got, 25)
	for i, rec := range got {
		assert.Equal(t, i, rec.CustomerID)
	}
}
