package scores_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.UnixMilli(1_700_000_000_000).UTC()

// runStoreContract checks the behavior every backend shares.
func runStoreContract(t *testing.T, store scores.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		top, err := store.Top(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("rejects entries without a player", func(t *testing.T) {
		_, err := store.Record(ctx, scores.Entry{Player: "  ", Score: 100})
		assert.Error(t, err)
	})

	t.Run("ranks by score", func(t *testing.T) {
		recorded := map[int]scores.Entry{}
		for i, score := range []int{300, 100, 500} {
			entry, err := store.Record(ctx, scores.Entry{
				Player:   "ada",
				Score:    score,
				Lines:    score / 100,
				Level:    1,
				Pieces:   10 + i,
				Duration: 90 * time.Second,
				PlayedAt: baseTime.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, entry.ID)
			recorded[score] = entry
		}

		top, err := store.Top(ctx, 2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, recorded[500], top[0])
		assert.Equal(t, recorded[300], top[1])

		all, err := store.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, 100, all[2].Score)
		assert.Equal(t, 90*time.Second, all[2].Duration)
		assert.Equal(t, baseTime.Add(time.Minute), all[2].PlayedAt)
	})

	t.Run("non positive limit", func(t *testing.T) {
		top, err := store.Top(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("fills timestamp", func(t *testing.T) {
		entry, err := store.Record(ctx, scores.Entry{Player: "bob", Score: 0})
		require.NoError(t, err)
		assert.False(t, entry.PlayedAt.IsZero())
	})
}
