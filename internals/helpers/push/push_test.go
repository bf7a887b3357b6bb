// file: internals/helpers/push/push_test.go
package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkTokens(t *testing.T) {
	tok := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "t"
		}
		return out
	}

	t.Run("kosong", func(t *testing.T) {
		assert.Nil(t, ChunkTokens(nil, 2))
		assert.Nil(t, ChunkTokens([]string{}, 2))
	})

	t.Run("pas satu batch", func(t *testing.T) {
		got := ChunkTokens(tok(3), 3)
		assert.Len(t, got, 1)
		assert.Len(t, got[0], 3)
	})

	t.Run("sisa masuk batch terakhir", func(t *testing.T) {
		got := ChunkTokens(tok(7), 3)
		assert.Len(t, got, 3)
		assert.Len(t, got[0], 3)
		assert.Len(t, got[1], 3)
		assert.Len(t, got[2], 1)
	})

	t.Run("size tidak valid fallback ke MaxTokensPerBatch", func(t *testing.T) {
		got := ChunkTokens(tok(MaxTokensPerBatch+1), 0)
		assert.Len(t, got, 2)
		assert.Len(t, got[0], MaxTokensPerBatch)
		assert.Len(t, got[1], 1)
	})
}
