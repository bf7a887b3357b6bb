// file: internals/features/academics/membership/service/membership_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDedupUUIDs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("duplikat dibuang, urutan pertama dipertahankan", func(t *testing.T) {
		got := dedupUUIDs([]uuid.UUID{a, b, a, c, b})
		assert.Equal(t, []uuid.UUID{a, b, c}, got)
	})

	t.Run("tanpa duplikat tidak berubah", func(t *testing.T) {
		got := dedupUUIDs([]uuid.UUID{a, b})
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("kosong", func(t *testing.T) {
		assert.Empty(t, dedupUUIDs(nil))
	})
}
