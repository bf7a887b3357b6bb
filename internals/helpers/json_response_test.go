// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("halaman tengah", func(t *testing.T) {
		p := BuildPaginationFromPage(95, 2, 20)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, int64(95), p.Total)
		assert.Equal(t, 5, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		p := BuildPaginationFromPage(95, 5, 20)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("kosong tetap satu halaman", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("pas satu halaman", func(t *testing.T) {
		p := BuildPaginationFromPage(20, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
	})
}
