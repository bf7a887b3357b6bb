// file: internals/features/academics/classes/service/class_code_service_test.go
package service

import (
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "kampusku_backend/internals/features/academics/classes/model"
)

// testDB membuka koneksi ke TEST_DATABASE_URL; tanpa env itu
// seluruh suite DB di-skip supaya unit test tetap jalan offline.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak diset")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&classModel.ClassCounterModel{}))
	return db
}

func TestNextClassCodeSequential(t *testing.T) {
	db := testDB(t)
	campusID := uuid.New()
	t.Cleanup(func() {
		db.Where("class_counter_campus_id = ?", campusID).
			Delete(&classModel.ClassCounterModel{})
	})

	for want := 1; want <= 5; want++ {
		got, err := NextClassCode(db, campusID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNextClassCodePerCampusIsolated(t *testing.T) {
	db := testDB(t)
	a, b := uuid.New(), uuid.New()
	t.Cleanup(func() {
		db.Where("class_counter_campus_id IN ?", []uuid.UUID{a, b}).
			Delete(&classModel.ClassCounterModel{})
	})

	gotA, err := NextClassCode(db, a)
	require.NoError(t, err)
	gotB, err := NextClassCode(db, b)
	require.NoError(t, err)
	assert.Equal(t, 1, gotA)
	assert.Equal(t, 1, gotB)
}

func TestNextClassCodeConcurrent(t *testing.T) {
	db := testDB(t)
	campusID := uuid.New()
	t.Cleanup(func() {
		db.Where("class_counter_campus_id = ?", campusID).
			Delete(&classModel.ClassCounterModel{})
	})

	const n = 20
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, err := NextClassCode(db, campusID)
			assert.NoError(t, err)
			codes[i] = code
		}(i)
	}
	wg.Wait()

	// semua unik dan tepat 1..n
	sort.Ints(codes)
	for i, c := range codes {
		assert.Equal(t, i+1, c)
	}
}
