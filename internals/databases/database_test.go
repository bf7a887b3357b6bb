// file: internals/databases/database_test.go
package database

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	hodModel "kampusku_backend/internals/features/campus/hods/model"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
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
	require.NoError(t, db.AutoMigrate(
		&hodModel.CampusModel{},
		&professorModel.ProfessorModel{},
		&studentModel.StudentModel{},
	))
	require.NoError(t, ApplyUniqueIndexes(db))
	return db
}

func newCampus(username string) *hodModel.CampusModel {
	return &hodModel.CampusModel{
		CampusCollegeName: "Universitas " + username,
		CampusUsername:    username,
		CampusEmail:       username + "@contoh.ac.id",
		CampusPassword:    "$2a$10$stubstubstubstubstubstub",
		CampusAltPassword: "$2a$10$stubstubstubstubstubstub",
	}
}

// Username kampus unik di antara baris hidup saja: setelah soft-delete,
// pendaftaran ulang dengan username yang sama harus lolos lagi.
func TestCampusUsernameReusableAfterSoftDelete(t *testing.T) {
	db := testDB(t)
	username := "kampus-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		db.Unscoped().
			Where("campus_username = ?", username).
			Delete(&hodModel.CampusModel{})
	})

	first := newCampus(username)
	require.NoError(t, db.Create(first).Error)

	// Selama baris hidup, duplikat harus ditolak index parsial.
	dup := newCampus(username)
	assert.Error(t, db.Create(dup).Error)

	require.NoError(t, db.Delete(&hodModel.CampusModel{},
		"campus_id = ?", first.CampusID).Error)

	second := newCampus(username)
	require.NoError(t, db.Create(second).Error)

	var alive int64
	require.NoError(t, db.Model(&hodModel.CampusModel{}).
		Where("campus_username = ?", username).
		Count(&alive).Error)
	assert.Equal(t, int64(1), alive)
}
