// file: internals/features/academics/professors/service/login_service_test.go
package service

import (
	"errors"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/academics/professors/model"
	hodModel "kampusku_backend/internals/features/campus/hods/model"
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
		&model.ProfessorModel{},
	))
	return db
}

func withCampusScope(t *testing.T) {
	t.Helper()
	prev := configs.IdentityScope
	configs.IdentityScope = configs.IdentityScopeCampus
	t.Cleanup(func() { configs.IdentityScope = prev })
}

func seedCampus(t *testing.T, db *gorm.DB, username string) *hodModel.CampusModel {
	t.Helper()
	campus := &hodModel.CampusModel{
		CampusCollegeName: "Universitas " + username,
		CampusUsername:    username,
		CampusEmail:       username + "@contoh.ac.id",
		CampusPassword:    "$2a$10$stubstubstubstubstubstub",
		CampusAltPassword: "$2a$10$stubstubstubstubstubstub",
	}
	require.NoError(t, db.Create(campus).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("campus_id = ?", campus.CampusID).
			Delete(&hodModel.CampusModel{})
	})
	return campus
}

func seedProfessor(t *testing.T, db *gorm.DB, campusID uuid.UUID, username string) *model.ProfessorModel {
	t.Helper()
	p := &model.ProfessorModel{
		ProfessorCampusID: campusID,
		ProfessorName:     "Dosen " + username,
		ProfessorUsername: username,
		ProfessorPassword: "$2a$10$stubstubstubstubstubstub",
	}
	require.NoError(t, db.Create(p).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("professor_id = ?", p.ProfessorID).
			Delete(&model.ProfessorModel{})
	})
	return p
}

// Dua kampus punya dosen dengan username sama; lookup harus
// mengembalikan akun milik kampus yang disebut, bukan sembarang baris.
func TestFindByLoginIdentityScopedPerCampus(t *testing.T) {
	db := testDB(t)
	withCampusScope(t)

	suffix := uuid.NewString()[:8]
	campusA := seedCampus(t, db, "kampus-a-"+suffix)
	campusB := seedCampus(t, db, "kampus-b-"+suffix)
	username := "budi-" + suffix
	profA := seedProfessor(t, db, campusA.CampusID, username)
	profB := seedProfessor(t, db, campusB.CampusID, username)

	gotA, err := FindByLoginIdentity(db, username, campusA.CampusUsername)
	require.NoError(t, err)
	assert.Equal(t, profA.ProfessorID, gotA.ProfessorID)

	gotB, err := FindByLoginIdentity(db, username, campusB.CampusUsername)
	require.NoError(t, err)
	assert.Equal(t, profB.ProfessorID, gotB.ProfessorID)
	assert.NotEqual(t, gotA.ProfessorID, gotB.ProfessorID)
}

func TestFindByLoginIdentityRequiresCampusUsername(t *testing.T) {
	db := testDB(t)
	withCampusScope(t)

	_, err := FindByLoginIdentity(db, "siapa-saja", "")
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestFindByLoginIdentityUnknownCampusIsUnauthorized(t *testing.T) {
	db := testDB(t)
	withCampusScope(t)

	_, err := FindByLoginIdentity(db, "siapa-saja", "kampus-tak-ada-"+uuid.NewString()[:8])
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}
