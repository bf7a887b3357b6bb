// file: internals/features/academics/students/service/login_service_test.go
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
	"kampusku_backend/internals/features/academics/students/model"
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
		&model.StudentModel{},
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

func seedStudent(t *testing.T, db *gorm.DB, campusID uuid.UUID, nim string) *model.StudentModel {
	t.Helper()
	s := &model.StudentModel{
		StudentCampusID:     campusID,
		StudentEnrollmentNo: nim,
		StudentName:         "Mahasiswa " + nim,
		StudentSemester:     3,
	}
	require.NoError(t, db.Create(s).Error)
	t.Cleanup(func() {
		db.Unscoped().Where("student_id = ?", s.StudentID).
			Delete(&model.StudentModel{})
	})
	return s
}

// NIM kembar di dua kampus: lookup harus memilih baris milik kampus
// yang disebut di request, bukan baris pertama yang kebetulan ketemu.
func TestFindByLoginIdentityScopedPerCampus(t *testing.T) {
	db := testDB(t)
	withCampusScope(t)

	suffix := uuid.NewString()[:8]
	campusA := seedCampus(t, db, "kampus-a-"+suffix)
	campusB := seedCampus(t, db, "kampus-b-"+suffix)
	nim := "2024" + suffix
	stuA := seedStudent(t, db, campusA.CampusID, nim)
	stuB := seedStudent(t, db, campusB.CampusID, nim)

	gotA, err := FindByLoginIdentity(db, nim, campusA.CampusUsername)
	require.NoError(t, err)
	assert.Equal(t, stuA.StudentID, gotA.StudentID)

	gotB, err := FindByLoginIdentity(db, nim, campusB.CampusUsername)
	require.NoError(t, err)
	assert.Equal(t, stuB.StudentID, gotB.StudentID)
	assert.NotEqual(t, gotA.StudentID, gotB.StudentID)
}

func TestFindByLoginIdentityRequiresCampusUsername(t *testing.T) {
	db := testDB(t)
	withCampusScope(t)

	_, err := FindByLoginIdentity(db, "20240001", "")
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestFindByLoginIdentityUnknownCampusIsUnauthorized(t *testing.T) {
	db := testDB(t)
	withCampusScope(t)

	_, err := FindByLoginIdentity(db, "20240001", "kampus-tak-ada-"+uuid.NewString()[:8])
	require.Error(t, err)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}
