// file: internals/features/academics/membership/service/membership_service_db_test.go
package service

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "kampusku_backend/internals/features/academics/classes/model"
	membershipModel "kampusku_backend/internals/features/academics/membership/model"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	attendanceModel "kampusku_backend/internals/features/attendance/attendance/model"
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
		&classModel.ClassModel{},
		&classModel.ClassCounterModel{},
		&membershipModel.ClassStudentModel{},
		&membershipModel.ClassProfessorModel{},
		&professorModel.ProfessorModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceRecordModel{},
	))
	return db
}

type tenantFixture struct {
	campus     *hodModel.CampusModel
	class      *classModel.ClassModel
	students   []*studentModel.StudentModel
	professors []*professorModel.ProfessorModel
}

// seedTenant membuat satu tenant lengkap: kampus, satu kelas,
// dua student, satu professor. Semua baris di-hard-delete saat cleanup.
func seedTenant(t *testing.T, db *gorm.DB) *tenantFixture {
	t.Helper()
	suffix := uuid.NewString()[:8]

	campus := &hodModel.CampusModel{
		CampusCollegeName: "Universitas Uji " + suffix,
		CampusUsername:    "kampus-" + suffix,
		CampusEmail:       "kampus-" + suffix + "@contoh.ac.id",
		CampusPassword:    "$2a$10$stubstubstubstubstubstub",
		CampusAltPassword: "$2a$10$stubstubstubstubstubstub",
	}
	require.NoError(t, db.Create(campus).Error)

	class := &classModel.ClassModel{
		ClassCampusID: campus.CampusID,
		ClassCode:     1,
		ClassName:     "Algoritma",
		ClassDivision: "A",
	}
	require.NoError(t, db.Create(class).Error)

	fx := &tenantFixture{campus: campus, class: class}
	for i := 0; i < 2; i++ {
		s := &studentModel.StudentModel{
			StudentCampusID:     campus.CampusID,
			StudentEnrollmentNo: "2024" + suffix + string(rune('0'+i)),
			StudentName:         "Mahasiswa " + suffix,
			StudentSemester:     3,
		}
		require.NoError(t, db.Create(s).Error)
		fx.students = append(fx.students, s)
	}
	p := &professorModel.ProfessorModel{
		ProfessorCampusID: campus.CampusID,
		ProfessorName:     "Dosen " + suffix,
		ProfessorUsername: "dosen-" + suffix,
		ProfessorPassword: "$2a$10$stubstubstubstubstubstub",
	}
	require.NoError(t, db.Create(p).Error)
	fx.professors = append(fx.professors, p)

	t.Cleanup(func() {
		id := campus.CampusID
		db.Where("attendance_record_campus_id = ?", id).Delete(&attendanceModel.AttendanceRecordModel{})
		db.Where("class_student_campus_id = ?", id).Delete(&membershipModel.ClassStudentModel{})
		db.Where("class_professor_campus_id = ?", id).Delete(&membershipModel.ClassProfessorModel{})
		db.Where("class_counter_campus_id = ?", id).Delete(&classModel.ClassCounterModel{})
		db.Unscoped().Where("class_campus_id = ?", id).Delete(&classModel.ClassModel{})
		db.Unscoped().Where("student_campus_id = ?", id).Delete(&studentModel.StudentModel{})
		db.Unscoped().Where("professor_campus_id = ?", id).Delete(&professorModel.ProfessorModel{})
		db.Unscoped().Where("campus_id = ?", id).Delete(&hodModel.CampusModel{})
	})
	return fx
}

// Assign lalu remove: roster dibaca dari tabel join yang sama di kedua
// arah, jadi setelah remove hanya anggota tersisa yang terlihat.
func TestAssignRemoveStudentsRoster(t *testing.T) {
	db := testDB(t)
	fx := seedTenant(t, db)
	campusID, classID := fx.campus.CampusID, fx.class.ClassID
	s0, s1 := fx.students[0].StudentID, fx.students[1].StudentID

	require.NoError(t, AssignStudents(db, campusID, classID, []uuid.UUID{s0, s1}))

	// assign ulang anggota yang sudah terpasang = no-op, bukan duplikat
	require.NoError(t, AssignStudents(db, campusID, classID, []uuid.UUID{s0}))

	studentIDs, _, err := ClassRoster(db, classID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{s0, s1}, studentIDs)

	require.NoError(t, RemoveStudents(db, campusID, classID, []uuid.UUID{s0}))
	studentIDs, _, err = ClassRoster(db, classID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{s1}, studentIDs)

	// remove referensi yang memang tidak terpasang ditoleransi
	require.NoError(t, RemoveStudents(db, campusID, classID, []uuid.UUID{s0}))
}

func TestAssignProfessorsVisibleInRoster(t *testing.T) {
	db := testDB(t)
	fx := seedTenant(t, db)
	campusID, classID := fx.campus.CampusID, fx.class.ClassID
	pid := fx.professors[0].ProfessorID

	require.NoError(t, AssignProfessors(db, campusID, classID, []uuid.UUID{pid}))
	_, professorIDs, err := ClassRoster(db, classID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{pid}, professorIDs)

	require.NoError(t, RemoveProfessors(db, campusID, classID, []uuid.UUID{pid}))
	_, professorIDs, err = ClassRoster(db, classID)
	require.NoError(t, err)
	assert.Empty(t, professorIDs)
}

// Student milik tenant lain tidak boleh masuk roster.
func TestAssignStudentsRejectsForeignTenant(t *testing.T) {
	db := testDB(t)
	fxA := seedTenant(t, db)
	fxB := seedTenant(t, db)

	err := AssignStudents(db, fxA.campus.CampusID, fxA.class.ClassID,
		[]uuid.UUID{fxB.students[0].StudentID})
	require.Error(t, err)

	studentIDs, _, rerr := ClassRoster(db, fxA.class.ClassID)
	require.NoError(t, rerr)
	assert.Empty(t, studentIDs)
}

// DeleteClass membawa serta roster dan record absensi kelasnya,
// tanpa menyentuh entitas lain.
func TestDeleteClassCascade(t *testing.T) {
	db := testDB(t)
	fx := seedTenant(t, db)
	campusID, classID := fx.campus.CampusID, fx.class.ClassID
	sid := fx.students[0].StudentID

	require.NoError(t, AssignStudents(db, campusID, classID, []uuid.UUID{sid}))
	require.NoError(t, db.Create(&attendanceModel.AttendanceRecordModel{
		AttendanceRecordCampusID:  campusID,
		AttendanceRecordStudentID: sid,
		AttendanceRecordClassID:   classID,
		AttendanceRecordDate:      time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		AttendanceRecordSlot:      1,
		AttendanceRecordIsPresent: true,
		AttendanceRecordMarkedBy:  fx.professors[0].ProfessorID,
	}).Error)

	require.NoError(t, DeleteClass(db, campusID, classID))

	var n int64
	require.NoError(t, db.Model(&membershipModel.ClassStudentModel{}).
		Where("class_student_class_id = ?", classID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("attendance_record_class_id = ?", classID).Count(&n).Error)
	assert.Zero(t, n)
	// kelasnya sendiri tidak lagi terlihat di scope hidup
	require.NoError(t, db.Model(&classModel.ClassModel{}).
		Where("class_id = ?", classID).Count(&n).Error)
	assert.Zero(t, n)
	// student tetap hidup
	require.NoError(t, db.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", sid).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

// DeleteCampus menghapus seluruh isi tenant; tenant lain tidak tersentuh.
func TestDeleteCampusCascadeCompleteness(t *testing.T) {
	db := testDB(t)
	fx := seedTenant(t, db)
	other := seedTenant(t, db)
	campusID, classID := fx.campus.CampusID, fx.class.ClassID

	require.NoError(t, AssignStudents(db, campusID, classID,
		[]uuid.UUID{fx.students[0].StudentID, fx.students[1].StudentID}))
	require.NoError(t, AssignProfessors(db, campusID, classID,
		[]uuid.UUID{fx.professors[0].ProfessorID}))
	require.NoError(t, db.Create(&classModel.ClassCounterModel{
		ClassCounterCampusID: campusID,
		ClassCounterSeq:      1,
	}).Error)
	require.NoError(t, db.Create(&attendanceModel.AttendanceRecordModel{
		AttendanceRecordCampusID:  campusID,
		AttendanceRecordStudentID: fx.students[0].StudentID,
		AttendanceRecordClassID:   classID,
		AttendanceRecordDate:      time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		AttendanceRecordSlot:      1,
		AttendanceRecordIsPresent: true,
		AttendanceRecordMarkedBy:  fx.professors[0].ProfessorID,
	}).Error)

	require.NoError(t, DeleteCampus(db, campusID))

	var n int64
	counts := []struct {
		name  string
		model interface{}
		where string
	}{
		{"attendance", &attendanceModel.AttendanceRecordModel{}, "attendance_record_campus_id = ?"},
		{"roster student", &membershipModel.ClassStudentModel{}, "class_student_campus_id = ?"},
		{"roster professor", &membershipModel.ClassProfessorModel{}, "class_professor_campus_id = ?"},
		{"class", &classModel.ClassModel{}, "class_campus_id = ?"},
		{"counter", &classModel.ClassCounterModel{}, "class_counter_campus_id = ?"},
		{"student", &studentModel.StudentModel{}, "student_campus_id = ?"},
		{"professor", &professorModel.ProfessorModel{}, "professor_campus_id = ?"},
		{"campus", &hodModel.CampusModel{}, "campus_id = ?"},
	}
	for _, c := range counts {
		require.NoError(t, db.Model(c.model).Where(c.where, campusID).Count(&n).Error, c.name)
		assert.Zero(t, n, c.name)
	}

	// tenant lain utuh
	require.NoError(t, db.Model(&hodModel.CampusModel{}).
		Where("campus_id = ?", other.campus.CampusID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
	require.NoError(t, db.Model(&studentModel.StudentModel{}).
		Where("student_campus_id = ?", other.campus.CampusID).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}
