// file: internals/features/attendance/attendance/service/recorder_service_db_test.go
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
	studentModel "kampusku_backend/internals/features/academics/students/model"
	attendanceDTO "kampusku_backend/internals/features/attendance/attendance/dto"
	attendanceModel "kampusku_backend/internals/features/attendance/attendance/model"
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
		&classModel.ClassModel{},
		&membershipModel.ClassStudentModel{},
		&membershipModel.ClassProfessorModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceRecordModel{},
	))
	return db
}

// seedMarkFixture menyiapkan satu kampus (hanya ID), satu kelas, dan
// satu student; semua baris dibersihkan lewat t.Cleanup.
func seedMarkFixture(t *testing.T, db *gorm.DB) (campusID uuid.UUID, cls *classModel.ClassModel, stu *studentModel.StudentModel) {
	t.Helper()
	campusID = uuid.New()

	cls = &classModel.ClassModel{
		ClassCampusID: campusID,
		ClassCode:     1,
		ClassName:     "Basis Data",
		ClassDivision: "A",
	}
	require.NoError(t, db.Create(cls).Error)

	stu = &studentModel.StudentModel{
		StudentCampusID:     campusID,
		StudentEnrollmentNo: "2024" + uuid.NewString()[:8],
		StudentName:         "Mahasiswa Uji",
		StudentSemester:     3,
	}
	require.NoError(t, db.Create(stu).Error)

	t.Cleanup(func() {
		db.Where("attendance_record_campus_id = ?", campusID).
			Delete(&attendanceModel.AttendanceRecordModel{})
		db.Unscoped().Where("student_campus_id = ?", campusID).
			Delete(&studentModel.StudentModel{})
		db.Unscoped().Where("class_campus_id = ?", campusID).
			Delete(&classModel.ClassModel{})
	})
	return campusID, cls, stu
}

// Mark ulang pada kunci (student, class, tanggal, slot) yang sama harus
// menimpa baris yang ada — tidak pernah menambah baris kedua, dan nilai
// terakhir yang menang.
func TestMarkAttendanceRemarkUpdatesInPlace(t *testing.T) {
	db := testDB(t)
	campusID, cls, stu := seedMarkFixture(t, db)
	professorID := uuid.New()

	req := &attendanceDTO.MarkAttendanceRequest{
		ClassID: cls.ClassID,
		Slot:    2,
		Date:    "2026-08-17",
		Entries: []attendanceDTO.MarkEntry{{StudentID: stu.StudentID.String(), Present: true}},
	}
	resp, err := MarkAttendance(db, nil, time.UTC, campusID, professorID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Saved)
	assert.Empty(t, resp.Skipped)

	// mark kedua: presence dibalik, profesor lain
	secondProfessor := uuid.New()
	req.Entries[0].Present = false
	resp, err = MarkAttendance(db, nil, time.UTC, campusID, secondProfessor, req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Saved)

	var rows []attendanceModel.AttendanceRecordModel
	require.NoError(t, db.
		Where("attendance_record_student_id = ? AND attendance_record_class_id = ? AND attendance_record_slot = ?",
			stu.StudentID, cls.ClassID, 2).
		Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].AttendanceRecordIsPresent)
	assert.Equal(t, secondProfessor, rows[0].AttendanceRecordMarkedBy)
}

// Slot berbeda pada tanggal yang sama adalah sesi berbeda — dua baris.
func TestMarkAttendanceDistinctSlotsAreDistinctRows(t *testing.T) {
	db := testDB(t)
	campusID, cls, stu := seedMarkFixture(t, db)
	professorID := uuid.New()

	for _, slot := range []int{1, 2} {
		req := &attendanceDTO.MarkAttendanceRequest{
			ClassID: cls.ClassID,
			Slot:    slot,
			Date:    "2026-08-18",
			Entries: []attendanceDTO.MarkEntry{{StudentID: stu.StudentID.String(), Present: true}},
		}
		resp, err := MarkAttendance(db, nil, time.UTC, campusID, professorID, req)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Saved)
	}

	var n int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("attendance_record_student_id = ? AND attendance_record_class_id = ?",
			stu.StudentID, cls.ClassID).
		Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

// Student kampus lain tidak boleh ikut tersimpan — masuk skipped.
func TestMarkAttendanceRejectsForeignStudent(t *testing.T) {
	db := testDB(t)
	campusID, cls, stu := seedMarkFixture(t, db)
	professorID := uuid.New()
	foreign := uuid.New()

	req := &attendanceDTO.MarkAttendanceRequest{
		ClassID: cls.ClassID,
		Slot:    1,
		Date:    "2026-08-19",
		Entries: []attendanceDTO.MarkEntry{
			{StudentID: stu.StudentID.String(), Present: true},
			{StudentID: foreign.String(), Present: true},
		},
	}
	resp, err := MarkAttendance(db, nil, time.UTC, campusID, professorID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Saved)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, foreign.String(), resp.Skipped[0].StudentID)
	assert.Equal(t, SkipReasonInvalidStudent, resp.Skipped[0].Reason)
}

// Roster professor non-kosong membatasi siapa yang boleh menandai.
func TestMarkAttendanceHonorsProfessorRoster(t *testing.T) {
	db := testDB(t)
	campusID, cls, stu := seedMarkFixture(t, db)
	assigned := uuid.New()
	require.NoError(t, db.Create(&membershipModel.ClassProfessorModel{
		ClassProfessorCampusID:    campusID,
		ClassProfessorClassID:     cls.ClassID,
		ClassProfessorProfessorID: assigned,
	}).Error)
	t.Cleanup(func() {
		db.Where("class_professor_campus_id = ?", campusID).
			Delete(&membershipModel.ClassProfessorModel{})
	})

	req := &attendanceDTO.MarkAttendanceRequest{
		ClassID: cls.ClassID,
		Slot:    1,
		Date:    "2026-08-20",
		Entries: []attendanceDTO.MarkEntry{{StudentID: stu.StudentID.String(), Present: true}},
	}

	_, err := MarkAttendance(db, nil, time.UTC, campusID, uuid.New(), req)
	require.Error(t, err)

	resp, err := MarkAttendance(db, nil, time.UTC, campusID, assigned, req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Saved)
}
