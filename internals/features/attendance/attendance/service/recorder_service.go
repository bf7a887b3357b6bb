// file: internals/features/attendance/attendance/service/recorder_service.go
package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "kampusku_backend/internals/features/academics/classes/model"
	membershipModel "kampusku_backend/internals/features/academics/membership/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	attendanceDTO "kampusku_backend/internals/features/attendance/attendance/dto"
	attendanceModel "kampusku_backend/internals/features/attendance/attendance/model"
	"kampusku_backend/internals/helpers/dbtime"
	"kampusku_backend/internals/helpers/push"
)

const (
	SkipReasonInvalidStudent     = "invalid student id"
	SkipReasonDuplicateInRequest = "duplicate in request"
	SkipReasonWriteFailed        = "write failed"
)

/* ===============================
   Dedup (pure, urutan submit menentukan)
=============================== */

// DedupeEntries memvalidasi & mendedup entry dalam satu request:
// - student_id malformed → skipped "invalid student id"
// - student sama muncul >1x → occurrence TERAKHIR menang, yang
//   sebelumnya skipped "duplicate in request"
// Hasil winners maksimal satu write-target per student, urut submit.
func DedupeEntries(entries []attendanceDTO.MarkEntry) (winners []attendanceDTO.MarkEntry, parsed []uuid.UUID, skipped []attendanceDTO.SkippedEntry) {
	type slot struct {
		entry attendanceDTO.MarkEntry
		id    uuid.UUID
	}
	var order []slot
	lastIdx := make(map[uuid.UUID]int)

	for _, e := range entries {
		id, err := uuid.Parse(e.StudentID)
		if err != nil || id == uuid.Nil {
			skipped = append(skipped, attendanceDTO.SkippedEntry{StudentID: e.StudentID, Reason: SkipReasonInvalidStudent})
			continue
		}
		if prev, ok := lastIdx[id]; ok {
			// yang lama kalah — lapor lalu timpa di tempat
			skipped = append(skipped, attendanceDTO.SkippedEntry{StudentID: e.StudentID, Reason: SkipReasonDuplicateInRequest})
			order[prev] = slot{entry: e, id: id}
			continue
		}
		lastIdx[id] = len(order)
		order = append(order, slot{entry: e, id: id})
	}

	for _, s := range order {
		winners = append(winners, s.entry)
		parsed = append(parsed, s.id)
	}
	return winners, parsed, skipped
}

/* ===============================
   MARK (write path)
=============================== */

// MarkAttendance — state machine satu panggilan:
// access-check → date-resolve → dedup → upsert (batch) → notify(best-effort).
// Hanya 4 tahap pertama yang boleh menggagalkan request.
func MarkAttendance(
	db *gorm.DB,
	dispatcher push.Dispatcher,
	loc *time.Location,
	campusID, professorID uuid.UUID,
	req *attendanceDTO.MarkAttendanceRequest,
) (*attendanceDTO.MarkAttendanceResponse, error) {

	// 1) Access check: kelas milik kampus; roster professor non-kosong
	// harus memuat si penanda (roster kosong = terbuka utk professor kampus).
	var cls classModel.ClassModel
	if err := db.First(&cls, "class_id = ? AND class_campus_id = ?", req.ClassID, campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	var rosterSize int64
	if err := db.Model(&membershipModel.ClassProfessorModel{}).
		Where("class_professor_class_id = ?", req.ClassID).
		Count(&rosterSize).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa roster professor")
	}
	if rosterSize > 0 {
		var member int64
		if err := db.Model(&membershipModel.ClassProfessorModel{}).
			Where("class_professor_class_id = ? AND class_professor_professor_id = ?", req.ClassID, professorID).
			Count(&member).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa roster professor")
		}
		if member == 0 {
			return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan pengampu kelas ini")
		}
	}

	// 2) Date resolution
	date, err := dbtime.ResolveSessionDate(req.DateMillis, req.Date, loc)
	if err != nil {
		return nil, err
	}
	if req.Slot < 1 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Slot minimal 1")
	}

	// 3) Dedup + validasi kepemilikan student
	winners, ids, skipped := DedupeEntries(req.Entries)
	if len(winners) == 0 {
		return &attendanceDTO.MarkAttendanceResponse{Saved: 0, Skipped: skipped}, nil
	}

	var owned []uuid.UUID
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_id IN ? AND student_campus_id = ?", ids, campusID).
		Pluck("student_id", &owned).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa student")
	}
	ownedSet := make(map[uuid.UUID]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}

	now := time.Now()
	var records []attendanceModel.AttendanceRecordModel
	var savedIDs []uuid.UUID
	for i, w := range winners {
		if _, ok := ownedSet[ids[i]]; !ok {
			skipped = append(skipped, attendanceDTO.SkippedEntry{StudentID: w.StudentID, Reason: SkipReasonInvalidStudent})
			continue
		}
		records = append(records, attendanceModel.AttendanceRecordModel{
			AttendanceRecordCampusID:  campusID,
			AttendanceRecordStudentID: ids[i],
			AttendanceRecordClassID:   req.ClassID,
			AttendanceRecordDate:      date,
			AttendanceRecordSlot:      req.Slot,
			AttendanceRecordIsPresent: w.Present,
			AttendanceRecordMarkedBy:  professorID,
			AttendanceRecordUpdatedAt: now,
		})
		savedIDs = append(savedIDs, ids[i])
	}

	// 4) Upsert batch tunggal pada kunci komposit; existing → hanya
	// presence + marked_by yang ditimpa, tidak pernah baris kembar.
	saved := 0
	if len(records) > 0 {
		onKey := clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_record_student_id"},
				{Name: "attendance_record_class_id"},
				{Name: "attendance_record_date"},
				{Name: "attendance_record_slot"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_record_is_present",
				"attendance_record_marked_by",
				"attendance_record_updated_at",
			}),
		}
		if err := db.Clauses(onKey).Create(&records).Error; err != nil {
			// batch gagal → retry per-row supaya kunci yang gagal
			// bisa dilaporkan, bukan ditelan
			log.Printf("[ATTENDANCE][WARN] batch upsert gagal, retry per-row: %v", err)
			savedIDs = savedIDs[:0]
			for i := range records {
				r := records[i]
				if er := db.Clauses(onKey).Create(&r).Error; er != nil {
					skipped = append(skipped, attendanceDTO.SkippedEntry{
						StudentID: r.AttendanceRecordStudentID.String(),
						Reason:    SkipReasonWriteFailed,
					})
					continue
				}
				saved++
				savedIDs = append(savedIDs, r.AttendanceRecordStudentID)
			}
		} else {
			saved = len(records)
		}
	}

	// 5) Notify best-effort — apapun yang terjadi di sini tidak boleh
	// mengubah hasil tahap 4.
	if saved > 0 && dispatcher != nil {
		notifyAttendanceUpdated(db, dispatcher, cls.ClassName, savedIDs)
	}

	return &attendanceDTO.MarkAttendanceResponse{Saved: saved, Skipped: skipped}, nil
}

// notifyAttendanceUpdated memfan-out push "absensi diperbarui" ke semua
// device token student terdampak, batch 500. Kegagalan per-batch hanya
// dicatat; token yang dilaporkan permanen invalid di-prune dari
// pemiliknya sebagai side effect.
func notifyAttendanceUpdated(db *gorm.DB, dispatcher push.Dispatcher, className string, studentIDs []uuid.UUID) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[NOTIFY][ERROR] panic di fan-out: %v", r)
		}
	}()

	var students []studentModel.StudentModel
	if err := db.
		Select("student_id, student_device_tokens").
		Where("student_id IN ?", studentIDs).
		Find(&students).Error; err != nil {
		log.Printf("[NOTIFY][ERROR] gagal ambil device token: %v", err)
		return
	}

	tokens, tokenOwners := collectDeviceTokens(students)
	if len(tokens) == 0 {
		return
	}

	title := "Absensi diperbarui"
	body := "Absensi Anda untuk kelas " + className + " baru saja diperbarui."
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, batch := range push.ChunkTokens(tokens, push.MaxTokensPerBatch) {
		results, err := dispatcher.Send(ctx, batch, title, body)
		if err != nil {
			log.Printf("[NOTIFY][WARN] batch push gagal (%d token): %v", len(batch), err)
			continue // batch berikutnya tetap jalan
		}
		for _, r := range results {
			if r.Invalid {
				for _, owner := range tokenOwners[r.Token] {
					pruneDeviceToken(db, owner, r.Token)
				}
			}
		}
	}
}

// collectDeviceTokens meratakan token semua student terdampak: tiap
// token masuk daftar kirim sekali saja, tapi SEMUA pemiliknya dicatat —
// token yang dipakai bersama (device keluarga) harus di-prune dari
// setiap baris yang memuatnya, bukan dari pemilik pertama saja.
func collectDeviceTokens(students []studentModel.StudentModel) ([]string, map[string][]uuid.UUID) {
	owners := make(map[string][]uuid.UUID)
	var tokens []string
	for _, s := range students {
		for _, t := range s.StudentDeviceTokens {
			if _, seen := owners[t]; !seen {
				tokens = append(tokens, t)
			}
			owners[t] = append(owners[t], s.StudentID)
		}
	}
	return tokens, owners
}

func pruneDeviceToken(db *gorm.DB, studentID uuid.UUID, token string) {
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		Update("student_device_tokens", gorm.Expr("array_remove(student_device_tokens, ?)", token)).Error; err != nil {
		log.Printf("[NOTIFY][WARN] gagal prune token student %s: %v", studentID, err)
	}
}

/* ===============================
   READS
=============================== */

func ListByClassAndDate(db *gorm.DB, campusID, classID uuid.UUID, date time.Time) ([]attendanceModel.AttendanceRecordModel, error) {
	var out []attendanceModel.AttendanceRecordModel
	if err := db.
		Where("attendance_record_campus_id = ? AND attendance_record_class_id = ? AND attendance_record_date = ?",
			campusID, classID, date).
		Order("attendance_record_slot ASC, attendance_record_student_id ASC").
		Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	return out, nil
}

// ListByClassRange — rentang tanggal half-open [from, to).
func ListByClassRange(db *gorm.DB, campusID, classID uuid.UUID, from, to time.Time) ([]attendanceModel.AttendanceRecordModel, error) {
	var out []attendanceModel.AttendanceRecordModel
	if err := db.
		Where("attendance_record_campus_id = ? AND attendance_record_class_id = ? AND attendance_record_date >= ? AND attendance_record_date < ?",
			campusID, classID, from, to).
		Order("attendance_record_date ASC, attendance_record_slot ASC, attendance_record_student_id ASC").
		Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	return out, nil
}

func ListByStudent(db *gorm.DB, campusID, studentID uuid.UUID) ([]attendanceModel.AttendanceRecordModel, error) {
	var out []attendanceModel.AttendanceRecordModel
	if err := db.
		Where("attendance_record_campus_id = ? AND attendance_record_student_id = ?", campusID, studentID).
		Order("attendance_record_date DESC, attendance_record_slot ASC").
		Find(&out).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil absensi student")
	}
	return out, nil
}

// Percentage = round(presents/total*100, 2 desimal); total 0 → 0, bukan NaN.
func Percentage(presents, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(presents)/float64(total)*100*100) / 100
}

// MonthlySummary mengagregasi per student dalam jendela bulan kalender
// [awal bulan, awal bulan berikutnya) — konvensi local-midnight yang
// sama dengan write path.
func MonthlySummary(db *gorm.DB, loc *time.Location, campusID, classID uuid.UUID, anyDayInMonth time.Time) ([]attendanceDTO.MonthlySummaryRow, error) {
	// Guard: kelas milik kampus
	var n int64
	if err := db.Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_campus_id = ?", classID, campusID).
		Count(&n).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	}
	if n == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	start, end := dbtime.MonthWindow(anyDayInMonth, loc)

	var rows []attendanceDTO.MonthlySummaryRow
	if err := db.Raw(`
		SELECT s.student_id,
		       s.student_enrollment_no,
		       s.student_name,
		       COUNT(*) FILTER (WHERE ar.attendance_record_is_present) AS presents,
		       COUNT(*) AS total
		FROM attendance_records ar
		JOIN students s ON s.student_id = ar.attendance_record_student_id
		WHERE ar.attendance_record_campus_id = ?
		  AND ar.attendance_record_class_id = ?
		  AND ar.attendance_record_date >= ?
		  AND ar.attendance_record_date < ?
		GROUP BY s.student_id, s.student_enrollment_no, s.student_name
		ORDER BY s.student_enrollment_no
	`, campusID, classID, start, end).Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap bulanan")
	}
	for i := range rows {
		rows[i].Percentage = Percentage(rows[i].Presents, rows[i].Total)
	}
	return rows, nil
}
