// file: internals/features/academics/bulk/service/ingest_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/academics/bulk/dto"
	classModel "kampusku_backend/internals/features/academics/classes/model"
	classService "kampusku_backend/internals/features/academics/classes/service"
	professorModel "kampusku_backend/internals/features/academics/professors/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	authHelper "kampusku_backend/internals/helpers/auth"
)

/* ===============================
   Klasifikasi bersama (3 jenis entitas, algoritma sama)
=============================== */

// classifyKeys jalan urut file dengan seen-set:
// - key sudah ada di DB → skip "already exists"
// - key sudah lewat di file yang sama → skip "duplicate in file"
// - sisanya masuk antrian insert.
// rowNums paralel dengan keys (nomor baris asli 1-based).
func classifyKeys(keys []string, rowNums []int, existing map[string]struct{}) (queued []int, skips []dto.BulkSkip) {
	seen := make(map[string]struct{}, len(keys))
	for i, key := range keys {
		if _, ok := existing[key]; ok {
			skips = append(skips, dto.BulkSkip{Row: rowNums[i], Key: key, Reason: dto.SkipReasonExists})
			continue
		}
		if _, ok := seen[key]; ok {
			skips = append(skips, dto.BulkSkip{Row: rowNums[i], Key: key, Reason: dto.SkipReasonDuplicateInFile})
			continue
		}
		seen[key] = struct{}{}
		queued = append(queued, i)
	}
	return queued, skips
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// fallback string match (driver lain / wrapping)
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* ===============================
   Students
=============================== */

// IngestStudents — batch insert student dari row-list parser.
// Field wajib: enrollment_no, name, semester≥1. Batch yang SEMUA
// barisnya invalid ditolak utuh (khusus student, sesuai perilaku
// jalur upload lama).
func IngestStudents(db *gorm.DB, campusID uuid.UUID, rows []dto.StudentRow) (*dto.BulkResult, error) {
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak berisi data student")
	}

	type candidate struct {
		row  dto.StudentRow
		num  int
		key  string
	}
	var cands []candidate
	for i, r := range rows {
		r.EnrollmentNo = strings.TrimSpace(r.EnrollmentNo)
		r.Name = strings.TrimSpace(r.Name)
		if r.EnrollmentNo == "" || r.Name == "" || r.Semester < 1 {
			continue // parser-drop, tidak dilaporkan per-row
		}
		cands = append(cands, candidate{row: r, num: i + 1, key: r.EnrollmentNo})
	}
	if len(cands) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Semua baris tidak punya field wajib (enrollment_no, name, semester)")
	}

	// Satu query untuk semua key existing (tidak pernah per-row)
	keys := make([]string, len(cands))
	nums := make([]int, len(cands))
	for i, c := range cands {
		keys[i], nums[i] = c.key, c.num
	}
	q := db.Model(&studentModel.StudentModel{}).Where("student_enrollment_no IN ?", keys)
	if configs.IdentityScope == configs.IdentityScopeCampus {
		q = q.Where("student_campus_id = ?", campusID)
	}
	var existingKeys []string
	if err := q.Pluck("student_enrollment_no", &existingKeys).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa enrollment yang sudah ada")
	}
	existing := make(map[string]struct{}, len(existingKeys))
	for _, k := range existingKeys {
		existing[k] = struct{}{}
	}

	queued, skips := classifyKeys(keys, nums, existing)
	res := &dto.BulkResult{Total: len(rows), Skipped: skips}

	for _, i := range queued {
		c := cands[i]
		plain := c.row.Password
		if plain == "" {
			plain = authHelper.DefaultTempPassword
		}
		hashed, err := authHelper.HashPassword(plain)
		if err != nil {
			res.Errors = append(res.Errors, dto.BulkRowError{Row: c.num, Key: c.key, Message: "hash kredensial gagal"})
			continue
		}
		m := studentModel.StudentModel{
			StudentCampusID:     campusID,
			StudentEnrollmentNo: c.row.EnrollmentNo,
			StudentName:         c.row.Name,
			StudentSemester:     c.row.Semester,
			StudentPassword:     &hashed,
			StudentDeviceTokens: pq.StringArray{},
		}
		if d := strings.TrimSpace(c.row.Division); d != "" {
			m.StudentDivision = &d
		}
		if err := db.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				// kalah race dengan request lain — bukan kegagalan batch
				res.Skipped = append(res.Skipped, dto.BulkSkip{Row: c.num, Key: c.key, Reason: dto.SkipReasonRace})
				continue
			}
			res.Errors = append(res.Errors, dto.BulkRowError{Row: c.num, Key: c.key, Message: err.Error()})
			continue
		}
		res.Inserted++
	}
	return res, nil
}

/* ===============================
   Professors
=============================== */

// professorKey mengikuti scope identitas yang dikonfigurasi.
func professorKey(r dto.ProfessorRow) string {
	if configs.IdentityScope == configs.IdentityScopeGlobal {
		return strings.ToLower(strings.TrimSpace(r.Email))
	}
	return strings.TrimSpace(r.Username)
}

func IngestProfessors(db *gorm.DB, campusID uuid.UUID, rows []dto.ProfessorRow) (*dto.BulkResult, error) {
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak berisi data professor")
	}

	type candidate struct {
		row dto.ProfessorRow
		num int
		key string
	}
	var cands []candidate
	for i, r := range rows {
		key := professorKey(r)
		if strings.TrimSpace(r.Name) == "" || key == "" {
			continue
		}
		cands = append(cands, candidate{row: r, num: i + 1, key: key})
	}
	if len(cands) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Semua baris tidak punya field wajib (name + identitas login)")
	}

	keys := make([]string, len(cands))
	nums := make([]int, len(cands))
	for i, c := range cands {
		keys[i], nums[i] = c.key, c.num
	}

	var existingKeys []string
	if configs.IdentityScope == configs.IdentityScopeGlobal {
		if err := db.Model(&professorModel.ProfessorModel{}).
			Where("LOWER(professor_email) IN ?", keys).
			Pluck("LOWER(professor_email)", &existingKeys).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa email yang sudah ada")
		}
	} else {
		if err := db.Model(&professorModel.ProfessorModel{}).
			Where("professor_campus_id = ? AND professor_username IN ?", campusID, keys).
			Pluck("professor_username", &existingKeys).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa username yang sudah ada")
		}
	}
	existing := make(map[string]struct{}, len(existingKeys))
	for _, k := range existingKeys {
		existing[k] = struct{}{}
	}

	queued, skips := classifyKeys(keys, nums, existing)
	res := &dto.BulkResult{Total: len(rows), Skipped: skips}

	for _, i := range queued {
		c := cands[i]
		plain := c.row.Password
		if plain == "" {
			plain = authHelper.DefaultTempPassword
		}
		hashed, err := authHelper.HashPassword(plain)
		if err != nil {
			res.Errors = append(res.Errors, dto.BulkRowError{Row: c.num, Key: c.key, Message: "hash kredensial gagal"})
			continue
		}
		m := professorModel.ProfessorModel{
			ProfessorCampusID: campusID,
			ProfessorName:     strings.TrimSpace(c.row.Name),
			ProfessorUsername: strings.TrimSpace(c.row.Username),
			ProfessorPassword: hashed,
		}
		if e := strings.ToLower(strings.TrimSpace(c.row.Email)); e != "" {
			m.ProfessorEmail = &e
		}
		if configs.IdentityScope == configs.IdentityScopeCampus && m.ProfessorUsername == "" {
			m.ProfessorUsername = c.key
		}
		if err := db.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				res.Skipped = append(res.Skipped, dto.BulkSkip{Row: c.num, Key: c.key, Reason: dto.SkipReasonRace})
				continue
			}
			res.Errors = append(res.Errors, dto.BulkRowError{Row: c.num, Key: c.key, Message: err.Error()})
			continue
		}
		res.Inserted++
	}
	return res, nil
}

/* ===============================
   Classes
=============================== */

// IngestClasses — key dedup = (class_name, division) per kampus;
// setiap baris yang lolos mint class_code atomik lewat counter
// SEBELUM insert (alokasi nomor & create bukan satu unit atomik,
// tapi nomor tidak mungkin kembar antar request paralel).
func IngestClasses(db *gorm.DB, campusID uuid.UUID, rows []dto.ClassRow) (*dto.BulkResult, error) {
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak berisi data kelas")
	}

	type candidate struct {
		row dto.ClassRow
		num int
		key string
	}
	var cands []candidate
	for i, r := range rows {
		r.ClassName = strings.TrimSpace(r.ClassName)
		r.Division = strings.TrimSpace(r.Division)
		if r.ClassName == "" || r.Division == "" {
			continue
		}
		cands = append(cands, candidate{row: r, num: i + 1, key: strings.ToLower(r.ClassName + "|" + r.Division)})
	}
	if len(cands) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Semua baris tidak punya field wajib (class_name, division)")
	}

	var existingRows []classModel.ClassModel
	if err := db.
		Select("class_name, class_division").
		Where("class_campus_id = ?", campusID).
		Find(&existingRows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa kelas yang sudah ada")
	}
	existing := make(map[string]struct{}, len(existingRows))
	for _, ex := range existingRows {
		existing[strings.ToLower(ex.ClassName+"|"+ex.ClassDivision)] = struct{}{}
	}

	keys := make([]string, len(cands))
	nums := make([]int, len(cands))
	for i, c := range cands {
		keys[i], nums[i] = c.key, c.num
	}
	queued, skips := classifyKeys(keys, nums, existing)
	res := &dto.BulkResult{Total: len(rows), Skipped: skips}

	for _, i := range queued {
		c := cands[i]
		code, err := classService.NextClassCode(db, campusID)
		if err != nil {
			res.Errors = append(res.Errors, dto.BulkRowError{Row: c.num, Key: c.key, Message: "gagal mengambil nomor kelas"})
			continue
		}
		m := classModel.ClassModel{
			ClassCampusID: campusID,
			ClassCode:     code,
			ClassName:     c.row.ClassName,
			ClassDivision: c.row.Division,
		}
		if err := db.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				res.Skipped = append(res.Skipped, dto.BulkSkip{Row: c.num, Key: c.key, Reason: dto.SkipReasonRace})
				continue
			}
			res.Errors = append(res.Errors, dto.BulkRowError{Row: c.num, Key: c.key, Message: err.Error()})
			continue
		}
		res.Inserted++
	}
	return res, nil
}
