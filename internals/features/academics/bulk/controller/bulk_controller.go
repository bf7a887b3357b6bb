// file: internals/features/academics/bulk/controller/bulk_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bulkDTO "kampusku_backend/internals/features/academics/bulk/dto"
	bulkService "kampusku_backend/internals/features/academics/bulk/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/sheet"
)

// BulkController — endpoint ingest massal. Dua jalur input:
// body JSON berisi array row, atau multipart file yang dibaca lewat
// sheet.Parser (hasil parser diperlakukan sama dengan row JSON).
type BulkController struct {
	DB    *gorm.DB
	Sheet sheet.Parser
}

func NewBulkController(db *gorm.DB, parser sheet.Parser) *BulkController {
	return &BulkController{DB: db, Sheet: parser}
}

// sheetRows membaca file upload "file" → row map; (nil, nil) kalau
// request bukan multipart / tidak bawa file.
func (ctrl *BulkController) sheetRows(c *fiber.Ctx) ([]map[string]string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil
	}
	if ctrl.Sheet == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Upload file tidak didukung, kirim JSON")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibuka")
	}
	defer f.Close()
	return ctrl.Sheet.Parse(f, fh.Filename), nil
}

/* ===============================
   STUDENTS
=============================== */

// POST /api/bulk/students
func (ctrl *BulkController) IngestStudents(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []bulkDTO.StudentRow
	sheetRows, err := ctrl.sheetRows(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if sheetRows != nil {
		for _, r := range sheetRows {
			semester, _ := strconv.Atoi(r["semester"])
			rows = append(rows, bulkDTO.StudentRow{
				EnrollmentNo: r["enrollment_no"],
				Name:         r["name"],
				Semester:     semester,
				Division:     r["division"],
				Password:     r["password"],
			})
		}
	} else if err := c.BodyParser(&rows); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	result, err := bulkService.IngestStudents(ctrl.DB, campusID, rows)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Ingest mahasiswa selesai", result)
}

/* ===============================
   PROFESSORS
=============================== */

// POST /api/bulk/professors
func (ctrl *BulkController) IngestProfessors(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []bulkDTO.ProfessorRow
	sheetRows, err := ctrl.sheetRows(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if sheetRows != nil {
		for _, r := range sheetRows {
			rows = append(rows, bulkDTO.ProfessorRow{
				Name:     r["name"],
				Username: r["username"],
				Email:    r["email"],
				Password: r["password"],
			})
		}
	} else if err := c.BodyParser(&rows); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	result, err := bulkService.IngestProfessors(ctrl.DB, campusID, rows)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Ingest dosen selesai", result)
}

/* ===============================
   CLASSES
=============================== */

// POST /api/bulk/classes
func (ctrl *BulkController) IngestClasses(c *fiber.Ctx) error {
	campusID, err := helper.GetCampusIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []bulkDTO.ClassRow
	sheetRows, err := ctrl.sheetRows(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if sheetRows != nil {
		for _, r := range sheetRows {
			rows = append(rows, bulkDTO.ClassRow{
				ClassName: r["class_name"],
				Division:  r["division"],
			})
		}
	} else if err := c.BodyParser(&rows); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	result, err := bulkService.IngestClasses(ctrl.DB, campusID, rows)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Ingest kelas selesai", result)
}
