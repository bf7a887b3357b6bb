// file: internals/features/academics/bulk/dto/bulk_dto.go
package dto

/* ===================== ROWS (hasil parser eksternal) ===================== */

// Row datang dari parser spreadsheet yang sudah menormalisasi kolom;
// endpoint bulk menerima bentuk JSON-nya langsung.

type StudentRow struct {
	EnrollmentNo string `json:"enrollment_no"`
	Name         string `json:"name"`
	Semester     int    `json:"semester"`
	Division     string `json:"division,omitempty"`
	Password     string `json:"password,omitempty"` // kosong → kredensial default
}

type ProfessorRow struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"` // identitas scope kampus
	Email    string `json:"email,omitempty"`    // identitas scope global
	Password string `json:"password,omitempty"`
}

type ClassRow struct {
	ClassName string `json:"class_name"`
	Division  string `json:"division"`
}

/* ===================== RESULT ===================== */

const (
	SkipReasonExists          = "already exists"
	SkipReasonDuplicateInFile = "duplicate in file"
	SkipReasonRace            = "race"
)

type BulkSkip struct {
	Row    int    `json:"row"` // nomor baris di file (1-based, urutan file)
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

type BulkRowError struct {
	Row     int    `json:"row"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// BulkResult — disposisi per-batch; tidak pernah bool sukses/gagal polos.
type BulkResult struct {
	Total    int            `json:"total"`
	Inserted int            `json:"inserted"`
	Skipped  []BulkSkip     `json:"skipped"`
	Errors   []BulkRowError `json:"errors"`
}
