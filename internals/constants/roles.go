package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleHod       = "hod"
	RoleProfessor = "professor"
	RoleStudent   = "student"
)

// Template pesan error role
const (
	ErrOnlyHodCanAccess        = "❌ Hanya HOD (kampus) yang boleh mengakses fitur %s."
	ErrOnlyProfessorsCanAccess = "❌ Hanya professor atau HOD yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess   = "❌ Hanya student yang boleh mengakses fitur %s."
)

func RoleErrorHod(feature string) string {
	return fmt.Sprintf(ErrOnlyHodCanAccess, feature)
}

func RoleErrorProfessor(feature string) string {
	return fmt.Sprintf(ErrOnlyProfessorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleHod,
		RoleProfessor,
		RoleStudent,
	}

	HodOnly = []string{
		RoleHod,
	}

	ProfessorAndAbove = []string{
		RoleProfessor,
		RoleHod,
	}
)
