package constants

import "fmt"

// Role names
const (
	RoleStudent = "student"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// Template pesan error role
const (
	ErrOnlyTrainersCanAccess = "❌ Hanya trainer atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTrainer(feature string) string {
	return fmt.Sprintf(ErrOnlyTrainersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTrainer,
		RoleAdmin,
	}

	TrainerAndAbove = []string{
		RoleTrainer,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
