package models

// Status labels shown to customers and staff.
const (
	StatusReceived  = "Diterima"
	StatusWeighed   = "Ditimbang"
	StatusWashed    = "Dicuci"
	StatusDried     = "Dikeringkan"
	StatusIroned    = "Disetrika"
	StatusReady     = "Siap Diambil"
	StatusDone      = "Selesai"
	StatusCancelled = "Dibatalkan"
)

// SystemActor is the updated_by label for entries written by the backend itself.
const SystemActor = "System"

// KnownStatuses lists every label in progression order.
var KnownStatuses = []string{
	StatusReceived,
	StatusWeighed,
	StatusWashed,
	StatusDried,
	StatusIroned,
	StatusReady,
	StatusDone,
	StatusCancelled,
}

// Dashboard buckets. Completed and active are not complements:
// Dibatalkan belongs to neither, and Siap Diambil counts as completed.
var (
	CompletedStatuses  = []string{StatusDone, StatusReady}
	InactiveStatuses   = []string{StatusDone, StatusCancelled, StatusReady}
	InProgressStatuses = []string{StatusWeighed, StatusWashed, StatusDried, StatusIroned}
)

func IsKnownStatus(s string) bool {
	for _, known := range KnownStatuses {
		if known == s {
			return true
		}
	}
	return false
}
