package schedule

import "time"

// Kinds of status transitions reported by the next-event scanner.
const (
	ChangeKindOpen  = "open"
	ChangeKindClose = "close"
)

// NextStatusChange describes the next boundary instant at which the store's
// open/closed state flips. Message is a rendering convenience for the status
// badge; At and Kind are the machine-relevant fields.
type NextStatusChange struct {
	At      time.Time `json:"at"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	IsToday bool      `json:"isToday,omitempty"`
}

// StoreStatus is the value returned to the storefront for every status check.
// NextChange is nil only when no open period exists anywhere in the week.
type StoreStatus struct {
	IsOpen     bool              `json:"isOpen"`
	NextChange *NextStatusChange `json:"nextChange"`
}
