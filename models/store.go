package models

import (
	"fmt"

	"sf-server/models/schedule"
)

// Store is the tenant storefront document as persisted in Redis. Only the
// fields the hours engine and its collaborators need are modeled here; the
// admin panel owns the rest of the storefront document.
type Store struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	Slug      string `json:"slug,omitempty"`

	// Timezone is an opaque label (IANA id) resolved best-effort by the
	// service layer. The schedule's own timezone field wins when both are set.
	Timezone string `json:"timezone,omitempty"`

	Schedule schedule.RawWeeklySchedule `json:"schedule"`
}

func (s *Store) ToString() string {
	return fmt.Sprintf("Store(id=%s, name=%s, slug=%s, tz=%s)",
		s.StoreID, s.StoreName, s.Slug, s.Timezone)
}
