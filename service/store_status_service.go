package services

import (
	"log"
	"time"

	redisdao "sf-server/dao/redis"
	"sf-server/hours"
	"sf-server/models"
	"sf-server/models/schedule"
)

// StoreStatusService computes open/closed statuses for tenant stores. The
// hours engine itself is pure; this service is the collaborator that fetches
// the schedule document, resolves the store's timezone, and supplies the
// clock.
type StoreStatusService struct {
	storeDao *redisdao.RedisStoreDAO
}

// NewStoreStatusService constructs a new StoreStatusService with Redis dependency injection.
func NewStoreStatusService(storeDao *redisdao.RedisStoreDAO) *StoreStatusService {
	return &StoreStatusService{
		storeDao: storeDao,
	}
}

// GetStoreStatus computes a fresh status for the store right now.
func (ss *StoreStatusService) GetStoreStatus(storeID string) (*schedule.StoreStatus, error) {
	store, err := ss.storeDao.GetStore(storeID)
	if err != nil {
		return nil, err
	}
	st := ss.statusFor(store, time.Now())
	return &st, nil
}

// ValidateSchedule runs structural validation on a raw schedule document,
// for the schedule-editing surface.
func (ss *StoreStatusService) ValidateSchedule(raw schedule.RawWeeklySchedule) schedule.ValidationResult {
	return hours.Validate(raw)
}

// statusFor evaluates the store's schedule at the given instant, shifted into
// the store's timezone.
func (ss *StoreStatusService) statusFor(store *models.Store, now time.Time) schedule.StoreStatus {
	ws := hours.Normalize(store.Schedule)
	return hours.Status(ws, now.In(ss.locationFor(store, ws)))
}

// locationFor resolves the store's timezone label. The schedule's own label
// wins over the store document's; anything unresolvable falls back to UTC.
func (ss *StoreStatusService) locationFor(store *models.Store, ws schedule.WeeklySchedule) *time.Location {
	label := ws.Timezone
	if label == "" {
		label = store.Timezone
	}
	if label == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(label)
	if err != nil {
		log.Printf("[StoreStatusService] Unknown timezone %q for store %s, falling back to UTC", label, store.StoreID)
		return time.UTC
	}
	return loc
}
