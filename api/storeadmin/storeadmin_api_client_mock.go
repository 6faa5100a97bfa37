package storeadmin

import (
	"fmt"

	"sf-server/models"
	"sf-server/models/schedule"
)

// StoreAdminApiClientMock serves a fixed set of tenant stores for dev and
// test environments, one per stored schedule shape.
type StoreAdminApiClientMock struct {
	stores map[string]models.Store
}

// NewStoreAdminApiClientMock creates a mock with two deterministic stores.
func NewStoreAdminApiClientMock() *StoreAdminApiClientMock {
	return &StoreAdminApiClientMock{
		stores: map[string]models.Store{
			"panaderia-centro": {
				StoreID:   "panaderia-centro",
				StoreName: "Panadería Centro",
				Slug:      "panaderia-centro",
				Timezone:  "America/Mexico_City",
				Schedule: schedule.RawWeeklySchedule{
					Days: map[string]schedule.RawDay{
						"monday":    {IsOpen: true, OpenTime: "09:00", CloseTime: "19:00", Breaks: []schedule.RawBreak{{Start: "13:00", End: "14:00"}}},
						"tuesday":   {IsOpen: true, OpenTime: "09:00", CloseTime: "19:00", Breaks: []schedule.RawBreak{{Start: "13:00", End: "14:00"}}},
						"wednesday": {IsOpen: true, OpenTime: "09:00", CloseTime: "19:00"},
						"thursday":  {IsOpen: true, OpenTime: "09:00", CloseTime: "19:00"},
						"friday":    {IsOpen: true, OpenTime: "09:00", CloseTime: "21:00"},
						"saturday":  {IsOpen: true, OpenTime: "10:00", CloseTime: "14:00"},
						"sunday":    {IsOpen: false},
					},
				},
			},
			"bar-la-noche": {
				StoreID:   "bar-la-noche",
				StoreName: "Bar La Noche",
				Slug:      "bar-la-noche",
				Timezone:  "America/Mexico_City",
				Schedule: schedule.RawWeeklySchedule{
					Days: map[string]schedule.RawDay{
						"thursday": {HasPeriods: true, Periods: []schedule.RawPeriod{
							{Open: "18:00", Close: "23:00"},
						}},
						"friday": {HasPeriods: true, Periods: []schedule.RawPeriod{
							{Open: "12:00", Close: "15:00"},
							{Open: "18:00", Close: "02:00", NextDay: true},
						}},
						"saturday": {HasPeriods: true, Periods: []schedule.RawPeriod{
							{Open: "18:00", Close: "03:00", NextDay: true},
						}},
					},
				},
			},
		},
	}
}

// ListStoreIDs returns the IDs of the mocked stores.
func (m *StoreAdminApiClientMock) ListStoreIDs() ([]string, error) {
	ids := make([]string, 0, len(m.stores))
	for id := range m.stores {
		ids = append(ids, id)
	}
	return ids, nil
}

// GetStore returns the mocked store for the given ID.
func (m *StoreAdminApiClientMock) GetStore(storeID string) (*models.Store, error) {
	s, ok := m.stores[storeID]
	if !ok {
		return nil, fmt.Errorf("store not found: %s", storeID)
	}
	return &s, nil
}

// SetAPIKey is a no-op on the mock.
func (m *StoreAdminApiClientMock) SetAPIKey(apiKey string) {}
