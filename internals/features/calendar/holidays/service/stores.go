// internals/features/calendar/holidays/service/stores.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/calendar/holidays/model"
)

/* =========================
   Storage ports
   ========================= */

// PeakSeason is the read-only classification input sourced from a
// property's details record.
type PeakSeason struct {
	Start time.Time
	End   time.Time
}

type UserStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type PropertyStore interface {
	// ExistingIDs returns the subset of ids that exist.
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type PropertyDetailStore interface {
	// PeakSeasonByPropertyID returns nil when the details record is absent
	// or its peak season dates are not set.
	PeakSeasonByPropertyID(ctx context.Context, propertyID uuid.UUID) (*PeakSeason, error)
}

type HolidayStore interface {
	// FindByID returns (nil, nil) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*m.HolidayModel, error)
	// FindByIDForUpdate locks the row for the enclosing transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*m.HolidayModel, error)
	FindByNameYear(ctx context.Context, name string, year int) (*m.HolidayModel, error)
	Create(ctx context.Context, h *m.HolidayModel) error
	Save(ctx context.Context, h *m.HolidayModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MappingStore interface {
	FindByHoliday(ctx context.Context, holidayID uuid.UUID) ([]m.PropertySeasonHolidayModel, error)
	// FindByHolidayAndProperty returns (nil, nil) when absent; conflict
	// check at single-mapping creation time.
	FindByHolidayAndProperty(ctx context.Context, holidayID, propertyID uuid.UUID) (*m.PropertySeasonHolidayModel, error)
	Create(ctx context.Context, row *m.PropertySeasonHolidayModel) error
	BulkCreate(ctx context.Context, rows []m.PropertySeasonHolidayModel) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) error
	// ExistsForHoliday guards holiday deletion.
	ExistsForHoliday(ctx context.Context, holidayID uuid.UUID) (bool, error)
}

// Stores bundles the collaborators of one reconciliation call.
type Stores struct {
	Users           UserStore
	Properties      PropertyStore
	PropertyDetails PropertyDetailStore
	Holidays        HolidayStore
	Mappings        MappingStore
}

// Tx runs fn against transaction-bound stores; a returned error rolls the
// unit back.
type Tx func(ctx context.Context, fn func(Stores) error) error
