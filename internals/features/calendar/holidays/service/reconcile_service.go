// internals/features/calendar/holidays/service/reconcile_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/calendar/holidays/model"
)

/* =========================
   Reconciliation service
   ========================= */

// ReconcileService keeps the holiday↔property mapping set consistent as
// holidays and their target property lists change. All state lives in
// the stores; the service itself is request-scoped and stateless.
type ReconcileService struct {
	stores Stores
	runTx  Tx
}

func NewReconcileService(stores Stores, runTx Tx) *ReconcileService {
	return &ReconcileService{stores: stores, runTx: runTx}
}

type CreateHolidayInput struct {
	Name        string
	Year        int
	StartDate   time.Time
	EndDate     time.Time
	PropertyIDs []uuid.UUID // optional target list
	ActorID     uuid.UUID
}

type UpdateHolidayInput struct {
	HolidayID uuid.UUID
	Name      *string
	Year      *int
	StartDate *time.Time
	EndDate   *time.Time
	// nil leaves the mapping set alone; an explicit empty list reconciles
	// down to zero mappings.
	PropertyIDs *[]uuid.UUID
	ActorID     uuid.UUID
}

/* =========================
   Create (with optional property list)
   ========================= */

// CreateWithProperties persists the holiday and one mapping per valid
// target property. The holiday row is written before the property list
// is validated, so it survives a later mapping failure (long-standing
// behavior kept on purpose; see DESIGN.md).
func (s *ReconcileService) CreateWithProperties(ctx context.Context, in CreateHolidayInput) (*m.HolidayModel, *OpError) {
	// 1) (name, year) uniqueness
	dup, err := s.stores.Holidays.FindByNameYear(ctx, in.Name, in.Year)
	if err != nil {
		return nil, internalf("holiday lookup failed: %v", err)
	}
	if dup != nil {
		return nil, conflictf("Holiday %q for year %d already exists", in.Name, in.Year)
	}

	// 2) acting user
	userOK, err := s.stores.Users.Exists(ctx, in.ActorID)
	if err != nil {
		return nil, internalf("user lookup failed: %v", err)
	}
	if !userOK {
		return nil, notFoundf("User with ID %s does not exist", in.ActorID)
	}

	// 3) persist the holiday row
	holiday := &m.HolidayModel{
		HolidayName:      strings.TrimSpace(in.Name),
		HolidayYear:      in.Year,
		HolidayStartDate: in.StartDate,
		HolidayEndDate:   in.EndDate,
		HolidayCreatedBy: in.ActorID,
	}
	if err := s.stores.Holidays.Create(ctx, holiday); err != nil {
		if isUniqueViolation(err) {
			return nil, conflictf("Holiday %q for year %d already exists", in.Name, in.Year)
		}
		return nil, internalf("holiday create failed: %v", err)
	}

	if len(in.PropertyIDs) == 0 {
		return holiday, nil
	}

	// 4) validate the target list (holiday row already persisted)
	targets := dedupeIDs(in.PropertyIDs)
	missing, err := missingProperties(ctx, s.stores.Properties, targets)
	if err != nil {
		return nil, internalf("property lookup failed: %v", err)
	}
	if len(missing) > 0 {
		return nil, notFoundf("Properties with ID(s) %s do not exist", joinIDs(missing))
	}

	// 5) classify + create one mapping per property
	for _, propertyID := range targets {
		peak, err := s.stores.PropertyDetails.PeakSeasonByPropertyID(ctx, propertyID)
		if err != nil {
			return nil, internalf("property details lookup failed: %v", err)
		}
		if peak == nil {
			return nil, notFoundf("property details not found for property %s", propertyID)
		}

		existing, err := s.stores.Mappings.FindByHolidayAndProperty(ctx, holiday.HolidayID, propertyID)
		if err != nil {
			return nil, internalf("mapping lookup failed: %v", err)
		}
		if existing != nil {
			return nil, conflictf("Mapping between holiday %s and property %s already exists", holiday.HolidayID, propertyID)
		}

		row := &m.PropertySeasonHolidayModel{
			PropertySeasonHolidayPropertyID:   propertyID,
			PropertySeasonHolidayHolidayID:    holiday.HolidayID,
			PropertySeasonHolidayIsPeakSeason: IsPeakSeason(in.StartDate, in.EndDate, peak.Start, peak.End),
			PropertySeasonHolidayCreatedBy:    in.ActorID,
		}
		if err := s.stores.Mappings.Create(ctx, row); err != nil {
			if isUniqueViolation(err) {
				return nil, conflictf("Mapping between holiday %s and property %s already exists", holiday.HolidayID, propertyID)
			}
			return nil, internalf("mapping create failed: %v", err)
		}
	}

	return holiday, nil
}

/* =========================
   Update (diff & apply)
   ========================= */

// Update applies field changes and, when a property list is supplied,
// reconciles the mapping set by membership: mappings for dropped
// properties are deleted, new properties get fresh mappings, retained
// mappings are left untouched even if re-classification would flip their
// season flag. The whole diff runs in one transaction with the holiday
// row locked so concurrent updates of the same holiday serialize.
func (s *ReconcileService) Update(ctx context.Context, in UpdateHolidayInput) (*m.HolidayModel, *OpError) {
	var out *m.HolidayModel

	err := s.runTx(ctx, func(st Stores) error {
		holiday, err := st.Holidays.FindByIDForUpdate(ctx, in.HolidayID)
		if err != nil {
			return err
		}
		if holiday == nil {
			return notFoundf("Holiday with ID %s does not exist", in.HolidayID)
		}

		userOK, err := st.Users.Exists(ctx, in.ActorID)
		if err != nil {
			return err
		}
		if !userOK {
			return notFoundf("User with ID %s does not exist", in.ActorID)
		}

		var targets []uuid.UUID
		if in.PropertyIDs != nil {
			targets = dedupeIDs(*in.PropertyIDs)
			missing, err := missingProperties(ctx, st.Properties, targets)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return notFoundf("Properties with ID(s) %s do not exist", joinIDs(missing))
			}
		}

		// field changes
		if in.Name != nil {
			holiday.HolidayName = strings.TrimSpace(*in.Name)
		}
		if in.Year != nil {
			holiday.HolidayYear = *in.Year
		}
		if in.StartDate != nil {
			holiday.HolidayStartDate = *in.StartDate
		}
		if in.EndDate != nil {
			holiday.HolidayEndDate = *in.EndDate
		}
		holiday.HolidayUpdatedBy = &in.ActorID

		if holiday.HolidayEndDate.Before(holiday.HolidayStartDate) {
			return invalidf("holiday_end_date must be >= holiday_start_date")
		}

		if err := st.Holidays.Save(ctx, holiday); err != nil {
			if isUniqueViolation(err) {
				return conflictf("Holiday %q for year %d already exists", holiday.HolidayName, holiday.HolidayYear)
			}
			return err
		}

		if in.PropertyIDs == nil {
			out = holiday
			return nil
		}

		// current vs target
		current, err := st.Mappings.FindByHoliday(ctx, holiday.HolidayID)
		if err != nil {
			return err
		}

		targetFlags := make(map[uuid.UUID]bool, len(targets))
		for _, propertyID := range targets {
			peak, err := st.PropertyDetails.PeakSeasonByPropertyID(ctx, propertyID)
			if err != nil {
				return err
			}
			if peak == nil {
				return notFoundf("property details not found for property %s", propertyID)
			}
			targetFlags[propertyID] = IsPeakSeason(holiday.HolidayStartDate, holiday.HolidayEndDate, peak.Start, peak.End)
		}

		currentByProperty := make(map[uuid.UUID]struct{}, len(current))
		var toDelete []uuid.UUID
		for _, row := range current {
			currentByProperty[row.PropertySeasonHolidayPropertyID] = struct{}{}
			if _, keep := targetFlags[row.PropertySeasonHolidayPropertyID]; !keep {
				toDelete = append(toDelete, row.PropertySeasonHolidayID)
			}
		}

		var toCreate []m.PropertySeasonHolidayModel
		for _, propertyID := range targets {
			if _, exists := currentByProperty[propertyID]; exists {
				continue
			}
			toCreate = append(toCreate, m.PropertySeasonHolidayModel{
				PropertySeasonHolidayPropertyID:   propertyID,
				PropertySeasonHolidayHolidayID:    holiday.HolidayID,
				PropertySeasonHolidayIsPeakSeason: targetFlags[propertyID],
				PropertySeasonHolidayCreatedBy:    in.ActorID,
			})
		}

		if len(toDelete) > 0 {
			if err := st.Mappings.BulkDelete(ctx, toDelete); err != nil {
				return err
			}
		}
		if len(toCreate) > 0 {
			if err := st.Mappings.BulkCreate(ctx, toCreate); err != nil {
				return err
			}
		}

		out = holiday
		return nil
	})
	if err != nil {
		return nil, asOpError(err)
	}
	return out, nil
}

/* =========================
   Delete (guarded)
   ========================= */

// Delete refuses while any mapping still references the holiday; the
// guard never cascades.
func (s *ReconcileService) Delete(ctx context.Context, holidayID uuid.UUID) *OpError {
	mapped, err := s.stores.Mappings.ExistsForHoliday(ctx, holidayID)
	if err != nil {
		return internalf("mapping lookup failed: %v", err)
	}
	if mapped {
		return conflictf("holiday exists and is mapped to property/properties, hence cannot be deleted")
	}

	holiday, err := s.stores.Holidays.FindByID(ctx, holidayID)
	if err != nil {
		return internalf("holiday lookup failed: %v", err)
	}
	if holiday == nil {
		return notFoundf("Holiday with ID %s does not exist", holidayID)
	}

	if err := s.stores.Holidays.Delete(ctx, holidayID); err != nil {
		return internalf("holiday delete failed: %v", err)
	}
	return nil
}

/* =========================
   Reads (used by the controller)
   ========================= */

func (s *ReconcileService) GetByID(ctx context.Context, holidayID uuid.UUID) (*m.HolidayModel, []m.PropertySeasonHolidayModel, *OpError) {
	holiday, err := s.stores.Holidays.FindByID(ctx, holidayID)
	if err != nil {
		return nil, nil, internalf("holiday lookup failed: %v", err)
	}
	if holiday == nil {
		return nil, nil, notFoundf("Holiday with ID %s does not exist", holidayID)
	}
	mappings, err := s.stores.Mappings.FindByHoliday(ctx, holidayID)
	if err != nil {
		return nil, nil, internalf("mapping lookup failed: %v", err)
	}
	return holiday, mappings, nil
}

/* =========================
   Small helpers
   ========================= */

func missingProperties(ctx context.Context, ps PropertyStore, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	existing, err := ps.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func joinIDs(ids []uuid.UUID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ", ")
}

func asOpError(err error) *OpError {
	var op *OpError
	if errors.As(err, &op) {
		return op
	}
	return internalf("%v", err)
}
