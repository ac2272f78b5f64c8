// internals/features/calendar/holidays/service/validate.go
package service

import (
	"context"

	"github.com/google/uuid"
)

/* =========================
   Existence validator
   ========================= */

// TargetCheck reports which referenced entities exist. Missing property
// IDs keep the caller's order so failure messages stay deterministic.
type TargetCheck struct {
	MissingPropertyIDs []uuid.UUID
	HolidayExists      bool
	UserExists         bool
}

// ValidateTargets looks up the property list, the holiday (when given)
// and the acting user against the stores. Duplicate property IDs count
// as one logical target. Missing entities are reported, not raised.
func (s *ReconcileService) ValidateTargets(ctx context.Context, propertyIDs []uuid.UUID, holidayID, userID uuid.UUID) (*TargetCheck, error) {
	out := &TargetCheck{}

	ids := dedupeIDs(propertyIDs)
	if len(ids) > 0 {
		existing, err := s.stores.Properties.ExistingIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if _, ok := existing[id]; !ok {
				out.MissingPropertyIDs = append(out.MissingPropertyIDs, id)
			}
		}
	}

	if holidayID != uuid.Nil {
		h, err := s.stores.Holidays.FindByID(ctx, holidayID)
		if err != nil {
			return nil, err
		}
		out.HolidayExists = h != nil
	}

	if userID != uuid.Nil {
		ok, err := s.stores.Users.Exists(ctx, userID)
		if err != nil {
			return nil, err
		}
		out.UserExists = ok
	}

	return out, nil
}

// dedupeIDs drops repeats while preserving first-seen order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
