package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	m "villashare_backend/internals/features/calendar/holidays/model"
)

/* =========================
   Fakes
   ========================= */

type fakeStores struct {
	users      map[uuid.UUID]bool
	properties map[uuid.UUID]bool
	details    map[uuid.UUID]PeakSeason
	holidays   map[uuid.UUID]*m.HolidayModel
	mappings   []*m.PropertySeasonHolidayModel

	now time.Time
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		users:      map[uuid.UUID]bool{},
		properties: map[uuid.UUID]bool{},
		details:    map[uuid.UUID]PeakSeason{},
		holidays:   map[uuid.UUID]*m.HolidayModel{},
		now:        time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStores) stores() Stores {
	return Stores{
		Users:           f,
		Properties:      f,
		PropertyDetails: f,
		Holidays:        fakeHolidayStore{f},
		Mappings:        fakeMappingStore{f},
	}
}

func (f *fakeStores) tx(ctx context.Context, fn func(Stores) error) error {
	return fn(f.stores())
}

func newFakeService() (*ReconcileService, *fakeStores) {
	f := newFakeStores()
	return NewReconcileService(f.stores(), f.tx), f
}

func (f *fakeStores) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.users[id], nil
}

func (f *fakeStores) ExistingIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := map[uuid.UUID]struct{}{}
	for _, id := range ids {
		if f.properties[id] {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func (f *fakeStores) PeakSeasonByPropertyID(_ context.Context, propertyID uuid.UUID) (*PeakSeason, error) {
	if ps, ok := f.details[propertyID]; ok {
		return &ps, nil
	}
	return nil, nil
}

// fakeHolidayStore and fakeMappingStore wrap the shared state; both
// ports declare a Create method, so they cannot share a receiver.
type fakeHolidayStore struct{ f *fakeStores }

func (s fakeHolidayStore) FindByID(_ context.Context, id uuid.UUID) (*m.HolidayModel, error) {
	return s.f.holidays[id], nil
}

func (s fakeHolidayStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*m.HolidayModel, error) {
	return s.FindByID(ctx, id)
}

func (s fakeHolidayStore) FindByNameYear(_ context.Context, name string, year int) (*m.HolidayModel, error) {
	for _, h := range s.f.holidays {
		if h.HolidayName == name && h.HolidayYear == year {
			return h, nil
		}
	}
	return nil, nil
}

func (s fakeHolidayStore) Create(_ context.Context, h *m.HolidayModel) error {
	if h.HolidayID == uuid.Nil {
		h.HolidayID = uuid.New()
	}
	h.HolidayCreatedAt = s.f.now
	h.HolidayUpdatedAt = s.f.now
	s.f.holidays[h.HolidayID] = h
	return nil
}

func (s fakeHolidayStore) Save(_ context.Context, h *m.HolidayModel) error {
	h.HolidayUpdatedAt = s.f.now.Add(time.Minute)
	s.f.holidays[h.HolidayID] = h
	return nil
}

func (s fakeHolidayStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.f.holidays, id)
	return nil
}

type fakeMappingStore struct{ f *fakeStores }

func (s fakeMappingStore) FindByHoliday(_ context.Context, holidayID uuid.UUID) ([]m.PropertySeasonHolidayModel, error) {
	var out []m.PropertySeasonHolidayModel
	for _, row := range s.f.mappings {
		if row.PropertySeasonHolidayHolidayID == holidayID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s fakeMappingStore) FindByHolidayAndProperty(_ context.Context, holidayID, propertyID uuid.UUID) (*m.PropertySeasonHolidayModel, error) {
	for _, row := range s.f.mappings {
		if row.PropertySeasonHolidayHolidayID == holidayID && row.PropertySeasonHolidayPropertyID == propertyID {
			return row, nil
		}
	}
	return nil, nil
}

func (s fakeMappingStore) create(row *m.PropertySeasonHolidayModel) {
	if row.PropertySeasonHolidayID == uuid.Nil {
		row.PropertySeasonHolidayID = uuid.New()
	}
	row.PropertySeasonHolidayCreatedAt = s.f.now
	s.f.mappings = append(s.f.mappings, row)
}

func (s fakeMappingStore) Create(_ context.Context, row *m.PropertySeasonHolidayModel) error {
	s.create(row)
	return nil
}

func (s fakeMappingStore) BulkCreate(_ context.Context, rows []m.PropertySeasonHolidayModel) error {
	for i := range rows {
		row := rows[i]
		s.create(&row)
	}
	return nil
}

func (s fakeMappingStore) BulkDelete(_ context.Context, ids []uuid.UUID) error {
	drop := map[uuid.UUID]struct{}{}
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.f.mappings[:0]
	for _, row := range s.f.mappings {
		if _, ok := drop[row.PropertySeasonHolidayID]; !ok {
			kept = append(kept, row)
		}
	}
	s.f.mappings = kept
	return nil
}

func (s fakeMappingStore) ExistsForHoliday(_ context.Context, holidayID uuid.UUID) (bool, error) {
	for _, row := range s.f.mappings {
		if row.PropertySeasonHolidayHolidayID == holidayID {
			return true, nil
		}
	}
	return false, nil
}

/* =========================
   Fixture helpers
   ========================= */

func (f *fakeStores) mappingsFor(holidayID uuid.UUID) []m.PropertySeasonHolidayModel {
	rows, _ := fakeMappingStore{f}.FindByHoliday(context.Background(), holidayID)
	return rows
}

func (f *fakeStores) holidayByNameYear(name string, year int) *m.HolidayModel {
	h, _ := fakeHolidayStore{f}.FindByNameYear(context.Background(), name, year)
	return h
}

func (f *fakeStores) holidayByID(id uuid.UUID) *m.HolidayModel {
	return f.holidays[id]
}

func (f *fakeStores) addUser() uuid.UUID {
	id := uuid.New()
	f.users[id] = true
	return id
}

func (f *fakeStores) addProperty(peak *PeakSeason) uuid.UUID {
	id := uuid.New()
	f.properties[id] = true
	if peak != nil {
		f.details[id] = *peak
	}
	return id
}

func defaultPeak() *PeakSeason {
	return &PeakSeason{Start: date(2024, 3, 15), End: date(2024, 6, 28)}
}

/* =========================
   Create
   ========================= */

func TestCreateWithProperties(t *testing.T) {
	ctx := context.Background()

	t.Run("creates holiday and one mapping per property with classified flags", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		peakProp := f.addProperty(defaultPeak())
		offProp := f.addProperty(&PeakSeason{Start: date(2024, 12, 1), End: date(2024, 12, 31)})

		h, op := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name:        "Midsummer",
			Year:        2024,
			StartDate:   date(2024, 6, 15),
			EndDate:     date(2024, 6, 18),
			PropertyIDs: []uuid.UUID{peakProp, offProp},
			ActorID:     actor,
		})
		if op != nil {
			t.Fatalf("unexpected error: %v", op)
		}
		if h == nil || h.HolidayID == uuid.Nil {
			t.Fatal("holiday not persisted")
		}

		rows := f.mappingsFor(h.HolidayID)
		if len(rows) != 2 {
			t.Fatalf("mappings = %d, want 2", len(rows))
		}
		flags := map[uuid.UUID]bool{}
		for _, row := range rows {
			flags[row.PropertySeasonHolidayPropertyID] = row.PropertySeasonHolidayIsPeakSeason
		}
		if !flags[peakProp] {
			t.Error("holiday inside peak range must map as peak season")
		}
		if flags[offProp] {
			t.Error("holiday outside peak range must map as off season")
		}
	})

	t.Run("duplicate name and year conflicts on the second call", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		in := CreateHolidayInput{
			Name: "Christmas", Year: 2024,
			StartDate: date(2024, 12, 24), EndDate: date(2024, 12, 26),
			ActorID: actor,
		}

		if _, op := svc.CreateWithProperties(ctx, in); op != nil {
			t.Fatalf("first create failed: %v", op)
		}
		_, op := svc.CreateWithProperties(ctx, in)
		if op == nil || op.Kind != OpConflict {
			t.Fatalf("second create = %v, want conflict", op)
		}
	})

	t.Run("missing properties are itemized and the holiday row survives", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		real := f.addProperty(defaultPeak())
		ghost1 := uuid.New()
		ghost2 := uuid.New()

		_, op := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Easter", Year: 2024,
			StartDate: date(2024, 3, 29), EndDate: date(2024, 4, 1),
			PropertyIDs: []uuid.UUID{real, ghost1, ghost2},
			ActorID:     actor,
		})
		if op == nil || op.Kind != OpNotFound {
			t.Fatalf("create = %v, want not-found", op)
		}
		if !strings.Contains(op.Message, ghost1.String()) || !strings.Contains(op.Message, ghost2.String()) {
			t.Errorf("message %q must name both missing IDs", op.Message)
		}
		if strings.Contains(op.Message, real.String()) {
			t.Errorf("message %q must not name the existing property", op.Message)
		}

		// the holiday row is written before the property list is validated
		h := f.holidayByNameYear("Easter", 2024)
		if h == nil {
			t.Error("holiday row must survive a property validation failure")
		}
	})

	t.Run("missing property details fail by property id", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		noDetails := f.addProperty(nil)

		_, op := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "New Year", Year: 2024,
			StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 1),
			PropertyIDs: []uuid.UUID{noDetails},
			ActorID:     actor,
		})
		if op == nil || op.Kind != OpNotFound {
			t.Fatalf("create = %v, want not-found", op)
		}
		if !strings.Contains(op.Message, noDetails.String()) {
			t.Errorf("message %q must name the property without details", op.Message)
		}
	})

	t.Run("unknown actor fails before the holiday row is written", func(t *testing.T) {
		svc, f := newFakeService()

		_, op := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Whitsun", Year: 2024,
			StartDate: date(2024, 5, 19), EndDate: date(2024, 5, 20),
			ActorID:   uuid.New(),
		})
		if op == nil || op.Kind != OpNotFound {
			t.Fatalf("create = %v, want not-found", op)
		}
		if h := f.holidayByNameYear("Whitsun", 2024); h != nil {
			t.Error("holiday must not be written for an unknown actor")
		}
	})

	t.Run("duplicate property ids count as one target", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		prop := f.addProperty(defaultPeak())

		h, op := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Ascension", Year: 2024,
			StartDate: date(2024, 5, 9), EndDate: date(2024, 5, 9),
			PropertyIDs: []uuid.UUID{prop, prop, prop},
			ActorID:     actor,
		})
		if op != nil {
			t.Fatalf("unexpected error: %v", op)
		}
		rows := f.mappingsFor(h.HolidayID)
		if len(rows) != 1 {
			t.Fatalf("mappings = %d, want 1", len(rows))
		}
	})
}

/* =========================
   Update (diff & apply)
   ========================= */

func TestUpdate_DiffByMembership(t *testing.T) {
	ctx := context.Background()
	svc, f := newFakeService()
	actor := f.addUser()

	p1 := f.addProperty(defaultPeak())
	p2 := f.addProperty(defaultPeak())
	p3 := f.addProperty(defaultPeak())
	p4 := f.addProperty(defaultPeak())

	h, op := svc.CreateWithProperties(ctx, CreateHolidayInput{
		Name: "Midsummer", Year: 2024,
		StartDate: date(2024, 6, 15), EndDate: date(2024, 6, 18),
		PropertyIDs: []uuid.UUID{p1, p2, p3},
		ActorID:     actor,
	})
	if op != nil {
		t.Fatalf("setup create failed: %v", op)
	}

	before := f.mappingsFor(h.HolidayID)
	beforeByProp := map[uuid.UUID]m.PropertySeasonHolidayModel{}
	for _, row := range before {
		beforeByProp[row.PropertySeasonHolidayPropertyID] = row
	}

	// {p1,p2,p3} -> {p2,p3,p4}
	target := []uuid.UUID{p2, p3, p4}
	_, op = svc.Update(ctx, UpdateHolidayInput{
		HolidayID:   h.HolidayID,
		PropertyIDs: &target,
		ActorID:     actor,
	})
	if op != nil {
		t.Fatalf("update failed: %v", op)
	}

	after := f.mappingsFor(h.HolidayID)
	if len(after) != 3 {
		t.Fatalf("mappings = %d, want 3", len(after))
	}
	afterByProp := map[uuid.UUID]m.PropertySeasonHolidayModel{}
	for _, row := range after {
		afterByProp[row.PropertySeasonHolidayPropertyID] = row
	}

	if _, ok := afterByProp[p1]; ok {
		t.Error("mapping for the dropped property must be deleted")
	}
	if _, ok := afterByProp[p4]; !ok {
		t.Error("mapping for the added property must be created")
	}
	for _, keep := range []uuid.UUID{p2, p3} {
		b, a := beforeByProp[keep], afterByProp[keep]
		if b.PropertySeasonHolidayID != a.PropertySeasonHolidayID {
			t.Errorf("retained mapping for %s must keep its id", keep)
		}
		if !b.PropertySeasonHolidayCreatedAt.Equal(a.PropertySeasonHolidayCreatedAt) {
			t.Errorf("retained mapping for %s must keep its created_at", keep)
		}
	}
}

func TestUpdate_RetainedMappingsKeepStaleFlags(t *testing.T) {
	// membership drives writes; a date change that would flip the season
	// flag of a retained mapping does not rewrite it
	ctx := context.Background()
	svc, f := newFakeService()
	actor := f.addUser()
	prop := f.addProperty(defaultPeak())

	h, op := svc.CreateWithProperties(ctx, CreateHolidayInput{
		Name: "Midsummer", Year: 2024,
		StartDate: date(2024, 6, 15), EndDate: date(2024, 6, 18), // peak
		PropertyIDs: []uuid.UUID{prop},
		ActorID:     actor,
	})
	if op != nil {
		t.Fatalf("setup create failed: %v", op)
	}

	newStart, newEnd := date(2024, 8, 1), date(2024, 8, 3) // off season now
	target := []uuid.UUID{prop}
	_, op = svc.Update(ctx, UpdateHolidayInput{
		HolidayID:   h.HolidayID,
		StartDate:   &newStart,
		EndDate:     &newEnd,
		PropertyIDs: &target,
		ActorID:     actor,
	})
	if op != nil {
		t.Fatalf("update failed: %v", op)
	}

	rows := f.mappingsFor(h.HolidayID)
	if len(rows) != 1 {
		t.Fatalf("mappings = %d, want 1", len(rows))
	}
	if !rows[0].PropertySeasonHolidayIsPeakSeason {
		t.Error("retained mapping must keep the flag computed at creation time")
	}
}

func TestUpdate_PropertyListSemantics(t *testing.T) {
	ctx := context.Background()

	t.Run("absent list leaves mappings untouched", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		prop := f.addProperty(defaultPeak())

		h, _ := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Easter", Year: 2024,
			StartDate: date(2024, 3, 29), EndDate: date(2024, 4, 1),
			PropertyIDs: []uuid.UUID{prop},
			ActorID:     actor,
		})

		name := "Easter Monday"
		if _, op := svc.Update(ctx, UpdateHolidayInput{HolidayID: h.HolidayID, Name: &name, ActorID: actor}); op != nil {
			t.Fatalf("update failed: %v", op)
		}
		rows := f.mappingsFor(h.HolidayID)
		if len(rows) != 1 {
			t.Fatalf("mappings = %d, want 1 (untouched)", len(rows))
		}
	})

	t.Run("explicit empty list reconciles to zero mappings", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		prop := f.addProperty(defaultPeak())

		h, _ := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Easter", Year: 2024,
			StartDate: date(2024, 3, 29), EndDate: date(2024, 4, 1),
			PropertyIDs: []uuid.UUID{prop},
			ActorID:     actor,
		})

		empty := []uuid.UUID{}
		if _, op := svc.Update(ctx, UpdateHolidayInput{HolidayID: h.HolidayID, PropertyIDs: &empty, ActorID: actor}); op != nil {
			t.Fatalf("update failed: %v", op)
		}
		rows := f.mappingsFor(h.HolidayID)
		if len(rows) != 0 {
			t.Fatalf("mappings = %d, want 0", len(rows))
		}
	})

	t.Run("unknown holiday is not found", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()

		_, op := svc.Update(ctx, UpdateHolidayInput{HolidayID: uuid.New(), ActorID: actor})
		if op == nil || op.Kind != OpNotFound {
			t.Fatalf("update = %v, want not-found", op)
		}
	})

	t.Run("missing target properties are itemized", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		prop := f.addProperty(defaultPeak())
		ghost := uuid.New()

		h, _ := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Easter", Year: 2024,
			StartDate: date(2024, 3, 29), EndDate: date(2024, 4, 1),
			ActorID: actor,
		})

		target := []uuid.UUID{prop, ghost}
		_, op := svc.Update(ctx, UpdateHolidayInput{HolidayID: h.HolidayID, PropertyIDs: &target, ActorID: actor})
		if op == nil || op.Kind != OpNotFound {
			t.Fatalf("update = %v, want not-found", op)
		}
		if !strings.Contains(op.Message, ghost.String()) {
			t.Errorf("message %q must name the missing property", op.Message)
		}
	})
}

/* =========================
   Delete (guard)
   ========================= */

func TestDelete_Guard(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while mappings reference the holiday", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()
		prop := f.addProperty(defaultPeak())

		h, _ := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Christmas", Year: 2024,
			StartDate: date(2024, 12, 24), EndDate: date(2024, 12, 26),
			PropertyIDs: []uuid.UUID{prop},
			ActorID:     actor,
		})

		op := svc.Delete(ctx, h.HolidayID)
		if op == nil || op.Kind != OpConflict {
			t.Fatalf("delete = %v, want conflict", op)
		}
		if got := f.holidayByID(h.HolidayID); got == nil {
			t.Error("guarded delete must not remove the holiday")
		}
	})

	t.Run("succeeds once no mappings remain", func(t *testing.T) {
		svc, f := newFakeService()
		actor := f.addUser()

		h, _ := svc.CreateWithProperties(ctx, CreateHolidayInput{
			Name: "Christmas", Year: 2024,
			StartDate: date(2024, 12, 24), EndDate: date(2024, 12, 26),
			ActorID: actor,
		})

		if op := svc.Delete(ctx, h.HolidayID); op != nil {
			t.Fatalf("delete failed: %v", op)
		}
		if got := f.holidayByID(h.HolidayID); got != nil {
			t.Error("holiday must be gone after delete")
		}
	})

	t.Run("unknown holiday is not found", func(t *testing.T) {
		svc, _ := newFakeService()
		op := svc.Delete(ctx, uuid.New())
		if op == nil || op.Kind != OpNotFound {
			t.Fatalf("delete = %v, want not-found", op)
		}
	})
}

/* =========================
   Existence validator
   ========================= */

func TestValidateTargets(t *testing.T) {
	ctx := context.Background()
	svc, f := newFakeService()
	actor := f.addUser()
	prop := f.addProperty(nil)
	ghost1 := uuid.New()
	ghost2 := uuid.New()

	check, err := svc.ValidateTargets(ctx, []uuid.UUID{ghost1, prop, ghost2, ghost1}, uuid.Nil, actor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !check.UserExists {
		t.Error("existing user reported missing")
	}
	if len(check.MissingPropertyIDs) != 2 {
		t.Fatalf("missing = %d, want 2 (duplicates count once)", len(check.MissingPropertyIDs))
	}
	// reporting order follows the caller's order
	if check.MissingPropertyIDs[0] != ghost1 || check.MissingPropertyIDs[1] != ghost2 {
		t.Errorf("missing order = %v, want [%s %s]", check.MissingPropertyIDs, ghost1, ghost2)
	}
}
