// internals/features/calendar/holidays/service/stores_gorm.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "villashare_backend/internals/features/calendar/holidays/model"
	propertyModel "villashare_backend/internals/features/properties/property/model"
	userModel "villashare_backend/internals/features/users/user/model"
)

/* =========================
   GORM-backed stores
   ========================= */

func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Users:           &gormUserStore{db: db},
		Properties:      &gormPropertyStore{db: db},
		PropertyDetails: &gormPropertyDetailStore{db: db},
		Holidays:        &gormHolidayStore{db: db},
		Mappings:        &gormMappingStore{db: db},
	}
}

// GormTx binds a reconciliation unit to one database transaction.
func GormTx(db *gorm.DB) Tx {
	return func(ctx context.Context, fn func(Stores) error) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewGormStores(tx))
		})
	}
}

// NewGormReconcileService is the production wiring.
func NewGormReconcileService(db *gorm.DB) *ReconcileService {
	return NewReconcileService(NewGormStores(db), GormTx(db))
}

/* =========================
   Users
   ========================= */

type gormUserStore struct{ db *gorm.DB }

func (s *gormUserStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("user_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

/* =========================
   Properties
   ========================= */

type gormPropertyStore struct{ db *gorm.DB }

func (s *gormPropertyStore) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]struct{}{}, nil
	}
	var found []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&propertyModel.PropertyModel{}).
		Where("property_id IN ?", ids).
		Pluck("property_id", &found).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		out[id] = struct{}{}
	}
	return out, nil
}

/* =========================
   Property details
   ========================= */

type gormPropertyDetailStore struct{ db *gorm.DB }

func (s *gormPropertyDetailStore) PeakSeasonByPropertyID(ctx context.Context, propertyID uuid.UUID) (*PeakSeason, error) {
	var row propertyModel.PropertyDetailModel
	err := s.db.WithContext(ctx).
		Where("property_detail_property_id = ?", propertyID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if row.PropertyDetailPeakSeasonStart == nil || row.PropertyDetailPeakSeasonEnd == nil {
		return nil, nil
	}
	return &PeakSeason{
		Start: *row.PropertyDetailPeakSeasonStart,
		End:   *row.PropertyDetailPeakSeasonEnd,
	}, nil
}

/* =========================
   Holidays
   ========================= */

type gormHolidayStore struct{ db *gorm.DB }

func (s *gormHolidayStore) FindByID(ctx context.Context, id uuid.UUID) (*m.HolidayModel, error) {
	var row m.HolidayModel
	err := s.db.WithContext(ctx).
		Where("holiday_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormHolidayStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*m.HolidayModel, error) {
	var row m.HolidayModel
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("holiday_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormHolidayStore) FindByNameYear(ctx context.Context, name string, year int) (*m.HolidayModel, error) {
	var row m.HolidayModel
	err := s.db.WithContext(ctx).
		Where("holiday_name = ? AND holiday_year = ?", name, year).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormHolidayStore) Create(ctx context.Context, h *m.HolidayModel) error {
	return s.db.WithContext(ctx).Create(h).Error
}

func (s *gormHolidayStore) Save(ctx context.Context, h *m.HolidayModel) error {
	return s.db.WithContext(ctx).Save(h).Error
}

func (s *gormHolidayStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("holiday_id = ?", id).
		Delete(&m.HolidayModel{}).Error
}

/* =========================
   Mappings
   ========================= */

type gormMappingStore struct{ db *gorm.DB }

func (s *gormMappingStore) FindByHoliday(ctx context.Context, holidayID uuid.UUID) ([]m.PropertySeasonHolidayModel, error) {
	var rows []m.PropertySeasonHolidayModel
	err := s.db.WithContext(ctx).
		Where("property_season_holiday_holiday_id = ?", holidayID).
		Find(&rows).Error
	return rows, err
}

func (s *gormMappingStore) FindByHolidayAndProperty(ctx context.Context, holidayID, propertyID uuid.UUID) (*m.PropertySeasonHolidayModel, error) {
	var row m.PropertySeasonHolidayModel
	err := s.db.WithContext(ctx).
		Where("property_season_holiday_holiday_id = ? AND property_season_holiday_property_id = ?", holidayID, propertyID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormMappingStore) Create(ctx context.Context, row *m.PropertySeasonHolidayModel) error {
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *gormMappingStore) BulkCreate(ctx context.Context, rows []m.PropertySeasonHolidayModel) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

func (s *gormMappingStore) BulkDelete(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("property_season_holiday_id IN ?", ids).
		Delete(&m.PropertySeasonHolidayModel{}).Error
}

func (s *gormMappingStore) ExistsForHoliday(ctx context.Context, holidayID uuid.UUID) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&m.PropertySeasonHolidayModel{}).
		Where("property_season_holiday_holiday_id = ?", holidayID).
		Count(&n).Error
	return n > 0, err
}

/* =========================
   PG error mapping
   ========================= */

// 23505 = unique_violation
type pgSQLErr interface {
	SQLState() string
}

func isUniqueViolation(err error) bool {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
