// file: internals/features/properties/property/controller/property_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "villashare_backend/internals/helpers"

	d "villashare_backend/internals/features/properties/property/dto"
	m "villashare_backend/internals/features/properties/property/model"
)

type PropertyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPropertyController(db *gorm.DB, v *validator.Validate) *PropertyController {
	return &PropertyController{DB: db, Validate: v}
}

type pgSQLErr interface{ SQLState() string }

func writePGError(c *fiber.Ctx, err error) error {
	var state string
	var se pgSQLErr
	if errors.As(err, &se) {
		state = se.SQLState()
	} else {
		var pqe *pq.Error
		if errors.As(err, &pqe) {
			state = string(pqe.Code)
		}
	}
	switch state {
	case "23505":
		return helper.JsonError(c, http.StatusConflict, "Duplicate record")
	case "23503":
		return helper.JsonError(c, http.StatusBadRequest, "Referenced record does not exist")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

/* =========================
   Create  (Admin)
   Path: POST /properties
   ========================= */

func (ctl *PropertyController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	property := req.ToModel(actorID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(property).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Property created", d.FromModelProperty(property))
}

/* =========================
   Update  (Admin)
   Path: PATCH /properties/:id
   ========================= */

func (ctl *PropertyController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	var req d.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var property m.PropertyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&property, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Property not found")
		}
		return writePGError(c, err)
	}

	if req.PropertyName != nil {
		property.PropertyName = strings.TrimSpace(*req.PropertyName)
	}
	if req.PropertyCity != nil {
		property.PropertyCity = strings.TrimSpace(*req.PropertyCity)
	}
	if req.PropertyAddr != nil {
		property.PropertyAddr = req.PropertyAddr
	}
	if req.PropertyBedrooms != nil {
		property.PropertyBedrooms = *req.PropertyBedrooms
	}
	if req.PropertyMaxGuests != nil {
		property.PropertyMaxGuests = *req.PropertyMaxGuests
	}
	if req.PropertyAmenities != nil {
		property.PropertyAmenities = *req.PropertyAmenities
	}
	if req.PropertyIsActive != nil {
		property.PropertyIsActive = *req.PropertyIsActive
	}
	property.PropertyUpdatedBy = &actorID

	if err := ctl.DB.WithContext(c.UserContext()).Save(&property).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Property updated", d.FromModelProperty(&property))
}

/* =========================
   Upsert Details  (Admin)
   Path: PUT /properties/:id/details
   One details row per property; the second write updates in place.
   ========================= */

func (ctl *PropertyController) UpsertDetails(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	var req d.UpsertPropertyDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	peakStart, peakEnd, err := req.PeakSeasonRange()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var exists int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.PropertyModel{}).
		Where("property_id = ?", id).Count(&exists).Error; err != nil {
		return writePGError(c, err)
	}
	if exists == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Property not found")
	}

	detail := m.PropertyDetailModel{
		PropertyDetailPropertyID:      id,
		PropertyDetailPeakSeasonStart: peakStart,
		PropertyDetailPeakSeasonEnd:   peakEnd,
		PropertyDetailCheckInTime:     req.PropertyDetailCheckInTime,
		PropertyDetailCheckOutTime:    req.PropertyDetailCheckOutTime,
		PropertyDetailHouseRules:      req.PropertyDetailHouseRules,
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "property_detail_property_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"property_detail_peak_season_start",
				"property_detail_peak_season_end",
				"property_detail_check_in_time",
				"property_detail_check_out_time",
				"property_detail_house_rules",
			}),
		}).
		Create(&detail).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Property details saved", d.FromModelPropertyDetail(&detail))
}

/* =========================
   Get By ID  (with details)
   Path: GET /properties/:id
   ========================= */

func (ctl *PropertyController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	var property m.PropertyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&property, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Property not found")
		}
		return writePGError(c, err)
	}

	out := d.PropertyWithDetailResponse{Property: d.FromModelProperty(&property)}

	var detail m.PropertyDetailModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&detail, "property_detail_property_id = ?", id).Error
	switch {
	case err == nil:
		out.Detail = d.FromModelPropertyDetail(&detail)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// property without details is legal
	default:
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "OK", out)
}

/* =========================
   List
   Path: GET /properties
   ========================= */

func (ctl *PropertyController) List(c *fiber.Ctx) error {
	var q d.ListPropertiesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(q); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.PropertyModel{})
	if q.City != nil {
		tx = tx.Where("LOWER(property_city) = ?", strings.ToLower(*q.City))
	}
	if q.Active != nil {
		tx = tx.Where("property_is_active = ?", *q.Active)
	}
	if q.Q != nil {
		kw := "%" + strings.ToLower(*q.Q) + "%"
		tx = tx.Where("LOWER(property_name) LIKE ?", kw)
	}
	tx = tx.Order("property_name ASC")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.PropertyModel
	if err := tx.Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	data := make([]*d.PropertyResponse, 0, len(rows))
	for i := range rows {
		data = append(data, d.FromModelProperty(&rows[i]))
	}

	return helper.JsonList(c, "OK", data, helper.BuildPaginationFromOffset(total, q.Offset, q.Limit))
}

/* =========================
   Delete  (Admin, soft)
   Path: DELETE /properties/:id
   ========================= */

func (ctl *PropertyController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.PropertyModel{}, "property_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Property not found")
	}

	return helper.JsonDeleted(c, "Property deleted", fiber.Map{"property_id": id})
}
