// file: internals/features/properties/ownership/controller/ownership_controller.go
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

	helper "villashare_backend/internals/helpers"

	d "villashare_backend/internals/features/properties/ownership/dto"
	m "villashare_backend/internals/features/properties/ownership/model"
	propertyModel "villashare_backend/internals/features/properties/property/model"
	userModel "villashare_backend/internals/features/users/user/model"
)

type OwnershipController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOwnershipController(db *gorm.DB, v *validator.Validate) *OwnershipController {
	return &OwnershipController{DB: db, Validate: v}
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
		return helper.JsonError(c, http.StatusConflict, "User already holds a share of this property")
	case "23503":
		return helper.JsonError(c, http.StatusBadRequest, "Referenced record does not exist")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

// shareTotalExcluding sums the live shares of a property, optionally
// leaving one ownership row out (for updates).
func (ctl *OwnershipController) shareTotalExcluding(c *fiber.Ctx, propertyID uuid.UUID, exclude *uuid.UUID) (float64, error) {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.OwnershipModel{}).
		Where("ownership_property_id = ?", propertyID)
	if exclude != nil {
		tx = tx.Where("ownership_id <> ?", *exclude)
	}
	var total float64
	err := tx.Select("COALESCE(SUM(ownership_share_percent), 0)").Scan(&total).Error
	return total, err
}

/* =========================
   Create  (Admin)
   Path: POST /ownerships
   ========================= */

func (ctl *OwnershipController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateOwnershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	ctx := c.UserContext()

	var propertyCount int64
	if err := ctl.DB.WithContext(ctx).Model(&propertyModel.PropertyModel{}).
		Where("property_id = ?", req.OwnershipPropertyID).Count(&propertyCount).Error; err != nil {
		return writePGError(c, err)
	}
	if propertyCount == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Property not found")
	}

	var userCount int64
	if err := ctl.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_id = ?", req.OwnershipUserID).Count(&userCount).Error; err != nil {
		return writePGError(c, err)
	}
	if userCount == 0 {
		return helper.JsonError(c, http.StatusNotFound, "User not found")
	}

	total, err := ctl.shareTotalExcluding(c, req.OwnershipPropertyID, nil)
	if err != nil {
		return writePGError(c, err)
	}
	if total+req.OwnershipSharePercent > 100 {
		return helper.JsonError(c, http.StatusConflict, "Share total for the property would exceed 100%")
	}

	ownership := m.OwnershipModel{
		OwnershipPropertyID:   req.OwnershipPropertyID,
		OwnershipUserID:       req.OwnershipUserID,
		OwnershipSharePercent: req.OwnershipSharePercent,
		OwnershipCreatedBy:    actorID,
	}
	if err := ctl.DB.WithContext(ctx).Create(&ownership).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Ownership created", d.FromModelOwnership(&ownership))
}

/* =========================
   Update Share  (Admin)
   Path: PATCH /ownerships/:id
   ========================= */

func (ctl *OwnershipController) UpdateShare(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid ownership id")
	}

	var req d.UpdateOwnershipShareRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var ownership m.OwnershipModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&ownership, "ownership_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Ownership not found")
		}
		return writePGError(c, err)
	}

	total, err := ctl.shareTotalExcluding(c, ownership.OwnershipPropertyID, &ownership.OwnershipID)
	if err != nil {
		return writePGError(c, err)
	}
	if total+req.OwnershipSharePercent > 100 {
		return helper.JsonError(c, http.StatusConflict, "Share total for the property would exceed 100%")
	}

	ownership.OwnershipSharePercent = req.OwnershipSharePercent
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ownership).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Ownership updated", d.FromModelOwnership(&ownership))
}

/* =========================
   List By Property
   Path: GET /ownerships/property/:property_id
   ========================= */

func (ctl *OwnershipController) ListByProperty(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(strings.TrimSpace(c.Params("property_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	var rows []m.OwnershipModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("ownership_property_id = ?", propertyID).
		Order("ownership_share_percent DESC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	data := make([]*d.OwnershipResponse, 0, len(rows))
	var total float64
	for i := range rows {
		data = append(data, d.FromModelOwnership(&rows[i]))
		total += rows[i].OwnershipSharePercent
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"ownerships":          data,
		"share_total_percent": total,
	})
}

/* =========================
   Delete  (Admin, soft)
   Path: DELETE /ownerships/:id
   ========================= */

func (ctl *OwnershipController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid ownership id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.OwnershipModel{}, "ownership_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Ownership not found")
	}

	return helper.JsonDeleted(c, "Ownership deleted", fiber.Map{"ownership_id": id})
}
