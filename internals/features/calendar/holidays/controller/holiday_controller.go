// file: internals/features/calendar/holidays/controller/holiday_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "villashare_backend/internals/helpers"

	d "villashare_backend/internals/features/calendar/holidays/dto"
	m "villashare_backend/internals/features/calendar/holidays/model"
	s "villashare_backend/internals/features/calendar/holidays/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type HolidayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *s.ReconcileService
}

func NewHolidayController(db *gorm.DB, v *validator.Validate) *HolidayController {
	return &HolidayController{
		DB:       db,
		Validate: v,
		Service:  s.NewGormReconcileService(db),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

func writeOpError(c *fiber.Ctx, op *s.OpError) error {
	return helper.JsonError(c, op.StatusCode(), op.Message)
}

/* =========================
   Create  (Admin)
   Path: POST /holidays
   ========================= */

func (ctl *HolidayController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	in, err := req.ToInput(actorID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	holiday, op := ctl.Service.CreateWithProperties(c.UserContext(), in)
	if op != nil {
		return writeOpError(c, op)
	}

	return helper.JsonCreated(c, "Holiday created", d.FromModelHoliday(holiday))
}

/* =========================
   Patch  (Admin)
   Path: PATCH /holidays/:id
   ========================= */

func (ctl *HolidayController) Patch(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid holiday id")
	}

	var req d.PatchHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	in, err := req.ToInput(id, actorID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	holiday, op := ctl.Service.Update(c.UserContext(), in)
	if op != nil {
		return writeOpError(c, op)
	}

	return helper.JsonUpdated(c, "Holiday updated", d.FromModelHoliday(holiday))
}

/* =========================
   Delete  (Admin)
   Path: DELETE /holidays/:id
   Refused while any mapping still references the holiday.
   ========================= */

func (ctl *HolidayController) Delete(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid holiday id")
	}

	if op := ctl.Service.Delete(c.UserContext(), id); op != nil {
		return writeOpError(c, op)
	}

	return helper.JsonDeleted(c, "Holiday deleted", fiber.Map{"holiday_id": id})
}

/* =========================
   Get By ID  (with mappings)
   Path: GET /holidays/:id
   ========================= */

func (ctl *HolidayController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid holiday id")
	}

	holiday, mappings, op := ctl.Service.GetByID(c.UserContext(), id)
	if op != nil {
		return writeOpError(c, op)
	}

	return helper.JsonOK(c, "OK", d.FromModelHolidayWithMappings(holiday, mappings))
}

/* =========================
   List (index)
   Path: GET /holidays
   Query: ?year&q&limit&offset
   ========================= */

func (ctl *HolidayController) List(c *fiber.Ctx) error {
	var q d.ListHolidaysQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Normalize()
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(q); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.HolidayModel{})

	if q.Year != nil {
		tx = tx.Where("holiday_year = ?", *q.Year)
	}
	if q.Q != nil {
		kw := "%" + strings.ToLower(*q.Q) + "%"
		tx = tx.Where("LOWER(holiday_name) LIKE ?", kw)
	}

	tx = tx.Order("holiday_start_date ASC")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.HolidayModel
	if err := tx.Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	data := make([]*d.HolidayResponse, 0, len(rows))
	for i := range rows {
		data = append(data, d.FromModelHoliday(&rows[i]))
	}

	return helper.JsonList(c, "OK", data, helper.BuildPaginationFromOffset(total, q.Offset, q.Limit))
}
