// file: internals/features/media/images/controller/property_image_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "villashare_backend/internals/helpers"

	m "villashare_backend/internals/features/media/images/model"
	propertyModel "villashare_backend/internals/features/properties/property/model"
)

type PropertyImageController struct {
	DB *gorm.DB
}

func NewPropertyImageController(db *gorm.DB) *PropertyImageController {
	return &PropertyImageController{DB: db}
}

/* =========================
   Upload  (Admin)
   Path: POST /properties/:property_id/images
   Multipart field: "image"; stored as webp.
   ========================= */

func (ctl *PropertyImageController) Upload(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	propertyID, err := uuid.Parse(strings.TrimSpace(c.Params("property_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	var exists int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&propertyModel.PropertyModel{}).
		Where("property_id = ?", propertyID).Count(&exists).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Property not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "image file is required")
	}

	webpBytes, err := helper.ConvertToWebP(fileHeader)
	if err != nil {
		log.Println("[ERROR] webp conversion failed:", err)
		return helper.JsonError(c, http.StatusBadRequest, "unsupported or corrupt image")
	}

	publicPath, err := helper.SaveWebP("properties", webpBytes, fileHeader.Filename)
	if err != nil {
		log.Println("[ERROR] saving image failed:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to store image")
	}

	caption := strings.TrimSpace(c.FormValue("caption"))
	image := m.PropertyImageModel{
		PropertyImagePropertyID: propertyID,
		PropertyImageURL:        publicPath,
		PropertyImageIsCover:    c.FormValue("is_cover") == "true",
		PropertyImageUploadedBy: actorID,
	}
	if caption != "" {
		image.PropertyImageCaption = &caption
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&image).Error; err != nil {
		// keep the disk consistent with the DB
		_ = helper.DeleteUpload(publicPath)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Image uploaded", image)
}

/* =========================
   List By Property
   Path: GET /properties/:property_id/images
   ========================= */

func (ctl *PropertyImageController) ListByProperty(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(strings.TrimSpace(c.Params("property_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	var rows []m.PropertyImageModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("property_image_property_id = ?", propertyID).
		Order("property_image_is_cover DESC, property_image_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", rows)
}

/* =========================
   Delete  (Admin)
   Path: DELETE /images/:id
   ========================= */

func (ctl *PropertyImageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid image id")
	}

	var image m.PropertyImageModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&image, "property_image_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Image not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.PropertyImageModel{}, "property_image_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := helper.DeleteUpload(image.PropertyImageURL); err != nil {
		log.Println("[WARN] failed to remove image file:", err)
	}

	return helper.JsonDeleted(c, "Image deleted", fiber.Map{"property_image_id": id})
}
