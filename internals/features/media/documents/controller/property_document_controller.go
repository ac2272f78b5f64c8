// file: internals/features/media/documents/controller/property_document_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "villashare_backend/internals/helpers"

	m "villashare_backend/internals/features/media/documents/model"
	propertyModel "villashare_backend/internals/features/properties/property/model"
)

// documents stay in their original format (pdf and friends), unlike
// images which are re-encoded.
var allowedDocumentExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

type PropertyDocumentController struct {
	DB *gorm.DB
}

func NewPropertyDocumentController(db *gorm.DB) *PropertyDocumentController {
	return &PropertyDocumentController{DB: db}
}

/* =========================
   Upload  (Admin)
   Path: POST /properties/:property_id/documents
   Multipart fields: "document", "title", "type"
   ========================= */

func (ctl *PropertyDocumentController) Upload(c *fiber.Ctx) error {
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

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "document file is required")
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedDocumentExts[ext] {
		return helper.JsonError(c, http.StatusBadRequest, fmt.Sprintf("file type %s is not allowed", ext))
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		title = fileHeader.Filename
	}
	docType := strings.TrimSpace(c.FormValue("type"))
	switch docType {
	case m.DocumentTypeDeed, m.DocumentTypeContract, m.DocumentTypeInsurance:
	default:
		docType = m.DocumentTypeOther
	}

	root := os.Getenv("UPLOADS_DIR")
	if root == "" {
		root = "uploads"
	}
	name := helper.GenerateUniqueFilename("documents", fileHeader.Filename)
	full := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "failed to create uploads dir")
	}
	if err := c.SaveFile(fileHeader, full); err != nil {
		log.Println("[ERROR] saving document failed:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "failed to store document")
	}
	publicPath := "/" + filepath.ToSlash(full)

	doc := m.PropertyDocumentModel{
		PropertyDocumentPropertyID: propertyID,
		PropertyDocumentTitle:      title,
		PropertyDocumentType:       docType,
		PropertyDocumentURL:        publicPath,
		PropertyDocumentUploadedBy: actorID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&doc).Error; err != nil {
		_ = helper.DeleteUpload(publicPath)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Document uploaded", doc)
}

/* =========================
   List By Property
   Path: GET /properties/:property_id/documents
   ========================= */

func (ctl *PropertyDocumentController) ListByProperty(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(strings.TrimSpace(c.Params("property_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid property id")
	}

	var rows []m.PropertyDocumentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("property_document_property_id = ?", propertyID).
		Order("property_document_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", rows)
}

/* =========================
   Delete  (Admin)
   Path: DELETE /documents/:id
   ========================= */

func (ctl *PropertyDocumentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid document id")
	}

	var doc m.PropertyDocumentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&doc, "property_document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Document not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&m.PropertyDocumentModel{}, "property_document_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := helper.DeleteUpload(doc.PropertyDocumentURL); err != nil {
		log.Println("[WARN] failed to remove document file:", err)
	}

	return helper.JsonDeleted(c, "Document deleted", fiber.Map{"property_document_id": id})
}
