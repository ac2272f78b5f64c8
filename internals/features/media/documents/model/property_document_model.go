package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DocumentTypeDeed      = "deed"
	DocumentTypeContract  = "contract"
	DocumentTypeInsurance = "insurance"
	DocumentTypeOther     = "other"
)

type PropertyDocumentModel struct {
	PropertyDocumentID uuid.UUID `gorm:"column:property_document_id;type:uuid;default:gen_random_uuid();primaryKey" json:"property_document_id"`

	PropertyDocumentPropertyID uuid.UUID `gorm:"column:property_document_property_id;type:uuid;not null;index" json:"property_document_property_id"`

	PropertyDocumentTitle string `gorm:"column:property_document_title;type:varchar(200);not null" json:"property_document_title"`
	PropertyDocumentType  string `gorm:"column:property_document_type;type:varchar(30);not null;default:'other'" json:"property_document_type"`
	PropertyDocumentURL   string `gorm:"column:property_document_url;type:text;not null" json:"property_document_url"`

	PropertyDocumentUploadedBy uuid.UUID `gorm:"column:property_document_uploaded_by;type:uuid;not null" json:"property_document_uploaded_by"`

	PropertyDocumentCreatedAt time.Time      `gorm:"column:property_document_created_at;type:timestamptz;not null;autoCreateTime" json:"property_document_created_at"`
	PropertyDocumentDeletedAt gorm.DeletedAt `gorm:"column:property_document_deleted_at;index" json:"property_document_deleted_at,omitempty"`
}

func (PropertyDocumentModel) TableName() string { return "property_documents" }
