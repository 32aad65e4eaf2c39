// file: internals/features/records/model/store_document_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultDocumentID is the row holding the single shared store document.
const DefaultDocumentID = "default"

// StoreDocumentModel persists a whole Document as one JSON row.
type StoreDocumentModel struct {
	StoreDocumentID        string         `gorm:"column:store_document_id;type:varchar(64);primaryKey" json:"store_document_id"`
	StoreDocumentBody      datatypes.JSON `gorm:"column:store_document_body;not null" json:"store_document_body"`
	StoreDocumentUpdatedAt time.Time      `gorm:"column:store_document_updated_at;not null" json:"store_document_updated_at"`
}

func (StoreDocumentModel) TableName() string { return "record_store_documents" }
