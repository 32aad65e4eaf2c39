package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"educonnect_backend/internals/features/records/model"
)

// GormPersister stores the document as one JSON row (jsonb on PostgreSQL).
type GormPersister struct {
	DB         *gorm.DB
	DocumentID string
}

// NewGormPersister migrates the document table and returns a persister for
// the default document row.
func NewGormPersister(db *gorm.DB) (*GormPersister, error) {
	if err := db.AutoMigrate(&model.StoreDocumentModel{}); err != nil {
		return nil, fmt.Errorf("migrate record_store_documents: %w", err)
	}
	return &GormPersister{DB: db, DocumentID: model.DefaultDocumentID}, nil
}

func (p *GormPersister) Load(ctx context.Context) (*model.Document, error) {
	var row model.StoreDocumentModel
	err := p.DB.WithContext(ctx).
		Where("store_document_id = ?", p.DocumentID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", p.DocumentID, err)
	}

	doc := &model.Document{}
	if err := sonic.ConfigStd.Unmarshal(row.StoreDocumentBody, doc); err != nil {
		return nil, fmt.Errorf("decode document %q: %w", p.DocumentID, err)
	}
	doc.Normalize()
	return doc, nil
}

func (p *GormPersister) Save(ctx context.Context, doc *model.Document) error {
	raw, err := sonic.ConfigStd.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	row := model.StoreDocumentModel{
		StoreDocumentID:        p.DocumentID,
		StoreDocumentBody:      datatypes.JSON(raw),
		StoreDocumentUpdatedAt: time.Now().UTC(),
	}
	err = p.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_document_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"store_document_body", "store_document_updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save document %q: %w", p.DocumentID, err)
	}
	return nil
}
