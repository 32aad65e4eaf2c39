package store

import (
	"context"

	"educonnect_backend/internals/features/records/model"
)

// Persister loads and saves the whole store document. Save must either
// write the full document or return an error; partial writes are not allowed.
type Persister interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}
