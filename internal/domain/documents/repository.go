package documents

import (
	"context"
	"io"
)

type Repository interface {
	ListDocuments(ctx context.Context) ([]Document, error)
	ListDocumentsByMember(ctx context.Context, memberID string) ([]Document, error)
	CreateDocument(ctx context.Context, document *Document) error
}

// FileStore persists uploaded bytes and returns the stored location.
type FileStore interface {
	Save(ctx context.Context, name string, content io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}
