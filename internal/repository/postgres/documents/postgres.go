package documents

import (
	"context"

	documentsdomain "chitfund-app-go/internal/domain/documents"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListDocuments(ctx context.Context) ([]documentsdomain.Document, error) {
	var items []documentsdomain.Document
	if err := r.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListDocumentsByMember(ctx context.Context, memberID string) ([]documentsdomain.Document, error) {
	var items []documentsdomain.Document
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CreateDocument(ctx context.Context, document *documentsdomain.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}
