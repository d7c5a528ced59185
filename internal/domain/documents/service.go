package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"chitfund-app-go/pkg/idgen"
	"github.com/gabriel-vasile/mimetype"
)

type Service struct {
	repo     Repository
	files    FileStore
	maxBytes int64
}

func NewService(repo Repository, files FileStore, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Service{repo: repo, files: files, maxBytes: maxBytes}
}

func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

func (s *Service) ListDocuments(ctx context.Context) ([]Document, error) {
	return s.repo.ListDocuments(ctx)
}

func (s *Service) ListMemberDocuments(ctx context.Context, memberID string) ([]Document, error) {
	return s.repo.ListDocumentsByMember(ctx, memberID)
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*Document, error) {
	if input.Content == nil {
		return nil, ErrFileRequired
	}

	data, err := io.ReadAll(io.LimitReader(input.Content, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrFileRequired
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), allowedMIMETypes...) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, detected.String())
	}

	originalName := filepath.Base(strings.TrimSpace(input.OriginalName))
	if originalName == "." || originalName == string(filepath.Separator) {
		originalName = "upload" + detected.Extension()
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = detected.Extension()
	}

	document := Document{
		ID:           idgen.NewID(),
		FileName:     idgen.NewID() + ext,
		OriginalName: originalName,
		FileSize:     int64(len(data)),
		MimeType:     detected.String(),
		MemberID:     optionalString(input.MemberID),
		GroupID:      optionalString(input.GroupID),
	}
	if uploadedBy := strings.TrimSpace(input.UploadedBy); uploadedBy != "" {
		document.UploadedBy = &uploadedBy
	}

	path, err := s.files.Save(ctx, document.FileName, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	document.FilePath = path

	if err := s.repo.CreateDocument(ctx, &document); err != nil {
		if removeErr := s.files.Remove(ctx, path); removeErr != nil {
			return nil, errors.Join(err, removeErr)
		}
		return nil, err
	}
	return &document, nil
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
