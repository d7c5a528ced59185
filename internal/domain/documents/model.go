package documents

import (
	"io"
	"time"
)

const DefaultMaxBytes int64 = 10 << 20

var allowedMIMETypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
}

type Document struct {
	ID           string    `gorm:"primaryKey"`
	FileName     string    `gorm:"column:file_name;not null"`
	OriginalName string    `gorm:"column:original_name;not null"`
	FileSize     int64     `gorm:"column:file_size;not null"`
	MimeType     string    `gorm:"column:mime_type;not null"`
	FilePath     string    `gorm:"column:file_path;not null"`
	MemberID     *string   `gorm:"column:member_id"`
	GroupID      *string   `gorm:"column:group_id"`
	UploadedBy   *string   `gorm:"column:uploaded_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

type UploadInput struct {
	OriginalName string
	Content      io.Reader
	MemberID     *string
	GroupID      *string
	UploadedBy   string
}
