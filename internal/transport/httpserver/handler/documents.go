package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	documentsdomain "chitfund-app-go/internal/domain/documents"
	"chitfund-app-go/internal/transport/httpserver/middleware"
)

// multipartOverhead leaves room for the form boundaries and text fields on
// top of the file limit.
const multipartOverhead int64 = 1 << 20

type documentResponse struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileSize     int64     `json:"fileSize"`
	MimeType     string    `json:"mimeType"`
	FilePath     string    `json:"filePath"`
	MemberID     *string   `json:"memberId"`
	GroupID      *string   `json:"groupId"`
	UploadedBy   *string   `json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (h *Handlers) ListDocuments(w http.ResponseWriter, r *http.Request) {
	items, err := h.Documents.ListDocuments(r.Context())
	if err != nil {
		h.fail(w, "documents.list: list documents failed", err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponses(items))
}

func (h *Handlers) UploadDocument(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.Documents.MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, "documents.upload: body too large", documentsdomain.ErrFileTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.fail(w, "documents.upload: no file", documentsdomain.ErrFileRequired)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid file field")
		return
	}
	defer file.Close()

	user, _ := middleware.UserFromContext(r.Context())
	document, err := h.Documents.Upload(r.Context(), documentsdomain.UploadInput{
		OriginalName: header.Filename,
		Content:      file,
		MemberID:     formValue(r, "memberId"),
		GroupID:      formValue(r, "groupId"),
		UploadedBy:   user.ID,
	})
	if err != nil {
		h.fail(w, "documents.upload: upload failed", err, "user_id", user.ID, "file_name", header.Filename)
		return
	}
	writeJSON(w, http.StatusCreated, toDocumentResponse(*document))
}

func formValue(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return nil
	}
	return &value
}

func toDocumentResponses(items []documentsdomain.Document) []documentResponse {
	response := make([]documentResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toDocumentResponse(item))
	}
	return response
}

func toDocumentResponse(document documentsdomain.Document) documentResponse {
	return documentResponse{
		ID:           document.ID,
		FileName:     document.FileName,
		OriginalName: document.OriginalName,
		FileSize:     document.FileSize,
		MimeType:     document.MimeType,
		FilePath:     document.FilePath,
		MemberID:     document.MemberID,
		GroupID:      document.GroupID,
		UploadedBy:   document.UploadedBy,
		CreatedAt:    document.CreatedAt,
	}
}
