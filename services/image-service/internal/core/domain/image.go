package domain

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFilesPerUpload       = 10
	MaxFileSize       int64 = 5_000_000
)

// AllowedExtensions расширения, которые принимаются при загрузке (без учета регистра)
var AllowedExtensions = []string{"jpg", "jpeg", "png", "gif"}

// Image запись о прикрепленном к объявлению изображении
type Image struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"propertyId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UploadFile файл из multipart-запроса. Content читается один раз.
type UploadFile struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// Extension расширение без точки в нижнем регистре
func (f UploadFile) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(f.OriginalName), "."))
}

type RejectReason string

const (
	RejectUnsupportedExtension RejectReason = "unsupported_extension"
	RejectFileTooLarge         RejectReason = "file_too_large"
)

// RejectedFile файл, не прошедший проверку, и причина
type RejectedFile struct {
	OriginalName string       `json:"originalName"`
	Reason       RejectReason `json:"reason"`
}

// UploadResult итог загрузки пакета файлов
type UploadResult struct {
	Images   []Image        `json:"images"`
	Rejected []RejectedFile `json:"rejected"`
}

// CheckFile возвращает причину отказа или пустую строку
func CheckFile(f UploadFile) RejectReason {
	ext := f.Extension()
	allowed := false
	for _, a := range AllowedExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return RejectUnsupportedExtension
	}
	if f.Size > MaxFileSize {
		return RejectFileTooLarge
	}
	return ""
}
