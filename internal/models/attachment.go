package models

import "time"

// Attachment (lampiran) is a photo or video stored for a complaint.
// FilePath is relative to the configured upload directory. The media type is
// never stored: it is sniffed from the file content on delivery, since the
// original upload's declared type is untrusted client input.
type Attachment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ComplaintID uint   `gorm:"not null;index" json:"pengaduan_id"`
	FilePath    string `gorm:"type:text;not null" json:"file_path"`

	CreatedAt time.Time `json:"created_at"`
}
