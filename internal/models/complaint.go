package models

import "time"

// Status is the lifecycle state of a complaint. The set is closed: a
// complaint is always in exactly one of these states, and transitions only
// move forward along the graph
//
//	submitted -> received -> processing -> approved -> completed
//	submitted -> rejected
//
// rejected and completed are terminal.
type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusReceived   Status = "received"
	StatusRejected   Status = "rejected"
	StatusProcessing Status = "processing"
	StatusApproved   Status = "approved"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the defined lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusReceived, StatusRejected,
		StatusProcessing, StatusApproved, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted out of s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// Approvable reports whether leadership may approve a complaint in state s.
func (s Status) Approvable() bool {
	return s == StatusReceived || s == StatusProcessing
}

// Complaint represents a citizen-submitted issue report (pengaduan).
// It is owned by exactly one requester, classified under one category and
// may carry any number of attachments. The status column is only ever
// mutated by the lifecycle service.
type Complaint struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:text;not null" json:"judul"`
	Description string `gorm:"type:text" json:"deskripsi"`
	Location    string `gorm:"type:text" json:"lokasi"`
	Status      Status `gorm:"type:text;not null;index" json:"status"`

	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       *User     `json:"user,omitempty"`
	CategoryID uint      `gorm:"not null;index" json:"kategori_id"`
	Category   *Category `json:"kategori,omitempty"`

	Attachments []Attachment `gorm:"foreignKey:ComplaintID" json:"lampiran,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
