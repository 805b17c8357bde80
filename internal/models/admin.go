package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role is the access level of a staff account. Role decides which class of
// lifecycle transition an actor may attempt; the complaint's current status
// decides whether the transition is legal right now. Both checks must pass.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleMasterAdmin Role = "master_admin"
	// RolePimpinan is the leadership role that authorizes execution of a
	// complaint (persetujuan).
	RolePimpinan Role = "pimpinan"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMasterAdmin || r == RolePimpinan
}

// CanVerify reports whether r may accept or reject submitted complaints.
func (r Role) CanVerify() bool {
	return r == RoleAdmin || r == RoleMasterAdmin
}

// CanApprove reports whether r may approve a complaint for execution.
func (r Role) CanApprove() bool {
	return r == RolePimpinan
}

// CanComplete reports whether r may close an approved complaint.
func (r Role) CanComplete() bool {
	return r == RoleAdmin || r == RoleMasterAdmin
}

// Admin is a staff account on the admin panel.
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"type:text;not null" json:"nama_lengkap"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:text;not null" json:"-"`
	Role     Role   `gorm:"type:text;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (a *Admin) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

// ComparePassword checks a login attempt against the stored hash.
func (a *Admin) ComparePassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate)) == nil
}
