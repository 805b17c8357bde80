package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a citizen (pelapor) who files complaints. The phone number is the
// destination for WhatsApp notifications; it may be empty, in which case the
// requester simply receives none.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"type:text;not null" json:"nama_lengkap"`
	// NIK is the national identity number.
	NIK      string `gorm:"column:nik;uniqueIndex" json:"nik"`
	Phone    string `gorm:"type:text" json:"no_hp"`
	Address  string `gorm:"type:text" json:"alamat"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ComparePassword checks a login attempt against the stored hash.
func (u *User) ComparePassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}
