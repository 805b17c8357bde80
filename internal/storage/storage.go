package storage

import (
	"context"
	"errors"

	"laporpak/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist. Callers match it
// with errors.Is; the gorm error never leaks past this package.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	GetComplaintByID(id uint) (*models.Complaint, error)
	GetComplaintDetail(id uint) (*models.Complaint, error)
	ListComplaints(page, limit int, search string, statuses []models.Status) ([]models.Complaint, error)
	CountComplaints(search string, statuses []models.Status) (int64, error)
	UpdateComplaintStatus(id uint, status models.Status) (*models.Complaint, error)

	GetAttachment(id uint) (*models.Attachment, error)
	CreateAttachment(attachment *models.Attachment) error

	GetAdminByID(id uint) (*models.Admin, error)
	GetAdminByUsername(username string) (*models.Admin, error)
	ListAdmins() ([]models.Admin, error)
	CreateAdmin(admin *models.Admin) error
	UpdateAdmin(admin *models.Admin) error
	DeleteAdmin(id uint) error

	ListUsers() ([]models.User, error)
	DeleteUser(id uint) error

	ListCategories() ([]models.Category, error)

	GetStatistics() (*Statistics, error)
}

// Service is the PostgreSQL/Redis-backed implementation of Storage.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// translate maps gorm's not-found error onto the package sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
