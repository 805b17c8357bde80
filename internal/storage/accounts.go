package storage

import (
	"log"

	"laporpak/backend/internal/models"
)

// GetAdminByID loads a staff account by primary key.
func (s *Service) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

// GetAdminByUsername loads a staff account for login.
func (s *Service) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

// ListAdmins returns all staff accounts, newest first.
func (s *Service) ListAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Order("id DESC").Find(&admins).Error; err != nil {
		log.Printf("ERROR: Failed to list admins: %v", err)
		return nil, err
	}
	return admins, nil
}

// CreateAdmin inserts a new staff account. The password must already be
// hashed by the caller.
func (s *Service) CreateAdmin(admin *models.Admin) error {
	if err := s.DB.Create(admin).Error; err != nil {
		log.Printf("ERROR: Failed to create admin %q: %v", admin.Username, err)
		return err
	}
	return nil
}

// UpdateAdmin saves changes to an existing staff account.
func (s *Service) UpdateAdmin(admin *models.Admin) error {
	if err := s.DB.Save(admin).Error; err != nil {
		log.Printf("ERROR: Failed to update admin %d: %v", admin.ID, err)
		return err
	}
	return nil
}

// DeleteAdmin removes a staff account.
func (s *Service) DeleteAdmin(id uint) error {
	res := s.DB.Delete(&models.Admin{}, id)
	if res.Error != nil {
		log.Printf("ERROR: Failed to delete admin %d: %v", id, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUsers returns all registered citizens, newest first.
func (s *Service) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id DESC").Find(&users).Error; err != nil {
		log.Printf("ERROR: Failed to list users: %v", err)
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a citizen account.
func (s *Service) DeleteUser(id uint) error {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		log.Printf("ERROR: Failed to delete user %d: %v", id, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories returns the complaint categories.
func (s *Service) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Order("name ASC").Find(&categories).Error; err != nil {
		log.Printf("ERROR: Failed to list categories: %v", err)
		return nil, err
	}
	return categories, nil
}
