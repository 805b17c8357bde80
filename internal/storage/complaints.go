package storage

import (
	"log"

	"laporpak/backend/internal/models"

	"gorm.io/gorm"
)

// GetComplaintByID loads a single complaint row without relations.
func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		return nil, translate(err)
	}
	return &complaint, nil
}

// GetComplaintDetail loads a complaint with its requester, category and
// attachments joined.
func (s *Service) GetComplaintDetail(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.
		Preload("User").
		Preload("Category").
		Preload("Attachments").
		First(&complaint, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &complaint, nil
}

// complaintQuery builds the shared filter used by ListComplaints and
// CountComplaints so both always see the same result set.
func (s *Service) complaintQuery(search string, statuses []models.Status) *gorm.DB {
	q := s.DB.Model(&models.Complaint{}).
		Joins("JOIN users ON users.id = complaints.user_id").
		Joins("JOIN categories ON categories.id = complaints.category_id")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"users.full_name ILIKE ? OR users.nik ILIKE ? OR categories.name ILIKE ? OR complaints.title ILIKE ?",
			like, like, like, like,
		)
	}
	if len(statuses) > 0 {
		q = q.Where("complaints.status IN ?", statuses)
	}
	return q
}

// ListComplaints returns one page of complaints ordered by descending id.
// The statuses slice restricts the result to those states; nil means all.
func (s *Service) ListComplaints(page, limit int, search string, statuses []models.Status) ([]models.Complaint, error) {
	var complaints []models.Complaint
	offset := (page - 1) * limit

	err := s.complaintQuery(search, statuses).
		Preload("User").
		Preload("Category").
		Order("complaints.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed to list complaints (search=%q): %v", search, err)
		return nil, err
	}
	return complaints, nil
}

// CountComplaints counts with filter semantics identical to ListComplaints.
func (s *Service) CountComplaints(search string, statuses []models.Status) (int64, error) {
	var total int64
	if err := s.complaintQuery(search, statuses).Count(&total).Error; err != nil {
		log.Printf("ERROR: Failed to count complaints (search=%q): %v", search, err)
		return 0, err
	}
	return total, nil
}

// UpdateComplaintStatus persists the new status and returns the updated
// record with the requester joined, so the caller can compose a
// notification. Per-row update atomicity is what linearizes concurrent
// transitions on the same id; last write wins.
func (s *Service) UpdateComplaintStatus(id uint, status models.Status) (*models.Complaint, error) {
	res := s.DB.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		log.Printf("ERROR: Failed to update status of complaint %d: %v", id, res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var complaint models.Complaint
	if err := s.DB.Preload("User").First(&complaint, id).Error; err != nil {
		return nil, translate(err)
	}
	return &complaint, nil
}

// GetAttachment loads a single attachment record.
func (s *Service) GetAttachment(id uint) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := s.DB.First(&attachment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &attachment, nil
}

// CreateAttachment stores the record for an already-saved upload.
func (s *Service) CreateAttachment(attachment *models.Attachment) error {
	if err := s.DB.Create(attachment).Error; err != nil {
		log.Printf("ERROR: Failed to save attachment for complaint %d: %v", attachment.ComplaintID, err)
		return err
	}
	return nil
}
