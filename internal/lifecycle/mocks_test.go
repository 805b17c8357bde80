package lifecycle_test

import (
	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if c := args.Get(0); c != nil {
		return c.(*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetComplaintDetail(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if c := args.Get(0); c != nil {
		return c.(*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) ListComplaints(page, limit int, search string, statuses []models.Status) ([]models.Complaint, error) {
	args := m.Called(page, limit, search, statuses)
	if c := args.Get(0); c != nil {
		return c.([]models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CountComplaints(search string, statuses []models.Status) (int64, error) {
	args := m.Called(search, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) UpdateComplaintStatus(id uint, status models.Status) (*models.Complaint, error) {
	args := m.Called(id, status)
	if c := args.Get(0); c != nil {
		return c.(*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetAttachment(id uint) (*models.Attachment, error) {
	args := m.Called(id)
	if a := args.Get(0); a != nil {
		return a.(*models.Attachment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CreateAttachment(attachment *models.Attachment) error {
	return m.Called(attachment).Error(0)
}

func (m *MockStorage) GetAdminByID(id uint) (*models.Admin, error) {
	args := m.Called(id)
	if a := args.Get(0); a != nil {
		return a.(*models.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetAdminByUsername(username string) (*models.Admin, error) {
	args := m.Called(username)
	if a := args.Get(0); a != nil {
		return a.(*models.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) ListAdmins() ([]models.Admin, error) {
	args := m.Called()
	if a := args.Get(0); a != nil {
		return a.([]models.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CreateAdmin(admin *models.Admin) error {
	return m.Called(admin).Error(0)
}

func (m *MockStorage) UpdateAdmin(admin *models.Admin) error {
	return m.Called(admin).Error(0)
}

func (m *MockStorage) DeleteAdmin(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockStorage) ListUsers() ([]models.User, error) {
	args := m.Called()
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) DeleteUser(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockStorage) ListCategories() ([]models.Category, error) {
	args := m.Called()
	if c := args.Get(0); c != nil {
		return c.([]models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetStatistics() (*storage.Statistics, error) {
	args := m.Called()
	if s := args.Get(0); s != nil {
		return s.(*storage.Statistics), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockNotifier records outbound notifications so tests can assert on
// dispatch without a gateway.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(phone, message string) {
	m.Called(phone, message)
}
