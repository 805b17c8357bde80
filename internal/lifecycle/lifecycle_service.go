// Package lifecycle enforces the complaint state machine: it validates
// requested transitions against the actor's role and the complaint's current
// status, persists the new status, and fires a WhatsApp notification to the
// requester. Notification dispatch is decoupled from persistence so an
// authorized transition always completes even when the messaging provider is
// down.
package lifecycle

import (
	"errors"
	"fmt"

	"laporpak/backend/internal/config"
	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"
	"laporpak/backend/internal/whatsapp"
)

var (
	// ErrNotFound means the complaint id does not exist.
	ErrNotFound = errors.New("pengaduan not found")
	// ErrInvalidState means the transition is not legal from the
	// complaint's current status.
	ErrInvalidState = errors.New("invalid state")
	// ErrForbidden means the acting role may not attempt this class of
	// transition. It is checked before the record is loaded so a
	// forbidden caller cannot probe which ids exist.
	ErrForbidden = errors.New("forbidden")
)

// Service handles the business logic for complaint transitions.
type Service struct {
	Storage  storage.Storage
	Notifier whatsapp.Notifier
}

// NewService creates a new lifecycle service.
func NewService(s storage.Storage, n whatsapp.Notifier) *Service {
	return &Service{Storage: s, Notifier: n}
}

// Verify records the admin's initial decision on a complaint: received or
// rejected. The decision overwrites whatever status the complaint currently
// has; only admins may verify. The outcome enum is validated at the API
// boundary; an unexpected value here is an invariant breach, not a state
// conflict.
func (s *Service) Verify(id uint, outcome models.Status, role models.Role) (*models.Complaint, error) {
	if !role.CanVerify() {
		return nil, ErrForbidden
	}
	if outcome != models.StatusReceived && outcome != models.StatusRejected {
		return nil, fmt.Errorf("verification outcome must be received or rejected, got %q", outcome)
	}

	updated, err := s.Storage.UpdateComplaintStatus(id, outcome)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if updated.User != nil {
		if outcome == models.StatusReceived {
			s.Notifier.Send(updated.User.Phone, whatsapp.ReceivedMessage(updated.User.FullName, updated.Title))
		} else {
			s.Notifier.Send(updated.User.Phone, whatsapp.RejectedMessage(updated.User.FullName, updated.Title))
		}
	}
	return updated, nil
}

// Approve moves a received or processing complaint to approved. Only the
// leadership role may approve.
func (s *Service) Approve(id uint, role models.Role) (*models.Complaint, error) {
	if !role.CanApprove() {
		return nil, ErrForbidden
	}

	complaint, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !complaint.Status.Approvable() {
		return nil, fmt.Errorf("%w: complaint is %s", ErrInvalidState, complaint.Status)
	}

	updated, err := s.Storage.UpdateComplaintStatus(id, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	if updated.User != nil {
		s.Notifier.Send(updated.User.Phone, whatsapp.ApprovedMessage(updated.Title))
	}
	return updated, nil
}

// Complete closes an approved complaint. Only admins may complete, and only
// from the approved state.
func (s *Service) Complete(id uint, role models.Role) (*models.Complaint, error) {
	if !role.CanComplete() {
		return nil, ErrForbidden
	}

	complaint, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if complaint.Status != models.StatusApproved {
		return nil, fmt.Errorf("%w: not yet approved", ErrInvalidState)
	}

	updated, err := s.Storage.UpdateComplaintStatus(id, models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	if updated.User != nil {
		s.Notifier.Send(updated.User.Phone, whatsapp.CompletedMessage(updated.Title))
	}
	return updated, nil
}

// GetDetail returns the complaint with requester, category and attachments.
func (s *Service) GetDetail(id uint) (*models.Complaint, error) {
	complaint, err := s.Storage.GetComplaintDetail(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return complaint, nil
}

// leadershipStatuses is what pimpinan sees in listings: only complaints
// awaiting or under their approval. Submitted, rejected and completed items
// never appear for leadership.
var leadershipStatuses = []models.Status{
	models.StatusReceived,
	models.StatusProcessing,
	models.StatusApproved,
}

// ClampPage normalizes pagination input: a page below 1 becomes the first
// page, and a limit outside [1, MaxLimit] falls back to the default. The
// HTTP layer derives totalPages from the same clamped limit it passes to
// List, so the reported page count matches the page size actually served.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = config.DefaultPage
	}
	if limit < 1 || limit > config.MaxLimit {
		limit = config.DefaultLimit
	}
	return page, limit
}

// List returns one page of complaints plus the total count under the same
// filter, for pagination. The search term matches requester name, NIK,
// category name and title, case-insensitively.
func (s *Service) List(page, limit int, search string, role models.Role) ([]models.Complaint, int64, error) {
	page, limit = ClampPage(page, limit)

	var statuses []models.Status
	if role == models.RolePimpinan {
		statuses = leadershipStatuses
	}

	complaints, err := s.Storage.ListComplaints(page, limit, search, statuses)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Storage.CountComplaints(search, statuses)
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}
