package storage

import (
	"encoding/json"
	"log"

	"laporpak/backend/internal/config"
	"laporpak/backend/internal/models"
)

const statsCacheKey = "dashboard:stats"

// Statistics is the dashboard summary shown to staff.
type Statistics struct {
	TotalComplaints int64                   `json:"total_pengaduan"`
	PerStatus       map[models.Status]int64 `json:"per_status"`
	TotalUsers      int64                   `json:"total_user"`
	TotalCategories int64                   `json:"total_kategori"`
}

// GetStatistics computes the dashboard counters, serving from the Redis
// cache when a fresh copy exists. A cache miss or a Redis failure falls
// through to the database.
func (s *Service) GetStatistics() (*Statistics, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(s.Ctx, statsCacheKey).Result(); err == nil {
			var cached Statistics
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stats := &Statistics{PerStatus: make(map[models.Status]int64)}

	if err := s.DB.Model(&models.Complaint{}).Count(&stats.TotalComplaints).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status models.Status
		Count  int64
	}
	var rows []statusCount
	err := s.DB.Model(&models.Complaint{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.PerStatus[row.Status] = row.Count
	}

	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.Redis.Set(s.Ctx, statsCacheKey, raw, config.StatsCacheTTL).Err(); err != nil {
				log.Printf("WARN: Failed to cache dashboard stats: %v", err)
			}
		}
	}

	return stats, nil
}
