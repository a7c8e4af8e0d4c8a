package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
)

const dashboardCacheKey = "admin:dashboard"

type AdminService struct {
	AdminRepo   *repositories.AdminRepository
	UserRepo    *repositories.UserRepository
	InquiryRepo *repositories.InquiryRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
}

// DashboardStats aggregates the admin counters behind a short-lived Redis
// cache. Cache trouble falls through to the database, never to the client.
func (s *AdminService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var stats models.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return stats, nil
			}
		} else if err != redis.Nil {
			log.Printf("dashboard cache read: %v", err)
		}
	}

	stats, err := s.loadStats(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, dashboardCacheKey, data, s.CacheTTL).Err(); err != nil {
				log.Printf("dashboard cache write: %v", err)
			}
		}
	}

	return stats, nil
}

func (s *AdminService) loadStats(ctx context.Context) (models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)

	if stats.TotalProperties, err = s.AdminRepo.CountProperties(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalUsers, err = s.AdminRepo.CountUsers(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalAgents, err = s.AdminRepo.CountAgents(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalInquiries, err = s.AdminRepo.CountInquiries(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.RecentProperties, err = s.AdminRepo.RecentProperties(ctx, 5); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.RecentInquiries, err = s.InquiryRepo.RecentInquiries(ctx, 5); err != nil {
		return models.DashboardStats{}, err
	}

	return stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	users, total, err := s.UserRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return users, models.NewPagination(page, limit, total), nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id int, role string) error {
	if !models.ValidRole(role) {
		return models.ErrInvalidRole
	}
	return s.UserRepo.UpdateUserRole(ctx, id, role)
}

// DeleteUser refuses to remove the requesting admin's own account. The guard
// runs before any write.
func (s *AdminService) DeleteUser(ctx context.Context, id, actorID int) error {
	if id == actorID {
		return models.ErrSelfDelete
	}
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *AdminService) ListInquiries(ctx context.Context, page, limit int) ([]models.Inquiry, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	inquiries, total, err := s.InquiryRepo.ListInquiries(ctx, limit, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return inquiries, models.NewPagination(page, limit, total), nil
}

func (s *AdminService) UpdateInquiryStatus(ctx context.Context, id int, status string) error {
	if !models.ValidInquiryStatus(status) {
		return models.ErrInvalidStatus
	}
	return s.InquiryRepo.UpdateStatus(ctx, id, status)
}
