package services

import (
	"context"
	"time"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
)

type InquiryService struct {
	InquiryRepo  *repositories.InquiryRepository
	PropertyRepo *repositories.PropertyRepository
	Notifier     *NotificationService
}

// CreateInquiry stores the inquiry and pushes a notification to the listing
// agent. The push is fire-and-forget; its failure never fails the request.
func (s *InquiryService) CreateInquiry(ctx context.Context, userID int, req models.CreateInquiryRequest) (models.Inquiry, error) {
	property, err := s.PropertyRepo.GetPropertyByID(ctx, req.PropertyID)
	if err != nil {
		return models.Inquiry{}, err
	}

	inquiry := models.Inquiry{
		PropertyID: req.PropertyID,
		UserID:     userID,
		Type:       req.Type,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	}

	created, err := s.InquiryRepo.CreateInquiry(ctx, inquiry)
	if err != nil {
		return models.Inquiry{}, err
	}

	if s.Notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			s.Notifier.NotifyNewInquiry(ctx, property.AgentID, property.Title, created.Name)
		}()
	}

	return created, nil
}
