package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"estateBack/internal/repositories"
)

// NotificationService pushes FCM messages to agents. A nil Client disables
// pushes entirely.
type NotificationService struct {
	Client   *messaging.Client
	UserRepo *repositories.UserRepository
}

func (s *NotificationService) NotifyNewInquiry(ctx context.Context, agentID int, propertyTitle, fromName string) {
	if s.Client == nil {
		return
	}

	token, err := s.UserRepo.GetFCMToken(ctx, agentID)
	if err != nil {
		log.Printf("fcm token lookup for agent %d: %v", agentID, err)
		return
	}
	if token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "New inquiry",
			Body:  fromName + " asked about " + propertyTitle,
		},
		Data: map[string]string{
			"type": "inquiry",
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: "New inquiry",
						Body:  fromName + " asked about " + propertyTitle,
					},
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.Client.Send(ctx, message); err != nil {
		log.Printf("send inquiry notification to agent %d: %v", agentID, err)
	}
}
