// Package notification delivers reminder pushes over FCM.
package notification

import (
	"context"
	"fmt"

	"dealroom/services/user"
	"dealroom/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users user.UserService
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", userID)
	}
	if utils.FCMClient == nil {
		utils.GetLogger().Warn("push delivery disabled, dropping notification",
			zap.String("userId", userID), zap.String("title", title))
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}

	utils.GetLogger().Info("sent push notification",
		zap.String("userId", userID), zap.String("response", response))
	return nil
}
