package account

import (
	"context"
	"fmt"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

// ListNotifications returns a user's latest notifications.
func (s *AccountService) ListNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	list, err := s.repo.ListNotifications(ctx, utils.NormalizeID(userID), limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list notifications for %s: %w", userID, err)
	}
	return list, nil
}

func (s *AccountService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountUnread(ctx, utils.NormalizeID(userID))
	if err != nil {
		return 0, fmt.Errorf("service: failed to count unread notifications for %s: %w", userID, err)
	}
	return count, nil
}

// MarkRead marks one notification read. Only its recipient may do so.
func (s *AccountService) MarkRead(ctx context.Context, notificationID, userID string) error {
	notificationID = utils.NormalizeID(notificationID)
	n, err := s.repo.GetNotification(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("service: failed to load notification %s: %w", notificationID, err)
	}
	if n.UserID != userID {
		return fmt.Errorf("service: %w - notification %s belongs to another user", biddingerrors.ErrForbidden, notificationID)
	}
	if n.IsRead {
		return nil
	}
	if err := s.repo.MarkNotificationRead(ctx, notificationID); err != nil {
		return fmt.Errorf("service: failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}

// MarkAllRead returns how many notifications changed.
func (s *AccountService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	updated, err := s.repo.MarkAllNotificationsRead(ctx, utils.NormalizeID(userID))
	if err != nil {
		return 0, fmt.Errorf("service: failed to mark notifications read for %s: %w", userID, err)
	}
	return updated, nil
}
