package notification

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/hr-backend-go/internal/domain/notification"
)

type NotificationService interface {
	// ListMine returns the authenticated employee's notifications, newest
	// first.
	ListMine(ctx context.Context, page, rowsPerPage int) ([]notification.Notification, int64, error)
	MarkRead(ctx context.Context, id string) error
}

type NotificationServiceImpl struct {
	notification.NotificationRepository
}

func NewNotificationService(notificationRepo notification.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{NotificationRepository: notificationRepo}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing")
	}
	return employeeID, nil
}

// ListMine implements NotificationService.
func (n *NotificationServiceImpl) ListMine(ctx context.Context, page, rowsPerPage int) ([]notification.Notification, int64, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	if page < 0 {
		page = 0
	}
	if rowsPerPage <= 0 {
		rowsPerPage = 10
	}
	return n.NotificationRepository.ListByEmployee(ctx, employeeID, page, rowsPerPage)
}

// MarkRead implements NotificationService.
func (n *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}
	return n.NotificationRepository.MarkRead(ctx, id, employeeID)
}
