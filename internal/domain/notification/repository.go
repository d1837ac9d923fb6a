package notification

import "context"

// NotificationRepository - interface for notifications table
type NotificationRepository interface {
	Create(ctx context.Context, notification Notification) (Notification, error)
	ListByEmployee(ctx context.Context, employeeID string, page, rowsPerPage int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, id string, employeeID string) error
}
