package postgresql

import (
	"context"
	"fmt"

	"github.com/staffdesk/hr-backend-go/internal/domain/notification"
	"github.com/staffdesk/hr-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create implements notification.NotificationRepository.
func (n *notificationRepository) Create(ctx context.Context, notif notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, n.db)

	query := `
		INSERT INTO notifications (
			employee_id, message, payload
		) VALUES (
			$1, $2, $3
		) RETURNING id, is_read, created_at
	`

	err := q.QueryRow(ctx, query,
		notif.EmployeeID,
		notif.Message,
		notif.Payload,
	).Scan(&notif.ID, &notif.IsRead, &notif.CreatedAt)

	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return notif, nil
}

// ListByEmployee implements notification.NotificationRepository.
func (n *notificationRepository) ListByEmployee(ctx context.Context, employeeID string, page, rowsPerPage int) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, n.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications WHERE employee_id = $1`
	if err := q.QueryRow(ctx, countQuery, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, employee_id, message, payload, is_read, created_at
		FROM notifications
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, rowsPerPage, page*rowsPerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var notif notification.Notification
		if err := rows.Scan(
			&notif.ID, &notif.EmployeeID, &notif.Message,
			&notif.Payload, &notif.IsRead, &notif.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, notif)
	}

	return notifications, total, rows.Err()
}

// MarkRead implements notification.NotificationRepository.
func (n *notificationRepository) MarkRead(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, n.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND employee_id = $2
	`

	if _, err := q.Exec(ctx, query, id, employeeID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
