package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/hr-backend-go/internal/domain/employee"
	"github.com/staffdesk/hr-backend-go/internal/domain/leave"
	"github.com/staffdesk/hr-backend-go/internal/domain/notification"
	"github.com/staffdesk/hr-backend-go/internal/pkg/database"
	"github.com/staffdesk/hr-backend-go/internal/repository/postgresql"
)

const defaultRowsPerPage = 10

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveApplicationRepository
	employee.EmployeeRepository
	notification.NotificationRepository

	// seam for tests
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLeaveService(
	db *database.DB,
	applicationRepo leave.LeaveApplicationRepository,
	employeeRepo employee.EmployeeRepository,
	notificationRepo notification.NotificationRepository,
) leave.LeaveService {
	s := &LeaveServiceImpl{
		db:                         db,
		LeaveApplicationRepository: applicationRepo,
		EmployeeRepository:         employeeRepo,
		NotificationRepository:     notificationRepo,
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, "tx", tx))
		})
	}
	return s
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest, submittedByAdmin bool) (leave.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplicationResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	fromDate, _ := time.Parse("2006-01-02", req.FromDate)
	toDate, _ := time.Parse("2006-01-02", req.ToDate)

	status := leave.StatusPending
	if submittedByAdmin {
		// HR files on behalf of the employee; no second approval step
		status = leave.StatusApproved
	}

	application := leave.LeaveApplication{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		FromDate:   fromDate,
		ToDate:     toDate,
		Reason:     req.Reason,
		Status:     status,
	}

	created, err := l.LeaveApplicationRepository.Create(ctx, application)
	if err != nil {
		return leave.ApplicationResponse{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, applicationID string) (leave.ApplicationResponse, error) {
	return l.decide(ctx, applicationID, leave.StatusApproved, "Your application has been approved.")
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, applicationID string) (leave.ApplicationResponse, error) {
	return l.decide(ctx, applicationID, leave.StatusRejected, "Your application has been rejected.")
}

// decide applies an approve/reject decision and notifies the applicant in
// the same transaction.
func (l *LeaveServiceImpl) decide(ctx context.Context, applicationID string, status leave.Status, message string) (leave.ApplicationResponse, error) {
	application, err := l.LeaveApplicationRepository.GetByID(ctx, applicationID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if application.Status != leave.StatusPending {
		return leave.ApplicationResponse{}, leave.ErrApplicationAlreadyProcessed
	}

	err = l.runTx(ctx, func(txCtx context.Context) error {
		if err := l.LeaveApplicationRepository.UpdateStatus(txCtx, applicationID, status); err != nil {
			return err
		}
		_, err := l.NotificationRepository.Create(txCtx, notification.Notification{
			EmployeeID: application.EmployeeID,
			Message:    message,
			Payload: notification.Payload{
				ApplicationID: application.ID,
				EmployeeID:    application.EmployeeID,
			},
		})
		return err
	})
	if err != nil {
		return leave.ApplicationResponse{}, fmt.Errorf("failed to update leave application: %w", err)
	}

	application.Status = status
	return leave.ToResponse(application), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) (leave.ListApplicationsResponse, error) {
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.RowsPerPage <= 0 {
		filter.RowsPerPage = defaultRowsPerPage
	}

	applications, total, err := l.LeaveApplicationRepository.List(ctx, filter)
	if err != nil {
		return leave.ListApplicationsResponse{}, fmt.Errorf("failed to list leave applications: %w", err)
	}

	resp := leave.ListApplicationsResponse{
		Applications: make([]leave.ApplicationResponse, 0, len(applications)),
		Total:        total,
	}
	for _, app := range applications {
		resp.Applications = append(resp.Applications, leave.ToResponse(app))
	}
	return resp, nil
}
