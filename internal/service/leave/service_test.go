package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/hr-backend-go/internal/domain/employee"
	"github.com/staffdesk/hr-backend-go/internal/domain/leave"
	"github.com/staffdesk/hr-backend-go/internal/domain/notification"
	"github.com/staffdesk/hr-backend-go/internal/pkg/validator"
)

type fakeApplicationRepo struct {
	applications map[string]*leave.LeaveApplication
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	app.ID = uuid.NewString()
	app.CreatedAt = time.Now()
	f.applications[app.ID] = &app
	return app, nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	app, ok := f.applications[id]
	if !ok {
		return leave.LeaveApplication{}, leave.ErrApplicationNotFound
	}
	return *app, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	app, ok := f.applications[id]
	if !ok {
		return leave.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveApplication, int64, error) {
	var out []leave.LeaveApplication
	for _, app := range f.applications {
		if filter.EmployeeID != nil && app.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *app)
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationRepo) FindApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveApplication, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) UpdateSalary(ctx context.Context, employeeID string, salary employee.Salary) error {
	return nil
}

type fakeNotificationRepo struct {
	notifications []notification.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	n.ID = uuid.NewString()
	f.notifications = append(f.notifications, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByEmployee(ctx context.Context, employeeID string, page, rowsPerPage int) ([]notification.Notification, int64, error) {
	return f.notifications, int64(len(f.notifications)), nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string, employeeID string) error {
	return nil
}

func newTestService(t *testing.T) (*LeaveServiceImpl, *fakeApplicationRepo, *fakeNotificationRepo, string) {
	t.Helper()
	employeeID := uuid.NewString()
	appRepo := &fakeApplicationRepo{applications: make(map[string]*leave.LeaveApplication)}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		employeeID: {ID: employeeID, FullName: "Test Employee", Salary: employee.Salary{Base: decimal.NewFromInt(3100)}},
	}}
	notifRepo := &fakeNotificationRepo{}

	svc := &LeaveServiceImpl{
		LeaveApplicationRepository: appRepo,
		EmployeeRepository:         empRepo,
		NotificationRepository:     notifRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return svc, appRepo, notifRepo, employeeID
}

func TestSubmit_EmployeeStartsPending(t *testing.T) {
	svc, _, _, employeeID := newTestService(t)

	resp, err := svc.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  string(leave.LeaveTypeSick),
		FromDate:   "2024-03-14",
		ToDate:     "2024-03-16",
		Reason:     "flu",
	}, false)

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, leave.LeaveTypeSick, resp.LeaveType)
}

func TestSubmit_AdminAutoApproved(t *testing.T) {
	svc, _, _, employeeID := newTestService(t)

	resp, err := svc.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  string(leave.LeaveTypePersonal),
		FromDate:   "2024-03-14",
		ToDate:     "2024-03-14",
		Reason:     "moving day",
	}, true)

	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	svc, _, _, employeeID := newTestService(t)

	cases := []struct {
		name string
		req  leave.SubmitRequest
	}{
		{"bad leave type", leave.SubmitRequest{EmployeeID: employeeID, LeaveType: "Vacation", FromDate: "2024-03-14", ToDate: "2024-03-16", Reason: "x"}},
		{"bad date format", leave.SubmitRequest{EmployeeID: employeeID, LeaveType: "Sick Leave", FromDate: "14/03/2024", ToDate: "2024-03-16", Reason: "x"}},
		{"range inverted", leave.SubmitRequest{EmployeeID: employeeID, LeaveType: "Sick Leave", FromDate: "2024-03-16", ToDate: "2024-03-14", Reason: "x"}},
		{"missing reason", leave.SubmitRequest{EmployeeID: employeeID, LeaveType: "Sick Leave", FromDate: "2024-03-14", ToDate: "2024-03-16", Reason: "  "}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), c.req, false)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID: uuid.NewString(),
		LeaveType:  string(leave.LeaveTypeSick),
		FromDate:   "2024-03-14",
		ToDate:     "2024-03-16",
		Reason:     "flu",
	}, false)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprove_PendingApplication(t *testing.T) {
	svc, appRepo, notifRepo, employeeID := newTestService(t)

	created, err := appRepo.Create(context.Background(), leave.LeaveApplication{
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveTypeSick,
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)

	resp, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, resp.Status)

	require.Len(t, notifRepo.notifications, 1)
	assert.Equal(t, employeeID, notifRepo.notifications[0].EmployeeID)
	assert.Equal(t, created.ID, notifRepo.notifications[0].Payload.ApplicationID)
}

func TestReject_PendingApplication(t *testing.T) {
	svc, appRepo, notifRepo, employeeID := newTestService(t)

	created, err := appRepo.Create(context.Background(), leave.LeaveApplication{
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveTypeOthers,
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)

	resp, err := svc.Reject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, resp.Status)
	assert.Len(t, notifRepo.notifications, 1)
}

func TestDecide_AlreadyProcessed(t *testing.T) {
	svc, appRepo, _, employeeID := newTestService(t)

	created, err := appRepo.Create(context.Background(), leave.LeaveApplication{
		EmployeeID: employeeID,
		Status:     leave.StatusApproved,
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrApplicationAlreadyProcessed)

	_, err = svc.Reject(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrApplicationAlreadyProcessed)
}

func TestDecide_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Approve(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, leave.ErrApplicationNotFound)
}
