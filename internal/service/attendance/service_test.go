package attendance

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/domain/employee"
	"github.com/staffdesk/hr-backend-go/internal/domain/leave"
	"github.com/staffdesk/hr-backend-go/internal/pkg/timeofday"
)

// ===== IN-MEMORY FAKES =====

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee // by code
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return *e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	e, ok := f.employees[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *e, nil
}

func (f *fakeEmployeeRepo) UpdateSalary(ctx context.Context, employeeID string, salary employee.Salary) error {
	for _, e := range f.employees {
		if e.ID == employeeID {
			e.Salary = salary
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeLeaveRepo struct {
	applications []leave.LeaveApplication
}

func (f *fakeLeaveRepo) Create(ctx context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	app.ID = uuid.NewString()
	f.applications = append(f.applications, app)
	return app, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	for _, app := range f.applications {
		if app.ID == id {
			return app, nil
		}
	}
	return leave.LeaveApplication{}, leave.ErrApplicationNotFound
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	for i := range f.applications {
		if f.applications[i].ID == id {
			f.applications[i].Status = status
			return nil
		}
	}
	return leave.ErrApplicationNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveApplication, int64, error) {
	return f.applications, int64(len(f.applications)), nil
}

func (f *fakeLeaveRepo) FindApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveApplication, error) {
	for _, app := range f.applications {
		if app.EmployeeID == employeeID && app.Status == leave.StatusApproved && app.Covers(date) {
			found := app
			return &found, nil
		}
	}
	return nil, nil
}

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) Append(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) UpsertByDate(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	for i := range f.records {
		if f.records[i].EmployeeID == rec.EmployeeID && f.records[i].Date.Equal(rec.Date) {
			rec.ID = f.records[i].ID
			rec.CreatedAt = f.records[i].CreatedAt
			f.records[i] = rec
			return rec, nil
		}
	}
	return f.Append(ctx, rec)
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, page, rowsPerPage int) ([]attendance.AttendanceRecord, int64, error) {
	var all []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			all = append(all, rec)
		}
	}
	start := page * rowsPerPage
	if start > len(all) {
		start = len(all)
	}
	end := start + rowsPerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

// ===== HELPERS =====

var testNow = time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

func newTestEmployee(code string, base int64) *employee.Employee {
	open := timeofday.MustParse("09:00:00")
	close := timeofday.MustParse("18:00:00")
	name := "Engineering"
	return &employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: code,
		FullName:     "Test Employee",
		DepartmentID: uuid.NewString(),
		Salary: employee.Salary{
			Base:        decimal.NewFromInt(base),
			Deductions:  decimal.Zero,
			FinalAmount: decimal.NewFromInt(base),
		},
		DepartmentName: &name,
		OfficeOpen:     &open,
		OfficeClose:    &close,
	}
}

func newTestService(empRepo *fakeEmployeeRepo, leaveRepo *fakeLeaveRepo, attRepo *fakeAttendanceRepo, policy attendance.RecordPolicy) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository:       attRepo,
		EmployeeRepository:         empRepo,
		LeaveApplicationRepository: leaveRepo,
		policy:                     policy,
		locks:                      newKeyedMutex(),
		now:                        func() time.Time { return testNow },
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

const exportHeader = "Employee ID,Name,Department,Date,Times"

// March 2024 has 31 days; base 3100 makes oneDaySalary exactly 100.
const marchBase = 3100

func importCSV(t *testing.T, svc *AttendanceServiceImpl, rows ...string) attendance.ImportReport {
	t.Helper()
	csv := exportHeader + "\n" + strings.Join(rows, "\n") + "\n"
	report, err := svc.ImportPunchExport(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	return report
}

// ===== IMPORT PIPELINE TESTS =====

func TestImport_NoPunchesNoLeave_Absent(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	report := importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,0")

	assert.Equal(t, 1, report.Processed)
	assert.Empty(t, report.Failures)

	require.Len(t, attRepo.records, 1)
	rec := attRepo.records[0]
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.True(t, rec.DaySalary.IsZero(), "day salary should be zero, got %s", rec.DaySalary)
	assert.Empty(t, rec.EntryExit)

	assert.True(t, emp.Salary.Deductions.Equal(decimal.NewFromInt(100)), "deductions = %s", emp.Salary.Deductions)
	assert.True(t, emp.Salary.FinalAmount.Equal(decimal.NewFromInt(marchBase-100)), "final = %s", emp.Salary.FinalAmount)
	assert.Equal(t, testNow, emp.Salary.LastUpdated)
}

func TestImport_SickLeave_PaidLeave(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	leaveRepo := &fakeLeaveRepo{applications: []leave.LeaveApplication{{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeSick,
		FromDate:   time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, leaveRepo, attRepo, attendance.PolicyAppend)

	report := importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,")

	assert.Equal(t, 1, report.Processed)
	require.Len(t, attRepo.records, 1)
	rec := attRepo.records[0]
	assert.Equal(t, attendance.StatusLeave, rec.Status)
	assert.True(t, rec.DaySalary.Equal(decimal.NewFromInt(100)), "day salary = %s", rec.DaySalary)

	// paid leave: accumulators untouched, timestamp still updated
	assert.True(t, emp.Salary.Deductions.IsZero())
	assert.True(t, emp.Salary.FinalAmount.Equal(decimal.NewFromInt(marchBase)))
	assert.Equal(t, testNow, emp.Salary.LastUpdated)
}

func TestImport_PersonalLeave_UnpaidLeave(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	leaveRepo := &fakeLeaveRepo{applications: []leave.LeaveApplication{{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypePersonal,
		FromDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, leaveRepo, attRepo, attendance.PolicyAppend)

	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,0")

	require.Len(t, attRepo.records, 1)
	rec := attRepo.records[0]
	assert.Equal(t, attendance.StatusLeave, rec.Status)
	assert.True(t, rec.DaySalary.IsZero())

	assert.True(t, emp.Salary.Deductions.Equal(decimal.NewFromInt(100)))
	assert.True(t, emp.Salary.FinalAmount.Equal(decimal.NewFromInt(marchBase-100)))
}

func TestImport_PendingLeaveIgnored(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	leaveRepo := &fakeLeaveRepo{applications: []leave.LeaveApplication{{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeSick,
		FromDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, leaveRepo, attRepo, attendance.PolicyAppend)

	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,0")

	require.Len(t, attRepo.records, 1)
	assert.Equal(t, attendance.StatusAbsent, attRepo.records[0].Status)
}

func TestImport_HalfDay(t *testing.T) {
	// 9h window, half = 4.5h; presence 09:00-13:00 = 4h
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,2,09:00:00,13:00:00")

	require.Len(t, attRepo.records, 1)
	rec := attRepo.records[0]
	assert.Equal(t, attendance.StatusHalfDay, rec.Status)
	assert.True(t, rec.DaySalary.Equal(decimal.NewFromInt(50)), "day salary = %s", rec.DaySalary)
	require.Len(t, rec.EntryExit, 1)
	assert.Equal(t, "09:00:00", rec.EntryExit[0].Entry.String())
	assert.Equal(t, "13:00:00", rec.EntryExit[0].Exit.String())

	assert.True(t, emp.Salary.Deductions.Equal(decimal.NewFromInt(50)))
	assert.True(t, emp.Salary.FinalAmount.Equal(decimal.NewFromInt(marchBase-50)))
}

func TestImport_FullDayPresent(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,2,09:00:00,18:00:00")

	require.Len(t, attRepo.records, 1)
	rec := attRepo.records[0]
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.DaySalary.Equal(decimal.NewFromInt(100)))

	assert.True(t, emp.Salary.Deductions.IsZero())
	assert.True(t, emp.Salary.FinalAmount.Equal(decimal.NewFromInt(marchBase)))
}

func TestImport_PunchesOutsideOfficeHours_CountNothing(t *testing.T) {
	// Entirely after close: presence 0 --> half day, never negative
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,2,19:00:00,21:00:00")

	require.Len(t, attRepo.records, 1)
	assert.Equal(t, attendance.StatusHalfDay, attRepo.records[0].Status)
	assert.True(t, emp.Salary.Deductions.Equal(decimal.NewFromInt(50)))
}

func TestImport_OddPunchCount_TreatedAsPresentUntilClose(t *testing.T) {
	// Single entry at 09:00, no exit: close (18:00) is appended, 9h present
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,1,09:00:00")

	require.Len(t, attRepo.records, 1)
	rec := attRepo.records[0]
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	require.Len(t, rec.EntryExit, 1)
	assert.Equal(t, "18:00:00", rec.EntryExit[0].Exit.String())
}

func TestImport_UnknownEmployee_RowSkipped(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	report := importCSV(t, svc,
		"NOBODY,Test,Engineering,2024-03-15,0",
		"EMP-0001,Test,Engineering,2024-03-15,2,09:00:00,18:00:00",
	)

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Processed)
	assert.Empty(t, report.Failures)
	assert.Len(t, attRepo.records, 1)
}

func TestImport_MalformedRow_DoesNotAbortBatch(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	report := importCSV(t, svc,
		"EMP-0001,Test,Engineering,not-a-date,0",
		"EMP-0001,Test,Engineering,2024-03-15,2,09:00:00,garbage",
		"EMP-0001,Test,Engineering,2024-03-15,2,09:00:00,18:00:00",
	)

	assert.Equal(t, 1, report.Processed)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, 1, report.Failures[0].Row)
	assert.Equal(t, 2, report.Failures[1].Row)
	assert.Len(t, attRepo.records, 1)
}

func TestImport_ReimportAppendsDuplicate(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	row := "EMP-0001,Test,Engineering,2024-03-15,0"
	importCSV(t, svc, row)
	importCSV(t, svc, row)

	// append policy: duplicate record, payroll delta applied twice
	assert.Len(t, attRepo.records, 2)
	assert.True(t, emp.Salary.Deductions.Equal(decimal.NewFromInt(200)), "deductions = %s", emp.Salary.Deductions)
	assert.True(t, emp.Salary.FinalAmount.Equal(decimal.NewFromInt(marchBase-200)))
}

func TestImport_UpsertPolicyReplacesRecord(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyUpsert)

	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,0")
	importCSV(t, svc, "EMP-0001,Test,Engineering,2024-03-15,2,09:00:00,18:00:00")

	require.Len(t, attRepo.records, 1)
	assert.Equal(t, attendance.StatusPresent, attRepo.records[0].Status)
}

func TestImport_SameEmployeeTwiceInOneFile_NotMerged(t *testing.T) {
	emp := newTestEmployee("EMP-0001", marchBase)
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{"EMP-0001": emp}}
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(empRepo, &fakeLeaveRepo{}, attRepo, attendance.PolicyAppend)

	report := importCSV(t, svc,
		"EMP-0001,Test,Engineering,2024-03-14,0",
		"EMP-0001,Test,Engineering,2024-03-15,0",
	)

	assert.Equal(t, 2, report.Processed)
	assert.Len(t, attRepo.records, 2)
	assert.True(t, emp.Salary.Deductions.Equal(decimal.NewFromInt(200)))
}

func TestImport_MissingHeader(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeLeaveRepo{}, &fakeAttendanceRepo{}, attendance.PolicyAppend)

	_, err := svc.ImportPunchExport(context.Background(), strings.NewReader("Name,Date\nfoo,2024-03-15\n"))
	assert.ErrorIs(t, err, attendance.ErrMissingHeader)
}
