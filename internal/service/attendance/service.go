package attendance

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/domain/employee"
	"github.com/staffdesk/hr-backend-go/internal/domain/leave"
	"github.com/staffdesk/hr-backend-go/internal/pkg/database"
	"github.com/staffdesk/hr-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveApplicationRepository
	policy attendance.RecordPolicy
	locks  *keyedMutex

	// seams for tests
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
	now   func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveApplicationRepository,
	policy attendance.RecordPolicy,
) attendance.AttendanceService {
	s := &AttendanceServiceImpl{
		db:                         db,
		AttendanceRepository:       attendanceRepo,
		EmployeeRepository:         employeeRepo,
		LeaveApplicationRepository: leaveRepo,
		policy:                     policy,
		locks:                      newKeyedMutex(),
		now:                        time.Now,
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, "tx", tx))
		})
	}
	return s
}

// ImportPunchExport implements attendance.AttendanceService.
//
// Rows are applied strictly in file order. A row that fails never aborts
// the batch: unknown employees are skipped and counted, anything else is
// recorded in the report's failure list, and the pipeline moves on.
func (a *AttendanceServiceImpl) ImportPunchExport(ctx context.Context, r io.Reader) (attendance.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // punch tail length varies per row

	headerRecord, err := reader.Read()
	if err != nil {
		return attendance.ImportReport{}, fmt.Errorf("%w: %v", attendance.ErrMalformedExport, err)
	}
	header, err := parseHeader(headerRecord)
	if err != nil {
		return attendance.ImportReport{}, err
	}

	var report attendance.ImportReport
	rowNum := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			slog.Error("attendance import: unreadable row", "row", rowNum, "error", err)
			report.Failures = append(report.Failures, attendance.RowFailure{Row: rowNum, Reason: err.Error()})
			continue
		}

		if err := a.importRow(ctx, header, record); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				slog.Warn("attendance import: unknown employee, row skipped", "row", rowNum)
				report.Skipped++
				continue
			}
			slog.Error("attendance import: row failed", "row", rowNum, "error", err)
			report.Failures = append(report.Failures, attendance.RowFailure{Row: rowNum, Reason: err.Error()})
			continue
		}
		report.Processed++
	}

	return report, nil
}

// importRow runs one row through the whole pipeline: resolve, classify,
// adjust payroll, write the record, persist the salary.
func (a *AttendanceServiceImpl) importRow(ctx context.Context, header headerIndex, record []string) error {
	row, err := parseRow(header, record)
	if err != nil {
		return err
	}

	// Serialize the salary read-modify-write per employee.
	unlock := a.locks.Lock(row.EmployeeCode)
	defer unlock()

	emp, err := a.EmployeeRepository.GetByCode(ctx, row.EmployeeCode)
	if err != nil {
		return err
	}
	window, ok := emp.OfficeWindow()
	if !ok {
		return employee.ErrDepartmentUnresolved
	}

	oneDay := oneDaySalary(emp.Salary.Base, row.Date)

	var (
		outcome dayOutcome
		pairs   attendance.EntryExitTimes
	)
	punches, err := normalizePunches(row.RawPunches, window.Close)
	if err != nil {
		return err
	}
	if len(punches) == 0 {
		approved, err := a.LeaveApplicationRepository.FindApprovedOnDate(ctx, emp.ID, row.Date)
		if err != nil {
			return err
		}
		outcome = classifyNoPunch(approved, oneDay)
	} else {
		pairs = pairPunches(punches)
		presence := presenceWithin(pairs, window)
		outcome = classifyPunches(presence, window.Duration(), oneDay)
	}

	now := a.now()
	if outcome.Deduction.IsPositive() {
		emp.Salary.ApplyDeduction(outcome.Deduction, now)
	} else {
		emp.Salary.Touch(now)
	}

	rec := attendance.AttendanceRecord{
		EmployeeID: emp.ID,
		Date:       row.Date,
		Status:     outcome.Status,
		DaySalary:  outcome.DaySalary,
		EntryExit:  pairs,
	}

	return a.runTx(ctx, func(txCtx context.Context) error {
		var werr error
		if a.policy == attendance.PolicyUpsert {
			_, werr = a.AttendanceRepository.UpsertByDate(txCtx, rec)
		} else {
			_, werr = a.AttendanceRepository.Append(txCtx, rec)
		}
		if werr != nil {
			return werr
		}
		return a.EmployeeRepository.UpdateSalary(txCtx, emp.ID, emp.Salary)
	})
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, req attendance.FetchAttendanceRequest) (attendance.ListRecordsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	// Admins see everyone; employees only themselves.
	isAdmin, _ := claims["is_admin"].(bool)
	if !isAdmin {
		employeeID, _ := claims["employee_id"].(string)
		if employeeID != req.EmployeeID {
			return attendance.ListRecordsResponse{}, attendance.ErrUnauthorized
		}
	}

	records, total, err := a.AttendanceRepository.ListByEmployee(ctx, req.EmployeeID, req.Page, req.RowsPerPage)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListRecordsResponse{
		Attendance: make([]attendance.RecordResponse, 0, len(records)),
		Total:      total,
	}
	for _, rec := range records {
		resp.Attendance = append(resp.Attendance, attendance.ToResponse(rec))
	}
	return resp, nil
}
