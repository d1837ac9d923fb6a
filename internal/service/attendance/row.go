package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/pkg/timeofday"
	"github.com/staffdesk/hr-backend-go/internal/pkg/validator"
)

// Punch-clock export layout. The first punchOffset columns are the fixed
// prefix; everything after is an ordered tail of HH:MM:SS punch values
// consumed pairwise as entry/exit.
const (
	colEmployeeID = "Employee ID"
	colDate       = "Date"
	colTimes      = "Times"

	punchOffset = 5
)

// punchRow is one parsed export row before office hours are known. Punch
// normalization needs the department close time, so the raw tail is kept
// as-is until the employee is resolved.
type punchRow struct {
	EmployeeCode string
	Date         time.Time
	RawPunches   []string
}

type headerIndex map[string]int

func parseHeader(record []string) (headerIndex, error) {
	idx := make(headerIndex, len(record))
	for i, name := range record {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colEmployeeID, colDate, colTimes} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: %s", attendance.ErrMissingHeader, required)
		}
	}
	return idx, nil
}

func (h headerIndex) get(record []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseRow turns one raw CSV record into a punchRow. A Times column that is
// absent, empty, or "0" marks a no-punch day; RawPunches stays nil.
func parseRow(header headerIndex, record []string) (punchRow, error) {
	code := header.get(record, colEmployeeID)
	if code == "" {
		return punchRow{}, fmt.Errorf("missing employee ID")
	}

	dateStr := header.get(record, colDate)
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return punchRow{}, fmt.Errorf("invalid date %q", dateStr)
	}

	row := punchRow{EmployeeCode: code, Date: date}

	times := header.get(record, colTimes)
	if times == "" || times == "0" {
		return row, nil
	}

	if len(record) > punchOffset {
		row.RawPunches = record[punchOffset:]
	}
	return row, nil
}

// normalizePunches parses the raw tail into an even-length punch list.
// An odd count gets the close time appended as the final punch; an even
// count whose last value is empty gets that value replaced with close.
// The two branches are mutually exclusive. An unmatched trailing entry
// means the employee was still present at closing.
func normalizePunches(raw []string, close timeofday.TimeOfDay) ([]timeofday.TimeOfDay, error) {
	values := make([]string, len(raw))
	copy(values, raw)

	if len(values)%2 != 0 {
		values = append(values, close.String())
	} else if len(values) > 0 && strings.TrimSpace(values[len(values)-1]) == "" {
		values[len(values)-1] = close.String()
	}

	punches := make([]timeofday.TimeOfDay, 0, len(values))
	for _, v := range values {
		punch, err := timeofday.Parse(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid punch value: %w", err)
		}
		punches = append(punches, punch)
	}
	return punches, nil
}
