package attendance

import (
	"time"

	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/pkg/timeofday"
)

// pairPunches folds an even-length punch list into ordered (entry, exit)
// pairs: (p0,p1), (p2,p3), ...
func pairPunches(punches []timeofday.TimeOfDay) attendance.EntryExitTimes {
	pairs := make(attendance.EntryExitTimes, 0, len(punches)/2)
	for i := 0; i+1 < len(punches); i += 2 {
		pairs = append(pairs, attendance.EntryExit{Entry: punches[i], Exit: punches[i+1]})
	}
	return pairs
}

// presenceWithin sums, over all pairs, the portion of each entry/exit
// interval that overlaps the office window. A pair entirely outside office
// hours contributes zero, never a negative amount.
func presenceWithin(pairs attendance.EntryExitTimes, window timeofday.Window) time.Duration {
	var total time.Duration
	for _, pair := range pairs {
		total += window.Overlap(pair.Entry, pair.Exit)
	}
	return total
}
