package recommendation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Bryanads/thecheckAPI/models"
)

// maxDayOffset bounds how far ahead a recommendation can look.
const maxDayOffset = 6

// WeekdaysToOffsets maps a set of requested weekdays (0 = Sunday .. 6 =
// Saturday) to day offsets from today by scanning the next 7 calendar
// days. An empty set, or a set matching nothing within the week, yields
// [0] (today).
func WeekdaysToOffsets(weekdays []int, today time.Time) []int {
	if len(weekdays) == 0 {
		return []int{0}
	}

	requested := make(map[int]bool, len(weekdays))
	for _, d := range weekdays {
		requested[d] = true
	}

	// time.Weekday already numbers Sunday as 0.
	todayWeekday := int(today.UTC().Weekday())

	var offsets []int
	for i := 0; i <= maxDayOffset; i++ {
		if requested[(todayWeekday+i)%7] {
			offsets = append(offsets, i)
		}
	}
	if len(offsets) == 0 {
		return []int{0}
	}
	return offsets
}

// TranslateDaySelection turns a day selection into concrete offsets
// from today. Explicit offsets pass through, dropping anything outside
// [0, 6]; weekday selections are scanned forward from today.
func TranslateDaySelection(sel models.DaySelection, today time.Time) []int {
	if sel.Type == models.DaySelectionWeekdays {
		return WeekdaysToOffsets(sel.Values, today)
	}
	var offsets []int
	for _, v := range sel.Values {
		if v >= 0 && v <= maxDayOffset {
			offsets = append(offsets, v)
		}
	}
	if len(offsets) == 0 {
		return []int{0}
	}
	return offsets
}

// TimeWindow is an inclusive time-of-day window in minutes since
// midnight.
type TimeWindow struct {
	StartMinute int
	EndMinute   int
}

// NewTimeWindow parses "HH:MM" (or "HH:MM:SS", seconds ignored) bounds.
func NewTimeWindow(start, end string) (TimeWindow, error) {
	s, err := parseClock(start)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := parseClock(end)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("invalid end time %q: %w", end, err)
	}
	return TimeWindow{StartMinute: s, EndMinute: e}, nil
}

// Contains reports whether t's time of day falls inside the window,
// boundaries included. The caller passes t already converted to the
// relevant local zone.
func (w TimeWindow) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	return w.StartMinute <= m && m <= w.EndMinute
}

func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("out of range")
	}
	return hour*60 + minute, nil
}
