package progression

import "time"

// dateLayout is the calendar-date format stored in LastStudyDate.
const dateLayout = "2006-01-02"

// nextStreak computes the updated consecutive-day counter. Comparison is by
// explicit calendar date, not millisecond difference: a second action on the
// same date leaves the counter alone, an action on the day immediately after
// the recorded date increments it, and anything else (first-ever activity, a
// gap of two or more days, or an unparseable stored date) resets it to 1.
func nextStreak(current int, lastDate string, today time.Time) (int, string) {
	todayStr := today.Format(dateLayout)
	if lastDate == todayStr {
		return current, lastDate
	}

	last, err := time.Parse(dateLayout, lastDate)
	if err == nil && last.AddDate(0, 0, 1).Format(dateLayout) == todayStr {
		return current + 1, todayStr
	}
	return 1, todayStr
}
