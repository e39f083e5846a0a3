package listing

import (
	"fmt"
	"time"
)

// ModTime renders t in the listing's "Mon dd yearOrTime" form, local time.
// The day is space padded to two characters. Entries modified in the current
// year show the wall clock instead of the year; now supplies that reference
// so a single invocation uses one consistent cutoff. Both forms are right
// justified to five characters so mixed listings stay aligned.
func ModTime(t, now time.Time) string {
	t = t.Local()

	yearOrTime := t.Format("15:04")
	if t.Year() != now.Year() {
		yearOrTime = fmt.Sprintf("%d", t.Year())
	}

	return fmt.Sprintf("%s %2d %5s", t.Format("Jan"), t.Day(), yearOrTime)
}
