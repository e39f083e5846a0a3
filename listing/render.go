package listing

import (
	"fmt"
	"io"
	"time"

	"github.com/jxsl13/dir-list/model"
)

// SizeUnknown is rendered when the byte size of an entry could not be read.
const SizeUnknown = "-"

// Line formats a single entry against the final column widths of the run.
// Owner, group and size are right justified; content is never truncated.
func Line(e model.Entry, w model.Widths, now time.Time) string {
	return fmt.Sprintf("%s%s %*s %*s %*s %s %s",
		e.Type, e.Perms,
		w.Owner, e.Owner,
		w.Group, e.Group,
		w.Size, e.Size,
		ModTime(e.Modified, now),
		e.Name,
	)
}

// Render writes one line per entry to out, preserving the given order.
func Render(out io.Writer, entries []model.Entry, w model.Widths, now time.Time) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(out, Line(e, w, now)); err != nil {
			return err
		}
	}
	return nil
}
