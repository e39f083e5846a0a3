package model

import "time"

// Type classifies a directory entry for the leading glyph of a listing line.
type Type byte

const (
	Directory Type = 'd'
	Symlink   Type = 'l'
	// Regular also covers special files (devices, fifos, sockets).
	Regular Type = '-'
)

func (t Type) String() string {
	return string(t)
}

// Entry is one immediate child of the listed directory. The string fields
// hold their final rendered form; fields whose lookup failed carry their
// documented default instead ("" for owner and group, "-" for size, the zero
// time for the modification time).
type Entry struct {
	Type     Type
	Perms    string // fixed 9 characters, rwx triads for owner, group, other
	Size     string // decimal byte count or "-"
	Owner    string
	Group    string
	Modified time.Time
	Name     string
}

// Widths holds the maximum rendered length of the owner, group and size
// columns across all entries of a single listing. A Widths value belongs to
// one invocation and is passed explicitly to the renderer.
type Widths struct {
	Owner int
	Group int
	Size  int
}

// Observe widens the columns to fit e. Widths only ever grow.
func (w *Widths) Observe(e Entry) {
	if n := len([]rune(e.Owner)); n > w.Owner {
		w.Owner = n
	}
	if n := len([]rune(e.Group)); n > w.Group {
		w.Group = n
	}
	if n := len([]rune(e.Size)); n > w.Size {
		w.Size = n
	}
}
