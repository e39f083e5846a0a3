package listing

import "io/fs"

// permSlots fixes the nine permission positions in their output order:
// owner, group, other, each read/write/execute. Rendering iterates this
// table so the order never depends on how the underlying mode is queried.
var permSlots = [9]struct {
	mask fs.FileMode
	sym  byte
}{
	{0o400, 'r'}, {0o200, 'w'}, {0o100, 'x'},
	{0o040, 'r'}, {0o020, 'w'}, {0o010, 'x'},
	{0o004, 'r'}, {0o002, 'w'}, {0o001, 'x'},
}

// PermString renders the nine rwx slots of mode. Unset bits render as '-',
// which makes PermString(0) the degraded "no permission info" value.
func PermString(mode fs.FileMode) string {
	var b [9]byte
	for i, slot := range permSlots {
		if mode&slot.mask != 0 {
			b[i] = slot.sym
		} else {
			b[i] = '-'
		}
	}
	return string(b[:])
}
