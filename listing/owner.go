package listing

import (
	"archive/tar"
	"fmt"
	"io/fs"
	"os/user"
	"strconv"
	"syscall"

	"github.com/cavaliergopher/cpio"
)

// UserID extracts the owning uid from the stat carrier behind fi, -1 when
// the carrier type is unknown.
func UserID(fi fs.FileInfo) int {
	if stat, ok := fi.Sys().(*syscall.Stat_t); ok {
		return int(stat.Uid)
	}

	if hdr, ok := fi.Sys().(*tar.Header); ok {
		return hdr.Uid
	}

	if hdr, ok := fi.Sys().(*cpio.Header); ok {
		return hdr.Uid
	}

	return -1
}

// GroupID extracts the owning gid from the stat carrier behind fi, -1 when
// the carrier type is unknown.
func GroupID(fi fs.FileInfo) int {
	if stat, ok := fi.Sys().(*syscall.Stat_t); ok {
		return int(stat.Gid)
	}

	if hdr, ok := fi.Sys().(*tar.Header); ok {
		return hdr.Gid
	}

	if hdr, ok := fi.Sys().(*cpio.Header); ok {
		return hdr.Guid
	}

	return -1
}

// OwnerName resolves fi's owner to a username. A name recorded on the
// carrier itself wins, then the passwd entry for the uid, then the decimal
// uid. Errors only when no owner identity at all is attached to fi.
func OwnerName(fi fs.FileInfo) (string, error) {
	if hdr, ok := fi.Sys().(*tar.Header); ok && hdr.Uname != "" {
		return hdr.Uname, nil
	}

	uid := UserID(fi)
	if uid < 0 {
		return "", fmt.Errorf("no owner information for %s", fi.Name())
	}

	id := strconv.Itoa(uid)
	if u, err := user.LookupId(id); err == nil {
		return u.Username, nil
	}
	return id, nil
}

// GroupName resolves fi's group like OwnerName resolves the owner.
func GroupName(fi fs.FileInfo) (string, error) {
	if hdr, ok := fi.Sys().(*tar.Header); ok && hdr.Gname != "" {
		return hdr.Gname, nil
	}

	gid := GroupID(fi)
	if gid < 0 {
		return "", fmt.Errorf("no group information for %s", fi.Name())
	}

	id := strconv.Itoa(gid)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name, nil
	}
	return id, nil
}
