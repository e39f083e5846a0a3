package listing

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/jxsl13/dir-list/model"
)

// Collector gathers listing entries from a Source. Every per-field lookup
// failure is absorbed into the field's documented default and reported, both
// as a structured log event and through Absorbed. Only failing to enumerate
// the directory itself aborts a run.
type Collector struct {
	src      Source
	log      zerolog.Logger
	absorbed *multierror.Error
}

func NewCollector(src Source, log zerolog.Logger) *Collector {
	return &Collector{
		src: src,
		log: log,
	}
}

// Collect enumerates dir's immediate children and extracts one Entry per
// child, in ascending byte order of the name. The returned widths are the
// column maxima of this run.
func (c *Collector) Collect(dir string) ([]model.Entry, model.Widths, error) {
	c.absorbed = nil

	names, err := c.src.ReadDir(dir)
	if err != nil {
		return nil, model.Widths{}, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}
	sort.Strings(names)

	var widths model.Widths
	entries := make([]model.Entry, 0, len(names))
	for _, name := range names {
		e := c.entry(dir, name)
		widths.Observe(e)
		entries = append(entries, e)
		c.log.Debug().Str("entry", name).Msg("collected")
	}

	return entries, widths, nil
}

// Absorbed reports every field level failure swallowed during the last
// Collect call, nil when the run was clean.
func (c *Collector) Absorbed() error {
	return c.absorbed.ErrorOrNil()
}

func (c *Collector) entry(dir, name string) model.Entry {
	path := filepath.Join(dir, name)

	// own attributes of the entry vs. attributes behind a symlink
	linfo, lerr := c.src.Lstat(path)
	tinfo, terr := c.src.Stat(path)

	e := model.Entry{
		Type:     model.Regular,
		Perms:    c.perms(name, linfo, lerr),
		Size:     c.size(name, tinfo, terr),
		Owner:    c.owner(name, linfo, lerr),
		Group:    c.group(name, linfo, lerr),
		Modified: c.modified(name, tinfo, terr),
		Name:     name,
	}

	switch {
	case terr == nil && tinfo.IsDir():
		e.Type = model.Directory
	case lerr == nil && linfo.Mode()&fs.ModeSymlink != 0:
		e.Type = model.Symlink
	}

	return e
}

func (c *Collector) absorb(name, field string, err error) {
	c.absorbed = multierror.Append(c.absorbed, fmt.Errorf("%s: %s: %w", name, field, err))
	c.log.Warn().Str("entry", name).Str("field", field).Err(err).Msg("metadata lookup degraded")
}

func (c *Collector) perms(name string, info fs.FileInfo, err error) string {
	if err != nil {
		c.absorb(name, "permissions", err)
		return PermString(0)
	}
	return PermString(info.Mode())
}

func (c *Collector) size(name string, info fs.FileInfo, err error) string {
	if err != nil {
		c.absorb(name, "size", err)
		return SizeUnknown
	}
	return strconv.FormatInt(info.Size(), 10)
}

func (c *Collector) owner(name string, info fs.FileInfo, err error) string {
	if err != nil {
		c.absorb(name, "owner", err)
		return ""
	}

	owner, err := OwnerName(info)
	if err != nil {
		c.absorb(name, "owner", err)
		return ""
	}
	return owner
}

func (c *Collector) group(name string, info fs.FileInfo, err error) string {
	if err != nil {
		c.absorb(name, "group", err)
		return ""
	}

	group, err := GroupName(info)
	if err != nil {
		c.absorb(name, "group", err)
		return ""
	}
	return group
}

func (c *Collector) modified(name string, info fs.FileInfo, err error) time.Time {
	if err != nil {
		c.absorb(name, "modified", err)
		return time.Time{}
	}
	return info.ModTime()
}
