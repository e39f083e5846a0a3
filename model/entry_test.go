package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "d", Directory.String())
	assert.Equal(t, "l", Symlink.String())
	assert.Equal(t, "-", Regular.String())
}

func TestWidthsObserve(t *testing.T) {
	var w Widths

	w.Observe(Entry{Owner: "bob", Group: "staff", Size: "42"})
	assert.Equal(t, Widths{Owner: 3, Group: 5, Size: 2}, w)

	w.Observe(Entry{Owner: "alexander", Group: "a", Size: "123456"})
	assert.Equal(t, Widths{Owner: 9, Group: 5, Size: 6}, w)

	// widths never shrink
	w.Observe(Entry{})
	assert.Equal(t, Widths{Owner: 9, Group: 5, Size: 6}, w)
}

func TestWidthsObserveCountsRunes(t *testing.T) {
	var w Widths
	w.Observe(Entry{Owner: "müller"})
	assert.Equal(t, 6, w.Owner)
}
