package task

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator issues task ids. taken reports whether an id is already held
// by the store; generators must never return a taken id.
type IDGenerator interface {
	NewID(now time.Time, taken func(id string) bool) string
}

// TimeIDs issues millisecond Unix timestamps as decimal strings.
// Two tasks created in the same millisecond would collide, so a candidate
// that is not above the last issued id, or is taken, is bumped by one.
// Not safe for concurrent use; the Store serializes calls.
type TimeIDs struct {
	last int64
}

// NewID implements IDGenerator.
func (g *TimeIDs) NewID(now time.Time, taken func(string) bool) string {
	n := now.UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	for taken != nil && taken(strconv.FormatInt(n, 10)) {
		n++
	}
	g.last = n
	return strconv.FormatInt(n, 10)
}

// UUIDs issues random (version 4) UUIDs.
type UUIDs struct{}

// NewID implements IDGenerator.
func (UUIDs) NewID(_ time.Time, taken func(string) bool) string {
	for {
		id := uuid.NewString()
		if taken == nil || !taken(id) {
			return id
		}
	}
}
