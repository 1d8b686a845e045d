package adapters

import (
	"time"

	"github.com/finance-planner/backend/internal/application/adapter"
)

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock reading wall time in loc. A nil loc means UTC.
// The scheduler derives "today" from this location.
func NewSystemClock(loc *time.Location) adapter.Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
