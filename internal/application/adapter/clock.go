package adapter

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}
