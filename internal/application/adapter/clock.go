package adapter

import "time"

// Clock supplies the current time. Statistics and series computations depend
// on "today", so it is injected rather than read ambiently.
type Clock interface {
	Now() time.Time
}
