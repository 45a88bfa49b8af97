package convert

import (
	"fmt"
	"time"
)

// displayLayout matches the original converter's output: microsecond
// precision, no timezone suffix.
const displayLayout = "2006-01-02 15:04:05.000000"

// Formatter renders entries for display in a single fixed timezone.
type Formatter struct {
	zone *time.Location
}

// NewFormatter creates a Formatter rendering timestamps in zone.
// A nil zone falls back to UTC.
func NewFormatter(zone *time.Location) Formatter {
	if zone == nil {
		zone = time.UTC
	}
	return Formatter{zone: zone}
}

// Format renders one entry as a display line: localized timestamp, level,
// then the (possibly multi-line) message.
func (f Formatter) Format(e Entry) string {
	return fmt.Sprintf("%s %s %s", e.OccurredAt.In(f.zone).Format(displayLayout), e.Level, e.Message)
}
