// ABOUTME: Record ID generation for locally created records.
// ABOUTME: IDs are base36 millisecond timestamps with a random suffix.
package models

import (
	"math/rand"
	"strconv"
	"time"
)

// NewID returns a unique string ID: the current Unix millisecond timestamp
// in base36 followed by a random base36 suffix. Sortable by creation time
// and collision-safe enough for single-device writes.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatInt(rand.Int63n(1<<40), 36)
	return ts + suffix
}
