package snapshot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Snapshot is a captured copy of live state, taken just before an update is
// applied so the previous board can still be rendered. The document is a
// deep clone and is never written after capture.
type Snapshot struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Doc     Doc       `json:"doc"`
}

var (
	ulidEntropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	ulidEntropyMu sync.Mutex
)

func newCaptureID() string {
	ulidEntropyMu.Lock()
	defer ulidEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// Capture clones the given live state into an independent snapshot. The
// caller must hand over a consistent view of the state; Capture only
// guarantees that later mutation of the source leaves the snapshot intact.
func Capture(live map[string]any) Snapshot {
	return Snapshot{
		ID:      newCaptureID(),
		TakenAt: time.Now().UTC(),
		Doc:     Doc(live).Clone(),
	}
}
