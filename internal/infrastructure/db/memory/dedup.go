package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/retours-express/returns-platform/internal/api/metrics"
)

const dedupTTL = time.Hour

// DedupChecker is the in-process fallback for carrier event idempotency,
// used when the platform runs without Redis.
type DedupChecker struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewDedupChecker() *DedupChecker {
	return &DedupChecker{seen: make(map[string]time.Time)}
}

// IsDuplicate reports whether this exact event was processed within the TTL.
func (d *DedupChecker) IsDuplicate(_ context.Context, returnID, status string, ts time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	markedAt, ok := d.seen[dedupKey(returnID, status, ts)]
	if ok && time.Since(markedAt) < dedupTTL {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this event has been processed.
func (d *DedupChecker) Mark(_ context.Context, returnID, status string, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seen[dedupKey(returnID, status, ts)] = time.Now()
	return nil
}

func dedupKey(returnID, status string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%s:%d", returnID, status, ts.Unix())
}
