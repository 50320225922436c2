package extract

import (
	"billscan/internal/domain"
	"billscan/internal/port"
)

// UsageTracker accumulates token usage across the model calls of a single
// request. A fresh tracker is created per request; it is not safe for
// concurrent use and never shared across requests.
type UsageTracker struct {
	input  int
	output int
	total  int
}

// NewUsageTracker returns a zeroed tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{}
}

// Add accumulates the counts of one model call. A nil usage (provider
// omitted the metadata) is a no-op.
func (t *UsageTracker) Add(u *port.TokenCounts) {
	if u == nil {
		return
	}
	t.input += u.InputTokens
	t.output += u.OutputTokens
	t.total += u.TotalTokens
}

// Reset zeroes all counters.
func (t *UsageTracker) Reset() {
	t.input = 0
	t.output = 0
	t.total = 0
}

// Totals returns the accumulated usage.
func (t *UsageTracker) Totals() domain.TokenUsage {
	return domain.TokenUsage{
		TotalTokens:  t.total,
		InputTokens:  t.input,
		OutputTokens: t.output,
	}
}
