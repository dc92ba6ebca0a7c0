package internal

// DefaultUsageLimit is the cap on billable AI calls per persisted counter.
// There is no time-based reset.
const DefaultUsageLimit = 20

// QuotaGate enforces the per-surface upper bound on billable AI calls. Every
// code path that would issue a remote call checks CanProceed first.
type QuotaGate struct {
	Limit int
}

// NewQuotaGate builds a gate, falling back to DefaultUsageLimit for
// non-positive limits.
func NewQuotaGate(limit int) QuotaGate {
	if limit <= 0 {
		limit = DefaultUsageLimit
	}
	return QuotaGate{Limit: limit}
}

// CanProceed reports whether another billable call is allowed.
func (g QuotaGate) CanProceed(count int) bool {
	return count < g.Limit
}

// Record returns the counter after one billable call, capped at the limit.
func (g QuotaGate) Record(count int) int {
	next := count + 1
	if next > g.Limit {
		next = g.Limit
	}
	return next
}

// Remaining returns how many billable calls are left.
func (g QuotaGate) Remaining(count int) int {
	left := g.Limit - count
	if left < 0 {
		return 0
	}
	return left
}
