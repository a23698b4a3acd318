package domain

import "time"

// AuditFields carries the creation and last-update times of a persisted entity.
// Only records change after creation, when their settlement status moves.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NewAuditFields stamps a new entity created at ts.
func NewAuditFields(ts time.Time) AuditFields {
	return AuditFields{CreatedAt: ts, LastUpdatedAt: ts}
}
