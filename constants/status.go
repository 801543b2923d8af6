package constants

import (
	"fmt"
)

// Status is the canonical three-value status presented to users.
type Status string

// Stable values (store these exact strings in DB).
const (
	StatusNew      Status = "NEW"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// legacyStatuses maps every raw status value ever stored to its canonical
// form. Historical rows may still carry PENDING/PROCESSING/DRAFT; those are
// consolidated at read time so old data displays correctly without a
// destructive migration.
var legacyStatuses = map[string]Status{
	"PENDING":    StatusNew,
	"PROCESSING": StatusNew,
	"DRAFT":      StatusNew,
	"NEW":        StatusNew,
	"APPROVED":   StatusApproved,
	"REJECTED":   StatusRejected,
}

// UnknownStatusError reports a raw status value outside the known set.
// Unknown values are a data-quality problem and must never be silently
// coerced to a default.
type UnknownStatusError struct {
	Raw string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status value %q", e.Raw)
}

// CanonicalizeStatus maps a raw stored status to the canonical set. Lookup
// is exact: stored values are uppercase already, and anything else signals a
// data-quality problem rather than a formatting one.
func CanonicalizeStatus(raw string) (Status, error) {
	s, ok := legacyStatuses[raw]
	if !ok {
		return "", &UnknownStatusError{Raw: raw}
	}
	return s, nil
}

func AllStatuses() []Status {
	return []Status{StatusNew, StatusApproved, StatusRejected}
}
