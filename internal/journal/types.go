// Package journal implements the wellbeing record engine for pulse.
//
// It stores discrete wellbeing events — energy ratings and sleep records —
// in a local SQLite database and provides the read-side views over them:
// day-bucketed history and rolling-window summaries. New entries pass
// through a duplicate guard that detects a recent record of the same kind
// and defers to the caller for a replace-or-cancel decision.
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ─── Records ─────────────────────────────────────────────────────────────────

// EnergyRecord is a single logged energy rating on a 1–5 scale.
type EnergyRecord struct {
	ID       string    `json:"id"`
	Rating   int       `json:"rating"`
	LoggedAt time.Time `json:"logged_at"`
}

// When returns the creation instant of the record.
func (r EnergyRecord) When() time.Time { return r.LoggedAt }

// SleepRecord is a single logged night of sleep.
//
// Bedtime carries time-of-day semantics only — it is independent of
// HoursSlept and never derived from it.
type SleepRecord struct {
	ID          string       `json:"id"`
	HoursSlept  float64      `json:"hours_slept"`
	Interrupted Interruption `json:"interrupted"`
	Bedtime     *time.Time   `json:"bedtime,omitempty"`
	LoggedAt    time.Time    `json:"logged_at"`
}

// When returns the creation instant of the record.
func (r SleepRecord) When() time.Time { return r.LoggedAt }

// Record is the common read-side view over both record kinds.
type Record interface {
	When() time.Time
}

// ─── Interruption ────────────────────────────────────────────────────────────

// Interruption is a three-valued answer to "was your sleep interrupted?".
// The unspecified case is first-class — it is not a nullable bool.
type Interruption string

// Interruption values.
const (
	InterruptedYes         Interruption = "yes"
	InterruptedNo          Interruption = "no"
	InterruptedUnspecified Interruption = "unspecified"
)

// ParseInterruption normalizes a string to an Interruption, defaulting to
// unspecified for empty or unrecognized values.
func ParseInterruption(s string) Interruption {
	switch Interruption(s) {
	case InterruptedYes, InterruptedNo:
		return Interruption(s)
	default:
		return InterruptedUnspecified
	}
}

// String implements fmt.Stringer.
func (i Interruption) String() string { return string(i) }

// ─── Requests ────────────────────────────────────────────────────────────────

// EnergyRequest holds the user-supplied fields of a proposed energy entry.
type EnergyRequest struct {
	Rating int `validate:"gte=1,lte=5"`
}

// SleepRequest holds the user-supplied fields of a proposed sleep entry.
type SleepRequest struct {
	HoursSlept  float64 `validate:"gte=0,lte=24"`
	Interrupted Interruption
	Bedtime     *time.Time
}

// ValidateEnergyRequest checks the proposed rating against its valid range.
// Invalid input is rejected here, before the duplicate guard or the store
// are ever consulted.
func ValidateEnergyRequest(req EnergyRequest) error {
	if err := validate.Struct(req); err != nil {
		return &ValidationError{Field: "rating", Err: err}
	}
	return nil
}

// ValidateSleepRequest checks the proposed sleep fields against their
// valid ranges.
func ValidateSleepRequest(req SleepRequest) error {
	if err := validate.Struct(req); err != nil {
		return &ValidationError{Field: "hours_slept", Err: err}
	}
	return nil
}

// ─── Errors ──────────────────────────────────────────────────────────────────

// ErrNotFound reports that a record id does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a proposed entry field outside its valid range.
// Callers recover locally (keep the input form open); it never reaches
// the store.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// StoreError reports a persistence failure on insert, delete, or query.
// The operation that failed is preserved for logging.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("journal: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
