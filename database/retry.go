package database

import (
	"math"
	"time"

	"jardin/pkg/apperr"
)

const baseBackoff = 100 * time.Millisecond

// WithRetry runs a write and retries it with exponential backoff when it fails
// for a non-domain reason (typically a busy database file). Validation,
// not-found and invalid-state errors are the caller's problem and returned at
// once. After the attempts are spent the last error surfaces as a
// PersistenceError.
func WithRetry(op string, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var last error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		if apperr.IsValidation(err) || apperr.IsNotFound(err) || apperr.IsInvalidState(err) {
			return err
		}
		last = err
		if i < attempts-1 {
			time.Sleep(time.Duration(math.Pow(2, float64(i))) * baseBackoff)
		}
	}
	return apperr.Persistence(op, last)
}
