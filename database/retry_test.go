package database

import (
	"errors"
	"testing"

	"jardin/pkg/apperr"
)

func TestWithRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	err := WithRetry("test.op", 3, func() error {
		calls++
		if calls < 2 {
			return errors.New("locked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestWithRetryDoesNotRetryDomainErrors(t *testing.T) {
	for name, domainErr := range map[string]error{
		"validation":    apperr.Validation("title", "required"),
		"not-found":     apperr.NotFound("task", "t1"),
		"invalid-state": apperr.InvalidState("already done"),
	} {
		calls := 0
		err := WithRetry("test.op", 3, func() error {
			calls++
			return domainErr
		})
		if calls != 1 {
			t.Fatalf("%s: calls = %d, want 1", name, calls)
		}
		if !errors.Is(err, domainErr) {
			t.Fatalf("%s: err = %v, want the original error", name, err)
		}
	}
}

func TestWithRetryWrapsFinalFailure(t *testing.T) {
	boom := errors.New("disk is full")
	calls := 0
	err := WithRetry("test.op", 2, func() error {
		calls++
		return boom
	})
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	var pe *apperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %T, want *apperr.PersistenceError", err)
	}
	if pe.Op != "test.op" || !errors.Is(err, boom) {
		t.Fatalf("wrapped error lost context: %v", err)
	}
}

func TestWithRetryClampsAttempts(t *testing.T) {
	calls := 0
	_ = WithRetry("test.op", 0, func() error {
		calls++
		return errors.New("nope")
	})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
