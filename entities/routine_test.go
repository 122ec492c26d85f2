package entities

import (
	"errors"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestValidateSchedule(t *testing.T) {
	cases := []struct {
		name    string
		routine Routine
		wantErr error
	}{
		{"daily", Routine{Frequency: FrequencyDaily}, nil},
		{"weekly", Routine{Frequency: FrequencyWeekly}, nil},
		{"monthly", Routine{Frequency: FrequencyMonthly}, nil},
		{"custom with interval", Routine{Frequency: FrequencyCustom, CustomInterval: intPtr(3)}, nil},
		{"custom without interval", Routine{Frequency: FrequencyCustom}, ErrInvalidInterval},
		{"custom zero interval", Routine{Frequency: FrequencyCustom, CustomInterval: intPtr(0)}, ErrInvalidInterval},
		{"unknown", Routine{Frequency: "hourly"}, ErrInvalidFrequency},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.routine.ValidateSchedule()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNextExecutionAfter(t *testing.T) {
	prev := time.Date(2025, 1, 31, 6, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		routine Routine
		want    time.Time
	}{
		{"daily", Routine{Frequency: FrequencyDaily}, prev.AddDate(0, 0, 1)},
		{"weekly", Routine{Frequency: FrequencyWeekly}, prev.AddDate(0, 0, 7)},
		// AddDate normalizes Jan 31 + 1 month to Mar 3.
		{"monthly", Routine{Frequency: FrequencyMonthly}, time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC)},
		{"custom", Routine{Frequency: FrequencyCustom, CustomInterval: intPtr(10)}, prev.AddDate(0, 0, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.routine.NextExecutionAfter(prev)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("next = %v, want %v", got, tc.want)
			}
		})
	}

	bad := Routine{Frequency: "hourly"}
	if _, err := bad.NextExecutionAfter(prev); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidFrequency)
	}
}
