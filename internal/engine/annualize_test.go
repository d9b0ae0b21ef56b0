package engine

import (
	"errors"
	"math"
	"testing"
)

func TestAnnualize(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		years   float64
		want    float64
		wantErr error
	}{
		{"zero return one year", 0, 1, 0, nil},
		{"zero return long period", 0, 2.5, 0, nil},
		{"doubling in one year", 100, 1, 100, nil},
		{"21% over two years", 21, 2, 10, nil},
		{"loss over one year", -10, 1, -10, nil},
		{"total loss", -100, 1, 0, ErrUnrealResult},
		{"below total loss", -150, 2, 0, ErrUnrealResult},
		{"zero years", 10, 0, 0, ErrNonPositiveYears},
		{"negative years", 10, -1, 0, ErrNonPositiveYears},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := annualize(tt.pct, tt.years)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("annualize() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("annualize() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("annualize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnnualizeMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for pct := -90.0; pct <= 200; pct += 10 {
		got, err := annualize(pct, 2.5)
		if err != nil {
			t.Fatalf("annualize(%v, 2.5) unexpected error: %v", pct, err)
		}
		if got <= prev {
			t.Fatalf("annualize(%v, 2.5) = %v, not greater than %v", pct, got, prev)
		}
		prev = got
	}
}
