package utils

import (
	"errors"
	"testing"
)

func TestEvaluateConflict(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name     string
		id       uint
		err      error
		wantFree bool
		wantErr  error
	}{
		{"no overlap", 0, nil, true, nil},
		{"overlapping booking", 12, nil, false, nil},
		{"query failure is not a free slot", 0, dbErr, false, dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := evaluateConflict(tt.id, tt.err)
			if free != tt.wantFree {
				t.Errorf("free = %v, want %v", free, tt.wantFree)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
