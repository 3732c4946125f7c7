package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt64, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt64")
	}
	if _, ok := AddOverflowSafe(math.MinInt64, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt64")
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		off     int64
		n       int64
		wantEnd int64
		wantErr bool
	}{
		{"middle", 10, 2, 3, 5, false},
		{"whole file", 10, 0, 10, 10, false},
		{"empty at end", 10, 10, 0, 10, false},
		{"past end", 10, 8, 3, 0, true},
		{"negative offset", 10, -1, 1, 0, true},
		{"negative count", 10, 1, -1, 0, true},
		{"overflow", 10, math.MaxInt64, 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := CheckRange(tt.size, tt.off, tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CheckRange(%d,%d,%d) expected error", tt.size, tt.off, tt.n)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckRange(%d,%d,%d) unexpected error: %v", tt.size, tt.off, tt.n, err)
			}
			if end != tt.wantEnd {
				t.Fatalf("end = %d, want %d", end, tt.wantEnd)
			}
		})
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}
