package conv

import (
	"errors"
	"math"
	"testing"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(result) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d, expected %d", len(result), len(tt.expected))
			}

			for i := range result {
				if math.Abs(result[i]-tt.expected[i]) > 1e-10 {
					t.Errorf("result[%d] = %v, expected %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestDirect_SIMDPathMatchesScalar(t *testing.T) {
	a := []float64{0.5, -1, 2, 0.25, 3, -0.75}
	b := []float64{1, 0.5, -0.25, 0.125, 2}

	got, err := Direct(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := make([]float64, len(a)+len(b)-1)
	directToScalar(want, a, b, len(a), len(b))

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("result[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestCascade(t *testing.T) {
	got, err := Cascade([]float64{1, 1}, []float64{1, -1}, []float64{2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (1 + x)(1 - x) * 2 = 2 - 2x^2
	want := []float64{2, 0, -2}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, expected %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("result[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestCascade_Empty(t *testing.T) {
	got, err := Cascade()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Cascade() = %v, want [1]", got)
	}

	if _, err := Cascade([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestMustDirect_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty input")
		}
	}()

	MustDirect(nil, []float64{1})
}

func TestDirectCommutative(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5}

	ab, _ := Direct(a, b)
	ba, _ := Direct(b, a)

	if len(ab) != len(ba) {
		t.Fatalf("lengths differ: %d vs %d", len(ab), len(ba))
	}

	for i := range ab {
		if math.Abs(ab[i]-ba[i]) > 1e-10 {
			t.Errorf("convolution not commutative at %d: %v vs %v", i, ab[i], ba[i])
		}
	}
}
