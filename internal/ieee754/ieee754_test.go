// internal/ieee754/ieee754_test.go
package ieee754

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/tamzrod/floatlink/internal/bits"
)

func TestEncode_KnownValues(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5.75, "01000000101110000000000000000000"},
		{-5.75, "11000000101110000000000000000000"},
		{1.0, "00111111100000000000000000000000"},
		{2.0, "01000000000000000000000000000000"},
		{0.5, "00111111000000000000000000000000"},
		// truncated, where round-to-nearest would end in ...1101
		{0.1, "00111101110011001100110011001100"},
		{-123.456, "11000010111101101110100101111000"},
		{1.2e-38, "00000000100000101010101100011110"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			got, err := Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode err=%v", err)
			}
			if got != tt.want {
				t.Fatalf("Encode(%v)\n got=%s\nwant=%s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode_KnownValue(t *testing.T) {
	v, err := Decode("01000000101110000000000000000000")
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if v != 5.75 {
		t.Fatalf("Decode = %v, want 5.75", v)
	}

	v, err = Decode("11000000101110000000000000000000")
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if v != -5.75 {
		t.Fatalf("Decode = %v, want -5.75", v)
	}
}

// Exponent fields 0 and 255 are never produced by Encode; Decode still
// reads them with the normal-number formula.
func TestDecode_ReservedExponentFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"sign only", "1" + strings.Repeat("0", 31), -math.Ldexp(1, -127)},
		{"exponent 0 with mantissa", "0" + "00000000" + "1" + strings.Repeat("0", 22), math.Ldexp(1.5, -127)},
		{"exponent 255", "0" + "11111111" + strings.Repeat("0", 23), math.Ldexp(1, 128)},
		{"exponent 255 with mantissa", "1" + "11111111" + "1" + strings.Repeat("0", 22), -math.Ldexp(1.5, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode err=%v", err)
			}
			if got != tt.want {
				t.Fatalf("Decode(%s) = %v, want %v", tt.in, got, tt.want)
			}
			if math.IsInf(got, 0) || math.IsNaN(got) {
				t.Fatalf("Decode(%s) = %v, want a finite value", tt.in, got)
			}
		})
	}

	// the sign-only pattern is not negative zero
	v, _ := Decode("1" + strings.Repeat("0", 31))
	if v == 0 {
		t.Fatalf("sign-only pattern decoded to zero")
	}
}

func TestEncode_Zero(t *testing.T) {
	for _, v := range []float64{0, math.Copysign(0, -1)} {
		got, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode(%v) err=%v", v, err)
		}
		if got != zero {
			t.Fatalf("Encode(%v) = %s", v, got)
		}
	}

	v, err := Decode(zero)
	if err != nil || v != 0 {
		t.Fatalf("Decode(zero) = %v, %v", v, err)
	}
}

func TestEncode_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Encode(v); !errors.Is(err, bits.ErrInvalidInput) {
			t.Fatalf("Encode(%v): expected ErrInvalidInput, got %v", v, err)
		}
	}
}

func TestEncode_RangeOverflow(t *testing.T) {
	for _, v := range []float64{1e39, -1e39, 1e-40, 1e-38, math.MaxFloat64} {
		if _, err := Encode(v); !errors.Is(err, ErrRangeOverflow) {
			t.Fatalf("Encode(%v): expected ErrRangeOverflow, got %v", v, err)
		}
	}

	// largest and smallest normal single-precision values still fit
	for _, v := range []float64{math.MaxFloat32, math.SmallestNonzeroFloat32 * (1 << 23)} {
		if _, err := Encode(v); err != nil {
			t.Fatalf("Encode(%v) err=%v", v, err)
		}
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	for _, s := range []string{
		"",
		"0100000010111000000000000000000",   // 31 bits
		"010000001011100000000000000000000", // 33 bits
		"0100000010111000000000000000000x",
	} {
		if _, err := Decode(s); !errors.Is(err, bits.ErrInvalidInput) {
			t.Fatalf("Decode(%q): expected ErrInvalidInput, got %v", s, err)
		}
	}
}

// Normal single-precision values have at most 23 fraction bits, so the
// truncating encoder must agree with the hardware layout exactly.
func TestEncode_MatchesHardwareLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		f := randomNormal(rng)

		got, err := Encode(float64(f))
		if err != nil {
			t.Fatalf("Encode(%v) err=%v", f, err)
		}
		want := fmt.Sprintf("%032b", math.Float32bits(f))
		if got != want {
			t.Fatalf("Encode(%v)\n got=%s\nwant=%s", f, got, want)
		}

		back, err := Decode(got)
		if err != nil {
			t.Fatalf("Decode(%s) err=%v", got, err)
		}
		if back != float64(f) {
			t.Fatalf("round trip %v -> %v", f, back)
		}
	}
}

func TestRoundTrip_WithinTruncationBound(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	bound := math.Ldexp(1, -23)

	for i := 0; i < 2000; i++ {
		v := (0.5 + rng.Float64()) * math.Pow(10, float64(rng.Intn(61)-30))
		if rng.Intn(2) == 1 {
			v = -v
		}

		s, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode(%v) err=%v", v, err)
		}
		back, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%s) err=%v", s, err)
		}

		rel := math.Abs(back-v) / math.Abs(v)
		if rel > bound {
			t.Fatalf("round trip %v -> %v: relative error %g > %g", v, back, rel, bound)
		}
		// truncation only ever moves toward zero
		if math.Abs(back) > math.Abs(v) {
			t.Fatalf("round trip %v -> %v grew in magnitude", v, back)
		}
	}
}

func randomNormal(rng *rand.Rand) float32 {
	exp := rng.Intn(254) - 126 // -126..127
	frac := 1 + float64(rng.Intn(1<<23))/float64(1<<23)
	v := math.Ldexp(frac, exp)
	if rng.Intn(2) == 1 {
		v = -v
	}
	return float32(v)
}
