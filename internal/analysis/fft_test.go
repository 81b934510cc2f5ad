package analysis

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestFFT_Impulse(t *testing.T) {
	// An impulse has a flat spectrum.
	data := make([]float64, 8)
	data[0] = 1.0

	result := FFT(data)
	for i, c := range result {
		if math.Abs(cmplx.Abs(c)-1.0) > 1e-12 {
			t.Errorf("bin %d magnitude = %f, want 1", i, cmplx.Abs(c))
		}
	}
}

func TestFFT_SingleTone(t *testing.T) {
	const n = 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / n)
	}

	ps := PowerSpectrum(data)

	maxIdx := 0
	for i := range ps {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != 4 {
		t.Errorf("peak at bin %d, want 4", maxIdx)
	}
}

func TestPadPow2(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{1000, 1024},
	}

	for _, tt := range tests {
		got := PadPow2(make([]float64, tt.in))
		if len(got) != tt.want {
			t.Errorf("PadPow2(len %d) has len %d, want %d", tt.in, len(got), tt.want)
		}
	}
}

func TestDominantFrequency(t *testing.T) {
	const dt = 0.01
	const freq = 5.0 // Hz

	data := make([]float64, 512)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 0.5 {
		t.Errorf("dominant frequency = %f, want ~%f", got, freq)
	}
}

func TestDominantFrequency_SubsampledSeries(t *testing.T) {
	// A series recorded every 5th step of an eps=0.03 run is spaced at
	// 0.15s; the frequency must come out against that spacing, not eps.
	const dt = 0.03 * 5
	const freq = 2.0 // Hz

	data := make([]float64, 256)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 0.1 {
		t.Errorf("dominant frequency = %f, want ~%f", got, freq)
	}
}

func TestDominantFrequency_Degenerate(t *testing.T) {
	if got := DominantFrequency(nil, 0.01); got != 0 {
		t.Errorf("empty series frequency = %f, want 0", got)
	}
	if got := DominantFrequency(make([]float64, 64), 0.01); got != 0 {
		t.Errorf("flat series frequency = %f, want 0", got)
	}
}
