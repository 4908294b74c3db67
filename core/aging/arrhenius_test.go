package aging

import (
	"errors"
	"math"
	"testing"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

func TestCorrectionFactorColdTarget(t *testing.T) {
	// Cooling from 25 to 15 degC must raise resistance:
	// exp((5000/8.314) * (1/288.15 - 1/298.15)).
	f, err := CorrectionFactor(25, 15, 5000, 8.314)
	if err != nil {
		t.Fatalf("factor: %v", err)
	}
	want := math.Exp((5000 / 8.314) * (1/288.15 - 1/298.15))
	if math.Abs(f-want) > 1e-12 {
		t.Errorf("factor = %v, want %v", f, want)
	}
	if f <= 1 {
		t.Errorf("cold correction factor must exceed 1, got %v", f)
	}
}

func TestCorrectionFactorIdentity(t *testing.T) {
	f, err := CorrectionFactor(25, 25, 5000, 8.314)
	if err != nil {
		t.Fatalf("factor: %v", err)
	}
	if f != 1 {
		t.Errorf("same-temperature factor = %v, want 1", f)
	}
}

func TestCorrectSeriesRoundTrip(t *testing.T) {
	base := []float64{13.83, 14.52, 15.21, 17.29, 20.75}
	fwd, err := CorrectSeries(base, 25, -10, 5000, 8.314)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	back, err := CorrectSeries(fwd, -10, 25, 5000, 8.314)
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}
	for i := range base {
		if math.Abs(back[i]-base[i]) > 1e-9 {
			t.Errorf("round trip [%d] = %v, want %v", i, back[i], base[i])
		}
	}
}

func TestCorrectionFactorInvalid(t *testing.T) {
	if _, err := CorrectionFactor(25, 15, 5000, 0); !errors.Is(err, model.ErrInvalidDomainInput) {
		t.Errorf("zero gas constant: got %v", err)
	}
	if _, err := CorrectionFactor(-300, 15, 5000, 8.314); !errors.Is(err, model.ErrInvalidDomainInput) {
		t.Errorf("below absolute zero: got %v", err)
	}
}

func TestCorrectSeriesUnitAgnostic(t *testing.T) {
	// The same factor applies whether the series is in ohms or milliohms.
	ohms := []float64{0.01383}
	milliohms := []float64{13.83}
	co, err := CorrectSeries(ohms, 25, 15, 5000, 8.314)
	if err != nil {
		t.Fatal(err)
	}
	cm, err := CorrectSeries(milliohms, 25, 15, 5000, 8.314)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cm[0]/co[0]-1000) > 1e-6 {
		t.Errorf("unit scaling broken: %v vs %v", cm[0], co[0])
	}
}
