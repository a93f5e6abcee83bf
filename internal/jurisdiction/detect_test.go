package jurisdiction

import (
	"math"
	"testing"

	"github.com/hyperjump/clausewise/internal/patterns"
)

func TestDetect_NoSignal(t *testing.T) {
	lib := patterns.Default()
	for _, text := range []string{"", "Nothing jurisdictional in here at all."} {
		got := Detect(lib, text)
		if len(got) != len(lib.Jurisdictions) {
			t.Errorf("every tag should be present, got %v", got)
		}
		for tag, s := range got {
			if s != 0 {
				t.Errorf("%q: %s = %v, want 0", text, tag, s)
			}
		}
		if Top(lib, got) != "" {
			t.Error("Top should be empty without signal")
		}
	}
}

func TestDetect_Normalized(t *testing.T) {
	lib := patterns.Default()
	text := "This agreement is governed by the laws of Delaware, United States, " +
		"and applicable federal law. Signed 12/01/2023."
	got := Detect(lib, text)

	var sum float64
	for tag, s := range got {
		if s < 0 || s > 1 {
			t.Errorf("%s out of range: %v", tag, s)
		}
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("sum = %v, want 1", sum)
	}
	if Top(lib, got) != "US" {
		t.Errorf("top = %q, want US (%v)", Top(lib, got), got)
	}
}

func TestRaw_Weights(t *testing.T) {
	lib := patterns.Default()
	raw := Raw(lib, "United States and united states under federal rules, 01/02/2020 and 03-04-2021.")
	want := map[string]float64{
		"US":    7, // two "united states", one "federal", one slash and one hyphen date
		"UK":    0.5,
		"EU":    0.5,
		"INDIA": 1,
	}
	for tag, w := range want {
		if raw[tag] != w {
			t.Errorf("%s raw = %v, want %v", tag, raw[tag], w)
		}
	}
}

func TestContractTypes(t *testing.T) {
	lib := patterns.Default()
	got := ContractTypes(lib, "US", "This Employment and Lease agreement")
	if len(got) != 2 || got[0] != "employment" || got[1] != "lease" {
		t.Errorf("got %q", got)
	}
	if got := ContractTypes(lib, "NOPE", "employment"); len(got) != 0 {
		t.Errorf("unknown tag: %q", got)
	}
}
