package synth

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantOk  bool
	}{
		{"crowbar", Crowbar, true},
		{"nullable-extension", NullableExtension, true},
		{"location", Location, true},
		{"bogus", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseTarget(tt.in)
		if ok != tt.wantOk {
			t.Errorf("ParseTarget(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseTarget(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Target != NullableExtension {
		t.Errorf("default Target = %v, want NullableExtension", opts.Target)
	}
	if !opts.BuggyBoolOperators {
		t.Error("default BuggyBoolOperators must be true for benchmark comparability")
	}
	if opts.EnableUnaryMinus {
		t.Error("default EnableUnaryMinus must be false")
	}
	if opts.MaxDepth != 3 {
		t.Errorf("default MaxDepth = %d, want 3", opts.MaxDepth)
	}
}
