package config

import (
	"testing"

	"github.com/go-drift/flow/pkg/display"
	"github.com/go-drift/flow/pkg/flow"
)

func TestParseDimension(t *testing.T) {
	m := display.Metrics{Density: 2.5}
	tests := []struct {
		in     string
		px     int
		string string
	}{
		{"12", 12, "12"},
		{"12px", 12, "12"},
		{"8dp", 20, "8dp"},
		{" 3.4 ", 3, "3.4"},
		{"wrap", flow.WrapContent, "wrap"},
		{"WRAP_CONTENT", flow.WrapContent, "wrap"},
		{"match_parent", flow.MatchParent, "match"},
	}
	for _, tt := range tests {
		d, err := ParseDimension(tt.in)
		if err != nil {
			t.Fatalf("ParseDimension(%q): %v", tt.in, err)
		}
		if !d.IsSet() {
			t.Errorf("ParseDimension(%q) not marked set", tt.in)
		}
		if got := d.Pixels(m); got != tt.px {
			t.Errorf("ParseDimension(%q).Pixels = %d, want %d", tt.in, got, tt.px)
		}
		if got := d.String(); got != tt.string {
			t.Errorf("ParseDimension(%q).String = %q, want %q", tt.in, got, tt.string)
		}
	}

	if _, err := ParseDimension("8em"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestParseConstraint(t *testing.T) {
	m := display.Metrics{Density: 2}
	tests := []struct {
		in   string
		want flow.Constraint
	}{
		{"exact:100", flow.Exact(100)},
		{"EXACT:50dp", flow.Exact(100)},
		{"atmost:30", flow.AtMost(30)},
		{"at_most:30", flow.AtMost(30)},
		{"unbounded", flow.Unbounded(0)},
		{"unbounded:640", flow.Unbounded(640)},
		{"", flow.Unbounded(0)},
	}
	for _, tt := range tests {
		spec, err := ParseConstraint(tt.in)
		if err != nil {
			t.Fatalf("ParseConstraint(%q): %v", tt.in, err)
		}
		if got := spec.Resolve(m); got != tt.want {
			t.Errorf("ParseConstraint(%q).Resolve = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPx(t *testing.T) {
	if got := Px(7).Pixels(display.Metrics{Density: 3}); got != 7 {
		t.Errorf("Px(7).Pixels = %d, want 7", got)
	}
}
