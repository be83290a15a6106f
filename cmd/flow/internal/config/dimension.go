package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flow/pkg/display"
	"github.com/go-drift/flow/pkg/flow"
)

// Dimension is a size written as pixels ("12"), density-independent pixels
// ("8dp"), or one of the keywords "wrap" and "match".
type Dimension struct {
	Value   float64
	DP      bool
	Keyword string
	set     bool
}

// Px returns a pixel dimension.
func Px(v int) Dimension {
	return Dimension{Value: float64(v), set: true}
}

// IsSet reports whether the dimension appeared in the file.
func (d Dimension) IsSet() bool {
	return d.set
}

// UnmarshalYAML accepts a YAML int, float, or string.
func (d *Dimension) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", value.Line)
	}
	parsed, err := ParseDimension(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// ParseDimension parses the textual forms accepted by UnmarshalYAML.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "wrap", "wrap_content":
		return Dimension{Keyword: "wrap", set: true}, nil
	case "match", "match_parent":
		return Dimension{Keyword: "match", set: true}, nil
	}

	d := Dimension{set: true}
	num := s
	switch {
	case strings.HasSuffix(s, "dp"):
		d.DP = true
		num = strings.TrimSuffix(s, "dp")
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid dimension %q", s)
	}
	d.Value = v
	return d, nil
}

// Pixels resolves the dimension against the screen density. Keywords
// resolve to flow.MatchParent and flow.WrapContent.
func (d Dimension) Pixels(m display.Metrics) int {
	switch d.Keyword {
	case "wrap":
		return flow.WrapContent
	case "match":
		return flow.MatchParent
	}
	if d.DP {
		return m.Scale(d.Value)
	}
	return display.Metrics{}.Scale(d.Value)
}

func (d Dimension) String() string {
	if d.Keyword != "" {
		return d.Keyword
	}
	if d.DP {
		return strconv.FormatFloat(d.Value, 'f', -1, 64) + "dp"
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64)
}

// ConstraintSpec is an axis constraint written as "exact:N", "atmost:N",
// "unbounded", or "unbounded:N". N is a Dimension.
type ConstraintSpec struct {
	Mode flow.Mode
	Size Dimension
}

// UnmarshalYAML parses the constraint string.
func (c *ConstraintSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: constraint must be a string", value.Line)
	}
	parsed, err := ParseConstraint(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// ParseConstraint parses the textual constraint form.
func ParseConstraint(s string) (ConstraintSpec, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	mode, arg, hasArg := strings.Cut(s, ":")

	var spec ConstraintSpec
	switch mode {
	case "exact":
		spec.Mode = flow.ModeExact
	case "atmost", "at_most":
		spec.Mode = flow.ModeAtMost
	case "unbounded", "":
		spec.Mode = flow.ModeUnbounded
	default:
		return ConstraintSpec{}, fmt.Errorf("unknown constraint mode %q", mode)
	}

	if !hasArg {
		if spec.Mode != flow.ModeUnbounded {
			return ConstraintSpec{}, fmt.Errorf("constraint %q needs a size", s)
		}
		return spec, nil
	}
	size, err := ParseDimension(arg)
	if err != nil {
		return ConstraintSpec{}, err
	}
	if size.Keyword != "" {
		return ConstraintSpec{}, fmt.Errorf("constraint size cannot be %q", size.Keyword)
	}
	spec.Size = size
	return spec, nil
}

// Resolve converts c to a flow.Constraint, scaling dp sizes by m.
func (c ConstraintSpec) Resolve(m display.Metrics) flow.Constraint {
	size := 0
	if c.Size.IsSet() {
		size = c.Size.Pixels(m)
	}
	switch c.Mode {
	case flow.ModeExact:
		return flow.Exact(size)
	case flow.ModeAtMost:
		return flow.AtMost(size)
	default:
		return flow.Unbounded(size)
	}
}
