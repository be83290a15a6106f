package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flow/pkg/display"
	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/geometry"
	"github.com/go-drift/flow/pkg/label"
)

// FileName is the scene file looked up by LoadOptional.
const FileName = "flow.yaml"

// DefaultSchema is assumed when a scene omits schema.
const DefaultSchema = "v1.0.0"

// Scene represents a flow.yaml layout description.
type Scene struct {
	Schema      string         `yaml:"schema,omitempty"`
	Name        string         `yaml:"name,omitempty"`
	Screen      ScreenConfig   `yaml:"screen"`
	Width       ConstraintSpec `yaml:"width"`
	Height      ConstraintSpec `yaml:"height"`
	Padding     PaddingConfig  `yaml:"padding"`
	ColumnSpace Dimension      `yaml:"columnSpace"`
	RowSpace    Dimension      `yaml:"rowSpace"`
	MaxLines    int            `yaml:"maxLines"`
	Children    []ChildConfig  `yaml:"children"`
}

// ScreenConfig describes the display used when the width is not exact.
type ScreenConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density,omitempty"`
}

// PaddingConfig holds the container insets.
type PaddingConfig struct {
	Left   Dimension `yaml:"left"`
	Top    Dimension `yaml:"top"`
	Right  Dimension `yaml:"right"`
	Bottom Dimension `yaml:"bottom"`
}

// ChildConfig describes one label child.
type ChildConfig struct {
	Label   string        `yaml:"label"`
	Width   Dimension     `yaml:"width"`
	Height  Dimension     `yaml:"height"`
	Padding PaddingConfig `yaml:"padding"`
	Visible *bool         `yaml:"visible,omitempty"`
}

// Resolved contains the layout inputs built from a scene.
type Resolved struct {
	Name    string
	Schema  string
	Screen  display.Metrics
	Width   flow.Constraint
	Height  flow.Constraint
	Padding geometry.EdgeInsets
	Config  flow.Config
	Labels  []*label.Label
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	scene, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scene, nil
}

// LoadOptional reads flow.yaml from dir if present. A missing file yields an
// empty scene.
func LoadOptional(dir string) (*Scene, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &Scene{}, nil
	}
	return Load(path)
}

// Parse decodes scene YAML. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	var scene Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scene); err != nil {
		if errors.Is(err, io.EOF) {
			return &scene, nil
		}
		return nil, err
	}
	return &scene, nil
}

// Resolve validates the scene and fills in defaults.
func (s *Scene) Resolve() (*Resolved, error) {
	return s.ResolveWith(nil)
}

// ResolveWith is Resolve with a provider for the screen metrics of scenes
// that leave the screen section out.
func (s *Scene) ResolveWith(fallback display.Provider) (*Resolved, error) {
	schema, err := resolveSchema(s.Schema)
	if err != nil {
		return nil, err
	}

	if s.Screen.Width < 0 || s.Screen.Height < 0 {
		return nil, fmt.Errorf("screen size must be >= 0 (got %dx%d)", s.Screen.Width, s.Screen.Height)
	}
	if s.Screen.Density < 0 {
		return nil, fmt.Errorf("screen.density must be >= 0 (got %v)", s.Screen.Density)
	}
	screen := display.Metrics{
		Width:   s.Screen.Width,
		Height:  s.Screen.Height,
		Density: s.Screen.Density,
	}
	if screen == (display.Metrics{}) && fallback != nil {
		screen = fallback.ScreenMetrics()
	}

	columnSpace, err := spacing("columnSpace", s.ColumnSpace, screen)
	if err != nil {
		return nil, err
	}
	rowSpace, err := spacing("rowSpace", s.RowSpace, screen)
	if err != nil {
		return nil, err
	}
	if s.MaxLines < 0 {
		return nil, fmt.Errorf("maxLines must be >= 0 (got %d)", s.MaxLines)
	}

	padding, err := s.Padding.resolve("padding", screen)
	if err != nil {
		return nil, err
	}

	labels := make([]*label.Label, 0, len(s.Children))
	for i, c := range s.Children {
		l, err := c.resolve(screen)
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		labels = append(labels, l)
	}

	name := strings.TrimSpace(s.Name)
	if name == "" {
		name = "scene"
	}

	return &Resolved{
		Name:    name,
		Schema:  schema,
		Screen:  screen,
		Width:   s.Width.Resolve(screen),
		Height:  s.Height.Resolve(screen),
		Padding: padding,
		Config: flow.Config{
			ColumnSpace: columnSpace,
			RowSpace:    rowSpace,
			MaxLines:    s.MaxLines,
		},
		Labels: labels,
	}, nil
}

func resolveSchema(schema string) (string, error) {
	schema = strings.TrimSpace(schema)
	if schema == "" {
		return DefaultSchema, nil
	}
	if !strings.HasPrefix(schema, "v") {
		schema = "v" + schema
	}
	if !semver.IsValid(schema) {
		return "", fmt.Errorf("schema %q is not a valid semantic version", schema)
	}
	if major := semver.Major(schema); major != semver.Major(DefaultSchema) {
		return "", fmt.Errorf("unsupported schema %s (this tool reads %s.x)", schema, semver.Major(DefaultSchema))
	}
	return semver.Canonical(schema), nil
}

func spacing(field string, d Dimension, m display.Metrics) (int, error) {
	if !d.IsSet() {
		return 0, nil
	}
	if d.Keyword != "" {
		return 0, fmt.Errorf("%s cannot be %q", field, d.Keyword)
	}
	px := d.Pixels(m)
	if px < 0 {
		return 0, fmt.Errorf("%s must be >= 0 (got %s)", field, d)
	}
	return px, nil
}

func (p PaddingConfig) resolve(field string, m display.Metrics) (geometry.EdgeInsets, error) {
	var out geometry.EdgeInsets
	sides := []struct {
		name string
		dim  Dimension
		dst  *int
	}{
		{"left", p.Left, &out.Left},
		{"top", p.Top, &out.Top},
		{"right", p.Right, &out.Right},
		{"bottom", p.Bottom, &out.Bottom},
	}
	for _, side := range sides {
		v, err := spacing(field+"."+side.name, side.dim, m)
		if err != nil {
			return geometry.EdgeInsets{}, err
		}
		*side.dst = v
	}
	return out, nil
}

func (c ChildConfig) resolve(m display.Metrics) (*label.Label, error) {
	padding, err := c.Padding.resolve("padding", m)
	if err != nil {
		return nil, err
	}
	width, exactWidth, err := childSize("width", c.Width, m)
	if err != nil {
		return nil, err
	}
	height, exactHeight, err := childSize("height", c.Height, m)
	if err != nil {
		return nil, err
	}
	return &label.Label{
		Text:        c.Label,
		Padding:     padding,
		Width:       width,
		Height:      height,
		ExactWidth:  exactWidth,
		ExactHeight: exactHeight,
		Hidden:      c.Visible != nil && !*c.Visible,
	}, nil
}

// childSize maps a child dimension to label.Label sizing. exact is set for
// any numeric size, so an explicit 0 stays a 0px request instead of
// wrapping the text.
func childSize(field string, d Dimension, m display.Metrics) (px int, exact bool, err error) {
	if !d.IsSet() {
		return 0, false, nil
	}
	switch d.Keyword {
	case "wrap":
		return 0, false, nil
	case "match":
		return flow.MatchParent, false, nil
	}
	if d.Value < 0 {
		return 0, false, fmt.Errorf("%s must be >= 0 (got %s)", field, d)
	}
	return d.Pixels(m), true, nil
}
