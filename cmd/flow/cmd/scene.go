package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-drift/flow/cmd/flow/internal/config"
	"github.com/go-drift/flow/pkg/display"
	flowerrors "github.com/go-drift/flow/pkg/errors"
	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/geometry"
	"github.com/go-drift/flow/pkg/label"
)

// sceneOptions are the flags shared by the commands that run a layout.
type sceneOptions struct {
	path     string
	width    string
	maxLines int
	hasMax   bool
}

// parseSceneArgs pulls the scene path and layout overrides out of args and
// returns whatever it did not recognize. valueFlags names the command's own
// flags that take a separate value, so that value is passed through in rest
// instead of being taken for the scene path.
func parseSceneArgs(args []string, valueFlags ...string) (sceneOptions, []string, error) {
	var opts sceneOptions
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case slices.Contains(valueFlags, arg):
			rest = append(rest, arg)
			if i+1 < len(args) {
				rest = append(rest, args[i+1])
				i++
			}
		case arg == "--width":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--width requires a constraint (e.g. exact:360)")
			}
			opts.width = args[i+1]
			i++
		case strings.HasPrefix(arg, "--width="):
			opts.width = strings.TrimPrefix(arg, "--width=")
		case arg == "--max-lines":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--max-lines requires a number")
			}
			if _, err := fmt.Sscan(args[i+1], &opts.maxLines); err != nil {
				return opts, nil, fmt.Errorf("--max-lines: %w", err)
			}
			opts.hasMax = true
			i++
		case !strings.HasPrefix(arg, "-") && opts.path == "":
			opts.path = arg
		default:
			rest = append(rest, arg)
		}
	}
	return opts, rest, nil
}

// arrangement is the outcome of running both layout passes over a scene.
type arrangement struct {
	scene      *config.Resolved
	host       *label.Container
	arranger   *flow.Arranger
	size       geometry.Size
	placements []flow.Placement
}

func loadScene(opts sceneOptions) (*config.Resolved, error) {
	var (
		scene *config.Scene
		err   error
	)
	if opts.path == "" {
		dir, werr := os.Getwd()
		if werr != nil {
			return nil, werr
		}
		scene, err = config.LoadOptional(dir)
	} else {
		scene, err = config.Load(opts.path)
	}
	if err != nil {
		return nil, configError("config.Load", err)
	}

	if opts.width != "" {
		spec, err := config.ParseConstraint(opts.width)
		if err != nil {
			return nil, configError("config.ParseConstraint", err)
		}
		scene.Width = spec
	}
	if opts.hasMax {
		scene.MaxLines = opts.maxLines
	}

	resolved, err := scene.ResolveWith(screenMetrics)
	if err != nil {
		return nil, configError("config.Resolve", err)
	}
	return resolved, nil
}

func arrange(scene *config.Resolved) *arrangement {
	host := &label.Container{Labels: scene.Labels, Pad: scene.Padding}
	arranger := flow.New(scene.Config, display.Static(scene.Screen))
	size := arranger.Measure(scene.Width, scene.Height, host)
	return &arrangement{
		scene:      scene,
		host:       host,
		arranger:   arranger,
		size:       size,
		placements: arranger.Place(),
	}
}

func configError(op string, err error) error {
	return &flowerrors.FlowError{Op: op, Kind: flowerrors.KindConfig, Err: err}
}
