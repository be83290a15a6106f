package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/flow/cmd/flow/internal/render"
	flowerrors "github.com/go-drift/flow/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Draw a scene's layout to a PNG",
		Long: `Run the measure and place passes over a scene file and draw the
container, its padding, and every placed child with its label to a PNG.

Flags:
  -o, --out FILE   Output path (default: <scene name>.png)
  --scale N        Enlarge the image N times
  --width C        Override the width constraint (exact:N, atmost:N, unbounded)
  --max-lines N    Override the row cap (0 = unlimited)`,
		Usage: "flow render [scene.yaml] [-o out.png] [--scale N]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, rest, err := parseSceneArgs(args, "-o", "--out", "--scale")
	if err != nil {
		return err
	}
	out := ""
	drawOpts := render.DefaultOptions()
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "-o" || arg == "--out":
			if i+1 >= len(rest) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			out = rest[i+1]
			i++
		case strings.HasPrefix(arg, "--out="):
			out = strings.TrimPrefix(arg, "--out=")
		case arg == "--scale":
			if i+1 >= len(rest) {
				return fmt.Errorf("--scale requires a number")
			}
			n, err := strconv.Atoi(rest[i+1])
			if err != nil || n < 1 {
				return fmt.Errorf("--scale must be a positive integer (got %q)", rest[i+1])
			}
			drawOpts.Scale = n
			i++
		default:
			return fmt.Errorf("unknown flag %q\n\nUsage: flow render [scene.yaml] [-o out.png] [--scale N]", arg)
		}
	}

	scene, err := loadScene(opts)
	if err != nil {
		return err
	}
	result := arrange(scene)
	if out == "" {
		out = scene.Name + ".png"
	}

	img, err := render.Draw(result.size, result.host.Padding(), result.placements, drawOpts)
	if err != nil {
		return renderError(err)
	}

	f, err := os.Create(out)
	if err != nil {
		return renderError(err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return renderError(err)
	}
	if err := f.Close(); err != nil {
		return renderError(err)
	}

	fmt.Fprintf(stdout, "wrote %s (%dx%d, %d children)\n", out, img.Bounds().Dx(), img.Bounds().Dy(), len(result.placements))
	return nil
}

func renderError(err error) error {
	return &flowerrors.FlowError{Op: "render.Draw", Kind: flowerrors.KindRender, Err: err}
}
