package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/flow/pkg/display"
)

// ScreenEnv names the variable that describes the screen for scenes without
// a screen section, as WIDTHxHEIGHT or WIDTHxHEIGHT@DENSITY.
const ScreenEnv = "FLOW_SCREEN"

var defaultScreen = display.Metrics{Width: 1080, Height: 1920, Density: 1}

// screenMetrics is read once per process; tests Reset it after changing
// the environment.
var screenMetrics = display.NewCached(func() display.Metrics {
	if m, ok := parseScreen(os.Getenv(ScreenEnv)); ok {
		return m
	}
	return defaultScreen
})

func parseScreen(s string) (display.Metrics, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return display.Metrics{}, false
	}
	size, density, hasDensity := strings.Cut(s, "@")
	w, h, ok := strings.Cut(size, "x")
	if !ok {
		return display.Metrics{}, false
	}
	width, err := strconv.Atoi(w)
	if err != nil || width < 0 {
		return display.Metrics{}, false
	}
	height, err := strconv.Atoi(h)
	if err != nil || height < 0 {
		return display.Metrics{}, false
	}
	m := display.Metrics{Width: width, Height: height, Density: 1}
	if hasDensity {
		d, err := strconv.ParseFloat(density, 64)
		if err != nil || d <= 0 {
			return display.Metrics{}, false
		}
		m.Density = d
	}
	return m, true
}
