package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Measure and place a scene, print the result",
		Long: `Run the measure and place passes over a scene file and print the
measured container size, the row heights, and the bounds of every placed child.

If no scene is given, flow.yaml in the current directory is used.

Flags:
  --width C        Override the width constraint (exact:N, atmost:N, unbounded)
  --max-lines N    Override the row cap (0 = unlimited)
  --plain          Print tab-separated lines without styling`,
		Usage: "flow layout [scene.yaml] [--width C] [--max-lines N] [--plain]",
		Run:   runLayout,
	})
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runLayout(args []string) error {
	opts, rest, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	plain := false
	for _, arg := range rest {
		switch arg {
		case "--plain":
			plain = true
		default:
			return fmt.Errorf("unknown flag %q\n\nUsage: flow layout [scene.yaml] [--width C] [--max-lines N] [--plain]", arg)
		}
	}

	scene, err := loadScene(opts)
	if err != nil {
		return err
	}
	result := arrange(scene)

	if plain {
		_, err = fmt.Fprint(stdout, plainReport(result))
	} else {
		_, err = fmt.Fprintln(stdout, styledReport(result))
	}
	return err
}

func rowHeights(a *arrangement) []string {
	p := a.arranger.Partition()
	heights := make([]string, len(p.Rows))
	for i, row := range p.Rows {
		heights[i] = strconv.Itoa(row.Height)
	}
	return heights
}

func childName(v any, index int) string {
	if s, ok := v.(fmt.Stringer); ok && s.String() != "" {
		return s.String()
	}
	return "#" + strconv.Itoa(index)
}

// plainReport prints one header line, one line of row heights, and one
// tab-separated line per placement.
func plainReport(a *arrangement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "size\t%d\t%d\n", a.size.Width, a.size.Height)
	fmt.Fprintf(&b, "rows\t%s\n", strings.Join(rowHeights(a), ","))
	if a.arranger.Partition().Truncated {
		fmt.Fprintln(&b, "truncated")
	}
	for i, p := range a.placements {
		r := p.Bounds
		fmt.Fprintf(&b, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			childName(p.Child, i), p.Row, p.Column, r.Left, r.Top, r.Right, r.Bottom)
	}
	return b.String()
}

func styledReport(a *arrangement) string {
	var header strings.Builder
	header.WriteString(titleStyle.Render(a.scene.Name))
	header.WriteString("\n")
	fmt.Fprintf(&header, "%s %dx%d  %s %s x %s  %s %s",
		labelStyle.Render("size"), a.size.Width, a.size.Height,
		labelStyle.Render("constraints"), a.scene.Width, a.scene.Height,
		labelStyle.Render("rows"), strings.Join(rowHeights(a), ", "))
	if a.arranger.Partition().Truncated {
		header.WriteString("  " + labelStyle.Render("(truncated)"))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("child", "row", "col", "x", "y", "w", "h").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, p := range a.placements {
		r := p.Bounds
		t.Row(
			childName(p.Child, i),
			strconv.Itoa(p.Row),
			strconv.Itoa(p.Column),
			strconv.Itoa(r.Left),
			strconv.Itoa(r.Top),
			strconv.Itoa(r.Width()),
			strconv.Itoa(r.Height()),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header.String(), t.String())
}
