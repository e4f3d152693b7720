package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/gstyle"
	"github.com/gogpu/gstyle/styledoc"
)

type inspectOptions struct {
	DocPath string
	Width   int
	Height  int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("245"))
	yesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	noStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func newInspectCmd() *cobra.Command {
	opts := inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <document>",
		Short: "Show the regions and layer cache decisions of a style document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DocPath = args[0]
			return runInspect(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Width, "width", 0, "Component width (overrides the document)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "Component height (overrides the document)")

	return cmd
}

func runInspect(w io.Writer, opts inspectOptions) error {
	doc, err := styledoc.Load(opts.DocPath)
	if err != nil {
		return err
	}
	style, err := doc.Style()
	if err != nil {
		return err
	}
	b := componentBounds(doc, renderOptions{Width: opts.Width, Height: opts.Height})

	engine := gstyle.NewEngine(gstyle.WithPools(gstyle.NewPools(1)))
	if _, err := engine.InstallStyle(newOffscreen(b.Width, b.Height), style); err != nil {
		return err
	}
	fmt.Fprintln(w, boxStyle.Render(inspectReport(engine)))
	return nil
}

// inspectReport lists the area bounds and the per-layer cache decisions.
func inspectReport(e *gstyle.Engine) string {
	var sb strings.Builder
	b := e.Bounds()
	sb.WriteString(titleStyle.Render(fmt.Sprintf("component %dx%d", b.Width, b.Height)))
	sb.WriteString("\n\n")

	structure := e.RenderState(gstyle.LayerBackground).Structure()
	for _, a := range []gstyle.Area{gstyle.AreaAll, gstyle.AreaBody, gstyle.AreaInterior, gstyle.AreaBorder, gstyle.AreaExterior} {
		r := e.Areas().Get(a, structure)
		bounds := "empty"
		if !r.IsEmpty() {
			bounds = r.Bounds().String()
		}
		sb.WriteString(labelStyle.Render(a.String()) + bounds + "\n")
	}
	sb.WriteString("\n")

	for _, l := range gstyle.Layers {
		state := e.RenderState(l)
		decision := noStyle.Render("direct")
		if state.IsCacheable() {
			decision = yesStyle.Render("cached")
		}
		fmt.Fprintf(&sb, "%s%s heavy=%d\n", labelStyle.Render(l.String()), decision, state.HeavyCount())
	}
	return strings.TrimRight(sb.String(), "\n")
}
