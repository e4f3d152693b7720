package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/gstyle"
	"github.com/gogpu/gstyle/styledoc"
)

const (
	defaultWidth  = 200
	defaultHeight = 100
)

type renderOptions struct {
	DocPath string
	Output  string
	Width   int
	Height  int
	Scale   float64
	Watch   bool
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a style document to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DocPath = args[0]
			if opts.Watch {
				return watchRender(cmd.Context(), opts)
			}
			return runRender(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "style.png", "Output PNG file")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Component width (overrides the document)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "Component height (overrides the document)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "HiDPI scale (overrides the document)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-render whenever the document changes")

	return cmd
}

// runRender loads the document and writes the rendered component.
func runRender(opts renderOptions) error {
	doc, err := styledoc.Load(opts.DocPath)
	if err != nil {
		return err
	}
	pm, err := renderDocument(doc, opts)
	if err != nil {
		return err
	}
	if err := pm.SavePNG(opts.Output); err != nil {
		return fmt.Errorf("save %s: %w", opts.Output, err)
	}
	gstyle.Logger().Info("rendered", "document", opts.DocPath, "output", opts.Output,
		"width", pm.Width(), "height", pm.Height())
	return nil
}

// renderDocument paints every layer of the document's style in widget
// order onto a fresh pixmap.
func renderDocument(doc *styledoc.Document, opts renderOptions) (*gg.Pixmap, error) {
	b := componentBounds(doc, opts)
	scale := doc.Scale
	if opts.Scale > 0 {
		scale = opts.Scale
	}
	style, err := doc.Style()
	if err != nil {
		return nil, err
	}

	engine := gstyle.NewEngine(gstyle.WithScale(scale), gstyle.WithPools(gstyle.NewPools(8)))
	defer engine.Close()
	comp := newOffscreen(b.Width, b.Height)
	if _, err := engine.InstallStyle(comp, style); err != nil {
		return nil, err
	}

	pm := gg.NewPixmap(b.Width, b.Height)
	if comp.opaque && comp.hasBackground {
		pm.Clear(comp.background)
	}
	c := gstyle.NewCanvas(pm)
	engine.RenderBackground(c)
	engine.RenderBorderAndContent(c)
	engine.RenderForeground(c)
	engine.RenderAnimationOverlays(c)
	return pm, nil
}

func componentBounds(doc *styledoc.Document, opts renderOptions) gstyle.Bounds {
	b := doc.Bounds(gstyle.Size(defaultWidth, defaultHeight))
	if opts.Width > 0 {
		b.Width = opts.Width
	}
	if opts.Height > 0 {
		b.Height = opts.Height
	}
	return b
}

// watchRender renders once and again on every write to the document until
// ctx is done. Render errors while watching are logged, not returned.
func watchRender(ctx context.Context, opts renderOptions) error {
	if err := runRender(opts); err != nil {
		gstyle.Logger().Error("render failed", "err", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files, so watch the directory.
	if err := watcher.Add(filepath.Dir(opts.DocPath)); err != nil {
		return fmt.Errorf("watch %s: %w", opts.DocPath, err)
	}
	target := filepath.Clean(opts.DocPath)
	gstyle.Logger().Info("watching", "document", target)

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := runRender(opts); err != nil {
				gstyle.Logger().Error("render failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			gstyle.Logger().Warn("watch error", "err", err)
		}
	}
}
