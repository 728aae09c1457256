// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"cogentcore.org/richtree/base/errors"
	"cogentcore.org/richtree/base/iox/imagex"
	"cogentcore.org/richtree/math32"
	"cogentcore.org/richtree/render/raster"
)

// renderConfig holds the flags of the render command.
type renderConfig struct {
	Output string
	Width  int
	Height int
	Watch  bool
}

func renderCmd(cfg *Config) *cobra.Command {
	var rc renderConfig
	cmd := &cobra.Command{
		Use:   "render [flags] document",
		Short: "Render a tree document to an image",
		Example: `  richtree render -o tree.png tree.yaml
  richtree render --check -s dark.toml --watch tree.yaml
  richtree render --set src/main.go:1=42 tree.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := args[0]
			if rc.Output == "" {
				rc.Output = strings.TrimSuffix(doc, filepath.Ext(doc)) + ".png"
			}
			if err := renderFile(cfg, &rc, doc); err != nil {
				return err
			}
			if !rc.Watch {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, cfg, &rc, doc)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&rc.Output, "output", "o", "", "output image file (default: the document name with .png)")
	f.IntVar(&rc.Width, "width", 0, "minimum image width")
	f.IntVar(&rc.Height, "height", 0, "minimum image height")
	f.BoolVarP(&rc.Watch, "watch", "w", false, "render again whenever the document or settings change")
	return cmd
}

// renderFile renders the document into the output image.
func renderFile(cfg *Config, rc *renderConfig, doc string) error {
	surf := raster.New(image.Pt(1, 1))
	sc, err := load(cfg, doc, surf)
	if err != nil {
		return err
	}
	img := renderScene(sc, surf, image.Pt(rc.Width, rc.Height))
	if err := imagex.Save(img, rc.Output); err != nil {
		return fmt.Errorf("saving %q: %w", rc.Output, err)
	}
	slog.Info("rendered", "output", rc.Output, "size", img.Bounds().Size())
	return nil
}

// renderScene paints the view onto the surface, resized to be at least
// as large as minSize and as the content.
func renderScene(sc *scene, surf *raster.Surface, minSize image.Point) *image.RGBA {
	size := sc.host.content.ToPointCeil()
	surf.Resize(image.Pt(max(size.X, minSize.X), max(size.Y, minSize.Y)))
	surf.FillBox(math32.B2FromRect(surf.Image.Bounds()), sc.view.Painter().Theme.Background)
	sc.view.Paint(surf)
	return surf.Image
}

// watch renders again on every write to the document or settings,
// until the context is done.
func watch(ctx context.Context, cfg *Config, rc *renderConfig, doc string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	files := []string{doc}
	if cfg.Settings != "" {
		files = append(files, cfg.Settings)
	}
	// editors replace files, so the directories are watched
	dirs := map[string]bool{}
	for _, fn := range files {
		dir := filepath.Dir(fn)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return err
		}
	}
	slog.Warn("watching for changes", "files", files)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !watched(files, ev.Name) {
				continue
			}
			slog.Debug("file changed", "event", ev)
			errors.Log(renderFile(cfg, rc, doc))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func watched(files []string, name string) bool {
	for _, fn := range files {
		if filepath.Clean(fn) == filepath.Clean(name) {
			return true
		}
	}
	return false
}
