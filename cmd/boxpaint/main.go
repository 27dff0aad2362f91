package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"boxpaint/pkg/canvas"
	"boxpaint/pkg/config"
	"boxpaint/pkg/html"
	"boxpaint/pkg/observability"
	"boxpaint/pkg/surface"
	"boxpaint/pkg/text"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by subcommands once the root has loaded
// configuration.
type app struct {
	cfgFile string
	width   int
	height  int
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "boxpaint",
		Short:         "Render box-model element trees to PNG images.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			if a.width > 0 {
				cfg.Surface.Width = a.width
			}
			if a.height > 0 {
				cfg.Surface.Height = a.height
			}
			a.cfg = cfg
			a.logger = observability.New(cfg.Logger, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./boxpaint.yaml)")
	root.PersistentFlags().IntVar(&a.width, "width", 0, "surface width when the document does not set one")
	root.PersistentFlags().IntVar(&a.height, "height", 0, "surface height when the document does not set one")
	root.SetVersionTemplate(`{{printf "boxpaint version %s\n" .Version}}`)

	root.AddCommand(newRenderCmd(a), newDumpCmd(a), newVersionCmd())
	return root
}

// mount parses the HTML file at path and mounts it on a raster surface, or on
// the surface built by newSurface when it is non-nil. The body's size wins
// over the configured one.
func (a *app) mount(path string, newSurface func(w, h int) surface.Surface) (*canvas.Canvas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	res, err := html.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	w, h := a.size(res)
	opts := []canvas.Option{canvas.WithLogger(a.logger), canvas.WithFontConfig(text.NewFontConfig(a.cfg.Font.Path))}
	if newSurface != nil {
		opts = append(opts, canvas.WithSurface(newSurface(w, h)))
	}
	return canvas.Mount(res.Root, w, h, opts...)
}

func (a *app) size(res *html.Result) (int, int) {
	w, h := a.cfg.SurfaceSize()
	if res.Width > 0 {
		w = res.Width
		h = w * 9 / 16
	}
	if res.Height > 0 {
		h = res.Height
	}
	return w, h
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "boxpaint version %s\n", Version)
		},
	}
}
