package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/cmplx"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/zplot/internal/catalog"
	"github.com/san-kum/zplot/internal/config"
	"github.com/san-kum/zplot/internal/export"
	"github.com/san-kum/zplot/internal/funcs"
	"github.com/san-kum/zplot/internal/grid"
	"github.com/san-kum/zplot/internal/render"
	"github.com/san-kum/zplot/internal/storage"
	"github.com/san-kum/zplot/internal/viz"
)

var (
	outDir      string
	width       int
	jobs        int
	supersample int
	transparent bool
	configFile  string
	preset      string
	// Animation parameters
	frames       int
	previewWidth int
	previewHeight  int
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "zplot",
		Short: "domain-coloring figure generator for complex functions",
	}

	renderCmd := &cobra.Command{
		Use:   "render [figure...]",
		Short: "render catalog figures to png",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&outDir, "out", config.DefaultOutDir, "output directory")
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	renderCmd.Flags().IntVar(&jobs, "jobs", 0, "worker goroutines (0 = all cpus)")
	renderCmd.Flags().IntVar(&supersample, "supersample", config.DefaultSupersample, "supersampling factor")
	renderCmd.Flags().BoolVar(&transparent, "transparent", true, "keep undefined regions transparent")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list catalog figures",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(viz.ListFigures(catalog.All()))
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview [figure]",
		Short: "plot |f| along the horizontal midline in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fig, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Println(viz.SlicePreview(fig, previewWidth, previewHeight))
			return nil
		},
	}
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "plot width in columns")
	previewCmd.Flags().IntVar(&previewHeight, "height", 15, "plot height in rows")

	animateCmd := &cobra.Command{
		Use:   "animate [az|za|hurwitz]",
		Short: "render a parameter-sweep frame sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnimate,
	}
	animateCmd.Flags().StringVar(&outDir, "out", config.DefaultOutDir, "output directory")
	animateCmd.Flags().IntVar(&width, "width", 200, "frame width in pixels")
	animateCmd.Flags().IntVar(&jobs, "jobs", 0, "worker goroutines (0 = all cpus)")
	animateCmd.Flags().IntVar(&frames, "frames", 501, "number of frames")
	animateCmd.Flags().BoolVar(&transparent, "transparent", true, "keep undefined regions transparent")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list render presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s width %d, supersample %d\n", name, p.Width, p.Supersample)
			}
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive catalog browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(viz.NewBrowser(catalog.All()), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	rootCmd.AddCommand(renderCmd, listCmd, previewCmd, animateCmd, presetsCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration. Precedence, lowest
// to highest: defaults, preset, config file, explicit flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.OutDir = p.OutDir
		cfg.Width = p.Width
		cfg.Supersample = p.Supersample
		cfg.AbsScaling = p.AbsScaling
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("out") {
		cfg.OutDir = outDir
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = jobs
	}
	if cmd.Flags().Changed("supersample") {
		cfg.Supersample = supersample
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	figs := catalog.Build(cfg.CatalogParams())
	names := args
	if len(names) == 0 {
		names = cfg.Figures
	}
	if len(names) > 0 {
		picked := make([]catalog.Figure, 0, len(names))
		for _, name := range names {
			found := false
			for _, f := range figs {
				if f.Name == name {
					picked = append(picked, f)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown figure: %s", name)
			}
		}
		figs = picked
	}

	log.WithFields(logrus.Fields{
		"figures": len(figs),
		"width":   cfg.Width,
		"out":     cfg.OutDir,
	}).Info("rendering")

	records := make([]storage.Record, 0, len(figs))
	for _, fig := range figs {
		start := time.Now()
		img := renderFigure(fig, cfg)
		path, err := export.WritePNG(cfg.OutDir, fig.File, img)
		if err != nil {
			log.WithError(err).Fatal("write failed")
		}
		elapsed := time.Since(start)
		records = append(records, storage.Record{
			Name:      fig.Name,
			File:      fig.File,
			Width:     img.Bounds().Dx(),
			Height:    img.Bounds().Dy(),
			Timestamp: start,
			Duration:  elapsed,
		})
		log.WithFields(logrus.Fields{
			"figure":   fig.Name,
			"path":     path,
			"duration": elapsed.Round(time.Millisecond),
		}).Info("rendered")
	}
	if err := storage.New(cfg.OutDir).Append(records); err != nil {
		log.WithError(err).Fatal("manifest write failed")
	}
	return nil
}

func renderFigure(fig catalog.Figure, cfg *config.Config) image.Image {
	absScaling := fig.AbsScaling
	if absScaling == 0 {
		absScaling = cfg.AbsScaling
	}
	img := render.Render(fig.F, fig.XRange(cfg.Width), fig.YRange(), render.Options{
		AbsScaling:  absScaling,
		Contours:    fig.Contours || cfg.Contours,
		Supersample: cfg.Supersample,
		Workers:     cfg.Jobs,
	})
	if transparent {
		return img
	}
	return flatten(img)
}

// flatten composites the image over a white background.
func flatten(img image.Image) image.Image {
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

// sweep describes one animation: for each parameter value a drawn from
// [from, to], a field over the fixed viewing square.
type sweep struct {
	from, to float64
	half     float64
	field    func(a float64) render.FieldFunc
}

var sweeps = map[string]sweep{
	"az": {
		from: -5, to: 5, half: 5,
		field: func(a float64) render.FieldFunc {
			ca := complex(a, 0)
			return func(zs *grid.Array) *grid.Array {
				return grid.Map(func(z complex128) complex128 {
					return cmplx.Pow(ca, z)
				}, zs)
			}
		},
	},
	"za": {
		from: -5, to: 5, half: 5,
		field: func(a float64) render.FieldFunc {
			ca := complex(a, 0)
			return func(zs *grid.Array) *grid.Array {
				return grid.Map(func(z complex128) complex128 {
					return cmplx.Pow(z, ca)
				}, zs)
			}
		},
	},
	"hurwitz": {
		from: 0.02, to: 2, half: 10,
		field: func(a float64) render.FieldFunc {
			ca := complex(a, 0)
			return func(zs *grid.Array) *grid.Array {
				return funcs.HurwitzZeta(zs, ca)
			}
		},
	},
}

func runAnimate(cmd *cobra.Command, args []string) error {
	sw, ok := sweeps[args[0]]
	if !ok {
		return fmt.Errorf("unknown animation: %s (want az, za or hurwitz)", args[0])
	}
	if frames < 2 {
		return fmt.Errorf("need at least 2 frames, got %d", frames)
	}

	xr := grid.Range{Min: -sw.half, Max: sw.half, N: width}
	yr := grid.Range{Min: -sw.half, Max: sw.half}

	log.WithFields(logrus.Fields{
		"animation": args[0],
		"frames":    frames,
		"out":       outDir,
	}).Info("animating")

	start := time.Now()
	for i := 0; i < frames; i++ {
		a := sw.from + (sw.to-sw.from)*float64(i)/float64(frames-1)
		img := render.Render(sw.field(a), xr, yr, render.Options{
			AbsScaling: config.DefaultAbsScaling,
			Workers:    jobs,
		})
		var out image.Image = img
		if !transparent {
			out = flatten(img)
		}
		if _, err := export.WriteFrame(outDir, i, out); err != nil {
			log.WithError(err).Fatal("write failed")
		}
	}
	log.WithField("duration", time.Since(start).Round(time.Millisecond)).Info("animation done")
	return nil
}
