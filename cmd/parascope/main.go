package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/evan-ms/parascope/internal/config"
	"github.com/evan-ms/parascope/internal/export"
	"github.com/evan-ms/parascope/internal/gui"
	"github.com/evan-ms/parascope/internal/preset"
	"github.com/evan-ms/parascope/internal/projection"
	"github.com/evan-ms/parascope/internal/scene"
	"github.com/evan-ms/parascope/internal/session"
	"github.com/evan-ms/parascope/internal/viz"
)

var (
	dataDir    string
	configFile string
	// snapshot options
	outFile    string
	presetName string
	width      int
	height     int
	rotX       float64
	rotY       float64
	paramSets  []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parascope",
		Short: "interactive parametric 3d scene viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sess, reg, err := buildSession("")
			if err != nil {
				return err
			}
			return viz.Run(sess, cfg.FPS(), reg.Count())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "preset directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	guiCmd := &cobra.Command{
		Use:   "gui [scene]",
		Short: "open the windowed viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := ""
			if len(args) == 1 {
				slug = args[0]
			}
			cfg, sess, reg, err := buildSession(slug)
			if err != nil {
				return err
			}
			return gui.Run(sess, cfg.Width, cfg.Height, cfg.FPS(), reg.Count())
		},
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list available scenes",
		RunE:  listScenes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list built-in and saved presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}
	presetsCmd.AddCommand(
		&cobra.Command{
			Use:   "rename [id] [name]",
			Short: "rename a saved preset",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				return store.Rename(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "tag [id] [tag...]",
			Short: "replace the tags on a saved preset",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				return store.Tag(args[0], args[1:])
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "delete a saved preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				return store.Delete(args[0])
			},
		},
	)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [scene]",
		Short: "render one frame of a scene to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <scene>.svg)")
	snapshotCmd.Flags().StringVar(&presetName, "preset", "", "apply a built-in preset before rendering")
	snapshotCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "viewport width")
	snapshotCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "viewport height")
	snapshotCmd.Flags().Float64Var(&rotX, "rx", 0.5, "view rotation about x (radians)")
	snapshotCmd.Flags().Float64Var(&rotY, "ry", 0.7, "view rotation about y (radians)")
	snapshotCmd.Flags().StringArrayVar(&paramSets, "set", nil, "override a parameter, name=value (repeatable)")

	rootCmd.AddCommand(guiCmd, scenesCmd, presetsCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	path := filepath.Join(home, ".parascope", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

func buildSession(slug string) (*config.Config, *session.Session, *scene.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	reg, err := scene.NewRegistry(scene.Catalog())
	if err != nil {
		return nil, nil, nil, err
	}

	initial := cfg.InitialScene
	if slug != "" {
		idx, err := sceneIndex(reg, slug)
		if err != nil {
			return nil, nil, nil, err
		}
		initial = idx
	}

	dir := dataDir
	if dir == "" {
		dir = cfg.PresetDir
	}
	store := preset.New(dir)
	if err := store.Init(); err != nil {
		return nil, nil, nil, err
	}

	sess, err := session.New(reg, store, initial)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, sess, reg, nil
}

func openStore() (*preset.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dir := dataDir
	if dir == "" {
		dir = cfg.PresetDir
	}
	return preset.New(dir), nil
}

func sceneIndex(reg *scene.Registry, slug string) (int, error) {
	for i, s := range reg.Slugs() {
		if s == slug {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown scene %q (run 'parascope scenes')", slug)
}

func listScenes(cmd *cobra.Command, args []string) error {
	reg, err := scene.NewRegistry(scene.Catalog())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tPARAMS\tSTYLE\tANIMATED")
	for i := 0; i < reg.Count(); i++ {
		d, err := reg.At(i)
		if err != nil {
			return err
		}
		style := "line"
		if d.Style == scene.StylePoints {
			style = "points"
		}
		anim := ""
		if d.Animated {
			anim = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", d.Slug, d.Name, len(d.Params), style, anim)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	reg, err := scene.NewRegistry(scene.Catalog())
	if err != nil {
		return err
	}
	slugs := reg.Slugs()
	if len(args) == 1 {
		if _, err := sceneIndex(reg, args[0]); err != nil {
			return err
		}
		slugs = args[0:1]
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tPRESET\tKIND\tSAVED")
	for _, slug := range slugs {
		for _, name := range config.ListPresets(slug) {
			fmt.Fprintf(w, "%s\t%s\tbuilt-in\t\n", slug, name)
		}
		recs, err := store.List(slug)
		if err != nil {
			return err
		}
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%s\tsaved\t%s\n", slug, r.Name, r.Timestamp.Format("2006-01-02 15:04"))
		}
	}
	return w.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	reg, err := scene.NewRegistry(scene.Catalog())
	if err != nil {
		return err
	}
	idx, err := sceneIndex(reg, args[0])
	if err != nil {
		return err
	}
	d, err := reg.At(idx)
	if err != nil {
		return err
	}

	if presetName != "" {
		values := config.GetPreset(d.Slug, presetName)
		if values == nil {
			return fmt.Errorf("no built-in preset %q for scene %q", presetName, d.Slug)
		}
		for name, v := range values {
			if p := d.Param(name); p != nil {
				p.Set(v)
			}
		}
	}
	for _, kv := range paramSets {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("bad --set %q, want name=value", kv)
		}
		p := d.Param(name)
		if p == nil {
			return fmt.Errorf("scene %q has no parameter %q", d.Slug, name)
		}
		var f float64
		if _, err := fmt.Sscanf(val, "%g", &f); err != nil {
			return fmt.Errorf("bad --set value %q: %w", val, err)
		}
		p.Set(f)
	}

	cam := projection.NewCamera()
	cam.AutoRotate = false
	cam.Rotate(rotX, rotY, 0)

	points := d.Generate(d.ParamMap(), 0)
	screen := projection.Project(points, cam, projection.Viewport{Width: width, Height: height})

	var svg string
	if d.Style == scene.StyleLine {
		svg = export.PathSVG(screen, width, height, "#d2d2dc")
	} else {
		// Raster the cloud through the braille canvas, same pipeline
		// as the terminal viewer.
		canvas := viz.NewCanvas(width/10, height/20)
		pw, ph := canvas.PixelSize()
		scaled := projection.Project(points, cam, projection.Viewport{Width: pw, Height: ph})
		for _, p := range scaled {
			canvas.Set(int(p.X), int(p.Y))
		}
		svg = export.CanvasToSVG(canvas, float64(width)/float64(pw))
	}
	if svg == "" {
		return fmt.Errorf("scene %q produced no drawable points", d.Slug)
	}

	out := outFile
	if out == "" {
		out = d.Slug + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d points)\n", out, len(screen))
	return nil
}
