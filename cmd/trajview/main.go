package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/trajview/trajview/internal/camera"
	"github.com/trajview/trajview/internal/config"
	"github.com/trajview/trajview/internal/export"
	"github.com/trajview/trajview/internal/gui"
	"github.com/trajview/trajview/internal/traj"
	"github.com/trajview/trajview/internal/viz"
)

var (
	configFile string
	preset     string
	// gen parameters
	model     string
	particles int
	frames    int
	dt        float64
	seed      int64
	// play parameters
	frameRate int
	themeName string
	// export parameters
	frameIdx int
	outFile  string
	svgWidth int
)

// main registers commands and flags and launches the windowed viewer
// when no subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "trajview [dir]",
		Short: "interactive particle trajectory viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	genCmd := &cobra.Command{
		Use:   "gen [dir]",
		Short: "generate a synthetic trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runGen,
	}
	genCmd.Flags().StringVar(&model, "model", "orbits", "generator (orbits, brownian)")
	genCmd.Flags().IntVar(&particles, "particles", 200, "number of particles")
	genCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	genCmd.Flags().Float64Var(&dt, "dt", 0.05, "timestep between frames")
	genCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	playCmd := &cobra.Command{
		Use:   "play [dir]",
		Short: "play a trajectory in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	playCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	infoCmd := &cobra.Command{
		Use:   "info [dir]",
		Short: "print trajectory metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	exportCmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "render a frame to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().IntVar(&frameIdx, "frame", 0, "frame index")
	exportCmd.Flags().StringVar(&outFile, "out", "frame.svg", "output file")
	exportCmd.Flags().IntVar(&svgWidth, "width", 1280, "image width in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.PresetNames()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(genCmd, playCmd, infoCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: preset, then config file,
// then built-in defaults.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.Preset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.PresetNames())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Restore last-run geometry and playback cap unless the user picked
	// an explicit config or preset.
	sess := config.OpenSessionStore().Load()
	if configFile == "" && preset == "" {
		sess.ApplyTo(cfg)
	}

	var dir string
	if len(args) > 0 {
		dir = args[0]
	} else if sess != nil && sess.LastTrajectory != "" {
		dir = sess.LastTrajectory
	} else {
		dir, err = gui.OpenTrajectoryDialog()
		if err != nil {
			return err
		}
		if dir == "" {
			return fmt.Errorf("no trajectory given")
		}
	}

	return gui.Run(dir, cfg)
}

func runGen(cmd *cobra.Command, args []string) error {
	var t *traj.Trajectory
	var err error
	switch model {
	case "orbits":
		t, err = traj.Orbits(particles, frames, dt, seed)
	case "brownian":
		t, err = traj.Brownian(particles, frames, dt, seed)
	default:
		return fmt.Errorf("unknown model: %s (available: orbits, brownian)", model)
	}
	if err != nil {
		return err
	}

	if err := traj.Save(args[0], t); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames x %d particles to %s\n", t.Meta.Frames, t.Meta.Particles, args[0])
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	t, err := traj.Load(args[0])
	if err != nil {
		return err
	}
	return viz.Run(t, frameRate, themeName)
}

func runInfo(cmd *cobra.Command, args []string) error {
	t, err := traj.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", t.Meta.Name)
	fmt.Fprintf(w, "frames\t%d\n", t.Meta.Frames)
	fmt.Fprintf(w, "particles\t%d\n", t.Meta.Particles)
	fmt.Fprintf(w, "dt\t%.4fs\n", t.Meta.Dt)
	fmt.Fprintf(w, "duration\t%.2fs\n", t.Meta.Dt*float64(t.Meta.Frames))
	if t.Meta.Generator != "" {
		fmt.Fprintf(w, "generator\t%s\n", t.Meta.Generator)
	}
	if !t.Meta.Created.IsZero() {
		fmt.Fprintf(w, "created\t%s\n", t.Meta.Created.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	t, err := traj.Load(args[0])
	if err != nil {
		return err
	}

	f, err := t.Frame(frameIdx)
	if err != nil {
		return err
	}

	opts := export.DefaultSVGOptions()
	opts.Width = svgWidth
	opts.Height = svgWidth * 9 / 16

	cam := camera.New()
	cam.Resize(opts.Width, opts.Height)
	cam.FitBounds(f.Positions)

	if err := export.WriteFrameSVG(outFile, f, cam, opts); err != nil {
		return err
	}
	fmt.Printf("wrote frame %d to %s\n", frameIdx, outFile)
	return nil
}
