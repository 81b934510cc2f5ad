package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/r7vme/ripple/internal/analysis"
	"github.com/r7vme/ripple/internal/compute"
	"github.com/r7vme/ripple/internal/config"
	"github.com/r7vme/ripple/internal/drops"
	"github.com/r7vme/ripple/internal/metrics"
	"github.com/r7vme/ripple/internal/render"
	"github.com/r7vme/ripple/internal/storage"
	"github.com/r7vme/ripple/internal/viz"
	"github.com/r7vme/ripple/internal/wave"
)

var (
	dataDir     string
	size        int
	dropCount   int
	steps       int
	eps         float64
	damping     float64
	waveSpeed   float64
	seed        int64
	sampleEvery int
	probeRow    int
	probeCol    int
	framesEvery int
	validate    bool
	backendName string
	// Config file
	configFile string
	// Preset name
	preset string
	// Plot options
	column string
	svgOut string
	// GIF assembly
	gifOut   string
	gifDelay int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ripple",
		Short: "raindrops-on-a-pond wave simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive pond when no command given
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ripple", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the results",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&sampleEvery, "sample-every", 1, "record stats every N steps")
	runCmd.Flags().IntVar(&probeRow, "probe-row", -1, "probe cell row (-1 = center)")
	runCmd.Flags().IntVar(&probeCol, "probe-col", -1, "probe cell col (-1 = center)")
	runCmd.Flags().IntVar(&framesEvery, "frames-every", 0, "write a PNG frame every N steps (0 = off)")
	runCmd.Flags().BoolVar(&validate, "validate", false, "stop on NaN/Inf state")
	runCmd.Flags().StringVar(&backendName, "backend", "cpu", "convolution backend (cpu, serial)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stats series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "probe", "series to plot (peak, mean, std_dev, energy, probe)")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the series as an SVG file")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the probe series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata and stats as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run stats as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "assemble stored frames into an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&gifOut, "out", "", "output path (default <run_id>.gif)")
	renderCmd.Flags().IntVar(&gifDelay, "delay", 4, "per-frame delay in 1/100s")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive pond in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}
	addSimFlags(liveCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping across grid sizes",
		RunE:  benchSizes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s %dx%d, %d drops, %d steps, damping %.2f\n",
					name, p.Size, p.Size, p.Drops, p.Steps, p.Damping)
			}
			return nil
		},
	}

	addSimFlags(rootCmd)
	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCmd, exportCSVCmd, renderCmd, liveCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "pond side length")
	cmd.Flags().IntVar(&dropCount, "drops", config.DefaultDrops, "number of initial raindrops")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	cmd.Flags().Float64Var(&eps, "eps", config.DefaultEps, "time step size")
	cmd.Flags().Float64Var(&damping, "damping", config.DefaultDamping, "velocity damping coefficient")
	cmd.Flags().Float64Var(&waveSpeed, "wave-speed", config.DefaultWaveSpeed, "wave propagation speed")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves the effective configuration: preset first, then config
// file, then explicit CLI flags on top.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("drops") {
		cfg.Drops = dropCount
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("eps") {
		cfg.Eps = eps
	}
	if cmd.Flags().Changed("damping") {
		cfg.Damping = damping
	}
	if cmd.Flags().Changed("wave-speed") {
		cfg.WaveSpeed = waveSpeed
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if f := cmd.Flags().Lookup("sample-every"); f != nil && f.Changed {
		cfg.SampleEvery = sampleEvery
	}
	if f := cmd.Flags().Lookup("probe-row"); f != nil && f.Changed {
		cfg.Probe.Row = probeRow
	}
	if f := cmd.Flags().Lookup("probe-col"); f != nil && f.Changed {
		cfg.Probe.Col = probeCol
	}
	if f := cmd.Flags().Lookup("frames-every"); f != nil && f.Changed {
		cfg.Render.FramesEvery = framesEvery
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	backend, err := compute.ByName(backendName)
	if err != nil {
		return err
	}
	compute.SetBackend(backend)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID := st.NewRunID()

	rng := rand.New(rand.NewSource(cfg.Seed))
	u0 := drops.Random(cfg.Size, cfg.Drops, rng)

	sim, err := wave.New(cfg.Size, u0, drops.StillWater(cfg.Size))
	if err != nil {
		return err
	}

	sim.AddMetric(metrics.NewEnergy(cfg.WaveSpeed))
	sim.AddMetric(metrics.NewPeakAmplitude())
	sim.AddMetric(metrics.NewStability(100.0))

	var frames *render.FrameWriter
	if cfg.Render.FramesEvery > 0 {
		dir, err := st.FramesDir(runID)
		if err != nil {
			return err
		}
		frames, err = render.NewFrameWriter(dir, cfg.Render.Low, cfg.Render.High, cfg.Render.FramesEvery)
		if err != nil {
			return err
		}
		sim.AddObserver(frames)
	}

	probeR, probeC := cfg.ProbeCell()
	runCfg := wave.Config{
		Steps:         cfg.Steps,
		Params:        wave.Params{Eps: cfg.Eps, Damping: cfg.Damping, WaveSpeed: cfg.WaveSpeed},
		SampleEvery:   cfg.SampleEvery,
		ProbeRow:      probeR,
		ProbeCol:      probeC,
		ValidateState: validate,
	}

	fmt.Printf("running %dx%d pond, %d drops, %d steps...\n", cfg.Size, cfg.Size, cfg.Drops, cfg.Steps)
	start := time.Now()

	result, err := sim.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Size:      cfg.Size,
		Drops:     cfg.Drops,
		Steps:     result.StepsTaken,
		Seed:      cfg.Seed,
		Eps:       cfg.Eps,
		Damping:   cfg.Damping,
		WaveSpeed: cfg.WaveSpeed,
	}
	if err := st.Save(runID, meta, result); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if frames != nil {
		fmt.Printf("frames: %d\n", frames.Written())
		if frames.Err() != nil {
			fmt.Printf("frame output stopped: %v\n", frames.Err())
		}
	}
	for _, stepErr := range result.Errors {
		fmt.Printf("warning: %v\n", stepErr)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tDROPS\tSTEPS\tEPS\tDAMPING\tC")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.3f\t%.3f\t%.1f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Drops,
			run.Steps,
			run.Eps,
			run.Damping,
			run.WaveSpeed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	stats, err := st.LoadStats(runID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data, err := statsColumn(stats, column)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(stats))

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs time", column)),
	)
	fmt.Println(graph)

	if svgOut != "" {
		svg := render.SeriesSVG(data, 800, 300, "#4ec9b0")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgOut)
	}

	return nil
}

func statsColumn(stats []wave.Stats, name string) ([]float64, error) {
	data := make([]float64, len(stats))
	for i, s := range stats {
		switch name {
		case "peak":
			data[i] = s.Peak
		case "mean":
			data[i] = s.Mean
		case "std_dev":
			data[i] = s.StdDev
		case "energy":
			data[i] = s.Energy
		case "probe":
			data[i] = s.Probe
		default:
			return nil, fmt.Errorf("unknown column: %s (want peak, mean, std_dev, energy, probe)", name)
		}
	}
	return data, nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	stats, err := st.LoadStats(runID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return fmt.Errorf("no data")
	}

	data := make([]float64, len(stats))
	for i, s := range stats {
		data[i] = s.Probe
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	ps := analysis.PowerSpectrum(data)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (probe)"),
	)
	fmt.Println(graph)
	fmt.Println()

	// Stats rows are eps*sample_every apart, not eps; the recorded times
	// carry the actual spacing.
	dt := wave.SampleInterval(stats)
	if dt <= 0 {
		dt = meta.Eps
	}
	freq := analysis.DominantFrequency(data, dt)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	stats, err := st.LoadStats(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, stats)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	stats, err := st.LoadStats(runID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.ExportCSV(os.Stdout, stats)
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	framesDir := filepath.Join(dataDir, runID, "frames")
	out := gifOut
	if out == "" {
		out = runID + ".gif"
	}

	n, err := render.AssembleGIF(framesDir, out, gifDelay)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d frames)\n", out, n)
	return nil
}

func benchSizes(cmd *cobra.Command, args []string) error {
	backends := []compute.Backend{compute.NewSerialBackend(), compute.NewCPUBackend()}
	sizes := []int{100, 250, 500}
	stepCounts := []int{100, 500}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tSIZE\tSTEPS\tTIME\tSTEPS/SEC")

	for _, b := range backends {
		for _, n := range sizes {
			for _, count := range stepCounts {
				rng := rand.New(rand.NewSource(42))
				sim, err := wave.New(n, drops.Random(n, 40, rng), drops.StillWater(n))
				if err != nil {
					return err
				}
				sim.UseBackend(b)

				runCfg := wave.Config{
					Steps:  count,
					Params: wave.ReferenceParams(),
				}

				start := time.Now()
				result, err := sim.Run(context.Background(), runCfg)
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
				fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\n", b.Name(), n, count, elapsed, stepsPerSec)
			}
		}
	}

	return w.Flush()
}
