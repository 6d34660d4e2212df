package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ming751/servokit/internal/config"
	"github.com/ming751/servokit/internal/engine"
	"github.com/ming751/servokit/internal/hostsim"
	"github.com/ming751/servokit/internal/inspect"
	"github.com/ming751/servokit/internal/storage"
	"github.com/ming751/servokit/internal/tui"
)

var (
	dataDir string
	preset  string
	dt      float64
	dur     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "servokit",
		Short: "per-tick telemetry and control dispatch engine",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".servokit", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a scenario and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use a named preset scenario")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "override timestep")
	runCmd.Flags().Float64Var(&dur, "time", 0, "override duration")

	liveCmd := &cobra.Command{
		Use:   "live [scenario.yaml]",
		Short: "run a scenario with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "", "use a named preset scenario")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id] [column]",
		Short: "plot one recorded column",
		Args:  cobra.ExactArgs(2),
		RunE:  plotRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.Default())
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, listCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario(args []string) (*config.Scenario, error) {
	if preset != "" {
		sc := config.GetPreset(preset)
		if sc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets())
		}
		return sc, nil
	}
	if len(args) > 0 {
		return config.Load(args[0])
	}
	return config.Default(), nil
}

// setup builds the world and engine for a scenario, creating one
// control-law instance per joint. A failed instance is reported and
// skipped; the run continues without it.
func setup(sc *config.Scenario) (*hostsim.World, *engine.Engine, []int) {
	world := hostsim.NewWorld(sc)
	eng := engine.New(nil)
	eng.Classify(world.Model)

	handles := make([]int, 0, len(sc.Joints))
	for i := range sc.Joints {
		h, err := eng.CreateInstance(world.Model, i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: instance %d not activated: %v\n", i, err)
			continue
		}
		handles = append(handles, h)
	}
	return world, eng, handles
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	if dt > 0 {
		sc.Dt = dt
	}
	if dur > 0 {
		sc.Duration = dur
	}

	world, eng, handles := setup(sc)

	var ins *inspect.Inspector
	if sc.Inspect != nil {
		w := os.Stdout
		if sc.Inspect.File != "" {
			f, err := os.Create(sc.Inspect.File)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		rate := sc.Inspect.Rate
		if rate <= 0 {
			rate = config.DefaultRate
		}
		ins = inspect.New(w, rate)
	}

	columns := make([]string, 0, 4*len(sc.Joints))
	for _, js := range sc.Joints {
		columns = append(columns,
			js.Name+"_q", js.Name+"_qd", js.Name+"_qref", js.Name+"_tau")
	}
	rec := storage.NewRecording(columns)

	steps := int(sc.Duration / sc.Dt)
	row := make([]float64, len(columns))
	for i := 0; i < steps; i++ {
		world.Step(sc.Dt, eng.Step)

		d := world.Data
		for j := range sc.Joints {
			q, qd := world.Joint(j)
			row[4*j] = q
			row[4*j+1] = qd
			row[4*j+2] = d.Ctrl[3*j]
			row[4*j+3] = d.ChannelForce[3*j+2]
		}
		rec.Append(d.Time, row)

		if ins != nil {
			ins.Emit(world.Model, d, eng.Atlas())
		}
	}

	for _, h := range handles {
		eng.Destroy(h)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc.Name, sc.Dt, sc.Duration, rec)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d  instances: %d/%d\n", steps, len(handles), len(sc.Joints))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	world, eng, handles := setup(sc)
	return tui.Run(sc, world, eng, handles)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rec, err := st.LoadTicks(args[0])
	if err != nil {
		return err
	}

	col := rec.Column(args[1])
	if col == nil {
		return fmt.Errorf("unknown column %q (have %v)", args[1], rec.Columns)
	}
	if len(col) == 0 {
		return fmt.Errorf("run %s is empty", args[0])
	}

	fmt.Println(asciigraph.Plot(col,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(args[1])))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tSTEPS\tDT\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%s\n",
			r.ID, r.Scenario, r.Steps, r.Dt, r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
