package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/nkato/regulab/internal/config"
	"github.com/nkato/regulab/internal/control"
	"github.com/nkato/regulab/internal/loop"
	"github.com/nkato/regulab/internal/metrics"
	"github.com/nkato/regulab/internal/plant"
	"github.com/nkato/regulab/internal/store"
	"github.com/nkato/regulab/internal/tui"
)

var (
	dataDir  string
	dt       float64
	duration float64
	kp       float64
	ki       float64
	kd       float64
	target   float64
	outMin   float64
	outMax   float64
	openLoop float64
	// plant parameters
	temp          float64
	outside       float64
	mass          float64
	conductivity  float64
	loss          float64
	pitchAngle    float64
	pitchRate     float64
	inertia       float64
	naturalMoment float64
	effectiveness float64
	disturbance   float64
	position      float64
	velocity      float64
	// config sources
	configFile string
	preset     string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "regulab",
		Short: "PID control loop laboratory",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".regulab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [plant]",
		Short: "run a closed-loop simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addLoopFlags(runCmd)
	runCmd.Flags().Float64Var(&openLoop, "open-loop", 0, "bypass the PID and drive the plant with this fixed signal")

	liveCmd := &cobra.Command{
		Use:   "live [plant]",
		Short: "run with live chart and keyboard tuning",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addLoopFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [plant]",
		Short: "list presets for a plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for plant: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLoopFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (seconds)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (seconds)")
	cmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain")
	cmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain")
	cmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain")
	cmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "setpoint")
	cmd.Flags().Float64Var(&outMin, "min", 0, "lower output bound")
	cmd.Flags().Float64Var(&outMax, "max", 0, "upper output bound")
	cmd.Flags().Float64Var(&temp, "temp", 15.0, "initial room temperature (thermal)")
	cmd.Flags().Float64Var(&outside, "outside", 5.0, "outside temperature (thermal)")
	cmd.Flags().Float64Var(&mass, "mass", 50.0, "thermal mass (thermal)")
	cmd.Flags().Float64Var(&conductivity, "conductivity", 5.0, "wall conductivity (thermal)")
	cmd.Flags().Float64Var(&loss, "loss", 0, "constant ambient heat loss (thermal)")
	cmd.Flags().Float64Var(&pitchAngle, "pitch", 0, "initial pitch (pitch)")
	cmd.Flags().Float64Var(&pitchRate, "rate", 0, "initial pitch rate (pitch)")
	cmd.Flags().Float64Var(&inertia, "inertia", 0, "moment of inertia (pitch, rotor)")
	cmd.Flags().Float64Var(&naturalMoment, "moment", -5.0, "natural moment (pitch)")
	cmd.Flags().Float64Var(&effectiveness, "effectiveness", 12.0, "stabilizer effectiveness (pitch)")
	cmd.Flags().Float64Var(&disturbance, "disturbance", 0, "disturbance torque (pitch)")
	cmd.Flags().Float64Var(&position, "position", 0, "initial position (rotor)")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "initial velocity (rotor)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and changed flags, flags winning.
func resolveConfig(cmd *cobra.Command, plantName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Plant = plantName

	if preset != "" {
		p := config.GetPreset(plantName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(plantName))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Plant = plantName
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("kp") {
		cfg.Controller.Kp = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.Controller.Ki = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.Controller.Kd = kd
	}
	if cmd.Flags().Changed("target") {
		cfg.Controller.Target = target
	}
	if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
		cfg.Controller.Limit = true
		cfg.Controller.OutMin = math.Inf(-1)
		cfg.Controller.OutMax = math.Inf(1)
		if cmd.Flags().Changed("min") {
			cfg.Controller.OutMin = outMin
		}
		if cmd.Flags().Changed("max") {
			cfg.Controller.OutMax = outMax
		}
	}

	if cmd.Flags().Changed("temp") {
		cfg.Thermal.Temp = temp
	}
	if cmd.Flags().Changed("outside") {
		cfg.Thermal.OutsideTemp = outside
	}
	if cmd.Flags().Changed("mass") {
		cfg.Thermal.ThermalMass = mass
	}
	if cmd.Flags().Changed("conductivity") {
		cfg.Thermal.Conductivity = conductivity
	}
	if cmd.Flags().Changed("loss") {
		cfg.Thermal.AmbientLoss = loss
	}
	if cmd.Flags().Changed("pitch") {
		cfg.Pitch.Pitch = pitchAngle
	}
	if cmd.Flags().Changed("rate") {
		cfg.Pitch.Rate = pitchRate
	}
	if cmd.Flags().Changed("inertia") {
		cfg.Pitch.Inertia = inertia
		cfg.Rotor.Inertia = inertia
	}
	if cmd.Flags().Changed("moment") {
		cfg.Pitch.NaturalMoment = naturalMoment
	}
	if cmd.Flags().Changed("effectiveness") {
		cfg.Pitch.Effectiveness = effectiveness
	}
	if cmd.Flags().Changed("disturbance") {
		cfg.Pitch.Disturbance = disturbance
	}
	if cmd.Flags().Changed("position") {
		cfg.Rotor.Position = position
	}
	if cmd.Flags().Changed("velocity") {
		cfg.Rotor.Velocity = velocity
	}

	return cfg, nil
}

func buildPlant(cfg *config.Config) (loop.Plant, error) {
	switch cfg.Plant {
	case "thermal":
		room := plant.NewThermalRoom()
		room.SetTemp(cfg.Thermal.Temp)
		room.OutsideTemp = cfg.Thermal.OutsideTemp
		room.ThermalMass = cfg.Thermal.ThermalMass
		room.Conductivity = cfg.Thermal.Conductivity
		room.AmbientLoss = cfg.Thermal.AmbientLoss
		return room, nil
	case "pitch":
		craft := plant.NewPitchStabilizer()
		craft.SetAttitude(cfg.Pitch.Pitch, cfg.Pitch.Rate)
		craft.Inertia = cfg.Pitch.Inertia
		craft.NaturalMoment = cfg.Pitch.NaturalMoment
		craft.Effectiveness = cfg.Pitch.Effectiveness
		craft.Disturbance = cfg.Pitch.Disturbance
		return craft, nil
	case "rotor":
		rotor := plant.NewPositioner()
		rotor.SetMotion(cfg.Rotor.Position, cfg.Rotor.Velocity)
		rotor.Inertia = cfg.Rotor.Inertia
		return rotor, nil
	default:
		return nil, fmt.Errorf("unknown plant: %s", cfg.Plant)
	}
}

func buildPID(cfg *config.Config) *control.PID {
	pid := control.NewPID(cfg.Controller.Kp, cfg.Controller.Ki, cfg.Controller.Kd, cfg.Controller.Target)
	if cfg.Controller.Limit {
		pid.SetLimits(cfg.Controller.OutMin, cfg.Controller.OutMax)
	}
	return pid
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	pl, err := buildPlant(cfg)
	if err != nil {
		return err
	}

	var ctrl loop.Controller
	ctrlName := "pid"
	if cmd.Flags().Changed("open-loop") {
		ctrl = control.NewManual(openLoop)
		ctrlName = "manual"
	} else {
		ctrl = buildPID(cfg)
	}

	lp := loop.New(ctrl, pl)
	lp.AddMetric(metrics.NewControlEffort())
	lp.AddMetric(metrics.NewTrackingError())
	lp.AddMetric(metrics.NewOvershoot())

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", cfg.Plant)
	start := time.Now()

	result, err := lp.Run(context.Background(), loop.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(store.RunMetadata{
		Plant:      cfg.Plant,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Controller: ctrlName,
		Kp:         cfg.Controller.Kp,
		Ki:         cfg.Controller.Ki,
		Kd:         cfg.Controller.Kd,
		Target:     cfg.Controller.Target,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.StepsTaken)
	if len(result.Samples) > 0 {
		last := result.Samples[len(result.Samples)-1]
		fmt.Printf("final output: %.4f (target %.4f)\n", last.Output, last.Target)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	pl, err := buildPlant(cfg)
	if err != nil {
		return err
	}

	pid := buildPID(cfg)
	lp := loop.New(pid, pl)

	m := tui.NewModel(lp, pid, cfg.Plant, cfg.Dt, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLANT\tTIME\tDURATION\tDT\tCTRL\tTARGET")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%.2f\n",
			run.ID,
			run.Plant,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Controller,
			run.Target,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("plant: %s\n", meta.Plant)
	fmt.Printf("samples: %d\n\n", len(samples))

	outputs := make([]float64, len(samples))
	controls := make([]float64, len(samples))
	for i, s := range samples {
		outputs[i] = s.Output
		controls[i] = s.Control
	}

	fmt.Println(asciigraph.Plot(outputs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("output vs time (target %.2f)", meta.Target)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(controls,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("control signal vs time"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	return store.WriteJSON(os.Stdout, *meta, samples)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "output", "target", "control"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.Output, 'f', 6, 64),
			strconv.FormatFloat(s.Target, 'f', 6, 64),
			strconv.FormatFloat(s.Control, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
