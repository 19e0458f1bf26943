package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/plasmalab/internal/atmosphere"
	"github.com/san-kum/plasmalab/internal/config"
	"github.com/san-kum/plasmalab/internal/constants"
	"github.com/san-kum/plasmalab/internal/formulary"
	"github.com/san-kum/plasmalab/internal/storage"
	"github.com/san-kum/plasmalab/internal/units"
	"github.com/san-kum/plasmalab/internal/viz"
)

var (
	dataDir    string
	configFile string
	tempStr    string
	densStr    string
	fieldStr   string
	fromStr    string
	toStr      string
	points     int
)

// main registers the CLI commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "plasmalab",
		Short: "solar plasma beta calculator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".plasmalab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "region set file (yaml)")

	betaCmd := &cobra.Command{
		Use:   "beta",
		Short: "compute plasma beta from explicit quantities",
		RunE:  computeBeta,
	}
	betaCmd.Flags().StringVar(&tempStr, "temp", "1e6 K", "temperature (K or eV)")
	betaCmd.Flags().StringVar(&densStr, "density", "1e9 cm^-3", "number density")
	betaCmd.Flags().StringVar(&fieldStr, "field", "50 G", "magnetic flux density")

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "tabulate beta for the solar atmosphere regions",
		RunE:  tabulateRegions,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [region]",
		Short: "sweep beta across a field range",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepRegion,
	}
	sweepCmd.Flags().StringVar(&fromStr, "from", "1 G", "field range start")
	sweepCmd.Flags().StringVar(&toStr, "to", "1 kG", "field range end")
	sweepCmd.Flags().IntVar(&points, "points", 60, "points in the sweep (log-spaced)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a sweep to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a sweep to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	derivedCmd := &cobra.Command{
		Use:   "derived [region]",
		Short: "derived plasma parameters for a region",
		Args:  cobra.ExactArgs(1),
		RunE:  derivedParams,
	}

	liveCmd := &cobra.Command{
		Use:   "live [region]",
		Short: "interactive beta explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the canonical regions as a starting region set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.Default())
		},
	}

	rootCmd.AddCommand(betaCmd, regionsCmd, sweepCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, derivedCmd, liveCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRegions returns the active region set: the --config file when given,
// the canonical atmosphere otherwise.
func loadRegions() ([]atmosphere.Region, error) {
	if configFile == "" {
		return atmosphere.All(), nil
	}
	f, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return f.Resolve()
}

func findRegion(name string) (*atmosphere.Region, error) {
	regions, err := loadRegions()
	if err != nil {
		return nil, err
	}
	for i := range regions {
		if regions[i].Name == name {
			return &regions[i], nil
		}
	}
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	return nil, fmt.Errorf("unknown region: %s (available: %v)", name, names)
}

func computeBeta(cmd *cobra.Command, args []string) error {
	T, err := units.Parse(tempStr)
	if err != nil {
		return err
	}
	n, err := units.Parse(densStr)
	if err != nil {
		return err
	}
	B, err := units.Parse(fieldStr)
	if err != nil {
		return err
	}

	beta, err := formulary.Beta(T, n, B)
	if err != nil {
		return err
	}
	tp, err := formulary.ThermalPressure(T, n)
	if err != nil {
		return err
	}
	mp, err := formulary.MagneticPressure(B)
	if err != nil {
		return err
	}

	fmt.Printf("beta: %.6e\n", beta)
	fmt.Printf("thermal pressure: %.6e Pa\n", tp.SI())
	fmt.Printf("magnetic pressure: %.6e Pa\n", mp.SI())
	fmt.Printf("regime: %s\n", formulary.Regime(beta))
	return nil
}

func tabulateRegions(cmd *cobra.Command, args []string) error {
	regions, err := loadRegions()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tT (K)\tN (CM^-3)\tB (G)\tBETA\tREGIME\tREF")

	for _, r := range regions {
		beta, err := formulary.Beta(r.Temperature, r.Density, r.Field)
		if err != nil {
			return fmt.Errorf("region %s: %w", r.Name, err)
		}
		tk, _ := r.Temperature.In("K")
		nc, _ := r.Density.In("cm^-3")
		bg, _ := r.Field.In("G")
		fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%.3g\t%.3e\t%s\t%s\n",
			r.Name, tk, nc, bg, beta, formulary.Regime(beta), r.Reference)
	}

	return w.Flush()
}

func sweepRegion(cmd *cobra.Command, args []string) error {
	region, err := findRegion(args[0])
	if err != nil {
		return err
	}

	from, err := units.Parse(fromStr)
	if err != nil {
		return err
	}
	to, err := units.Parse(toStr)
	if err != nil {
		return err
	}
	fields, err := units.Logspace(from, to, points)
	if err != nil {
		return err
	}

	betas, err := formulary.BetaRange(region.Temperature, region.Density, fields)
	if err != nil {
		return err
	}

	logBetas := make([]float64, len(betas))
	for i, b := range betas {
		logBetas[i] = math.Log10(b)
	}

	fmt.Printf("sweep: %s, %s to %s, %d points\n\n", region.Name, fromStr, toStr, points)
	graph := asciigraph.Plot(logBetas,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("log10(beta) vs field (log-spaced)"),
	)
	fmt.Println(graph)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(region.Name, region.Temperature, region.Density, fields, betas)
	if err != nil {
		return err
	}

	fmt.Printf("\nrun id: %s\n", runID)
	fmt.Printf("beta range: %.3e to %.3e\n", betas[len(betas)-1], betas[0])
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
	fmt.Fprintln(w, "ID\tREGION\tTIME\tT (K)\tFIELD (G)\tPOINTS\tBETA RANGE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3g\t%.3g-%.3g\t%d\t%.2e-%.2e\n",
			run.ID,
			run.Region,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TemperatureK,
			run.FieldFromG,
			run.FieldToG,
			run.Points,
			run.BetaMin,
			run.BetaMax,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, betas, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(betas) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("region: %s\n", meta.Region)
	fmt.Printf("samples: %d\n\n", len(betas))

	logBetas := make([]float64, len(betas))
	for i, b := range betas {
		logBetas[i] = math.Log10(b)
	}

	graph := asciigraph.Plot(logBetas,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("log10(beta) vs field (log-spaced)"),
	)
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	fields, betas, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(betas) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"field_gauss", "beta"}); err != nil {
		return err
	}
	for i := range fields {
		row := []string{
			strconv.FormatFloat(fields[i], 'e', 6, 64),
			strconv.FormatFloat(betas[i], 'e', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fields, betas, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, fields, betas)
}

func derivedParams(cmd *cobra.Command, args []string) error {
	region, err := findRegion(args[0])
	if err != nil {
		return err
	}

	T, n, B := region.Temperature, region.Density, region.Field

	beta, err := formulary.Beta(T, n, B)
	if err != nil {
		return err
	}
	va, err := formulary.AlfvenSpeed(B, n)
	if err != nil {
		return err
	}
	vthE, err := formulary.ThermalSpeed(T, constants.ElectronMass)
	if err != nil {
		return err
	}
	vthP, err := formulary.ThermalSpeed(T, constants.ProtonMass)
	if err != nil {
		return err
	}
	ld, err := formulary.DebyeLength(T, n)
	if err != nil {
		return err
	}
	wpe, err := formulary.PlasmaFrequency(n, constants.ElectronMass)
	if err != nil {
		return err
	}
	wce, err := formulary.Gyrofrequency(B, constants.ElectronMass)
	if err != nil {
		return err
	}
	wcp, err := formulary.Gyrofrequency(B, constants.ProtonMass)
	if err != nil {
		return err
	}
	rcp, err := formulary.Gyroradius(B, T, constants.ProtonMass)
	if err != nil {
		return err
	}

	vaKms, _ := va.In("km/s")
	vthEKms, _ := vthE.In("km/s")
	vthPKms, _ := vthP.In("km/s")
	ldM, _ := ld.In("m")
	rcpM, _ := rcp.In("m")

	fmt.Printf("derived parameters: %s (%s)\n\n", region.Name, region.Description)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "beta\t%.3e\t(%s)\n", beta, formulary.Regime(beta))
	fmt.Fprintf(w, "alfven speed\t%.3e km/s\n", vaKms)
	fmt.Fprintf(w, "thermal speed (e)\t%.3e km/s\n", vthEKms)
	fmt.Fprintf(w, "thermal speed (p)\t%.3e km/s\n", vthPKms)
	fmt.Fprintf(w, "debye length\t%.3e m\n", ldM)
	fmt.Fprintf(w, "plasma freq (e)\t%.3e rad/s\n", wpe.SI())
	fmt.Fprintf(w, "gyrofreq (e)\t%.3e rad/s\n", wce.SI())
	fmt.Fprintf(w, "gyrofreq (p)\t%.3e rad/s\n", wcp.SI())
	fmt.Fprintf(w, "gyroradius (p)\t%.3e m\n", rcpM)
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	regions, err := loadRegions()
	if err != nil {
		return err
	}
	if len(regions) == 0 {
		return fmt.Errorf("no regions defined")
	}

	start := 0
	if len(args) == 1 {
		found := false
		for i := range regions {
			if regions[i].Name == args[0] {
				start = i
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown region: %s", args[0])
		}
	}

	m := viz.New(regions, start)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
