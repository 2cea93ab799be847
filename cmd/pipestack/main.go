// PipeStack - Pipe Transport Loading Optimizer
//
// Reads a pipe order from a CSV or Excel file, nests compatible pipes
// into Matryoshka bundles, distributes the bundles over trucks, and
// emits the loading plan as text, PDF, DXF, JSON, or QR bundle labels.
//
// Build:
//   go build -o pipestack ./cmd/pipestack
//
// Typical usage:
//   pipestack -order order.csv -length 13 -pdf plan.pdf -labels labels.pdf
//   pipestack -order order.xlsx -truck "Mega Trailer Romania" -compare

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PipeStack/internal/engine"
	"github.com/piwi3910/PipeStack/internal/export"
	"github.com/piwi3910/PipeStack/internal/importer"
	"github.com/piwi3910/PipeStack/internal/model"
	"github.com/piwi3910/PipeStack/internal/project"
)

func main() {
	var (
		orderPath   = flag.String("order", "", "order file (.csv or .xlsx)")
		orderNumber = flag.String("number", "", "order number for the plan header")
		lengthM     = flag.Float64("length", 0, "pipe length in meters (default from config)")
		truckName   = flag.String("truck", "", "truck preset name (default from config)")
		listTrucks  = flag.Bool("list-trucks", false, "list truck presets and exit")
		listCatalog = flag.Bool("list-catalog", false, "list the pipe catalog and exit")
		catalogPath = flag.String("catalog", "", "pipe catalog JSON (default ~/.pipestack/catalog.json)")
		noNesting   = flag.Bool("no-nesting", false, "ship every pipe loose")
		maxDepth    = flag.Int("max-depth", 0, "maximum pipes per nested bundle (default from config)")
		sameSDROnly = flag.Bool("same-sdr-only", false, "only nest pipes of the same SDR class")
		compare     = flag.Bool("compare", false, "compare loading strategies side by side")
		pdfPath     = flag.String("pdf", "", "write the loading plan PDF to this path")
		labelsPath  = flag.String("labels", "", "write QR bundle labels PDF to this path")
		dxfPath     = flag.String("dxf", "", "write the cross-section DXF to this path")
		jsonPath    = flag.String("json", "", "write the plan as JSON to this path")
	)
	flag.Parse()

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fatalf("cannot load config: %v", err)
	}

	if *catalogPath == "" {
		if config.CatalogPath != "" {
			*catalogPath = config.CatalogPath
		} else {
			*catalogPath = project.DefaultCatalogPath()
		}
	}
	catalog, err := project.LoadCatalog(*catalogPath)
	if err != nil {
		fatalf("cannot load catalog: %v", err)
	}

	if *listTrucks {
		printTrucks()
		return
	}
	if *listCatalog {
		printCatalog(catalog)
		return
	}
	if *orderPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)
	if *noNesting {
		settings.EnableNesting = false
	}
	if *maxDepth > 0 {
		settings.MaxNestingLevels = *maxDepth
	}
	if *sameSDROnly {
		settings.AllowMixedSDR = false
	}

	if *lengthM == 0 {
		*lengthM = config.DefaultPipeLengthM
	}
	if *truckName == "" {
		*truckName = config.DefaultTruck
	}
	truck, ok := model.FindTruck(*truckName)
	if !ok {
		fatalf("unknown truck preset %q, use -list-trucks to see the options", *truckName)
	}

	order, err := loadOrder(*orderPath, *orderNumber, *lengthM, catalog)
	if err != nil {
		fatalf("%v", err)
	}

	if *compare {
		runCompare(order, truck, settings)
		return
	}

	opt := engine.New(settings)
	plan, err := opt.Optimize(order, truck)
	if err != nil {
		fatalf("optimization failed: %v", err)
	}

	printPlan(plan)

	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, plan); err != nil {
			fatalf("PDF export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *pdfPath)
	}
	if *labelsPath != "" {
		if err := export.ExportLabels(*labelsPath, plan, settings.ExtractionThresholdKG); err != nil {
			fatalf("label export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *labelsPath)
	}
	if *dxfPath != "" {
		if err := export.ExportDXF(*dxfPath, plan); err != nil {
			fatalf("DXF export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *dxfPath)
	}
	if *jsonPath != "" {
		if err := project.SaveJSON(*jsonPath, plan); err != nil {
			fatalf("JSON export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *jsonPath)
	}

	config.AddRecentOrder(*orderPath)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot save config: %v\n", err)
	}

	if len(plan.Infeasible) > 0 {
		os.Exit(1)
	}
}

// loadOrder imports an order file and wraps the lines into an Order.
func loadOrder(path, number string, lengthM float64, catalog []model.PipeType) (model.Order, error) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result = importer.ImportCSV(path, catalog)
	case ".xlsx", ".xls":
		result = importer.ImportExcel(path, catalog)
	default:
		return model.Order{}, fmt.Errorf("unsupported order file type %q", filepath.Ext(path))
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		return model.Order{}, fmt.Errorf("order import failed:\n  %s", strings.Join(result.Errors, "\n  "))
	}
	if len(result.Lines) == 0 {
		return model.Order{}, fmt.Errorf("order file %s contains no usable lines", path)
	}

	if number == "" {
		number = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	order := model.NewOrder(number, lengthM)
	order.Lines = result.Lines
	return order, nil
}

// printPlan writes a human-readable plan summary to stdout.
func printPlan(plan model.LoadingPlan) {
	fmt.Printf("Order %s: %d pipes at %.1f m, %.1f kg total\n",
		plan.OrderNumber, plan.TotalPipes, plan.PipeLengthM, plan.TotalWeightKG)
	fmt.Printf("Trucks needed: %d (nested pipes: %d, %.1f%%)\n\n",
		plan.TrucksNeeded(), plan.NestedPipes, plan.NestingEfficiency())

	for _, truck := range plan.Trucks {
		fmt.Printf("Truck %d (%s): %d bundles, %d pipes, %.1f kg (%.1f%%)\n",
			truck.Number, truck.Config.Name, truck.BundleCount(),
			truck.PipeCount(), truck.TotalWeight(), truck.WeightUtilization())
		for _, p := range truck.Placements {
			chain := strings.Join(p.Bundle.ChainCodes(), " > ")
			fmt.Printf("  row %d @ (%.0f, %.0f)  %s  %.1f kg\n",
				p.Row+1, p.Z, p.Y, chain, p.Bundle.TotalWeight(plan.PipeLengthM))
		}
	}

	if len(plan.Infeasible) > 0 {
		fmt.Printf("\nUNLOADABLE bundles:\n")
		for _, b := range plan.Infeasible {
			fmt.Printf("  %s  OD %.0f mm  %.1f kg\n", b.Host().Code, b.Diameter(), b.TotalWeight(plan.PipeLengthM))
		}
	}
	if len(plan.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, w := range plan.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

// runCompare prints a side-by-side comparison of loading strategies.
func runCompare(order model.Order, truck model.TruckConfig, settings model.LoadSettings) {
	results := engine.CompareScenarios(engine.BuildDefaultScenarios(settings), order, truck)

	fmt.Printf("%-20s %8s %8s %12s %12s\n", "Scenario", "Trucks", "Nested", "Infeasible", "Utilization")
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-20s failed: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Printf("%-20s %8d %8d %12d %11.1f%%\n",
			r.Scenario.Name, r.TrucksUsed, r.NestedPipes, r.InfeasibleCount, r.AvgUtilization)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pipestack: "+format+"\n", args...)
	os.Exit(1)
}

// printTrucks lists the built-in truck presets.
func printTrucks() {
	fmt.Printf("%-24s %10s %9s %8s %9s\n", "Name", "Payload", "Width", "Height", "Length")
	for _, t := range model.TruckPresets() {
		fmt.Printf("%-24s %8.0fkg %7.0fmm %6.0fmm %7.0fmm\n",
			t.Name, t.MaxPayloadKG, t.InternalWidthMM, t.InternalHeightMM, t.InternalLengthMM)
	}
}

// printCatalog lists the pipe catalog.
func printCatalog(catalog []model.PipeType) {
	fmt.Printf("%-14s %6s %5s %5s %10s %10s %10s\n", "Code", "DN", "PN", "SDR", "OD mm", "Inner mm", "kg/m")
	for _, p := range catalog {
		fmt.Printf("%-14s %6.0f %5s %5d %10.1f %10.1f %10.2f\n",
			p.Code, p.DN, p.PNClass, p.SDR, p.OuterDiameterMM(), p.InnerDiameterMM, p.WeightPerMeter)
	}
}
