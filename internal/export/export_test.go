package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/PipeStack/internal/model"
)

// buildTestPlan creates a realistic loading plan for testing.
func buildTestPlan() model.LoadingPlan {
	catalog := model.BuiltinCatalog()
	host, _ := model.FindPipe(catalog, "TPE800/PN6")
	guest, _ := model.FindPipe(catalog, "TPE630/PN6")
	loose, _ := model.FindPipe(catalog, "TPE400/PN10")

	nested := model.NewBundle([]model.PipeType{host, guest})
	single := model.NewBundle([]model.PipeType{loose})

	cfg := model.DefaultTruck()
	return model.LoadingPlan{
		OrderID:     "ab12cd34",
		OrderNumber: "CMD-2024-017",
		PipeLengthM: 13,
		TotalPipes:  3,
		NestedPipes: 1,
		Trucks: []model.TruckLoad{
			{
				Number:      1,
				Config:      cfg,
				PipeLengthM: 13,
				Placements: []model.Placement{
					{Bundle: nested, Z: 400, Y: 400, Row: 0},
					{Bundle: single, Z: 1020, Y: 200, Row: 0},
				},
			},
		},
		TotalWeightKG: nested.TotalWeight(13) + single.TotalWeight(13),
		Warnings:      []string{"truck 1 is only 7.8% loaded, consider combining with another order"},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if info.Size() < 1000 {
		t.Errorf("PDF suspiciously small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, model.LoadingPlan{}); err == nil {
		t.Error("expected error for plan without trucks")
	}
}

func TestExportPDF_WithInfeasibleBundles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	plan := buildTestPlan()
	plan.Infeasible = []model.Bundle{
		model.NewBundle([]model.PipeType{{
			Code: "OVERSIZE", DN: 2600, InnerDiameterMM: 2500, WallMM: 50, WeightPerMeter: 100,
		}}),
	}

	if err := ExportPDF(path, plan); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestPlan(), 2000); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if info.Size() < 1000 {
		t.Errorf("label PDF suspiciously small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, model.LoadingPlan{}, 2000); err == nil {
		t.Error("expected error for plan without bundles")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	plan := buildTestPlan()
	labels := CollectLabelInfos(plan, 500)

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.Truck != 1 || first.Chain[0] != "TPE800/PN6" {
		t.Errorf("unexpected first label: %+v", first)
	}
	if len(first.Chain) != 2 {
		t.Errorf("expected nested chain on first label, got %v", first.Chain)
	}
	// 606 kg of nested DN630 exceeds the lowered 500 kg threshold.
	if !first.Extraction {
		t.Error("expected extraction flag on the nested bundle")
	}
	if labels[1].Extraction {
		t.Error("singleton bundle should not need extraction")
	}
}

func TestExportDXF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")

	if err := ExportDXF(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	content := string(data)
	for _, want := range []string{"TRUCK_1", "CIRCLE", "LINE"} {
		if !strings.Contains(content, want) {
			t.Errorf("DXF output missing %q", want)
		}
	}
}

func TestExportDXF_EmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")

	if err := ExportDXF(path, model.LoadingPlan{}); err == nil {
		t.Error("expected error for plan without trucks")
	}
}
