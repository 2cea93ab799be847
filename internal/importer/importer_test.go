package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/PipeStack/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "code,dn,pn,qty\nTPE400/PN6,400,PN6,10\n", ','},
		{"semicolon", "code;dn;pn;qty\nTPE400/PN6;400;PN6;10\n", ';'},
		{"tab", "code\tdn\tpn\tqty\nTPE400/PN6\t400\tPN6\t10\n", '\t'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("DetectCSVDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectColumns_EnglishHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Code", "DN", "PN", "Quantity"})
	if !hasHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Code != 0 || mapping.DN != 1 || mapping.PN != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_RomanianHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Cod", "Diametru", "Presiune", "Cantitate"})
	if !hasHeader {
		t.Fatal("expected header detection for Romanian aliases")
	}
	if mapping.Code != 0 || mapping.DN != 1 || mapping.PN != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeaderFallsBackPositional(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"TPE400/PN6", "400", "PN6", "10"})
	if hasHeader {
		t.Fatal("did not expect header detection")
	}
	if mapping.Code != 0 || mapping.DN != 1 || mapping.PN != 2 || mapping.Quantity != 3 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

func TestImportCSVFromReader_ByCode(t *testing.T) {
	csv := "code,quantity\ntpe400/pn6,10\nTPE315/PN10,4\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',', model.BuiltinCatalog())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result.Lines))
	}
	if result.Lines[0].Pipe.Code != "TPE400/PN6" || result.Lines[0].Quantity != 10 {
		t.Errorf("line 1 wrong: %+v", result.Lines[0])
	}
	if result.Lines[1].Pipe.Code != "TPE315/PN10" || result.Lines[1].Quantity != 4 {
		t.Errorf("line 2 wrong: %+v", result.Lines[1])
	}
}

func TestImportCSVFromReader_ByDNAndPN(t *testing.T) {
	csv := "dn,pn,qty\nDN315,10,4\n400,PN6,2\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',', model.BuiltinCatalog())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result.Lines))
	}
	if result.Lines[0].Pipe.Code != "TPE315/PN10" {
		t.Errorf("DN315 + 10 should resolve to TPE315/PN10, got %s", result.Lines[0].Pipe.Code)
	}
	if result.Lines[1].Pipe.Code != "TPE400/PN6" {
		t.Errorf("400 + PN6 should resolve to TPE400/PN6, got %s", result.Lines[1].Pipe.Code)
	}
}

func TestImportCSVFromReader_ByDNAndSDR(t *testing.T) {
	csv := "dn,sdr,cantitate\n630,11,3\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',', model.BuiltinCatalog())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Lines) != 1 || result.Lines[0].Pipe.Code != "TPE630/PN16" {
		t.Fatalf("SDR 11 should resolve to PN16, got %+v", result.Lines)
	}
}

func TestImportCSVFromReader_BadRowsReported(t *testing.T) {
	csv := "dn,pn,qty\n315,PN10,zero\n315,PN99,1\n9999,PN10,1\n315,PN10,2\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',', model.BuiltinCatalog())

	if len(result.Lines) != 1 {
		t.Fatalf("expected 1 good line, got %d", len(result.Lines))
	}
	if len(result.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_UnknownCodeFallsBackToDN(t *testing.T) {
	csv := "code,dn,pn,qty\nWRONG-CODE,315,PN10,2\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',', model.BuiltinCatalog())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Lines) != 1 || result.Lines[0].Pipe.Code != "TPE315/PN10" {
		t.Fatalf("expected DN fallback, got %+v", result.Lines)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning about the unknown code")
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.csv")
	data := "cod;dn;presiune;bucati\nTPE400/PN6;400;PN6;5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path, model.BuiltinCatalog())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Lines) != 1 || result.Lines[0].Quantity != 5 {
		t.Fatalf("expected 1 line qty 5, got %+v", result.Lines)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"), model.BuiltinCatalog())
	if len(result.Errors) == 0 {
		t.Error("expected an error for missing file")
	}
}

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"code", "dn", "pn", "quantity"},
		{"TPE400/PN6", 400, "PN6", 10},
		{"", 315, "PN10", 4},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportExcel(path, model.BuiltinCatalog())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %+v", result.Lines)
	}
	if result.Lines[1].Pipe.Code != "TPE315/PN10" {
		t.Errorf("row 3 should resolve by DN+PN, got %s", result.Lines[1].Pipe.Code)
	}
}
