// Package importer reads pipe order lines from CSV and Excel files.
// It supports automatic delimiter detection, flexible column mapping with
// English and Romanian header names, and case-insensitive matching.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/PipeStack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Lines    []model.OrderLine
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Code     int
	DN       int
	PN       int
	SDR      int
	Quantity int
}

// headerAliases maps canonical column names to their accepted aliases
// (all lowercase). Romanian spellings come from the order sheets the
// Romanian dispatch offices send.
var headerAliases = map[string][]string{
	"code":     {"code", "pipe_code", "pipe code", "cod", "product", "produs", "article", "articol"},
	"dn":       {"dn", "dn_mm", "dn mm", "diameter", "diametru", "outer_diameter", "outer diameter", "od"},
	"pn":       {"pn", "pn_class", "pn class", "pressure", "pressure_class", "pressure class", "presiune", "clasa_presiune", "clasa presiune"},
	"sdr":      {"sdr", "sdr_class", "sdr class"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "cantitate", "buc", "bucati", "nr"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Matching is case-insensitive against the known aliases per role.
// Returns the mapping and true if a header was detected, or a default
// positional mapping (code, dn, pn, quantity) and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Code:     -1,
		DN:       -1,
		PN:       -1,
		SDR:      -1,
		Quantity: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "code":
						if mapping.Code == -1 {
							mapping.Code = i
						}
					case "dn":
						if mapping.DN == -1 {
							mapping.DN = i
						}
					case "pn":
						if mapping.PN == -1 {
							mapping.PN = i
						}
					case "sdr":
						if mapping.SDR == -1 {
							mapping.SDR = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{
			Code:     0,
			DN:       1,
			PN:       2,
			SDR:      -1,
			Quantity: 3,
		}, false
	}

	return mapping, true
}

// parseDN accepts "315", "315.0" or "DN315".
func parseDN(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "DN"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// parsePN accepts "PN10" or a bare "10".
func parsePN(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if !strings.HasPrefix(s, "PN") {
		s = "PN" + s
	}
	if _, ok := model.PNToSDR[s]; !ok {
		return "", false
	}
	return s, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow resolves a row against the catalog and extracts an order line.
// Resolution order: exact catalog code, then DN plus pressure class, then
// DN plus SDR. Returns the line, any error message, and any warning.
func parseRow(row []string, mapping ColumnMapping, catalog []model.PipeType, rowLabel string) (model.OrderLine, string, string) {
	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return model.OrderLine{}, fmt.Sprintf("%s: missing quantity", rowLabel), ""
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty <= 0 {
		return model.OrderLine{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr), ""
	}

	var warning string

	if code := getCell(row, mapping.Code); code != "" {
		if p, ok := model.FindPipe(catalog, strings.ToUpper(code)); ok {
			return model.OrderLine{Pipe: p, Quantity: qty}, "", ""
		}
		warning = fmt.Sprintf("%s: code %q not in catalog, falling back to DN lookup", rowLabel, code)
	}

	dnStr := getCell(row, mapping.DN)
	if dnStr == "" {
		return model.OrderLine{}, fmt.Sprintf("%s: no catalog code and no DN given", rowLabel), warning
	}
	dn, ok := parseDN(dnStr)
	if !ok {
		return model.OrderLine{}, fmt.Sprintf("%s: invalid DN %q", rowLabel, dnStr), warning
	}

	pnClass := ""
	if pnStr := getCell(row, mapping.PN); pnStr != "" {
		pnClass, ok = parsePN(pnStr)
		if !ok {
			return model.OrderLine{}, fmt.Sprintf("%s: unknown pressure class %q", rowLabel, pnStr), warning
		}
	} else if sdrStr := getCell(row, mapping.SDR); sdrStr != "" {
		sdr, err := strconv.Atoi(strings.TrimSpace(sdrStr))
		if err != nil {
			return model.OrderLine{}, fmt.Sprintf("%s: invalid SDR %q", rowLabel, sdrStr), warning
		}
		pnClass, ok = model.SDRToPN[sdr]
		if !ok {
			return model.OrderLine{}, fmt.Sprintf("%s: no pressure class for SDR %d", rowLabel, sdr), warning
		}
	} else {
		return model.OrderLine{}, fmt.Sprintf("%s: neither PN nor SDR given for DN%g", rowLabel, dn), warning
	}

	p, ok := model.FindPipeByDNPN(catalog, dn, pnClass)
	if !ok {
		return model.OrderLine{}, fmt.Sprintf("%s: DN%g %s not in catalog", rowLabel, dn, pnClass), warning
	}
	return model.OrderLine{Pipe: p, Quantity: qty}, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports order lines from a CSV file, resolving each row
// against the given pipe catalog. The delimiter is detected automatically.
func ImportCSV(path string, catalog []model.PipeType) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "line", catalog, result.Warnings)
}

// ImportCSVFromReader imports order lines from a CSV reader with a known
// delimiter. Useful for testing and for piped input.
func ImportCSVFromReader(reader io.Reader, delimiter rune, catalog []model.PipeType) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "line", catalog, nil)
}

// ImportExcel imports order lines from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string, catalog []model.PipeType) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "row", catalog, nil)
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, catalog []model.PipeType, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		if mapping.Quantity == -1 {
			result.Errors = append(result.Errors, "quantity column not found in header")
			return result
		}
		if mapping.Code == -1 && mapping.DN == -1 {
			result.Errors = append(result.Errors, "neither a code nor a DN column found in header")
			return result
		}
	} else if len(rows[0]) >= 2 {
		// No recognized header: if the second column is not numeric the
		// first row is likely an unknown header, skip it.
		if _, ok := parseDN(rows[0][1]); !ok {
			startRow = 1
			result.Warnings = append(result.Warnings, "unrecognized header row skipped")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		line, errMsg, warning := parseRow(row, mapping, catalog, rowLabel)

		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		result.Lines = append(result.Lines, line)
	}

	return result
}
