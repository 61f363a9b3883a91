// Package importer provides CSV and Excel import functionality for sprite
// manifests. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/SpritePack/atlas"
	"github.com/piwi3910/SpritePack/canvas"
	"github.com/piwi3910/SpritePack/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Sources  []model.SpriteSource
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name int
	Path int
	Trim int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name": {"name", "sprite", "sprite name", "label", "id"},
	"path": {"path", "file", "filename", "image", "source", "src"},
	"trim": {"trim", "trimmed", "trim transparent", "autotrim"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
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

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1,
		Path: -1,
		Trim: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "path":
						if mapping.Path == -1 {
							mapping.Path = i
						}
					case "trim":
						if mapping.Trim == -1 {
							mapping.Trim = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Path, Trim
		return ColumnMapping{
			Name: 0,
			Path: 1,
			Trim: 2,
		}, false
	}

	return mapping, true
}

// parseTrim converts a trim cell to a bool. It returns the value and a
// boolean indicating whether the string was recognized. An empty cell
// defaults to trimming enabled.
func parseTrim(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "yes", "y", "1", "on":
		return true, true
	case "false", "no", "n", "0", "off":
		return false, true
	default:
		return true, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// looksLikeImagePath reports whether a cell plausibly names a sprite image
// file rather than a column heading.
func looksLikeImagePath(s string) bool {
	return strings.ToLower(filepath.Ext(s)) == ".png"
}

// parseRow extracts a SpriteSource from a row using the given column mapping.
// Returns the source, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, spriteCount int) (model.SpriteSource, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Sprite %d", spriteCount+1)
	}

	path := getCell(row, mapping.Path)
	if path == "" {
		return model.SpriteSource{}, fmt.Sprintf("%s: Missing image path", rowLabel), ""
	}

	var warning string
	if !looksLikeImagePath(path) {
		warning = fmt.Sprintf("%s: '%s' does not look like a PNG file", rowLabel, path)
	}

	source := model.NewSpriteSource(name, path)

	// Optional trim flag
	trimStr := getCell(row, mapping.Trim)
	if trimStr != "" {
		trim, ok := parseTrim(trimStr)
		if ok {
			source.Trim = trim
		} else {
			warning = fmt.Sprintf("%s: Unknown trim value '%s', defaulting to true", rowLabel, trimStr)
		}
	}

	return source, "", warning
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

// ImportCSV imports sprite sources from a CSV manifest file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports sprite sources from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports sprite sources from an Excel (.xlsx, .xls) manifest.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
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
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into sprite sources.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		if mapping.Path == -1 {
			result.Errors = append(result.Errors, "Required columns not found in header: Path")
			return result
		}
	} else {
		// No header: if the path cell of the first row does not look like an
		// image file, treat the row as an unrecognized header and skip it.
		if len(rows[0]) >= 2 && !looksLikeImagePath(getCell(rows[0], mapping.Path)) {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	seen := make(map[string]bool)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		source, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Sources))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		if seen[source.Name] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Duplicate sprite name '%s'", rowLabel, source.Name))
			continue
		}
		seen[source.Name] = true

		result.Sources = append(result.Sources, source)
	}

	return result
}

// LoadEntries reads each source image from disk and builds packable atlas
// entries. Sources whose image cannot be read are reported in the returned
// error list and skipped.
func LoadEntries(sources []model.SpriteSource) ([]atlas.SpriteEntry, []string) {
	entries := make([]atlas.SpriteEntry, 0, len(sources))
	var errs []string

	for _, src := range sources {
		buf, err := canvas.LoadPNG(src.Path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", src.Name, err))
			continue
		}
		entries = append(entries, atlas.SpriteEntry{
			Name:   src.Name,
			Buffer: buf,
			Trim:   src.Trim,
		})
	}

	return entries, errs
}
