package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/SpritePack/model"
)

func buildPDFTestResult() model.PackResult {
	return model.PackResult{
		Pages: []model.PageInfo{
			{
				Index: 0, Width: 128, Height: 128,
				Sprites: []model.PlacedSprite{
					{Name: "hero_idle", Page: 0, X: 1, Y: 1, Width: 30, Height: 40,
						OriginalWidth: 32, OriginalHeight: 48, Trimmed: true, TrimX: 1, TrimY: 4},
					{Name: "coin", Page: 0, X: 33, Y: 1, Width: 16, Height: 16,
						OriginalWidth: 16, OriginalHeight: 16},
				},
			},
			{
				Index: 1, Width: 128, Height: 128,
				Sprites: []model.PlacedSprite{
					{Name: "tree", Page: 1, X: 1, Y: 1, Width: 90, Height: 110,
						OriginalWidth: 90, OriginalHeight: 110},
				},
			},
		},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.pdf")

	err := ExportPDF(path, buildPDFTestResult(), model.DefaultSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, model.PackResult{}, model.DefaultSettings())
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_WithUnplacedSprites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unplaced.pdf")

	result := buildPDFTestResult()
	result.Unplaced = []string{"giant_boss", "background"}

	err := ExportPDF(path, result, model.DefaultSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportPDF_ManySprites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")

	// A page with enough sprites to wrap the legend onto several lines.
	sprites := make([]model.PlacedSprite, 40)
	for i := range sprites {
		sprites[i] = model.PlacedSprite{
			Name:           fmt.Sprintf("sprite_%02d", i),
			X:              (i % 8) * 16,
			Y:              (i / 8) * 16,
			Width:          14,
			Height:         14,
			OriginalWidth:  14,
			OriginalHeight: 14,
		}
	}
	result := model.PackResult{
		Pages: []model.PageInfo{{Index: 0, Width: 128, Height: 128, Sprites: sprites}},
	}

	err := ExportPDF(path, result, model.DefaultSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}
