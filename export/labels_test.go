package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/SpritePack/model"
)

func buildLabelsTestResult() model.PackResult {
	return model.PackResult{
		Pages: []model.PageInfo{
			{
				Index: 0, Width: 256, Height: 256,
				Sprites: []model.PlacedSprite{
					{Name: "hero_idle", Page: 0, X: 1, Y: 1, Width: 30, Height: 40,
						OriginalWidth: 32, OriginalHeight: 48, Trimmed: true, TrimX: 1, TrimY: 4},
					{Name: "coin", Page: 0, X: 33, Y: 1, Width: 16, Height: 16,
						OriginalWidth: 16, OriginalHeight: 16},
				},
			},
			{
				Index: 1, Width: 256, Height: 256,
				Sprites: []model.PlacedSprite{
					{Name: "tree", Page: 1, X: 1, Y: 1, Width: 120, Height: 200,
						OriginalWidth: 120, OriginalHeight: 200},
				},
			},
		},
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	result := buildLabelsTestResult()
	err := ExportLabels(path, result)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
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

func TestExportLabels_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, model.PackResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportLabels_NoSprites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_sprites.pdf")

	result := model.PackResult{
		Pages: []model.PageInfo{{Index: 0, Width: 256, Height: 256}},
	}
	err := ExportLabels(path, result)
	if err == nil {
		t.Fatal("expected error for result with no sprites, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	result := buildLabelsTestResult()
	labels := CollectLabelInfos(result)

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	// Check first label
	if labels[0].SpriteName != "hero_idle" {
		t.Errorf("expected first label to be 'hero_idle', got %q", labels[0].SpriteName)
	}
	if labels[0].Width != 30 || labels[0].Height != 40 {
		t.Errorf("wrong dimensions: got %dx%d, want 30x40", labels[0].Width, labels[0].Height)
	}
	if labels[0].PageIndex != 1 {
		t.Errorf("expected page index 1, got %d", labels[0].PageIndex)
	}
	if !labels[0].Trimmed {
		t.Error("expected first label to be trimmed")
	}

	// Check second label (untrimmed)
	if labels[1].Trimmed {
		t.Error("expected second label not trimmed")
	}

	// Check third label (second page)
	if labels[2].PageIndex != 2 {
		t.Errorf("expected page index 2 for third label, got %d", labels[2].PageIndex)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		SpriteName: "test_sprite",
		Width:      30,
		Height:     20,
		PageIndex:  1,
		Trimmed:    true,
		X:          50,
		Y:          100,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.SpriteName != info.SpriteName {
		t.Errorf("name mismatch: got %q, want %q", decoded.SpriteName, info.SpriteName)
	}
	if decoded.Width != info.Width || decoded.Height != info.Height {
		t.Errorf("dimensions mismatch: got %dx%d, want %dx%d",
			decoded.Width, decoded.Height, info.Width, info.Height)
	}
	if decoded.Trimmed != info.Trimmed {
		t.Error("trimmed flag mismatch")
	}
}

func TestExportLabels_ManySprites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// Create 35 placements to test multi-page label generation
	sprites := make([]model.PlacedSprite, 35)
	for i := range sprites {
		sprites[i] = model.PlacedSprite{
			Name:           fmt.Sprintf("sprite_%02d", i),
			X:              (i % 8) * 30,
			Y:              (i / 8) * 30,
			Width:          28,
			Height:         28,
			OriginalWidth:  28,
			OriginalHeight: 28,
		}
	}

	result := model.PackResult{
		Pages: []model.PageInfo{{Index: 0, Width: 256, Height: 256, Sprites: sprites}},
	}

	err := ExportLabels(path, result)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
