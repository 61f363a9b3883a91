package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/SpritePack/model"
)

func buildMetadataTestDocument() Document {
	return Document{
		BaseName: "atlas",
		Pages: []PageMeta{
			{Width: 128, Height: 64, SpriteCount: 2},
			{Width: 128, Height: 64, SpriteCount: 1},
		},
		Sprites: []model.PlacedSprite{
			{Name: "hero", Page: 0, X: 1, Y: 1, Width: 30, Height: 40,
				OriginalWidth: 32, OriginalHeight: 48, Trimmed: true, TrimX: 1, TrimY: 4},
			{Name: "coin", Page: 0, X: 33, Y: 1, Width: 16, Height: 16,
				OriginalWidth: 16, OriginalHeight: 16},
			{Name: "tree", Page: 1, X: 1, Y: 1, Width: 60, Height: 60,
				OriginalWidth: 60, OriginalHeight: 60},
		},
	}
}

func TestWriteMetadata_GenericJSON(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "atlas")

	path, err := WriteMetadata(buildMetadataTestDocument(), base, model.FormatJSON)
	if err != nil {
		t.Fatalf("WriteMetadata returned error: %v", err)
	}
	if path != base+".json" {
		t.Errorf("expected %q, got %q", base+".json", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metadata file: %v", err)
	}

	var decoded genericDocument
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to parse metadata JSON: %v", err)
	}

	if len(decoded.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(decoded.Pages))
	}
	if decoded.Pages[0].Width != 128 || decoded.Pages[0].Sprites != 2 {
		t.Errorf("wrong first page record: %+v", decoded.Pages[0])
	}

	hero, ok := decoded.Sprites["hero"]
	if !ok {
		t.Fatal("hero sprite missing from metadata")
	}
	if hero.Page != 0 || hero.X != 1 || hero.Y != 1 {
		t.Errorf("wrong hero placement: %+v", hero)
	}
	if hero.OriginalWidth != 32 || hero.OriginalHeight != 48 {
		t.Errorf("wrong hero source size: %+v", hero)
	}
	if !hero.Trimmed || hero.TrimX != 1 || hero.TrimY != 4 {
		t.Errorf("wrong hero trim data: %+v", hero)
	}
}

func TestWriteMetadata_UnitySharesGenericSchema(t *testing.T) {
	dir := t.TempDir()
	jsonBase := filepath.Join(dir, "a")
	unityBase := filepath.Join(dir, "b")
	doc := buildMetadataTestDocument()

	jsonPath, err := WriteMetadata(doc, jsonBase, model.FormatJSON)
	if err != nil {
		t.Fatalf("JSON export failed: %v", err)
	}
	unityPath, err := WriteMetadata(doc, unityBase, model.FormatUnity)
	if err != nil {
		t.Fatalf("Unity export failed: %v", err)
	}

	jsonData, _ := os.ReadFile(jsonPath)
	unityData, _ := os.ReadFile(unityPath)
	if !bytes.Equal(jsonData, unityData) {
		t.Error("Unity output should be byte-identical to generic JSON")
	}
}

func TestWriteMetadata_Godot(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "atlas")

	path, err := WriteMetadata(buildMetadataTestDocument(), base, model.FormatGodot)
	if err != nil {
		t.Fatalf("WriteMetadata returned error: %v", err)
	}
	if path != base+".tres" {
		t.Errorf("expected %q, got %q", base+".tres", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metadata file: %v", err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "[gd_resource type=\"AtlasTexture\" format=2]\n") {
		t.Error("missing gd_resource header")
	}
	if !strings.Contains(text, "region = Rect2(1, 1, 30, 40)") {
		t.Error("missing hero region")
	}
	if !strings.Contains(text, "atlas = ExtResource(2)") {
		t.Error("tree should reference the second page resource")
	}
	if got := strings.Count(text, "[sub_resource"); got != 3 {
		t.Errorf("expected 3 sub-resources, got %d", got)
	}

	// Sprites must appear in insertion order, not sorted by name.
	heroIdx := strings.Index(text, "Rect2(1, 1, 30, 40)")
	coinIdx := strings.Index(text, "Rect2(33, 1, 16, 16)")
	if heroIdx > coinIdx {
		t.Error("hero should be written before coin")
	}
}

func TestWriteMetadata_GodotIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	doc := buildMetadataTestDocument()

	first, err := WriteMetadata(doc, filepath.Join(dir, "a"), model.FormatGodot)
	if err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	second, err := WriteMetadata(doc, filepath.Join(dir, "b"), model.FormatGodot)
	if err != nil {
		t.Fatalf("second export failed: %v", err)
	}

	firstData, _ := os.ReadFile(first)
	secondData, _ := os.ReadFile(second)
	if !bytes.Equal(firstData, secondData) {
		t.Error("repeated exports should produce identical output")
	}
}

func TestWriteMetadata_GameMaker(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "atlas")

	path, err := WriteMetadata(buildMetadataTestDocument(), base, model.FormatGameMaker)
	if err != nil {
		t.Fatalf("WriteMetadata returned error: %v", err)
	}
	if path != base+".yy" {
		t.Errorf("expected %q, got %q", base+".yy", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metadata file: %v", err)
	}

	var decoded gameMakerDocument
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to parse metadata JSON: %v", err)
	}

	if decoded.Name != "atlas" {
		t.Errorf("expected name 'atlas', got %q", decoded.Name)
	}
	if len(decoded.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(decoded.Frames))
	}
	if decoded.Frames[0].Name != "hero" || decoded.Frames[1].Name != "coin" {
		t.Error("frames should keep insertion order")
	}
	if decoded.Frames[0].W != 30 || decoded.Frames[0].H != 40 {
		t.Errorf("wrong hero frame size: %+v", decoded.Frames[0])
	}
}

func TestWriteMetadata_Phaser(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "atlas")

	path, err := WriteMetadata(buildMetadataTestDocument(), base, model.FormatPhaser)
	if err != nil {
		t.Fatalf("WriteMetadata returned error: %v", err)
	}
	if path != base+"_phaser.json" {
		t.Errorf("expected %q, got %q", base+"_phaser.json", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metadata file: %v", err)
	}

	var decoded phaserDocument
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to parse metadata JSON: %v", err)
	}

	if decoded.Meta.Image != "atlas.png" {
		t.Errorf("expected image 'atlas.png', got %q", decoded.Meta.Image)
	}
	if decoded.Meta.Format != "RGBA8888" {
		t.Errorf("unexpected format %q", decoded.Meta.Format)
	}
	if decoded.Meta.Size.W != 128 || decoded.Meta.Size.H != 64 {
		t.Errorf("meta size should mirror the first page, got %+v", decoded.Meta.Size)
	}

	hero, ok := decoded.Frames["hero"]
	if !ok {
		t.Fatal("hero frame missing")
	}
	if hero.Frame.X != 1 || hero.Frame.W != 30 {
		t.Errorf("wrong hero frame rect: %+v", hero.Frame)
	}
	if !hero.Trimmed {
		t.Error("hero should be marked trimmed")
	}
	if hero.SpriteSourceSize.X != 1 || hero.SpriteSourceSize.Y != 4 {
		t.Errorf("spriteSourceSize should carry the trim offset: %+v", hero.SpriteSourceSize)
	}
	if hero.SourceSize.W != 32 || hero.SourceSize.H != 48 {
		t.Errorf("sourceSize should carry the original dimensions: %+v", hero.SourceSize)
	}
}

func TestWriteMetadata_PhaserEmptyAtlas(t *testing.T) {
	dir := t.TempDir()
	doc := Document{BaseName: "empty"}

	path, err := WriteMetadata(doc, filepath.Join(dir, "empty"), model.FormatPhaser)
	if err != nil {
		t.Fatalf("WriteMetadata returned error: %v", err)
	}

	data, _ := os.ReadFile(path)
	var decoded phaserDocument
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to parse metadata JSON: %v", err)
	}
	if decoded.Meta.Size.W != 0 || decoded.Meta.Size.H != 0 {
		t.Errorf("empty atlas should report zero size, got %+v", decoded.Meta.Size)
	}
}

func TestWriteMetadata_UnknownFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteMetadata(buildMetadataTestDocument(), filepath.Join(dir, "atlas"), model.Format("tiff"))
	if err == nil {
		t.Fatal("expected error for unknown format, got nil")
	}
}
