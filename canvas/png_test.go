package canvas

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func testPattern() *Canvas {
	c := New(4, 4)
	c.SetPixelSolid(0, 0, 255, 0, 0, 255)
	c.SetPixelSolid(3, 0, 0, 255, 0, 255)
	c.SetPixelSolid(0, 3, 0, 0, 255, 255)
	c.SetPixelSolid(2, 2, 10, 20, 30, 128)
	return c
}

func TestEncodeDecodePNGRoundTrip(t *testing.T) {
	c := testPattern()

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !c.Equal(decoded) {
		t.Error("decoded canvas differs from the encoded one")
	}
}

func TestSaveLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.png")

	c := testPattern()
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("saved file is empty")
	}

	loaded, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !c.Equal(loaded) {
		t.Error("loaded canvas differs from the saved one")
	}
}

func TestDecodePNGRejectsGarbage(t *testing.T) {
	if _, err := DecodePNG(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Error("expected an error for invalid PNG data")
	}
}

func TestLoadPNGMissingFile(t *testing.T) {
	if _, err := LoadPNG(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
