// Package export provides functionality for exporting atlas packing results
// to various file formats including engine-specific metadata.
package export

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"strings"

	"github.com/piwi3910/SpritePack/model"
)

// Document is a format-independent snapshot of a packed atlas, ready to be
// written in any supported metadata format. Sprites appear in the order
// they were added to the atlas.
type Document struct {
	BaseName string
	Pages    []PageMeta
	Sprites  []model.PlacedSprite
}

// PageMeta describes one atlas page for metadata output.
type PageMeta struct {
	Width       int
	Height      int
	SpriteCount int
}

// WriteMetadata writes doc next to the atlas images in the requested
// format and returns the path it wrote. The Unity format shares the
// generic JSON schema.
func WriteMetadata(doc Document, path string, format model.Format) (string, error) {
	switch format {
	case model.FormatJSON, model.FormatUnity:
		return writeGenericJSON(doc, path)
	case model.FormatGodot:
		return writeGodot(doc, path)
	case model.FormatGameMaker:
		return writeGameMaker(doc, path)
	case model.FormatPhaser:
		return writePhaser(doc, path)
	default:
		return "", fmt.Errorf("unknown metadata format %q", format)
	}
}

type pageRecord struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Sprites int `json:"sprites"`
}

type spriteRecord struct {
	Page           int  `json:"page"`
	X              int  `json:"x"`
	Y              int  `json:"y"`
	Width          int  `json:"width"`
	Height         int  `json:"height"`
	OriginalWidth  int  `json:"originalWidth"`
	OriginalHeight int  `json:"originalHeight"`
	Trimmed        bool `json:"trimmed"`
	TrimX          int  `json:"trimX"`
	TrimY          int  `json:"trimY"`
}

type genericDocument struct {
	Pages   []pageRecord            `json:"pages"`
	Sprites map[string]spriteRecord `json:"sprites"`
}

func writeGenericJSON(doc Document, path string) (string, error) {
	out := genericDocument{
		Pages:   make([]pageRecord, 0, len(doc.Pages)),
		Sprites: make(map[string]spriteRecord, len(doc.Sprites)),
	}
	for _, p := range doc.Pages {
		out.Pages = append(out.Pages, pageRecord{
			Width:   p.Width,
			Height:  p.Height,
			Sprites: p.SpriteCount,
		})
	}
	for _, s := range doc.Sprites {
		out.Sprites[s.Name] = spriteRecord{
			Page:           s.Page,
			X:              s.X,
			Y:              s.Y,
			Width:          s.Width,
			Height:         s.Height,
			OriginalWidth:  s.OriginalWidth,
			OriginalHeight: s.OriginalHeight,
			Trimmed:        s.Trimmed,
			TrimX:          s.TrimX,
			TrimY:          s.TrimY,
		}
	}

	jsonPath := path + ".json"
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode atlas metadata: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write atlas metadata: %w", err)
	}
	return jsonPath, nil
}

// writeGodot emits an AtlasTexture sub-resource per sprite. Sub-resource
// ids are derived from the sprite name so repeated exports stay stable.
func writeGodot(doc Document, path string) (string, error) {
	var b strings.Builder
	b.WriteString("[gd_resource type=\"AtlasTexture\" format=2]\n\n")
	for _, s := range doc.Sprites {
		fmt.Fprintf(&b, "[sub_resource type=\"AtlasTexture\" id=%d]\n", godotResourceID(s.Name))
		fmt.Fprintf(&b, "atlas = ExtResource(%d)\n", s.Page+1)
		fmt.Fprintf(&b, "region = Rect2(%d, %d, %d, %d)\n\n", s.X, s.Y, s.Width, s.Height)
	}

	tresPath := path + ".tres"
	if err := os.WriteFile(tresPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write atlas metadata: %w", err)
	}
	return tresPath, nil
}

func godotResourceID(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32() % 10000
}

type gameMakerFrame struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

type gameMakerDocument struct {
	Name   string           `json:"name"`
	Frames []gameMakerFrame `json:"frames"`
}

func writeGameMaker(doc Document, path string) (string, error) {
	out := gameMakerDocument{
		Name:   doc.BaseName,
		Frames: make([]gameMakerFrame, 0, len(doc.Sprites)),
	}
	for _, s := range doc.Sprites {
		out.Frames = append(out.Frames, gameMakerFrame{
			Name: s.Name,
			X:    s.X,
			Y:    s.Y,
			W:    s.Width,
			H:    s.Height,
		})
	}

	yyPath := path + ".yy"
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode atlas metadata: %w", err)
	}
	if err := os.WriteFile(yyPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write atlas metadata: %w", err)
	}
	return yyPath, nil
}

type phaserRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type phaserSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type phaserFrame struct {
	Frame            phaserRect `json:"frame"`
	Rotated          bool       `json:"rotated"`
	Trimmed          bool       `json:"trimmed"`
	SpriteSourceSize phaserRect `json:"spriteSourceSize"`
	SourceSize       phaserSize `json:"sourceSize"`
}

type phaserMeta struct {
	App     string     `json:"app"`
	Version string     `json:"version"`
	Image   string     `json:"image"`
	Format  string     `json:"format"`
	Size    phaserSize `json:"size"`
}

type phaserDocument struct {
	Frames map[string]phaserFrame `json:"frames"`
	Meta   phaserMeta             `json:"meta"`
}

func writePhaser(doc Document, path string) (string, error) {
	out := phaserDocument{
		Frames: make(map[string]phaserFrame, len(doc.Sprites)),
		Meta: phaserMeta{
			App:     "spritepack",
			Version: "1.0",
			Image:   doc.BaseName + ".png",
			Format:  "RGBA8888",
		},
	}
	if len(doc.Pages) > 0 {
		out.Meta.Size = phaserSize{W: doc.Pages[0].Width, H: doc.Pages[0].Height}
	}
	for _, s := range doc.Sprites {
		out.Frames[s.Name] = phaserFrame{
			Frame:            phaserRect{X: s.X, Y: s.Y, W: s.Width, H: s.Height},
			Rotated:          s.Rotated,
			Trimmed:          s.Trimmed,
			SpriteSourceSize: phaserRect{X: s.TrimX, Y: s.TrimY, W: s.Width, H: s.Height},
			SourceSize:       phaserSize{W: s.OriginalWidth, H: s.OriginalHeight},
		}
	}

	phaserPath := path + "_phaser.json"
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode atlas metadata: %w", err)
	}
	if err := os.WriteFile(phaserPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write atlas metadata: %w", err)
	}
	return phaserPath, nil
}
