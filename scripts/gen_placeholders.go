//go:build ignore

// gen_placeholders.go – run with:
//
//	go run scripts/gen_placeholders.go
//
// Writes assets/ui/*.png 9-slice skins and one assets/icons/*.png per catalog
// item. Icons are filled with the item's rarity colour so slots are readable
// before real art lands. Slice sizes must match internal/ui/theme/textures.go.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/deep-mine/internal/items"
	"github.com/appengine-ltd/deep-mine/internal/ui/theme"
)

func main() {
	// panel_9slice.png – 48×48, slice=8
	genTexture("assets/ui/panel_9slice.png", 48, 48, 8,
		color.RGBA{0x3A, 0x32, 0x2B, 0xFF}, // border: shaft timber
		color.RGBA{0x1B, 0x1A, 0x1D, 0xFF}, // centre: rock dark
	)

	// slot_9slice.png – 32×32, slice=6
	genTexture("assets/ui/slot_9slice.png", 32, 32, 6,
		color.RGBA{0x55, 0x4C, 0x40, 0xFF}, // border: worn iron
		color.RGBA{0x12, 0x12, 0x14, 0xFF}, // centre: empty tray
	)

	catalog := items.DefaultCatalog()
	for _, name := range catalog.Names() {
		it, _ := catalog.ByName(name)
		if it.Icon == "" {
			continue
		}
		c := theme.RarityColor(it.Rarity)
		genTexture(it.Icon, 64, 64, 4,
			color.RGBA{0x10, 0x10, 0x10, 0xFF},
			color.RGBA{c.R, c.G, c.B, 0xFF},
		)
	}

	log.Println("Placeholder textures written to assets/")
}

// genTexture writes a PNG of size w×h.
// The outer 'slice' pixels on all four sides are coloured 'border'.
// The remaining centre is coloured 'centre'.
func genTexture(path string, w, h, slice int, border, centre color.RGBA) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < slice || y < slice || x >= w-slice || y >= h-slice {
				img.SetRGBA(x, y, border)
			} else {
				img.SetRGBA(x, y, centre)
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s (%dx%d slice=%d)", path, w, h, slice)
}
