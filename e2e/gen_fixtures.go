//go:build ignore

// gen_fixtures creates original/compressed image pairs for the batch smoke
// test: <dir>/original holds lossless PNGs, <dir>/compressed holds JPEGs of
// the same images at several qualities.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	origDir := filepath.Join(dir, "original")
	compDir := filepath.Join(dir, "compressed")
	os.MkdirAll(filepath.Join(origDir, "cards"), 0o755)
	os.MkdirAll(filepath.Join(compDir, "cards"), 0o755)

	banner := gradient(400, 225)
	writePNG(filepath.Join(origDir, "banner.png"), banner)
	writeJPEG(filepath.Join(compDir, "banner.jpg"), banner, 85)

	// Cards at decreasing quality, so SSIM should fall card by card.
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("card-%d", i)
		card := solidWithBorder(200, 150, uint8(i*60))
		writePNG(filepath.Join(origDir, "cards", name+".png"), card)
		writeJPEG(filepath.Join(compDir, "cards", name+".jpg"), card, 90-i*25)
	}

	// Lossless copy: PSNR saturates at 100.
	flat := solidWithBorder(64, 64, 100)
	writePNG(filepath.Join(origDir, "flat.png"), flat)
	writePNG(filepath.Join(compDir, "flat.png"), flat)

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 5 pairs in %s\n", dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x ^ y) & 0xff),
				A: 255,
			})
		}
	}
	return img
}

func solidWithBorder(w, h int, base uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: base, G: base + 40, B: base + 80, A: 255}
			if x < 4 || x >= w-4 || y < 4 || y >= h-4 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA, quality int) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		panic(err)
	}
}
