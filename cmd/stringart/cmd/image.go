package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/katalvlaran/stringart/canvas"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// loadTarget decodes the image at path and resamples it to a size×size
// grayscale target. Non-square inputs are stretched.
func loadTarget(path string, size int) (*canvas.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}

	dst := image.NewGray(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	logger().Debug("target loaded", "path", path, "format", format,
		"source", src.Bounds().Size().String(), "size", size)

	return canvas.FromImage(dst)
}

// writePreview encodes g as PNG at path, upscaled by scale with
// nearest-neighbour sampling so single-pixel lines stay crisp.
func writePreview(path string, g *canvas.Gray, scale int) error {
	var img image.Image = g.ToImage()
	if scale > 1 {
		big := image.NewGray(image.Rect(0, 0, g.Width*scale, g.Height*scale))
		xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = big
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return f.Close()
}
