// Package glyph renders CJK characters as large half-block art for
// terminals, so a looked-up character can be inspected stroke by stroke.
package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Common CJK font locations, probed in order.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

// Renderer rasterizes single characters with a loaded CJK font face.
type Renderer struct {
	face font.Face
}

// NewRenderer probes the system font locations and returns a Renderer,
// or an error when no usable CJK font is found.
func NewRenderer() (*Renderer, error) {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			return &Renderer{face: face}, nil
		}
	}
	return nil, fmt.Errorf("no CJK font found in system font locations")
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face
		}
	}
	return nil
}

// Render draws r as half-block art (▀▄█) sized cols x rows terminal cells.
func (rd *Renderer) Render(r rune, cols, rows int) string {
	bounds, _, _ := rd.face.GlyphBounds(r)
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const padding = 4
	srcW := max(glyphW+padding*2, 64)
	srcH := max(glyphH+padding*2, 64)

	src := image.NewGray(image.Rect(0, 0, srcW, srcH))
	draw.Draw(src, src.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: rd.face,
		Dot:  fixed.P((srcW-glyphW)/2, srcH-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(r))

	// Half blocks pack two pixel rows per terminal row.
	scaled := scale(src, cols, rows*2)
	return blocks(scaled, cols, rows)
}

// scale shrinks src to dstW x dstH with area averaging.
func scale(src *image.Gray, dstW, dstH int) *image.Gray {
	srcW := src.Bounds().Max.X
	srcH := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstW, dstH))

	xr := float64(srcW) / float64(dstW)
	yr := float64(srcH) / float64(dstH)

	for dy := 0; dy < dstH; dy++ {
		for dx := 0; dx < dstW; dx++ {
			x1, y1 := int(float64(dx)*xr), int(float64(dy)*yr)
			x2, y2 := min(int(float64(dx+1)*xr), srcW), min(int(float64(dy+1)*yr), srcH)

			sum, count := 0, 0
			for y := y1; y < y2; y++ {
				for x := x1; x < x2; x++ {
					sum += int(src.GrayAt(x, y).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

func blocks(img *image.Gray, cols, rows int) string {
	const threshold = 40
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
