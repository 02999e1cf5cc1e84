package render

import (
	"fmt"
	"image"
	"io"
	"strings"

	hoop "engineeringcalcs/internal/calc/hoop"

	"github.com/HugoSmits86/nativewebp"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case PNG:
		return PNG, nil
	case WebP:
		return WebP, nil
	}
	return "", fmt.Errorf("unknown image format %q", s)
}

func (f Format) Ext() string { return "." + string(f) }

type Options struct {
	Width   int
	Height  int
	Spacing hoop.Spacing
	Title   string
}

func DefaultOptions() Options {
	return Options{Width: 500, Height: 400, Spacing: hoop.DefaultSpacing()}
}

const lineHeight = 18

// Side draws the plumb and offset holes of one resolved hoop side, one
// canvas pixel per millimetre.
func Side(side hoop.Side, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	holes, err := hoop.Layout(side, opts.Spacing, float64(opts.Width)/2, float64(opts.Height)/2)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	if opts.Title != "" {
		dc.SetHexColor("#333333")
		dc.DrawString(opts.Title, 8, lineHeight)
	}

	for _, h := range holes {
		drawHole(dc, h.Plumb, h.Radius)
		drawLeg(dc, h.Offset, h.Radius)
		drawLabel(dc, h)
	}
	return dc.Image(), nil
}

func drawHole(dc *gg.Context, p hoop.Point, r float64) {
	dc.DrawCircle(p.X, p.Y, r)
	dc.SetHexColor("#ffffff")
	dc.FillPreserve()
	dc.SetLineWidth(1)
	dc.SetHexColor("#e0e0e0")
	dc.Stroke()
}

func drawLeg(dc *gg.Context, p hoop.Point, r float64) {
	dc.DrawCircle(p.X, p.Y, r)
	dc.SetRGBA255(50, 200, 200, 77)
	dc.FillPreserve()
	dc.SetLineWidth(1)
	dc.SetHexColor("#e0e0e0")
	dc.Stroke()
}

// basicfont has no arrow glyphs, so labels use the word form.
func drawLabel(dc *gg.Context, h hoop.HolePosition) {
	dc.SetHexColor("#666666")
	dc.DrawString(h.X.ASCII(), h.Label.X, h.Label.Y)
	dc.DrawString(h.Y.ASCII(), h.Label.X, h.Label.Y+lineHeight)
}

func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return gg.NewContextForImage(img).EncodePNG(w)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("unknown image format %q", f)
}
