package render

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	hoop "engineeringcalcs/internal/calc/hoop"
)

func resolvedSide(t *testing.T) hoop.Side {
	t.Helper()
	d, err := hoop.LookupDataset(hoop.DefaultDataset)
	if err != nil {
		t.Fatalf("LookupDataset: %v", err)
	}
	return d.Resolve().Offside
}

func TestSide(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "offside"
	img, err := Side(resolvedSide(t), opts)
	if err != nil {
		t.Fatalf("Side: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != opts.Width || b.Dy() != opts.Height {
		t.Fatalf("unexpected bounds %v", b)
	}

	// corner stays background white
	r, g, bl, _ := img.At(0, opts.Height-1).RGBA()
	if r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Fatalf("expected white background, got %d %d %d", r, g, bl)
	}

	// the rear leg centre is covered by the translucent leg fill
	cx, cy := opts.Width/2, opts.Height/2+int(opts.Spacing.RearToFrontLine/2)
	r, g, bl, _ = img.At(cx, cy).RGBA()
	if r == 0xffff && g == 0xffff && bl == 0xffff {
		t.Fatal("expected rear leg drawn at centre")
	}
}

func TestSideLegOutline(t *testing.T) {
	opts := DefaultOptions()
	side := resolvedSide(t)
	img, err := Side(side, opts)
	if err != nil {
		t.Fatalf("Side: %v", err)
	}
	holes, err := hoop.Layout(side, opts.Spacing, float64(opts.Width)/2, float64(opts.Height)/2)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	rear := holes[2]

	// walk down through the bottom of the rear leg outline: it is the same
	// light grey as the plumb hole, never dark
	x := int(rear.Offset.X)
	drawn := false
	for y := int(rear.Offset.Y+rear.Radius) - 3; y <= int(rear.Offset.Y+rear.Radius)+3; y++ {
		r, g, b, _ := img.At(x, y).RGBA()
		if r < 0x9000 || g < 0x9000 || b < 0x9000 {
			t.Fatalf("dark outline pixel at %d,%d: %x %x %x", x, y, r, g, b)
		}
		if r != 0xffff || g != 0xffff || b != 0xffff {
			drawn = true
		}
	}
	if !drawn {
		t.Fatal("no outline found below the rear leg")
	}
}

func TestSideUnresolved(t *testing.T) {
	_, err := Side(hoop.Side{}, DefaultOptions())
	if !errors.Is(err, hoop.ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	img, err := Side(resolvedSide(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Side: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatalf("Encode png: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("png.Decode: %v", err)
	}

	buf.Reset()
	if err := Encode(&buf, img, WebP); err != nil {
		t.Fatalf("Encode webp: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) {
		t.Fatalf("expected RIFF header, got % x", buf.Bytes()[:4])
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("WEBP"); err != nil || f != WebP {
		t.Fatalf("got %q %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Fatal("expected error")
	}
}
