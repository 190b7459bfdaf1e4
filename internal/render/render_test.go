package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestDrawFillsRectangles(t *testing.T) {
	fill := color.NRGBA{R: 43, G: 48, B: 197, A: 255}
	rects := []image.Rectangle{
		image.Rect(0, 0, 50, 50),
		image.Rect(200, 200, 250, 250),
	}

	img := Draw(250, 250, fill, rects)

	if got := img.Bounds(); got != image.Rect(0, 0, 250, 250) {
		t.Fatalf("canvas bounds = %v", got)
	}
	if got := img.NRGBAAt(25, 25); got != fill {
		t.Errorf("inside first rect: got %+v, want %+v", got, fill)
	}
	if got := img.NRGBAAt(249, 249); got != fill {
		t.Errorf("inside last rect: got %+v, want %+v", got, fill)
	}

	// Max is exclusive: (50,0) belongs to the neighboring cell.
	if got := img.NRGBAAt(50, 0); got != background {
		t.Errorf("at (50,0): got %+v, want background", got)
	}
	if got := img.NRGBAAt(125, 125); got != background {
		t.Errorf("unpainted cell: got %+v, want background", got)
	}
}

func TestDrawNoRectangles(t *testing.T) {
	img := Draw(250, 250, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, nil)
	if got := img.NRGBAAt(100, 100); got != background {
		t.Errorf("empty pixel map: got %+v, want background", got)
	}
}

func TestEncodePNG(t *testing.T) {
	fill := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	img := Draw(250, 250, fill, []image.Rectangle{image.Rect(50, 0, 100, 50)})

	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	r, g, b, _ := decoded.At(75, 25).RGBA()
	if uint8(r>>8) != fill.R || uint8(g>>8) != fill.G || uint8(b>>8) != fill.B {
		t.Errorf("decoded pixel = (%d,%d,%d), want %+v", r>>8, g>>8, b>>8, fill)
	}
}
