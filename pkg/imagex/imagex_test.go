package imagex

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 50 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDownsizeClampsLongestEdge(t *testing.T) {
	tests := []struct {
		name         string
		inW, inH     int
		wantW, wantH int
	}{
		{"landscape over bound", 2000, 1000, 1024, 512},
		{"portrait over bound", 1000, 2000, 512, 1024},
		{"square over bound", 2048, 2048, 1024, 1024},
		{"already inside bound", 640, 480, 640, 480},
		{"exactly at bound", 1024, 768, 1024, 768},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Downsize(bytes.NewReader(pngBytes(t, tc.inW, tc.inH)))
			if err != nil {
				t.Fatal(err)
			}
			w, h, err := Bounds(out)
			if err != nil {
				t.Fatal(err)
			}
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("downsized to %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestDownsizeEncodesJPEG(t *testing.T) {
	out, err := Downsize(bytes.NewReader(pngBytes(t, 100, 100)))
	if err != nil {
		t.Fatal(err)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if format != "jpeg" {
		t.Fatalf("format = %q, want jpeg", format)
	}
}

func TestDownsizeRejectsGarbage(t *testing.T) {
	_, err := Downsize(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
}

func TestBoundsRejectsGarbage(t *testing.T) {
	_, _, err := Bounds([]byte{0x00, 0x01})
	if !errors.Is(err, ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
}
