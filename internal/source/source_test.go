package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 180, B: 50, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.png", true},
		{"a.webp", true},
		{"a.bmp", true},
		{"a.tiff", true},
		{"a.pdf", false},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsImage(tt.name); got != tt.want {
			t.Errorf("IsImage(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestListImagesSorted(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4)
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0644)
	os.Mkdir(filepath.Join(dir, "sub.png"), 0755)

	paths, err := ListImages(dir)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 images, got %v", paths)
	}
	if filepath.Base(paths[0]) != "a.png" || filepath.Base(paths[1]) != "b.png" {
		t.Errorf("Expected sorted order, got %v", paths)
	}
}

func TestFindLatestImage(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "older.png")
	newer := filepath.Join(dir, "newer.png")
	writePNG(t, older, 4, 4)
	writePNG(t, newer, 4, 4)

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	latest, err := FindLatestImage(dir)
	if err != nil {
		t.Fatalf("FindLatestImage failed: %v", err)
	}
	if latest != newer {
		t.Errorf("Expected %s, got %s", newer, latest)
	}
}

func TestFindLatestImageEmpty(t *testing.T) {
	if _, err := FindLatestImage(t.TempDir()); err == nil {
		t.Error("Expected error for a directory without images")
	}
}

func TestImageSource(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 30, 20)

	// bmp goes through the x/image decoder
	f, err := os.Create(filepath.Join(dir, "b.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 6))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	src, err := NewImageSource(dir)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	if src.Count() != 2 {
		t.Fatalf("Expected 2 images, got %d", src.Count())
	}

	if filepath.Base(src.Path(0)) != "a.png" {
		t.Errorf("Expected a.png first, got %s", src.Path(0))
	}
	first, err := src.Load(0)
	if err != nil || first.Bounds().Dx() != 30 || first.Bounds().Dy() != 20 {
		t.Errorf("Expected a 30x20 png (%v)", err)
	}

	img, err := src.Load(1)
	if err != nil {
		t.Fatalf("Load bmp failed: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("Unexpected bmp bounds %v", img.Bounds())
	}

	single, err := NewImageSource(filepath.Join(dir, "a.png"))
	if err != nil || single.Count() != 1 {
		t.Errorf("Expected single-file source, got %v (%v)", single, err)
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.png")
	os.WriteFile(bad, []byte("not an image"), 0644)
	if _, err := LoadImage(bad); err == nil {
		t.Error("Expected decode error")
	}
}

func TestFit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))

	tests := []struct {
		name    string
		maxSide int
		wantW   int
		wantH   int
	}{
		{"disabled", 0, 400, 200},
		{"already small", 500, 400, 200},
		{"halved", 200, 200, 100},
		{"landscape", 100, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(img, tt.maxSide).Bounds()
			if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("Fit(%d) = %dx%d, want %dx%d", tt.maxSide, got.Dx(), got.Dy(), tt.wantW, tt.wantH)
			}
		})
	}

	if Fit(nil, 100) != nil {
		t.Error("Expected nil passthrough")
	}
}
