package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"

	"spheretracer/pkg/core"
	"spheretracer/pkg/renderer"
	"spheretracer/pkg/scene"
)

const aspect = 16.0 / 9.0

func main() {
	out := flag.String("out", "render.png", "Output image path")
	width := flag.Int("width", 400, "Image width in pixels (height follows 16:9)")
	samples := flag.Int("samples", 32, "Supersamples per pixel")
	depth := flag.Int("depth", 40, "Maximum ray bounce depth")
	seed := flag.Int64("seed", 42, "Random seed")
	preview := flag.Bool("preview", false, "Also write a quarter-size preview image")
	publish := flag.Bool("publish", false, "Upload the render to S3 (S3_* env vars)")
	debug := flag.Bool("debug", false, "Log every hit and scatter (very verbose)")
	flag.Parse()

	height := int(float64(*width) / aspect)

	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)
	focusDist := lookAt.Subtract(lookFrom).Length()
	camera := renderer.NewCamera(aspect, 20, 2.0, focusDist, lookFrom, lookAt, core.NewVec3(0, 1, 0))

	config := renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Gamma:           2.2,
	}
	r := renderer.NewRenderer(scene.NewDefaultScene(), camera, config, *seed)
	r.SetLogger(log.Default())
	if *debug {
		r.SetDebugLogger(log.Default())
	}

	log.Printf("Rendering %dx%d, %d samples, depth %d", *width, height, *samples, *depth)
	start := time.Now()
	fb := r.Render(*width, height)
	log.Printf("Render finished in %v", time.Since(start))

	img := framebufferToImage(fb)
	if err := writePNG(*out, img); err != nil {
		log.Fatalf("Failed to write render: %v", err)
	}
	log.Printf("Wrote %s", *out)

	if *preview {
		thumbPath := previewPath(*out)
		thumb := resize.Resize(uint(fb.Width/4), 0, img, resize.Lanczos3)
		if err := writePNG(thumbPath, thumb); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Wrote %s", thumbPath)
	}

	if *publish {
		if err := publishRender(*out); err != nil {
			log.Fatalf("Failed to publish render: %v", err)
		}
	}
}

// framebufferToImage wraps the raw RGB bytes into an image for encoding
func framebufferToImage(fb *renderer.Framebuffer) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i := 0; i < fb.Height; i++ {
		for j := 0; j < fb.Width; j++ {
			src := (i*fb.Width + j) * 3
			dst := img.PixOffset(j, i)
			img.Pix[dst+0] = fb.Buf[src+0]
			img.Pix[dst+1] = fb.Buf[src+1]
			img.Pix[dst+2] = fb.Buf[src+2]
			img.Pix[dst+3] = 255
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// previewPath derives the preview filename: render.png -> render_preview.png
func previewPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_preview" + ext
}
