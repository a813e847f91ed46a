package renderer

import (
	"math/rand"

	"spheretracer/pkg/core"
	"spheretracer/pkg/integrator"
	"spheretracer/pkg/scene"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of jittered rays per pixel
	MaxDepth        int // Maximum ray bounce depth
	Gamma           float64
}

// DefaultSamplingConfig returns the demo render settings
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 32,
		MaxDepth:        40,
		Gamma:           2.2,
	}
}

// Renderer drives the frame: for each pixel it averages independently
// jittered supersamples, gamma-corrects, and quantizes into a framebuffer
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *integrator.PathTracer
	config     SamplingConfig
	random     *rand.Rand
	logger     core.Logger
}

// NewRenderer creates a renderer with a seeded random source
func NewRenderer(s *scene.Scene, camera *Camera, config SamplingConfig, seed int64) *Renderer {
	return &Renderer{
		scene:      s,
		camera:     camera,
		integrator: integrator.NewPathTracer(),
		config:     config,
		random:     rand.New(rand.NewSource(seed)),
	}
}

// SetLogger enables per-scanline progress reporting
func (r *Renderer) SetLogger(logger core.Logger) {
	r.logger = logger
}

// SetDebugLogger enables per-bounce trace output from the integrator
func (r *Renderer) SetDebugLogger(logger core.Logger) {
	r.integrator.Debug = logger
}

// Render traces the whole frame into a fresh framebuffer
func (r *Renderer) Render(width, height int) *Framebuffer {
	fb := NewFramebuffer(width, height)
	invSamples := 1.0 / float64(r.config.SamplesPerPixel)

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			accum := core.Vec3{}
			for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
				// Jittered sub-pixel offsets; v flipped so row 0 is the top
				s := (float64(j) + r.random.Float64()) / float64(width-1)
				t := 1.0 - (float64(i)+r.random.Float64())/float64(height-1)

				ray := r.camera.Ray(s, t, r.random)
				accum = accum.Add(r.integrator.RayColor(ray, r.scene, r.config.MaxDepth, r.random))
			}

			color := accum.Multiply(invSamples).GammaCorrect(r.config.Gamma)
			fb.Write(i, j, color)
		}

		if r.logger != nil {
			r.logger.Printf("scanline %d/%d", i+1, height)
		}
	}

	return fb
}
