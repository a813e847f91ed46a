package renderer

import "spheretracer/pkg/core"

// Framebuffer is an RGB, 8-bit-per-channel, row-major pixel buffer,
// top row first
type Framebuffer struct {
	Width  int
	Height int
	Buf    []byte
}

// NewFramebuffer creates a zeroed framebuffer of width*height*3 bytes
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Buf:    make([]byte, width*height*3),
	}
}

// Write quantizes a color into the pixel at row i, column j by truncating
// 255*channel toward zero. Channels outside [0,1] are not clamped and
// misbehave at the integer cast boundary; upstream averaging and gamma
// keep well-formed renders inside the range.
func (fb *Framebuffer) Write(i, j int, color core.Vec3) {
	p := (i*fb.Width + j) * 3
	fb.Buf[p+0] = byte(255 * color.X)
	fb.Buf[p+1] = byte(255 * color.Y)
	fb.Buf[p+2] = byte(255 * color.Z)
}
