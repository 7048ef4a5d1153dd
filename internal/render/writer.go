package render

import (
	"context"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-scenes/internal/core"
	"github.com/vovakirdan/tui-scenes/internal/engine"
)

// FrameWriter is a headless sink that rasterizes every Nth frame as plain
// text and writes it to W.
type FrameWriter struct {
	W      io.Writer
	Camera Camera
	Every  uint64

	screen *core.Screen
	raster *Rasterizer
}

// NewFrameWriter returns a sink drawing w x h frames to out.
// An every of 0 writes every frame.
func NewFrameWriter(out io.Writer, cam Camera, w, h int, every uint64) *FrameWriter {
	if every == 0 {
		every = 1
	}
	return &FrameWriter{
		W:      out,
		Camera: cam,
		Every:  every,
		screen: core.NewScreen(w, h),
		raster: NewRasterizer(),
	}
}

// Present implements engine.Sink.
func (fw *FrameWriter) Present(_ context.Context, f engine.Frame) error {
	if f.Tick%fw.Every != 0 {
		return nil
	}
	fw.raster.Draw(fw.screen, f.Objects, fw.Camera)
	_, err := fmt.Fprintf(fw.W, "-- tick %d  t=%.2f  angle=%.2f\n%s\n", f.Tick, f.Clock.T, f.Clock.Angle, fw.screen.String())
	if err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	return nil
}
