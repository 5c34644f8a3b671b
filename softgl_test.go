package softgl

import (
	"testing"

	"github.com/gogpu/softgl/gl"
	"github.com/gogpu/softgl/gpu"
	"github.com/gogpu/softgl/softpipe"
)

// recordingRasterizer wraps the reference backend and counts publish calls,
// so tests can observe when state actually crosses the device boundary.
type recordingRasterizer struct {
	*softpipe.Rasterizer

	samplerConfigCalls int
	setOptionsCalls    int
}

func newRecordingRasterizer() *recordingRasterizer {
	return &recordingRasterizer{Rasterizer: softpipe.New(64, 64)}
}

func (r *recordingRasterizer) SetSamplerConfig(unit int, config gpu.SamplerConfig) {
	r.samplerConfigCalls++
	r.Rasterizer.SetSamplerConfig(unit, config)
}

func (r *recordingRasterizer) SetOptions(opts gpu.RasterizerOptions) {
	r.setOptionsCalls++
	r.Rasterizer.SetOptions(opts)
}

func newTestContext(t *testing.T) (*Context, *recordingRasterizer) {
	t.Helper()
	r := newRecordingRasterizer()
	c, err := NewContext(WithRasterizer(r))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return c, r
}

// checkError drains the pending error and fails the test unless it matches.
func checkError(t *testing.T, c *Context, want gl.Enum) {
	t.Helper()
	if got := c.GetError(); got != want {
		t.Errorf("GetError() = %#04x, want %#04x", uint32(got), uint32(want))
	}
}
