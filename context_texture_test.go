package softgl

import (
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
)

func TestGenTextures(t *testing.T) {
	c, _ := newTestContext(t)

	names := c.GenTextures(4)
	if len(names) != 4 {
		t.Fatalf("GenTextures(4) returned %d names", len(names))
	}
	seen := make(map[uint32]bool)
	for _, name := range names {
		if name == 0 || seen[name] {
			t.Fatalf("GenTextures produced invalid or duplicate name %d", name)
		}
		seen[name] = true
	}

	// Generated names are reserved but not yet texture objects.
	if c.IsTexture(names[0]) {
		t.Error("IsTexture() = true for a never-bound name")
	}

	if got := c.GenTextures(-1); got != nil {
		t.Errorf("GenTextures(-1) = %v, want nil", got)
	}
	checkError(t, c, gl.INVALID_VALUE)
}

func TestBindTexture(t *testing.T) {
	c, _ := newTestContext(t)

	// Implicit creation on first bind of a fresh name.
	c.BindTexture(gl.TEXTURE_2D, 42)
	checkError(t, c, gl.NO_ERROR)
	if !c.IsTexture(42) {
		t.Error("IsTexture(42) = false after bind")
	}

	// Name 0 rebinds the default texture.
	c.BindTexture(gl.TEXTURE_2D, 0)
	checkError(t, c, gl.NO_ERROR)
	if c.activeUnit.texture2D != c.defaultTexture2D {
		t.Error("binding name 0 did not restore the default texture")
	}

	// Unknown targets fail, known-but-unsupported targets are a no-op.
	c.BindTexture(gl.Enum(0x1234), 42)
	checkError(t, c, gl.INVALID_ENUM)
	c.BindTexture(gl.TEXTURE_3D, 42)
	checkError(t, c, gl.NO_ERROR)
}

func TestDeleteTextures_SweepsAllUnits(t *testing.T) {
	c, _ := newTestContext(t)

	name := c.GenTextures(1)[0]
	c.BindTexture(gl.TEXTURE_2D, name)
	c.ActiveTexture(gl.TEXTURE1)
	c.BindTexture(gl.TEXTURE_2D, name)
	c.ActiveTexture(gl.TEXTURE0)

	c.DeleteTextures([]uint32{name})
	checkError(t, c, gl.NO_ERROR)

	if c.IsTexture(name) {
		t.Error("IsTexture() = true after delete")
	}
	for i := range c.units {
		if c.units[i].texture2D != c.defaultTexture2D {
			t.Errorf("unit %d still references the deleted texture", i)
		}
	}

	// Name 0 and unknown names are silently skipped.
	c.DeleteTextures([]uint32{0, 9999})
	checkError(t, c, gl.NO_ERROR)
}

func TestTexParameter(t *testing.T) {
	tests := []struct {
		name    string
		pname   gl.Enum
		param   float32
		wantErr gl.Enum
	}{
		{name: "min filter mipmap", pname: gl.TEXTURE_MIN_FILTER, param: float32(gl.LINEAR_MIPMAP_LINEAR), wantErr: gl.NO_ERROR},
		{name: "min filter bad", pname: gl.TEXTURE_MIN_FILTER, param: float32(gl.REPEAT), wantErr: gl.INVALID_ENUM},
		{name: "mag filter linear", pname: gl.TEXTURE_MAG_FILTER, param: float32(gl.LINEAR), wantErr: gl.NO_ERROR},
		{name: "mag filter mipmap rejected", pname: gl.TEXTURE_MAG_FILTER, param: float32(gl.NEAREST_MIPMAP_LINEAR), wantErr: gl.INVALID_ENUM},
		{name: "wrap s mirrored", pname: gl.TEXTURE_WRAP_S, param: float32(gl.MIRRORED_REPEAT), wantErr: gl.NO_ERROR},
		{name: "wrap t clamp to edge", pname: gl.TEXTURE_WRAP_T, param: float32(gl.CLAMP_TO_EDGE), wantErr: gl.NO_ERROR},
		{name: "wrap bad", pname: gl.TEXTURE_WRAP_S, param: float32(gl.NEAREST), wantErr: gl.INVALID_ENUM},
		{name: "unknown pname", pname: gl.Enum(0xF00D), param: 0, wantErr: gl.INVALID_ENUM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t)
			c.BindTexture(gl.TEXTURE_2D, 1)
			c.TexParameterf(gl.TEXTURE_2D, tt.pname, tt.param)
			checkError(t, c, tt.wantErr)
		})
	}
}

func TestTexParameter_RejectedValueLeavesStateUnchanged(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)

	c.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, float32(gl.NEAREST))
	c.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, float32(gl.REPEAT))
	checkError(t, c, gl.INVALID_ENUM)

	if got := c.activeUnit.texture2D.sampler.minFilter; got != gl.NEAREST {
		t.Errorf("min filter = %#04x after rejected set, want NEAREST", uint32(got))
	}
}

func TestTexParameterfv_BorderColor(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)

	want := f32.Vec4{0.25, 0.5, 0.75, 1}
	c.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, want)
	checkError(t, c, gl.NO_ERROR)
	if got := c.activeUnit.texture2D.sampler.borderColor; got != want {
		t.Errorf("border color = %v, want %v", got, want)
	}

	c.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, want)
	checkError(t, c, gl.INVALID_ENUM)
}

func TestTexParameter_SharedAcrossUnits(t *testing.T) {
	c, _ := newTestContext(t)

	// The same object bound to two units shares parameter state.
	c.BindTexture(gl.TEXTURE_2D, 7)
	c.ActiveTexture(gl.TEXTURE1)
	c.BindTexture(gl.TEXTURE_2D, 7)
	c.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, float32(gl.NEAREST))

	c.ActiveTexture(gl.TEXTURE0)
	if got := c.activeUnit.texture2D.sampler.magFilter; got != gl.NEAREST {
		t.Errorf("mag filter via unit 0 = %#04x, want NEAREST", uint32(got))
	}
}

func TestGetTexLevelParameter(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)
	c.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), 8, 4, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	checkError(t, c, gl.NO_ERROR)

	tests := []struct {
		name  string
		level int32
		pname gl.Enum
		want  int32
	}{
		{name: "width level 0", level: 0, pname: gl.TEXTURE_WIDTH, want: 8},
		{name: "height level 0", level: 0, pname: gl.TEXTURE_HEIGHT, want: 4},
		{name: "width level 1", level: 1, pname: gl.TEXTURE_WIDTH, want: 4},
		{name: "height clamps at 1", level: 3, pname: gl.TEXTURE_HEIGHT, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.GetTexLevelParameter(gl.TEXTURE_2D, tt.level, tt.pname); got != tt.want {
				t.Errorf("GetTexLevelParameter(level=%d) = %d, want %d", tt.level, got, tt.want)
			}
			checkError(t, c, gl.NO_ERROR)
		})
	}

	c.GetTexLevelParameter(gl.TEXTURE_2D, -1, gl.TEXTURE_WIDTH)
	checkError(t, c, gl.INVALID_VALUE)
}
