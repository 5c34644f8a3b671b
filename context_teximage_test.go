package softgl

import (
	"bytes"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
)

func TestTexImage2D_Validation(t *testing.T) {
	tests := []struct {
		name           string
		target         gl.Enum
		level          int32
		internalFormat int32
		width, height  int32
		border         int32
		format         gl.Enum
		dataType       gl.Enum
		wantErr        gl.Enum
	}{
		{
			name:   "valid rgba",
			target: gl.TEXTURE_2D, internalFormat: int32(gl.RGBA),
			width: 4, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.NO_ERROR,
		},
		{
			name:   "legacy numeric internal format",
			target: gl.TEXTURE_2D, internalFormat: 3,
			width: 4, height: 4, format: gl.RGB, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.NO_ERROR,
		},
		{
			name:   "non power of two",
			target: gl.TEXTURE_2D, internalFormat: int32(gl.RGBA),
			width: 3, height: 3, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_VALUE,
		},
		{
			name:   "negative width",
			target: gl.TEXTURE_2D, internalFormat: int32(gl.RGBA),
			width: -4, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_VALUE,
		},
		{
			name:   "oversized",
			target: gl.TEXTURE_2D, internalFormat: int32(gl.RGBA),
			width: 4096, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_VALUE,
		},
		{
			name:   "nonzero border",
			target: gl.TEXTURE_2D, internalFormat: int32(gl.RGBA),
			width: 4, height: 4, border: 1, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_VALUE,
		},
		{
			name:   "level out of range",
			target: gl.TEXTURE_2D, level: 40, internalFormat: int32(gl.RGBA),
			width: 4, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_VALUE,
		},
		{
			name:   "zero internal format",
			target: gl.TEXTURE_2D, internalFormat: 0,
			width: 4, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_ENUM,
		},
		{
			name:   "bad internal format",
			target: gl.TEXTURE_2D, internalFormat: 0x7777,
			width: 4, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_ENUM,
		},
		{
			name:   "bad client format",
			target: gl.TEXTURE_2D, internalFormat: int32(gl.RGBA),
			width: 4, height: 4, format: gl.Enum(0x7777), dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_ENUM,
		},
		{
			name:   "depth with byte type",
			target: gl.TEXTURE_2D, internalFormat: int32(gl.DEPTH_COMPONENT),
			width: 4, height: 4, format: gl.DEPTH_COMPONENT, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_OPERATION,
		},
		{
			name:   "unknown target",
			target: gl.Enum(0x1234), internalFormat: int32(gl.RGBA),
			width: 4, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.INVALID_ENUM,
		},
		{
			name:   "cube map is a no-op",
			target: gl.TEXTURE_CUBE_MAP, internalFormat: int32(gl.RGBA),
			width: 4, height: 4, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE,
			wantErr: gl.NO_ERROR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t)
			c.BindTexture(gl.TEXTURE_2D, 1)
			c.TexImage2D(tt.target, tt.level, tt.internalFormat,
				tt.width, tt.height, tt.border, tt.format, tt.dataType, nil)
			checkError(t, c, tt.wantErr)
		})
	}
}

func TestTexImage2D_RoundTrip(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)

	src := make([]byte, 4*4*4)
	for i := range src {
		src[i] = byte(i)
	}
	c.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), 4, 4, 0, gl.RGBA, gl.UNSIGNED_BYTE, src)
	checkError(t, c, gl.NO_ERROR)

	got := make([]byte, len(src))
	c.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, got)
	checkError(t, c, gl.NO_ERROR)

	if !bytes.Equal(got, src) {
		t.Errorf("GetTexImage = %v, want %v", got, src)
	}
}

func TestTexSubImage2D(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)

	// Updates require established storage.
	c.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 4))
	checkError(t, c, gl.INVALID_OPERATION)

	c.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), 4, 4, 0, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 4*4*4))
	checkError(t, c, gl.NO_ERROR)

	patch := bytes.Repeat([]byte{0xFF}, 2*2*4)
	c.TexSubImage2D(gl.TEXTURE_2D, 0, 1, 1, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, patch)
	checkError(t, c, gl.NO_ERROR)

	got := make([]byte, 4*4*4)
	c.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, got)
	texel := func(x, y int) byte { return got[(y*4+x)*4] }
	if texel(1, 1) != 0xFF || texel(2, 2) != 0xFF {
		t.Error("patched region not updated")
	}
	if texel(0, 0) != 0 || texel(3, 3) != 0 {
		t.Error("texels outside the patched region changed")
	}

	// The region must fit the established level dimensions.
	c.TexSubImage2D(gl.TEXTURE_2D, 0, 3, 3, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, patch)
	checkError(t, c, gl.INVALID_VALUE)
	c.TexSubImage2D(gl.TEXTURE_2D, 0, -1, 0, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, patch)
	checkError(t, c, gl.INVALID_VALUE)
}

func TestTexImage2D_UnpackRowLength(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)
	c.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	c.PixelStorei(gl.UNPACK_ROW_LENGTH, 8)

	// A 2x2 upload out of an 8-pixel-wide client buffer.
	// Red bytes of texels (0,0) and (0,1) in the client buffer.
	src := make([]byte, 8*2*4)
	src[0] = 0x10
	src[8*4] = 0x20
	c.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), 2, 2, 0, gl.RGBA, gl.UNSIGNED_BYTE, src)
	checkError(t, c, gl.NO_ERROR)

	c.PixelStorei(gl.PACK_ALIGNMENT, 1)
	got := make([]byte, 2*2*4)
	c.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, got)
	if got[0] != 0x10 {
		t.Errorf("texel (0,0) red = %#02x, want 0x10", got[0])
	}
	if got[2*4] != 0x20 {
		t.Errorf("texel (0,1) red = %#02x, want 0x20", got[2*4])
	}
}

func TestCopyTexImage2D(t *testing.T) {
	c, r := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)

	r.ClearColor(f32.Vec4{0, 0, 0, 1})
	r.SetColorPixel(10, 10, f32.Vec4{1, 0, 0, 1})

	c.CopyTexImage2D(gl.TEXTURE_2D, 0, 0, 10, 10, 4, 4, 0)
	checkError(t, c, gl.INVALID_ENUM)

	c.CopyTexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA), 10, 10, 4, 4, 0)
	checkError(t, c, gl.NO_ERROR)

	got := make([]byte, 4*4*4)
	c.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, got)
	if got[0] != 0xFF {
		t.Errorf("texel (0,0) red = %#02x, want 0xFF", got[0])
	}
	if got[4] != 0 {
		t.Errorf("texel (1,0) red = %#02x, want 0", got[4])
	}
}

func TestCopyTexSubImage2D_RequiresStorage(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)

	c.CopyTexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, 0, 0, 2, 2)
	checkError(t, c, gl.INVALID_OPERATION)
}

func TestGetTexImage_RequiresStorage(t *testing.T) {
	c, _ := newTestContext(t)
	c.BindTexture(gl.TEXTURE_2D, 1)

	c.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 16))
	checkError(t, c, gl.INVALID_OPERATION)
}
