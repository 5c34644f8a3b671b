package softgl

import (
	"testing"

	"github.com/gogpu/softgl/gl"
)

func TestTexEnvf(t *testing.T) {
	tests := []struct {
		name    string
		target  gl.Enum
		pname   gl.Enum
		param   float32
		wantErr gl.Enum
	}{
		{name: "env mode modulate", target: gl.TEXTURE_ENV, pname: gl.TEXTURE_ENV_MODE, param: float32(gl.MODULATE), wantErr: gl.NO_ERROR},
		{name: "env mode combine", target: gl.TEXTURE_ENV, pname: gl.TEXTURE_ENV_MODE, param: float32(gl.COMBINE), wantErr: gl.NO_ERROR},
		{name: "env mode bad", target: gl.TEXTURE_ENV, pname: gl.TEXTURE_ENV_MODE, param: float32(gl.NEAREST), wantErr: gl.INVALID_ENUM},

		{name: "rgb scale 2", target: gl.TEXTURE_ENV, pname: gl.RGB_SCALE, param: 2, wantErr: gl.NO_ERROR},
		{name: "rgb scale 3", target: gl.TEXTURE_ENV, pname: gl.RGB_SCALE, param: 3, wantErr: gl.INVALID_VALUE},
		{name: "alpha scale 4", target: gl.TEXTURE_ENV, pname: gl.ALPHA_SCALE, param: 4, wantErr: gl.NO_ERROR},
		{name: "alpha scale 0", target: gl.TEXTURE_ENV, pname: gl.ALPHA_SCALE, param: 0, wantErr: gl.INVALID_VALUE},

		{name: "combine rgb dot3", target: gl.TEXTURE_ENV, pname: gl.COMBINE_RGB, param: float32(gl.DOT3_RGB), wantErr: gl.NO_ERROR},
		{name: "combine alpha subtract", target: gl.TEXTURE_ENV, pname: gl.COMBINE_ALPHA, param: float32(gl.SUBTRACT), wantErr: gl.NO_ERROR},
		// Dot3 is an RGB-only combinator.
		{name: "combine alpha dot3", target: gl.TEXTURE_ENV, pname: gl.COMBINE_ALPHA, param: float32(gl.DOT3_RGB), wantErr: gl.INVALID_ENUM},

		{name: "operand rgb color", target: gl.TEXTURE_ENV, pname: gl.OPERAND1_RGB, param: float32(gl.ONE_MINUS_SRC_COLOR), wantErr: gl.NO_ERROR},
		{name: "operand alpha color rejected", target: gl.TEXTURE_ENV, pname: gl.OPERAND1_ALPHA, param: float32(gl.ONE_MINUS_SRC_COLOR), wantErr: gl.INVALID_ENUM},
		{name: "operand alpha", target: gl.TEXTURE_ENV, pname: gl.OPERAND2_ALPHA, param: float32(gl.SRC_ALPHA), wantErr: gl.NO_ERROR},

		{name: "source previous", target: gl.TEXTURE_ENV, pname: gl.SRC0_RGB, param: float32(gl.PREVIOUS), wantErr: gl.NO_ERROR},
		{name: "source crossbar stage", target: gl.TEXTURE_ENV, pname: gl.SRC2_ALPHA, param: float32(gl.TEXTURE5), wantErr: gl.NO_ERROR},
		{name: "source crossbar last stage", target: gl.TEXTURE_ENV, pname: gl.SRC1_RGB, param: float32(gl.TEXTURE31), wantErr: gl.NO_ERROR},
		{name: "source bad", target: gl.TEXTURE_ENV, pname: gl.SRC0_ALPHA, param: float32(gl.MODULATE), wantErr: gl.INVALID_ENUM},

		{name: "lod bias", target: gl.TEXTURE_FILTER_CONTROL, pname: gl.TEXTURE_LOD_BIAS, param: -1.5, wantErr: gl.NO_ERROR},
		{name: "filter control bad pname", target: gl.TEXTURE_FILTER_CONTROL, pname: gl.TEXTURE_ENV_MODE, param: 0, wantErr: gl.INVALID_ENUM},
		{name: "bad target", target: gl.TEXTURE_2D, pname: gl.TEXTURE_ENV_MODE, param: float32(gl.MODULATE), wantErr: gl.INVALID_ENUM},
		{name: "bad pname", target: gl.TEXTURE_ENV, pname: gl.Enum(0x9999), param: 0, wantErr: gl.INVALID_ENUM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t)
			c.TexEnvf(tt.target, tt.pname, tt.param)
			checkError(t, c, tt.wantErr)
		})
	}
}

func TestTexEnvf_RejectedValueLeavesStateUnchanged(t *testing.T) {
	c, _ := newTestContext(t)

	c.TexEnvi(gl.TEXTURE_ENV, gl.COMBINE_ALPHA, int32(gl.ADD_SIGNED))
	c.TexEnvi(gl.TEXTURE_ENV, gl.COMBINE_ALPHA, int32(gl.DOT3_RGBA))
	checkError(t, c, gl.INVALID_ENUM)

	if got := c.activeUnit.alphaCombinator; got != gl.ADD_SIGNED {
		t.Errorf("alpha combinator = %#04x after rejected set, want ADD_SIGNED", uint32(got))
	}
}

func TestTexEnvf_PerUnit(t *testing.T) {
	c, _ := newTestContext(t)

	c.ActiveTexture(gl.TEXTURE2)
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(gl.DECAL))
	checkError(t, c, gl.NO_ERROR)

	if got := c.units[2].envMode; got != gl.DECAL {
		t.Errorf("unit 2 env mode = %#04x, want DECAL", uint32(got))
	}
	if got := c.units[0].envMode; got != gl.MODULATE {
		t.Errorf("unit 0 env mode = %#04x, want default MODULATE", uint32(got))
	}
}

func TestTexEnvf_OperandSlots(t *testing.T) {
	c, _ := newTestContext(t)

	c.TexEnvi(gl.TEXTURE_ENV, gl.OPERAND2_RGB, int32(gl.ONE_MINUS_SRC_ALPHA))
	checkError(t, c, gl.NO_ERROR)

	unit := c.activeUnit
	if got := unit.rgbOperand[2]; got != gl.ONE_MINUS_SRC_ALPHA {
		t.Errorf("rgb operand 2 = %#04x, want ONE_MINUS_SRC_ALPHA", uint32(got))
	}
	// Defaults intact in the untouched slots.
	if got := unit.rgbOperand[0]; got != gl.SRC_COLOR {
		t.Errorf("rgb operand 0 = %#04x, want default SRC_COLOR", uint32(got))
	}
}
