package softgl

import (
	"testing"

	"github.com/gogpu/softgl/gl"
)

func TestDisplayList_CompileDefers(t *testing.T) {
	c, _ := newTestContext(t)

	name := c.GenLists(1)
	if name == 0 {
		t.Fatal("GenLists(1) = 0")
	}
	if !c.IsList(name) {
		t.Fatal("IsList() = false after GenLists")
	}

	c.NewList(name, gl.COMPILE)
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(gl.DECAL))
	c.Enable(gl.TEXTURE_2D)
	c.EndList()
	checkError(t, c, gl.NO_ERROR)

	// Recording with COMPILE must not have touched the live state.
	if c.activeUnit.envMode != gl.MODULATE {
		t.Error("COMPILE recording mutated env mode")
	}
	if c.IsEnabled(gl.TEXTURE_2D) {
		t.Error("COMPILE recording enabled TEXTURE_2D")
	}

	c.CallList(name)
	checkError(t, c, gl.NO_ERROR)
	if c.activeUnit.envMode != gl.DECAL {
		t.Error("CallList did not apply the recorded env mode")
	}
	if !c.IsEnabled(gl.TEXTURE_2D) {
		t.Error("CallList did not apply the recorded Enable")
	}
}

func TestDisplayList_CompileAndExecute(t *testing.T) {
	c, _ := newTestContext(t)

	name := c.GenLists(1)
	c.NewList(name, gl.COMPILE_AND_EXECUTE)
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(gl.REPLACE))
	c.EndList()

	// Executed during recording.
	if c.activeUnit.envMode != gl.REPLACE {
		t.Error("COMPILE_AND_EXECUTE did not apply the call immediately")
	}

	// And again on replay.
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(gl.MODULATE))
	c.CallList(name)
	if c.activeUnit.envMode != gl.REPLACE {
		t.Error("CallList did not reapply the recorded call")
	}
}

func TestDisplayList_ValidationAtReplay(t *testing.T) {
	c, _ := newTestContext(t)

	name := c.GenLists(1)
	c.NewList(name, gl.COMPILE)
	// Recording accepts anything; the argument check happens on execution.
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, 0x7777)
	c.EndList()
	checkError(t, c, gl.NO_ERROR)

	c.CallList(name)
	checkError(t, c, gl.INVALID_ENUM)
}

func TestDisplayList_NestedCall(t *testing.T) {
	c, _ := newTestContext(t)

	inner := c.GenLists(1)
	c.NewList(inner, gl.COMPILE)
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(gl.BLEND))
	c.EndList()

	outer := c.GenLists(1)
	c.NewList(outer, gl.COMPILE)
	c.CallList(inner)
	c.EndList()

	c.CallList(outer)
	checkError(t, c, gl.NO_ERROR)
	if c.activeUnit.envMode != gl.BLEND {
		t.Error("nested CallList did not run the inner list")
	}
}

func TestDisplayList_Errors(t *testing.T) {
	c, _ := newTestContext(t)

	c.NewList(0, gl.COMPILE)
	checkError(t, c, gl.INVALID_VALUE)

	c.NewList(1, gl.Enum(0x9999))
	checkError(t, c, gl.INVALID_ENUM)

	c.EndList()
	checkError(t, c, gl.INVALID_OPERATION)

	// No nested recording.
	c.NewList(1, gl.COMPILE)
	c.NewList(2, gl.COMPILE)
	checkError(t, c, gl.INVALID_OPERATION)
	c.EndList()

	// Unknown names are ignored.
	c.CallList(987654)
	checkError(t, c, gl.NO_ERROR)
}

func TestDisplayList_DeleteLists(t *testing.T) {
	c, _ := newTestContext(t)

	first := c.GenLists(3)
	c.DeleteLists(first, 3)
	for i := uint32(0); i < 3; i++ {
		if c.IsList(first + i) {
			t.Errorf("IsList(%d) = true after delete", first+i)
		}
	}

	c.DeleteLists(first, -1)
	checkError(t, c, gl.INVALID_VALUE)
}

func TestGenLists_ContiguousAfterDelete(t *testing.T) {
	c, _ := newTestContext(t)

	first := c.GenLists(2)
	c.DeleteLists(first, 2)

	base := c.GenLists(3)
	if base == 0 {
		t.Fatal("GenLists(3) = 0")
	}
	for i := uint32(0); i < 3; i++ {
		if !c.IsList(base + i) {
			t.Errorf("IsList(%d) = false, want a contiguous range from %d", base+i, base)
		}
	}
}

func TestDisplayList_OldContentUntilEndList(t *testing.T) {
	c, _ := newTestContext(t)

	name := c.GenLists(1)
	c.NewList(name, gl.COMPILE)
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(gl.DECAL))
	c.EndList()

	// Re-recording must not clobber the list before EndList.
	c.NewList(name, gl.COMPILE)
	c.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, int32(gl.BLEND))
	if got := c.lists[name]; len(got.commands) != 1 {
		t.Fatalf("len(commands) mid-recording = %d, want 1", len(got.commands))
	}
	c.EndList()

	c.CallList(name)
	checkError(t, c, gl.NO_ERROR)
	if c.activeUnit.envMode != gl.BLEND {
		t.Error("CallList did not apply the re-recorded content")
	}
}

func TestCommandType_String(t *testing.T) {
	if got := CmdTexEnvf.String(); got != "TexEnvf" {
		t.Errorf("CmdTexEnvf.String() = %q", got)
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q", got)
	}
}
