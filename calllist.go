package softgl

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softgl/gl"
)

// maxListNesting bounds CallList recursion during replay, matching the GL
// minimum display list nesting depth.
const maxListNesting = 64

// CommandType identifies the type of a recorded command.
type CommandType uint8

// Command types, one per deferrable entry point.
const (
	CmdMatrixMode CommandType = iota
	CmdLoadMatrix
	CmdMultMatrix
	CmdBegin
	CmdEnd
	CmdSetCapability
	CmdTexParameterf
	CmdTexParameterfv
	CmdTexEnvf
	CmdTexGeni
	CmdTexGenfv
	CmdTexCoord4f
	CmdMultiTexCoord4f
	CmdCopyTexImage2D
	CmdCopyTexSubImage2D
	CmdCallList
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdMatrixMode:        "MatrixMode",
	CmdLoadMatrix:        "LoadMatrix",
	CmdMultMatrix:        "MultMatrix",
	CmdBegin:             "Begin",
	CmdEnd:               "End",
	CmdSetCapability:     "SetCapability",
	CmdTexParameterf:     "TexParameterf",
	CmdTexParameterfv:    "TexParameterfv",
	CmdTexEnvf:           "TexEnvf",
	CmdTexGeni:           "TexGeni",
	CmdTexGenfv:          "TexGenfv",
	CmdTexCoord4f:        "TexCoord4f",
	CmdMultiTexCoord4f:   "MultiTexCoord4f",
	CmdCopyTexImage2D:    "CopyTexImage2D",
	CmdCopyTexSubImage2D: "CopyTexSubImage2D",
	CmdCallList:          "CallList",
}

// String returns the string representation of a CommandType.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is one recorded entry point invocation with its exact argument
// values. Validation happens at execution time, not at record time: replay
// re-enters the same validation path as immediate calls.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	execute(c *Context)
}

type cmdMatrixMode struct{ mode gl.Enum }
type cmdLoadMatrix struct{ matrix Mat4 }
type cmdMultMatrix struct{ matrix Mat4 }
type cmdBegin struct{ primitive gl.Enum }
type cmdEnd struct{}
type cmdSetCapability struct {
	capability gl.Enum
	enabled    bool
}
type cmdTexParameterf struct {
	target, pname gl.Enum
	param         float32
}
type cmdTexParameterfv struct {
	target, pname gl.Enum
	params        f32.Vec4
}
type cmdTexEnvf struct {
	target, pname gl.Enum
	param         float32
}
type cmdTexGeni struct {
	coord, pname gl.Enum
	param        int32
}
type cmdTexGenfv struct {
	coord, pname gl.Enum
	params       f32.Vec4
}
type cmdTexCoord4f struct{ coords f32.Vec4 }
type cmdMultiTexCoord4f struct {
	target gl.Enum
	coords f32.Vec4
}
type cmdCopyTexImage2D struct {
	target              gl.Enum
	level               int32
	internalFormat      int32
	x, y, width, height int32
	border              int32
}
type cmdCopyTexSubImage2D struct {
	target              gl.Enum
	level               int32
	xoffset, yoffset    int32
	x, y, width, height int32
}
type cmdCallList struct{ name uint32 }

func (cmdMatrixMode) Type() CommandType        { return CmdMatrixMode }
func (cmdLoadMatrix) Type() CommandType        { return CmdLoadMatrix }
func (cmdMultMatrix) Type() CommandType        { return CmdMultMatrix }
func (cmdBegin) Type() CommandType             { return CmdBegin }
func (cmdEnd) Type() CommandType               { return CmdEnd }
func (cmdSetCapability) Type() CommandType     { return CmdSetCapability }
func (cmdTexParameterf) Type() CommandType     { return CmdTexParameterf }
func (cmdTexParameterfv) Type() CommandType    { return CmdTexParameterfv }
func (cmdTexEnvf) Type() CommandType           { return CmdTexEnvf }
func (cmdTexGeni) Type() CommandType           { return CmdTexGeni }
func (cmdTexGenfv) Type() CommandType          { return CmdTexGenfv }
func (cmdTexCoord4f) Type() CommandType        { return CmdTexCoord4f }
func (cmdMultiTexCoord4f) Type() CommandType   { return CmdMultiTexCoord4f }
func (cmdCopyTexImage2D) Type() CommandType    { return CmdCopyTexImage2D }
func (cmdCopyTexSubImage2D) Type() CommandType { return CmdCopyTexSubImage2D }
func (cmdCallList) Type() CommandType          { return CmdCallList }

func (m cmdMatrixMode) execute(c *Context)    { c.MatrixMode(m.mode) }
func (m cmdLoadMatrix) execute(c *Context)    { c.LoadMatrix(m.matrix) }
func (m cmdMultMatrix) execute(c *Context)    { c.MultMatrix(m.matrix) }
func (m cmdBegin) execute(c *Context)         { c.Begin(m.primitive) }
func (cmdEnd) execute(c *Context)             { c.End() }
func (m cmdSetCapability) execute(c *Context) { c.setCapability(m.capability, m.enabled) }
func (m cmdTexParameterf) execute(c *Context) { c.TexParameterf(m.target, m.pname, m.param) }
func (m cmdTexParameterfv) execute(c *Context) {
	c.TexParameterfv(m.target, m.pname, m.params)
}
func (m cmdTexEnvf) execute(c *Context)  { c.TexEnvf(m.target, m.pname, m.param) }
func (m cmdTexGeni) execute(c *Context)  { c.TexGeni(m.coord, m.pname, m.param) }
func (m cmdTexGenfv) execute(c *Context) { c.TexGenfv(m.coord, m.pname, m.params) }
func (m cmdTexCoord4f) execute(c *Context) {
	c.TexCoord4f(m.coords[0], m.coords[1], m.coords[2], m.coords[3])
}
func (m cmdMultiTexCoord4f) execute(c *Context) {
	c.MultiTexCoord4f(m.target, m.coords[0], m.coords[1], m.coords[2], m.coords[3])
}
func (m cmdCopyTexImage2D) execute(c *Context) {
	c.CopyTexImage2D(m.target, m.level, m.internalFormat, m.x, m.y, m.width, m.height, m.border)
}
func (m cmdCopyTexSubImage2D) execute(c *Context) {
	c.CopyTexSubImage2D(m.target, m.level, m.xoffset, m.yoffset, m.x, m.y, m.width, m.height)
}
func (m cmdCallList) execute(c *Context) { c.CallList(m.name) }

// displayList is an ordered command list built by NewList/EndList and
// replayed by CallList.
type displayList struct {
	commands []Command
}

// deferToList captures a command when the context is in recording mode.
// It reports whether the caller must return without executing: true for
// COMPILE recording, false when idle or when the list is recorded with
// COMPILE_AND_EXECUTE.
func (c *Context) deferToList(cmd Command) bool {
	if c.currentList == nil {
		return false
	}
	c.currentList.commands = append(c.currentList.commands, cmd)
	return !c.listExecute
}

// GenLists returns the first of a range of n consecutive display list
// names, all reserved as empty lists. Returns 0 on error.
func (c *Context) GenLists(n int) uint32 {
	if n < 0 {
		c.recordError(gl.INVALID_VALUE)
		return 0
	}
	if n == 0 {
		return 0
	}
	base := c.listAlloc.allocateRange(n)
	for i := uint32(0); i < uint32(n); i++ {
		c.lists[base+i] = &displayList{}
	}
	return base
}

// NewList begins recording commands under the given list name. mode is
// gl.COMPILE or gl.COMPILE_AND_EXECUTE; in the latter, deferrable calls are
// both recorded and executed. Recording replaces any previous content of
// the list when EndList completes.
func (c *Context) NewList(name uint32, mode gl.Enum) {
	if name == 0 {
		c.recordError(gl.INVALID_VALUE)
		return
	}
	if mode != gl.COMPILE && mode != gl.COMPILE_AND_EXECUTE {
		c.recordError(gl.INVALID_ENUM)
		return
	}
	if c.currentList != nil || c.inDraw {
		c.recordError(gl.INVALID_OPERATION)
		return
	}

	c.currentList = &displayList{}
	c.currentListName = name
	c.listExecute = mode == gl.COMPILE_AND_EXECUTE
}

// EndList finishes the current recording and publishes the list. Until
// then any previous content under the name stays callable.
func (c *Context) EndList() {
	if c.currentList == nil {
		c.recordError(gl.INVALID_OPERATION)
		return
	}
	c.lists[c.currentListName] = c.currentList
	c.currentList = nil
	c.currentListName = 0
	c.listExecute = false
}

// CallList replays a recorded list through the normal validation path.
// Unknown names are ignored, per the GL contract. CallList itself is
// deferrable, so lists may call other lists up to a fixed nesting depth.
func (c *Context) CallList(name uint32) {
	if c.deferToList(cmdCallList{name: name}) {
		return
	}
	list, ok := c.lists[name]
	if !ok {
		return
	}
	if c.listNesting >= maxListNesting {
		Logger().Debug("softgl: display list nesting limit reached", "name", name)
		return
	}
	c.listNesting++
	c.runList(list)
	c.listNesting--
}

// DeleteLists frees count consecutive list names starting at name.
// Unknown names in the range are ignored. Deleted names are not recycled,
// which keeps every GenLists range contiguous.
func (c *Context) DeleteLists(name uint32, count int) {
	if count < 0 {
		c.recordError(gl.INVALID_VALUE)
		return
	}
	for i := uint32(0); i < uint32(count); i++ {
		delete(c.lists, name+i)
	}
}

// IsList reports whether name denotes a display list.
func (c *Context) IsList(name uint32) bool {
	_, ok := c.lists[name]
	return ok
}

// runList executes a list's commands immediately. Recording state is
// suspended for the duration so that a list called while compiling another
// list is executed rather than copied.
func (c *Context) runList(list *displayList) {
	savedList, savedExecute := c.currentList, c.listExecute
	c.currentList, c.listExecute = nil, false
	for _, cmd := range list.commands {
		cmd.execute(c)
	}
	c.currentList, c.listExecute = savedList, savedExecute
}
