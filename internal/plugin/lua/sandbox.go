package lua

import (
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L *lua.LState

	output  io.Writer
	modules map[string]bool
}

// NewSandbox creates a new sandbox for the Lua state. print writes to
// output.
func NewSandbox(L *lua.LState, output io.Writer) *Sandbox {
	return &Sandbox{
		L:      L,
		output: output,
		modules: map[string]bool{
			"string": true,
			"table":  true,
			"math":   true,
		},
	}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	// Functions that load code from disk or strings.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.installPrint()
	s.installSafeRequire()
}

// AllowModule lets require load the preloaded module name.
func (s *Sandbox) AllowModule(name string) {
	s.modules[name] = true
}

// installPrint replaces print with a version that writes to the sandbox
// output.
func (s *Sandbox) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, top)
		for i := 1; i <= top; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		_, _ = io.WriteString(s.output, strings.Join(parts, "\t")+"\n")
		return 0
	}))
}

// installSafeRequire clears the module search paths and replaces require
// with a version that only loads allowed modules.
func (s *Sandbox) installSafeRequire() {
	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	originalRequire := s.L.GetGlobal("require")
	if originalRequire == lua.LNil {
		return
	}

	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)
		if !s.modules[modName] {
			L.RaiseError("module %q is not available", modName)
			return 0
		}
		L.Push(originalRequire)
		L.Push(lua.LString(modName))
		L.Call(1, 1)
		return 1
	}))
}
