package api

import (
	"bytes"
	"context"
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textbuf/internal/engine/textbuf"
	luastate "github.com/dshills/textbuf/internal/plugin/lua"
)

func setupModuleTest(t *testing.T, mod *Module) (*luastate.State, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	state := luastate.NewState(luastate.WithOutput(&out))
	t.Cleanup(func() { state.Close() })

	if mod == nil {
		mod = NewModule(nil, nil)
	}
	mod.Register(state)
	return state, &out
}

func run(t *testing.T, state *luastate.State, code string) {
	t.Helper()
	if err := state.DoString(context.Background(), code); err != nil {
		t.Fatalf("DoString error = %v", err)
	}
}

func TestModuleName(t *testing.T) {
	if got := NewModule(nil, nil).Name(); got != "textbuf" {
		t.Errorf("Name() = %q, want %q", got, "textbuf")
	}
}

func TestModuleRequire(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	run(t, state, `
		local tb = require("textbuf")
		same = tb == textbuf
	`)
	if state.GetGlobal("same") != lua.LTrue {
		t.Error("require(\"textbuf\") should return the textbuf global")
	}
}

func TestModuleNew(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	run(t, state, `
		local a = textbuf.new()
		local b = textbuf.new("hello")
		local c = textbuf.new(100)
		a_len, a_cap = a:len(), a:cap()
		b_str, b_cap = b:string(), b:cap()
		c_len, c_cap = c:len(), c:cap()
		str = tostring(b)
	`)

	tests := []struct {
		name string
		want lua.LValue
	}{
		{"a_len", lua.LNumber(0)},
		{"a_cap", lua.LNumber(textbuf.DefaultCapacity)},
		{"b_str", lua.LString("hello")},
		{"b_cap", lua.LNumber(5 + textbuf.DefaultCapacity)},
		{"c_len", lua.LNumber(0)},
		{"c_cap", lua.LNumber(100)},
		{"str", lua.LString("hello")},
	}
	for _, tt := range tests {
		if got := state.GetGlobal(tt.name); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModuleNewInvalidArg(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	if err := state.DoString(context.Background(), `textbuf.new(true)`); err == nil {
		t.Error("new(true) should fail")
	}
}

func TestModuleNewCapacityLimit(t *testing.T) {
	state, _ := setupModuleTest(t, NewModule(nil, nil, WithMaxCapacity(64)))

	run(t, state, `result = textbuf.new(64):cap()`)
	if got := state.GetGlobal("result").String(); got != "64" {
		t.Errorf("cap = %s, want 64", got)
	}

	err := state.DoString(context.Background(), `textbuf.new(65)`)
	if err == nil || !strings.Contains(err.Error(), "exceeds limit 64") {
		t.Errorf("new(65) error = %v", err)
	}

	// The default limit rejects huge requests before allocating.
	state, _ = setupModuleTest(t, nil)
	err = state.DoString(context.Background(), `textbuf.new(2147483647)`)
	if err == nil || !strings.Contains(err.Error(), "exceeds limit") {
		t.Errorf("new(2147483647) error = %v", err)
	}
}

func TestModuleBuilderOptions(t *testing.T) {
	mod := NewModule([]textbuf.Option{
		textbuf.WithNewline("|"),
		textbuf.WithNullText("NULL"),
	}, nil)
	state, _ := setupModuleTest(t, mod)

	run(t, state, `
		local b = textbuf.new()
		b:append("a", nil):append_line("b"):append_line()
		result = b:string()
	`)
	if got := state.GetGlobal("result").String(); got != "aNULLb||" {
		t.Errorf("result = %q, want %q", got, "aNULLb||")
	}
}

func TestModuleAppendValues(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	run(t, state, `
		local other = textbuf.new("!")
		local b = textbuf.new()
		b:append("x=", 1, " y=", 2.5, " ", true, other)
		result = b:string()
	`)
	if got := state.GetGlobal("result").String(); got != "x=1 y=2.5 true!" {
		t.Errorf("result = %q, want %q", got, "x=1 y=2.5 true!")
	}
}

func TestModuleBuilderEditing(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"insert", `b = textbuf.new("held"); b:insert(3, "lo wor")`, "hello world"},
		{"insert at end", `b = textbuf.new("ab"); b:insert(2, "c")`, "abc"},
		{"delete", `b = textbuf.new("hello world"); b:delete(5, 11)`, "hello"},
		{"delete clamps end", `b = textbuf.new("hello"); b:delete(2, 100)`, "he"},
		{"replace", `b = textbuf.new("hello world"); b:replace(6, 11, "lua")`, "hello lua"},
		{"replace_all", `b = textbuf.new("a-b-c"); b:replace_all("-", "+")`, "a+b+c"},
		{"delete_all", `b = textbuf.new("a--b--c"); b:delete_all("--")`, "abc"},
		{"reverse", `b = textbuf.new("abc"); b:reverse()`, "cba"},
		{"trim", `b = textbuf.new("  hi \t"); b:trim()`, "hi"},
		{"set_char_at", `b = textbuf.new("cat"); b:set_char_at(0, "b")`, "bat"},
		{"clear", `b = textbuf.new("abc"); b:clear():append("z")`, "z"},
		{"chained", `b = textbuf.new(); b:append("abc"):reverse():append("d")`, "cbad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := setupModuleTest(t, nil)
			run(t, state, tt.code+"\nresult = b:string()")
			if got := state.GetGlobal("result").String(); got != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModuleBuilderQueries(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	run(t, state, `
		local b = textbuf.new("abcabc")
		idx = b:index("bc")
		idx_from = b:index("bc", 2)
		missing = b:index("z")
		last = b:last_index("bc")
		last_from = b:last_index("bc", 3)
		has = b:contains("ca")
		starts = b:starts_with("abc")
		ends = b:ends_with("bx")
		sub = b:substring(1, 4)
		tail = b:substring(4)
		ch = b:char_at(2)
	`)

	tests := []struct {
		name string
		want lua.LValue
	}{
		{"idx", lua.LNumber(1)},
		{"idx_from", lua.LNumber(4)},
		{"missing", lua.LNumber(-1)},
		{"last", lua.LNumber(4)},
		{"last_from", lua.LNumber(1)},
		{"has", lua.LTrue},
		{"starts", lua.LTrue},
		{"ends", lua.LFalse},
		{"sub", lua.LString("bca")},
		{"tail", lua.LString("bc")},
		{"ch", lua.LString("c")},
	}
	for _, tt := range tests {
		if got := state.GetGlobal(tt.name); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModuleUnicode(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	run(t, state, `
		local b = textbuf.new("日本語")
		n = b:len()
		ch = b:char_at(1)
		b:set_char_at(2, "x")
		result = b:string()
	`)
	if got := state.GetGlobal("n"); got != lua.LNumber(3) {
		t.Errorf("n = %v, want 3", got)
	}
	if got := state.GetGlobal("ch").String(); got != "本" {
		t.Errorf("ch = %q, want %q", got, "本")
	}
	if got := state.GetGlobal("result").String(); got != "日本x" {
		t.Errorf("result = %q, want %q", got, "日本x")
	}
}

func TestModuleRangeErrors(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		prefix string
	}{
		{"insert", `textbuf.new("ab"):insert(5, "x")`, "insert:"},
		{"delete", `textbuf.new("ab"):delete(-1, 1)`, "delete:"},
		{"replace", `textbuf.new("ab"):replace(2, 1, "x")`, "replace:"},
		{"substring", `textbuf.new("ab"):substring(3)`, "substring:"},
		{"char_at", `textbuf.new("ab"):char_at(2)`, "char_at:"},
		{"set_char_at", `textbuf.new("ab"):set_char_at(-1, "x")`, "set_char_at:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := setupModuleTest(t, nil)
			err := state.DoString(context.Background(), tt.code)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.prefix) {
				t.Errorf("error = %v, want it to contain %q", err, tt.prefix)
			}
		})
	}
}

func TestModuleErrorsCanBeCaught(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	run(t, state, `
		local ok, err = pcall(function() textbuf.new("ab"):char_at(9) end)
		caught = not ok
		msg = tostring(err)
	`)
	if state.GetGlobal("caught") != lua.LTrue {
		t.Error("pcall should catch the range error")
	}
	if msg := state.GetGlobal("msg").String(); !strings.Contains(msg, "out of range") {
		t.Errorf("msg = %q, want it to mention out of range", msg)
	}
}

func TestModuleSetCharAtRequiresOneChar(t *testing.T) {
	state, _ := setupModuleTest(t, nil)

	if err := state.DoString(context.Background(), `textbuf.new("ab"):set_char_at(0, "xy")`); err == nil {
		t.Error("set_char_at with two characters should fail")
	}
}

func TestModulePrint(t *testing.T) {
	state, out := setupModuleTest(t, nil)

	run(t, state, `print(textbuf.new("hi"):append("!"))`)
	if got := out.String(); got != "hi!\n" {
		t.Errorf("output = %q, want %q", got, "hi!\n")
	}
}
