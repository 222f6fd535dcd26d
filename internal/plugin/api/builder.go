package api

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textbuf/internal/engine/textbuf"
	luastate "github.com/dshills/textbuf/internal/plugin/lua"
)

// Builder methods take and return 0-based character indexes, the same as
// the Go API. Mutators return the builder so calls chain.
func (m *Module) builderMethods() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"append":      builderAppend,
		"append_line": builderAppendLine,
		"insert":      builderInsert,
		"delete":      builderDelete,
		"replace":     builderReplace,
		"replace_all": builderReplaceAll,
		"delete_all":  builderDeleteAll,
		"reverse":     builderReverse,
		"trim":        builderTrim,
		"index":       builderIndex,
		"last_index":  builderLastIndex,
		"contains":    builderContains,
		"starts_with": builderStartsWith,
		"ends_with":   builderEndsWith,
		"substring":   builderSubstring,
		"char_at":     builderCharAt,
		"set_char_at": builderSetCharAt,
		"len":         builderLen,
		"cap":         builderCap,
		"clear":       builderClear,
		"string":      builderToString,
		"tokens":      m.builderTokens,
	}
}

// goValue converts an argument for AppendValue. Builders are passed through
// so their content is appended directly.
func goValue(L *lua.LState, lv lua.LValue) any {
	if ud, ok := lv.(*lua.LUserData); ok {
		if b, ok := ud.Value.(*textbuf.Builder); ok {
			return b
		}
	}
	return luastate.NewBridge(L).ToGoValue(lv)
}

// b:append(v, ...) -> b
// Appends each value; nil appends the null text.
func builderAppend(L *lua.LState) int {
	b := checkBuilder(L, 1)
	for i := 2; i <= L.GetTop(); i++ {
		b.AppendValue(goValue(L, L.Get(i)))
	}
	L.Push(L.Get(1))
	return 1
}

// b:append_line([v]) -> b
// Appends v followed by the newline text.
func builderAppendLine(L *lua.LState) int {
	b := checkBuilder(L, 1)
	if L.GetTop() < 2 {
		b.AppendNewLine()
	} else {
		b.AppendLineValue(goValue(L, L.Get(2)))
	}
	L.Push(L.Get(1))
	return 1
}

// b:insert(index, v) -> b
func builderInsert(L *lua.LState) int {
	b := checkBuilder(L, 1)
	index := L.CheckInt(2)
	if err := b.InsertValue(index, goValue(L, L.CheckAny(3))); err != nil {
		L.RaiseError("insert: %v", err)
		return 0
	}
	L.Push(L.Get(1))
	return 1
}

// b:delete(start, end) -> b
func builderDelete(L *lua.LState) int {
	b := checkBuilder(L, 1)
	if err := b.Delete(L.CheckInt(2), L.CheckInt(3)); err != nil {
		L.RaiseError("delete: %v", err)
		return 0
	}
	L.Push(L.Get(1))
	return 1
}

// b:replace(start, end, s) -> b
func builderReplace(L *lua.LState) int {
	b := checkBuilder(L, 1)
	if err := b.Replace(L.CheckInt(2), L.CheckInt(3), L.CheckString(4)); err != nil {
		L.RaiseError("replace: %v", err)
		return 0
	}
	L.Push(L.Get(1))
	return 1
}

// b:replace_all(search, repl) -> b
func builderReplaceAll(L *lua.LState) int {
	checkBuilder(L, 1).ReplaceAll(L.CheckString(2), L.CheckString(3))
	L.Push(L.Get(1))
	return 1
}

// b:delete_all(s) -> b
func builderDeleteAll(L *lua.LState) int {
	checkBuilder(L, 1).DeleteAll(L.CheckString(2))
	L.Push(L.Get(1))
	return 1
}

func builderReverse(L *lua.LState) int {
	checkBuilder(L, 1).Reverse()
	L.Push(L.Get(1))
	return 1
}

func builderTrim(L *lua.LState) int {
	checkBuilder(L, 1).Trim()
	L.Push(L.Get(1))
	return 1
}

// b:index(s [, from]) -> number
// Returns -1 when s is not found.
func builderIndex(L *lua.LState) int {
	b := checkBuilder(L, 1)
	s := L.CheckString(2)
	L.Push(lua.LNumber(b.IndexFrom(s, L.OptInt(3, 0))))
	return 1
}

// b:last_index(s [, from]) -> number
func builderLastIndex(L *lua.LState) int {
	b := checkBuilder(L, 1)
	s := L.CheckString(2)
	L.Push(lua.LNumber(b.LastIndexFrom(s, L.OptInt(3, b.Len()-1))))
	return 1
}

func builderContains(L *lua.LState) int {
	L.Push(lua.LBool(checkBuilder(L, 1).ContainsString(L.CheckString(2))))
	return 1
}

func builderStartsWith(L *lua.LState) int {
	L.Push(lua.LBool(checkBuilder(L, 1).StartsWith(L.CheckString(2))))
	return 1
}

func builderEndsWith(L *lua.LState) int {
	L.Push(lua.LBool(checkBuilder(L, 1).EndsWith(L.CheckString(2))))
	return 1
}

// b:substring(start [, end]) -> string
func builderSubstring(L *lua.LState) int {
	b := checkBuilder(L, 1)
	s, err := b.SubstringRange(L.CheckInt(2), L.OptInt(3, b.Len()))
	if err != nil {
		L.RaiseError("substring: %v", err)
		return 0
	}
	L.Push(lua.LString(s))
	return 1
}

// b:char_at(index) -> string
func builderCharAt(L *lua.LState) int {
	r, err := checkBuilder(L, 1).CharAt(L.CheckInt(2))
	if err != nil {
		L.RaiseError("char_at: %v", err)
		return 0
	}
	L.Push(lua.LString(string(r)))
	return 1
}

// b:set_char_at(index, ch) -> b
// ch must be a single character.
func builderSetCharAt(L *lua.LState) int {
	b := checkBuilder(L, 1)
	index := L.CheckInt(2)
	ch := L.CheckString(3)
	if utf8.RuneCountInString(ch) != 1 {
		L.ArgError(3, "single character expected")
		return 0
	}
	r, _ := utf8.DecodeRuneInString(ch)
	if err := b.SetCharAt(index, r); err != nil {
		L.RaiseError("set_char_at: %v", err)
		return 0
	}
	L.Push(L.Get(1))
	return 1
}

func builderLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkBuilder(L, 1).Len()))
	return 1
}

func builderCap(L *lua.LState) int {
	L.Push(lua.LNumber(checkBuilder(L, 1).Cap()))
	return 1
}

func builderClear(L *lua.LState) int {
	checkBuilder(L, 1).Clear()
	L.Push(L.Get(1))
	return 1
}

// b:tokens([opts]) -> {tokens}
// Tokenizes the current content with the same options as textbuf.tokenize.
func (m *Module) builderTokens(L *lua.LState) int {
	b := checkBuilder(L, 1)
	opts, msg := m.tokenizerOptions(L, L.OptTable(2, nil))
	if msg != "" {
		L.ArgError(2, msg)
		return 0
	}
	L.Push(luastate.NewBridge(L).StringsToTable(b.AsTokenizer(opts...).Tokens()))
	return 1
}
