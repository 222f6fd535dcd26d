package api

import (
	"fmt"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textbuf/internal/engine/matcher"
	"github.com/dshills/textbuf/internal/engine/textbuf"
	luastate "github.com/dshills/textbuf/internal/plugin/lua"
)

// ModuleName is the name scripts require the module by.
const ModuleName = "textbuf"

// builderTypeName is the metatable name of builder userdata.
const builderTypeName = "textbuf.builder"

// DefaultMaxCapacity is the largest capacity a script may request from
// textbuf.new.
const DefaultMaxCapacity = 1 << 24

// Module implements the textbuf Lua module.
type Module struct {
	builderOpts   []textbuf.Option
	tokenizerOpts []textbuf.TokenizerOption
	maxCapacity   int
}

// ModuleOption configures a Module.
type ModuleOption func(*Module)

// WithMaxCapacity limits the capacity scripts may pass to textbuf.new.
// n <= 0 allows up to textbuf.MaxCapacity.
func WithMaxCapacity(n int) ModuleOption {
	return func(m *Module) {
		if n <= 0 || n > textbuf.MaxCapacity {
			n = textbuf.MaxCapacity
		}
		m.maxCapacity = n
	}
}

// NewModule creates a module whose builders and tokenizers start from the
// given options.
func NewModule(builderOpts []textbuf.Option, tokenizerOpts []textbuf.TokenizerOption, opts ...ModuleOption) *Module {
	m := &Module{
		builderOpts:   builderOpts,
		tokenizerOpts: tokenizerOpts,
		maxCapacity:   DefaultMaxCapacity,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module name.
func (m *Module) Name() string {
	return ModuleName
}

// Loader is the lua.LGFunction passed to PreloadModule.
func (m *Module) Loader(L *lua.LState) int {
	mt := L.NewTypeMetatable(builderTypeName)
	methods := L.SetFuncs(L.NewTable(), m.builderMethods())
	L.SetField(mt, "__index", methods)
	L.SetField(mt, "__tostring", L.NewFunction(builderToString))

	mod := L.NewTable()
	L.SetField(mod, "new", L.NewFunction(m.newBuilder))
	L.SetField(mod, "tokenize", L.NewFunction(m.tokenize))

	L.Push(mod)
	return 1
}

// Register preloads the module into state as both require("textbuf") and
// the textbuf global.
func (m *Module) Register(state *luastate.State) {
	state.PreloadModule(m.Name(), m.Loader)
}

// new([s | cap]) -> builder
// Creates a builder, seeded with s or sized to cap.
func (m *Module) newBuilder(L *lua.LState) int {
	var b *textbuf.Builder
	switch v := L.Get(1).(type) {
	case lua.LString:
		b = textbuf.NewString(string(v), m.builderOpts...)
	case lua.LNumber:
		if float64(v) > float64(m.maxCapacity) {
			L.ArgError(1, fmt.Sprintf("capacity %v exceeds limit %d", v, m.maxCapacity))
			return 0
		}
		opts := append(append([]textbuf.Option{}, m.builderOpts...), textbuf.WithCapacity(int(v)))
		b = textbuf.New(opts...)
	case *lua.LNilType:
		b = textbuf.New(m.builderOpts...)
	default:
		L.ArgError(1, "string or number expected, got "+L.Get(1).Type().String())
		return 0
	}

	L.Push(pushBuilder(L, b))
	return 1
}

// tokenize(s [, opts]) -> {tokens}
// Splits s. opts may set delim, quote, trim and ignore_empty.
func (m *Module) tokenize(L *lua.LState) int {
	s := L.CheckString(1)
	opts, err := m.tokenizerOptions(L, L.OptTable(2, nil))
	if err != "" {
		L.ArgError(2, err)
		return 0
	}

	tok := textbuf.NewTokenizer(s, opts...)
	L.Push(luastate.NewBridge(L).StringsToTable(tok.Tokens()))
	return 1
}

// tokenizerOptions layers the fields of tbl over the module defaults.
func (m *Module) tokenizerOptions(L *lua.LState, tbl *lua.LTable) ([]textbuf.TokenizerOption, string) {
	opts := append([]textbuf.TokenizerOption{}, m.tokenizerOpts...)
	if tbl == nil {
		return opts, ""
	}

	bridge := luastate.NewBridge(L)
	if delim, ok := bridge.GetTableString(tbl, "delim"); ok {
		if delim == "" {
			return nil, "delim must not be empty"
		}
		opts = append(opts, textbuf.WithDelimiterString(delim))
	}
	if quote, ok := bridge.GetTableString(tbl, "quote"); ok {
		if utf8.RuneCountInString(quote) > 1 {
			return nil, "quote must be a single character"
		}
		if quote == "" {
			opts = append(opts, textbuf.WithQuote(matcher.None()))
		} else {
			r, _ := utf8.DecodeRuneInString(quote)
			opts = append(opts, textbuf.WithQuoteRune(r))
		}
	}
	if trim, ok := bridge.GetTableBool(tbl, "trim"); ok {
		if trim {
			opts = append(opts, textbuf.WithTrimmer(matcher.Trim()))
		} else {
			opts = append(opts, textbuf.WithTrimmer(matcher.None()))
		}
	}
	if ignore, ok := bridge.GetTableBool(tbl, "ignore_empty"); ok {
		opts = append(opts, textbuf.WithIgnoreEmptyTokens(ignore))
	}
	return opts, ""
}

func pushBuilder(L *lua.LState, b *textbuf.Builder) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = b
	L.SetMetatable(ud, L.GetTypeMetatable(builderTypeName))
	return ud
}

// checkBuilder returns the builder at stack position n.
func checkBuilder(L *lua.LState, n int) *textbuf.Builder {
	ud := L.CheckUserData(n)
	if b, ok := ud.Value.(*textbuf.Builder); ok {
		return b
	}
	L.ArgError(n, "textbuf builder expected")
	return nil
}

func builderToString(L *lua.LState) int {
	L.Push(lua.LString(checkBuilder(L, 1).String()))
	return 1
}
