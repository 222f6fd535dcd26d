// Package lua provides the sandboxed Lua runtime for textbuf scripts.
//
// This package wraps the gopher-lua library to provide:
//   - Sandboxed Lua state management
//   - Go-Lua value conversion
//   - Execution timeouts through context cancellation
//
// # State
//
//	state := lua.NewState(
//	    lua.WithExecutionTimeout(2 * time.Second),
//	    lua.WithOutput(os.Stdout),
//	)
//	defer state.Close()
//
//	state.PreloadModule("textbuf", api.Loader)
//	if err := state.DoFile(ctx, "script.lua"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sandbox
//
// Only the base, package, string, table and math libraries are opened.
// dofile, loadfile, load and loadstring are removed, print writes to the
// configured output, and require only loads the built-in libraries and
// modules registered with PreloadModule.
package lua
