// Package api provides the textbuf Lua module available to scripts.
//
// Scripts reach the module through the textbuf global or require("textbuf"):
//
//	local b = textbuf.new("hello")
//	b:append(" ", "world"):append_line()
//	b:replace_all("world", "lua")
//	print(b:string(), b:len(), b:index("lua"))
//
//	for _, tok in ipairs(textbuf.tokenize("a, 'b,c'", {delim = ",", quote = "'", trim = true})) do
//	    print(tok)
//	end
//
// textbuf.new accepts an initial string or a capacity no larger than the
// module's limit (DefaultMaxCapacity unless WithMaxCapacity says otherwise).
// Builder indexes are 0-based character positions, matching the Go API, and
// searches return -1 when nothing is found. Range errors are raised as Lua
// errors prefixed with the method name.
//
// Builders and tokenizers start from the options given to NewModule, which
// the application derives from its configuration.
package api
