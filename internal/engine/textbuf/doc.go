// Package textbuf provides Builder, a mutable and growable sequence of runes
// for building, searching and editing text in place.
//
// A Builder owns one backing array. Appends write at the end, inserts and
// deletes shift the tail with a single overlap-safe copy, and replacements
// shift at most once. Capacity doubles on demand, so appends are amortized
// O(1) per unit; it only shrinks when MinimizeCapacity is called.
//
// Basic usage:
//
//	b := textbuf.New()
//	b.Append("date").AppendFloat(10) // "date10.0"
//
//	_ = b.Insert(0, "the ")          // "the date10.0"
//	_ = b.Replace(4, 8, "time")      // "the time10.0"
//	_ = b.Delete(8, b.Len())         // "the time"
//
//	i := b.IndexRune('t')            // 0
//	j := b.IndexRuneFrom('t', i+1)   // 4
//
// Units:
//
// A unit is one rune. Indexes, lengths and capacities count units, not
// bytes. No grapheme or normalization logic is applied.
//
// Absent values:
//
// Go strings cannot be nil, so "no value" is spelled with Text: None()
// appends the builder's null text (nothing, unless WithNullText was used),
// while Some("") appends nothing at all. AppendValue treats nil, nil
// pointers and nil slices as absent.
//
// Errors:
//
// Operations taking an index or a span return a *RangeError wrapping
// ErrIndexOutOfRange or ErrRangeInvalid, checked before anything is
// written. Spans are half-open; an end past Len is clamped, a negative start
// or an inverted span is not. Searches never fail: they return -1, and a nil
// matcher simply matches nothing. Edits that need a matcher (the *Match
// delete and replace methods) return ErrNilMatcher for a nil one and leave
// the content alone. A capacity that cannot be represented panics with
// ErrCapacityOverflow.
//
// Views:
//
// AsReader, AsWriter and AsTokenizer return views that share the Builder's
// storage. The Reader is live and sees later appends. The Writer appends
// directly. The Tokenizer reads the Builder when tokens are first needed and
// caches them until Reset.
//
// Thread Safety:
//
// A Builder and its views are not safe for concurrent use.
package textbuf
