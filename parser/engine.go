// Package parser implements the shared parse skeleton used by both
// the METAR and TAF parsers: input validation, a cursor-based
// handler-dispatch body loop with a BODY/REMARKS mode switch on the
// RMK token, and panic-safe top-level entry points that always return
// a ParseResult instead of letting anything escape.
package parser

import (
	"strings"

	"github.com/aerowx/noaaweather/pattern"
)

// Handler is one recognizer tried against the dispatch cursor. Try
// attempts to match and apply a decoded value (typically by mutating
// a report under construction via a closure), returning how many
// bytes of the cursor it consumed. A handler that recognizes its
// token but fails to decode it (e.g. an out-of-range value) should
// return ok=false so the token falls through to the unparsed list
// rather than silently swallowing bad data.
type Handler struct {
	Name      string
	CanRepeat bool
	Try       func(cursor string) (matchLen int, ok bool)
}

// dispatch tries each handler against cursor in order, skipping any
// non-repeatable handler that has already fired once this section. A
// handler that panics is treated as a non-match so its token falls
// through to the unparsed list and the rest of the report still
// decodes.
func dispatch(cursor string, handlers []Handler, used map[string]bool) (int, bool) {
	for _, h := range handlers {
		if used[h.Name] && !h.CanRepeat {
			continue
		}
		if n, ok := tryHandler(h, cursor); ok {
			used[h.Name] = true
			return n, true
		}
	}
	return 0, false
}

func tryHandler(h Handler, cursor string) (n int, ok bool) {
	defer func() {
		if recover() != nil {
			n, ok = 0, false
		}
	}()
	return h.Try(cursor)
}

// nextToken consumes exactly one whitespace-delimited token off the
// front of cursor, trimmed of its trailing boundary whitespace, along
// with the remaining cursor.
func nextToken(cursor string) (token, rest string, ok bool) {
	_, n, ok := pattern.Groups(pattern.Unparsed, cursor)
	if !ok {
		return "", cursor, false
	}
	return strings.TrimRight(cursor[:n], " \t\r\n"), cursor[n:], true
}

// isRmk reports whether cursor begins with the literal RMK token that
// switches the body dispatcher into REMARKS mode.
func isRmk(cursor string) bool {
	_, _, ok := pattern.Groups(pattern.Rmk, cursor)
	return ok
}

// runBody drives the BODY/REMARKS dispatch loop over cursor until it
// is exhausted, returning the tokens neither section's handlers could
// recognize, split by which mode they fell in.
func runBody(cursor string, bodyHandlers, remarksHandlers []Handler) (unparsedBody, unparsedRemarks []string) {
	used := make(map[string]bool)
	inRemarks := false
	handlers := bodyHandlers
	for cursor != "" {
		if !inRemarks && isRmk(cursor) {
			inRemarks = true
			handlers = remarksHandlers
			used = make(map[string]bool)
			_, cursor, _ = nextToken(cursor)
			continue
		}
		if n, ok := dispatch(cursor, handlers, used); ok {
			cursor = cursor[n:]
			continue
		}
		tok, rest, ok := nextToken(cursor)
		if !ok {
			break
		}
		if inRemarks {
			unparsedRemarks = append(unparsedRemarks, tok)
		} else {
			unparsedBody = append(unparsedBody, tok)
		}
		cursor = rest
	}
	return unparsedBody, unparsedRemarks
}

// safeParse runs fn and converts any panic escaping it into a
// ParserException-wrapped failure instead of propagating — no
// exported parse entry point is allowed to panic.
func safeParse[T any](parserType, raw string, fn func() ParseResult[T]) (result ParseResult[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure[T](&ParserException{
				ParserType: parserType,
				Message:    "parser internal error: " + panicMessage(r),
				RawData:    raw,
			})
		}
	}()
	return fn()
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unknown panic"
}
