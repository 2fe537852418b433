package jsonschema

import "strings"

// escapePointerToken escapes a single reference-token per RFC 6901, plus
// this engine's own "%" extension: "~" becomes "~0", "/" becomes "~1", and
// "%" becomes "%25" (via percentEscapeFragment) so every registered path
// doubles as an unambiguous URI fragment. "~" must be escaped first so the
// "~" that escaping "/" introduces is not re-escaped (which would turn "/"
// into "~01"); "%" is escaped last since neither other replacement
// introduces a "%".
func escapePointerToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	tok = percentEscapeFragment(tok)
	return tok
}

// unescapePointerToken reverses escapePointerToken: "%25" becomes "%", "~1"
// becomes "/", and "~0" becomes "~", applied in that order since it is the
// inverse of escape.
func unescapePointerToken(tok string) string {
	tok = strings.ReplaceAll(tok, "%25", "%")
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

// buildPointer joins a sequence of already-unescaped reference tokens (as
// encountered while walking down a schema, e.g. "properties", "name") into a
// single normalized JSON-Pointer string such as "/properties/name". An empty
// token sequence yields "", the pointer to the document root.
func buildPointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(escapePointerToken(t))
	}
	return b.String()
}

// splitPointer decomposes a JSON-Pointer string into its unescaped reference
// tokens. "" and "/" both denote the document root and yield no tokens.
func splitPointer(ptr string) []string {
	if ptr == "" || ptr == "/" {
		return nil
	}
	ptr = strings.TrimPrefix(ptr, "/")
	parts := strings.Split(ptr, "/")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = unescapePointerToken(p)
	}
	return tokens
}

// resolvePointer walks a JSON-Pointer down a Value tree, following object
// member lookups by key and array lookups by decimal index. It does not
// implement the RFC 6901 "-" (past-the-end array element) token since this
// engine only resolves pointers within already-parsed schema/instance
// documents, never appends to one.
func resolvePointer(root *Value, ptr string) (*Value, bool) {
	cur := root
	for _, tok := range splitPointer(ptr) {
		if cur == nil {
			return nil, false
		}
		switch cur.Kind {
		case KindObject:
			next, ok := cur.Get(tok)
			if !ok {
				return nil, false
			}
			cur = next
		case KindArray:
			idx, ok := parseArrayIndex(tok)
			if !ok || idx < 0 || idx >= len(cur.Elements) {
				return nil, false
			}
			cur = cur.Elements[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// parseArrayIndex validates and parses an array-index pointer token: it must
// be "0" or a non-zero digit followed by digits (no leading zeros, no sign).
func parseArrayIndex(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if tok == "0" {
		return 0, true
	}
	if tok[0] == '0' || tok[0] == '-' {
		return 0, false
	}
	n := 0
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// percentEscapeFragment applies this engine's extension, beyond plain
// RFC 6901, of percent-encoding "%" itself (as "%25") when a pointer is
// embedded in a URI fragment, so pointer tokens that happen to contain "%"
// round-trip through a fragment unambiguously.
func percentEscapeFragment(ptr string) string {
	return strings.ReplaceAll(ptr, "%", "%25")
}
