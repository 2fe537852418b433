package jsonschema

import "strconv"

// childPath appends one already-unescaped reference token to a JSON-Pointer
// path, the way every keyword compiler builds the path it registers its
// subschemas under.
func childPath(path, token string) string {
	return path + "/" + escapePointerToken(token)
}

// childPathIndex is childPath for an array-index token.
func childPathIndex(path string, i int) string {
	return childPath(path, strconv.Itoa(i))
}
