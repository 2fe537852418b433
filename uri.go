package jsonschema

import "net/url"

// resolveURIRef resolves a possibly-relative $id or $ref value against the
// base URI of the schema it was found on, following the usual URI reference
// resolution rules. A base that is itself not a well-formed absolute URI (or
// empty, the common "no $id anywhere in this document" case) leaves the
// reference as-is: document-local pointers are still matched against the
// in-memory registry by exact string.
func resolveURIRef(base, ref string) string {
	if base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// resolveRefURI is resolveURIRef specialized for $ref targets: identical
// resolution, named separately because $ref resolution additionally feeds
// the pending-reference queue on a miss, where $id resolution never does.
func resolveRefURI(base, ref string) string {
	return resolveURIRef(base, ref)
}

// isAbsoluteURI reports whether s parses as a URI with both a scheme and an
// authority component, the dividing line between "must be fetched remotely"
// and "resolves against the enclosing document".
func isAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
