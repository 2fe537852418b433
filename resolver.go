package jsonschema

import (
	"fmt"
	"strings"
)

// pendingRef records a $ref seen during compilation that could not be
// resolved immediately because its target had not been registered yet (the
// common case for a schema that $refs itself or a sibling defined later in
// the same document). It is resolved in one sweep once the whole document
// tree has finished compiling.
type pendingRef struct {
	uri  string
	slot **Schema // the *ref keyword's target field, filled in once resolved
	pos  Position
}

// RefResolver is the per-root-schema registry every $ref resolves through.
// Schemas register themselves as they compile (by $id and by their
// JSON-Pointer path within the document, which for a fetched remote document
// is prefixed with "<docURI>#"); $ref keywords either find their
// target already registered or queue a pendingRef to settle once the whole
// document has been walked. Indirecting through string keys, rather than
// linking *Schema pointers directly, is what lets cyclic schemas (a schema
// that refers to an ancestor of itself) compile at all.
type RefResolver struct {
	schemas   map[string]*Schema
	pending   []pendingRef
	remote    map[string]*Value // cache of fetched remote documents, keyed by URL
	fetcher   Fetcher
}

// NewRefResolver creates an empty resolver. fetcher may be nil, in which
// case fetchRemote returns ErrNoFetcher and any $ref to a URI outside the
// local registry is reported by validateAllRefs as "ref_unresolved".
func NewRefResolver(fetcher Fetcher) *RefResolver {
	return &RefResolver{
		schemas: make(map[string]*Schema),
		remote:  make(map[string]*Value),
		fetcher: fetcher,
	}
}

// addReference registers a compiled schema under a canonical URI. The first
// registration of a URI stores it and returns true; any later registration
// of the same URI is rejected, leaving the first in place, and returns
// false: a document declaring the same $id twice is a compile error, caught
// by the caller checking the return value.
func (r *RefResolver) addReference(uri string, schema *Schema) bool {
	// uri == "" is the document root's own JSON-Pointer path: it must still
	// be stored, since a bare "$ref": "#" (the meta-schema's own recursive
	// pattern, e.g. "items": {"$ref": "#"}) resolves to exactly that key.
	if _, exists := r.schemas[uri]; exists {
		return false
	}
	r.schemas[uri] = schema
	return true
}

// addRefToResolve queues a $ref for the final resolution sweep.
func (r *RefResolver) addRefToResolve(uri string, slot **Schema, pos Position) {
	r.pending = append(r.pending, pendingRef{uri: uri, slot: slot, pos: pos})
}

// getSchema looks up an already-registered schema by canonical URI.
func (r *RefResolver) getSchema(uri string) (*Schema, bool) {
	s, ok := r.schemas[uri]
	return s, ok
}

// validateAllRefs runs once, after the whole root document (and anything it
// transitively needed to fetch) has compiled, and settles every pendingRef.
// Any ref still unresolved at this point is a genuine compile error: there
// is no later point at which it could still resolve. The queue is emptied
// afterwards, so a later sweep on the same resolver reports only the refs
// queued since.
func (r *RefResolver) validateAllRefs() *ValidationError {
	var result *ValidationError
	// Resolution can add freshly-fetched remote documents to r.pending (via
	// compiling them registers their own nested $refs), so this sweeps with
	// an index rather than ranging over a snapshot of the slice.
	for i := 0; i < len(r.pending); i++ {
		p := r.pending[i]
		target, ok := r.schemas[p.uri]
		if !ok {
			if fetched, ferr := r.resolveRemote(p.uri); ferr == nil {
				target, ok = fetched, true
			}
		}
		if !ok {
			result = addIssue(result, "ref_unresolved", fmt.Sprintf("unresolved $ref %q", p.uri), p.pos)
			continue
		}
		*p.slot = target
	}
	r.pending = nil
	return result
}

// resolveRemote handles a pending ref whose target names an absolute URI
// document that has not been fetched yet: it fetches and compiles the
// document (registering its contents, including any nested $refs of its
// own, against this same resolver), then looks the original target back up.
func (r *RefResolver) resolveRemote(uri string) (*Schema, error) {
	docURI, _, _ := strings.Cut(uri, "#")
	if docURI == "" || !isAbsoluteURI(docURI) {
		return nil, ErrUnresolvedReference
	}
	if _, already := r.schemas[docURI]; already {
		// Document was already fetched (perhaps under a different fragment
		// of the same URI); the target just isn't present in it.
		return nil, ErrUnresolvedReference
	}
	doc, err := r.fetchRemote(docURI)
	if err != nil {
		return nil, err
	}
	// The fetched document's own internal $refs (e.g. "#/definitions/x")
	// are registered relative to a path of "<docURI>#", so that a pending
	// ref's "<docURI>#/definitions/x" key lines up with what nested
	// compilation produces; the whole-document root is additionally
	// registered under the bare docURI for a fragment-less reference to it.
	root, cerr := compile(doc, nil, r, docURI, docURI+"#", false)
	if cerr != nil {
		return nil, cerr
	}
	r.addReference(docURI, root)
	target, ok := r.schemas[uri]
	if !ok {
		return nil, ErrUnresolvedReference
	}
	return target, nil
}

// fetchRemote returns the cached document for url, fetching it through the
// configured Fetcher on first use. It returns ErrNoFetcher if no Fetcher was
// configured on the Compiler that owns this resolver.
func (r *RefResolver) fetchRemote(url string) (*Value, error) {
	if doc, ok := r.remote[url]; ok {
		return doc, nil
	}
	if r.fetcher == nil {
		return nil, ErrNoFetcher
	}
	data, err := r.fetcher.Fetch(url)
	if err != nil {
		return nil, err
	}
	doc, perr := parseDocument(string(data), false)
	if perr != nil {
		return nil, perr
	}
	r.remote[url] = doc
	return doc, nil
}
