package jsonschema

import "sync"

// Fetcher retrieves the raw bytes of a schema document addressed by an
// absolute URI, letting a Compiler resolve $ref targets that point outside
// the documents it has already been given. A Compiler with no Fetcher
// configured reports any such $ref as a "ref_unresolved" compile error
// rather than guessing.
type Fetcher interface {
	Fetch(uri string) ([]byte, error)
}

// Compiler compiles JSON Schema Draft 7 documents into Schema values, and
// holds the configuration (format assertion, custom formats, a remote
// Fetcher, a default base URI) that every Compile call shares.
type Compiler struct {
	mu sync.RWMutex

	// AssertFormat turns "format" from an annotation into an assertion:
	// with it false (the Draft 7 default) an unrecognized or violated
	// format never fails validation, only type/enum/etc keywords do.
	AssertFormat bool

	// DefaultBaseURI is used to resolve relative $ref/$id values in a
	// document that declares no $id of its own.
	DefaultBaseURI string

	// AllowLineComments enables tolerance of ";"-prefixed line comments in
	// schema and instance text, a non-standard extension left off by default.
	AllowLineComments bool

	fetcher  Fetcher
	formats  *formatRegistry
	resolver *RefResolver
}

// NewCompiler returns a Compiler configured with Draft 7's built-in formats
// and format assertion disabled.
func NewCompiler() *Compiler {
	c := &Compiler{
		formats: newFormatRegistry(),
		fetcher: newHTTPFetcher(),
	}
	c.resolver = NewRefResolver(c.fetcher)
	return c
}

// WithFetcher configures the Fetcher used to retrieve remote $ref targets.
func (c *Compiler) WithFetcher(f Fetcher) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetcher = f
	c.resolver = NewRefResolver(f)
	return c
}

// RegisterFormat adds or overrides a named format checker.
func (c *Compiler) RegisterFormat(name string, fn FormatChecker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formats.register(name, fn)
}

// Compile parses and compiles a schema document from text, resolving every
// $ref it contains (including against any schema documents previously
// compiled by this same Compiler, which share its RefResolver registry).
func (c *Compiler) Compile(source string) (*Schema, *ValidationError) {
	c.mu.RLock()
	resolver := c.resolver
	allowComments := c.AllowLineComments
	baseURI := c.DefaultBaseURI
	c.mu.RUnlock()

	doc, err := parseDocument(source, allowComments)
	if err != nil {
		return nil, err
	}

	schema, cerr := compile(doc, nil, resolver, baseURI, "", false)
	if cerr != nil {
		// Drop this document's queued refs so a later Compile on the
		// shared resolver does not report them.
		resolver.pending = nil
		return nil, cerr
	}
	if refErr := resolver.validateAllRefs(); refErr != nil {
		return nil, refErr
	}
	return schema, nil
}

// CompileBytes is Compile for already-decoded UTF-8 bytes, the shape the
// façade package-level functions and CLI entry point both receive data in.
func (c *Compiler) CompileBytes(data []byte) (*Schema, *ValidationError) {
	return c.Compile(string(data))
}

// Validate parses instance as JSON text and validates it against schema.
func (c *Compiler) Validate(schema *Schema, instance string) *ValidationError {
	doc, err := parseDocument(instance, c.AllowLineComments)
	if err != nil {
		return err
	}
	return c.validateValue(schema, doc)
}

func (c *Compiler) validateValue(schema *Schema, doc *Value) *ValidationError {
	c.mu.RLock()
	opts := &validateOptions{assertFormat: c.AssertFormat, checker: c.formats}
	c.mu.RUnlock()
	return validateSchema(schema, doc, opts)
}
