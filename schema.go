package jsonschema

import (
	"regexp"
)

// Schema is the compiled representation of one JSON Schema Draft 7 document
// (or subschema). Every recognized keyword is compiled once, up front, into
// a typed field here; validation walks this struct directly rather than
// re-inspecting the original Value tree.
type Schema struct {
	resolver *RefResolver
	parent   *Schema
	source   *Value // the raw schema Value this was compiled from, for error positions and MarshalJSON
	pos      Position

	// Boolean schema: when non-nil, every other field is irrelevant and
	// validation always reports exactly this outcome.
	boolean *bool

	id      string
	baseURI string
	schema  string // the declared $schema dialect URI, informational only
	ref     string
	resolvedRef *Schema

	title       *Value
	description *Value
	defaultVal  *Value
	examples    *Value

	types []string // "type" keyword, normalized to a list even when given as one string
	enum  []*Value
	enumKeys map[string]struct{} // canonicalKey(v) set, mirrors enum for O(1) membership
	constVal *Value
	hasConst bool

	multipleOf       *float64
	maximum          *float64
	exclusiveMaximum *float64
	minimum          *float64
	exclusiveMinimum *float64

	maxLength *int
	minLength *int
	pattern   string
	patternRe *regexp.Regexp

	items           *Schema   // single-schema form: applies to every element
	itemsTuple      []*Schema // array form: positional schemas
	additionalItems *Schema   // compiled subschema (a bare true compiles to a boolean schema); a bare false sets additionalItemsDeny instead; see compileArrayKeywords
	additionalItemsDeny bool
	maxItems    *int
	minItems    *int
	uniqueItems bool
	contains    *Schema

	maxProperties        *int
	minProperties        *int
	required             []string
	properties           map[string]*Schema
	propertyOrder        []string
	patternProperties    map[string]*Schema
	patternPropertiesRe  map[string]*regexp.Regexp
	patternPropertiesOrd []string
	additionalProperties *Schema
	additionalPropertiesDeny bool
	propertyNames        *Schema
	dependencies         map[string]*dependency

	allOf []*Schema
	anyOf []*Schema
	oneOf []*Schema
	not   *Schema

	ifSchema   *Schema
	thenSchema *Schema
	elseSchema *Schema

	format       string
	contentEncoding  string
	contentMediaType string

	definitions map[string]*Schema // "definitions": compiled so every entry registers against the resolver, even ones nothing in this document $refs yet

	extra map[string]*Schema // vendor/unrecognized members, compiled and registered like "definitions" so $ref can address them
}

// dependency is the compiled form of one member of the "dependencies"
// keyword, which Draft 7 overloads: the value is either an array of
// required-property names or a full subschema.
type dependency struct {
	requiredProps []string
	schema        *Schema
}

func newSchema(source *Value, parent *Schema, resolver *RefResolver) *Schema {
	return &Schema{source: source, parent: parent, resolver: resolver, pos: source.Pos}
}

// compile turns a parsed Value (the raw schema document or subschema) into a
// Schema, registering it against resolver under every key it can be
// addressed by ($id, and the JSON-Pointer path it was reached through) and
// recursively compiling every subschema it contains.
//
// At the root (parent == nil) and unless isMeta is set, compile also checks
// the original document against the embedded Draft 7 meta-schema, the same
// way every other compile error is reported. isMeta suppresses exactly this
// one piece of behavior, the one that would otherwise recurse forever:
// compiling the Draft 7 meta-schema itself must not try to validate itself
// against a not-yet-finished copy of itself.
func compile(value *Value, parent *Schema, resolver *RefResolver, baseURI string, path string, isMeta bool) (*Schema, *ValidationError) {
	if value == nil {
		return nil, singleError("compile_nil_schema", "schema must not be nil", UnknownPosition)
	}

	if value.Kind == KindBoolean {
		b := value.Bool
		s := newSchema(value, parent, resolver)
		s.boolean = &b
		errs := registerSchema(s, resolver, baseURI, path)
		if parent == nil && !isMeta {
			errs = mergeErrors(errs, validateAgainstMetaSchema(value))
		}
		return s, errs
	}

	if value.Kind != KindObject {
		return nil, singleError("compile_invalid_schema", "schema must be a JSON object or boolean", value.Pos)
	}

	s := newSchema(value, parent, resolver)
	s.baseURI = baseURI

	var errs *ValidationError

	if idVal, ok := value.Get("$id"); ok && idVal.Kind == KindString {
		s.id = idVal.Str
		s.baseURI = resolveURIRef(baseURI, idVal.Str)
	}
	if schemaVal, ok := value.Get("$schema"); ok && schemaVal.Kind == KindString {
		s.schema = schemaVal.Str
	}

	errs = mergeErrors(errs, registerSchema(s, resolver, s.baseURI, path))

	// "definitions" is a schema container, not a validation applicator: it
	// is always compiled, registering every entry against the resolver, even
	// when "$ref" is also present at this level and hides every other
	// sibling for validation purposes. Without this, a schema of exactly the
	// shape {"definitions": {...}, "$ref": "#/definitions/x"} could never
	// resolve its own $ref.
	if defsVal, ok := value.Get("definitions"); ok {
		if defsVal.Kind != KindObject {
			errs = addIssue(errs, "compile_invalid_definitions", "definitions must be an object", defsVal.Pos)
		} else {
			s.definitions = make(map[string]*Schema, len(defsVal.Members))
			for _, m := range defsVal.Members {
				sub, err := compile(m.Value, s, resolver, s.baseURI, childPath(childPath(path, "definitions"), m.Key.Str), isMeta)
				errs = mergeErrors(errs, err)
				s.definitions[m.Key.Str] = sub
			}
		}
	}

	// Every member this engine doesn't interpret as a keyword is, like
	// "definitions", a schema container rather than a validation applicator:
	// it is compiled as a child schema and registered under its own path
	// even when "$ref" is also present at this level, so a custom container
	// member (e.g. "myDefs") is just as addressable by $ref as "definitions"
	// is, rather than silently losing it to a raw, unregistered Value. A
	// member whose value is neither an object nor a boolean cannot be a
	// schema and is left uncompiled (it stays in the source Value).
	for _, m := range value.Members {
		if _, known := knownKeywords[m.Key.Str]; known {
			continue
		}
		if m.Value.Kind != KindObject && m.Value.Kind != KindBoolean {
			continue
		}
		sub, err := compile(m.Value, s, resolver, s.baseURI, childPath(path, m.Key.Str), isMeta)
		errs = mergeErrors(errs, err)
		if s.extra == nil {
			s.extra = make(map[string]*Schema)
		}
		s.extra[m.Key.Str] = sub
	}

	if refVal, ok := value.Get("$ref"); ok && refVal.Kind == KindString {
		// Draft 7: a $ref alongside other keywords ignores its siblings.
		s.ref = refVal.Str
		target := refTarget(s.baseURI, refVal.Str)
		if existing, ok := resolver.getSchema(target); ok {
			s.resolvedRef = existing
		} else {
			resolver.addRefToResolve(target, &s.resolvedRef, refVal.Pos)
		}
		if parent == nil && !isMeta {
			errs = mergeErrors(errs, validateAgainstMetaSchema(value))
		}
		return s, errs
	}

	if titleVal, ok := value.Get("title"); ok {
		s.title = titleVal
	}
	if descVal, ok := value.Get("description"); ok {
		s.description = descVal
	}
	if defVal, ok := value.Get("default"); ok {
		s.defaultVal = defVal
	}
	if exVal, ok := value.Get("examples"); ok {
		s.examples = exVal
	}

	if typeVal, ok := value.Get("type"); ok {
		switch typeVal.Kind {
		case KindString:
			s.types = []string{typeVal.Str}
		case KindArray:
			for _, t := range typeVal.Elements {
				if t.Kind != KindString {
					errs = addIssue(errs, "compile_invalid_type", "type array entries must be strings", t.Pos)
					continue
				}
				s.types = append(s.types, t.Str)
			}
		default:
			errs = addIssue(errs, "compile_invalid_type", "type must be a string or array of strings", typeVal.Pos)
		}
	}

	if enumVal, ok := value.Get("enum"); ok {
		if enumVal.Kind != KindArray {
			errs = addIssue(errs, "compile_invalid_enum", "enum must be an array", enumVal.Pos)
		} else {
			s.enum = enumVal.Elements
			s.enumKeys = make(map[string]struct{}, len(s.enum))
			for _, e := range s.enum {
				s.enumKeys[canonicalKey(e)] = struct{}{}
			}
		}
	}
	if constVal, ok := value.Get("const"); ok {
		s.constVal = constVal
		s.hasConst = true
	}

	if err := compileNumericKeywords(s, value); err != nil {
		errs = mergeErrors(errs, err)
	}
	if err := compileStringKeywords(s, value); err != nil {
		errs = mergeErrors(errs, err)
	}
	if err := compileArrayKeywords(s, value, resolver, path); err != nil {
		errs = mergeErrors(errs, err)
	}
	if err := compileObjectKeywords(s, value, resolver, path); err != nil {
		errs = mergeErrors(errs, err)
	}
	if err := compileLogicKeywords(s, value, resolver, path); err != nil {
		errs = mergeErrors(errs, err)
	}
	if err := compileFormatKeyword(s, value); err != nil {
		errs = mergeErrors(errs, err)
	}

	if cenc, ok := value.Get("contentEncoding"); ok && cenc.Kind == KindString {
		s.contentEncoding = cenc.Str
	}
	if cmt, ok := value.Get("contentMediaType"); ok && cmt.Kind == KindString {
		s.contentMediaType = cmt.Str
	}

	if parent == nil && !isMeta {
		errs = mergeErrors(errs, validateAgainstMetaSchema(value))
	}

	return s, errs
}

// registerSchema adds s to resolver under its plain JSON-Pointer path and,
// if it declares its own "$id", under that URI too. A document declaring
// the same "$id" twice is a compile error: the second registration loses
// the race, and every $ref naming that $id would silently resolve to
// whichever subschema happened to register first instead of the one the
// document author meant.
func registerSchema(s *Schema, resolver *RefResolver, baseURI string, path string) *ValidationError {
	if resolver == nil {
		return nil
	}
	var errs *ValidationError
	if s.id != "" {
		if !resolver.addReference(baseURI, s) {
			errs = addIssue(errs, "compile_duplicate_id", "duplicate $id: \""+s.id+"\"", s.pos)
		}
	}
	// Every subschema, including the document root (path == ""), is also
	// registered under its plain JSON-Pointer path: this is what lets a
	// same-document "#/..." $ref resolve without any URI authority
	// resolution at all, which is both the common case and the one most
	// robust to the edge cases in fragment-only URI references.
	resolver.addReference(path, s)
	return errs
}

// refTarget computes the resolver key a $ref value resolves to. A
// fragment-only reference ("#", "#/a/b") is resolved directly against the
// local JSON-Pointer-path registry, sidestepping URI authority resolution
// entirely; anything else is resolved as a full URI reference against the
// schema's base URI.
func refTarget(baseURI, ref string) string {
	if len(ref) > 0 && ref[0] == '#' {
		return ref[1:]
	}
	return resolveRefURI(baseURI, ref)
}

// knownKeywords lists every Draft 7 keyword this engine interprets. Anything
// else found on a schema object is compiled as a child schema and kept in
// Schema.extra when its value is an object or boolean, and otherwise left
// uncompiled; it is never rejected: Draft 7 schemas are open to vendor
// extensions, and a vendor container member should be just as addressable
// by $ref as "definitions" is.
var knownKeywords = map[string]struct{}{
	"$id": {}, "$schema": {}, "$ref": {}, "$comment": {}, "definitions": {},
	"title": {}, "description": {}, "default": {}, "examples": {},
	"type": {}, "enum": {}, "const": {},
	"multipleOf": {}, "maximum": {}, "exclusiveMaximum": {}, "minimum": {}, "exclusiveMinimum": {},
	"maxLength": {}, "minLength": {}, "pattern": {},
	"items": {}, "additionalItems": {}, "maxItems": {}, "minItems": {}, "uniqueItems": {}, "contains": {},
	"maxProperties": {}, "minProperties": {}, "required": {}, "properties": {},
	"patternProperties": {}, "additionalProperties": {}, "propertyNames": {}, "dependencies": {},
	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {}, "if": {}, "then": {}, "else": {},
	"format": {}, "contentEncoding": {}, "contentMediaType": {},
}
