package jsonschema

import (
	"errors"
	"strings"
)

// === Sentinel errors, grouped by concern. ===
var (
	// ErrInvalidSchema describes a schema document that is neither a JSON
	// object nor a JSON boolean. No function returns it: compile reports that
	// case as an issue with code "compile_invalid_schema".
	ErrInvalidSchema = errors.New("invalid schema: must be a JSON object or boolean")

	// ErrUnresolvedReference is returned when a $ref cannot be found in the
	// local registry or fetched remotely.
	ErrUnresolvedReference = errors.New("unresolved $ref")

	// ErrNoFetcher is returned by RefResolver.fetchRemote when a schema
	// references a remote URL and no Fetcher is configured. Compile itself
	// reports such a $ref as an issue with code "ref_unresolved".
	ErrNoFetcher = errors.New("no remote fetcher configured")

	// ErrInvalidUTF8 is returned when CompileBytes/ValidateBytes is given
	// data that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid data: not valid UTF-8")

	// ErrInvalidRegex describes a pattern or patternProperties key that fails
	// to compile as a regular expression. No function returns it: compile
	// reports that case as an issue with code "compile_invalid_regex".
	ErrInvalidRegex = errors.New("invalid regular expression")
)

// Issue is a single (message, position) pair, the atom every ValidationError
// is built from. Params carries the raw values the English Message was
// built from (e.g. {"max": 5, "value": 7} for a "maximum" violation) so a
// Localizer can re-render the message in another language without
// re-parsing Message. Only the numeric keywords (multipleOf, maximum,
// minimum, exclusiveMaximum, exclusiveMinimum) set Params; it is nil on
// every other issue.
type Issue struct {
	Message string
	Code    string
	Pos     Position
	Params  map[string]any
}

// ValidationError carries an ordered sequence of issues. It is used for both
// compile-time failures (schema compilation, $ref resolution, regex
// compilation) and run-time validation failures; both shapes are identical,
// as single-issue and aggregated errors are simply different lengths of the
// same slice.
type ValidationError struct {
	Errors []Issue
}

// CompileError is an alias for ValidationError: compile-time failures are
// reported with exactly the same shape as run-time validation failures.
type CompileError = ValidationError

func newIssue(code, message string, pos Position, params ...map[string]any) Issue {
	issue := Issue{Message: message, Code: code, Pos: pos}
	if len(params) > 0 {
		issue.Params = params[0]
	}
	return issue
}

// singleError builds a ValidationError carrying exactly one issue.
func singleError(code, message string, pos Position, params ...map[string]any) *ValidationError {
	return &ValidationError{Errors: []Issue{newIssue(code, message, pos, params...)}}
}

// Error implements the error interface, rendering every issue with its
// source position.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	for i, issue := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(issue.Pos.String())
		b.WriteString(": ")
		b.WriteString(issue.Message)
	}
	return b.String()
}

// mergeErrors concatenates the issues of every non-nil argument into a
// single ValidationError, returning nil if nothing was collected. This is
// the one aggregation primitive every compiler/validator path funnels
// through: propagation is always explicit slice concatenation, never
// exception-style control flow.
func mergeErrors(errs ...*ValidationError) *ValidationError {
	var all []Issue
	for _, e := range errs {
		if e == nil {
			continue
		}
		all = append(all, e.Errors...)
	}
	if len(all) == 0 {
		return nil
	}
	return &ValidationError{Errors: all}
}

// addIssue appends a single (code, message, pos) issue to an existing
// ValidationError, allocating it if necessary.
func addIssue(e *ValidationError, code, message string, pos Position, params ...map[string]any) *ValidationError {
	if e == nil {
		e = &ValidationError{}
	}
	e.Errors = append(e.Errors, newIssue(code, message, pos, params...))
	return e
}
