package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// FormatChecker validates a string instance against one named format. It
// only ever receives KindString instances: format is defined by Draft 7 to
// annotate strings only, never to constrain other instance types.
type FormatChecker func(s string) bool

// formatRegistry holds every format name a Compiler knows how to check,
// built-ins plus whatever RegisterFormat added.
type formatRegistry struct {
	checkers map[string]FormatChecker
}

func newFormatRegistry() *formatRegistry {
	r := &formatRegistry{checkers: make(map[string]FormatChecker)}
	for name, fn := range builtinFormats {
		r.checkers[name] = fn
	}
	return r
}

func (r *formatRegistry) register(name string, fn FormatChecker) {
	r.checkers[name] = fn
}

// compileFormatKeyword stores the declared format name without validating it
// against a known checker list: an unrecognized format name is not a
// compile error, since Draft 7 treats "format" as an open vocabulary and a
// Compiler without AssertFormat enabled never consults the registry anyway.
func compileFormatKeyword(s *Schema, value *Value) *ValidationError {
	if v, ok := value.Get("format"); ok {
		if v.Kind != KindString {
			return singleError("compile_invalid_format", "format must be a string", v.Pos)
		}
		s.format = v.Str
	}
	return nil
}

// validateFormat runs the registered checker for s.format, if any, against
// a string instance. Values of any other kind are left alone: format is
// annotation-only metadata on non-string instances per Draft 7 §7.
func validateFormat(s *Schema, instance *Value, reg *formatRegistry, result *ValidationError) *ValidationError {
	if instance.Kind != KindString {
		return result
	}
	checker, ok := reg.checkers[s.format]
	if !ok {
		return result
	}
	if !checker(instance.Str) {
		return addIssue(result, "format", "string does not satisfy format \""+s.format+"\"", instance.Pos)
	}
	return result
}

var (
	hostnameRe         = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	jsonPointerRe      = regexp.MustCompile(`^(/(([^/~])|(~[01]))*)*$`)
	relJSONPointerRe   = regexp.MustCompile(`^(0|[1-9][0-9]*)(#|(/(([^/~])|(~[01]))*)*)$`)
	uriTemplateExprRe  = regexp.MustCompile(`\{[^{}]*\}`)
)

// builtinFormats is the built-in Draft 7 format checker table. Several
// entries deliberately accept more than the strict grammar (e.g. idn-email
// accepts anything net/mail parses, including a display-name form) since
// Draft 7 formats are advisory by default and a conservative checker avoids
// rejecting technically-valid-enough real-world data.
var builtinFormats = map[string]FormatChecker{
	"date-time": func(s string) bool {
		_, err := time.Parse(time.RFC3339Nano, s)
		return err == nil
	},
	"date": func(s string) bool {
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	},
	"time": func(s string) bool {
		_, err := time.Parse("15:04:05Z07:00", s)
		if err == nil {
			return true
		}
		_, err = time.Parse("15:04:05", s)
		return err == nil
	},
	"email": func(s string) bool {
		addr, err := mail.ParseAddress(s)
		return err == nil && addr.Address == s
	},
	"idn-email": func(s string) bool {
		_, err := mail.ParseAddress(s)
		return err == nil
	},
	"hostname":     isValidHostname,
	"idn-hostname": isValidHostname,
	"ipv4": func(s string) bool {
		ip := net.ParseIP(s)
		return ip != nil && ip.To4() != nil && !strings.Contains(s, ":")
	},
	"ipv6": func(s string) bool {
		ip := net.ParseIP(s)
		return ip != nil && ip.To4() == nil && strings.Contains(s, ":")
	},
	"uri": func(s string) bool {
		u, err := url.ParseRequestURI(s)
		return err == nil && u.IsAbs()
	},
	"uri-reference": func(s string) bool {
		_, err := url.Parse(s)
		return err == nil
	},
	"iri": func(s string) bool {
		u, err := url.ParseRequestURI(s)
		return err == nil && u.IsAbs()
	},
	"iri-reference": func(s string) bool {
		_, err := url.Parse(s)
		return err == nil
	},
	"uri-template": func(s string) bool {
		_, err := url.Parse(uriTemplateExprRe.ReplaceAllString(s, ""))
		return err == nil
	},
	"json-pointer":          jsonPointerRe.MatchString,
	"relative-json-pointer": relJSONPointerRe.MatchString,
	"regex": func(s string) bool {
		_, err := regexp.Compile(s)
		return err == nil
	},
}

func isValidHostname(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	return hostnameRe.MatchString(s)
}
