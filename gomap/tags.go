package gomap

import (
	"fmt"
	"strings"
)

// ParseStructTag splits the value of a jdoc tag into its directives, such
// as omit, string or field='a name', keyed by directive name.  Flags map to
// "".
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)

	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(tag); i++ {
		char := tag[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case char == ',' && !inSingleQuote && !inDoubleQuote:
			part := strings.TrimSpace(current.String())
			if part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		case char == ' ' && !inSingleQuote && !inDoubleQuote:
			part := strings.TrimSpace(current.String())
			if part != "" {
				parts = append(parts, part)
				current.Reset()
			}
		default:
			current.WriteByte(char)
		}
	}
	if inSingleQuote || inDoubleQuote {
		return nil, fmt.Errorf("invalid tag: unterminated quote in %q", tag)
	}

	part := strings.TrimSpace(current.String())
	if part != "" {
		parts = append(parts, part)
	}

	for _, part := range parts {
		if idx := strings.Index(part, "="); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			value := strings.TrimSpace(part[idx+1:])
			if key == "" {
				return nil, fmt.Errorf("invalid tag: empty key in %q", part)
			}
			result[key] = unquoteValue(value)
		} else {
			result[part] = ""
		}
	}

	return result, nil
}

func unquoteValue(value string) string {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

// Directive controls how a single record field is mapped.
type Directive interface {
	applyDirective(*directives)
}

type directiveFunc func(*directives)

func (f directiveFunc) applyDirective(d *directives) { f(d) }

type directives struct {
	omit     bool
	id       string
	hasID    bool
	asString bool
}

// Exclude leaves the field out of the document.
func Exclude() Directive {
	return directiveFunc(func(d *directives) { d.omit = true })
}

// CustomID names the field id in the document instead of its declared
// name.  A blank id fails mapping with ErrInvalidKey.
func CustomID(id string) Directive {
	return directiveFunc(func(d *directives) {
		d.id = id
		d.hasID = true
	})
}

// ForceString maps the field to the string rendering of its value,
// whatever its type.
func ForceString() Directive {
	return directiveFunc(func(d *directives) { d.asString = true })
}

func collect(ds []Directive) directives {
	res := directives{}
	for _, d := range ds {
		d.applyDirective(&res)
	}
	return res
}

// tagDirectives reads directives from a struct tag:
//
//	omit or -       Exclude
//	field=name      CustomID(name)
//	string          ForceString
func tagDirectives(tag string) ([]Directive, error) {
	if tag == "-" {
		return []Directive{Exclude()}, nil
	}
	parsed, err := ParseStructTag(tag)
	if err != nil {
		return nil, err
	}
	var res []Directive
	if _, ok := parsed["omit"]; ok {
		res = append(res, Exclude())
	}
	if id, ok := parsed["field"]; ok {
		res = append(res, CustomID(id))
	}
	if _, ok := parsed["string"]; ok {
		res = append(res, ForceString())
	}
	return res, nil
}
