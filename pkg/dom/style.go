package dom

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Style is an ordered list of inline CSS declarations. Order is significant:
// under last-declaration-wins semantics a later declaration overrides an
// earlier one for the same property.
type Style []Declaration

// Decl is shorthand for a non-important declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// ParseStyle parses an inline style string such as "gap: 4px; color: red".
// An empty or whitespace-only string yields a nil Style. A declaration
// without a value is an error.
func ParseStyle(s string) (Style, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return nil, nil
	}
	// The parser drops the value of a final declaration without a terminator.
	if !strings.HasSuffix(src, ";") {
		src += ";"
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		return nil, err
	}
	out := make(Style, 0, len(decls))
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		if prop == "" {
			continue
		}
		value := strings.TrimSpace(d.Value)
		if value == "" {
			return nil, fmt.Errorf("style property %q has no value", prop)
		}
		out = append(out, Declaration{
			Property:  prop,
			Value:     value,
			Important: d.Important,
		})
	}
	return out, nil
}

// MustParseStyle is like ParseStyle but panics on error. Use it for
// literals only.
func MustParseStyle(s string) Style {
	st, err := ParseStyle(s)
	if err != nil {
		panic("dom: invalid style " + s + ": " + err.Error())
	}
	return st
}

// MergeStyle returns computed followed by caller. Computed declarations come
// first so that caller declarations win on conflicting properties.
func MergeStyle(computed, caller Style) Style {
	out := make(Style, 0, len(computed)+len(caller))
	out = append(out, computed...)
	out = append(out, caller...)
	return out
}

// Get returns the value of the last declaration for property.
func (s Style) Get(property string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Property == property {
			return s[i].Value, true
		}
	}
	return "", false
}

// String renders the declarations as "prop: value; prop: value;".
// Characters that would end a declaration or open a block are removed from
// values, so an interpolated value cannot inject further declarations.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s))
	for _, d := range s {
		v := valueCleaner.Replace(d.Value)
		if d.Important {
			v += " !important"
		}
		parts = append(parts, d.Property+": "+v+";")
	}
	return strings.Join(parts, " ")
}

var valueCleaner = strings.NewReplacer(";", "", "{", "", "}", "", "\n", " ", "\r", " ")
