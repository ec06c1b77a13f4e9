// Package substitution holds the ordered message-to-error-code mapping table
// and applies it to file contents.
//
// Patterns come in three kinds. Literal patterns are escaped before
// compilation, so characters such as '.', '$' and '(' match themselves.
// Template patterns are C# interpolated strings whose {…} holes match any
// interpolation hole. Regex patterns are compiled as written.
package substitution

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "fantasybasket.io/replace-errors/internal/pkg/errors"
)

//go:embed mappings.yaml
var defaultMappings []byte

// Kind selects how a pattern is turned into a regular expression.
type Kind string

const (
	KindLiteral  Kind = "literal"
	KindTemplate Kind = "template"
	KindRegex    Kind = "regex"
)

// holeExpr matches a single interpolation hole such as {basePrice} or
// {availableSpace:F1}.
const holeExpr = `\{[^{}]*\}`

var holePattern = regexp.MustCompile(holeExpr)

// Entry is one declared mapping.
type Entry struct {
	Kind        Kind   `yaml:"kind"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Rule is a compiled Entry.
type Rule struct {
	Entry
	re *regexp.Regexp
}

// Expr returns the compiled regular expression source, or "" for a Rule
// that did not come from a Table.
func (r Rule) Expr() string {
	if r.re == nil {
		return ""
	}
	return r.re.String()
}

// Table is an immutable, ordered list of rules.
type Table struct {
	rules []Rule
}

type document struct {
	Mappings []Entry `yaml:"mappings"`
}

// Default returns the built-in mapping table.
func Default() (*Table, error) {
	t, err := Parse(defaultMappings)
	if err != nil {
		return nil, fmt.Errorf("default mappings: %w", err)
	}
	return t, nil
}

// Parse decodes a YAML mapping document and compiles it.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTableDecode, "decode mapping table")
	}
	return New(doc.Mappings...)
}

// New compiles entries into a Table, preserving their order.
func New(entries ...Entry) (*Table, error) {
	rules := make([]Rule, 0, len(entries))
	for i, e := range entries {
		if e.Kind == "" {
			e.Kind = KindLiteral
		}
		re, err := compile(e)
		if err != nil {
			return nil, fmt.Errorf("mapping %d: %w", i+1, err)
		}
		rules = append(rules, Rule{Entry: e, re: re})
	}
	return &Table{rules: rules}, nil
}

func compile(e Entry) (*regexp.Regexp, error) {
	if e.Pattern == "" {
		return nil, apperrors.New(apperrors.CodePatternEmpty, "pattern must not be empty")
	}

	var expr string
	switch e.Kind {
	case KindLiteral:
		expr = regexp.QuoteMeta(e.Pattern)
	case KindTemplate:
		expr = templateExpr(e.Pattern)
	case KindRegex:
		expr = e.Pattern
	default:
		return nil, apperrors.Wrap(apperrors.ErrInvalidPattern, apperrors.CodePatternKind,
			fmt.Sprintf("unknown pattern kind %q", e.Kind))
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodePatternRegexp, "compile pattern").
			WithParams(map[string]interface{}{"pattern": e.Pattern})
	}
	return re, nil
}

// templateExpr escapes the literal parts of a template and turns every
// {…} hole into a wildcard hole.
func templateExpr(tmpl string) string {
	var b strings.Builder
	last := 0
	for _, loc := range holePattern.FindAllStringIndex(tmpl, -1) {
		b.WriteString(regexp.QuoteMeta(tmpl[last:loc[0]]))
		b.WriteString(holeExpr)
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(tmpl[last:]))
	return b.String()
}

// Apply runs every rule over text in table order, replacing all matches.
// Replacements are inserted literally.
func (t *Table) Apply(text string) string {
	for _, r := range t.rules {
		text = r.re.ReplaceAllLiteralString(text, r.Replacement)
	}
	return text
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rules in table order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}
