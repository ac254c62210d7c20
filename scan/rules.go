package scan

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRule is returned for rule files that cannot be compiled.
var ErrInvalidRule = errors.New("scan: invalid rule")

// maxStringMatches caps the occurrences recorded per rule string.
const maxStringMatches = 32

// Condition decides when a rule matches.
type Condition string

const (
	// ConditionAny matches when at least one string occurs.
	ConditionAny Condition = "any"
	// ConditionAll matches when every string occurs.
	ConditionAll Condition = "all"
)

// RuleString is one pattern of a rule. Exactly one of Pattern (a Go
// regular expression) and Text (a literal) is set.
type RuleString struct {
	ID      string `yaml:"id"`
	Pattern string `yaml:"pattern,omitempty"`
	Text    string `yaml:"text,omitempty"`
	NoCase  bool   `yaml:"nocase,omitempty"`
}

// Rule is a named set of patterns.
type Rule struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace,omitempty"`
	Tags      []string          `yaml:"tags,omitempty"`
	Meta      map[string]string `yaml:"meta,omitempty"`
	Strings   []RuleString      `yaml:"strings"`
	Condition Condition         `yaml:"condition,omitempty"`
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

type compiledString struct {
	id string
	re *regexp.Regexp
}

type compiledRule struct {
	rule    Rule
	strings []compiledString
}

// RuleMatcher is a Matcher backed by Go regular expressions.
// It is safe for concurrent use.
type RuleMatcher struct {
	rules []compiledRule
}

var _ Matcher = (*RuleMatcher)(nil)

// ParseRules decodes a YAML rule document:
//
//	rules:
//	  - name: credential_harvest
//	    namespace: phish
//	    tags: [credentials]
//	    meta: {severity: high}
//	    condition: any
//	    strings:
//	      - id: $verify
//	        text: verify your account
//	        nocase: true
//	      - id: $login_form
//	        pattern: '<form[^>]+action="https?://'
func ParseRules(data []byte) ([]Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return f.Rules, nil
}

// LoadRules reads and compiles rule files.
func LoadRules(paths ...string) (*RuleMatcher, error) {
	var rules []Rule
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading rules %s: %w", path, err)
		}
		parsed, err := ParseRules(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rules = append(rules, parsed...)
	}
	return NewRuleMatcher(rules...)
}

// NewRuleMatcher compiles rules.
func NewRuleMatcher(rules ...Rule) (*RuleMatcher, error) {
	m := &RuleMatcher{rules: make([]compiledRule, 0, len(rules))}
	seen := make(map[string]bool, len(rules))

	for _, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rule without name", ErrInvalidRule)
		}
		key := r.Namespace + ":" + r.Name
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate rule %s", ErrInvalidRule, r.Name)
		}
		seen[key] = true

		switch r.Condition {
		case "":
			r.Condition = ConditionAny
		case ConditionAny, ConditionAll:
		default:
			return nil, fmt.Errorf("%w: %s: unknown condition %q", ErrInvalidRule, r.Name, r.Condition)
		}
		if len(r.Strings) == 0 {
			return nil, fmt.Errorf("%w: %s: no strings", ErrInvalidRule, r.Name)
		}

		cr := compiledRule{rule: r, strings: make([]compiledString, 0, len(r.Strings))}
		for _, s := range r.Strings {
			re, err := compileString(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRule, r.Name, err)
			}
			cr.strings = append(cr.strings, compiledString{id: s.ID, re: re})
		}
		m.rules = append(m.rules, cr)
	}
	return m, nil
}

func compileString(s RuleString) (*regexp.Regexp, error) {
	if s.ID == "" {
		return nil, errors.New("string without id")
	}
	var expr string
	switch {
	case s.Pattern != "" && s.Text != "":
		return nil, fmt.Errorf("string %s has both pattern and text", s.ID)
	case s.Pattern != "":
		expr = s.Pattern
	case s.Text != "":
		expr = regexp.QuoteMeta(s.Text)
	default:
		return nil, fmt.Errorf("string %s is empty", s.ID)
	}
	if s.NoCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("string %s: %w", s.ID, err)
	}
	return re, nil
}

// Len returns the number of compiled rules.
func (m *RuleMatcher) Len() int {
	return len(m.rules)
}

// Match implements Matcher.
func (m *RuleMatcher) Match(ctx context.Context, data []byte) ([]Match, error) {
	var out []Match
	for _, cr := range m.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var hits []StringMatch
		matched := 0
		for _, cs := range cr.strings {
			locs := cs.re.FindAllIndex(data, maxStringMatches)
			if len(locs) == 0 {
				continue
			}
			matched++
			for _, loc := range locs {
				hits = append(hits, StringMatch{
					Offset:     int64(loc[0]),
					Identifier: cs.id,
					Data:       slices.Clone(data[loc[0]:loc[1]]),
				})
			}
		}

		if matched == 0 || (cr.rule.Condition == ConditionAll && matched < len(cr.strings)) {
			continue
		}

		slices.SortStableFunc(hits, func(a, b StringMatch) int {
			return cmp.Compare(a.Offset, b.Offset)
		})
		out = append(out, Match{
			Name:      cr.rule.Name,
			Namespace: cr.rule.Namespace,
			Meta:      maps.Clone(cr.rule.Meta),
			Tags:      slices.Clone(cr.rule.Tags),
			Strings:   hits,
		})
	}
	return out, nil
}

// String lists the rule names, for logging.
func (m *RuleMatcher) String() string {
	names := make([]string, len(m.rules))
	for i, cr := range m.rules {
		names[i] = cr.rule.Name
	}
	return strings.Join(names, ",")
}
