// Package scan runs a pattern-matching engine over every readable location
// of a reported message: its header block, body parts, attachments, members
// of zip archives and attached messages.
//
// The engine sits behind the Matcher interface. Production deployments plug
// in a YARA binding; RuleMatcher is a regexp engine configured from YAML so
// the tool works without one.
package scan

//go:generate msgp
//msgp:ignore Matcher MatcherFunc

import (
	"context"
	"strings"
)

// Location prefixes stamped on matches.
const (
	LocationHeader     = "header"
	LocationBody       = "body"
	LocationAttachment = "attachment"
)

// StringMatch is one occurrence of a rule string inside scanned data.
type StringMatch struct {
	Offset     int64  `json:"offset" msg:"offset"`
	Identifier string `json:"identifier" msg:"identifier"`
	Data       []byte `json:"data" msg:"data"`
}

// Match is a rule that matched at a location.
type Match struct {
	Name      string            `json:"name" msg:"name"`
	Namespace string            `json:"namespace,omitempty" msg:"namespace"`
	Meta      map[string]string `json:"meta,omitempty" msg:"meta"`
	Tags      []string          `json:"tags,omitempty" msg:"tags"`
	Strings   []StringMatch     `json:"strings,omitempty" msg:"strings"`

	// Location is a path such as "body", "attachment/invoice.zip/doc.js"
	// or "attachment/fwd.eml/header".
	Location string `json:"location" msg:"location"`
}

// HasTag reports whether the match carries tag (case-insensitive).
func (m Match) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Matcher is a pattern-matching engine.
type Matcher interface {
	// Match returns the rules matching data. Location is left empty.
	Match(ctx context.Context, data []byte) ([]Match, error)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(ctx context.Context, data []byte) ([]Match, error)

// Match calls f(ctx, data).
func (f MatcherFunc) Match(ctx context.Context, data []byte) ([]Match, error) {
	return f(ctx, data)
}
