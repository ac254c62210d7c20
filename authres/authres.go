package authres

import (
	"errors"
	"strings"

	msgauth "github.com/emersion/go-msgauth/authres"
)

// Header field names carrying authentication results.
const (
	// HeaderName is the standard RFC 8601 header.
	HeaderName = "Authentication-Results"

	// HeaderNameOriginal is the header some security gateways use to keep
	// the verdict of the original receiving server after rewriting.
	HeaderNameOriginal = "Authentication-Results-Original"
)

// Value is the result token of a method clause, e.g. "pass" in "dkim=pass".
type Value string

const (
	ValueNone      Value = "none"
	ValuePass      Value = "pass"
	ValueFail      Value = "fail"
	ValueSoftFail  Value = "softfail"
	ValueHardFail  Value = "hardfail"
	ValueNeutral   Value = "neutral"
	ValuePolicy    Value = "policy"
	ValueTempError Value = "temperror"
	ValuePermError Value = "permerror"
)

// Well-known method names.
const (
	MethodDKIM  = "dkim"
	MethodDMARC = "dmarc"
	MethodSPF   = "spf"
	MethodARC   = "arc"
)

// Parse errors.
var (
	// ErrSyntax indicates the header value does not follow RFC 8601.
	ErrSyntax = errors.New("authres: syntax error")

	// ErrMissingAuthServID indicates the leading authserv-id is absent.
	ErrMissingAuthServID = errors.New("authres: missing authserv-id")

	// ErrUnterminatedComment indicates a "(" without a matching ")".
	ErrUnterminatedComment = errors.New("authres: unterminated comment")

	// ErrUnterminatedQuote indicates a quoted string without a closing quote.
	ErrUnterminatedQuote = errors.New("authres: unterminated quoted string")
)

// Property is a "ptype.property=value" clause such as "header.d=example.com".
// Clauses without a dot, e.g. Microsoft's "action=none", have an empty Type.
type Property struct {
	Type  string
	Name  string
	Value string
}

// Key returns the property in "ptype.name" form.
func (p Property) Key() string {
	if p.Type == "" {
		return p.Name
	}
	return p.Type + "." + p.Name
}

// MethodResult is a single "method=result" clause with its reason and
// properties.
type MethodResult struct {
	// Method is the lower-cased method name (dkim, spf, dmarc, ...).
	Method string

	// Version is the optional method version from "method/version".
	Version string

	// Value is the lower-cased result token.
	Value Value

	// Reason is the unquoted reason= text, if any.
	Reason string

	// Properties holds the ptype.property clauses in header order.
	Properties []Property
}

// Prop returns the value of the first property with the given
// "ptype.name" key, compared case-insensitively.
func (m MethodResult) Prop(key string) string {
	for _, p := range m.Properties {
		if strings.EqualFold(p.Key(), key) {
			return p.Value
		}
	}
	return ""
}

// Passed reports whether the clause carries a pass result.
func (m MethodResult) Passed() bool {
	return m.Value == ValuePass
}

// Result is one parsed Authentication-Results header occurrence.
type Result struct {
	// AuthServID identifies the server that performed the checks.
	AuthServID string

	// Version is the optional authres-version following the authserv-id.
	Version string

	// Methods holds the method clauses in header order. It is empty for
	// an "authserv-id; none" header.
	Methods []MethodResult

	// Raw is the header value as given to Parse.
	Raw string
}

// Method returns all clauses for the named method.
func (r *Result) Method(name string) []MethodResult {
	var out []MethodResult
	for _, m := range r.Methods {
		if strings.EqualFold(m.Method, name) {
			out = append(out, m)
		}
	}
	return out
}

// Header renders the result as an Authentication-Results header value.
// A result without an authserv-id renders as a bare clause list.
func (r *Result) Header() string {
	identity := r.AuthServID
	if r.Version != "" {
		identity += " " + r.Version
	}

	results := make([]msgauth.Result, 0, len(r.Methods))
	for _, m := range r.Methods {
		method := m.Method
		if m.Version != "" {
			method += "/" + m.Version
		}
		params := make(map[string]string, len(m.Properties)+1)
		if m.Reason != "" {
			params["reason"] = m.Reason
		}
		for _, p := range m.Properties {
			params[p.Key()] = p.Value
		}
		results = append(results, &msgauth.GenericResult{
			Method: method,
			Value:  msgauth.ResultValue(m.Value),
			Params: params,
		})
	}

	out := msgauth.Format(identity, results)
	if identity == "" {
		out = strings.TrimPrefix(out, "; ")
	}
	return strings.TrimSpace(out)
}
