package trust

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/publicsuffix"
)

// ErrInvalidDomain is returned by NewDomainSet for entries that are not
// valid domain names or that are public suffixes such as "com" or "co.uk".
var ErrInvalidDomain = errors.New("trust: invalid domain")

// DomainSet is an immutable, case-insensitive set of domain names.
// The zero value is an empty set.
type DomainSet struct {
	domains map[string]struct{}
}

// NewDomainSet builds a set from the given names. Names are lower-cased and
// a trailing dot is removed. A public suffix is rejected, since with
// MatchSubdomains it would trust every registrant below it.
func NewDomainSet(domains ...string) (DomainSet, error) {
	set := DomainSet{domains: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		name := normalizeDomain(d)
		if name == "" {
			return DomainSet{}, fmt.Errorf("%w: empty name", ErrInvalidDomain)
		}
		if labels, ok := dns.IsDomainName(name); !ok || labels == 0 {
			return DomainSet{}, fmt.Errorf("%w: %q", ErrInvalidDomain, d)
		}
		if ps, _ := publicsuffix.PublicSuffix(name); ps == name {
			return DomainSet{}, fmt.Errorf("%w: %q is a public suffix", ErrInvalidDomain, d)
		}
		set.domains[name] = struct{}{}
	}
	return set, nil
}

// MustDomainSet is like NewDomainSet but panics on an invalid name.
func MustDomainSet(domains ...string) DomainSet {
	set, err := NewDomainSet(domains...)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether domain is in the set.
func (s DomainSet) Contains(domain string) bool {
	if len(s.domains) == 0 {
		return false
	}
	_, ok := s.domains[normalizeDomain(domain)]
	return ok
}

// ContainsParent reports whether domain or one of its parent domains is in
// the set.
func (s DomainSet) ContainsParent(domain string) bool {
	name := normalizeDomain(domain)
	for name != "" {
		if s.Contains(name) {
			return true
		}
		_, parent, ok := strings.Cut(name, ".")
		if !ok {
			break
		}
		name = parent
	}
	return false
}

// Len returns the number of domains in the set.
func (s DomainSet) Len() int {
	return len(s.domains)
}

// Domains returns the sorted members of the set.
func (s DomainSet) Domains() []string {
	out := make([]string, 0, len(s.domains))
	for d := range s.domains {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

func normalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return ""
	}
	return strings.TrimSuffix(dns.CanonicalName(domain), ".")
}
