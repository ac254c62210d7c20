package trust

import (
	"golang.org/x/net/publicsuffix"
)

// OrganizationalDomain returns the organizational domain for the given domain.
//
// The organizational domain is the domain directly under the public suffix:
//   - example.com -> example.com
//   - mail.example.com -> example.com
//   - mail.example.co.uk -> example.co.uk
func OrganizationalDomain(domain string) string {
	domain = normalizeDomain(domain)
	if domain == "" {
		return ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		// localhost, bare suffixes and the like
		return domain
	}
	return etld1
}

// Aligned reports whether two domains share an organizational domain
// (relaxed alignment, RFC 7489 Section 3.1).
func Aligned(a, b string) bool {
	oa, ob := OrganizationalDomain(a), OrganizationalDomain(b)
	return oa != "" && oa == ob
}
