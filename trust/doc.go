// Package trust decides whether a reported message was sent by a trusted
// domain, using the verdict the receiving server already recorded in its
// Authentication-Results header.
//
// A message is trusted only when the governing header reports a DKIM or
// DMARC pass for a domain in the caller's DomainSet:
//
//	trusted := trust.MustDomainSet("example.com", "example.net")
//	if trust.FromTrustedDomain(mail, trusted, trust.Options{}) {
//	    // skip the manual review queue
//	}
//
// Every ambiguous or malformed input evaluates to false. In particular a
// message carrying more than one Authentication-Results header is rejected
// unless Options.AllowMultipleAuthenticationResults is set, because an
// attacker can prepend a forged header ahead of the one added by the real
// gateway. Evaluate returns the same verdict together with the reason.
//
// # Caveats
//
// No signature is re-verified and no DNS query is made. The verdict is only
// as good as the server that wrote the header, so evaluate mail exactly as
// it was received by a server you control. Forwarded reports carry the
// forwarder's results, not yours.
package trust
