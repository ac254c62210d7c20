// Package authres parses Authentication-Results header fields per RFC 8601.
//
// A receiving server records the outcome of its SPF, DKIM and DMARC checks in
// an Authentication-Results header:
//
//	Authentication-Results: mx.example.org;
//	    dkim=pass (2048-bit key) header.d=example.com header.i=@example.com;
//	    spf=pass smtp.mailfrom=example.com;
//	    dmarc=pass (p=reject) header.from=example.com
//
// Parse turns one such header value into a Result holding the
// authentication service identifier and one MethodResult per clause:
//
//	res, err := authres.Parse(value)
//	if err != nil {
//	    return err
//	}
//	for _, m := range res.Method("dkim") {
//	    fmt.Println(m.Value, m.Prop("header.d"))
//	}
//
// Clauses are parsed by github.com/emersion/go-msgauth/authres, so DKIM,
// SPF and DMARC clauses expose the properties that package extracts
// (header.d, header.i, smtp.mailfrom, header.from, ...). Comments are
// discarded and folded whitespace is ignored before the value reaches it.
// Values holding quoted strings are tokenized here instead.
//
// Exchange Online omits the authserv-id and starts with the first clause:
//
//	Authentication-Results: spf=pass (sender IP is 192.0.2.1)
//	    smtp.mailfrom=contoso.com; dkim=pass (signature was verified)
//	    header.d=contoso.com;dmarc=pass action=none header.from=contoso.com
//
// Such a value parses with an empty AuthServID.
//
// Method names, result values and property names are lower-cased;
// property values keep their original case.
//
// The package only reads what a server asserted. It performs no
// cryptographic verification and no DNS lookups.
//
// # References
//
//   - RFC 8601: Message Header Field for Indicating Message Authentication Status
//   - RFC 7601: superseded predecessor, same syntax
package authres
