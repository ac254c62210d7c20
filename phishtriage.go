// Phishtriage is a toolkit for triaging user-reported phishing mail.
//
// # Messages
//
// Parse a reported message from its raw RFC 5322 form:
//
//	mail, err := phishtriage.ParseMail(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(mail.Subject(), mail.FromDomain())
//
// Reports collected in an mbox file are read one at a time:
//
//	err := phishtriage.ReadMbox(f, func(i int, mail *phishtriage.Mail) error {
//	    return process(mail)
//	})
//
// # Trusted senders
//
// The trust package reads the Authentication-Results header the receiving
// server added and decides whether the message comes from an allowlisted
// domain. It fails closed: missing, malformed or ambiguous headers are never
// trusted.
//
//	trusted := trust.MustDomainSet("example.com", "partner.example")
//	if trust.FromTrustedDomain(mail, trusted, trust.Options{}) {
//	    // skip the expensive review
//	}
//
// # Content scanning
//
// The scan package walks headers, bodies, attachments, zip archives and
// attached messages and hands every piece to a pattern Matcher (a YARA
// binding in production, or the built-in regexp RuleMatcher).
//
// # Triage
//
// The triage package combines both into a Report with a Disposition the
// analyst acts on. Reports serialize to JSON and MessagePack.
package phishtriage
