package trust

//go:generate msgp

import "fmt"

// Reason explains a Decision.
type Reason string

const (
	ReasonTrusted         Reason = "trusted"
	ReasonNoHeader        Reason = "no-header"
	ReasonMultipleHeaders Reason = "multiple-headers"
	ReasonConflictingDKIM Reason = "conflicting-dkim"
	ReasonMalformed       Reason = "malformed"
	ReasonForeignAuthServ Reason = "foreign-authserv"
	ReasonNoPass          Reason = "no-pass"
	ReasonUntrustedDomain Reason = "untrusted-domain"
	ReasonUnaligned       Reason = "unaligned"
)

// Decision is the outcome of Evaluate.
type Decision struct {
	Trusted bool   `json:"trusted" msg:"trusted"`
	Reason  Reason `json:"reason" msg:"reason"`

	// Method and Domain identify the clause the decision rests on, when
	// there is one.
	Method string `json:"method,omitempty" msg:"method"`
	Domain string `json:"domain,omitempty" msg:"domain"`

	// Headers is the number of governing headers found.
	Headers int `json:"headers" msg:"headers"`
}

func (d Decision) String() string {
	verdict := "untrusted"
	if d.Trusted {
		verdict = "trusted"
	}
	if d.Method == "" {
		return fmt.Sprintf("%s (%s)", verdict, d.Reason)
	}
	return fmt.Sprintf("%s (%s: %s %s)", verdict, d.Reason, d.Method, d.Domain)
}
