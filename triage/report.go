package triage

//go:generate msgp

import (
	"encoding/json"
	"time"

	"github.com/synqronlabs/phishtriage/scan"
	"github.com/synqronlabs/phishtriage/trust"
)

// Disposition is what the analyst should do with a reported message.
type Disposition string

const (
	// DispositionClean means no rule matched.
	DispositionClean Disposition = "clean"
	// DispositionTrustedMatch means rules matched on mail from a trusted
	// domain. Usually a false positive, reviewed at low priority.
	DispositionTrustedMatch Disposition = "trusted-match"
	// DispositionEscalate means rules matched on untrusted mail, or the
	// message could not be fully scanned.
	DispositionEscalate Disposition = "escalate"
)

// Decide maps a trust verdict and a match count to a disposition.
func Decide(trusted bool, matches int) Disposition {
	switch {
	case matches == 0:
		return DispositionClean
	case trusted:
		return DispositionTrustedMatch
	default:
		return DispositionEscalate
	}
}

// Report is the triage outcome for one reported message.
type Report struct {
	ID          string         `json:"id" msg:"id"`
	MailID      string         `json:"mail_id" msg:"mail_id"`
	MessageID   string         `json:"message_id,omitempty" msg:"message_id"`
	From        string         `json:"from,omitempty" msg:"from"`
	Subject     string         `json:"subject,omitempty" msg:"subject"`
	Trust       trust.Decision `json:"trust" msg:"trust"`
	Matches     []scan.Match   `json:"matches,omitempty" msg:"matches"`
	Disposition Disposition    `json:"disposition" msg:"disposition"`
	Error       string         `json:"error,omitempty" msg:"error"`
	CreatedAt   time.Time      `json:"created_at" msg:"created_at"`
}

// Locations returns the distinct match locations in order of appearance.
func (r *Report) Locations() []string {
	seen := make(map[string]bool, len(r.Matches))
	var out []string
	for _, m := range r.Matches {
		if !seen[m.Location] {
			seen[m.Location] = true
			out = append(out, m.Location)
		}
	}
	return out
}

// ToJSON serializes the report to JSON bytes.
func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// FromJSON deserializes a report from JSON bytes.
func FromJSON(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ToMessagePack serializes the report to MessagePack bytes.
func (r *Report) ToMessagePack() ([]byte, error) {
	return r.MarshalMsg(nil)
}

// FromMessagePack deserializes a report from MessagePack bytes.
func FromMessagePack(data []byte) (*Report, error) {
	var r Report
	if _, err := r.UnmarshalMsg(data); err != nil {
		return nil, err
	}
	return &r, nil
}
