package trust

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/synqronlabs/phishtriage"
	"github.com/synqronlabs/phishtriage/authres"
	"github.com/synqronlabs/phishtriage/utils"
)

// HeaderSource gives access to every value of a header field, in document
// order. phishtriage.Headers and *phishtriage.Mail implement it.
type HeaderSource interface {
	GetAll(name string) []string
}

// Options controls how Authentication-Results headers are interpreted.
// The zero value is the strictest configuration.
type Options struct {
	// AllowMultipleAuthenticationResults accepts messages with several
	// governing headers, as written by MTAs that add one header per
	// method. More than one DKIM result across those headers is still
	// rejected.
	AllowMultipleAuthenticationResults bool

	// UseAuthenticationResultsOriginal reads Authentication-Results-Original
	// instead of Authentication-Results. Some security gateways move the
	// upstream verdict to that header.
	UseAuthenticationResultsOriginal bool

	// MatchSubdomains trusts subdomains of every trusted domain.
	MatchSubdomains bool

	// RequireFromAlignment requires the passing domain to share an
	// organizational domain with the RFC5322.From address.
	RequireFromAlignment bool

	// AuthServIDs restricts evaluation to headers written by these
	// authentication services. Empty accepts any authserv-id.
	AuthServIDs []string
}

// HeaderName returns the governing header field name for these options.
func (o Options) HeaderName() string {
	if o.UseAuthenticationResultsOriginal {
		return authres.HeaderNameOriginal
	}
	return authres.HeaderName
}

func (o Options) acceptsAuthServ(id string) bool {
	if len(o.AuthServIDs) == 0 {
		return true
	}
	return slices.ContainsFunc(o.AuthServIDs, func(s string) bool {
		return utils.EqualFoldASCII(s, id)
	})
}

// FromTrustedDomain reports whether src carries a DKIM or DMARC pass for
// a domain in trusted. Any ambiguity returns false.
func FromTrustedDomain(src HeaderSource, trusted DomainSet, opts Options) bool {
	return Evaluate(src, trusted, opts).Trusted
}

// Evaluate is FromTrustedDomain with an explanation. It never mutates its
// inputs and is safe for concurrent use.
func Evaluate(src HeaderSource, trusted DomainSet, opts Options) Decision {
	if src == nil {
		return Decision{Reason: ReasonNoHeader}
	}

	values := src.GetAll(opts.HeaderName())
	d := Decision{Headers: len(values)}

	switch {
	case len(values) == 0:
		d.Reason = ReasonNoHeader
		return d
	case len(values) > 1 && !opts.AllowMultipleAuthenticationResults:
		d.Reason = ReasonMultipleHeaders
		return d
	}

	var methods []authres.MethodResult
	dkimCount := 0
	accepted := 0
	for _, v := range values {
		res, err := authres.Parse(v)
		if err != nil {
			d.Reason = ReasonMalformed
			return d
		}
		if !opts.acceptsAuthServ(res.AuthServID) {
			continue
		}
		accepted++
		dkimCount += len(res.Method(authres.MethodDKIM))
		methods = append(methods, res.Methods...)
	}

	if accepted == 0 {
		d.Reason = ReasonForeignAuthServ
		return d
	}
	if len(values) > 1 && dkimCount > 1 {
		d.Reason = ReasonConflictingDKIM
		return d
	}

	return decide(d, methods, trusted, opts, src)
}

func decide(d Decision, methods []authres.MethodResult, trusted DomainSet, opts Options, src HeaderSource) Decision {
	var fromDomain string
	if opts.RequireFromAlignment {
		fromDomain = singleFromDomain(src)
	}

	d.Reason = ReasonNoPass
	for _, m := range methods {
		domain := clauseDomain(m)
		if domain == "" || !m.Passed() {
			continue
		}

		inSet := trusted.Contains(domain)
		if !inSet && opts.MatchSubdomains {
			inSet = trusted.ContainsParent(domain)
		}

		switch {
		case !inSet:
			if d.Reason == ReasonNoPass {
				d.Reason, d.Method, d.Domain = ReasonUntrustedDomain, m.Method, domain
			}
		case opts.RequireFromAlignment && !Aligned(domain, fromDomain):
			if d.Reason != ReasonUnaligned {
				d.Reason, d.Method, d.Domain = ReasonUnaligned, m.Method, domain
			}
		default:
			d.Trusted, d.Reason, d.Method, d.Domain = true, ReasonTrusted, m.Method, domain
			return d
		}
	}
	return d
}

// clauseDomain returns the domain a DKIM or DMARC clause vouches for, or
// an empty string for other methods.
func clauseDomain(m authres.MethodResult) string {
	var domain string
	switch strings.ToLower(m.Method) {
	case authres.MethodDKIM:
		domain = m.Prop("header.d")
		if domain == "" {
			i := m.Prop("header.i")
			if at := strings.LastIndexByte(i, '@'); at >= 0 {
				domain = i[at+1:]
			}
		}
	case authres.MethodDMARC:
		domain = m.Prop("header.from")
	}
	return normalizeDomain(domain)
}

// singleFromDomain returns the From domain when the message has exactly
// one From header holding exactly one address.
func singleFromDomain(src HeaderSource) string {
	from := src.GetAll("From")
	if len(from) != 1 {
		return ""
	}
	addr, err := phishtriage.ParseAddress(from[0])
	if err != nil {
		return ""
	}
	return addr.Domain
}

// Evaluator applies a fixed DomainSet and Options and logs each decision.
// It is safe for concurrent use.
type Evaluator struct {
	trusted DomainSet
	opts    Options
	logger  *slog.Logger
}

// NewEvaluator returns an Evaluator. A nil logger uses slog.Default().
func NewEvaluator(trusted DomainSet, opts Options, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	opts.AuthServIDs = slices.Clone(opts.AuthServIDs)
	return &Evaluator{trusted: trusted, opts: opts, logger: logger}
}

// Options returns the evaluator's options.
func (e *Evaluator) Options() Options {
	opts := e.opts
	opts.AuthServIDs = slices.Clone(e.opts.AuthServIDs)
	return opts
}

// Trusted returns the evaluator's domain set.
func (e *Evaluator) Trusted() DomainSet {
	return e.trusted
}

// Evaluate evaluates src and logs the decision at debug level.
func (e *Evaluator) Evaluate(ctx context.Context, src HeaderSource) Decision {
	d := Evaluate(src, e.trusted, e.opts)
	e.logger.DebugContext(ctx, "trust decision",
		slog.Bool("trusted", d.Trusted),
		slog.String("reason", string(d.Reason)),
		slog.String("method", d.Method),
		slog.String("domain", d.Domain),
		slog.Int("headers", d.Headers),
	)
	return d
}

// FromTrustedDomain reports e.Evaluate(ctx, src).Trusted.
func (e *Evaluator) FromTrustedDomain(ctx context.Context, src HeaderSource) bool {
	return e.Evaluate(ctx, src).Trusted
}
