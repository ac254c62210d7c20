package trust

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/synqronlabs/phishtriage"
)

func arHeaders(values ...string) phishtriage.Headers {
	h := phishtriage.Headers{{Name: "From", Value: "Billing <billing@example.com>"}}
	for _, v := range values {
		h = append(h, phishtriage.Header{Name: "Authentication-Results", Value: v})
	}
	return h
}

func TestEvaluate(t *testing.T) {
	trusted := MustDomainSet("example.com", "partner.example")

	tests := []struct {
		name    string
		headers phishtriage.Headers
		opts    Options
		want    bool
		reason  Reason
	}{
		{
			name:    "no header",
			headers: phishtriage.Headers{{Name: "From", Value: "a@example.com"}},
			reason:  ReasonNoHeader,
		},
		{
			name:    "dkim pass trusted",
			headers: arHeaders("mx.example.org; dkim=pass header.d=example.com"),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "dmarc pass trusted",
			headers: arHeaders("mx.example.org; spf=fail; dmarc=pass header.from=partner.example"),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "dkim domain from header.i",
			headers: arHeaders("mx.example.org; dkim=pass header.i=billing@example.com"),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "case-insensitive domain",
			headers: arHeaders("mx.example.org; DKIM=Pass header.d=EXAMPLE.com."),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "pass for untrusted domain",
			headers: arHeaders("mx.example.org; dkim=pass header.d=evil.example"),
			reason:  ReasonUntrustedDomain,
		},
		{
			name:    "fail for trusted domain",
			headers: arHeaders("mx.example.org; dkim=fail header.d=example.com; dmarc=fail header.from=example.com"),
			reason:  ReasonNoPass,
		},
		{
			name:    "softfail is not pass",
			headers: arHeaders("mx.example.org; dmarc=softfail header.from=example.com"),
			reason:  ReasonNoPass,
		},
		{
			name:    "spf pass alone is not enough",
			headers: arHeaders("mx.example.org; spf=pass smtp.mailfrom=example.com"),
			reason:  ReasonNoPass,
		},
		{
			name:    "none",
			headers: arHeaders("mx.example.org; none"),
			reason:  ReasonNoPass,
		},
		{
			name:    "any trusted pass is sufficient",
			headers: arHeaders("mx.example.org; dkim=pass header.d=esp.example; dmarc=pass header.from=example.com"),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "several dkim clauses in a single header",
			headers: arHeaders("mx.example.org; dkim=pass header.d=esp.example; dkim=pass header.d=example.com"),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "comments do not change the verdict",
			headers: arHeaders("mx.example.org (postfix);\r\n\tdkim=pass (2048-bit key; secure) header.d=example.com (the (nested) signer)"),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "malformed header",
			headers: arHeaders("mx.example.org; dkim=pass (unterminated"),
			reason:  ReasonMalformed,
		},
		{
			name:    "two headers rejected by default",
			headers: arHeaders("mx.example.org; dkim=pass header.d=example.com", "mx.example.org; dkim=pass header.d=example.com"),
			reason:  ReasonMultipleHeaders,
		},
		{
			name:    "two headers rejected even when one is garbage",
			headers: arHeaders("garbage", "mx.example.org; dkim=pass header.d=example.com"),
			reason:  ReasonMultipleHeaders,
		},
		{
			name:    "one header per method allowed",
			headers: arHeaders("mx.example.org; spf=pass smtp.mailfrom=example.com", "mx.example.org; dkim=pass header.d=example.com"),
			opts:    Options{AllowMultipleAuthenticationResults: true},
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "two dkim outcomes across headers",
			headers: arHeaders("mx.example.org; dkim=fail header.d=example.com", "mx.example.org; dkim=pass header.d=example.com"),
			opts:    Options{AllowMultipleAuthenticationResults: true},
			reason:  ReasonConflictingDKIM,
		},
		{
			name:    "two identical dkim passes across headers",
			headers: arHeaders("mx.example.org; dkim=pass header.d=example.com", "mx.example.org; dkim=pass header.d=example.com"),
			opts:    Options{AllowMultipleAuthenticationResults: true},
			reason:  ReasonConflictingDKIM,
		},
		{
			name:    "malformed among multiple",
			headers: arHeaders("mx.example.org; dkim=pass header.d=example.com", "mx.example.org; dmarc"),
			opts:    Options{AllowMultipleAuthenticationResults: true},
			reason:  ReasonMalformed,
		},
		{
			name:    "subdomain not trusted by default",
			headers: arHeaders("mx.example.org; dkim=pass header.d=mail.example.com"),
			reason:  ReasonUntrustedDomain,
		},
		{
			name:    "subdomain trusted when enabled",
			headers: arHeaders("mx.example.org; dkim=pass header.d=mail.example.com"),
			opts:    Options{MatchSubdomains: true},
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "lookalike is not a subdomain",
			headers: arHeaders("mx.example.org; dkim=pass header.d=badexample.com"),
			opts:    Options{MatchSubdomains: true},
			reason:  ReasonUntrustedDomain,
		},
		{
			name:    "aligned with from",
			headers: arHeaders("mx.example.org; dkim=pass header.d=mail.example.com"),
			opts:    Options{MatchSubdomains: true, RequireFromAlignment: true},
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "trusted third party signing someone else's mail",
			headers: arHeaders("mx.example.org; dkim=pass header.d=partner.example"),
			opts:    Options{RequireFromAlignment: true},
			reason:  ReasonUnaligned,
		},
		{
			name:    "accepted authserv-id",
			headers: arHeaders("MX.Example.ORG; dkim=pass header.d=example.com"),
			opts:    Options{AuthServIDs: []string{"mx.example.org"}},
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "foreign authserv-id",
			headers: arHeaders("mx.attacker.example; dkim=pass header.d=example.com"),
			opts:    Options{AuthServIDs: []string{"mx.example.org"}},
			reason:  ReasonForeignAuthServ,
		},
		{
			name:    "exchange online header without authserv-id",
			headers: arHeaders("spf=pass (sender IP is 192.0.2.1) smtp.mailfrom=example.com; dkim=pass (signature was verified) header.d=example.com;dmarc=pass action=none header.from=example.com;compauth=pass reason=100"),
			want:    true,
			reason:  ReasonTrusted,
		},
		{
			name:    "missing authserv-id fails an allowlist",
			headers: arHeaders("dkim=pass header.d=example.com;dmarc=pass action=none header.from=example.com"),
			opts:    Options{AuthServIDs: []string{"mx.example.org"}},
			reason:  ReasonForeignAuthServ,
		},
		{
			name: "foreign header ignored among multiple",
			headers: arHeaders(
				"mx.attacker.example; dkim=pass header.d=example.com",
				"mx.example.org; dkim=fail header.d=example.com",
			),
			opts:   Options{AllowMultipleAuthenticationResults: true, AuthServIDs: []string{"mx.example.org"}},
			reason: ReasonNoPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.headers, trusted, tt.opts)
			if d.Trusted != tt.want {
				t.Errorf("Trusted = %v, want %v (%s)", d.Trusted, tt.want, d)
			}
			if d.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", d.Reason, tt.reason)
			}
			if got := FromTrustedDomain(tt.headers, trusted, tt.opts); got != tt.want {
				t.Errorf("FromTrustedDomain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_OriginalHeader(t *testing.T) {
	trusted := MustDomainSet("example.com")
	original := phishtriage.Headers{
		{Name: "Authentication-Results", Value: "gateway.example.org; dkim=fail header.d=example.com"},
		{Name: "Authentication-Results-Original", Value: "mx.example.org; dkim=pass header.d=example.com"},
	}

	if FromTrustedDomain(original, trusted, Options{}) {
		t.Error("standard header reports fail, want untrusted")
	}
	if !FromTrustedDomain(original, trusted, Options{UseAuthenticationResultsOriginal: true}) {
		t.Error("original header reports pass, want trusted")
	}

	standardOnly := arHeaders("mx.example.org; dkim=pass header.d=example.com")
	d := Evaluate(standardOnly, trusted, Options{UseAuthenticationResultsOriginal: true})
	if d.Trusted || d.Reason != ReasonNoHeader {
		t.Errorf("standard header must be ignored with original option: %s", d)
	}
}

func TestEvaluate_ExchangeOnline(t *testing.T) {
	trusted := MustDomainSet("contoso.com", "example.com")
	exchange := "spf=pass (sender IP is 192.0.2.10) smtp.mailfrom=contoso.com; " +
		"dkim=pass (signature was verified) header.d=contoso.com;" +
		"dmarc=pass action=none header.from=contoso.com;compauth=pass reason=100"
	gmail := "mx.google.com;\r\n       dkim=pass header.i=@example.com header.s=s1 header.b=Ab+c/D=;\r\n" +
		"       spf=pass (google.com: domain of bob@example.com designates 192.0.2.1 as permitted sender) smtp.mailfrom=bob@example.com;\r\n" +
		"       dmarc=pass (p=NONE sp=NONE dis=NONE) header.from=example.com"

	tests := []struct {
		name   string
		value  string
		domain string
	}{
		{"exchange online", exchange, "contoso.com"},
		{"gmail", gmail, "example.com"},
	}

	for _, tt := range tests {
		for _, original := range []bool{false, true} {
			opts := Options{UseAuthenticationResultsOriginal: original}
			t.Run(tt.name+" "+opts.HeaderName(), func(t *testing.T) {
				headers := phishtriage.Headers{
					{Name: "From", Value: "someone@" + tt.domain},
					{Name: opts.HeaderName(), Value: tt.value},
				}
				d := Evaluate(headers, trusted, opts)
				if !d.Trusted || d.Reason != ReasonTrusted {
					t.Fatalf("decision = %s, want trusted", d)
				}
				if d.Domain != tt.domain {
					t.Errorf("Domain = %q, want %q", d.Domain, tt.domain)
				}
			})
		}
	}
}

func TestEvaluate_DoesNotMutateInputs(t *testing.T) {
	headers := arHeaders("mx.example.org; dkim=pass header.d=example.com")
	before := append(phishtriage.Headers(nil), headers...)
	opts := Options{AuthServIDs: []string{"mx.example.org"}}

	Evaluate(headers, MustDomainSet("example.com"), opts)

	for i := range headers {
		if headers[i] != before[i] {
			t.Fatalf("header %d changed: %+v", i, headers[i])
		}
	}
	if opts.AuthServIDs[0] != "mx.example.org" {
		t.Error("options changed")
	}
}

func TestEvaluate_NilSource(t *testing.T) {
	if FromTrustedDomain(nil, MustDomainSet("example.com"), Options{}) {
		t.Error("nil source must not be trusted")
	}
	var mail *phishtriage.Mail
	if FromTrustedDomain(mail, MustDomainSet("example.com"), Options{}) {
		t.Error("nil mail must not be trusted")
	}
}

func TestEvaluate_Mail(t *testing.T) {
	raw := "Authentication-Results: mx.example.org;\r\n" +
		"  dkim=pass header.d=example.com;\r\n" +
		"  dmarc=pass header.from=example.com\r\n" +
		"From: billing@example.com\r\n" +
		"\r\n" +
		"body\r\n"
	mail, err := phishtriage.ParseMail([]byte(raw))
	if err != nil {
		t.Fatalf("ParseMail failed: %v", err)
	}

	if !FromTrustedDomain(mail, MustDomainSet("example.com"), Options{RequireFromAlignment: true}) {
		t.Error("expected trusted")
	}
	if FromTrustedDomain(mail, MustDomainSet("example.net"), Options{}) {
		t.Error("expected untrusted for a different set")
	}
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		d    Decision
		want string
	}{
		{Decision{Reason: ReasonNoHeader}, "untrusted (no-header)"},
		{Decision{Trusted: true, Reason: ReasonTrusted, Method: "dkim", Domain: "example.com"}, "trusted (trusted: dkim example.com)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEvaluator(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ids := []string{"mx.example.org"}
	e := NewEvaluator(MustDomainSet("example.com"), Options{AuthServIDs: ids}, logger)
	ids[0] = "mx.attacker.example"

	headers := arHeaders("mx.example.org; dkim=pass header.d=example.com")
	if !e.FromTrustedDomain(context.Background(), headers) {
		t.Fatal("expected trusted")
	}
	if got := e.Options().AuthServIDs[0]; got != "mx.example.org" {
		t.Errorf("evaluator options changed by caller: %q", got)
	}
	if !strings.Contains(buf.String(), "reason=trusted") {
		t.Errorf("decision not logged: %q", buf.String())
	}
}

func TestEvaluator_Concurrent(t *testing.T) {
	e := NewEvaluator(MustDomainSet("example.com"), Options{}, slog.New(slog.DiscardHandler))
	good := arHeaders("mx.example.org; dkim=pass header.d=example.com")
	bad := arHeaders("mx.example.org; dkim=pass header.d=example.com", "mx.example.org; dkim=pass header.d=example.com")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src, want := good, true
			if i%2 == 1 {
				src, want = bad, false
			}
			if got := e.FromTrustedDomain(context.Background(), src); got != want {
				t.Errorf("goroutine %d: got %v, want %v", i, got, want)
			}
		}()
	}
	wg.Wait()
}
