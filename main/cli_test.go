package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/synqronlabs/phishtriage/triage"
	"github.com/synqronlabs/phishtriage/trust"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var testConfig = filepath.Join("testdata", "phishtriage.yaml")

// --- check ---

func TestCheck_Text(t *testing.T) {
	trusted := filepath.Join("testdata", "trusted.eml")
	phish := filepath.Join("testdata", "phish.eml")

	out, _, err := runCmd(t, "", "check", "-c", testConfig, trusted, phish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if want := trusted + ": trusted (trusted: dkim example.com)"; lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if want := phish + ": untrusted (untrusted-domain: dkim examp1e-support.com)"; lines[1] != want {
		t.Errorf("line 1 = %q, want %q", lines[1], want)
	}
}

func TestCheck_JSON(t *testing.T) {
	out, _, err := runCmd(t, "", "check", "-c", testConfig, "-f", "json", filepath.Join("testdata", "trusted.eml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res struct {
		File string `json:"file"`
		trust.Decision
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if !res.Trusted || res.Reason != trust.ReasonTrusted || res.Domain != "example.com" || res.Headers != 1 {
		t.Errorf("decision = %+v", res.Decision)
	}
}

func TestCheck_NoConfigTrustsNothing(t *testing.T) {
	out, _, err := runCmd(t, "", "check", filepath.Join("testdata", "trusted.eml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "untrusted (untrusted-domain") {
		t.Errorf("expected untrusted verdict without config, got %q", out)
	}
}

func TestCheck_Stdin(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "trusted.eml"))
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := runCmd(t, string(raw), "check", "-c", testConfig, "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "-: trusted") {
		t.Errorf("output = %q", out)
	}
}

func TestCheck_Errors(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		contains string
	}{
		{"unknown format", []string{"check", "-f", "xml", "x.eml"}, "unknown format"},
		{"msgpack", []string{"check", "-f", "msgpack", "x.eml"}, "does not support"},
		{"missing file", []string{"check", filepath.Join("testdata", "nope.eml")}, "nope.eml"},
		{"missing config", []string{"check", "-c", "missing.yaml", "x.eml"}, "missing.yaml"},
		{"no args", []string{"check"}, "arg"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := runCmd(t, "", c.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.contains) {
				t.Errorf("expected %q in error, got %v", c.contains, err)
			}
		})
	}
}

// --- triage ---

func TestTriage_MboxJSON(t *testing.T) {
	out, _, err := runCmd(t, "", "triage", "-c", testConfig, "-f", "json", "--mbox", filepath.Join("testdata", "reports.mbox"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reports []*triage.Report
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		r, err := triage.FromJSON([]byte(line))
		if err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		reports = append(reports, r)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	first, second := reports[0], reports[1]
	if first.Subject != "first" || first.Disposition != triage.DispositionClean || !first.Trust.Trusted {
		t.Errorf("first report = %+v", first)
	}
	if second.Subject != "second" || second.Disposition != triage.DispositionEscalate {
		t.Errorf("second report = %+v", second)
	}
	if second.Trust.Reason != trust.ReasonNoHeader {
		t.Errorf("second trust reason = %q", second.Trust.Reason)
	}
	if len(second.Matches) != 1 || second.Matches[0].Name != "credential_harvest" || second.Matches[0].Location != "body" {
		t.Errorf("second matches = %+v", second.Matches)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Errorf("report IDs = %q, %q", first.ID, second.ID)
	}
}

func TestTriage_Text(t *testing.T) {
	out, _, err := runCmd(t, "", "triage", "-c", testConfig,
		filepath.Join("testdata", "trusted.eml"), filepath.Join("testdata", "phish.eml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], string(triage.DispositionClean)+"\t") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], string(triage.DispositionEscalate)+"\t") ||
		!strings.Contains(lines[1], "matches at header,body") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestTriage_MessagePack(t *testing.T) {
	out, _, err := runCmd(t, "", "triage", "-c", testConfig, "-f", "msgpack", filepath.Join("testdata", "phish.eml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := triage.FromMessagePack([]byte(out))
	if err != nil {
		t.Fatalf("FromMessagePack: %v", err)
	}
	if r.Disposition != triage.DispositionEscalate || r.Trust.Domain != "examp1e-support.com" {
		t.Errorf("report = %+v", r)
	}
}

func TestTriage_NoRulesWarns(t *testing.T) {
	out, stderr, err := runCmd(t, "", "triage", filepath.Join("testdata", "phish.eml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "content scan disabled") {
		t.Errorf("expected warning on stderr, got %q", stderr)
	}
	if !strings.HasPrefix(out, string(triage.DispositionClean)+"\t") {
		t.Errorf("output = %q", out)
	}
}

func TestTriage_BadRulesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "phishtriage.yaml")
	if err := os.WriteFile(cfg, []byte("rules: [broken.yaml]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("rules:\n  - name: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCmd(t, "", "triage", "-c", cfg, filepath.Join("testdata", "phish.eml")); err == nil {
		t.Fatal("expected error for invalid rules")
	}
}

func TestTriage_DebugLogging(t *testing.T) {
	_, stderr, err := runCmd(t, "", "triage", "-c", testConfig, "--debug", filepath.Join("testdata", "trusted.eml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, `"msg":"configuration loaded"`) {
		t.Errorf("expected JSON debug log, got %q", stderr)
	}
}
