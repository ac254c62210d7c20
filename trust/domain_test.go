package trust

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewDomainSet(t *testing.T) {
	set, err := NewDomainSet("Example.COM", "partner.example.", " spaced.example ")
	if err != nil {
		t.Fatalf("NewDomainSet failed: %v", err)
	}

	if got := set.Domains(); !slices.Equal(got, []string{"example.com", "partner.example", "spaced.example"}) {
		t.Errorf("Domains() = %v", got)
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}

	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", true},
		{"EXAMPLE.com", true},
		{"example.com.", true},
		{"partner.example", true},
		{"mail.example.com", false},
		{"example.org", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := set.Contains(tt.domain); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}

func TestNewDomainSet_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		domain string
	}{
		{"empty", ""},
		{"root", "."},
		{"empty label", "example..com"},
		{"label too long", strings.Repeat("a", 64) + ".com"},
		{"top-level domain", "com"},
		{"public suffix", "co.uk"},
		{"public suffix upper case", "CO.UK."},
		{"private suffix", "github.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDomainSet("example.com", tt.domain); !errors.Is(err, ErrInvalidDomain) {
				t.Errorf("NewDomainSet(%q) error = %v, want ErrInvalidDomain", tt.domain, err)
			}
		})
	}
}

func TestNewDomainSet_BelowPublicSuffix(t *testing.T) {
	set, err := NewDomainSet("example.co.uk", "project.github.io")
	if err != nil {
		t.Fatalf("NewDomainSet failed: %v", err)
	}
	if !set.ContainsParent("mail.example.co.uk") || set.ContainsParent("other.co.uk") {
		t.Errorf("ContainsParent mismatch for %v", set.Domains())
	}
}

func TestMustDomainSet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustDomainSet("example..com")
}

func TestDomainSet_Zero(t *testing.T) {
	var set DomainSet
	if set.Contains("example.com") || set.ContainsParent("example.com") {
		t.Error("zero DomainSet must be empty")
	}
	if set.Len() != 0 || len(set.Domains()) != 0 {
		t.Error("zero DomainSet must have no members")
	}
}

func TestDomainSet_ContainsParent(t *testing.T) {
	set := MustDomainSet("example.com")

	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", true},
		{"mail.example.com", true},
		{"a.b.Example.Com", true},
		{"badexample.com", false},
		{"com", false},
	}
	for _, tt := range tests {
		if got := set.ContainsParent(tt.domain); got != tt.want {
			t.Errorf("ContainsParent(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}

func TestOrganizationalDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"example.com", "example.com"},
		{"mail.example.com", "example.com"},
		{"MAIL.Example.COM.", "example.com"},
		{"a.b.example.co.uk", "example.co.uk"},
		{"localhost", "localhost"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := OrganizationalDomain(tt.domain); got != tt.want {
			t.Errorf("OrganizationalDomain(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"example.com", "example.com", true},
		{"mail.example.com", "example.com", true},
		{"example.com", "example.net", false},
		{"a.example.co.uk", "b.example.co.uk", true},
		{"example.co.uk", "other.co.uk", false},
		{"example.com", "", false},
	}
	for _, tt := range tests {
		if got := Aligned(tt.a, tt.b); got != tt.want {
			t.Errorf("Aligned(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
