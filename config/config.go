// Package config loads the phishtriage YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/synqronlabs/phishtriage/scan"
	"github.com/synqronlabs/phishtriage/trust"
)

// DefaultWorkers is the triage concurrency when none is configured.
const DefaultWorkers = 4

// Config is the validated tool configuration.
type Config struct {
	// Path is the file the configuration was loaded from, if any.
	Path string

	AllowMultipleAuthenticationResults bool
	UseAuthenticationResultsOriginal   bool
	MatchSubdomains                    bool
	RequireFromAlignment               bool
	AuthServIDs                        []string

	// Rules are rule file paths, resolved against the config directory.
	Rules []string

	Workers           int
	MaxDepth          int
	MaxArchiveSize    int64
	MaxArchiveMembers int
	MaxArchiveTotal   int64

	domains trust.DomainSet
}

type yamlConfig struct {
	TrustedDomains                     []string `yaml:"trusted_domains"`
	AllowMultipleAuthenticationResults bool     `yaml:"allow_multiple_authentication_results"`
	UseAuthenticationResultsOriginal   bool     `yaml:"use_authentication_results_original"`
	MatchSubdomains                    bool     `yaml:"match_subdomains"`
	RequireFromAlignment               bool     `yaml:"require_from_alignment"`
	AuthServIDs                        []string `yaml:"authserv_ids"`
	Rules                              []string `yaml:"rules"`
	Workers                            *int     `yaml:"workers"`
	MaxDepth                           *int     `yaml:"max_depth"`
	MaxArchiveSize                     *int64   `yaml:"max_archive_size"`
	MaxArchiveMembers                  *int     `yaml:"max_archive_members"`
	MaxArchiveTotal                    *int64   `yaml:"max_archive_total"`
}

// Default returns the configuration used without a config file: no
// trusted domains and no rules.
func Default() Config {
	return Config{
		Workers:           DefaultWorkers,
		MaxDepth:          scan.DefaultMaxDepth,
		MaxArchiveSize:    scan.DefaultMaxArchiveSize,
		MaxArchiveMembers: scan.DefaultMaxArchiveMembers,
		MaxArchiveTotal:   scan.DefaultMaxArchiveTotal,
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := mapConfig(filepath.Dir(path), dto)
	if err != nil {
		return Config{}, &OpError{
			Op:   "config.load",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	cfg.Path = path
	return cfg, nil
}

func mapConfig(dir string, dto yamlConfig) (Config, error) {
	cfg := Default()

	domains, err := trust.NewDomainSet(dto.TrustedDomains...)
	if err != nil {
		return Config{}, fmt.Errorf("trusted_domains: %w", err)
	}
	cfg.domains = domains

	cfg.AllowMultipleAuthenticationResults = dto.AllowMultipleAuthenticationResults
	cfg.UseAuthenticationResultsOriginal = dto.UseAuthenticationResultsOriginal
	cfg.MatchSubdomains = dto.MatchSubdomains
	cfg.RequireFromAlignment = dto.RequireFromAlignment
	cfg.AuthServIDs = slices.Clone(dto.AuthServIDs)

	for i, r := range dto.Rules {
		if r == "" {
			return Config{}, fmt.Errorf("rules[%d]: empty path", i)
		}
		if !filepath.IsAbs(r) {
			r = filepath.Join(dir, r)
		}
		cfg.Rules = append(cfg.Rules, r)
	}

	if dto.Workers != nil {
		if *dto.Workers < 1 {
			return Config{}, fmt.Errorf("workers: must be at least 1, got %d", *dto.Workers)
		}
		cfg.Workers = *dto.Workers
	}
	if dto.MaxDepth != nil {
		if *dto.MaxDepth < 0 {
			return Config{}, fmt.Errorf("max_depth: must not be negative, got %d", *dto.MaxDepth)
		}
		cfg.MaxDepth = *dto.MaxDepth
	}
	if dto.MaxArchiveSize != nil {
		if *dto.MaxArchiveSize < 1 {
			return Config{}, fmt.Errorf("max_archive_size: must be positive, got %d", *dto.MaxArchiveSize)
		}
		cfg.MaxArchiveSize = *dto.MaxArchiveSize
	}
	if dto.MaxArchiveMembers != nil {
		if *dto.MaxArchiveMembers < 1 {
			return Config{}, fmt.Errorf("max_archive_members: must be positive, got %d", *dto.MaxArchiveMembers)
		}
		cfg.MaxArchiveMembers = *dto.MaxArchiveMembers
	}
	if dto.MaxArchiveTotal != nil {
		if *dto.MaxArchiveTotal < 1 {
			return Config{}, fmt.Errorf("max_archive_total: must be positive, got %d", *dto.MaxArchiveTotal)
		}
		cfg.MaxArchiveTotal = *dto.MaxArchiveTotal
	}

	return cfg, nil
}

// DomainSet returns the trusted domains.
func (c Config) DomainSet() trust.DomainSet {
	return c.domains
}

// TrustOptions returns the evaluator options.
func (c Config) TrustOptions() trust.Options {
	return trust.Options{
		AllowMultipleAuthenticationResults: c.AllowMultipleAuthenticationResults,
		UseAuthenticationResultsOriginal:   c.UseAuthenticationResultsOriginal,
		MatchSubdomains:                    c.MatchSubdomains,
		RequireFromAlignment:               c.RequireFromAlignment,
		AuthServIDs:                        slices.Clone(c.AuthServIDs),
	}
}

// ScanOptions returns the mail scanner options.
func (c Config) ScanOptions() []scan.Option {
	return []scan.Option{
		scan.WithMaxDepth(c.MaxDepth),
		scan.WithMaxArchiveSize(c.MaxArchiveSize),
		scan.WithMaxArchiveMembers(c.MaxArchiveMembers),
		scan.WithMaxArchiveTotal(c.MaxArchiveTotal),
	}
}
