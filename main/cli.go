package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synqronlabs/phishtriage"
	"github.com/synqronlabs/phishtriage/config"
	"github.com/synqronlabs/phishtriage/scan"
	"github.com/synqronlabs/phishtriage/triage"
	"github.com/synqronlabs/phishtriage/trust"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

type rootOptions struct {
	configPath string
	debug      bool
	format     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "phishtriage",
		Short:        "Triage user-reported phishing mail",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.format {
			case formatText, formatJSON, formatMsgpack:
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text, json or msgpack)", opts.format)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging (JSON, with source)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json or msgpack")

	cmd.AddCommand(checkCmd(opts), triageCmd(opts))
	return cmd
}

// setup loads the configuration and builds a logger writing to the
// command's error stream.
func setup(cmd *cobra.Command, opts *rootOptions) (config.Config, *slog.Logger, error) {
	var logger *slog.Logger
	if opts.debug {
		logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}

	if opts.configPath == "" {
		return config.Default(), logger, nil
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger.Debug("configuration loaded",
		slog.String("path", cfg.Path),
		slog.Int("trusted_domains", cfg.DomainSet().Len()),
		slog.Int("rule_files", len(cfg.Rules)),
	)
	return cfg, logger, nil
}

type checkResult struct {
	File string `json:"file"`
	trust.Decision
}

func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report whether messages come from a trusted domain",
		Long: "Reads each message (\"-\" for stdin) and prints the trusted-domain verdict\n" +
			"recorded by the receiving server's Authentication-Results header.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format == formatMsgpack {
				return fmt.Errorf("check does not support the %s format", formatMsgpack)
			}
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			ev := trust.NewEvaluator(cfg.DomainSet(), cfg.TrustOptions(), logger)

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, file := range args {
				mail, err := readMailFile(cmd, file)
				if err != nil {
					return err
				}
				res := checkResult{File: file, Decision: ev.Evaluate(cmd.Context(), mail)}
				if opts.format == formatJSON {
					if err := enc.Encode(res); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(out, "%s: %s\n", file, res.Decision); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func triageCmd(opts *rootOptions) *cobra.Command {
	var mbox bool

	c := &cobra.Command{
		Use:   "triage FILE...",
		Short: "Evaluate and scan reported messages",
		Long: "Reads each message (or each message of an mbox with --mbox), runs the\n" +
			"trusted-domain check and the configured rules, and prints one report per message.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			var mails []*phishtriage.Mail
			for _, file := range args {
				if mbox {
					more, err := readMboxFile(cmd, file)
					if err != nil {
						return err
					}
					mails = append(mails, more...)
					continue
				}
				mail, err := readMailFile(cmd, file)
				if err != nil {
					return err
				}
				mails = append(mails, mail)
			}

			var scanner triage.Scanner
			if len(cfg.Rules) > 0 {
				rules, err := scan.LoadRules(cfg.Rules...)
				if err != nil {
					return err
				}
				scanner = scan.NewMailScanner(rules, append(cfg.ScanOptions(), scan.WithLogger(logger))...)
			} else {
				logger.Warn("no rules configured, content scan disabled")
			}

			ev := trust.NewEvaluator(cfg.DomainSet(), cfg.TrustOptions(), logger)
			reports, err := triage.New(ev, scanner, logger).TriageAll(cmd.Context(), mails, cfg.Workers)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), opts.format, reports)
		},
	}

	c.Flags().BoolVar(&mbox, "mbox", false, "treat each FILE as an mbox of reported messages")
	return c
}

func writeReports(w io.Writer, format string, reports []*triage.Report) error {
	for _, r := range reports {
		var (
			out []byte
			err error
		)
		switch format {
		case formatJSON:
			out, err = r.ToJSON()
			out = append(out, '\n')
		case formatMsgpack:
			out, err = r.ToMessagePack()
		default:
			line := fmt.Sprintf("%s\t%s\t%s\t%q\t%s", r.Disposition, r.MessageID, r.From, r.Subject, r.Trust)
			if locs := r.Locations(); len(locs) > 0 {
				line += "\tmatches at " + strings.Join(locs, ",")
			}
			if r.Error != "" {
				line += "\terror: " + r.Error
			}
			out = []byte(line + "\n")
		}
		if err != nil {
			return err
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func openInput(cmd *cobra.Command, file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(file)
}

func readMailFile(cmd *cobra.Command, file string) (*phishtriage.Mail, error) {
	f, err := openInput(cmd, file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mail, err := phishtriage.ReadMail(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return mail, nil
}

func readMboxFile(cmd *cobra.Command, file string) ([]*phishtriage.Mail, error) {
	f, err := openInput(cmd, file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var mails []*phishtriage.Mail
	err = phishtriage.ReadMbox(f, func(_ int, mail *phishtriage.Mail) error {
		mails = append(mails, mail)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return mails, nil
}
