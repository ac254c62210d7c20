package scan

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/synqronlabs/phishtriage"
	"github.com/synqronlabs/phishtriage/mime"
)

const (
	// DefaultMaxDepth bounds nesting of archives and attached messages.
	DefaultMaxDepth = 4
	// DefaultMaxArchiveSize bounds the uncompressed size of one archive member.
	DefaultMaxArchiveSize = 32 << 20
	// DefaultMaxArchiveMembers bounds the members extracted from one archive.
	DefaultMaxArchiveMembers = 1000
	// DefaultMaxArchiveTotal bounds the bytes extracted from one archive.
	DefaultMaxArchiveTotal = 128 << 20
)

var zipMagic = []byte("PK\x03\x04")

// MailScanner runs a Matcher over every location of a message.
// It is safe for concurrent use if its Matcher is.
type MailScanner struct {
	matcher           Matcher
	maxDepth          int
	maxArchiveSize    int64
	maxArchiveMembers int
	maxArchiveTotal   int64
	logger            *slog.Logger
}

// Option configures a MailScanner.
type Option func(*MailScanner)

// WithMaxDepth sets how many levels of archives and attached messages are
// opened. Zero scans only the outer message.
func WithMaxDepth(n int) Option {
	return func(s *MailScanner) { s.maxDepth = max(n, 0) }
}

// WithMaxArchiveSize sets the largest archive member that is extracted.
func WithMaxArchiveSize(n int64) Option {
	return func(s *MailScanner) { s.maxArchiveSize = n }
}

// WithMaxArchiveMembers sets how many members of one archive are extracted.
// Members past the limit are skipped.
func WithMaxArchiveMembers(n int) Option {
	return func(s *MailScanner) { s.maxArchiveMembers = n }
}

// WithMaxArchiveTotal sets how many uncompressed bytes are extracted from
// one archive. Extraction stops at the first member that would exceed it.
func WithMaxArchiveTotal(n int64) Option {
	return func(s *MailScanner) { s.maxArchiveTotal = n }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *MailScanner) { s.logger = l }
}

// NewMailScanner returns a scanner using m.
func NewMailScanner(m Matcher, opts ...Option) *MailScanner {
	s := &MailScanner{
		matcher:           m,
		maxDepth:          DefaultMaxDepth,
		maxArchiveSize:    DefaultMaxArchiveSize,
		maxArchiveMembers: DefaultMaxArchiveMembers,
		maxArchiveTotal:   DefaultMaxArchiveTotal,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Scan returns every match in mail, each stamped with its location.
// Unreadable parts are logged and scanned raw. Scan stops early with
// ctx.Err() when ctx is done.
func (s *MailScanner) Scan(ctx context.Context, mail *phishtriage.Mail) ([]Match, error) {
	var out []Match
	if err := s.scanMail(ctx, mail, "", 0, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MailScanner) scanMail(ctx context.Context, mail *phishtriage.Mail, prefix string, depth int, out *[]Match) error {
	if err := s.scanData(ctx, mail.HeaderBytes(), prefix+LocationHeader, out); err != nil {
		return err
	}

	root, err := mail.MIME()
	if err != nil {
		s.logger.WarnContext(ctx, "unparsable MIME structure, scanning raw body",
			slog.String("location", prefix+LocationBody),
			slog.Any("error", err),
		)
		return s.scanData(ctx, mail.Body, prefix+LocationBody, out)
	}

	var bodies, attachments []*mime.Part
	for _, p := range root.Leaves() {
		if p.IsAttachment() || p.IsMessage() {
			attachments = append(attachments, p)
		} else {
			bodies = append(bodies, p)
		}
	}

	for i, p := range bodies {
		loc := prefix + LocationBody
		if len(bodies) > 1 {
			loc += "/" + strconv.Itoa(i)
		}
		if err := s.scanData(ctx, s.partText(ctx, p, loc), loc, out); err != nil {
			return err
		}
	}

	for i, p := range attachments {
		loc := prefix + LocationAttachment + "/" + attachmentName(p, i)
		data := s.partData(ctx, p, loc)

		if p.IsMessage() {
			if err := s.scanMessage(ctx, data, loc, depth, out); err != nil {
				return err
			}
			continue
		}

		if err := s.scanData(ctx, data, loc, out); err != nil {
			return err
		}
		if bytes.HasPrefix(data, zipMagic) {
			if err := s.scanZip(ctx, data, loc, depth, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// scanMessage scans an attached message as header and body locations
// below loc, or raw at loc when it cannot be opened.
func (s *MailScanner) scanMessage(ctx context.Context, data []byte, loc string, depth int, out *[]Match) error {
	if depth >= s.maxDepth {
		s.logger.WarnContext(ctx, "nesting limit reached, scanning message raw",
			slog.String("location", loc),
			slog.Int("max_depth", s.maxDepth),
		)
		return s.scanData(ctx, data, loc, out)
	}

	nested, err := phishtriage.ParseMail(data)
	if err != nil {
		s.logger.WarnContext(ctx, "unparsable attached message, scanning raw",
			slog.String("location", loc),
			slog.Any("error", err),
		)
		return s.scanData(ctx, data, loc, out)
	}
	return s.scanMail(ctx, nested, loc+"/", depth+1, out)
}

func (s *MailScanner) scanZip(ctx context.Context, data []byte, loc string, depth int, out *[]Match) error {
	if depth >= s.maxDepth {
		s.logger.WarnContext(ctx, "nesting limit reached, archive not opened",
			slog.String("location", loc),
			slog.Int("max_depth", s.maxDepth),
		)
		return nil
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.logger.WarnContext(ctx, "unreadable zip archive",
			slog.String("location", loc),
			slog.Any("error", err),
		)
		return nil
	}

	var members int
	var total int64
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		memberLoc := loc + "/" + f.Name

		if members >= s.maxArchiveMembers {
			s.logger.WarnContext(ctx, "archive member limit reached, remaining members skipped",
				slog.String("location", loc),
				slog.Int("max_archive_members", s.maxArchiveMembers),
			)
			return nil
		}
		members++

		limit := min(s.maxArchiveSize, s.maxArchiveTotal-total)
		member, err := readMember(f, limit)
		if errors.Is(err, errMemberTooLarge) && limit < s.maxArchiveSize {
			s.logger.WarnContext(ctx, "archive size limit reached, remaining members skipped",
				slog.String("location", memberLoc),
				slog.Int64("max_archive_total", s.maxArchiveTotal),
			)
			return nil
		}
		if err != nil {
			s.logger.WarnContext(ctx, "skipping archive member",
				slog.String("location", memberLoc),
				slog.Any("error", err),
			)
			continue
		}
		total += int64(len(member))

		if strings.HasSuffix(strings.ToLower(f.Name), ".eml") {
			if err := s.scanMessage(ctx, member, memberLoc, depth+1, out); err != nil {
				return err
			}
			continue
		}

		if err := s.scanData(ctx, member, memberLoc, out); err != nil {
			return err
		}
		if bytes.HasPrefix(member, zipMagic) {
			if err := s.scanZip(ctx, member, memberLoc, depth+1, out); err != nil {
				return err
			}
		}
	}
	return nil
}

var errMemberTooLarge = errors.New("archive member too large")

// readMember extracts f, failing with errMemberTooLarge beyond limit bytes.
func readMember(f *zip.File, limit int64) ([]byte, error) {
	if f.UncompressedSize64 > uint64(max(limit, 0)) {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", errMemberTooLarge, f.UncompressedSize64, limit)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds limit of %d bytes", errMemberTooLarge, limit)
	}
	return data, nil
}

func (s *MailScanner) scanData(ctx context.Context, data []byte, loc string, out *[]Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	matches, err := s.matcher.Match(ctx, data)
	if err != nil {
		return fmt.Errorf("scan: %s: %w", loc, err)
	}
	for i := range matches {
		matches[i].Location = loc
	}

	s.logger.DebugContext(ctx, "scanned location",
		slog.String("location", loc),
		slog.Int("bytes", len(data)),
		slog.Int("matches", len(matches)),
	)
	*out = append(*out, matches...)
	return nil
}

// partData returns the transfer-decoded body, or the raw body when the
// encoding is broken.
func (s *MailScanner) partData(ctx context.Context, p *mime.Part, loc string) []byte {
	data, err := p.Decoded()
	if err != nil {
		s.logger.WarnContext(ctx, "undecodable part, scanning raw",
			slog.String("location", loc),
			slog.Any("error", err),
		)
		return p.Body
	}
	return data
}

// partText is partData converted to UTF-8 for text parts in other charsets.
func (s *MailScanner) partText(ctx context.Context, p *mime.Part, loc string) []byte {
	data := s.partData(ctx, p, loc)
	charset := strings.ToLower(p.Charset)
	if !strings.HasPrefix(p.ContentType, "text/") || charset == "" || charset == "utf-8" || charset == "us-ascii" {
		return data
	}

	r, err := phishtriage.CharsetReader(charset, bytes.NewReader(data))
	if err != nil {
		return data
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return data
	}
	return text
}

func attachmentName(p *mime.Part, i int) string {
	if p.Filename != "" {
		return strings.ReplaceAll(p.Filename, "/", "_")
	}
	if p.IsMessage() {
		return "part-" + strconv.Itoa(i) + ".eml"
	}
	return "part-" + strconv.Itoa(i)
}
