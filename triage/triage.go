// Package triage combines the trusted-domain verdict and the content scan
// of a reported message into a Report with a Disposition.
package triage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/synqronlabs/phishtriage"
	"github.com/synqronlabs/phishtriage/scan"
	"github.com/synqronlabs/phishtriage/trust"
	"github.com/synqronlabs/phishtriage/utils"
)

// Scanner produces content matches for a message. *scan.MailScanner
// implements it.
type Scanner interface {
	Scan(ctx context.Context, mail *phishtriage.Mail) ([]scan.Match, error)
}

// Triager produces reports. It is safe for concurrent use when its
// Scanner is.
type Triager struct {
	evaluator *trust.Evaluator
	scanner   Scanner
	logger    *slog.Logger
	now       func() time.Time
}

// New returns a Triager. A nil scanner reports no matches; a nil logger
// uses slog.Default().
func New(evaluator *trust.Evaluator, scanner Scanner, logger *slog.Logger) *Triager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Triager{
		evaluator: evaluator,
		scanner:   scanner,
		logger:    logger,
		now:       time.Now,
	}
}

// Triage evaluates and scans mail. A failed scan still returns a report,
// marked for escalation with Error set, together with the error.
func (t *Triager) Triage(ctx context.Context, mail *phishtriage.Mail) (*Report, error) {
	r := &Report{
		ID:        utils.GenerateID(),
		MailID:    mail.ID,
		MessageID: mail.MessageID(),
		Subject:   mail.Subject(),
		CreatedAt: t.now().UTC(),
	}
	if from, err := mail.From(); err == nil {
		r.From = from.String()
	}

	r.Trust = t.evaluator.Evaluate(ctx, mail)

	var err error
	if t.scanner != nil {
		r.Matches, err = t.scanner.Scan(ctx, mail)
	}
	if err != nil {
		r.Disposition = DispositionEscalate
		r.Error = err.Error()
		t.logger.ErrorContext(ctx, "scan failed",
			slog.String("report_id", r.ID),
			slog.String("message_id", r.MessageID),
			slog.Any("error", err),
		)
		return r, err
	}

	r.Disposition = Decide(r.Trust.Trusted, len(r.Matches))
	t.logger.InfoContext(ctx, "message triaged",
		slog.String("report_id", r.ID),
		slog.String("message_id", r.MessageID),
		slog.String("from", r.From),
		slog.Time("date", mail.Date()),
		slog.String("disposition", string(r.Disposition)),
		slog.String("trust", string(r.Trust.Reason)),
		slog.Int("matches", len(r.Matches)),
	)
	return r, nil
}

// TriageAll triages mails on up to workers goroutines and returns the
// reports in input order. Scan failures are recorded in the affected
// report; only cancellation of ctx aborts the batch.
func (t *Triager) TriageAll(ctx context.Context, mails []*phishtriage.Mail, workers int) ([]*Report, error) {
	reports := make([]*Report, len(mails))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, mail := range mails {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r, err := t.Triage(gctx, mail)
			reports[i] = r
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
