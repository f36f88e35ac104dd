package submissions

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/metrics"
)

const receiptMessage = "Demo received. Thanks for sharing your game!"

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Genre      string    `json:"genre"`
	Type       string    `json:"type"`
	Platform   string    `json:"platform"`
	AcceptedAt time.Time `json:"acceptedAt"`
	Message    string    `json:"message"`
}

// Intake acknowledges submissions. Nothing is persisted and the catalogue is never modified.
type Intake struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
	newID   func() string
}

func NewIntake(logger *slog.Logger, recorder *metrics.Recorder) *Intake {
	return &Intake{
		logger:  logger,
		metrics: recorder,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Accept issues a receipt for an already validated submission.
func (i *Intake) Accept(ctx context.Context, sub Submission) Receipt {
	r := Receipt{
		ID:         i.newID(),
		Title:      sub.Title,
		Genre:      sub.Genre,
		Type:       sub.Type,
		Platform:   sub.Platform,
		AcceptedAt: i.now(),
		Message:    receiptMessage,
	}
	logging.Info(logging.FromContext(ctx, i.logger), "submission accepted",
		"submission_id", r.ID,
		"title", sub.Title,
		"creator", sub.Creator,
		"genre", sub.Genre,
	)
	i.metrics.RecordSubmission(metrics.ResultOK)
	return r
}

// Submit decodes payload and accepts it. Rejections are counted and returned unchanged.
func (i *Intake) Submit(ctx context.Context, payload []byte) (Receipt, error) {
	sub, err := Decode(payload)
	if err != nil {
		i.metrics.RecordSubmission(metrics.ResultError)
		var verr *ValidationError
		if errors.As(err, &verr) {
			logging.Debug(logging.FromContext(ctx, i.logger), "submission rejected", "fields", len(verr.Fields))
		}
		return Receipt{}, err
	}
	return i.Accept(ctx, sub), nil
}
