package logemit

import (
	"github.com/rs/zerolog"

	"github.com/colegiosoft/student-billing-ledger/internal/interfaces"
	"github.com/colegiosoft/student-billing-ledger/internal/models/events"
)

// Publisher writes ledger events to the structured log. The tool is
// single-user and offline, so the log is the whole audience; anything
// that later wants these events swaps in another EventPublisher.
type Publisher struct {
	log zerolog.Logger
}

func NewPublisher(log zerolog.Logger) *Publisher {
	return &Publisher{log: log}
}

func (p *Publisher) Publish(event any) error {
	switch e := event.(type) {
	case events.StudentRegistered:
		p.log.Info().
			Str("student_id", e.StudentID).
			Str("name", e.Name).
			Str("balance_owed", e.BalanceOwed.String()).
			Time("occurred_at", e.OccurredAt).
			Msg("student registered")
	case events.PaymentRecorded:
		p.log.Info().
			Str("student_id", e.StudentID).
			Str("amount", e.Amount.String()).
			Str("memo", e.Memo).
			Str("balance_owed", e.BalanceOwed.String()).
			Time("occurred_at", e.OccurredAt).
			Msg("payment recorded")
	default:
		p.log.Info().Interface("event", event).Msg("ledger event")
	}
	return nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
