package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type StudentRegistered struct {
	StudentID   string          `json:"student_id"`
	Name        string          `json:"name"`
	BalanceOwed decimal.Decimal `json:"balance_owed"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type PaymentRecorded struct {
	StudentID   string          `json:"student_id"`
	Amount      decimal.Decimal `json:"amount"`
	Memo        string          `json:"memo"`
	BalanceOwed decimal.Decimal `json:"balance_owed"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
