package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student is a billed student record. The json tags are the persisted
// schema; renaming one breaks every ledger blob already on disk.
type Student struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Grade              string          `json:"grade"`
	Section            string          `json:"section"`
	MonthlyFee         decimal.Decimal `json:"monthlyFee"`
	ScholarshipPercent decimal.Decimal `json:"scholarshipPercent"`
	Payments           []Payment       `json:"payments"`
	BalanceOwed        decimal.Decimal `json:"balanceOwed"`
}

// Payment is one amount applied against a student's balance,
// immutable once recorded. Insertion order is chronological order.
type Payment struct {
	Timestamp time.Time       `json:"timestamp"`
	Amount    decimal.Decimal `json:"amount"`
	Memo      string          `json:"memo"`
}
