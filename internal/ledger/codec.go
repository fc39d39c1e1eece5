package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/colegiosoft/student-billing-ledger/internal/models"
)

// StorageKey is the fixed key the full student collection lives under.
// It is part of the persisted-schema contract; blobs saved by earlier
// versions load unchanged.
const StorageKey = "alumnosEscuela"

func init() {
	// The persisted schema carries fees, percentages and balances as
	// JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

func encodeStudents(students []*models.Student) (string, error) {
	data, err := json.Marshal(students)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeStudents(raw string) ([]*models.Student, error) {
	var students []*models.Student
	if err := json.Unmarshal([]byte(raw), &students); err != nil {
		return nil, err
	}
	for _, s := range students {
		if s.Payments == nil {
			s.Payments = []models.Payment{}
		}
	}
	return students, nil
}
