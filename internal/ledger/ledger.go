package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/colegiosoft/student-billing-ledger/internal/interfaces"
	"github.com/colegiosoft/student-billing-ledger/internal/models"
	"github.com/colegiosoft/student-billing-ledger/internal/models/events"
)

// billingPeriods is the annual-estimate multiplier applied to the
// discounted monthly fee at registration. Stored balances depend on
// it; do not change.
var billingPeriods = decimal.NewFromInt(10)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Ledger owns the student collection for one session. It is loaded
// from the store once at construction, and the whole collection is
// saved back after every mutation. There is exactly one writer per
// stored blob; the mutex only guards against concurrent HTTP handlers
// within that writer.
type Ledger struct {
	mu       sync.Mutex
	store    interfaces.BlobStore
	events   interfaces.EventPublisher
	log      zerolog.Logger
	students []*models.Student
	byID     map[string]*models.Student
}

// New builds the session ledger from whatever the store holds. An
// absent key yields an empty ledger. A corrupt blob also yields an
// empty ledger with a logged warning, so a damaged file never bricks
// the tool; the blob is overwritten on the next successful mutation.
// Only a store read failure is fatal.
func New(store interfaces.BlobStore, publisher interfaces.EventPublisher, log zerolog.Logger) (*Ledger, error) {
	l := &Ledger{
		store:  store,
		events: publisher,
		log:    log,
		byID:   make(map[string]*models.Student),
	}

	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !ok {
		return l, nil
	}

	students, err := decodeStudents(raw)
	if err != nil {
		l.log.Warn().Err(err).Msg("stored ledger is corrupt, starting empty")
		return l, nil
	}

	l.students = students
	for _, s := range students {
		l.byID[s.ID] = s
	}
	return l, nil
}

// Register adds a student and computes the owed annual balance from
// the monthly fee and scholarship discount. Fee and scholarship
// arrive as the raw form text; an empty scholarship means none.
// Non-numeric text is rejected with ErrMalformedAmount. Names, grades
// and sections are taken as-is, and negative or out-of-range numbers
// are accepted uncritically.
func (l *Ledger) Register(name, grade, section, monthlyFee, scholarshipPercent string) (*models.Student, error) {
	fee, err := decimal.NewFromString(monthlyFee)
	if err != nil {
		return nil, fmt.Errorf("%w: monthly fee %q", ErrMalformedAmount, monthlyFee)
	}
	if scholarshipPercent == "" {
		scholarshipPercent = "0"
	}
	scholarship, err := decimal.NewFromString(scholarshipPercent)
	if err != nil {
		return nil, fmt.Errorf("%w: scholarship %q", ErrMalformedAmount, scholarshipPercent)
	}

	student := &models.Student{
		ID:                 uuid.New().String(),
		Name:               name,
		Grade:              grade,
		Section:            section,
		MonthlyFee:         fee,
		ScholarshipPercent: scholarship,
		Payments:           []models.Payment{},
		BalanceOwed:        annualBalance(fee, scholarship),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.students = append(l.students, student)
	l.byID[student.ID] = student

	if err := l.save(); err != nil {
		l.students = l.students[:len(l.students)-1]
		delete(l.byID, student.ID)
		return nil, err
	}

	l.publish(events.StudentRegistered{
		StudentID:   student.ID,
		Name:        student.Name,
		BalanceOwed: student.BalanceOwed,
		OccurredAt:  time.Now().UTC(),
	})
	return student, nil
}

// Pay applies an amount against a student's balance. An unknown id is
// reported as ok=false with no mutation and no store write. Overpaying
// is allowed and drives the balance negative. Non-numeric amount text
// is rejected with ErrMalformedAmount; a poisoned value never enters
// the balance arithmetic.
func (l *Ledger) Pay(studentID, amount, memo string) (bool, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return false, fmt.Errorf("%w: amount %q", ErrMalformedAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	student, ok := l.byID[studentID]
	if !ok {
		return false, nil
	}

	payment := models.Payment{
		Timestamp: time.Now().UTC(),
		Amount:    parsed,
		Memo:      memo,
	}
	prevBalance := student.BalanceOwed
	student.Payments = append(student.Payments, payment)
	student.BalanceOwed = student.BalanceOwed.Sub(parsed)

	if err := l.save(); err != nil {
		student.Payments = student.Payments[:len(student.Payments)-1]
		student.BalanceOwed = prevBalance
		return false, err
	}

	l.publish(events.PaymentRecorded{
		StudentID:   student.ID,
		Amount:      parsed,
		Memo:        memo,
		BalanceOwed: student.BalanceOwed,
		OccurredAt:  payment.Timestamp,
	})
	return true, nil
}

// FindByID looks a student up by id.
func (l *Ledger) FindByID(id string) (*models.Student, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	student, ok := l.byID[id]
	return student, ok
}

// Students lists all students in registration order.
func (l *Ledger) Students() []*models.Student {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*models.Student, len(l.students))
	copy(out, l.students)
	return out
}

// annualBalance is monthlyFee * (1 - scholarshipPercent/100) * 10.
func annualBalance(fee, scholarship decimal.Decimal) decimal.Decimal {
	return fee.Mul(one.Sub(scholarship.Div(hundred))).Mul(billingPeriods)
}

// save serializes the whole collection under the fixed key. Callers
// hold the mutex.
func (l *Ledger) save() error {
	raw, err := encodeStudents(l.students)
	if err != nil {
		return err
	}
	if err := l.store.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (l *Ledger) publish(event any) {
	if l.events == nil {
		return
	}
	if err := l.events.Publish(event); err != nil {
		l.log.Warn().Err(err).Msg("event publish failed")
	}
}
