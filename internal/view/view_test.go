package view

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/colegiosoft/student-billing-ledger/internal/models"
)

func testStudent() *models.Student {
	return &models.Student{
		ID:                 "abc-123",
		Name:               "Ana",
		Grade:              "5",
		Section:            "A",
		MonthlyFee:         decimal.RequireFromString("500"),
		ScholarshipPercent: decimal.RequireFromString("10"),
		Payments:           []models.Payment{},
		BalanceOwed:        decimal.RequireFromString("3500"),
	}
}

func TestStudentListEmpty(t *testing.T) {
	got := StudentList(nil)
	if got != "<p>No hay alumnos registrados aún.</p>" {
		t.Errorf("empty list: got %q", got)
	}
}

func TestStudentListRendersRows(t *testing.T) {
	got := StudentList([]*models.Student{testStudent()})

	for _, want := range []string{
		"<td>Ana</td>",
		"<td>5</td>",
		"<td>A</td>",
		"$500.00",
		"10%",
		"$3500.00",
		`href="/payments?student_id=abc-123"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("list missing %q:\n%s", want, got)
		}
	}
}

func TestStudentListEscapesUserText(t *testing.T) {
	s := testStudent()
	s.Name = `<script>alert(1)</script>`

	got := StudentList([]*models.Student{s})
	if strings.Contains(got, "<script>") {
		t.Errorf("unescaped markup in output:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped name in output:\n%s", got)
	}
}

func TestPaymentForm(t *testing.T) {
	got := PaymentForm(testStudent())

	for _, want := range []string{
		"Registrar pago para Ana",
		"Grado: 5 A",
		"Adeudo actual: $3500.00",
		`name="student_id" value="abc-123"`,
		`<option value="Mensualidad">Mensualidad</option>`,
		`<option value="Uniforme">Uniforme</option>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("form missing %q:\n%s", want, got)
		}
	}
}

func TestNotFound(t *testing.T) {
	if got := NotFound(); got != "<p>Alumno no encontrado</p>" {
		t.Errorf("NotFound: got %q", got)
	}
}
