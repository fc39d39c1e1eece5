// Package view renders HTML fragments from ledger state. It is a pure
// consumer of the core: it reads student records and produces markup,
// never mutates.
package view

import (
	"html/template"
	"strings"

	"github.com/colegiosoft/student-billing-ledger/internal/models"
)

var listTmpl = template.Must(template.New("list").Parse(`<table><thead><tr>
<th>Nombre</th><th>Grado</th><th>Grupo</th>
<th>Mensualidad</th><th>Beca</th><th>Adeudo</th><th>Acciones</th>
</tr></thead><tbody>
{{range .}}<tr>
<td>{{.Name}}</td>
<td>{{.Grade}}</td>
<td>{{.Section}}</td>
<td>${{.MonthlyFee.StringFixed 2}}</td>
<td>{{.ScholarshipPercent}}%</td>
<td>${{.BalanceOwed.StringFixed 2}}</td>
<td><a class="boton-pagar" href="/payments?student_id={{.ID}}">Pagar</a></td>
</tr>
{{end}}</tbody></table>`))

var payTmpl = template.Must(template.New("pay").Parse(`<h3>Registrar pago para {{.Name}}</h3>
<p>Grado: {{.Grade}} {{.Section}} | Adeudo actual: ${{.BalanceOwed.StringFixed 2}}</p>
<form id="formulario-pago" method="post" action="/payments">
<input type="hidden" name="student_id" value="{{.ID}}">
<div class="campo">
<label for="monto-pago">Monto:</label>
<input type="number" id="monto-pago" name="amount" step="0.01" min="0.01" required>
</div>
<div class="campo">
<label for="concepto-pago">Concepto:</label>
<select id="concepto-pago" name="memo" required>
<option value="">Seleccione...</option>
<option value="Mensualidad">Mensualidad</option>
<option value="Inscripción">Inscripción</option>
<option value="Materiales">Materiales</option>
<option value="Uniforme">Uniforme</option>
</select>
</div>
<button type="submit">Registrar Pago</button>
</form>`))

// StudentList renders the roster table, or the empty-state paragraph
// when nobody is registered yet.
func StudentList(students []*models.Student) string {
	if len(students) == 0 {
		return "<p>No hay alumnos registrados aún.</p>"
	}

	var b strings.Builder
	if err := listTmpl.Execute(&b, students); err != nil {
		return "<p>Error al generar la lista.</p>"
	}
	return b.String()
}

// PaymentForm renders the payment-entry form for one student.
func PaymentForm(student *models.Student) string {
	var b strings.Builder
	if err := payTmpl.Execute(&b, student); err != nil {
		return NotFound()
	}
	return b.String()
}

// NotFound is the fragment shown for an unknown student id.
func NotFound() string {
	return "<p>Alumno no encontrado</p>"
}
