package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/colegiosoft/student-billing-ledger/internal/config"
	"github.com/colegiosoft/student-billing-ledger/internal/events/logemit"
	"github.com/colegiosoft/student-billing-ledger/internal/interfaces"
	"github.com/colegiosoft/student-billing-ledger/internal/ledger"
	"github.com/colegiosoft/student-billing-ledger/internal/storage/file"
	"github.com/colegiosoft/student-billing-ledger/internal/storage/memory"
	"github.com/colegiosoft/student-billing-ledger/internal/storage/postgres"
	"github.com/colegiosoft/student-billing-ledger/internal/view"
)

const pageTop = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Control de Pagos</title></head>
<body>
<h1>Control de Pagos Escolares</h1>
<section id="registro">
<h2>Registrar Alumno</h2>
<form id="formulario-alumno" method="post" action="/students">
<div class="campo"><label for="nombre">Nombre:</label>
<input type="text" id="nombre" name="name" required></div>
<div class="campo"><label for="grado">Grado:</label>
<input type="text" id="grado" name="grade" required></div>
<div class="campo"><label for="grupo">Grupo:</label>
<input type="text" id="grupo" name="section" required></div>
<div class="campo"><label for="mensualidad">Mensualidad:</label>
<input type="number" id="mensualidad" name="monthly_fee" step="0.01" min="0" required></div>
<div class="campo"><label for="beca">Beca (%):</label>
<input type="number" id="beca" name="scholarship_percent" min="0" max="100"></div>
<button type="submit">Registrar Alumno</button>
</form>
</section>
<section id="lista">
<h2>Lista de Alumnos</h2>
<div id="contenedor-alumnos">
`

const pageBottom = `</div>
</section>
</body>
</html>
`

func main() {

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}

	publisher := logemit.NewPublisher(log)
	book, err := ledger.New(store, publisher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("ledger init failed")
	}

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Page shell: register form plus the current roster.
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, pageTop)
		fmt.Fprint(w, view.StudentList(book.Students()))
		fmt.Fprint(w, pageBottom)
	})

	http.HandleFunc("/students", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, view.StudentList(book.Students()))

		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}
			_, err := book.Register(
				r.FormValue("name"),
				r.FormValue("grade"),
				r.FormValue("section"),
				r.FormValue("monthly_fee"),
				r.FormValue("scholarship_percent"),
			)
			if errors.Is(err, ledger.ErrMalformedAmount) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			student, ok := book.FindByID(r.URL.Query().Get("student_id"))
			if !ok {
				fmt.Fprint(w, view.NotFound())
				return
			}
			fmt.Fprint(w, view.PaymentForm(student))

		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}
			ok, err := book.Pay(
				r.FormValue("student_id"),
				r.FormValue("amount"),
				r.FormValue("memo"),
			)
			if errors.Is(err, ledger.ErrMalformedAmount) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if !ok {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, view.NotFound())
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	log.Info().Str("addr", cfg.Addr).Str("storage", cfg.StorageBackend).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func openStore(cfg *config.Config) (interfaces.BlobStore, error) {
	switch cfg.StorageBackend {
	case "memory":
		return memory.NewStore(), nil
	case "file":
		return file.NewStore(cfg.DataDir)
	case "postgres":
		return postgres.Open(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
