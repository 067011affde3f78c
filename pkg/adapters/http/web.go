package http

import (
	"bytes"
	"net/http"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/presentation/web"
	"github.com/aretw0/sequencer/pkg/sequence"
)

// GetForm renders the empty form. ?kind= preselects the sequence type.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	form := web.NewForm(s.Defaults)
	if k := r.URL.Query().Get("kind"); k != "" {
		if kind, err := sequence.ParseKind(k); err == nil {
			form.Kind = kind.String()
		}
	}
	s.renderPage(w, http.StatusOK, form, nil, "")
}

// PostForm calculates the submitted form and renders the results below it.
func (s *Server) PostForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		s.Logger.Warn("PostForm: Invalid form", "error", err)
		return
	}

	form := web.NewForm(s.Defaults)
	for name, dest := range map[string]*string{
		"kind":       &form.Kind,
		"first_term": &form.FirstTerm,
		"difference": &form.Difference,
		"ratio":      &form.Ratio,
		"term_count": &form.TermCount,
	} {
		if v, ok := r.PostForm[name]; ok && len(v) > 0 {
			*dest = v[0]
		}
	}

	req, err := form.Request()
	if err != nil {
		s.renderPage(w, http.StatusUnprocessableEntity, form, nil, err.Error())
		return
	}

	report, err := sequencer.Calculate(req)
	s.Metrics.Observe("web", req, err)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if !sequence.IsValidation(err) {
			status = http.StatusInternalServerError
			s.Logger.Error("Calculation failed", "kind", req.Kind, "error", err)
		}
		s.renderPage(w, status, form, nil, err.Error())
		return
	}
	s.renderPage(w, http.StatusOK, form, report, "")
}

// GetAbout returns the About Sequences text as markdown.
func (s *Server) GetAbout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(sequencer.About()))
}

func (s *Server) renderPage(w http.ResponseWriter, status int, form web.Form, report *sequencer.Report, errMsg string) {
	page, err := web.NewPage(form, report, errMsg)
	if err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		s.Logger.Error("Page preparation failed", "error", err)
		return
	}

	var buf bytes.Buffer
	if err := web.Render(&buf, page); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		s.Logger.Error("Page render failed", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
