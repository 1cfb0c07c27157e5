package api

import (
	"net/http"

	"github.com/dgallion1/docsite/internal/view"
)

const defaultErrorMessage = "Internal server error"

// errorStatus clamps code to a valid HTTP status and picks the message shown
// on the error page. Only 4xx and 5xx codes get their status text.
func errorStatus(code int) (int, string) {
	if code < 100 || code > 599 {
		code = http.StatusInternalServerError
	}
	msg := defaultErrorMessage
	if code >= 400 {
		if text := http.StatusText(code); text != "" {
			msg = text
		}
	}
	return code, msg
}

// fail renders the shared error page.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, code int) {
	code, msg := errorStatus(code)
	if err := s.views.Render(w, view.Error, view.Data{"code": code, "message": msg}, code); err != nil {
		s.log.Error("render error view", "code", code, "path", r.URL.Path, "error", err)
		http.Error(w, msg, code)
	}
}
