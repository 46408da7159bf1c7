package web

import (
	"encoding/base64"
	"encoding/json/v2"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const flashCookie = "bookhaven_flash"

// Flash is a one-shot notification carried across a redirect.
type Flash struct {
	ID       string `json:"id"`
	Severity string `json:"severity"` // "success" or "error"
	Message  string `json:"message"`
}

// setFlash stores a notification for the next page load.
func (s *Server) setFlash(w http.ResponseWriter, severity, message string) {
	id, err := gonanoid.New()
	if err != nil {
		s.logger.Error("Failed to generate flash id", "error", err)
		return
	}

	raw, err := json.Marshal(Flash{ID: id, Severity: severity, Message: message})
	if err != nil {
		s.logger.Error("Failed to encode flash", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the pending notification, if any, and clears the cookie
// so it shows exactly once.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(raw, &flash); err != nil {
		return nil
	}
	return &flash
}
