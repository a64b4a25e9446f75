package web

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "cs_flash"

// Flash is a transient notice shown once on the next rendered page.
// Color is "green" for success, "red" for errors.
type Flash struct {
	Color   string
	Message string
}

// setFlash stores a one-shot notice in a cookie.
func setFlash(w http.ResponseWriter, color, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(color + "|" + message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
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

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	color, message, ok := strings.Cut(value, "|")
	if !ok || message == "" {
		return nil
	}

	return &Flash{Color: color, Message: message}
}
