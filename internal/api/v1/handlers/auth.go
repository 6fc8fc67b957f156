package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"ulascansenturk/energy-forecast/internal/auth"
	"ulascansenturk/energy-forecast/internal/db/account"
	"ulascansenturk/energy-forecast/internal/service"

	"github.com/rs/zerolog/log"
)

const (
	maxFormBytes = 1 << 20

	msgInvalidCredentials = "Invalid credentials!"
	msgMissingFields      = "All fields are required"
	msgUsernameTaken      = "Username already taken"
	msgRegistrationFailed = "Registration failed, please try again"
)

var (
	msgUsernameTooLong = fmt.Sprintf("Username must be at most %d characters", account.MaxUsernameLength)
	msgLocationTooLong = fmt.Sprintf("Location must be at most %d characters", account.MaxLocationLength)
	msgPasswordTooLong = fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes)
)

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "register.html", registerPage{})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		renderPage(w, http.StatusBadRequest, "register.html", registerPage{Error: msgMissingFields})
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	location := strings.TrimSpace(r.PostForm.Get("location"))

	page := registerPage{Username: username, Location: location}

	if username == "" || password == "" || location == "" {
		page.Error = msgMissingFields
		renderPage(w, http.StatusBadRequest, "register.html", page)
		return
	}

	if _, err := h.authService.Register(r.Context(), username, password, location); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUsername):
			page.Error = msgUsernameTaken
			renderPage(w, http.StatusConflict, "register.html", page)
			return
		case errors.Is(err, service.ErrUsernameTooLong):
			page.Error = msgUsernameTooLong
			renderPage(w, http.StatusBadRequest, "register.html", page)
			return
		case errors.Is(err, service.ErrLocationTooLong):
			page.Error = msgLocationTooLong
			renderPage(w, http.StatusBadRequest, "register.html", page)
			return
		case errors.Is(err, service.ErrPasswordTooLong):
			page.Error = msgPasswordTooLong
			renderPage(w, http.StatusBadRequest, "register.html", page)
			return
		}
		log.Error().Err(err).Str("username", username).Msg("failed to register account")
		page.Error = msgRegistrationFailed
		renderPage(w, http.StatusInternalServerError, "register.html", page)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "login.html", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		invalidCredentials(w)
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		invalidCredentials(w)
		return
	}

	acc, err := h.authService.VerifyCredentials(r.Context(), username, password)
	if err != nil {
		log.Warn().Str("username", username).Msg("login failed")
		invalidCredentials(w)
		return
	}

	token, expiresAt, err := h.sessions.Establish(r.Context(), acc)
	if err != nil {
		log.Error().Err(err).Uint("account_id", acc.ID).Msg("failed to establish session")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.setSessionCookie(w, token, expiresAt)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.sessions.End(r.Context(), cookie.Value); err != nil {
			log.Error().Err(err).Msg("failed to end session")
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func invalidCredentials(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(msgInvalidCredentials))
}
