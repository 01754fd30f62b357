package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mozzey/partyline/internal/domain"
	"github.com/mozzey/partyline/internal/service"
	"github.com/mozzey/partyline/internal/view"
)

// AuthHandler handles the login, registration, and logout routes.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectLoggedIn(w, r) {
		return
	}
	form := view.LoginForm{RedirectTo: r.URL.Query().Get("redirectTo")}
	view.LoginPage(form).Render(r.Context(), w)
}

// HandleLogin processes a login form submission.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form not submitted correctly", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	redirectTo := r.PostFormValue("redirectTo")
	if redirectTo == "" {
		redirectTo = "/"
	}

	form := view.LoginForm{RedirectTo: redirectTo, Username: username}
	form.FieldErrors = fieldErrors(
		"username", validateUsername(username),
		"password", validatePassword(password),
	)
	if len(form.FieldErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		view.LoginPage(form).Render(r.Context(), w)
		return
	}

	user, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		slog.Error("login user", "error", err)
		http.Error(w, "An unexpected error occurred. Please try again.", http.StatusInternalServerError)
		return
	}
	if user == nil {
		form.FormError = "Username and/or password incorrect"
		w.WriteHeader(http.StatusBadRequest)
		view.LoginPage(form).Render(r.Context(), w)
		return
	}

	rd, err := h.auth.CreateUserSession(user.ID, redirectTo)
	if err != nil {
		slog.Error("create user session", "error", err)
		http.Error(w, "An unexpected error occurred. Please try again.", http.StatusInternalServerError)
		return
	}
	rd.Apply(w, r)
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectLoggedIn(w, r) {
		return
	}
	form := view.RegisterForm{RedirectTo: r.URL.Query().Get("redirectTo")}
	view.RegisterPage(form).Render(r.Context(), w)
}

// HandleRegister processes a registration form submission.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form not submitted correctly", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	confirmPassword := r.PostFormValue("confirm-password")
	redirectTo := r.PostFormValue("redirectTo")
	if redirectTo == "" {
		redirectTo = "/"
	}

	form := view.RegisterForm{RedirectTo: redirectTo, Username: username, Email: email}
	form.FieldErrors = fieldErrors(
		"username", validateUsername(username),
		"email", validateEmail(email),
		"password", validatePassword(password),
		"confirmPassword", validateConfirmPassword(password, confirmPassword),
	)
	if len(form.FieldErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		view.RegisterPage(form).Render(r.Context(), w)
		return
	}

	user, err := h.auth.Register(r.Context(), username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			form.FormError = "A user with the username " + username + " already exists"
		case errors.Is(err, domain.ErrDuplicateEmail):
			form.FormError = "A user with that email already exists"
		default:
			slog.Error("register user", "error", err)
			http.Error(w, "An unexpected error occurred. Please try again.", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		view.RegisterPage(form).Render(r.Context(), w)
		return
	}

	rd, err := h.auth.CreateUserSession(user.ID, redirectTo)
	if err != nil {
		slog.Error("create user session", "error", err)
		http.Error(w, "An unexpected error occurred. Please try again.", http.StatusInternalServerError)
		return
	}
	rd.Apply(w, r)
}

// HandleLogout destroys the session and redirects to the login page.
// POST /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r).Apply(w, r)
}

// redirectLoggedIn sends an already-authenticated visitor back to the index.
// It reports whether a response was written.
func (h *AuthHandler) redirectLoggedIn(w http.ResponseWriter, r *http.Request) bool {
	user, rd := h.auth.GetUser(r.Context(), r)
	if rd != nil {
		rd.Apply(w, r)
		return true
	}
	if user != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return true
	}
	return false
}
