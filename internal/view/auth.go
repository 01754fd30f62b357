package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginForm carries the submitted values and errors echoed back into the
// login page.
type LoginForm struct {
	RedirectTo  string
	Username    string
	FormError   string
	FieldErrors map[string]string
}

// RegisterForm carries the submitted values and errors echoed back into the
// registration page.
type RegisterForm struct {
	RedirectTo  string
	Username    string
	Email       string
	FormError   string
	FieldErrors map[string]string
}

// LoginPage renders the login form.
func LoginPage(form LoginForm) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Login</h1><form method="post" action="/login">`); err != nil {
			return err
		}
		if err := hiddenRedirectTo(w, form.RedirectTo); err != nil {
			return err
		}
		if err := textInput(w, "username", "Username", form.Username); err != nil {
			return err
		}
		if err := fieldError(w, form.FieldErrors["username"]); err != nil {
			return err
		}
		if err := passwordInput(w, "password", "Password"); err != nil {
			return err
		}
		if err := fieldError(w, form.FieldErrors["password"]); err != nil {
			return err
		}
		if err := fieldError(w, form.FormError); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<button type="submit">Submit</button></form>`+
				`<p>New around here? <a href="/register">Register!</a></p>`)
		return err
	})
	return page("Login", body)
}

// RegisterPage renders the registration form.
func RegisterPage(form RegisterForm) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Register</h1><form method="post" action="/register">`); err != nil {
			return err
		}
		if err := hiddenRedirectTo(w, form.RedirectTo); err != nil {
			return err
		}
		if err := textInput(w, "username", "Username", form.Username); err != nil {
			return err
		}
		if err := fieldError(w, form.FieldErrors["username"]); err != nil {
			return err
		}
		if err := textInput(w, "email", "Email", form.Email); err != nil {
			return err
		}
		if err := fieldError(w, form.FieldErrors["email"]); err != nil {
			return err
		}
		if err := passwordInput(w, "password", "Password"); err != nil {
			return err
		}
		if err := fieldError(w, form.FieldErrors["password"]); err != nil {
			return err
		}
		if err := passwordInput(w, "confirm-password", "Confirm Password"); err != nil {
			return err
		}
		if err := fieldError(w, form.FieldErrors["confirmPassword"]); err != nil {
			return err
		}
		if err := fieldError(w, form.FormError); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<button type="submit">Submit</button></form>`+
				`<p>Already registered? <a href="/login">Log In!</a></p>`)
		return err
	})
	return page("Register", body)
}

func hiddenRedirectTo(w io.Writer, redirectTo string) error {
	if redirectTo == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<input type="hidden" name="redirectTo" value="%s">`,
		templ.EscapeString(redirectTo))
	return err
}

func textInput(w io.Writer, name, label, value string) error {
	_, err := fmt.Fprintf(w,
		`<div><label for="%s-input">%s</label>`+
			`<input type="text" id="%s-input" name="%s" value="%s"></div>`,
		name, templ.EscapeString(label), name, name, templ.EscapeString(value))
	return err
}

func passwordInput(w io.Writer, name, label string) error {
	// Passwords are never echoed back.
	_, err := fmt.Fprintf(w,
		`<div><label for="%s-input">%s</label>`+
			`<input type="password" id="%s-input" name="%s"></div>`,
		name, templ.EscapeString(label), name, name)
	return err
}
