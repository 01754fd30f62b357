// Package view renders the application's HTML pages as templ components.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// page wraps body in the shared document shell.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title></head><body>`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// nav renders the top navigation for a logged-in user.
func nav(username string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(username)
		_, err := fmt.Fprintf(w,
			`<nav><a href="/feed">Feed</a> <a href="/user/%s">%s</a>`+
				`<form method="post" action="/logout"><button type="submit">Logout</button></form></nav>`,
			name, name)
		return err
	})
}

// fieldError renders a validation message, or nothing when msg is empty.
func fieldError(w io.Writer, msg string) error {
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, templ.EscapeString(msg))
	return err
}
