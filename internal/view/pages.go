package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/mozzey/partyline/internal/domain"
)

// FeedPage renders the party feed for a logged-in user.
func FeedPage(username string, items []domain.PartyFeedItem) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav(username).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h1>Feed</h1>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w,
			`<form method="post" action="/parties">`+
				`<label for="name-input">Throw a party</label>`+
				`<input type="text" id="name-input" name="name">`+
				`<button type="submit">Create</button></form>`); err != nil {
			return err
		}

		if len(items) == 0 {
			_, err := io.WriteString(w, `<p>No parties yet.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<ul>`); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := fmt.Fprintf(w, `<li>%s, hosted by <a href="/user/%s">%s</a></li>`,
				templ.EscapeString(item.Name),
				templ.EscapeString(item.CreatorName),
				templ.EscapeString(item.CreatorName)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
	return page("Feed", body)
}

// ProfilePage renders a user's profile.
func ProfilePage(viewerName, profileName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := nav(viewerName).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<h1>%s's Profile</h1>`, templ.EscapeString(profileName))
		return err
	})
	return page(profileName+"'s Profile", body)
}
