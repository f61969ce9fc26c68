// Package flash implements one-shot notification messages carried in a cookie
// across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// CookieName is the cookie holding pending messages.
const CookieName = "linkshelf_flash"

// Message is a notification shown once on the next rendered page.
type Message struct {
	Category string `json:"category"` // "info", "error", ...
	Text     string `json:"text"`
}

// Add appends a message to the ones already pending on r and writes the cookie to w.
func Add(w http.ResponseWriter, r *http.Request, category, text string) {
	msgs := read(r)
	msgs = append(msgs, Message{Category: category, Text: text})

	data, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending messages and expires the cookie.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	msgs := read(r)
	if len(msgs) == 0 {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return msgs
}

// Peek returns the pending messages without consuming them.
func Peek(r *http.Request) []Message {
	return read(r)
}

// read decodes the cookie; a malformed cookie is treated as empty.
func read(r *http.Request) []Message {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil
	}
	return msgs
}
