// Package auth manages cookie sessions and password credentials.
package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// Store is the global session store. It holds only the authenticated (or
// anonymous) user's id; everything else lives in the database.
var Store *sessions.CookieStore

// SessionName is the name of the session cookie.
const SessionName = "reeltaste-session"

// SessionKeyUserID is the session value key for the user id.
const SessionKeyUserID = "user_id"

// sessionMaxAge keeps users signed in for 30 days.
const sessionMaxAge = 30 * 24 * 60 * 60

// InitSessionStore initializes the cookie-based session store.
//
// The secret parameter signs session cookies. It can be any passphrase -
// it will be SHA-256 hashed to derive a 32-byte key. The secret must be
// consistent across server restarts and multiple servers in a
// load-balanced deployment.
func InitSessionStore(secret string, settings CookieSettings) {
	// Hash the secret to get a consistent 32-byte key
	key := sha256.Sum256([]byte(secret))

	Store = sessions.NewCookieStore(key[:])
	Store.Options = &sessions.Options{
		Path:     "/",
		Domain:   settings.Domain,
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CurrentUserID returns the user id stored in the request's session.
// The second return is false when no session user is set.
func CurrentUserID(r *http.Request) (uuid.UUID, bool) {
	session, err := Store.Get(r, SessionName)
	if err != nil {
		return uuid.Nil, false
	}

	raw, ok := session.Values[SessionKeyUserID].(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// SetSessionUser writes the user id into the session cookie.
func SetSessionUser(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	session, err := Store.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie decodes with an error but still
		// yields a fresh session we can write to.
		session, _ = Store.New(r, SessionName)
	}

	session.Values[SessionKeyUserID] = userID.String()
	return session.Save(r, w)
}

// ClearSession invalidates the session cookie.
func ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := Store.Get(r, SessionName)
	if err != nil {
		return nil
	}

	delete(session.Values, SessionKeyUserID)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
