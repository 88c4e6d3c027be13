package handlers

import (
	"context"
	"net/http"

	"github.com/todo-webapp/app/internal/auth"
)

const sessionCookieName = "session_token"

type contextKey string

const sessionContextKey contextKey = "session"

// RequireAuth guards protected pages. Requests without a valid session are
// redirected to /login; otherwise the session is attached to the request
// context for the wrapped handler.
func RequireAuth(sessions *auth.Sessions, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFromCookie(r, sessions)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RedirectIfAuthed guards public-only pages (login, register). Authenticated
// requests are sent to the dashboard instead.
func RedirectIfAuthed(sessions *auth.Sessions, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessionFromCookie(r, sessions); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// Home routes "/" by session state: dashboard when logged in, login otherwise.
func Home(sessions *auth.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessionFromCookie(r, sessions); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// SessionFromContext returns the session attached by RequireAuth.
func SessionFromContext(r *http.Request) (auth.Session, bool) {
	sess, ok := r.Context().Value(sessionContextKey).(auth.Session)
	return sess, ok
}

func sessionFromCookie(r *http.Request, sessions *auth.Sessions) (auth.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return auth.Session{}, false
	}
	return sessions.Get(cookie.Value)
}
