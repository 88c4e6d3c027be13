package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/todo-webapp/app/internal/auth"
)

// LoginPage renders the login form.
func LoginPage(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "auth/login.html", map[string]interface{}{"Title": "Login", "Email": ""})
}

// Login handles the login form submission.
// Any authentication failure shows the same fixed message, so the cause
// (unknown email, wrong password, backend error) is not distinguishable.
func Login(svc *auth.Service, sessions *auth.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
			RenderTemplate(w, "auth/login.html", map[string]interface{}{
				"Title": "Login",
				"Email": email,
				"Error": "Email and password are required.",
			})
			return
		}

		user, err := svc.Authenticate(r.Context(), email, password)
		if err != nil {
			log.Printf("login failed for %q: %v", email, err)
			RenderTemplate(w, "auth/login.html", map[string]interface{}{
				"Title": "Login",
				"Email": email,
				"Error": "Invalid email or password. Please try again.",
			})
			return
		}

		setSessionCookie(w, r, sessions.Create(user))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// RegisterPage renders the registration form.
func RegisterPage(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "auth/register.html", map[string]interface{}{"Title": "Register", "Email": ""})
}

// Register handles the registration form submission. A successful
// registration signs the user in immediately.
//
// Unlike Login, a backend failure here surfaces the raw error message.
func Register(svc *auth.Service, sessions *auth.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")
		confirmPassword := r.FormValue("confirm_password")

		if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(confirmPassword) == "" {
			RenderTemplate(w, "auth/register.html", map[string]interface{}{
				"Title": "Register",
				"Email": email,
				"Error": "All fields are required.",
			})
			return
		}

		if password != confirmPassword {
			RenderTemplate(w, "auth/register.html", map[string]interface{}{
				"Title": "Register",
				"Email": email,
				"Error": "Passwords do not match.",
			})
			return
		}

		user, err := svc.Register(r.Context(), email, password)
		if err != nil {
			log.Printf("registration failed for %q: %v", email, err)
			RenderTemplate(w, "auth/register.html", map[string]interface{}{
				"Title": "Register",
				"Email": email,
				"Error": err.Error(),
			})
			return
		}

		setSessionCookie(w, r, sessions.Create(user))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// Logout ends the session and redirects to /login unconditionally.
func Logout(sessions *auth.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sessions.Delete(cookie.Value)

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    "",
				Path:     "/",
				Expires:  time.Unix(0, 0),
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
