package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/todo-webapp/app/internal/auth"
	"github.com/todo-webapp/app/internal/store"
)

// NewRouter wires all routes. Public-only pages bounce logged-in users to
// the dashboard; protected pages bounce anonymous users to the login page.
func NewRouter(svc *auth.Service, sessions *auth.Sessions, todos store.TodoStore, staticDir string) *mux.Router {
	r := mux.NewRouter()

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.HandleFunc("/", Home(sessions)).Methods("GET")

	r.HandleFunc("/register", RedirectIfAuthed(sessions, RegisterPage)).Methods("GET")
	r.HandleFunc("/register", Register(svc, sessions)).Methods("POST")
	r.HandleFunc("/login", RedirectIfAuthed(sessions, LoginPage)).Methods("GET")
	r.HandleFunc("/login", Login(svc, sessions)).Methods("POST")
	r.HandleFunc("/logout", Logout(sessions)).Methods("POST")

	r.HandleFunc("/dashboard", RequireAuth(sessions, Dashboard)).Methods("GET")
	r.HandleFunc("/todos", RequireAuth(sessions, TodosPage(todos))).Methods("GET")
	r.HandleFunc("/todos", RequireAuth(sessions, SubmitTodo(todos))).Methods("POST")
	r.HandleFunc("/todos/{id}/delete", RequireAuth(sessions, DeleteTodo(todos))).Methods("POST")

	return r
}
