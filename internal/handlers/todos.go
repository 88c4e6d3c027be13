package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/todo-webapp/app/internal/models"
	"github.com/todo-webapp/app/internal/store"
)

// todoForm is the compose form state. A non-empty EditingID means the form
// targets an existing todo for update rather than creating a new one.
type todoForm struct {
	EditingID   string
	Title       string
	Description string
}

// Dashboard renders the landing page for a logged-in user.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r)
	RenderTemplate(w, "dashboard.html", map[string]interface{}{
		"Title": "Dashboard",
		"User":  sess,
	})
}

// TodosPage lists the current user's todos, newest first. With ?edit={id}
// the compose form is prefilled from that item and switches to update mode.
func TodosPage(todos store.TodoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r)

		data := map[string]interface{}{
			"Title": "My Todos",
			"User":  sess,
			"Form":  todoForm{},
		}

		list, err := todos.TodosByOwner(r.Context(), sess.UserID)
		if err != nil {
			log.Printf("fetch todos for %s: %v", sess.UserID, err)
			data["Error"] = "Failed to fetch todos."
		}
		data["Todos"] = list

		if editID := r.URL.Query().Get("edit"); editID != "" {
			for _, todo := range list {
				if todo.ID == editID {
					data["Form"] = todoForm{
						EditingID:   todo.ID,
						Title:       todo.Title,
						Description: todo.Description,
					}
					break
				}
			}
		}

		RenderTemplate(w, "todos/index.html", data)
	}
}

// SubmitTodo handles the compose form: it creates a new todo, or updates the
// one named by the hidden editing_id field. Either way a successful mutation
// redirects back to GET /todos, which re-fetches the full list.
//
// Submitting with an empty title or description is a silent no-op.
func SubmitTodo(todos store.TodoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := SessionFromContext(r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		title := r.FormValue("title")
		description := r.FormValue("description")
		editingID := r.FormValue("editing_id")

		if title == "" || description == "" {
			http.Redirect(w, r, "/todos", http.StatusSeeOther)
			return
		}

		var err error
		if editingID != "" {
			err = todos.UpdateTodo(r.Context(), editingID, title, description)
		} else {
			_, err = todos.CreateTodo(r.Context(), sess.UserID, title, description)
		}
		if err != nil {
			log.Printf("save todo for %s: %v", sess.UserID, err)
			// The form keeps its values (and stays in update mode if it was).
			renderTodosError(w, r, todos, "Something went wrong. Please try again.",
				todoForm{EditingID: editingID, Title: title, Description: description})
			return
		}

		http.Redirect(w, r, "/todos", http.StatusSeeOther)
	}
}

// DeleteTodo removes the todo named in the path, unconditionally, then
// redirects back to the re-fetched list.
func DeleteTodo(todos store.TodoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := todos.DeleteTodo(r.Context(), id); err != nil {
			log.Printf("delete todo %s: %v", id, err)
			renderTodosError(w, r, todos, "Failed to delete todo.", todoForm{})
			return
		}

		http.Redirect(w, r, "/todos", http.StatusSeeOther)
	}
}

func renderTodosError(w http.ResponseWriter, r *http.Request, todos store.TodoStore, message string, form todoForm) {
	sess, _ := SessionFromContext(r)

	var list []models.Todo
	if fetched, err := todos.TodosByOwner(r.Context(), sess.UserID); err == nil {
		list = fetched
	}

	RenderTemplate(w, "todos/index.html", map[string]interface{}{
		"Title": "My Todos",
		"User":  sess,
		"Error": message,
		"Form":  form,
		"Todos": list,
	})
}
