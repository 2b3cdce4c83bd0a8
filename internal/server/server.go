package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"taskpad/internal/result"
	"taskpad/internal/service"
	"taskpad/internal/store"
	"taskpad/internal/task"
)

// Creator is the create-task entry point exposed to external callers.
type Creator interface {
	Create(ctx context.Context, title string) (task.Task, error)
}

type Server struct {
	store store.Store
	svc   Creator
	owner string
}

func New(st store.Store, svc Creator, owner string) *Server {
	return &Server{store: st, svc: svc, owner: owner}
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()
	return server.ListenAndServe()
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /tasks", s.handleCreateTask)
	mux.HandleFunc("GET /tasks", s.handleListTasks)
	mux.HandleFunc("GET /export", s.handleExport)
	return mux
}

type createTaskReq struct {
	Title string `json:"title"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An absent or unreadable body carries no title.
		writeErr(w, http.StatusBadRequest, service.ErrTitleRequired)
		return
	}
	created, err := s.svc.Create(r.Context(), req.Title)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.ListByOwner(r.Context(), s.owner)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if all == nil {
		all = []task.Task{}
	}
	writeJSON(w, all)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	ex := result.NewExporter(s.store, s.owner)
	b, err := ex.Export(r.Context(), format)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
	}
	if format == "pdf" {
		w.Header().Set("Content-Type", "application/pdf")
	}
	_, _ = w.Write(b)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
