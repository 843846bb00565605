// Package api exposes the mind over HTTP for chat and status
// inspection. A front end would sit on top of these routes.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/keshon/echomind/internal/mind"
)

type Server struct {
	mind *mind.Mind
}

func NewServer(m *mind.Mind) *Server {
	return &Server{mind: m}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/chat", s.handleChat)
	r.Post("/books", s.handleAddBook)
	r.Get("/status", s.handleStatus)
	r.Get("/state", s.handleState)
	r.Get("/knowledge/search", s.handleSearch)
	r.Get("/world/context", s.handleWorldContext)
	r.Get("/world/insights", s.handleInsights)
	return r
}

type chatRequest struct {
	Speaker string `json:"speaker"`
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, req *http.Request) {
	var in chatRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if in.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	if in.Speaker == "" {
		in.Speaker = "user"
	}
	reply, err := s.mind.ProcessInput(req.Context(), in.Speaker, in.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, chatResponse{Reply: reply})
}

type addBookRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (s *Server) handleAddBook(w http.ResponseWriter, req *http.Request) {
	var in addBookRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if in.Title == "" || in.Text == "" {
		http.Error(w, "title and text are required", http.StatusBadRequest)
		return
	}
	if err := s.mind.Library.Add(in.Title, in.Text); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusResponse struct {
	Activity  string               `json:"activity"`
	Stats     mind.Stats           `json:"stats"`
	Curiosity mind.CuriosityStatus `json:"curiosity"`
	Report    string               `json:"report,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	stats, activity := s.mind.Snapshot()
	writeJSON(w, statusResponse{
		Activity:  activity,
		Stats:     stats,
		Curiosity: s.mind.GetCuriosityStatus(),
		Report:    s.mind.LastReport(),
	})
}

type stateResponse struct {
	Mood       string   `json:"mood"`
	Energy     int      `json:"energy"`
	Confidence float64  `json:"confidence"`
	Identity   string   `json:"identity"`
	Goals      string   `json:"goals"`
	Beliefs    []string `json:"beliefs"`
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	self := s.mind.State.Self.Snapshot()
	writeJSON(w, stateResponse{
		Mood:       self.Mood,
		Energy:     self.Energy,
		Confidence: self.Confidence,
		Identity:   s.mind.State.Traits.SummarizeIdentity(),
		Goals:      s.mind.State.Goals.Summary(),
		Beliefs:    s.mind.State.Values.Beliefs(),
	})
}

type searchResponse struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

func (s *Server) handleSearch(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, searchResponse{Query: query, Answer: s.mind.SearchKnowledge(query)})
}

func (s *Server) handleWorldContext(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"context": s.mind.GetWorldContext()})
}

func (s *Server) handleInsights(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string][]string{"insights": s.mind.GetInsights()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
