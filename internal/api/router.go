package api

import (
	"encoding/json"
	"net/http"

	"github.com/surveyflow/surveyflow/internal/middleware"
	"github.com/surveyflow/surveyflow/internal/services"
)

// Router wires the survey flow endpoints onto a mux.
type Router struct {
	flow          *services.FlowService
	adminPassHash string
}

func NewRouter(flow *services.FlowService, adminPassHash string) *Router {
	return &Router{flow: flow, adminPassHash: adminPassHash}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/survey/identify", rt.handleIdentify)         // POST
	mux.HandleFunc("/api/survey/questions", rt.handleQuestions)       // GET
	mux.HandleFunc("/api/survey/draft", rt.handleDraft)               // POST
	mux.HandleFunc("/api/survey/review", rt.handleReview)             // GET
	mux.HandleFunc("/api/survey/commit", rt.handleCommit)             // POST
	mux.HandleFunc("/api/survey/confirmation", rt.handleConfirmation) // GET
	mux.Handle("/api/responses",
		middleware.AdminGuard(rt.adminPassHash)(http.HandlerFunc(rt.handleListResponses))) // GET
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			http.Error(w, se.Message, http.StatusBadRequest)
		case services.ErrorUnauthorized:
			http.Error(w, se.Message, http.StatusUnauthorized)
		case services.ErrorNotFound:
			http.Error(w, se.Message, http.StatusNotFound)
		default:
			http.Error(w, se.Message, http.StatusInternalServerError)
		}
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// POST /api/survey/identify
func (rt *Router) handleIdentify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req services.IdentifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	sess := rt.flow.Identify(token, req)
	writeJSON(w, map[string]any{"ok": true, "language": sess.Language, "next": "/api/survey/questions"})
}

// GET /api/survey/questions
func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	questions, lang := rt.flow.Questions(token)
	writeJSON(w, map[string]any{"language": lang, "questions": questions})
}

// POST /api/survey/draft
// Body is the full question-id to answer mapping; it replaces any prior
// draft wholesale.
func (rt *Router) handleDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var answers map[string]string
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	writeJSON(w, rt.flow.Draft(token, answers))
}

// GET /api/survey/review
func (rt *Router) handleReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	writeJSON(w, rt.flow.Review(token))
}

// POST /api/survey/commit
func (rt *Router) handleCommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	result, err := rt.flow.Commit(token)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, result)
}

// GET /api/survey/confirmation?token=...
func (rt *Router) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	view, err := rt.flow.Confirmation(r.URL.Query().Get("token"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, view)
}

// GET /api/responses
func (rt *Router) handleListResponses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	list, err := rt.flow.ListResponses()
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]any{"count": len(list), "responses": list})
}
