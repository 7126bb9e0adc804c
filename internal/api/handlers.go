package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.len(),
	})
}

func (s *Server) generateQuestions(w http.ResponseWriter, r *http.Request) {
	mode, cfg, ok := s.decodeQuiz(w, r)
	if !ok {
		return
	}
	questions, err := s.engine.Start(mode, cfg)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]*questionView, len(questions))
	for i := range questions {
		out[i] = newQuestionView(i, &questions[i], true)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"mode":      mode,
		"requested": cfg.QuestionCount,
		"total":     len(questions),
		"questions": out,
	})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	mode, cfg, ok := s.decodeQuiz(w, r)
	if !ok {
		return
	}
	state, err := session.Begin(r.Context(), s.engine, mode, cfg, s.repo)
	if err != nil {
		respondError(w, err)
		return
	}
	s.sessions.add(state)
	respondJSON(w, http.StatusCreated, newSessionView(state))
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	respondJSON(w, http.StatusOK, newSessionView(e.state))
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorView{Error: "invalid JSON body"})
		return
	}

	out, rec, status, errView := s.applyAnswer(e, req)
	if errView != nil {
		respondJSON(w, status, errView)
		return
	}

	// The session is unlocked here so a slow explanation only delays this response.
	if !rec.Correct {
		ex := s.explainer.Explain(r.Context(), &rec.Question, rec.Chosen)
		out.Explanation = &explanationView{
			Summary: ex.Summary,
			Steps:   ex.Steps,
			Tip:     ex.Tip,
			Source:  string(ex.Source),
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// applyAnswer records the answer and advances the quiz under e.mu. It
// returns a copy of the answer record for use after the lock is released.
func (s *Server) applyAnswer(e *entry, req answerRequest) (*answerView, session.AnswerRecord, int, *errorView) {
	e.mu.Lock()
	defer e.mu.Unlock()
	state := e.state

	q := session.CurrentQuestion(state)
	if q == nil || state.Finished {
		return nil, session.AnswerRecord{}, http.StatusConflict, &errorView{Error: "session is already complete"}
	}
	if req.Index != nil && *req.Index != state.CurrentIndex {
		return nil, session.AnswerRecord{}, http.StatusConflict, &errorView{Error: "question has already been answered"}
	}

	chosen, msg := resolveChoice(q, req)
	if msg != "" {
		return nil, session.AnswerRecord{}, http.StatusBadRequest, &errorView{Error: msg, Field: "choice"}
	}

	rec := session.HandleAnswer(state, chosen)
	if rec == nil {
		return nil, session.AnswerRecord{}, http.StatusConflict, &errorView{Error: "question has already been answered"}
	}

	out := &answerView{Correct: rec.Correct, CorrectAnswer: rec.Question.Answer}
	if session.Advance(state) {
		out.Next = newQuestionView(state.CurrentIndex, session.CurrentQuestion(state), false)
	} else {
		out.Done = true
	}
	return out, *rec, http.StatusOK, nil
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	respondJSON(w, http.StatusOK, newSummaryView(e.state.SessionID, session.BuildSummary(e.state)))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	id := chi.URLParam(r, "sessionID")
	e, ok := s.sessions.get(id)
	if !ok {
		respondJSON(w, http.StatusNotFound, errorView{Error: "session not found"})
		return nil, false
	}
	return e, true
}

// decodeQuiz reads a quizRequest and fills omitted fields from the
// practice defaults.
func (s *Server) decodeQuiz(w http.ResponseWriter, r *http.Request) (problemgen.Mode, problemgen.Config, bool) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorView{Error: "invalid JSON body"})
		return "", problemgen.Config{}, false
	}

	mode, err := problemgen.ParseMode(req.Mode)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorView{Error: err.Error(), Field: "mode"})
		return "", problemgen.Config{}, false
	}

	cfg := s.practice.QuizConfig(mode)
	if req.QuestionCount != nil {
		cfg.QuestionCount = *req.QuestionCount
	}
	switch mode {
	case problemgen.ModeMultiplication:
		if req.Multipliers != nil {
			cfg.Multipliers = req.Multipliers
		}
	case problemgen.ModeInequality:
		if req.Operators != nil {
			cfg.Operators = make([]problemgen.Operator, 0, len(req.Operators))
			for _, raw := range req.Operators {
				op, err := problemgen.ParseOperator(raw)
				if err != nil {
					op = problemgen.Operator(raw)
				}
				cfg.Operators = append(cfg.Operators, op)
			}
		}
	}
	return mode, cfg, true
}

func resolveChoice(q *problemgen.Question, req answerRequest) (int, string) {
	switch {
	case req.Choice != nil && req.Option != nil:
		return 0, "send either choice or option, not both"
	case req.Choice != nil:
		if !slices.Contains(q.Options, *req.Choice) {
			return 0, "choice must be one of the options"
		}
		return *req.Choice, ""
	case req.Option != nil:
		v, ok := problemgen.ChoiceAt(q, *req.Option-1)
		if !ok {
			return 0, "option must be between 1 and 4"
		}
		return v, ""
	}
	return 0, "choice is required"
}

func respondError(w http.ResponseWriter, err error) {
	var ce *problemgen.ConfigError
	if errors.As(err, &ce) {
		respondJSON(w, http.StatusBadRequest, errorView{Error: ce.Message, Field: ce.Field})
		return
	}
	respondJSON(w, http.StatusInternalServerError, errorView{Error: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}
