package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/ranking"
	"github.com/SiddardhaShayini/AI-Powered-Resume-Ranking/internal/types"
)

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// scoreResponse is the body of a successful POST /score.
type scoreResponse struct {
	Scores          types.ScoreRecord `json:"scores"`
	Insights        []string          `json:"insights"`
	MatchedKeywords []string          `json:"matched_keywords"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleRank scores a batch of resumes against one job description and
// returns them ranked by overall score.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates := make([]ranking.Candidate, len(req.Resumes))
	for i, resume := range req.Resumes {
		candidates[i] = ranking.Candidate{Name: resume.Name, Text: resume.Text}
	}

	result, err := ranking.Rank(r.Context(), s.engine, req.JobDescription, candidates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleScore scores a single resume and returns the record with insights
// and matched keywords.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record := s.engine.ScoreTexts(req.ResumeText, req.JobDescription)

	writeJSON(w, http.StatusOK, scoreResponse{
		Scores:          record,
		Insights:        s.engine.Insights(record),
		MatchedKeywords: s.engine.MatchedKeywords(req.ResumeText, req.JobDescription),
	})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
