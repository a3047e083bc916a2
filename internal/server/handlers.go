package server

import (
	"encoding/json"
	"net/http"
)

// decodeAndValidate decodes the request body into dst and checks its
// validation tags, writing a 400 on failure. Returns false when the
// handler should bail out.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// handleChat routes a free-form message through the conversation handler.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	reply := s.conv.HandleMessage(r.Context(), req.UserID, req.Message)
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"reply":  reply.Text,
		"intent": string(reply.Intent),
	})
}

// handleCareerAnalyze recommends career directions for a profile.
func (s *Server) handleCareerAnalyze(w http.ResponseWriter, r *http.Request) {
	var req CareerAnalyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.agent.AnalyzeCareerPath(r.Context(), req.Profile)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleResumeReview scores a resume, optionally against a target role.
func (s *Server) handleResumeReview(w http.ResponseWriter, r *http.Request) {
	var req ResumeReviewRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.agent.ReviewResume(r.Context(), req.ResumeText, req.TargetRole)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleJobsMatch finds job opportunities for a profile and preferences.
func (s *Server) handleJobsMatch(w http.ResponseWriter, r *http.Request) {
	var req JobsMatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.agent.MatchJobs(r.Context(), req.Profile, req.Preferences)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleSkillGap compares current skills against a target role.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var req SkillGapRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.agent.AnalyzeSkillGap(r.Context(), req.Skills, req.TargetRole)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleInterviewStart begins a mock interview session for a user.
func (s *Server) handleInterviewStart(w http.ResponseWriter, r *http.Request) {
	var req InterviewStartRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.agent.StartInterview(r.Context(), req.UserID, req.Role)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleInterviewAnswer records an answer to the current question.
func (s *Server) handleInterviewAnswer(w http.ResponseWriter, r *http.Request) {
	var req InterviewAnswerRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.agent.AdvanceInterview(r.Context(), req.UserID, req.Answer)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleInterviewEnd evaluates the answers given so far and closes the
// session.
func (s *Server) handleInterviewEnd(w http.ResponseWriter, r *http.Request) {
	var req InterviewEndRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.agent.EndInterview(r.Context(), req.UserID)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleInterviewStatus returns the user's active session, if any.
func (s *Server) handleInterviewStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	session := s.agent.CurrentInterview(userID)
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "no active interview session")
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

// handleHealth reports backend availability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"provider":        s.agent.Provider(),
		"model_available": s.agent.Healthy(r.Context()),
	})
}
