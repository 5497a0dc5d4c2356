package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// ChatRequest represents the request body for /chat
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse represents the response for /chat
type ChatResponse struct {
	RequestID string `json:"request_id"`
	Reply     string `json:"reply"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// handleChat runs a message through the chatbot engine and returns the reply
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	requestID := uuid.New().String()
	log.Printf("Processing chat request %s", requestID)

	start := time.Now()
	reply := s.engine.Process(r.Context(), req.Message)

	s.jsonResponse(w, http.StatusOK, ChatResponse{
		RequestID: requestID,
		Reply:     reply,
		ElapsedMS: time.Since(start).Milliseconds(),
	})
}
