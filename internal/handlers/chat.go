package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"allergy-assistant/internal/middleware"
	"allergy-assistant/internal/models"
	"allergy-assistant/internal/services"
)

const (
	msgEmptyMessage = "Message cannot be empty"
	msgNoResponse   = "I couldn't generate a response. Please try again."
	msgUnavailable  = "I'm having trouble responding right now. Please try again later."
)

type chatGenerator interface {
	Generate(ctx context.Context, turns []services.Turn) (string, error)
}

type ChatHandler struct {
	generator chatGenerator
}

func NewChatHandler(generator chatGenerator) *ChatHandler {
	return &ChatHandler{generator: generator}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error in chat [%s]: invalid request body: %v", middleware.GetRequestID(r.Context()), err)
		middleware.WriteUnexpected(w)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgEmptyMessage})
		return
	}

	turns := services.BuildConversation(message, req.History)

	reply, err := h.generator.Generate(r.Context(), turns)
	if err != nil {
		log.Printf("Chat generation failed [%s]: %v", middleware.GetRequestID(r.Context()), err)
		if errors.Is(err, services.ErrEmptyResponse) {
			writeJSON(w, http.StatusInternalServerError, models.ChatResponse{Response: msgNoResponse})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ChatResponse{Response: msgUnavailable})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}
