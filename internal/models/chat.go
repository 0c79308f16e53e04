package models

// ServiceName is reported by the health endpoint.
const ServiceName = "allergy-assistant"

// HistoryEntry is one prior turn as sent by the client.
type HistoryEntry struct {
	Sender  string `json:"sender"` // "user" or anything else for the assistant
	Message string `json:"message"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string         `json:"message"`
	History []HistoryEntry `json:"history"`
}

// ChatResponse carries the generated reply, or the apology text on downstream failure.
type ChatResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
