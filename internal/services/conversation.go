package services

import (
	"allergy-assistant/internal/models"
)

// Persona is appended as the final turn of every generation request.
const Persona = "You are a helpful assistant specializing in allergy information. " +
	"Provide to the point, friendly, and concise answers to the user's questions about food allergies and their symptoms. " +
	"The response should be in bullet points only and answer should be short."

// Role is the speaker of a turn as understood by the generation API.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

// String returns the role label the Gemini API expects.
func (r Role) String() string {
	if r == RoleUser {
		return "user"
	}
	return "model"
}

// RoleForSender maps a client sender label to a Role. Only the literal
// "user" is the user; every other value, including empty, is the assistant.
func RoleForSender(sender string) Role {
	if sender == "user" {
		return RoleUser
	}
	return RoleAssistant
}

// Turn is one role-tagged message in a conversation.
type Turn struct {
	Role Role
	Text string
}

// BuildConversation shapes prior history plus the current message into the
// ordered turns sent downstream: history in order, the message as a user
// turn, then the persona instruction.
func BuildConversation(message string, history []models.HistoryEntry) []Turn {
	turns := make([]Turn, 0, len(history)+2)
	for _, h := range history {
		turns = append(turns, Turn{Role: RoleForSender(h.Sender), Text: h.Message})
	}
	turns = append(turns,
		Turn{Role: RoleUser, Text: message},
		Turn{Role: RoleUser, Text: Persona},
	)
	return turns
}
