package services

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/lisahub/agent-hub-be/internal/models"
)

// TrainingMessages returns the agent's training chat transcript
func (s *AgentService) TrainingMessages(agentID string) []models.TrainingMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrainingMessage, 0)
	for _, m := range s.trainingMessages {
		if m.AgentID == agentID {
			out = append(out, m)
		}
	}
	return out
}

// AddTrainingMessage records a trainer turn and immediately appends the
// agent's reply, picked from the canned response pool for the tool in use.
// Both messages are returned in order.
func (s *AgentService) AddTrainingMessage(agentID, content string, tool models.TrainingToolType, attachment string) []models.TrainingMessage {
	userMsg := models.TrainingMessage{
		ID:             uuid.NewString(),
		AgentID:        agentID,
		Role:           "user",
		Content:        content,
		ToolType:       tool,
		AttachmentName: attachment,
	}
	reply := models.TrainingMessage{
		ID:             uuid.NewString(),
		AgentID:        agentID,
		Role:           "agent",
		Content:        s.pickTrainingReply(tool),
		ToolType:       tool,
		KnowledgeSaved: tool != "",
	}

	s.mu.Lock()
	s.trainingMessages = append(s.trainingMessages, userMsg, reply)
	s.mu.Unlock()

	return []models.TrainingMessage{userMsg, reply}
}

// ClearTrainingMessages wipes the agent's training transcript
func (s *AgentService) ClearTrainingMessages(agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.trainingMessages[:0]
	for _, m := range s.trainingMessages {
		if m.AgentID != agentID {
			out = append(out, m)
		}
	}
	s.trainingMessages = out
}

func (s *AgentService) pickTrainingReply(tool models.TrainingToolType) string {
	pool, ok := s.trainingResponses[string(tool)]
	if !ok || len(pool) == 0 {
		pool = s.trainingResponses["general"]
	}
	if len(pool) == 0 {
		return "Entendido, lo tendré en cuenta."
	}
	return pool[rand.Intn(len(pool))]
}
