package services

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lisahub/agent-hub-be/internal/models"
	"github.com/lisahub/agent-hub-be/internal/shared/utils"
)

const chatHistoryKey = "lisa-chat-history"

const sessionTitleLimit = 55

// ChatHistoryService keeps the assistant chat sessions in memory and mirrors
// the full set to the preference database after every mutation. Persistence
// failures are logged and ignored; the in-memory state is authoritative for
// the life of the process.
type ChatHistoryService struct {
	mu       sync.RWMutex
	sessions []models.ChatSession
	storage  Storage
}

// Storage is the key/value persistence surface services write through
type Storage interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

// NewChatHistoryService loads any persisted sessions from storage. A missing
// or unreadable snapshot starts the service empty.
func NewChatHistoryService(storage Storage) *ChatHistoryService {
	s := &ChatHistoryService{storage: storage}
	if storage == nil {
		return s
	}
	raw, err := storage.Get(chatHistoryKey)
	if err != nil {
		utils.LogWarn("failed to load chat history", map[string]interface{}{"error": err.Error()})
		return s
	}
	if raw == "" {
		return s
	}
	var sessions []models.ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		utils.LogWarn("discarding corrupt chat history snapshot", map[string]interface{}{"error": err.Error()})
		return s
	}
	s.sessions = sessions
	return s
}

// CreateSession opens a session titled from its first message. The message
// only derives the title; the session starts with no messages. Titles longer
// than the limit are truncated with a trailing ellipsis. New sessions go to
// the front so the list stays most-recent-first by construction.
func (s *ChatHistoryService) CreateSession(firstMessage string) models.ChatSession {
	now := time.Now().UTC()
	session := models.ChatSession{
		ID:        uuid.NewString(),
		Title:     sessionTitle(firstMessage),
		Messages:  []models.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions = append([]models.ChatSession{session}, s.sessions...)
	s.persistLocked()
	s.mu.Unlock()
	return session
}

// AddMessage appends a message to an existing session and bumps its
// UpdatedAt. Unknown session ids are silent no-ops.
func (s *ChatHistoryService) AddMessage(sessionID string, req *models.AddChatMessageRequest) (models.ChatSession, bool) {
	msg := models.ChatMessage{
		ID:      uuid.NewString(),
		Role:    req.Role,
		Content: req.Content,
	}

	s.mu.Lock()
	var updated models.ChatSession
	found := false
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.sessions[i].Messages = append(s.sessions[i].Messages, msg)
			s.sessions[i].UpdatedAt = time.Now().UTC()
			updated = s.sessions[i]
			found = true
			break
		}
	}
	if found {
		s.persistLocked()
	}
	s.mu.Unlock()

	if !found {
		return models.ChatSession{}, false
	}
	return updated, true
}

// DeleteSession removes a session. Deleting an unknown id is a no-op.
func (s *ChatHistoryService) DeleteSession(sessionID string) bool {
	s.mu.Lock()
	found := false
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persistLocked()
	}
	s.mu.Unlock()
	return found
}

// Session returns one session by id
func (s *ChatHistoryService) Session(sessionID string) (models.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.ID == sessionID {
			return sess, true
		}
	}
	return models.ChatSession{}, false
}

// Sessions returns all sessions, most recently updated first
func (s *ChatHistoryService) Sessions() []models.ChatSession {
	s.mu.RLock()
	out := make([]models.ChatSession, len(s.sessions))
	copy(out, s.sessions)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// GroupedSessions buckets the sorted sessions by calendar recency relative
// to now: today, yesterday, the last seven days, and everything older.
func (s *ChatHistoryService) GroupedSessions(now time.Time) models.SessionGroup {
	sessions := s.Sessions()

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.AddDate(0, 0, -1)
	startOfWeek := startOfToday.AddDate(0, 0, -7)

	group := models.SessionGroup{
		Today:     []models.ChatSession{},
		Yesterday: []models.ChatSession{},
		ThisWeek:  []models.ChatSession{},
		Older:     []models.ChatSession{},
	}
	for _, sess := range sessions {
		ts := sess.UpdatedAt.In(now.Location())
		switch {
		case !ts.Before(startOfToday):
			group.Today = append(group.Today, sess)
		case !ts.Before(startOfYesterday):
			group.Yesterday = append(group.Yesterday, sess)
		case !ts.Before(startOfWeek):
			group.ThisWeek = append(group.ThisWeek, sess)
		default:
			group.Older = append(group.Older, sess)
		}
	}
	return group
}

// persistLocked serializes the session set to storage. Caller must hold the
// write lock.
func (s *ChatHistoryService) persistLocked() {
	if s.storage == nil {
		return
	}
	raw, err := json.Marshal(s.sessions)
	if err != nil {
		utils.LogError("failed to serialize chat history", err, nil)
		return
	}
	if err := s.storage.Put(chatHistoryKey, string(raw)); err != nil {
		utils.LogError("failed to persist chat history", err, nil)
	}
}

func sessionTitle(firstMessage string) string {
	runes := []rune(firstMessage)
	if len(runes) <= sessionTitleLimit {
		return firstMessage
	}
	return string(runes[:sessionTitleLimit]) + "…"
}
