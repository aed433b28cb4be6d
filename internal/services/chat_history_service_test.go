package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisahub/agent-hub-be/internal/models"
)

type memStorage struct {
	values map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string]string{}}
}

func (m *memStorage) Get(key string) (string, error) {
	return m.values[key], nil
}

func (m *memStorage) Put(key, value string) error {
	m.values[key] = value
	return nil
}

func TestCreateSessionShortTitleKeptWhole(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())

	session := svc.CreateSession("¿Cómo conecto WhatsApp?")

	assert.Equal(t, "¿Cómo conecto WhatsApp?", session.Title)
	assert.Equal(t, session.CreatedAt, session.UpdatedAt)
}

func TestCreateSessionStartsWithNoMessages(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())

	// The first message only derives the title
	session := svc.CreateSession("Hola, necesito ayuda con mi agente")

	assert.Empty(t, session.Messages)
	assert.NotNil(t, session.Messages)
}

func TestCreateSessionLongTitleTruncated(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())
	long := strings.Repeat("á", 80)

	session := svc.CreateSession(long)

	runes := []rune(session.Title)
	assert.Len(t, runes, 56)
	assert.Equal(t, '…', runes[55])
	assert.Equal(t, strings.Repeat("á", 55), string(runes[:55]))
}

func TestCreateSessionTitleAtExactLimit(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())
	exact := strings.Repeat("x", 55)

	session := svc.CreateSession(exact)

	assert.Equal(t, exact, session.Title)
}

func TestSessionsMostRecentFirst(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())
	first := svc.CreateSession("primera")
	second := svc.CreateSession("segunda")

	// Touching the older session moves it to the front
	_, ok := svc.AddMessage(first.ID, &models.AddChatMessageRequest{Role: "agent", Content: "hola"})
	require.True(t, ok)

	sessions := svc.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)
}

func TestNewestSessionFirstOnEqualTimestamps(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())

	// Back-to-back creations can land on the same clock tick; ordering must
	// not depend on timestamp resolution.
	svc.CreateSession("primera")
	second := svc.CreateSession("segunda")

	sessions := svc.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
}

func TestAddMessageUnknownSessionIsNoOp(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())
	svc.CreateSession("hola")

	_, ok := svc.AddMessage("missing", &models.AddChatMessageRequest{Role: "user", Content: "eco"})

	assert.False(t, ok)
	assert.Len(t, svc.Sessions(), 1)
}

func TestDeleteSession(t *testing.T) {
	svc := NewChatHistoryService(newMemStorage())
	session := svc.CreateSession("borrar")

	assert.True(t, svc.DeleteSession(session.ID))
	assert.False(t, svc.DeleteSession(session.ID))
	assert.Empty(t, svc.Sessions())
}

func TestSessionsSurviveRestart(t *testing.T) {
	storage := newMemStorage()
	first := NewChatHistoryService(storage)
	session := first.CreateSession("persistente")
	_, ok := first.AddMessage(session.ID, &models.AddChatMessageRequest{Role: "agent", Content: "sigo aquí"})
	require.True(t, ok)

	second := NewChatHistoryService(storage)

	sessions := second.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, session.ID, sessions[0].ID)
	assert.Len(t, sessions[0].Messages, 1)
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	storage := newMemStorage()
	storage.values["lisa-chat-history"] = "{not json"

	svc := NewChatHistoryService(storage)

	assert.Empty(t, svc.Sessions())
}

func TestGroupedSessions(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	sessions := []models.ChatSession{
		{ID: "s-today", Title: "hoy", UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "s-yesterday", Title: "ayer", UpdatedAt: now.AddDate(0, 0, -1)},
		{ID: "s-week", Title: "semana", UpdatedAt: now.AddDate(0, 0, -5)},
		{ID: "s-older", Title: "viejo", UpdatedAt: now.AddDate(0, 0, -30)},
	}
	raw, err := json.Marshal(sessions)
	require.NoError(t, err)
	storage := newMemStorage()
	storage.values["lisa-chat-history"] = string(raw)

	svc := NewChatHistoryService(storage)
	group := svc.GroupedSessions(now)

	require.Len(t, group.Today, 1)
	assert.Equal(t, "s-today", group.Today[0].ID)
	require.Len(t, group.Yesterday, 1)
	assert.Equal(t, "s-yesterday", group.Yesterday[0].ID)
	require.Len(t, group.ThisWeek, 1)
	assert.Equal(t, "s-week", group.ThisWeek[0].ID)
	require.Len(t, group.Older, 1)
	assert.Equal(t, "s-older", group.Older[0].ID)
}
