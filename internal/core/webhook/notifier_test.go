package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyPostsPayload(t *testing.T) {
	received := make(chan Payload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		received <- p
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.Notify(EventAgentCreated, map[string]interface{}{"agent_id": "agent-001"})

	select {
	case p := <-received:
		assert.Equal(t, EventAgentCreated, p.Event)
		assert.Equal(t, "agent-001", p.Data["agent_id"])
		ts, err := time.Parse(time.RFC3339, p.Timestamp)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was never delivered")
	}
}

func TestNotifySkippedWhenUnconfigured(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient("")
	client.Notify(EventAgentDeleted, map[string]interface{}{"agent_id": "agent-001"})

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, calls)
}

func TestNotifySurvivesEndpointErrors(t *testing.T) {
	done := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		done <- struct{}{}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	// Must not panic or surface the failure
	client.Notify(EventFAQCreated, nil)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was never attempted")
	}
}
