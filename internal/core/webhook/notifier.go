package webhook

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lisahub/agent-hub-be/internal/shared/utils"
)

// Event is the tag identifying which mutation produced a notification
type Event string

const (
	EventAgentCreated       Event = "agent.created"
	EventAgentUpdated       Event = "agent.updated"
	EventAgentDeleted       Event = "agent.deleted"
	EventFAQCreated         Event = "faq.created"
	EventFAQUpdated         Event = "faq.updated"
	EventFAQDeleted         Event = "faq.deleted"
	EventFAQTemplatesLoaded Event = "faq.templates_loaded"
	EventProductCreated     Event = "product.created"
	EventProductUpdated     Event = "product.updated"
	EventProductDeleted     Event = "product.deleted"
	EventProductImported    Event = "product.imported"
	EventSettingsUpdated    Event = "settings.updated"
)

// Payload is the JSON body posted to the configured endpoint
type Payload struct {
	Event     Event                  `json:"event"`
	Timestamp string                 `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// Notifier delivers best-effort mutation events to an external consumer.
// Implementations must never block the caller or surface delivery errors.
type Notifier interface {
	Notify(event Event, data map[string]interface{})
}

// Client posts events to a single configured webhook URL. When no URL is
// configured every call is skipped outright.
type Client struct {
	url  string
	http *resty.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: resty.New().SetTimeout(10 * time.Second),
	}
}

// Notify dispatches the event in the background. State has already been
// committed by the caller; a slow or failing delivery never rolls it back.
func (c *Client) Notify(event Event, data map[string]interface{}) {
	if c.url == "" {
		return
	}

	payload := Payload{
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}

	go func() {
		resp, err := c.http.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(c.url)
		if err != nil {
			utils.LogError("webhook delivery failed", err, map[string]interface{}{
				"event": string(event),
			})
			return
		}
		if resp.IsError() {
			utils.LogWarn("webhook endpoint returned error status", map[string]interface{}{
				"event":  string(event),
				"status": resp.StatusCode(),
			})
		}
	}()
}
