// Package events publishes campaign lifecycle notifications.
package events

import (
	"context"
	"time"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
)

// EventCampaignCreated is emitted after a campaign was added to the store
const EventCampaignCreated = "campaign.created"

// CampaignCreatedEvent is the message body of EventCampaignCreated
type CampaignCreatedEvent struct {
	Event      string          `json:"event"`
	OccurredAt time.Time       `json:"occurredAt"`
	RequestID  string          `json:"requestId,omitempty"`
	Campaign   models.Campaign `json:"campaign"`
}

// NewCampaignCreatedEvent builds the event for a freshly stored campaign
func NewCampaignCreatedEvent(campaign models.Campaign, requestID string, at time.Time) CampaignCreatedEvent {
	return CampaignCreatedEvent{
		Event:      EventCampaignCreated,
		OccurredAt: at.UTC(),
		RequestID:  requestID,
		Campaign:   campaign,
	}
}

// Publisher delivers campaign events
type Publisher interface {
	PublishCampaignCreated(ctx context.Context, event CampaignCreatedEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishCampaignCreated(context.Context, CampaignCreatedEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
