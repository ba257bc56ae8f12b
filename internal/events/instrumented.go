package events

import (
	"context"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/metrics"
)

// InstrumentedPublisher counts publish attempts by outcome
type InstrumentedPublisher struct {
	next    Publisher
	metrics *metrics.Metrics
}

// NewInstrumentedPublisher wraps a publisher with metrics collection
func NewInstrumentedPublisher(next Publisher, metrics *metrics.Metrics) Publisher {
	return &InstrumentedPublisher{next: next, metrics: metrics}
}

func (p *InstrumentedPublisher) PublishCampaignCreated(ctx context.Context, event CampaignCreatedEvent) error {
	err := p.next.PublishCampaignCreated(ctx, event)
	p.metrics.RecordEventPublished(event.Event, err == nil)
	return err
}

func (p *InstrumentedPublisher) Close() error {
	return p.next.Close()
}
