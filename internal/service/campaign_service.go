package service

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	reqcontext "github.com/prajwalbharadwajbm/campaignconsole/internal/context"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/events"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
)

// CampaignService defines the console operations exposed over HTTP
type CampaignService interface {
	CreateCampaign(ctx context.Context, req models.CreateCampaignRequest) (models.Campaign, error)
	ListCampaigns(ctx context.Context) (models.CampaignView, error)
	SelectType(ctx context.Context, filter string) (models.CampaignView, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
	GetStats(ctx context.Context) (models.CampaignStats, error)
}

// CampaignStore is the part of store.Store the service needs
type CampaignStore interface {
	Add(ctx context.Context, draft models.CampaignDraft) models.Campaign
	SetSelectedType(filter models.TypeFilter)
	Snapshot() ([]models.Campaign, models.TypeFilter)
	Get(id string) (models.Campaign, bool)
}

type campaignService struct {
	store     CampaignStore
	publisher events.Publisher
	logger    log.Logger
	now       func() time.Time
	location  *time.Location
}

// Option configures the campaign service
type Option func(*campaignService)

// WithClock replaces time.Now, used for the "scheduled in the future" check
func WithClock(now func() time.Time) Option {
	return func(s *campaignService) {
		s.now = now
	}
}

// WithLocation sets the location zone-less scheduled dates are read in
func WithLocation(loc *time.Location) Option {
	return func(s *campaignService) {
		s.location = loc
	}
}

// NewCampaignService creates the campaign service. A nil publisher disables events.
func NewCampaignService(store CampaignStore, publisher events.Publisher, logger log.Logger, opts ...Option) CampaignService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	s := &campaignService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCampaign validates the form, stores the campaign and announces it.
// Invalid requests return models.ValidationErrors and never reach the store.
func (s *campaignService) CreateCampaign(ctx context.Context, req models.CreateCampaignRequest) (models.Campaign, error) {
	now := s.now().In(s.location)

	if err := req.Validate(now); err != nil {
		return models.Campaign{}, err
	}

	draft, err := req.ToDraft(s.location)
	if err != nil {
		return models.Campaign{}, err
	}

	campaign := s.store.Add(ctx, draft)

	event := events.NewCampaignCreatedEvent(campaign, reqcontext.GetRequestID(ctx), now)
	if err := s.publisher.PublishCampaignCreated(ctx, event); err != nil {
		level.Warn(s.logger).Log("msg", "failed to publish campaign event", "event", event.Event, "campaign_id", campaign.ID, "err", err)
	}

	return campaign, nil
}

// ListCampaigns returns the full list, the active filter, the filtered list and stats
func (s *campaignService) ListCampaigns(ctx context.Context) (models.CampaignView, error) {
	campaigns, selected := s.store.Snapshot()
	return models.NewCampaignView(campaigns, selected), nil
}

// SelectType changes the active filter and returns the updated view
func (s *campaignService) SelectType(ctx context.Context, filter string) (models.CampaignView, error) {
	req := models.SelectTypeRequest{Type: filter}
	if err := req.Validate(); err != nil {
		return models.CampaignView{}, err
	}

	s.store.SetSelectedType(req.Filter())
	return s.ListCampaigns(ctx)
}

// GetCampaign looks up one campaign by id
func (s *campaignService) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	campaign, ok := s.store.Get(id)
	if !ok {
		return models.Campaign{}, models.ErrCampaignNotFound
	}
	return campaign, nil
}

// GetStats returns the dashboard figures over all campaigns, ignoring the filter
func (s *campaignService) GetStats(ctx context.Context) (models.CampaignStats, error) {
	campaigns, _ := s.store.Snapshot()
	return models.ComputeStats(campaigns), nil
}
