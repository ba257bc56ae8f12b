package service

import (
	"context"
	"errors"
	"testing"
	"time"

	reqcontext "github.com/prajwalbharadwajbm/campaignconsole/internal/context"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/events"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishCampaignCreated(ctx context.Context, event events.CampaignCreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, publisher events.Publisher) (CampaignService, *store.Store) {
	t.Helper()
	s := store.New(context.Background(), nil)
	svc := NewCampaignService(s, publisher, nil, WithClock(func() time.Time { return fixedNow }))
	return svc, s
}

func validRequest() models.CreateCampaignRequest {
	return models.CreateCampaignRequest{
		Name:          "Promo Blast",
		Type:          "email",
		Message:       "Spring sale starts now!",
		ScheduledDate: "2026-03-22T09:00",
	}
}

func TestNewCampaignService(t *testing.T) {
	svc := NewCampaignService(store.New(context.Background(), nil), nil, nil)

	assert.NotNil(t, svc)
	assert.IsType(t, &campaignService{}, svc)
}

func TestCampaignService_CreateCampaign(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishCampaignCreated", mock.Anything, mock.MatchedBy(func(e events.CampaignCreatedEvent) bool {
		return e.Event == events.EventCampaignCreated && e.Campaign.Name == "Promo Blast" && e.RequestID == "req-42"
	})).Return(nil).Once()

	svc, s := newTestService(t, publisher)
	ctx := reqcontext.NewRequestContext(context.Background(), "req-42", "", "")

	campaign, err := svc.CreateCampaign(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, "Promo Blast", campaign.Name)
	assert.Equal(t, models.TypeEmail, campaign.Type)
	assert.Equal(t, models.StatusScheduled, campaign.Status)
	assert.Equal(t, 0, campaign.Responses)
	assert.Equal(t, "-", campaign.Engagement)
	assert.Equal(t, "Starts 3/22/2026", campaign.LastRun)
	assert.Equal(t, "2026-03-22T09:00:00.000Z", campaign.ScheduledDate)

	campaigns := s.Campaigns()
	require.Len(t, campaigns, 4)
	assert.Equal(t, campaign, campaigns[0])
	publisher.AssertExpectations(t)
}

func TestCampaignService_CreateCampaign_LocationAppliesToZonelessDates(t *testing.T) {
	berlin := time.FixedZone("CET", 60*60)
	s := store.New(context.Background(), nil, store.WithLocation(berlin))
	svc := NewCampaignService(s, nil, nil,
		WithClock(func() time.Time { return fixedNow }),
		WithLocation(berlin),
	)

	req := validRequest()
	req.ScheduledDate = "2026-03-23T00:30"

	campaign, err := svc.CreateCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-22T23:30:00.000Z", campaign.ScheduledDate)
	assert.Equal(t, "Starts 3/23/2026", campaign.LastRun)
}

func TestCampaignService_CreateCampaign_ValidationNeverReachesStore(t *testing.T) {
	publisher := new(MockPublisher)
	svc, s := newTestService(t, publisher)

	tests := []struct {
		name   string
		mutate func(*models.CreateCampaignRequest)
		field  string
	}{
		{name: "empty name", mutate: func(r *models.CreateCampaignRequest) { r.Name = "" }, field: "name"},
		{name: "bad type", mutate: func(r *models.CreateCampaignRequest) { r.Type = "fax" }, field: "type"},
		{name: "empty message", mutate: func(r *models.CreateCampaignRequest) { r.Message = "  " }, field: "message"},
		{name: "past date", mutate: func(r *models.CreateCampaignRequest) { r.ScheduledDate = "2026-03-09T09:00" }, field: "scheduledDate"},
		{name: "date equal to now", mutate: func(r *models.CreateCampaignRequest) { r.ScheduledDate = "2026-03-10T12:00:00Z" }, field: "scheduledDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.CreateCampaign(context.Background(), req)

			var verrs models.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Contains(t, verrs, tt.field)
			assert.Len(t, s.Campaigns(), 3)
		})
	}
	publisher.AssertNotCalled(t, "PublishCampaignCreated", mock.Anything, mock.Anything)
}

func TestCampaignService_CreateCampaign_PublishFailureIsNotFatal(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishCampaignCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc, s := newTestService(t, publisher)

	campaign, err := svc.CreateCampaign(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, campaign, s.Campaigns()[0])
}

func TestCampaignService_ListCampaigns(t *testing.T) {
	svc, _ := newTestService(t, nil)

	view, err := svc.ListCampaigns(context.Background())
	require.NoError(t, err)

	assert.Len(t, view.Campaigns, 3)
	assert.Equal(t, models.FilterAll, view.SelectedType)
	assert.Equal(t, view.Campaigns, view.Filtered)
	assert.Equal(t, 3, view.Stats.Total)
	assert.Equal(t, 1, view.Stats.Running)
	assert.Equal(t, 2138, view.Stats.TotalResponses)
	require.NotNil(t, view.Stats.AvgEngagement)
	assert.Equal(t, 85, *view.Stats.AvgEngagement)
}

func TestCampaignService_SelectType(t *testing.T) {
	svc, s := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateCampaign(ctx, validRequest())
	require.NoError(t, err)

	view, err := svc.SelectType(ctx, "email")
	require.NoError(t, err)

	assert.Equal(t, models.TypeFilter(models.TypeEmail), view.SelectedType)
	require.Len(t, view.Filtered, 2)
	assert.Equal(t, "Promo Blast", view.Filtered[0].Name)
	assert.Equal(t, "Monthly Newsletter", view.Filtered[1].Name)
	assert.Len(t, view.Campaigns, 4)
	assert.Equal(t, 4, view.Stats.Total, "stats ignore the filter")
	assert.Equal(t, models.TypeFilter(models.TypeEmail), s.SelectedType())
}

func TestCampaignService_SelectType_Invalid(t *testing.T) {
	svc, s := newTestService(t, nil)

	_, err := svc.SelectType(context.Background(), "push")
	assert.ErrorIs(t, err, models.ErrInvalidTypeFilter)
	assert.Equal(t, models.FilterAll, s.SelectedType())
}

func TestCampaignService_GetCampaign(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateCampaign(ctx, validRequest())
	require.NoError(t, err)

	got, err := svc.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetCampaign(ctx, "does-not-exist")
	assert.ErrorIs(t, err, models.ErrCampaignNotFound)
}

func TestCampaignService_GetStats(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateCampaign(ctx, validRequest())
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2138, stats.TotalResponses)
	require.NotNil(t, stats.AvgEngagement)
	assert.Equal(t, 85, *stats.AvgEngagement, "new campaigns carry no engagement")
}
