package endpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCampaignService is a mock implementation of service.CampaignService
type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) CreateCampaign(ctx context.Context, req models.CreateCampaignRequest) (models.Campaign, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Campaign), args.Error(1)
}

func (m *MockCampaignService) ListCampaigns(ctx context.Context) (models.CampaignView, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.CampaignView), args.Error(1)
}

func (m *MockCampaignService) SelectType(ctx context.Context, filter string) (models.CampaignView, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(models.CampaignView), args.Error(1)
}

func (m *MockCampaignService) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Campaign), args.Error(1)
}

func (m *MockCampaignService) GetStats(ctx context.Context) (models.CampaignStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.CampaignStats), args.Error(1)
}

var _ service.CampaignService = CampaignEndpoints{}

func TestMakeCampaignEndpoints(t *testing.T) {
	endpoints := MakeCampaignEndpoints(new(MockCampaignService))

	assert.NotNil(t, endpoints.CreateCampaignEndpoint)
	assert.NotNil(t, endpoints.ListCampaignsEndpoint)
	assert.NotNil(t, endpoints.SelectTypeEndpoint)
	assert.NotNil(t, endpoints.GetCampaignEndpoint)
	assert.NotNil(t, endpoints.GetStatsEndpoint)
}

func TestCreateCampaignEndpoint(t *testing.T) {
	svc := new(MockCampaignService)
	req := models.CreateCampaignRequest{Name: "Promo Blast", Type: "email"}
	svc.On("CreateCampaign", mock.Anything, req).Return(models.Campaign{ID: "c-1", Name: "Promo Blast"}, nil)

	endpoints := MakeCampaignEndpoints(svc)
	response, err := endpoints.CreateCampaignEndpoint(context.Background(), CreateCampaignRequest{Campaign: req})
	require.NoError(t, err)

	resp := response.(CreateCampaignResponse)
	assert.NoError(t, resp.Failed())
	assert.Equal(t, "c-1", resp.Campaign.ID)
	svc.AssertExpectations(t)
}

func TestCreateCampaignEndpoint_ServiceErrorIsInResponse(t *testing.T) {
	svc := new(MockCampaignService)
	verrs := models.ValidationErrors{"name": "Campaign name is required"}
	svc.On("CreateCampaign", mock.Anything, mock.Anything).Return(models.Campaign{}, verrs)

	endpoints := MakeCampaignEndpoints(svc)
	response, err := endpoints.CreateCampaignEndpoint(context.Background(), CreateCampaignRequest{})

	require.NoError(t, err, "business errors travel in the response")
	assert.Equal(t, verrs, response.(CreateCampaignResponse).Failed())
}

func TestSelectTypeEndpoint(t *testing.T) {
	svc := new(MockCampaignService)
	view := models.CampaignView{SelectedType: "sms"}
	svc.On("SelectType", mock.Anything, "sms").Return(view, nil)
	svc.On("SelectType", mock.Anything, "push").Return(models.CampaignView{}, models.ErrInvalidTypeFilter)

	endpoints := MakeCampaignEndpoints(svc)

	got, err := endpoints.SelectType(context.Background(), "sms")
	require.NoError(t, err)
	assert.Equal(t, view, got)

	_, err = endpoints.SelectType(context.Background(), "push")
	assert.ErrorIs(t, err, models.ErrInvalidTypeFilter)
}

func TestEndpointsAsService(t *testing.T) {
	svc := new(MockCampaignService)
	avg := 85
	svc.On("ListCampaigns", mock.Anything).Return(models.CampaignView{SelectedType: models.FilterAll}, nil)
	svc.On("GetCampaign", mock.Anything, "missing").Return(models.Campaign{}, models.ErrCampaignNotFound)
	svc.On("GetStats", mock.Anything).Return(models.CampaignStats{Total: 3, AvgEngagement: &avg}, nil)

	var client service.CampaignService = MakeCampaignEndpoints(svc)
	ctx := context.Background()

	view, err := client.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FilterAll, view.SelectedType)

	_, err = client.GetCampaign(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrCampaignNotFound))

	stats, err := client.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	svc.AssertExpectations(t)
}
