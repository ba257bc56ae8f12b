package endpoint

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/service"
)

// CampaignEndpoints holds all endpoints for the campaign service
type CampaignEndpoints struct {
	CreateCampaignEndpoint endpoint.Endpoint
	ListCampaignsEndpoint  endpoint.Endpoint
	SelectTypeEndpoint     endpoint.Endpoint
	GetCampaignEndpoint    endpoint.Endpoint
	GetStatsEndpoint       endpoint.Endpoint
}

// MakeCampaignEndpoints creates endpoints for the campaign service
func MakeCampaignEndpoints(s service.CampaignService) CampaignEndpoints {
	return CampaignEndpoints{
		CreateCampaignEndpoint: makeCreateCampaignEndpoint(s),
		ListCampaignsEndpoint:  makeListCampaignsEndpoint(s),
		SelectTypeEndpoint:     makeSelectTypeEndpoint(s),
		GetCampaignEndpoint:    makeGetCampaignEndpoint(s),
		GetStatsEndpoint:       makeGetStatsEndpoint(s),
	}
}

type CreateCampaignRequest struct {
	Campaign models.CreateCampaignRequest
}

type CreateCampaignResponse struct {
	Campaign models.Campaign
	Err      error
}

// Failed implements the endpoint.Failer interface
func (r CreateCampaignResponse) Failed() error { return r.Err }

type ListCampaignsRequest struct{}

// CampaignViewResponse is returned by the list and select-type endpoints
type CampaignViewResponse struct {
	View models.CampaignView
	Err  error
}

// Failed implements the endpoint.Failer interface
func (r CampaignViewResponse) Failed() error { return r.Err }

type SelectTypeRequest struct {
	Type string
}

type GetCampaignRequest struct {
	ID string
}

type GetCampaignResponse struct {
	Campaign models.Campaign
	Err      error
}

// Failed implements the endpoint.Failer interface
func (r GetCampaignResponse) Failed() error { return r.Err }

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Stats models.CampaignStats
	Err   error
}

// Failed implements the endpoint.Failer interface
func (r GetStatsResponse) Failed() error { return r.Err }

func makeCreateCampaignEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(CreateCampaignRequest)
		campaign, err := s.CreateCampaign(ctx, req.Campaign)
		return CreateCampaignResponse{Campaign: campaign, Err: err}, nil
	}
}

func makeListCampaignsEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		view, err := s.ListCampaigns(ctx)
		return CampaignViewResponse{View: view, Err: err}, nil
	}
}

func makeSelectTypeEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(SelectTypeRequest)
		view, err := s.SelectType(ctx, req.Type)
		return CampaignViewResponse{View: view, Err: err}, nil
	}
}

func makeGetCampaignEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(GetCampaignRequest)
		campaign, err := s.GetCampaign(ctx, req.ID)
		return GetCampaignResponse{Campaign: campaign, Err: err}, nil
	}
}

func makeGetStatsEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, _ any) (any, error) {
		stats, err := s.GetStats(ctx)
		return GetStatsResponse{Stats: stats, Err: err}, nil
	}
}

// CreateCampaign calls the endpoint; CampaignEndpoints itself satisfies service.CampaignService
func (e CampaignEndpoints) CreateCampaign(ctx context.Context, req models.CreateCampaignRequest) (models.Campaign, error) {
	response, err := e.CreateCampaignEndpoint(ctx, CreateCampaignRequest{Campaign: req})
	if err != nil {
		return models.Campaign{}, err
	}
	resp := response.(CreateCampaignResponse)
	return resp.Campaign, resp.Err
}

func (e CampaignEndpoints) ListCampaigns(ctx context.Context) (models.CampaignView, error) {
	response, err := e.ListCampaignsEndpoint(ctx, ListCampaignsRequest{})
	if err != nil {
		return models.CampaignView{}, err
	}
	resp := response.(CampaignViewResponse)
	return resp.View, resp.Err
}

func (e CampaignEndpoints) SelectType(ctx context.Context, filter string) (models.CampaignView, error) {
	response, err := e.SelectTypeEndpoint(ctx, SelectTypeRequest{Type: filter})
	if err != nil {
		return models.CampaignView{}, err
	}
	resp := response.(CampaignViewResponse)
	return resp.View, resp.Err
}

func (e CampaignEndpoints) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	response, err := e.GetCampaignEndpoint(ctx, GetCampaignRequest{ID: id})
	if err != nil {
		return models.Campaign{}, err
	}
	resp := response.(GetCampaignResponse)
	return resp.Campaign, resp.Err
}

func (e CampaignEndpoints) GetStats(ctx context.Context) (models.CampaignStats, error) {
	response, err := e.GetStatsEndpoint(ctx, GetStatsRequest{})
	if err != nil {
		return models.CampaignStats{}, err
	}
	resp := response.(GetStatsResponse)
	return resp.Stats, resp.Err
}
