package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/metrics"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/service"
)

// serviceMetricsMiddleware records business metrics for CampaignService
type serviceMetricsMiddleware struct {
	metrics *metrics.Metrics
	next    service.CampaignService
}

// NewServiceMetricsMiddleware creates a new service metrics middleware
func NewServiceMetricsMiddleware(metrics *metrics.Metrics) func(service.CampaignService) service.CampaignService {
	return func(next service.CampaignService) service.CampaignService {
		return &serviceMetricsMiddleware{
			metrics: metrics,
			next:    next,
		}
	}
}

func (mw *serviceMetricsMiddleware) observe(method string, begin time.Time, err error) {
	mw.metrics.RecordServiceCall(method, err == nil, time.Since(begin).Seconds())
}

func (mw *serviceMetricsMiddleware) CreateCampaign(ctx context.Context, req models.CreateCampaignRequest) (campaign models.Campaign, err error) {
	defer func(begin time.Time) { mw.observe("CreateCampaign", begin, err) }(time.Now())

	campaign, err = mw.next.CreateCampaign(ctx, req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			mw.metrics.RecordCampaignRejected()
		}
		return campaign, err
	}

	mw.metrics.RecordCampaignCreated(string(campaign.Type))
	return campaign, nil
}

func (mw *serviceMetricsMiddleware) ListCampaigns(ctx context.Context) (view models.CampaignView, err error) {
	defer func(begin time.Time) { mw.observe("ListCampaigns", begin, err) }(time.Now())
	return mw.next.ListCampaigns(ctx)
}

func (mw *serviceMetricsMiddleware) SelectType(ctx context.Context, filter string) (view models.CampaignView, err error) {
	defer func(begin time.Time) { mw.observe("SelectType", begin, err) }(time.Now())

	view, err = mw.next.SelectType(ctx, filter)
	if err == nil {
		mw.metrics.RecordFilterChange(string(view.SelectedType))
	}
	return view, err
}

func (mw *serviceMetricsMiddleware) GetCampaign(ctx context.Context, id string) (campaign models.Campaign, err error) {
	defer func(begin time.Time) { mw.observe("GetCampaign", begin, err) }(time.Now())
	return mw.next.GetCampaign(ctx, id)
}

func (mw *serviceMetricsMiddleware) GetStats(ctx context.Context) (stats models.CampaignStats, err error) {
	defer func(begin time.Time) { mw.observe("GetStats", begin, err) }(time.Now())
	return mw.next.GetStats(ctx)
}
