package middleware

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	reqcontext "github.com/prajwalbharadwajbm/campaignconsole/internal/context"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/service"
)

// loggingMiddleware logs every CampaignService call
type loggingMiddleware struct {
	logger log.Logger
	next   service.CampaignService
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger log.Logger) func(service.CampaignService) service.CampaignService {
	return func(next service.CampaignService) service.CampaignService {
		return &loggingMiddleware{
			logger: logger,
			next:   next,
		}
	}
}

// logCall writes one line per call; failures are logged at warn
func (mw *loggingMiddleware) logCall(ctx context.Context, method string, begin time.Time, err error, fields ...interface{}) {
	logFields := []interface{}{"method", method}
	logFields = append(logFields, reqcontext.LogFields(ctx)...)
	logFields = append(logFields, fields...)
	logFields = append(logFields, "took", time.Since(begin))

	if err != nil {
		logFields = append(logFields, "err", err, "success", false)
		level.Warn(mw.logger).Log(logFields...)
		return
	}
	logFields = append(logFields, "success", true)
	level.Info(mw.logger).Log(logFields...)
}

func (mw *loggingMiddleware) CreateCampaign(ctx context.Context, req models.CreateCampaignRequest) (campaign models.Campaign, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, "CreateCampaign", begin, err,
			"name", req.Name,
			"type", req.Type,
			"scheduled_date", req.ScheduledDate,
			"campaign_id", campaign.ID,
		)
	}(time.Now())

	return mw.next.CreateCampaign(ctx, req)
}

func (mw *loggingMiddleware) ListCampaigns(ctx context.Context) (view models.CampaignView, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, "ListCampaigns", begin, err,
			"selected_type", view.SelectedType,
			"campaigns_count", len(view.Campaigns),
			"filtered_count", len(view.Filtered),
		)
	}(time.Now())

	return mw.next.ListCampaigns(ctx)
}

func (mw *loggingMiddleware) SelectType(ctx context.Context, filter string) (view models.CampaignView, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, "SelectType", begin, err,
			"type", filter,
			"filtered_count", len(view.Filtered),
		)
	}(time.Now())

	return mw.next.SelectType(ctx, filter)
}

func (mw *loggingMiddleware) GetCampaign(ctx context.Context, id string) (campaign models.Campaign, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, "GetCampaign", begin, err, "campaign_id", id)
	}(time.Now())

	return mw.next.GetCampaign(ctx, id)
}

func (mw *loggingMiddleware) GetStats(ctx context.Context) (stats models.CampaignStats, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, "GetStats", begin, err, "total", stats.Total)
	}(time.Now())

	return mw.next.GetStats(ctx)
}
