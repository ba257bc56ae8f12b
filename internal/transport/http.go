package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	kitendpoint "github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/transport"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/endpoint"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
)

// maxBodyBytes bounds request bodies; the largest valid form is well under it
const maxBodyBytes = 64 << 10

// ErrMalformedRequest is returned when a request body is not the expected JSON
var ErrMalformedRequest = errors.New("malformed request body")

// HealthCheck reports whether one dependency is usable
type HealthCheck func(ctx context.Context) error

// ServiceInfo is reported by /health
type ServiceInfo struct {
	Name    string
	Version string
}

// NewHTTPHandler creates the HTTP handlers for the campaign service
func NewHTTPHandler(endpoints endpoint.CampaignEndpoints, logger log.Logger, info ServiceInfo, checks map[string]HealthCheck) *mux.Router {
	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(encodeError),
		httptransport.ServerErrorHandler(transport.NewLogErrorHandler(logger)),
	}

	createCampaignHandler := httptransport.NewServer(
		endpoints.CreateCampaignEndpoint,
		decodeCreateCampaignRequest,
		encodeResponse(http.StatusCreated, func(r interface{}) interface{} {
			return r.(endpoint.CreateCampaignResponse).Campaign
		}),
		options...,
	)

	listCampaignsHandler := httptransport.NewServer(
		endpoints.ListCampaignsEndpoint,
		decodeListCampaignsRequest,
		encodeResponse(http.StatusOK, viewBody),
		options...,
	)

	selectTypeHandler := httptransport.NewServer(
		endpoints.SelectTypeEndpoint,
		decodeSelectTypeRequest,
		encodeResponse(http.StatusOK, viewBody),
		options...,
	)

	getCampaignHandler := httptransport.NewServer(
		endpoints.GetCampaignEndpoint,
		decodeGetCampaignRequest,
		encodeResponse(http.StatusOK, func(r interface{}) interface{} {
			return r.(endpoint.GetCampaignResponse).Campaign
		}),
		options...,
	)

	getStatsHandler := httptransport.NewServer(
		endpoints.GetStatsEndpoint,
		decodeGetStatsRequest,
		encodeResponse(http.StatusOK, func(r interface{}) interface{} {
			return r.(endpoint.GetStatsResponse).Stats
		}),
		options...,
	)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	// static paths go before {id}
	r.Handle("/v1/campaigns", listCampaignsHandler).Methods(http.MethodGet)
	r.Handle("/v1/campaigns", createCampaignHandler).Methods(http.MethodPost)
	r.Handle("/v1/campaigns/filter", selectTypeHandler).Methods(http.MethodPut)
	r.Handle("/v1/campaigns/stats", getStatsHandler).Methods(http.MethodGet)
	r.Handle("/v1/campaigns/{id}", getCampaignHandler).Methods(http.MethodGet)

	r.Handle("/health", healthHandler(info, checks)).Methods(http.MethodGet)

	return r
}

func decodeCreateCampaignRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req models.CreateCampaignRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return nil, err
	}
	return endpoint.CreateCampaignRequest{Campaign: req}, nil
}

func decodeListCampaignsRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return endpoint.ListCampaignsRequest{}, nil
}

func decodeSelectTypeRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req models.SelectTypeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return nil, err
	}
	return endpoint.SelectTypeRequest{Type: req.Type}, nil
}

func decodeGetCampaignRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return endpoint.GetCampaignRequest{ID: mux.Vars(r)["id"]}, nil
}

func decodeGetStatsRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return endpoint.GetStatsRequest{}, nil
}

// decodeJSONBody decodes a single JSON object; empty or trailing data is malformed
func decodeJSONBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedRequest)
	}
	return nil
}

func viewBody(r interface{}) interface{} {
	return r.(endpoint.CampaignViewResponse).View
}

// encodeResponse writes the response as JSON with the given status, or hands
// a business error carried by the response to encodeError.
func encodeResponse(status int, body func(interface{}) interface{}) httptransport.EncodeResponseFunc {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		if f, ok := response.(kitendpoint.Failer); ok && f.Failed() != nil {
			encodeError(ctx, f.Failed(), w)
			return nil
		}
		return writeJSON(w, status, body(response))
	}
}

// encodeError encodes error to HTTP response
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	var verrs models.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(verrs))
	case errors.Is(err, models.ErrInvalidTypeFilter), errors.Is(err, ErrMalformedRequest):
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(err.Error()))
	case errors.Is(err, models.ErrCampaignNotFound):
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, models.NewErrorResponse("route not found"))
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, models.NewErrorResponse("method not allowed"))
}

// healthHandler reports "healthy" with 200 when every check passes, else
// "unhealthy" with 503.
func healthHandler(info ServiceInfo, checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "healthy", http.StatusOK
		results := make(map[string]string, len(checks))

		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				results[name] = err.Error()
				status, code = "unhealthy", http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		response := map[string]any{
			"status":  status,
			"service": info.Name,
			"version": info.Version,
		}
		if len(results) > 0 {
			response["checks"] = results
		}
		writeJSON(w, code, response)
	}
}
