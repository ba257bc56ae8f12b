package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength    = 100
	MaxMessageLength = 500
)

// ScheduledDateLayout is the canonical form a validated scheduledDate is stored in.
const ScheduledDateLayout = "2006-01-02T15:04:05.000Z"

// scheduledDateLayouts are tried in order when parsing a scheduledDate.
// Values without a zone are read in the caller's location.
var scheduledDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ErrInvalidScheduledDate is returned when a scheduledDate is not an ISO-8601 date-time
var ErrInvalidScheduledDate = errors.New("invalid scheduled date")

// ParseScheduledDate parses an ISO-8601 date-time. Zone-less values are
// interpreted in loc.
func ParseScheduledDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range scheduledDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidScheduledDate, value)
}

// CreateCampaignRequest is the payload of the new-campaign form
type CreateCampaignRequest struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Message       string `json:"message"`
	ScheduledDate string `json:"scheduledDate"`
}

// Validate checks the request against the form rules. now is the submission
// time; scheduledDate must be strictly after it.
func (r *CreateCampaignRequest) Validate(now time.Time) error {
	errs := ValidationErrors{}

	switch name := strings.TrimSpace(r.Name); {
	case name == "":
		errs["name"] = "Campaign name is required"
	case utf8.RuneCountInString(r.Name) > MaxNameLength:
		errs["name"] = fmt.Sprintf("Campaign name must be less than %d characters", MaxNameLength)
	}

	if !CampaignType(r.Type).IsValid() {
		errs["type"] = "Campaign type must be one of " + joinValues(CampaignTypes)
	}

	switch message := strings.TrimSpace(r.Message); {
	case message == "":
		errs["message"] = "Message is required"
	case utf8.RuneCountInString(r.Message) > MaxMessageLength:
		errs["message"] = fmt.Sprintf("Message must be less than %d characters", MaxMessageLength)
	}

	if strings.TrimSpace(r.ScheduledDate) == "" {
		errs["scheduledDate"] = "Schedule date is required"
	} else if scheduled, err := ParseScheduledDate(r.ScheduledDate, now.Location()); err != nil {
		errs["scheduledDate"] = "Schedule date must be a valid date-time"
	} else if !scheduled.After(now) {
		errs["scheduledDate"] = "Schedule date must be in the future"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToDraft converts a validated request into a store draft, rewriting the
// scheduled date into ScheduledDateLayout (UTC).
func (r *CreateCampaignRequest) ToDraft(loc *time.Location) (CampaignDraft, error) {
	scheduled, err := ParseScheduledDate(r.ScheduledDate, loc)
	if err != nil {
		return CampaignDraft{}, err
	}
	return CampaignDraft{
		Name:          r.Name,
		Type:          CampaignType(r.Type),
		Message:       r.Message,
		ScheduledDate: scheduled.UTC().Format(ScheduledDateLayout),
	}, nil
}

// SelectTypeRequest is the payload of a filter change
type SelectTypeRequest struct {
	Type string `json:"type"`
}

// Filter returns the requested filter with surrounding whitespace removed
func (r *SelectTypeRequest) Filter() TypeFilter {
	return TypeFilter(strings.TrimSpace(r.Type))
}

// Validate checks that the filter is one of the accepted values
func (r *SelectTypeRequest) Validate() error {
	if !r.Filter().IsValid() {
		return ErrInvalidTypeFilter
	}
	return nil
}

// ValidationErrors maps a form field to its user-facing message
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + v[field]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
