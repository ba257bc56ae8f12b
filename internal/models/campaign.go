package models

import (
	"errors"
	"strings"
)

// Campaign is one scheduled communication blast (a call, SMS or email run)
// as shown in the console.
type Campaign struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          CampaignType   `json:"type"`
	Status        CampaignStatus `json:"status"`
	Responses     int            `json:"responses"`
	Engagement    string         `json:"engagement"`
	LastRun       string         `json:"lastRun"`
	Message       string         `json:"message,omitempty"`
	ScheduledDate string         `json:"scheduledDate"`
}

// CampaignType is the channel a campaign is sent through
type CampaignType string

// enum values for CampaignType
const (
	TypeCall  CampaignType = "call"
	TypeSMS   CampaignType = "sms"
	TypeEmail CampaignType = "email"
)

// CampaignTypes lists the supported types in display order.
var CampaignTypes = []CampaignType{TypeCall, TypeSMS, TypeEmail}

// IsValid returns true for one of the supported campaign types
func (t CampaignType) IsValid() bool {
	for _, ct := range CampaignTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// CampaignStatus represents the lifecycle status of a campaign
type CampaignStatus string

// enum values for CampaignStatus
const (
	StatusScheduled CampaignStatus = "Scheduled"
	StatusRunning   CampaignStatus = "Running"
	StatusCompleted CampaignStatus = "Completed"
)

// EngagementNone marks a campaign without engagement data yet.
const EngagementNone = "-"

// HasEngagement returns true if the campaign carries an engagement figure
func (c *Campaign) HasEngagement() bool {
	return c.Engagement != "" && c.Engagement != EngagementNone
}

// CampaignDraft holds the caller-supplied fields of a new campaign. The rest
// of the campaign is filled in by the store.
type CampaignDraft struct {
	Name          string       `json:"name"`
	Type          CampaignType `json:"type"`
	Message       string       `json:"message,omitempty"`
	ScheduledDate string       `json:"scheduledDate"`
}

// TypeFilter narrows the campaign list to one type, or to none with FilterAll.
type TypeFilter string

// FilterAll disables narrowing.
const FilterAll TypeFilter = "all"

// TypeFilters lists every accepted filter value.
var TypeFilters = []TypeFilter{FilterAll, TypeFilter(TypeCall), TypeFilter(TypeSMS), TypeFilter(TypeEmail)}

// IsValid returns true for "all" or one of the campaign types
func (f TypeFilter) IsValid() bool {
	return f == FilterAll || CampaignType(f).IsValid()
}

// Matches reports whether the campaign belongs to the filtered view
func (f TypeFilter) Matches(c Campaign) bool {
	return f == FilterAll || CampaignType(f) == c.Type
}

// FilterCampaigns returns the campaigns matching the filter, keeping their
// relative order. The input is never modified.
func FilterCampaigns(campaigns []Campaign, filter TypeFilter) []Campaign {
	filtered := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if filter.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrInvalidTypeFilter = errors.New("type must be one of " + joinValues(TypeFilters))
)

// joinValues renders enum values as a comma separated list for messages
func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
