package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func validRequest() CreateCampaignRequest {
	return CreateCampaignRequest{
		Name:          "Promo Blast",
		Type:          "email",
		Message:       "Spring sale starts now!",
		ScheduledDate: "2026-03-22T09:00:00.000Z",
	}
}

func TestCreateCampaignRequest_Validate_Valid(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate(submittedAt))

	req.Name = strings.Repeat("n", MaxNameLength)
	req.Message = strings.Repeat("m", MaxMessageLength)
	assert.NoError(t, req.Validate(submittedAt), "limits are inclusive")
}

func TestCreateCampaignRequest_Validate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateCampaignRequest)
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *CreateCampaignRequest) { r.Name = "" },
			field:   "name",
			message: "Campaign name is required",
		},
		{
			name:    "blank name",
			mutate:  func(r *CreateCampaignRequest) { r.Name = "   " },
			field:   "name",
			message: "Campaign name is required",
		},
		{
			name:    "long name",
			mutate:  func(r *CreateCampaignRequest) { r.Name = strings.Repeat("é", MaxNameLength+1) },
			field:   "name",
			message: "Campaign name must be less than 100 characters",
		},
		{
			name:    "unknown type",
			mutate:  func(r *CreateCampaignRequest) { r.Type = "fax" },
			field:   "type",
			message: "Campaign type must be one of call, sms, email",
		},
		{
			name:    "missing message",
			mutate:  func(r *CreateCampaignRequest) { r.Message = "" },
			field:   "message",
			message: "Message is required",
		},
		{
			name:    "long message",
			mutate:  func(r *CreateCampaignRequest) { r.Message = strings.Repeat("m", MaxMessageLength+1) },
			field:   "message",
			message: "Message must be less than 500 characters",
		},
		{
			name:    "missing date",
			mutate:  func(r *CreateCampaignRequest) { r.ScheduledDate = "" },
			field:   "scheduledDate",
			message: "Schedule date is required",
		},
		{
			name:    "garbage date",
			mutate:  func(r *CreateCampaignRequest) { r.ScheduledDate = "next tuesday" },
			field:   "scheduledDate",
			message: "Schedule date must be a valid date-time",
		},
		{
			name:    "past date",
			mutate:  func(r *CreateCampaignRequest) { r.ScheduledDate = "2024-03-22T09:00" },
			field:   "scheduledDate",
			message: "Schedule date must be in the future",
		},
		{
			name:    "date equal to now",
			mutate:  func(r *CreateCampaignRequest) { r.ScheduledDate = submittedAt.Format(time.RFC3339) },
			field:   "scheduledDate",
			message: "Schedule date must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate(submittedAt)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Len(t, verrs, 1)
			assert.Equal(t, tt.message, verrs[tt.field])
		})
	}
}

func TestCreateCampaignRequest_Validate_ReportsEveryField(t *testing.T) {
	req := CreateCampaignRequest{}

	err := req.Validate(submittedAt)
	require.Error(t, err)

	verrs := err.(ValidationErrors)
	assert.Len(t, verrs, 4)
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "type")
	assert.Contains(t, verrs, "message")
	assert.Contains(t, verrs, "scheduledDate")
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed: message: "))
}

func TestCreateCampaignRequest_ToDraft(t *testing.T) {
	req := validRequest()
	req.ScheduledDate = "2026-03-22T11:30:00+02:00"

	draft, err := req.ToDraft(time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "Promo Blast", draft.Name)
	assert.Equal(t, TypeEmail, draft.Type)
	assert.Equal(t, "Spring sale starts now!", draft.Message)
	assert.Equal(t, "2026-03-22T09:30:00.000Z", draft.ScheduledDate)
}

func TestParseScheduledDate(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)

	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "2024-03-22T09:00", want: time.Date(2024, 3, 22, 9, 0, 0, 0, loc)},
		{input: "2024-03-22T09:00:30", want: time.Date(2024, 3, 22, 9, 0, 30, 0, loc)},
		{input: "2024-03-22T09:00:00.000Z", want: time.Date(2024, 3, 22, 9, 0, 0, 0, time.UTC)},
		{input: " 2024-03-22T09:00:00+01:00 ", want: time.Date(2024, 3, 22, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScheduledDate(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}

	_, err := ParseScheduledDate("22/03/2024", loc)
	assert.ErrorIs(t, err, ErrInvalidScheduledDate)
}

func TestSelectTypeRequest_Validate(t *testing.T) {
	for _, value := range []string{"all", "call", "sms", "email"} {
		req := SelectTypeRequest{Type: value}
		assert.NoError(t, req.Validate(), value)
	}

	req := SelectTypeRequest{Type: "push"}
	assert.ErrorIs(t, req.Validate(), ErrInvalidTypeFilter)
}

func TestSelectTypeRequest_FilterTrims(t *testing.T) {
	req := SelectTypeRequest{Type: " sms "}
	assert.Equal(t, TypeFilter(TypeSMS), req.Filter())
	assert.NoError(t, req.Validate())
}
