package models

import (
	"math"
	"strconv"
)

// CampaignStats are the aggregate figures shown above the campaign list.
// They are computed on demand and never stored.
type CampaignStats struct {
	Total          int  `json:"total"`
	Running        int  `json:"running"`
	TotalResponses int  `json:"totalResponses"`
	AvgEngagement  *int `json:"avgEngagement"`
}

// ComputeStats aggregates the campaign list. AvgEngagement is the rounded
// mean over campaigns with engagement data, nil when there are none.
func ComputeStats(campaigns []Campaign) CampaignStats {
	stats := CampaignStats{Total: len(campaigns)}

	engagementSum, engagementCount := 0, 0
	for i := range campaigns {
		c := &campaigns[i]
		if c.Status == StatusRunning {
			stats.Running++
		}
		stats.TotalResponses += c.Responses

		if !c.HasEngagement() {
			continue
		}
		if pct, ok := ParseEngagement(c.Engagement); ok {
			engagementSum += pct
			engagementCount++
		}
	}

	if engagementCount > 0 {
		avg := int(math.Round(float64(engagementSum) / float64(engagementCount)))
		stats.AvgEngagement = &avg
	}
	return stats
}

// ParseEngagement reads the leading integer of an engagement string such as
// "78%" or "78.4%". ok is false when there is no leading number or it does
// not fit in an int.
func ParseEngagement(value string) (int, bool) {
	i := 0
	for i < len(value) && value[i] == ' ' {
		i++
	}
	start := i
	if i < len(value) && (value[i] == '-' || value[i] == '+') {
		i++
	}
	digits := i
	for i < len(value) && value[i] >= '0' && value[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}

	n, err := strconv.Atoi(value[start:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
