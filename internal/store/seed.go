package store

import (
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
)

// SeedCampaigns returns the example campaigns a fresh console starts with.
// Ids are assigned by the store.
func SeedCampaigns() []models.Campaign {
	return []models.Campaign{
		{
			Name:          "Customer Satisfaction Survey",
			Type:          models.TypeCall,
			Status:        models.StatusRunning,
			Responses:     245,
			Engagement:    "78%",
			LastRun:       "2h ago",
			Message:       "Hello! We would love to hear your feedback about our service.",
			ScheduledDate: "2024-03-20T10:00",
		},
		{
			Name:          "Appointment Reminders",
			Type:          models.TypeSMS,
			Status:        models.StatusCompleted,
			Responses:     1893,
			Engagement:    "92%",
			LastRun:       "30m ago",
			Message:       "Reminder: Your appointment is scheduled for tomorrow at 2 PM.",
			ScheduledDate: "2024-03-19T14:00",
		},
		{
			Name:          "Monthly Newsletter",
			Type:          models.TypeEmail,
			Status:        models.StatusScheduled,
			Responses:     0,
			Engagement:    models.EngagementNone,
			LastRun:       "Starts in 2d",
			Message:       "Check out our latest updates and featured products!",
			ScheduledDate: "2024-03-22T09:00",
		},
	}
}
