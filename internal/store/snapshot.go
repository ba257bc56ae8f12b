package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
)

const snapshotVersion = 0

// snapshot is the persisted record layout:
//
//	{"state":{"campaigns":[...]},"version":0}
type snapshot struct {
	State   snapshotState `json:"state"`
	Version int           `json:"version"`
}

type snapshotState struct {
	Campaigns *[]models.Campaign `json:"campaigns"`
}

var errSnapshotNoCampaigns = errors.New("snapshot has no campaigns")

func encodeSnapshot(campaigns []models.Campaign) ([]byte, error) {
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return json.Marshal(snapshot{
		State:   snapshotState{Campaigns: &campaigns},
		Version: snapshotVersion,
	})
}

func decodeSnapshot(data []byte) ([]models.Campaign, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode campaign snapshot: %w", err)
	}
	if snap.State.Campaigns == nil {
		return nil, errSnapshotNoCampaigns
	}

	campaigns := *snap.State.Campaigns
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return campaigns, nil
}
