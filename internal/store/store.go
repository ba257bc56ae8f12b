// Package store holds the campaign store: the single owner of the campaign
// list and the active type filter.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/models"
)

// DefaultStorageKey is the record the campaign list is persisted under.
const DefaultStorageKey = "campaign-storage"

// persistTimeout bounds a single write to the record backend
const persistTimeout = 5 * time.Second

// RecordRepository persists opaque records under a key
type RecordRepository interface {
	GetRecord(ctx context.Context, key string) ([]byte, error)
	PutRecord(ctx context.Context, key string, data []byte) error
}

// ErrRecordNotFound is returned by a RecordRepository when nothing is stored under the key
var ErrRecordNotFound = errors.New("record not found")

// Store owns the ordered campaign list (newest first) and the selected type
// filter. Only the campaign list is persisted.
type Store struct {
	mu        sync.RWMutex
	campaigns []models.Campaign
	selected  models.TypeFilter

	records  RecordRepository
	key      string
	logger   log.Logger
	location *time.Location
	newID    func() string
	seed     func() []models.Campaign
}

// Option configures a Store
type Option func(*Store)

// WithKey overrides the record key the campaign list is persisted under
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithLogger sets the store logger
func WithLogger(logger log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithLocation sets the location used to render and parse calendar dates
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		s.location = loc
	}
}

// WithIDGenerator replaces the campaign id generator
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithSeed replaces the campaigns used when nothing has been persisted yet
func WithSeed(campaigns []models.Campaign) Option {
	return func(s *Store) {
		s.seed = func() []models.Campaign {
			return append([]models.Campaign(nil), campaigns...)
		}
	}
}

// New creates a store and loads the persisted campaign list. A missing or
// unreadable record falls back to the seed campaigns. A nil repository keeps
// the store in memory only.
func New(ctx context.Context, records RecordRepository, opts ...Option) *Store {
	s := &Store{
		selected: models.FilterAll,
		records:  records,
		key:      DefaultStorageKey,
		logger:   log.NewNopLogger(),
		location: time.UTC,
		newID:    uuid.NewString,
		seed:     SeedCampaigns,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.campaigns = s.load(ctx)
	return s
}

// Add builds a Scheduled campaign from the draft, puts it at the front of
// the list and persists the list. The draft is not validated here.
// Persistence failures are logged; the in-memory list is updated regardless.
func (s *Store) Add(ctx context.Context, draft models.CampaignDraft) models.Campaign {
	campaign := models.Campaign{
		ID:            s.newID(),
		Name:          draft.Name,
		Type:          draft.Type,
		Status:        models.StatusScheduled,
		Responses:     0,
		Engagement:    models.EngagementNone,
		LastRun:       s.startsLabel(draft.ScheduledDate),
		Message:       draft.Message,
		ScheduledDate: draft.ScheduledDate,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copy-on-write: slices handed out by earlier reads stay untouched
	next := make([]models.Campaign, 0, len(s.campaigns)+1)
	next = append(next, campaign)
	next = append(next, s.campaigns...)
	s.campaigns = next

	s.persist(ctx, next)
	return campaign
}

// SetSelectedType changes the active filter. It is never persisted.
func (s *Store) SetSelectedType(filter models.TypeFilter) {
	s.mu.Lock()
	s.selected = filter
	s.mu.Unlock()
}

// SelectedType returns the active filter
func (s *Store) SelectedType() models.TypeFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Campaigns returns a copy of the full campaign list, newest first
func (s *Store) Campaigns() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Campaign{}, s.campaigns...)
}

// Filtered returns the campaigns matching the active filter, derived from
// the full list on every call.
func (s *Store) Filtered() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FilterCampaigns(s.campaigns, s.selected)
}

// Snapshot returns the campaign list and the active filter as one consistent read
func (s *Store) Snapshot() ([]models.Campaign, models.TypeFilter) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Campaign{}, s.campaigns...), s.selected
}

// Get looks a campaign up by id
func (s *Store) Get(id string) (models.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.campaigns {
		if c.ID == id {
			return c, true
		}
	}
	return models.Campaign{}, false
}

// startsLabel renders the lastRun text of a new campaign, e.g. "Starts 3/22/2024"
func (s *Store) startsLabel(scheduledDate string) string {
	t, err := models.ParseScheduledDate(scheduledDate, s.location)
	if err != nil {
		return "Starts Invalid Date"
	}
	t = t.In(s.location)
	return fmt.Sprintf("Starts %d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func (s *Store) load(ctx context.Context) []models.Campaign {
	if s.records == nil {
		return s.seedCampaigns()
	}

	data, err := s.records.GetRecord(ctx, s.key)
	if errors.Is(err, ErrRecordNotFound) {
		level.Info(s.logger).Log("msg", "no persisted campaigns, using seed data", "key", s.key)
		return s.seedCampaigns()
	}
	if err != nil {
		level.Warn(s.logger).Log("msg", "failed to load persisted campaigns, using seed data", "key", s.key, "err", err)
		return s.seedCampaigns()
	}

	campaigns, err := decodeSnapshot(data)
	if err != nil {
		level.Warn(s.logger).Log("msg", "persisted campaigns unreadable, using seed data", "key", s.key, "err", err)
		return s.seedCampaigns()
	}

	// records written before campaigns had ids
	for i := range campaigns {
		if campaigns[i].ID == "" {
			campaigns[i].ID = s.newID()
		}
	}

	level.Info(s.logger).Log("msg", "loaded persisted campaigns", "key", s.key, "count", len(campaigns))
	return campaigns
}

func (s *Store) seedCampaigns() []models.Campaign {
	campaigns := s.seed()
	for i := range campaigns {
		if campaigns[i].ID == "" {
			campaigns[i].ID = s.newID()
		}
	}
	return campaigns
}

// persist writes the campaign list; callers hold the write lock so snapshots
// land in mutation order.
func (s *Store) persist(ctx context.Context, campaigns []models.Campaign) {
	if s.records == nil {
		return
	}

	data, err := encodeSnapshot(campaigns)
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to encode campaigns", "key", s.key, "err", err)
		return
	}

	// the write outlives the caller: a dropped request must not lose the campaign
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := s.records.PutRecord(ctx, s.key, data); err != nil {
		level.Warn(s.logger).Log("msg", "failed to persist campaigns", "key", s.key, "count", len(campaigns), "err", err)
	}
}
