package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"linkforge/internal/analytics"
	"linkforge/internal/entities"
	"linkforge/internal/models"
	"linkforge/internal/shortcode"
	"linkforge/internal/store"
	"linkforge/internal/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generated codes are re-derived on collision, advancing the mixed-in
// timestamp so a retry within the same millisecond still yields a new code.
const maxGenerateAttempts = 10

// LinkService defines the link record lifecycle operations
type LinkService interface {
	Shorten(ctx context.Context, req *models.ShortenRequest) (*models.LinkResponse, error)
	Links() []*models.LinkResponse
	Delete(id string) error
	SimulateClick(id string) (*models.LinkResponse, error)
	SimulateScan(id string) (*models.LinkResponse, error)
	Analytics() analytics.Summary
	DarkMode() bool
	SetDarkMode(enabled bool)
}

type linkService struct {
	store      *store.Store
	logger     *zap.Logger
	baseDomain string
	latency    time.Duration // simulated network latency before a shorten completes
}

// NewLinkService creates a new link service
func NewLinkService(st *store.Store, logger *zap.Logger, baseDomain string, latency time.Duration) LinkService {
	return &linkService{
		store:      st,
		logger:     logger,
		baseDomain: baseDomain,
		latency:    latency,
	}
}

// Shorten validates the input, derives a short code and appends a new record.
// Validation failures and alias conflicts are surfaced before any mutation.
func (s *linkService) Shorten(ctx context.Context, req *models.ShortenRequest) (*models.LinkResponse, error) {
	result := validator.Validate(req.URL)
	if !result.IsValid {
		return nil, validationErr(result.Error)
	}
	warning := ""
	if !result.IsSafe {
		warning = result.Error
	}

	if req.CustomAlias != "" {
		if err := shortcode.ValidateAlias(req.CustomAlias); err != nil {
			return nil, validationErr(err.Error())
		}
		// Early check for prompt feedback; the authoritative check happens
		// inside AddLink under the store's write lock.
		if !shortcode.IsAvailable(req.CustomAlias, s.store.Links()) {
			return nil, ErrAliasTaken
		}
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &entities.LinkRecord{
		ID:          uuid.NewString(),
		OriginalURL: validator.Sanitize(result.NormalizedURL),
		CustomAlias: req.CustomAlias,
		CreatedAt:   now,
		ExpiresAt:   entities.CalculateExpiration(now, req.ExpirationDays),
		IsActive:    true,
		Tags:        cleanTags(req.Tags),
		Description: req.Description,
	}

	if err := s.insertRecord(record, result.NormalizedURL, now); err != nil {
		return nil, err
	}
	s.logActivity(entities.ActivityCreated, fmt.Sprintf("Shortened %s to %s", record.OriginalURL, record.ShortURL(s.baseDomain)), record.ID)

	s.logger.Info("link created",
		zap.String("id", record.ID),
		zap.String("short_code", record.ShortCode),
	)

	resp := s.toResponse(record)
	resp.Warning = warning
	return resp, nil
}

// insertRecord claims a short code and appends the record in one step.
// AddLink performs the availability check and the append under the store's
// write lock, so two concurrent requests can never both claim the same code:
// the loser either gets ErrAliasTaken (custom alias) or re-derives a fresh
// generated code and tries again.
func (s *linkService) insertRecord(record *entities.LinkRecord, normalizedURL string, now time.Time) error {
	if record.CustomAlias != "" {
		record.ShortCode = record.CustomAlias
		if err := s.store.AddLink(record); err != nil {
			return ErrAliasTaken
		}
		return nil
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		record.ShortCode = shortcode.Generate(normalizedURL, now)
		err := s.store.AddLink(record)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrCodeConflict) {
			return err
		}
		now = now.Add(time.Millisecond)
	}
	return fmt.Errorf("failed to generate unique short code after %d attempts", maxGenerateAttempts)
}

// simulateLatency stands in for the network round-trip a server-backed
// shortener would incur.
func (s *linkService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Links returns every record, most recent first.
func (s *linkService) Links() []*models.LinkResponse {
	records := s.store.Links()
	responses := make([]*models.LinkResponse, len(records))
	for i, r := range records {
		responses[i] = s.toResponse(r)
	}
	return responses
}

// Delete removes a record permanently.
func (s *linkService) Delete(id string) error {
	if !s.store.DeleteLink(id) {
		return ErrLinkNotFound
	}
	s.logger.Info("link deleted", zap.String("id", id))
	return nil
}

// SimulateClick increments the click counter and logs the activity. Expired
// records still accept clicks; expiration is advisory.
func (s *linkService) SimulateClick(id string) (*models.LinkResponse, error) {
	record, ok := s.store.IncrementClick(id)
	if !ok {
		return nil, ErrLinkNotFound
	}
	s.logActivity(entities.ActivityClicked, fmt.Sprintf("Clicked %s", record.ShortURL(s.baseDomain)), record.ID)
	return s.toResponse(record), nil
}

// SimulateScan increments the QR scan counter and logs the activity.
func (s *linkService) SimulateScan(id string) (*models.LinkResponse, error) {
	record, ok := s.store.IncrementScan(id)
	if !ok {
		return nil, ErrLinkNotFound
	}
	s.logActivity(entities.ActivityScanned, fmt.Sprintf("Scanned QR code for %s", record.ShortURL(s.baseDomain)), record.ID)
	return s.toResponse(record), nil
}

// Analytics recomputes the summary view from the current records and
// activity log.
func (s *linkService) Analytics() analytics.Summary {
	return analytics.Summarize(s.store.Links(), s.store.Activities())
}

// DarkMode returns the persisted display preference.
func (s *linkService) DarkMode() bool {
	return s.store.DarkMode()
}

// SetDarkMode stores the display preference.
func (s *linkService) SetDarkMode(enabled bool) {
	s.store.SetDarkMode(enabled)
}

func (s *linkService) logActivity(t entities.ActivityType, details, urlID string) {
	s.store.LogActivity(&entities.ActivityEntry{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		Details:   details,
		URLID:     urlID,
	})
}

func (s *linkService) toResponse(r *entities.LinkRecord) *models.LinkResponse {
	return &models.LinkResponse{
		ID:          r.ID,
		OriginalURL: r.OriginalURL,
		ShortCode:   r.ShortCode,
		CustomAlias: r.CustomAlias,
		ShortURL:    r.ShortURL(s.baseDomain),
		CreatedAt:   r.CreatedAt,
		ExpiresAt:   r.ExpiresAt,
		ClickCount:  r.ClickCount,
		QRCodeScans: r.QRCodeScans,
		IsActive:    r.IsActive,
		Expired:     r.Expired(time.Now()),
		Tags:        r.Tags,
		Description: r.Description,
	}
}

// cleanTags drops empty and whitespace-only tags, preserving order.
func cleanTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
