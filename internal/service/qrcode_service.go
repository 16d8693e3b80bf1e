package service

import (
	"fmt"
	"sync"
	"time"

	"linkforge/internal/entities"
	"linkforge/internal/models"
	"linkforge/internal/qr"
	"linkforge/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QRCodeService defines the QR code record operations. QR records live only
// for the session; unlike link records they are not mirrored to the blob
// store.
type QRCodeService interface {
	Generate(req *models.GenerateQRRequest) (*models.QRCodeResponse, error)
	List() []*models.QRCodeResponse
	Scan(id string) (*models.QRCodeResponse, error)
	Image(id string) ([]byte, error)
}

type qrCodeService struct {
	store  *store.Store // activity log only
	logger *zap.Logger

	mu      sync.RWMutex
	records []*entities.QRCodeRecord // most recent first
}

// NewQRCodeService creates a new QR code service
func NewQRCodeService(st *store.Store, logger *zap.Logger) QRCodeService {
	return &qrCodeService{store: st, logger: logger}
}

// Generate renders the text with the requested customization and keeps the
// result as a new record. The style snapshot is copied at creation time and
// immutable afterwards.
func (s *qrCodeService) Generate(req *models.GenerateQRRequest) (*models.QRCodeResponse, error) {
	style := entities.DefaultQRStyle()
	if req.Size > 0 {
		style.Size = req.Size
	}
	if req.ErrorCorrectionLevel != "" {
		style.ErrorCorrectionLevel = req.ErrorCorrectionLevel
	}
	if req.ForegroundColor != "" {
		style.ForegroundColor = req.ForegroundColor
	}
	if req.BackgroundColor != "" {
		style.BackgroundColor = req.BackgroundColor
	}
	if req.Margin != nil {
		style.Margin = *req.Margin
	}

	dataURL, err := qr.DataURL(req.Text, style)
	if err != nil {
		s.logger.Error("QR encoding failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate QR code")
	}

	record := &entities.QRCodeRecord{
		ID:        uuid.NewString(),
		Text:      req.Text,
		ImageData: dataURL,
		CreatedAt: time.Now(),
		Style:     style,
	}

	s.mu.Lock()
	s.records = append([]*entities.QRCodeRecord{record}, s.records...)
	s.mu.Unlock()

	s.logger.Info("QR code generated", zap.String("id", record.ID), zap.Int("size", style.Size))
	return toQRResponse(record), nil
}

// List returns every QR record, most recent first.
func (s *qrCodeService) List() []*models.QRCodeResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	responses := make([]*models.QRCodeResponse, len(s.records))
	for i, r := range s.records {
		responses[i] = toQRResponse(r)
	}
	return responses
}

// Scan increments the scan counter and logs the activity.
func (s *qrCodeService) Scan(id string) (*models.QRCodeResponse, error) {
	s.mu.Lock()
	record := s.find(id)
	if record == nil {
		s.mu.Unlock()
		return nil, ErrQRCodeNotFound
	}
	record.ScanCount++
	resp := toQRResponse(record)
	s.mu.Unlock()

	s.store.LogActivity(&entities.ActivityEntry{
		ID:        uuid.NewString(),
		Type:      entities.ActivityScanned,
		Timestamp: time.Now(),
		Details:   fmt.Sprintf("Scanned QR code for %q", record.Text),
	})
	return resp, nil
}

// Image re-encodes the record's PNG for download.
func (s *qrCodeService) Image(id string) ([]byte, error) {
	s.mu.RLock()
	record := s.find(id)
	s.mu.RUnlock()
	if record == nil {
		return nil, ErrQRCodeNotFound
	}

	png, err := qr.Encode(record.Text, record.Style)
	if err != nil {
		s.logger.Error("QR encoding failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate QR code")
	}
	return png, nil
}

// find requires the caller to hold the lock.
func (s *qrCodeService) find(id string) *entities.QRCodeRecord {
	for _, r := range s.records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func toQRResponse(r *entities.QRCodeRecord) *models.QRCodeResponse {
	return &models.QRCodeResponse{
		ID:        r.ID,
		Text:      r.Text,
		ImageData: r.ImageData,
		CreatedAt: r.CreatedAt,
		ScanCount: r.ScanCount,
		Style:     r.Style,
	}
}
