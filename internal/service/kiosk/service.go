package kiosk

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/restotrack/personnel-backend-go/internal/domain/kiosk"
)

// tokenTTL bounds how long a displayed QR code stays redeemable.
const tokenTTL = 5 * time.Minute

type KioskService interface {
	GenerateToken(ctx context.Context, req kiosk.GenerateTokenRequest) (kiosk.TokenResponse, error)
	CreateLocation(ctx context.Context, req kiosk.CreateLocationRequest) (kiosk.Location, error)
	ListLocations(ctx context.Context) ([]kiosk.Location, error)
}

type kioskServiceImpl struct {
	kioskRepo kiosk.KioskRepository
}

func NewKioskService(kioskRepo kiosk.KioskRepository) KioskService {
	return &kioskServiceImpl{kioskRepo: kioskRepo}
}

// GenerateToken mints a fresh single-use token for a kiosk screen. Tokens
// are 32 hex characters and expire after five minutes; consumption happens
// at check-in.
func (s *kioskServiceImpl) GenerateToken(ctx context.Context, req kiosk.GenerateTokenRequest) (kiosk.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return kiosk.TokenResponse{}, err
	}

	loc, err := s.kioskRepo.GetLocation(ctx, req.LocationID)
	if err != nil {
		return kiosk.TokenResponse{}, err
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return kiosk.TokenResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	token := kiosk.QRToken{
		Token:      hex.EncodeToString(raw),
		LocationID: loc.ID,
		ExpiresAt:  time.Now().UTC().Add(tokenTTL),
	}

	created, err := s.kioskRepo.CreateToken(ctx, token)
	if err != nil {
		return kiosk.TokenResponse{}, fmt.Errorf("failed to store token: %w", err)
	}

	return kiosk.TokenResponse{
		Token:      created.Token,
		LocationID: created.LocationID,
		ExpiresAt:  created.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (s *kioskServiceImpl) CreateLocation(ctx context.Context, req kiosk.CreateLocationRequest) (kiosk.Location, error) {
	if err := req.Validate(); err != nil {
		return kiosk.Location{}, err
	}

	created, err := s.kioskRepo.CreateLocation(ctx, kiosk.Location{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: true,
	})
	if err != nil {
		return kiosk.Location{}, fmt.Errorf("failed to create location: %w", err)
	}
	return created, nil
}

func (s *kioskServiceImpl) ListLocations(ctx context.Context) ([]kiosk.Location, error) {
	locations, err := s.kioskRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}
