package kiosk

import "context"

type KioskRepository interface {
	CreateLocation(ctx context.Context, loc Location) (Location, error)
	GetLocation(ctx context.Context, id string) (Location, error)
	ListLocations(ctx context.Context) ([]Location, error)

	CreateToken(ctx context.Context, token QRToken) (QRToken, error)

	// ConsumeToken atomically marks an unused, unexpired token as used and
	// returns it. A second consumption of the same token fails.
	ConsumeToken(ctx context.Context, token string) (QRToken, error)
}
