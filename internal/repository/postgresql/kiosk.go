package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/kiosk"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
)

type kioskRepositoryImpl struct {
	db *database.DB
}

func NewKioskRepository(db *database.DB) kiosk.KioskRepository {
	return &kioskRepositoryImpl{db: db}
}

func (r *kioskRepositoryImpl) CreateLocation(ctx context.Context, loc kiosk.Location) (kiosk.Location, error) {
	q := GetQuerier(ctx, r.db)

	if loc.ID == "" {
		loc.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO locations (id, name, address, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, insertQuery, loc.ID, loc.Name, loc.Address, loc.IsActive).Scan(&loc.CreatedAt)
	if err != nil {
		return kiosk.Location{}, err
	}

	return loc, nil
}

func (r *kioskRepositoryImpl) GetLocation(ctx context.Context, id string) (kiosk.Location, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, name, address, is_active, created_at
		FROM locations
		WHERE id = $1
	`

	var loc kiosk.Location
	err := q.QueryRow(ctx, selectQuery, id).Scan(
		&loc.ID,
		&loc.Name,
		&loc.Address,
		&loc.IsActive,
		&loc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kiosk.Location{}, kiosk.ErrLocationNotFound
		}
		return kiosk.Location{}, err
	}

	return loc, nil
}

func (r *kioskRepositoryImpl) ListLocations(ctx context.Context) ([]kiosk.Location, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, name, address, is_active, created_at
		FROM locations
		ORDER BY name
	`

	rows, err := q.Query(ctx, selectQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []kiosk.Location
	for rows.Next() {
		var loc kiosk.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.IsActive, &loc.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, loc)
	}

	return result, rows.Err()
}

func (r *kioskRepositoryImpl) CreateToken(ctx context.Context, token kiosk.QRToken) (kiosk.QRToken, error) {
	q := GetQuerier(ctx, r.db)

	if token.ID == "" {
		token.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO qr_tokens (id, token, location_id, expires_at, is_used)
		VALUES ($1, $2, $3, $4, false)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, insertQuery, token.ID, token.Token, token.LocationID, token.ExpiresAt).Scan(&token.CreatedAt)
	if err != nil {
		return kiosk.QRToken{}, err
	}

	return token, nil
}

func (r *kioskRepositoryImpl) ConsumeToken(ctx context.Context, token string) (kiosk.QRToken, error) {
	q := GetQuerier(ctx, r.db)

	// Single statement marks the token used only if it is still live, so
	// two concurrent check-ins cannot both redeem it.
	updateQuery := `
		UPDATE qr_tokens
		SET is_used = true
		WHERE token = $1 AND is_used = false AND expires_at > NOW()
		RETURNING id, token, location_id, expires_at, is_used, created_at
	`

	var consumed kiosk.QRToken
	err := q.QueryRow(ctx, updateQuery, token).Scan(
		&consumed.ID,
		&consumed.Token,
		&consumed.LocationID,
		&consumed.ExpiresAt,
		&consumed.IsUsed,
		&consumed.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kiosk.QRToken{}, kiosk.ErrTokenInvalid
		}
		return kiosk.QRToken{}, err
	}

	return consumed, nil
}
