package kiosk

import "github.com/restotrack/personnel-backend-go/internal/pkg/validator"

type GenerateTokenRequest struct {
	LocationID string `json:"location_id"`
}

func (r *GenerateTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{Field: "location_id", Message: "location_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	Token      string `json:"token"`
	LocationID string `json:"location_id"`
	ExpiresAt  string `json:"expires_at"`
}
