package transport

import "time"

// CreateMaterialRequest is the request body for creating a material.
// Creating a material whose name already exists (case-insensitive) adds the
// incoming stock to the existing row and refreshes its prices instead of
// failing.
type CreateMaterialRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=200"`
	Category        string  `json:"category" validate:"omitempty,max=100"`
	PriceBlack      float64 `json:"priceBlack" validate:"gte=0"`
	PriceZintro     float64 `json:"priceZintro" validate:"gte=0"`
	Stock           int     `json:"stock" validate:"gte=0"`
	BarLengthMeters float64 `json:"barLengthMeters" validate:"omitempty,gt=0,lte=24"`
}

// UpdateMaterialRequest is the request body for updating a material.
type UpdateMaterialRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Category        *string  `json:"category" validate:"omitempty,max=100"`
	PriceBlack      *float64 `json:"priceBlack" validate:"omitempty,gte=0"`
	PriceZintro     *float64 `json:"priceZintro" validate:"omitempty,gte=0"`
	Stock           *int     `json:"stock" validate:"omitempty,gte=0"`
	BarLengthMeters *float64 `json:"barLengthMeters" validate:"omitempty,gt=0,lte=24"`
}

// MaterialResponse is the public shape of a material.
type MaterialResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	PriceBlack      float64   `json:"priceBlack"`
	PriceZintro     float64   `json:"priceZintro"`
	Stock           int       `json:"stock"`
	BarLengthMeters float64   `json:"barLengthMeters"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OffcutResponse is one entry of the offcut ledger.
type OffcutResponse struct {
	ID           string    `json:"id"`
	MaterialID   string    `json:"materialId"`
	MaterialName string    `json:"materialName"`
	LengthMeters float64   `json:"lengthMeters"`
	ProjectID    string    `json:"projectId"`
	CreatedAt    time.Time `json:"createdAt"`
}
