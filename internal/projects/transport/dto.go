package transport

import "time"

// QuoteItemRequest is one material requirement of a quote or project.
type QuoteItemRequest struct {
	MaterialID   string  `json:"materialId" validate:"required,uuid4"`
	LinearMeters float64 `json:"linearMeters" validate:"required,gt=0"`
}

// QuoteRequest prices a set of requirements without persisting anything.
type QuoteRequest struct {
	IsZintro bool               `json:"isZintro"`
	Items    []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateProjectRequest creates a draft project with a cost snapshot.
// The client reference is optional; the name is stored as a snapshot so the
// quote survives later client edits.
type CreateProjectRequest struct {
	ClientID   *string            `json:"clientId" validate:"omitempty,uuid4"`
	ClientName string             `json:"clientName" validate:"required,min=1,max=200"`
	IsZintro   bool               `json:"isZintro"`
	Items      []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// QuoteLineResponse is one priced line of a quote preview.
type QuoteLineResponse struct {
	MaterialID   string  `json:"materialId"`
	MaterialName string  `json:"materialName"`
	LinearMeters float64 `json:"linearMeters"`
	BarsNeeded   int     `json:"barsNeeded"`
	UnitPrice    float64 `json:"unitPrice"`
	Cost         float64 `json:"cost"`
}

// QuoteResponse is the result of a quote preview.
type QuoteResponse struct {
	IsZintro  bool                `json:"isZintro"`
	TotalCost float64             `json:"totalCost"`
	Items     []QuoteLineResponse `json:"items"`
}

// ProjectItemResponse is one stored line of a project.
type ProjectItemResponse struct {
	ID           string  `json:"id"`
	MaterialID   string  `json:"materialId"`
	MaterialName string  `json:"materialName"`
	LinearMeters float64 `json:"linearMeters"`
	BarsNeeded   int     `json:"barsNeeded"`
	Cost         float64 `json:"cost"`
}

// ProjectResponse is the public shape of a project.
type ProjectResponse struct {
	ID         string                `json:"id"`
	ClientID   *string               `json:"clientId,omitempty"`
	ClientName string                `json:"clientName"`
	IsZintro   bool                  `json:"isZintro"`
	Status     string                `json:"status"`
	TotalCost  float64               `json:"totalCost"`
	CreatedAt  time.Time             `json:"createdAt"`
	Items      []ProjectItemResponse `json:"items"`
}
