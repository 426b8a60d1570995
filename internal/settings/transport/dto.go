package transport

// UpdateSettingsRequest is the request body for updating workshop settings.
// TaxRate is a percentage, e.g. 21 for the standard IVA rate.
type UpdateSettingsRequest struct {
	CompanyName *string  `json:"companyName" validate:"omitempty,min=1,max=200"`
	Address     *string  `json:"address" validate:"omitempty,max=500"`
	Phone       *string  `json:"phone" validate:"omitempty,max=50"`
	TaxRate     *float64 `json:"taxRate" validate:"omitempty,gte=0,lte=100"`
}

// ProfileResponse is the account profile with workshop settings.
type ProfileResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	CompanyName string  `json:"companyName"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	TaxRate     float64 `json:"taxRate"`
}
