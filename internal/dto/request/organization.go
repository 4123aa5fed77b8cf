package request

type UpdateOrganizationRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	OwnerName    *string `json:"owner_name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Address      *string `json:"address,omitempty"`
	BillingNotes *string `json:"billing_notes,omitempty"`
	ActiveUntil  *string `json:"active_until,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
