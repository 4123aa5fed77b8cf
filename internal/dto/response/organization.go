package response

import (
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/pkg/utils"
)

type OrganizationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OwnerName    string    `json:"owner_name"`
	Phone        string    `json:"phone"`
	Email        *string   `json:"email,omitempty"`
	Address      *string   `json:"address,omitempty"`
	LogoURL      *string   `json:"logo_url,omitempty"`
	BillingNotes *string   `json:"billing_notes,omitempty"`
	ActiveUntil  *string   `json:"active_until,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func OrganizationToResponse(org *entity.Organization) OrganizationResponse {
	resp := OrganizationResponse{
		ID:           org.ID.String(),
		Name:         org.Name,
		OwnerName:    org.OwnerName,
		Phone:        org.Phone,
		Email:        org.Email,
		Address:      org.Address,
		LogoURL:      org.LogoURL,
		BillingNotes: org.BillingNotes,
		UpdatedAt:    org.UpdatedAt,
	}
	if org.ActiveUntil != nil {
		until := org.ActiveUntil.Format(utils.DateLayout)
		resp.ActiveUntil = &until
	}
	return resp
}
