package entity

import "time"

// Organization is the business profile printed on receipts.
type Organization struct {
	Base
	Name         string     `db:"name"`
	OwnerName    string     `db:"owner_name"`
	Phone        string     `db:"phone"`
	Email        *string    `db:"email"`
	Address      *string    `db:"address"`
	LogoURL      *string    `db:"logo_url"`
	BillingNotes *string    `db:"billing_notes"`
	ActiveUntil  *time.Time `db:"active_until"`
}
