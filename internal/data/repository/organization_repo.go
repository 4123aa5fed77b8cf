package repository

import (
	"context"
	"fmt"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrganizationRepository interface {
	// Get returns the business profile. Single-tenant: at most one row.
	Get(ctx context.Context) (*entity.Organization, error)
	Create(ctx context.Context, org *entity.Organization) error
	Update(ctx context.Context, org *entity.Organization) error
}

type organizationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrganizationRepository(db database.PgxIface, log *zap.Logger) OrganizationRepository {
	return &organizationRepository{
		db:  db,
		log: log.With(zap.String("repository", "organization")),
	}
}

const organizationColumns = `id, name, owner_name, phone, email, address, logo_url,
	billing_notes, active_until, created_at, updated_at, deleted_at`

func (r *organizationRepository) Get(ctx context.Context) (*entity.Organization, error) {
	query := `
		SELECT ` + organizationColumns + `
		FROM organizations
		WHERE deleted_at IS NULL
		ORDER BY created_at
		LIMIT 1
	`

	var org entity.Organization
	err := r.db.QueryRow(ctx, query).Scan(
		&org.ID,
		&org.Name,
		&org.OwnerName,
		&org.Phone,
		&org.Email,
		&org.Address,
		&org.LogoURL,
		&org.BillingNotes,
		&org.ActiveUntil,
		&org.CreatedAt,
		&org.UpdatedAt,
		&org.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get organization", zap.Error(err))
		return nil, fmt.Errorf("get organization: %w", err)
	}

	return &org, nil
}

func (r *organizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, owner_name, phone, email, address, logo_url,
			billing_notes, active_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		org.ID,
		org.Name,
		org.OwnerName,
		org.Phone,
		org.Email,
		org.Address,
		org.LogoURL,
		org.BillingNotes,
		org.ActiveUntil,
		org.CreatedAt,
		org.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create organization",
			zap.Error(err),
			zap.String("name", org.Name),
		)
		return fmt.Errorf("create organization %s: %w", org.Name, err)
	}

	return nil
}

func (r *organizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, owner_name = $3, phone = $4, email = $5, address = $6,
		    logo_url = $7, billing_notes = $8, active_until = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		org.ID,
		org.Name,
		org.OwnerName,
		org.Phone,
		org.Email,
		org.Address,
		org.LogoURL,
		org.BillingNotes,
		org.ActiveUntil,
		org.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update organization",
			zap.Error(err),
			zap.String("organization_id", org.ID.String()),
		)
		return fmt.Errorf("update organization %s: %w", org.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("organization %s: %w", org.ID.String(), ErrNotFound)
	}

	return nil
}
