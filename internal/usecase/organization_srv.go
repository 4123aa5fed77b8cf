package usecase

import (
	"context"
	"io"
	"time"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/internal/data/repository"
	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/dto/response"
	"wardrobe-rental/pkg/apperrors"
	"wardrobe-rental/pkg/storage"
	"wardrobe-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrganizationService interface {
	GetOrganization(ctx context.Context) (*response.OrganizationResponse, error)
	UpdateOrganization(ctx context.Context, req *request.UpdateOrganizationRequest) (*response.OrganizationResponse, error)
	UploadLogo(ctx context.Context, filename string, file io.Reader) (*response.OrganizationResponse, error)
}

type organizationService struct {
	repo  *repository.Repository
	files storage.FileStore
	loc   *time.Location
	log   *zap.Logger
}

func NewOrganizationService(repo *repository.Repository, files storage.FileStore, loc *time.Location, log *zap.Logger) OrganizationService {
	return &organizationService{
		repo:  repo,
		files: files,
		loc:   loc,
		log:   log.With(zap.String("service", "organization")),
	}
}

func (s *organizationService) GetOrganization(ctx context.Context) (*response.OrganizationResponse, error) {
	org, err := s.repo.Organization.Get(ctx)
	if err != nil {
		s.log.Error("Failed to load organization", zap.Error(err))
		return nil, apperrors.Internal("load organization", err)
	}
	if org == nil {
		return nil, apperrors.NotFound("organization profile is not set up yet")
	}

	resp := response.OrganizationToResponse(org)
	return &resp, nil
}

// UpdateOrganization upserts the single business profile row: the first
// update creates it, later ones patch the non-nil fields.
func (s *organizationService) UpdateOrganization(ctx context.Context, req *request.UpdateOrganizationRequest) (*response.OrganizationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update organization validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	org, err := s.repo.Organization.Get(ctx)
	if err != nil {
		return nil, apperrors.Internal("load organization", err)
	}

	now := time.Now()
	created := false
	if org == nil {
		org = &entity.Organization{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
			},
		}
		created = true
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.OwnerName != nil {
		org.OwnerName = *req.OwnerName
	}
	if req.Phone != nil {
		org.Phone = *req.Phone
	}
	if req.Email != nil {
		org.Email = req.Email
	}
	if req.Address != nil {
		org.Address = req.Address
	}
	if req.BillingNotes != nil {
		org.BillingNotes = req.BillingNotes
	}
	if req.ActiveUntil != nil {
		until, err := utils.ParseDate(*req.ActiveUntil, s.loc)
		if err != nil {
			return nil, apperrors.Validation("invalid active until date %s", *req.ActiveUntil)
		}
		org.ActiveUntil = &until
	}
	org.UpdatedAt = now

	if created {
		err = s.repo.Organization.Create(ctx, org)
	} else {
		err = s.repo.Organization.Update(ctx, org)
	}
	if err != nil {
		s.log.Error("Failed to save organization", zap.Error(err))
		return nil, apperrors.Internal("save organization", err)
	}

	s.log.Info("Organization profile saved", zap.Bool("created", created))

	resp := response.OrganizationToResponse(org)
	return &resp, nil
}

func (s *organizationService) UploadLogo(ctx context.Context, filename string, file io.Reader) (*response.OrganizationResponse, error) {
	org, err := s.repo.Organization.Get(ctx)
	if err != nil {
		return nil, apperrors.Internal("load organization", err)
	}
	if org == nil {
		return nil, apperrors.NotFound("organization profile is not set up yet")
	}

	url, err := s.files.Save("organization", filename, file)
	if err != nil {
		s.log.Error("Failed to store logo", zap.Error(err))
		return nil, apperrors.Internal("store logo", err)
	}

	org.LogoURL = &url
	org.UpdatedAt = time.Now()

	if err := s.repo.Organization.Update(ctx, org); err != nil {
		return nil, apperrors.Internal("save organization", err)
	}

	resp := response.OrganizationToResponse(org)
	return &resp, nil
}
