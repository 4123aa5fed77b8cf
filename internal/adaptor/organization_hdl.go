package adaptor

import (
	"encoding/json"
	"net/http"

	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/usecase"
	"wardrobe-rental/pkg/utils"

	"go.uber.org/zap"
)

type OrganizationHandler struct {
	service usecase.OrganizationService
	log     *zap.Logger
}

func NewOrganizationHandler(service usecase.OrganizationService, log *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
		log:     log.With(zap.String("handler", "organization")),
	}
}

// GetOrganization handles GET /api/organization (protected)
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	org, err := h.service.GetOrganization(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get organization")
		return
	}

	utils.ResponseSuccess(w, "success", org)
}

// UpdateOrganization handles PUT /api/organization (admin)
func (h *OrganizationHandler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	org, err := h.service.UpdateOrganization(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update organization")
		return
	}

	utils.ResponseSuccess(w, "success", org)
}

// UploadLogo handles POST /api/organization/logo (admin)
func (h *OrganizationHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing logo file", nil)
		return
	}
	defer file.Close()

	org, err := h.service.UploadLogo(r.Context(), header.Filename, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload logo")
		return
	}

	utils.ResponseSuccess(w, "success", org)
}
