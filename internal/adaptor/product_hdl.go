package adaptor

import (
	"encoding/json"
	"net/http"

	"wardrobe-rental/internal/dto/request"
	"wardrobe-rental/internal/usecase"
	"wardrobe-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// 10 MB cap on image uploads
const maxUploadSize = 10 << 20

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// CreateProduct handles POST /api/products (protected)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "success", product)
}

// GetProducts handles GET /api/products (protected)
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	req := paginatedRequest(r)

	products, err := h.service.GetProducts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProductByID handles GET /api/products/{id} (protected)
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	product, err := h.service.GetProductByID(r.Context(), productID)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// UpdateProduct handles PATCH /api/products/{id} (protected)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req request.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// UpdateProductStatus handles PUT /api/products/{id}/status (protected)
func (h *ProductHandler) UpdateProductStatus(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.UpdateProductStatus(r.Context(), productID, req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update product status")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// DeleteProduct handles DELETE /api/products/{id} (admin)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UploadProductImage handles POST /api/products/{id}/image (protected)
func (h *ProductHandler) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing image file", nil)
		return
	}
	defer file.Close()

	product, err := h.service.UploadProductImage(r.Context(), productID, header.Filename, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload product image")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

func paginatedRequest(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
		Search:  query.Get("search"),
	}
}
