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
	"wardrobe-rental/pkg/database"
	"wardrobe-rental/pkg/storage"
	"wardrobe-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	UpdateProductStatus(ctx context.Context, productID string, status string) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
	UploadProductImage(ctx context.Context, productID, filename string, file io.Reader) (*response.ProductResponse, error)
}

type productService struct {
	repo  *repository.Repository
	files storage.FileStore
	log   *zap.Logger
}

func NewProductService(repo *repository.Repository, files storage.FileStore, log *zap.Logger) ProductService {
	return &productService{
		repo:  repo,
		files: files,
		log:   log.With(zap.String("service", "product")),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Product.FindBySKU(ctx, req.SKU)
	if err != nil {
		return nil, apperrors.Internal("check SKU", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("product with SKU %s already exists", req.SKU)
	}

	status := entity.ProductStatusAvailable
	if req.Status != nil {
		status = entity.ProductStatus(*req.Status)
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   req.Name,
		SKU:    req.SKU,
		Price:  req.Price,
		Status: status,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("product with SKU %s already exists", req.SKU)
		}
		s.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("sku", req.SKU),
		)
		return nil, apperrors.Internal("create product", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	products, err := s.repo.Product.List(ctx, req.Search, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, apperrors.Internal("list products", err)
	}

	total, err := s.repo.Product.Count(ctx, req.Search)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, apperrors.Internal("count products", err)
	}

	productResponses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		productResponses[i] = response.ProductToResponse(product)
	}

	return response.NewPaginatedResponse(productResponses, req.Page, req.PerPage, total), nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil && *req.SKU != product.SKU {
		existing, err := s.repo.Product.FindBySKU(ctx, *req.SKU)
		if err != nil {
			return nil, apperrors.Internal("check SKU", err)
		}
		if existing != nil {
			return nil, apperrors.Conflict("product with SKU %s already exists", *req.SKU)
		}
		product.SKU = *req.SKU
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Status != nil {
		product.Status = entity.ProductStatus(*req.Status)
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("product with SKU %s already exists", product.SKU)
		}
		s.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, apperrors.Internal("update product", err)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProductStatus(ctx context.Context, productID string, status string) (*response.ProductResponse, error) {
	switch entity.ProductStatus(status) {
	case entity.ProductStatusAvailable, entity.ProductStatusInLaundry, entity.ProductStatusArchived:
	default:
		return nil, apperrors.Validation("invalid product status %s", status)
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Status = entity.ProductStatus(status)
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.UpdateStatus(ctx, product.ID, product.Status); err != nil {
		s.log.Error("Failed to update product status",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, apperrors.Internal("update product status", err)
	}

	s.log.Info("Product status updated",
		zap.String("product_id", productID),
		zap.String("status", status),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	// Historical bookings keep their line items; the product only
	// disappears from the catalog and the availability check.
	if err := s.repo.Product.SoftDelete(ctx, product.ID); err != nil {
		s.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return apperrors.Internal("delete product", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", productID))
	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, productID, filename string, file io.Reader) (*response.ProductResponse, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	url, err := s.files.Save("products", filename, file)
	if err != nil {
		s.log.Error("Failed to store product image",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, apperrors.Internal("store product image", err)
	}

	product.ImageURL = &url
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, apperrors.Internal("update product", err)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.Validation("invalid product ID format %s", productID)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("find product", err)
	}
	if product == nil {
		return nil, apperrors.NotFound("product %s not found", productID)
	}

	return product, nil
}
