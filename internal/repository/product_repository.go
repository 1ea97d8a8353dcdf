package repository

import (
	"context"
	"errors"
	"time"

	"product-backend/internal/database"
	"product-backend/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewProductRepository(db *database.Database) ProductRepository {
	return &productRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *productRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := r.db.WithContext(ctx).Preload("Dictionary").Preload("Dictionary.Language").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Delete removes a product; its dictionary rows go with it via cascade.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Product{}, id).Error
}
