package repository

import (
	"context"
	"time"

	"product-backend/internal/database"
	"product-backend/internal/models"
)

type DictionaryRepository interface {
	Create(ctx context.Context, dictionary *models.ProductDictionary) error
	// SearchByName returns the page of dictionary rows whose name contains the
	// filter (case-insensitive) plus the pre-pagination total. An empty filter
	// matches every row.
	SearchByName(ctx context.Context, nameFilter string, page, limit int) ([]models.ProductDictionary, int64, error)
	// FindByProductID returns every translation of one product, all languages.
	FindByProductID(ctx context.Context, productID uint) ([]models.ProductDictionary, error)
}

type dictionaryRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewDictionaryRepository(db *database.Database) DictionaryRepository {
	return &dictionaryRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *dictionaryRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *dictionaryRepository) Create(ctx context.Context, dictionary *models.ProductDictionary) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(dictionary).Error
}

func (r *dictionaryRepository) SearchByName(ctx context.Context, nameFilter string, page, limit int) ([]models.ProductDictionary, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var dictionaries []models.ProductDictionary
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ProductDictionary{}).
		Where("name ILIKE ?", "%"+nameFilter+"%")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Product").Preload("Language").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&dictionaries).Error
	if err != nil {
		return nil, 0, err
	}

	return dictionaries, total, nil
}

func (r *dictionaryRepository) FindByProductID(ctx context.Context, productID uint) ([]models.ProductDictionary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var dictionaries []models.ProductDictionary
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Preload("Product").Preload("Language").
		Order("id ASC").
		Find(&dictionaries).Error
	return dictionaries, err
}
