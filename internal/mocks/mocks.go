package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"product-backend/internal/models"
	"product-backend/internal/services"
)

// MockProductRepository is a testify mock for repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDictionaryRepository is a testify mock for repository.DictionaryRepository.
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) Create(ctx context.Context, dictionary *models.ProductDictionary) error {
	args := m.Called(ctx, dictionary)
	return args.Error(0)
}

func (m *MockDictionaryRepository) SearchByName(ctx context.Context, nameFilter string, page, limit int) ([]models.ProductDictionary, int64, error) {
	args := m.Called(ctx, nameFilter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.ProductDictionary), args.Get(1).(int64), args.Error(2)
}

func (m *MockDictionaryRepository) FindByProductID(ctx context.Context, productID uint) ([]models.ProductDictionary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductDictionary), args.Error(1)
}

// MockLanguageRepository is a testify mock for repository.LanguageRepository.
type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Language), args.Error(1)
}

func (m *MockLanguageRepository) FindOrCreate(ctx context.Context, code, name string) (*models.Language, error) {
	args := m.Called(ctx, code, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Language), args.Error(1)
}

func (m *MockLanguageRepository) FindAll(ctx context.Context) ([]models.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Language), args.Error(1)
}

// MockTranslationService is a testify mock for services.TranslationService.
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) TranslateText(ctx context.Context, text, sourceLang, targetLang string, field services.TranslationField) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang, field)
	return args.String(0), args.Error(1)
}

// MockProductService is a testify mock for services.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, name, description string, languages []string) (*models.CreateProductResult, error) {
	args := m.Called(ctx, name, description, languages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreateProductResult), args.Error(1)
}

func (m *MockProductService) Search(ctx context.Context, nameFilter string, page int) (*models.SearchProductsResult, error) {
	args := m.Called(ctx, nameFilter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchProductsResult), args.Error(1)
}

func (m *MockProductService) Languages(ctx context.Context) ([]models.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Language), args.Error(1)
}
