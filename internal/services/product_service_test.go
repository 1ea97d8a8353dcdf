package services_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"product-backend/internal/mocks"
	"product-backend/internal/models"
	"product-backend/internal/services"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newService(productRepo *mocks.MockProductRepository, dictRepo *mocks.MockDictionaryRepository, langRepo *mocks.MockLanguageRepository, translator *mocks.MockTranslationService) services.ProductService {
	return services.NewProductService(productRepo, dictRepo, langRepo, translator, testLogger())
}

func stubProductInsert(productRepo *mocks.MockProductRepository, id uint) {
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*models.Product)
			product.ID = id
			product.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}).
		Return(nil)
}

func TestProductService_Create(t *testing.T) {
	thai := &models.Language{Code: "th", Name: "Thai"}
	english := &models.Language{Code: "en", Name: "English"}
	chinese := &models.Language{Code: "ch", Name: "Chinese"}

	t.Run("creates product with translations for every target language", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		dictRepo := new(mocks.MockDictionaryRepository)
		langRepo := new(mocks.MockLanguageRepository)
		translator := new(mocks.MockTranslationService)

		stubProductInsert(productRepo, 1)
		langRepo.On("FindByCode", mock.Anything, "th").Return(thai, nil)
		langRepo.On("FindByCode", mock.Anything, "en").Return(english, nil)
		langRepo.On("FindByCode", mock.Anything, "ch").Return(chinese, nil)
		dictRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ProductDictionary")).Return(nil)

		translator.On("TranslateText", mock.Anything, "หูฟังไร้สาย", "th", "en", services.FieldName).
			Return("Wireless headphones\n", nil)
		translator.On("TranslateText", mock.Anything, "หูฟังคุณภาพสูง", "th", "en", services.FieldDescription).
			Return("High quality headphones", nil)
		translator.On("TranslateText", mock.Anything, "หูฟังไร้สาย", "th", "ch", services.FieldName).
			Return("无线耳机", nil)
		translator.On("TranslateText", mock.Anything, "หูฟังคุณภาพสูง", "th", "ch", services.FieldDescription).
			Return("高品质耳机", nil)

		svc := newService(productRepo, dictRepo, langRepo, translator)
		result, err := svc.Create(context.Background(), "หูฟังไร้สาย", "หูฟังคุณภาพสูง", []string{"en", "ch"})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(1), result.ID)
		require.Len(t, result.Dictionaries, 3)

		// Default-language entry is always first and carries the input verbatim.
		assert.Equal(t, models.DictionaryEntry{
			LanguageCode: "th",
			Name:         "หูฟังไร้สาย",
			Description:  "หูฟังคุณภาพสูง",
		}, result.Dictionaries[0])

		byCode := map[string]models.DictionaryEntry{}
		for _, entry := range result.Dictionaries {
			byCode[entry.LanguageCode] = entry
		}
		require.Contains(t, byCode, "en")
		require.Contains(t, byCode, "ch")

		// Translated names have newlines stripped; descriptions are untouched.
		assert.Equal(t, "Wireless headphones", byCode["en"].Name)
		assert.Equal(t, "High quality headphones", byCode["en"].Description)
		assert.Equal(t, "无线耳机", byCode["ch"].Name)

		dictRepo.AssertNumberOfCalls(t, "Create", 3)
		translator.AssertNumberOfCalls(t, "TranslateText", 4)
	})

	t.Run("skips translation when the default code is requested as a target", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		dictRepo := new(mocks.MockDictionaryRepository)
		langRepo := new(mocks.MockLanguageRepository)
		translator := new(mocks.MockTranslationService)

		stubProductInsert(productRepo, 2)
		langRepo.On("FindByCode", mock.Anything, "th").Return(thai, nil)
		langRepo.On("FindByCode", mock.Anything, "en").Return(english, nil)
		dictRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ProductDictionary")).Return(nil)
		translator.On("TranslateText", mock.Anything, mock.Anything, "th", "en", mock.Anything).
			Return("translated", nil)

		svc := newService(productRepo, dictRepo, langRepo, translator)
		result, err := svc.Create(context.Background(), "สินค้า", "รายละเอียด", []string{"th", "en"})

		require.NoError(t, err)
		require.Len(t, result.Dictionaries, 2)
		translator.AssertNumberOfCalls(t, "TranslateText", 2)
	})

	t.Run("fails with a business error when a target language is unknown", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		dictRepo := new(mocks.MockDictionaryRepository)
		langRepo := new(mocks.MockLanguageRepository)
		translator := new(mocks.MockTranslationService)

		stubProductInsert(productRepo, 3)
		langRepo.On("FindByCode", mock.Anything, "th").Return(thai, nil)
		langRepo.On("FindByCode", mock.Anything, "fr").Return(nil, nil)
		dictRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ProductDictionary")).Return(nil)

		svc := newService(productRepo, dictRepo, langRepo, translator)
		result, err := svc.Create(context.Background(), "สินค้า", "รายละเอียด", []string{"fr"})

		require.Error(t, err)
		assert.Nil(t, result)

		var bizErr *services.BusinessError
		require.ErrorAs(t, err, &bizErr)
		assert.Equal(t, "Language fr not found", bizErr.Message)
		translator.AssertNotCalled(t, "TranslateText")
	})

	t.Run("fails with a business error when the default language is missing", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		dictRepo := new(mocks.MockDictionaryRepository)
		langRepo := new(mocks.MockLanguageRepository)
		translator := new(mocks.MockTranslationService)

		stubProductInsert(productRepo, 4)
		langRepo.On("FindByCode", mock.Anything, "th").Return(nil, nil)

		svc := newService(productRepo, dictRepo, langRepo, translator)
		_, err := svc.Create(context.Background(), "สินค้า", "รายละเอียด", []string{"en"})

		var bizErr *services.BusinessError
		require.ErrorAs(t, err, &bizErr)
		assert.Equal(t, "Default language not found", bizErr.Message)
	})

	t.Run("wraps a product insert failure into the generic create error", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		dictRepo := new(mocks.MockDictionaryRepository)
		langRepo := new(mocks.MockLanguageRepository)
		translator := new(mocks.MockTranslationService)

		productRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(errors.New("connection refused"))

		svc := newService(productRepo, dictRepo, langRepo, translator)
		_, err := svc.Create(context.Background(), "สินค้า", "รายละเอียด", []string{"en"})

		assert.ErrorIs(t, err, services.ErrCreateProduct)
	})

	t.Run("wraps a translation failure but keeps already-inserted rows", func(t *testing.T) {
		productRepo := new(mocks.MockProductRepository)
		dictRepo := new(mocks.MockDictionaryRepository)
		langRepo := new(mocks.MockLanguageRepository)
		translator := new(mocks.MockTranslationService)

		stubProductInsert(productRepo, 5)
		langRepo.On("FindByCode", mock.Anything, "th").Return(thai, nil)
		langRepo.On("FindByCode", mock.Anything, "en").Return(english, nil)
		dictRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ProductDictionary")).Return(nil)
		translator.On("TranslateText", mock.Anything, mock.Anything, "th", "en", mock.Anything).
			Return("", errors.New("failed to translate text"))

		svc := newService(productRepo, dictRepo, langRepo, translator)
		_, err := svc.Create(context.Background(), "สินค้า", "รายละเอียด", []string{"en"})

		assert.ErrorIs(t, err, services.ErrCreateProduct)
		// No rollback: the product and the default dictionary row were written.
		productRepo.AssertNumberOfCalls(t, "Create", 1)
		dictRepo.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestProductService_Search(t *testing.T) {
	makeDict := func(id, productID uint, name, code string) models.ProductDictionary {
		return models.ProductDictionary{
			ID:           id,
			Name:         name,
			ProductID:    productID,
			LanguageCode: code,
			Language:     models.Language{Code: code},
		}
	}

	t.Run("expands each match into the full sibling group", func(t *testing.T) {
		dictRepo := new(mocks.MockDictionaryRepository)
		langRepo := new(mocks.MockLanguageRepository)

		matches := []models.ProductDictionary{
			makeDict(1, 10, "หูฟังไร้สาย", "th"),
			makeDict(4, 20, "กระดาษ A4", "th"),
		}
		siblings10 := []models.ProductDictionary{
			makeDict(1, 10, "หูฟังไร้สาย", "th"),
			makeDict(2, 10, "Wireless headphones", "en"),
			makeDict(3, 10, "无线耳机", "ch"),
		}
		siblings20 := []models.ProductDictionary{
			makeDict(4, 20, "กระดาษ A4", "th"),
			makeDict(5, 20, "A4 paper", "en"),
		}

		dictRepo.On("SearchByName", mock.Anything, "", 1, services.DefaultPageSize).
			Return(matches, int64(2), nil)
		dictRepo.On("FindByProductID", mock.Anything, uint(10)).Return(siblings10, nil)
		dictRepo.On("FindByProductID", mock.Anything, uint(20)).Return(siblings20, nil)

		svc := newService(new(mocks.MockProductRepository), dictRepo, langRepo, new(mocks.MockTranslationService))
		result, err := svc.Search(context.Background(), "", 1)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.TotalItems)
		assert.Equal(t, 1, result.CurrentPage)
		assert.Equal(t, 1, result.TotalPages)
		require.Len(t, result.Groups, 2)
		assert.Len(t, result.Groups[0], 3)
		assert.Len(t, result.Groups[1], 2)
	})

	t.Run("defaults non-positive pages to 1", func(t *testing.T) {
		dictRepo := new(mocks.MockDictionaryRepository)

		dictRepo.On("SearchByName", mock.Anything, "กระดาษ", 1, services.DefaultPageSize).
			Return([]models.ProductDictionary{}, int64(0), nil)

		svc := newService(new(mocks.MockProductRepository), dictRepo, new(mocks.MockLanguageRepository), new(mocks.MockTranslationService))
		result, err := svc.Search(context.Background(), "กระดาษ", -3)

		require.NoError(t, err)
		assert.Equal(t, 1, result.CurrentPage)
		assert.Equal(t, 0, result.TotalPages)
		dictRepo.AssertCalled(t, "SearchByName", mock.Anything, "กระดาษ", 1, services.DefaultPageSize)
	})

	t.Run("computes total pages as the ceiling of totalItems over the page size", func(t *testing.T) {
		dictRepo := new(mocks.MockDictionaryRepository)

		dictRepo.On("SearchByName", mock.Anything, "", 3, services.DefaultPageSize).
			Return([]models.ProductDictionary{}, int64(25), nil)

		svc := newService(new(mocks.MockProductRepository), dictRepo, new(mocks.MockLanguageRepository), new(mocks.MockTranslationService))
		result, err := svc.Search(context.Background(), "", 3)

		require.NoError(t, err)
		assert.Equal(t, int64(25), result.TotalItems)
		assert.Equal(t, 3, result.TotalPages)
	})

	t.Run("wraps store failures into the generic search error", func(t *testing.T) {
		dictRepo := new(mocks.MockDictionaryRepository)

		dictRepo.On("SearchByName", mock.Anything, "", 1, services.DefaultPageSize).
			Return(nil, int64(0), errors.New("connection reset"))

		svc := newService(new(mocks.MockProductRepository), dictRepo, new(mocks.MockLanguageRepository), new(mocks.MockTranslationService))
		_, err := svc.Search(context.Background(), "", 1)

		assert.ErrorIs(t, err, services.ErrSearchProduct)
	})

	t.Run("wraps sibling expansion failures into the generic search error", func(t *testing.T) {
		dictRepo := new(mocks.MockDictionaryRepository)

		dictRepo.On("SearchByName", mock.Anything, "", 1, services.DefaultPageSize).
			Return([]models.ProductDictionary{makeDict(1, 10, "สินค้า", "th")}, int64(1), nil)
		dictRepo.On("FindByProductID", mock.Anything, uint(10)).
			Return(nil, errors.New("connection reset"))

		svc := newService(new(mocks.MockProductRepository), dictRepo, new(mocks.MockLanguageRepository), new(mocks.MockTranslationService))
		_, err := svc.Search(context.Background(), "", 1)

		assert.ErrorIs(t, err, services.ErrSearchProduct)
	})
}
