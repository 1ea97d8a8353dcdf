package services

import (
	"context"
	"strings"

	"product-backend/internal/models"
	"product-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultLanguageCode is the fixed source language products are authored in.
const DefaultLanguageCode = "th"

// DefaultPageSize is the fixed search page size.
const DefaultPageSize = 10

type ProductService interface {
	// Create persists a product, its default-language dictionary entry, and one
	// translated entry per requested target language.
	Create(ctx context.Context, name, description string, languages []string) (*models.CreateProductResult, error)
	// Search pages over dictionary rows matching nameFilter and expands each
	// match into the full sibling group of its owning product.
	Search(ctx context.Context, nameFilter string, page int) (*models.SearchProductsResult, error)
	Languages(ctx context.Context) ([]models.Language, error)
}

type productService struct {
	productRepo repository.ProductRepository
	dictRepo    repository.DictionaryRepository
	langRepo    repository.LanguageRepository
	translator  TranslationService
	logger      *logrus.Logger
}

func NewProductService(
	productRepo repository.ProductRepository,
	dictRepo repository.DictionaryRepository,
	langRepo repository.LanguageRepository,
	translator TranslationService,
	logger *logrus.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		dictRepo:    dictRepo,
		langRepo:    langRepo,
		translator:  translator,
		logger:      logger,
	}
}

func (s *productService) Create(ctx context.Context, name, description string, languages []string) (*models.CreateProductResult, error) {
	// The product row is inserted unconditionally; a failure further down
	// leaves it (and any finished dictionary rows) in place. No rollback.
	product := &models.Product{}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, s.wrapCreateErr(err)
	}

	defaultLang, err := s.langRepo.FindByCode(ctx, DefaultLanguageCode)
	if err != nil {
		return nil, s.wrapCreateErr(err)
	}
	if defaultLang == nil {
		return nil, NewBusinessError("Default language not found")
	}

	defaultDict := &models.ProductDictionary{
		Name:         name,
		Description:  description,
		ProductID:    product.ID,
		LanguageCode: defaultLang.Code,
	}
	if err := s.dictRepo.Create(ctx, defaultDict); err != nil {
		return nil, s.wrapCreateErr(err)
	}

	entries := []models.DictionaryEntry{{
		LanguageCode: defaultLang.Code,
		Name:         name,
		Description:  description,
	}}

	// Fan out one task per target language; each returns its own entry through
	// the channel, joined after Wait. Completion order is not guaranteed.
	results := make(chan models.DictionaryEntry, len(languages))
	g, gctx := errgroup.WithContext(ctx)

	for _, code := range languages {
		if code == DefaultLanguageCode {
			continue
		}

		code := code // shadow: per-iteration copy for the closure under go < 1.22
		g.Go(func() error {
			entry, err := s.translateAndStore(gctx, product.ID, name, description, code)
			if err != nil {
				return err
			}
			results <- *entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, s.wrapCreateErr(err)
	}
	close(results)

	for entry := range results {
		entries = append(entries, entry)
	}

	return &models.CreateProductResult{
		ID:           product.ID,
		CreatedAt:    product.CreatedAt,
		Dictionaries: entries,
	}, nil
}

func (s *productService) translateAndStore(ctx context.Context, productID uint, name, description, targetCode string) (*models.DictionaryEntry, error) {
	language, err := s.langRepo.FindByCode(ctx, targetCode)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, NewBusinessError("Language %s not found", targetCode)
	}

	var translatedName, translatedDescription string

	tg, tctx := errgroup.WithContext(ctx)
	tg.Go(func() error {
		var err error
		translatedName, err = s.translator.TranslateText(tctx, name, DefaultLanguageCode, targetCode, FieldName)
		return err
	})
	tg.Go(func() error {
		var err error
		translatedDescription, err = s.translator.TranslateText(tctx, description, DefaultLanguageCode, targetCode, FieldDescription)
		return err
	})
	if err := tg.Wait(); err != nil {
		return nil, err
	}

	// The model tends to trail a newline on single-word answers; only the name
	// is sanitized, descriptions keep their formatting.
	translatedName = strings.ReplaceAll(translatedName, "\n", "")

	dict := &models.ProductDictionary{
		Name:         translatedName,
		Description:  translatedDescription,
		ProductID:    productID,
		LanguageCode: language.Code,
	}
	if err := s.dictRepo.Create(ctx, dict); err != nil {
		return nil, err
	}

	return &models.DictionaryEntry{
		LanguageCode: language.Code,
		Name:         translatedName,
		Description:  translatedDescription,
	}, nil
}

func (s *productService) Search(ctx context.Context, nameFilter string, page int) (*models.SearchProductsResult, error) {
	if page < 1 {
		page = 1
	}

	matches, total, err := s.dictRepo.SearchByName(ctx, nameFilter, page, DefaultPageSize)
	if err != nil {
		s.logger.WithError(err).Error("Product search failed")
		return nil, ErrSearchProduct
	}

	// Each match becomes the full set of its product's translations, keeping
	// the order of the matched page.
	groups := make([][]models.ProductDictionary, 0, len(matches))
	for _, match := range matches {
		siblings, err := s.dictRepo.FindByProductID(ctx, match.ProductID)
		if err != nil {
			s.logger.WithError(err).WithField("product_id", match.ProductID).Error("Failed to expand product translations")
			return nil, ErrSearchProduct
		}
		groups = append(groups, siblings)
	}

	totalPages := int((total + DefaultPageSize - 1) / DefaultPageSize)

	return &models.SearchProductsResult{
		TotalItems:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		Groups:      groups,
	}, nil
}

func (s *productService) Languages(ctx context.Context) ([]models.Language, error) {
	languages, err := s.langRepo.FindAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list languages")
		return nil, ErrSearchProduct
	}
	return languages, nil
}

// wrapCreateErr re-surfaces business rule violations as-is and collapses
// everything else into the generic create failure after logging the cause.
func (s *productService) wrapCreateErr(err error) error {
	if IsBusinessError(err) {
		return err
	}
	s.logger.WithError(err).Error("Product create failed")
	return ErrCreateProduct
}
