package models

import (
	"time"
)

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Dictionary []ProductDictionary `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"dictionary,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// ProductDictionary holds one translated (product, language) record.
// At most one row may exist per product per language.
type ProductDictionary struct {
	ID          uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name        string `gorm:"not null;index" json:"name" example:"หูฟังไร้สาย"`
	Description string `gorm:"type:text" json:"description" example:"หูฟังไร้สายคุณภาพสูง"`

	ProductID    uint     `gorm:"not null;uniqueIndex:idx_product_language" json:"-"`
	Product      *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	LanguageCode string   `gorm:"not null;size:10;uniqueIndex:idx_product_language" json:"-"`
	Language     Language `gorm:"foreignKey:LanguageCode;references:Code" json:"language"`
}

func (ProductDictionary) TableName() string {
	return "product_dictionary"
}

// DictionaryEntry is the flattened per-language view returned by the create workflow.
type DictionaryEntry struct {
	LanguageCode string `json:"languageCode" example:"en"`
	Name         string `json:"name" example:"Wireless headphones"`
	Description  string `json:"description" example:"High quality wireless headphones"`
}

type CreateProductResult struct {
	ID           uint              `json:"id" example:"1"`
	CreatedAt    time.Time         `json:"createdAt"`
	Dictionaries []DictionaryEntry `json:"dictionaries"`
}

// SearchProductsResult is a page of sibling groups: every matched dictionary row
// expanded into the full set of translations of its owning product.
type SearchProductsResult struct {
	TotalItems  int64                 `json:"totalItems" example:"25"`
	CurrentPage int                   `json:"currentPage" example:"1"`
	TotalPages  int                   `json:"totalPages" example:"3"`
	Groups      [][]ProductDictionary `json:"data"`
}
