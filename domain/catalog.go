package domain

import (
	"errors"
)

const (
	CategoryUnknown       = "Unknown"
	CategoryPantryStaples = "Pantry Staples"
)

var (
	MessageSuccessGetCatalog    = "catalog retrieved successfully"
	MessageSuccessGetProduct    = "product retrieved successfully"
	MessageSuccessAddProduct    = "product added successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"

	MessageFailedGetCatalog    = "failed to retrieve catalog"
	MessageFailedGetProduct    = "failed to retrieve product"
	MessageFailedAddProduct    = "failed to add product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"

	ErrProductNotFound     = errors.New("product not found")
	ErrProductExists       = errors.New("product already exists")
	ErrAlternativeNotFound = errors.New("alternative product not found")
	ErrSelfAlternative     = errors.New("product cannot be its own alternative")
	ErrInvalidProduct      = errors.New("invalid product")
)

type (
	AddProductRequest struct {
		Name         string  `json:"name" validate:"required"`
		Category     string  `json:"category" validate:"omitempty"`
		Price        float64 `json:"price" validate:"min=0"`
		DaysToExpire int     `json:"days_to_expire" validate:"required,min=1"`
	}

	UpdateProductRequest struct {
		Category     string   `json:"category" validate:"omitempty"`
		Price        *float64 `json:"price" validate:"omitempty,min=0"`
		DaysToExpire *int     `json:"days_to_expire" validate:"omitempty,min=1"`
		Healthy      *bool    `json:"healthy"`
		Alternative  *string  `json:"alternative"`
	}

	ProductResponse struct {
		Name         string  `json:"name"`
		Category     string  `json:"category"`
		Price        float64 `json:"price"`
		DaysToExpire int     `json:"days_to_expire"`
		Healthy      bool    `json:"healthy"`
		Alternative  *string `json:"alternative"`
	}

	CategoryResponse struct {
		Name     string            `json:"name"`
		Products []ProductResponse `json:"products"`
	}

	AddProductResponse struct {
		Product            ProductResponse  `json:"product"`
		CreatedAlternative *ProductResponse `json:"created_alternative,omitempty"`
		Classified         bool             `json:"classified"`
	}
)
