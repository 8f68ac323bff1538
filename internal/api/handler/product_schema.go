package handler

import "time"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=50"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
}

// updateProductRequest backs PUT: every mutable field must be present.
type updateProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=50"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	IsActive    *bool   `json:"is_active"   validate:"omitempty"`
}

// patchProductRequest backs PATCH: absent fields are left untouched.
type patchProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=3,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"   validate:"omitempty"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	InStock     bool      `json:"in_stock"`
	OwnerID     string    `json:"owner_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
