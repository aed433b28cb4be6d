package models

// ProductVariant is one configurable axis of a product (size, color, ...)
type ProductVariant struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product represents a catalog entry the agent can offer
type Product struct {
	ID          string           `json:"id"`
	AgentID     string           `json:"agent_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Category    string           `json:"category"`
	ImageURL    string           `json:"image_url,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Variants    []ProductVariant `json:"variants"`
	IsActive    bool             `json:"is_active"`
	SortOrder   int              `json:"sort_order"`
}

// CreateProductRequest represents product creation input
type CreateProductRequest struct {
	AgentID     string           `json:"agent_id" validate:"required"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description,omitempty" validate:"max=1000"`
	Price       float64          `json:"price" validate:"gte=0"`
	Category    string           `json:"category,omitempty" validate:"max=100"`
	ImageURL    string           `json:"image_url,omitempty" validate:"omitempty,url"`
	SKU         string           `json:"sku,omitempty" validate:"max=100"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    *string           `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL    *string           `json:"image_url,omitempty" validate:"omitempty,url"`
	SKU         *string           `json:"sku,omitempty" validate:"omitempty,max=100"`
	Stock       *int              `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Variants    *[]ProductVariant `json:"variants,omitempty"`
	IsActive    *bool             `json:"is_active,omitempty"`
}

// ImportProduct is one catalog row pulled from an external import source
type ImportProduct struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price" validate:"gte=0"`
	Category    string           `json:"category,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	IsActive    bool             `json:"is_active"`
}

// ImportProductsRequest represents a bulk catalog import
type ImportProductsRequest struct {
	AgentID string          `json:"agent_id" validate:"required"`
	Source  string          `json:"source" validate:"required,oneof=ecommerce sheets scraping"`
	Items   []ImportProduct `json:"items" validate:"required,min=1,dive"`
}
