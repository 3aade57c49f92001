package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog entry. The descriptive fields up to
// ProductCode are required on create; the remaining apparel details are
// optional. Images holds the public URLs of every image ever attached to
// the product; updates append, they never remove.
type Product struct {
	ID                string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name              string          `json:"name" validate:"required,min=3,max=100"`
	Brand             string          `json:"brand" validate:"required"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Description       string          `json:"description" validate:"required,max=2000"`
	SKU               string          `json:"sku" validate:"required"`
	Category          string          `json:"category" validate:"required"`
	SubCategory       string          `json:"sub_category" validate:"required"`
	SizeOptions       []string        `json:"size_options" gorm:"serializer:json" validate:"required,min=1"`
	IsReturnable      *bool           `json:"is_returnable" validate:"required"`
	ProductUUID       string          `json:"product_uuid" validate:"required"`
	ProductCode       string          `json:"product_code" validate:"required"`
	SoldBy            string          `json:"sold_by,omitempty"`
	Neckline          string          `json:"neckline,omitempty"`
	Fit               string          `json:"fit,omitempty"`
	SleeveLength      string          `json:"sleeve_length,omitempty"`
	StyleDetails      string          `json:"style_details,omitempty"`
	Fabric            string          `json:"fabric,omitempty"`
	ModelSize         string          `json:"model_size,omitempty"`
	ModelMeasurements string          `json:"model_measurements,omitempty"`
	Images            []string        `json:"images" gorm:"serializer:json"`
	gorm.Model                        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
