package models

import "gorm.io/gorm"

// RoleClient is the default role assigned at registration.
const RoleClient = "client"

// Address is a saved shipping address on a user profile.
type Address struct {
	Label      string `json:"label"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country" validate:"required"`
}

// User represents an account credential paired with its profile document.
type User struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role       string    `json:"role" gorm:"type:varchar(20)"`
	Addresses  []Address `json:"addresses" gorm:"serializer:json"`
	Wishlist   []string  `json:"wishlist" gorm:"serializer:json"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
