package models

import "time"

// Admin is an administrator login. Its session identifier is "user_<id>".
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// TenantAccount is a self-registered tenant login. Its session identifier
// is "tenant_<id>". It is unrelated to the Tenant lease-party record.
type TenantAccount struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
