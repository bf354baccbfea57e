package models

import "time"

// Profile is the public profile of the signed-in user.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Household groups users that share inventories and tasks.
type Household struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	OwnerID   string   `json:"owner_id"`
	MemberIDs []string `json:"member_ids,omitempty"`
}

// Inventory is a named storage place (fridge, pantry, ...) of a household.
type Inventory struct {
	ID          string   `json:"id"`
	HouseholdID string   `json:"household_id"`
	Name        string   `json:"name"`
	ProductIDs  []string `json:"product_ids,omitempty"`
}

// Product is a cached product record, usually resolved from a scanned
// barcode through the external food-data API.
type Product struct {
	ID        string     `json:"id"`
	Barcode   string     `json:"barcode"`
	Name      string     `json:"name"`
	Brand     string     `json:"brand,omitempty"`
	Quantity  int        `json:"quantity"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Task is a household chore or shopping item.
type Task struct {
	ID          string     `json:"id"`
	HouseholdID string     `json:"household_id"`
	Title       string     `json:"title"`
	Done        bool       `json:"done"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}
