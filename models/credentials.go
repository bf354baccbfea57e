package models

// APICredentials are the credentials of an external API (the food-data
// lookup service) stored on behalf of a user.
type APICredentials struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
}
