package model

// Account is a single checkbook register (e.g. "Checking", "Savings").
// The ID is opaque and assigned by the store when the account is added.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
