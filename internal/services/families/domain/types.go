// Package domain defines the types and interfaces for the families service
package domain

// Person is one durable member record
type Person struct {
	ID             string `json:"id"`
	FamilyID       string `json:"familyId"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	Mobile         string `json:"mobile,omitempty"`
	IsMainContact1 bool   `json:"isMainContact1"`
	IsMainContact2 bool   `json:"isMainContact2"`
}

// Family is one durable household record with its members
type Family struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt string   `json:"createdAt"`
	Members   []Person `json:"members"`
}

// ListInput filters the family list
type ListInput struct {
	Search string `json:"search,omitempty" validate:"omitempty,max=200"`
	Limit  int    `json:"limit,omitempty"  validate:"omitempty,min=1,max=500"`
}
