package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VacancyEntity represents a vacancy document
type VacancyEntity struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Rent          float64            `bson:"rent" json:"rent"`
	Deposit       float64            `bson:"deposit" json:"deposit"`
	Address       string             `bson:"address" json:"address"`
	Postcode      string             `bson:"postcode" json:"postcode"`
	Bedrooms      int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int                `bson:"bathrooms" json:"bathrooms"`
	Contact       string             `bson:"contact" json:"contact"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Benefits      string             `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Nationality   string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty"`
	RoomType      string             `bson:"roomType" json:"roomType"`
	PreferredType []string           `bson:"preferredType,omitempty" json:"preferredType,omitempty"`
	Bills         bool               `bson:"bills" json:"bills"`
	Parking       bool               `bson:"parking" json:"parking"`
	Smoker        bool               `bson:"smoker" json:"smoker"`
	Pets          bool               `bson:"pets" json:"pets"`
	Available     time.Time          `bson:"available" json:"available"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	CreatedBy     primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// OwnerSummary is the minimal owner projection attached to list results.
type OwnerSummary struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// VacancyListItem is a vacancy with its owner reference resolved for display.
// Owner serializes under createdBy and, being the shallower field, shadows the
// embedded raw id there, so clients see {name, email} in place of the ObjectID
// (null when the owner no longer exists).
type VacancyListItem struct {
	VacancyEntity `bson:",inline"`
	Owner         *OwnerSummary `bson:"owner,omitempty" json:"createdBy"`
}

// VacancyFilter carries the raw query parameters of the list endpoint.
// All fields are optional; empty values mean "not provided".
type VacancyFilter struct {
	Address       string
	RoomType      string
	Postcode      string
	Category      string
	Nationality   string
	PreferredType []string
	RentMin       string
	RentMax       string
	Bedrooms      string
	Bathrooms     string
	Parking       string
	Bills         string
	Available     string
	Search        string
	SortBy        string
	SortOrder     string
}

// VacancyListResponse is the list endpoint payload.
type VacancyListResponse struct {
	Vacancies      []VacancyListItem `json:"vacancies"`
	TotalVacancies int               `json:"totalVacancies"`
}

type VacancyResponse struct {
	Message string         `json:"message,omitempty"`
	Vacancy *VacancyEntity `json:"vacancy"`
}
