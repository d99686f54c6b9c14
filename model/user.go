package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEntity represents a user document
type UserEntity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    primitive.ObjectID
	Email string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// AccountResponse is the caller's profile together with their own vacancies.
type AccountResponse struct {
	User      *UserEntity     `json:"user"`
	Vacancies []VacancyEntity `json:"vacancies"`
}
