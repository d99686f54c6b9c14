package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrUserExists
	ErrInvalidCredentials
	ErrValidation
	ErrPayloadTooLarge
	ErrVacancyNotFound
	ErrVacancyNotFoundOrUnauthorized
	ErrInvalidSortField
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                       "success",
	ErrInternal:                      "Internal server error",
	ErrNotFound:                      "data not found",
	ErrInvalidRequest:                "invalid request",
	ErrUnauthorize:                   "unauthorize request",
	ErrUserExists:                    "User already exists",
	ErrInvalidCredentials:            "Invalid email or password",
	ErrValidation:                    "Validation error",
	ErrPayloadTooLarge:               "Payload too large. Please reduce the size of your images or submit fewer images.",
	ErrVacancyNotFound:               "Vacancy not found.",
	ErrVacancyNotFoundOrUnauthorized: "Vacancy not found or unauthorized.",
	ErrInvalidSortField:              "Invalid sort field",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                       http.StatusOK,
	ErrInternal:                      http.StatusInternalServerError,
	ErrNotFound:                      http.StatusNotFound,
	ErrInvalidRequest:                http.StatusBadRequest,
	ErrUnauthorize:                   http.StatusUnauthorized,
	ErrUserExists:                    http.StatusBadRequest,
	ErrInvalidCredentials:            http.StatusBadRequest,
	ErrValidation:                    http.StatusUnprocessableEntity,
	ErrPayloadTooLarge:               http.StatusRequestEntityTooLarge,
	ErrVacancyNotFound:               http.StatusNotFound,
	ErrVacancyNotFoundOrUnauthorized: http.StatusNotFound,
	ErrInvalidSortField:              http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                       "0000",
	ErrInternal:                      "0001",
	ErrNotFound:                      "0002",
	ErrInvalidRequest:                "0003",
	ErrUnauthorize:                   "0004",
	ErrUserExists:                    "0005",
	ErrInvalidCredentials:            "0006",
	ErrValidation:                    "0007",
	ErrPayloadTooLarge:               "0008",
	ErrVacancyNotFound:               "0009",
	ErrVacancyNotFoundOrUnauthorized: "0010",
	ErrInvalidSortField:              "0011",
}
