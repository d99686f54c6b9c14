package vacancy

import (
	"math"
	"net/url"
	"regexp"
	"time"

	"github.com/houzze/houzze-api/constant"
	"github.com/houzze/houzze-api/model"
)

var (
	contactPattern = regexp.MustCompile(`^\+?[0-9]\d{1,14}$`)
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// validateVacancyPayload checks every field rule against the untyped payload and
// returns the full list of violations. It never stops at the first failure; the
// contract is that the response enumerates everything that is wrong.
func validateVacancyPayload(data map[string]interface{}) []string {
	errs := []string{}

	if s, ok := asString(data["title"]); !ok || len(s) < 3 {
		errs = append(errs, "Title must be at least 3 characters long.")
	}
	if s, ok := asString(data["description"]); !ok || len(s) < 5 {
		errs = append(errs, "Description must be at least 5 characters long.")
	}
	if n, ok := asNumber(data["rent"]); !ok || n < 0 {
		errs = append(errs, "Rent must be a positive number.")
	}
	if n, ok := asNumber(data["deposit"]); !ok || n < 0 {
		errs = append(errs, "Deposit must be a positive number.")
	}
	if s, ok := asString(data["address"]); !ok || len(s) < 5 {
		errs = append(errs, "Address must be at least 5 characters long.")
	}
	if s, ok := asString(data["postcode"]); !ok || len(s) < 4 {
		errs = append(errs, "Postcode must be at least 4 characters long.")
	}
	if n, ok := asNumber(data["bedrooms"]); !ok || n < 0 || n != math.Trunc(n) {
		errs = append(errs, "Bedrooms must be a positive integer.")
	}
	if n, ok := asNumber(data["bathrooms"]); !ok || n < 0 || n != math.Trunc(n) {
		errs = append(errs, "Bathrooms must be a positive integer.")
	}
	if s, ok := asString(data["contact"]); !ok || !contactPattern.MatchString(s) {
		errs = append(errs, "Contact must be a valid international phone number (E.164 format).")
	}
	if s, ok := asString(data["name"]); !ok || s == "" {
		errs = append(errs, "Name is required.")
	}
	if v := data["email"]; v != nil {
		// empty string means "not provided"
		if s, ok := asString(v); !ok || (s != "" && !emailPattern.MatchString(s)) {
			errs = append(errs, "Invalid email format.")
		}
	}
	if s, ok := asString(data["roomType"]); !ok || !contains(constant.RoomTypes, s) {
		errs = append(errs, "Invalid room type.")
	}
	if data["preferredType"] != nil {
		if arr, ok := data["preferredType"].([]interface{}); !ok {
			errs = append(errs, "Preferred type must be an array.")
		} else {
			valid := true
			for _, v := range arr {
				s, ok := asString(v)
				if !ok || !contains(constant.PreferredTypes, s) {
					valid = false
					break
				}
			}
			if !valid {
				errs = append(errs, "Invalid preferred type.")
			}
		}
	}
	if _, ok := data["bills"].(bool); !ok {
		errs = append(errs, "Bills must be a boolean.")
	}
	for _, field := range []struct{ key, label string }{
		{"parking", "Parking"},
		{"smoker", "Smoker"},
		{"pets", "Pets"},
	} {
		if data[field.key] != nil {
			if _, ok := data[field.key].(bool); !ok {
				errs = append(errs, field.label+" must be a boolean.")
			}
		}
	}
	if data["available"] != nil {
		s, ok := asString(data["available"])
		if !ok {
			errs = append(errs, "Available date must be a valid date.")
		} else if _, ok := parsePayloadDate(s); !ok {
			errs = append(errs, "Available date must be a valid date.")
		}
	}
	if data["images"] != nil {
		if arr, ok := data["images"].([]interface{}); !ok {
			errs = append(errs, "Images must be an array.")
		} else {
			valid := true
			for _, v := range arr {
				s, ok := asString(v)
				if !ok || !isValidURL(s) {
					valid = false
					break
				}
			}
			if !valid {
				errs = append(errs, "All images must be valid URLs.")
			}
		}
	}

	return errs
}

// entityFromPayload builds the typed vacancy record from a payload that has
// already passed validation. Booleans default to false, available to now.
func entityFromPayload(data map[string]interface{}) *model.VacancyEntity {
	entity := &model.VacancyEntity{
		Title:       mustString(data["title"]),
		Description: mustString(data["description"]),
		Rent:        mustNumber(data["rent"]),
		Deposit:     mustNumber(data["deposit"]),
		Address:     mustString(data["address"]),
		Postcode:    mustString(data["postcode"]),
		Bedrooms:    int(mustNumber(data["bedrooms"])),
		Bathrooms:   int(mustNumber(data["bathrooms"])),
		Contact:     mustString(data["contact"]),
		Name:        mustString(data["name"]),
		Email:       mustString(data["email"]),
		Benefits:    mustString(data["benefits"]),
		Nationality: mustString(data["nationality"]),
		Category:    mustString(data["category"]),
		RoomType:    mustString(data["roomType"]),
		Bills:       mustBool(data["bills"]),
		Parking:     mustBool(data["parking"]),
		Smoker:      mustBool(data["smoker"]),
		Pets:        mustBool(data["pets"]),
		Available:   time.Now().UTC(),
	}

	if arr, ok := data["preferredType"].([]interface{}); ok {
		types := make([]string, 0, len(arr))
		for _, v := range arr {
			types = append(types, mustString(v))
		}
		entity.PreferredType = types
	}

	if s, ok := asString(data["available"]); ok {
		if t, ok := parsePayloadDate(s); ok {
			entity.Available = t
		}
	}

	if arr, ok := data["images"].([]interface{}); ok {
		images := make([]string, 0, len(arr))
		for _, v := range arr {
			images = append(images, mustString(v))
		}
		entity.Images = images
	}

	return entity
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNumber(v interface{}) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

func mustString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func mustNumber(v interface{}) float64 {
	n, _ := v.(float64)
	return n
}

func mustBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func parsePayloadDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
