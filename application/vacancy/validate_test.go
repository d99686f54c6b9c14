package vacancy

import (
	"testing"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Sunny double room",
		"description": "Large double room near the station",
		"rent":        float64(800),
		"deposit":     float64(500),
		"address":     "12 Baker Street, London",
		"postcode":    "NW16XE",
		"bedrooms":    float64(2),
		"bathrooms":   float64(1),
		"contact":     "+447911123456",
		"name":        "John",
		"email":       "john@example.com",
		"roomType":    "2BHK",
		"preferredType": []interface{}{
			"Student", "Professional",
		},
		"bills":     true,
		"parking":   false,
		"available": "2026-09-01",
		"images":    []interface{}{"https://cdn.example.com/room1.jpg"},
	}
}

func TestValidateVacancyPayload_Valid(t *testing.T) {
	errs := validateVacancyPayload(validPayload())
	if len(errs) != 0 {
		t.Fatalf("expected no violations, got %v", errs)
	}
}

func TestValidateVacancyPayload_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p map[string]interface{})
		wantMsg string
	}{
		{
			name:    "short title",
			mutate:  func(p map[string]interface{}) { p["title"] = "ab" },
			wantMsg: "Title must be at least 3 characters long.",
		},
		{
			name:    "missing title",
			mutate:  func(p map[string]interface{}) { delete(p, "title") },
			wantMsg: "Title must be at least 3 characters long.",
		},
		{
			name:    "short description",
			mutate:  func(p map[string]interface{}) { p["description"] = "tiny" },
			wantMsg: "Description must be at least 5 characters long.",
		},
		{
			name:    "negative rent",
			mutate:  func(p map[string]interface{}) { p["rent"] = float64(-5) },
			wantMsg: "Rent must be a positive number.",
		},
		{
			name:    "rent wrong type",
			mutate:  func(p map[string]interface{}) { p["rent"] = "800" },
			wantMsg: "Rent must be a positive number.",
		},
		{
			name:    "negative deposit",
			mutate:  func(p map[string]interface{}) { p["deposit"] = float64(-1) },
			wantMsg: "Deposit must be a positive number.",
		},
		{
			name:    "short address",
			mutate:  func(p map[string]interface{}) { p["address"] = "a st" },
			wantMsg: "Address must be at least 5 characters long.",
		},
		{
			name:    "short postcode",
			mutate:  func(p map[string]interface{}) { p["postcode"] = "N1" },
			wantMsg: "Postcode must be at least 4 characters long.",
		},
		{
			name:    "fractional bedrooms",
			mutate:  func(p map[string]interface{}) { p["bedrooms"] = 2.5 },
			wantMsg: "Bedrooms must be a positive integer.",
		},
		{
			name:    "negative bathrooms",
			mutate:  func(p map[string]interface{}) { p["bathrooms"] = float64(-2) },
			wantMsg: "Bathrooms must be a positive integer.",
		},
		{
			name:    "bad contact",
			mutate:  func(p map[string]interface{}) { p["contact"] = "not-a-phone" },
			wantMsg: "Contact must be a valid international phone number (E.164 format).",
		},
		{
			name:    "missing name",
			mutate:  func(p map[string]interface{}) { delete(p, "name") },
			wantMsg: "Name is required.",
		},
		{
			name:    "bad email",
			mutate:  func(p map[string]interface{}) { p["email"] = "not-an-email" },
			wantMsg: "Invalid email format.",
		},
		{
			name:    "bad room type",
			mutate:  func(p map[string]interface{}) { p["roomType"] = "6BHK" },
			wantMsg: "Invalid room type.",
		},
		{
			name:    "preferred type not array",
			mutate:  func(p map[string]interface{}) { p["preferredType"] = "Student" },
			wantMsg: "Preferred type must be an array.",
		},
		{
			name:    "preferred type outside vocabulary",
			mutate:  func(p map[string]interface{}) { p["preferredType"] = []interface{}{"Student", "Alien"} },
			wantMsg: "Invalid preferred type.",
		},
		{
			name:    "bills missing",
			mutate:  func(p map[string]interface{}) { delete(p, "bills") },
			wantMsg: "Bills must be a boolean.",
		},
		{
			name:    "parking wrong type",
			mutate:  func(p map[string]interface{}) { p["parking"] = "yes" },
			wantMsg: "Parking must be a boolean.",
		},
		{
			name:    "smoker wrong type",
			mutate:  func(p map[string]interface{}) { p["smoker"] = float64(1) },
			wantMsg: "Smoker must be a boolean.",
		},
		{
			name:    "pets wrong type",
			mutate:  func(p map[string]interface{}) { p["pets"] = "no" },
			wantMsg: "Pets must be a boolean.",
		},
		{
			name:    "unparseable available date",
			mutate:  func(p map[string]interface{}) { p["available"] = "soon" },
			wantMsg: "Available date must be a valid date.",
		},
		{
			name:    "images not array",
			mutate:  func(p map[string]interface{}) { p["images"] = "https://cdn.example.com/a.jpg" },
			wantMsg: "Images must be an array.",
		},
		{
			name:    "image not a url",
			mutate:  func(p map[string]interface{}) { p["images"] = []interface{}{"https://ok.example.com/a.jpg", "not a url"} },
			wantMsg: "All images must be valid URLs.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(payload)

			errs := validateVacancyPayload(payload)
			if len(errs) == 0 {
				t.Fatalf("expected violation %q, got none", tt.wantMsg)
			}
			found := false
			for _, e := range errs {
				if e == tt.wantMsg {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("violations %v do not contain %q", errs, tt.wantMsg)
			}
		})
	}
}

func TestValidateVacancyPayload_AccumulatesAllViolations(t *testing.T) {
	payload := validPayload()
	payload["title"] = "ab"
	payload["rent"] = float64(-5)
	payload["contact"] = "nope"

	errs := validateVacancyPayload(payload)
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(errs), errs)
	}

	want := map[string]bool{
		"Title must be at least 3 characters long.":                          false,
		"Rent must be a positive number.":                                    false,
		"Contact must be a valid international phone number (E.164 format).": false,
	}
	for _, e := range errs {
		if _, ok := want[e]; ok {
			want[e] = true
		}
	}
	for msg, seen := range want {
		if !seen {
			t.Fatalf("expected violation %q in %v", msg, errs)
		}
	}
}

func TestValidateVacancyPayload_OptionalFields(t *testing.T) {
	payload := validPayload()
	delete(payload, "email")
	delete(payload, "preferredType")
	delete(payload, "parking")
	delete(payload, "available")
	delete(payload, "images")

	if errs := validateVacancyPayload(payload); len(errs) != 0 {
		t.Fatalf("optional fields absent should pass, got %v", errs)
	}

	// empty email string counts as not provided
	payload["email"] = ""
	if errs := validateVacancyPayload(payload); len(errs) != 0 {
		t.Fatalf("empty email should pass, got %v", errs)
	}
}

func TestEntityFromPayload(t *testing.T) {
	payload := validPayload()
	entity := entityFromPayload(payload)

	if entity.Title != "Sunny double room" || entity.Rent != 800 || entity.Bedrooms != 2 {
		t.Fatalf("unexpected entity: %+v", entity)
	}
	if entity.Available.Format("2006-01-02") != "2026-09-01" {
		t.Fatalf("available = %v, want 2026-09-01", entity.Available)
	}
	if len(entity.PreferredType) != 2 || entity.PreferredType[0] != "Student" {
		t.Fatalf("preferredType = %v", entity.PreferredType)
	}
	if len(entity.Images) != 1 || entity.Images[0] != "https://cdn.example.com/room1.jpg" {
		t.Fatalf("images = %v", entity.Images)
	}
	if !entity.Bills || entity.Parking || entity.Smoker || entity.Pets {
		t.Fatalf("boolean defaults wrong: %+v", entity)
	}
}

func TestEntityFromPayload_DefaultAvailable(t *testing.T) {
	payload := validPayload()
	delete(payload, "available")

	entity := entityFromPayload(payload)
	if entity.Available.IsZero() {
		t.Fatal("available should default to the current time")
	}
}
