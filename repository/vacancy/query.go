package vacancy

import (
	"regexp"
	"strconv"
	"time"

	"github.com/houzze/houzze-api/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchFields are OR-combined for the free-text search parameter.
var searchFields = []string{"address", "postcode", "title", "description", "benefits", "nationality", "category"}

// BuildListQuery translates the raw query parameters into a Mongo match document.
// Every recognized, present parameter conjoins one predicate; absent parameters
// contribute nothing, so an empty filter matches everything.
func BuildListQuery(f *model.VacancyFilter) bson.M {
	query := bson.M{}

	if f.Address != "" {
		query["address"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Address), Options: "i"}
	}
	if f.RoomType != "" {
		query["roomType"] = f.RoomType
	}
	if len(f.PreferredType) > 0 {
		query["preferredType"] = bson.M{"$in": f.PreferredType}
	}
	if f.Postcode != "" {
		query["postcode"] = f.Postcode
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Nationality != "" {
		query["nationality"] = f.Nationality
	}

	// unparseable numbers are skipped, like unparseable dates below
	rent := bson.M{}
	if n, ok := toNumber(f.RentMin); ok {
		rent["$gte"] = n
	}
	if n, ok := toNumber(f.RentMax); ok {
		rent["$lte"] = n
	}
	if len(rent) > 0 {
		query["rent"] = rent
	}

	// bedrooms/bathrooms act as minimum thresholds, not exact matches
	if n, ok := toNumber(f.Bedrooms); ok {
		query["bedrooms"] = bson.M{"$gte": n}
	}
	if n, ok := toNumber(f.Bathrooms); ok {
		query["bathrooms"] = bson.M{"$gte": n}
	}

	if f.Parking != "" {
		query["parking"] = f.Parking == "true"
	}
	if f.Bills != "" {
		query["bills"] = f.Bills == "true"
	}

	if f.Available != "" {
		if t, ok := parseDate(f.Available); ok {
			query["available"] = bson.M{"$gte": t}
		}
	}

	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		or := make(bson.A, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: re})
		}
		query["$or"] = or
	}

	return query
}

// BuildSort resolves sortBy/sortOrder to a sort document. The allowed sortBy
// values are checked by the caller; here the defaults apply: createdAt,
// descending unless sortOrder is a value other than "desc".
func BuildSort(f *model.VacancyFilter) bson.D {
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	order := -1
	if f.SortOrder != "" && f.SortOrder != "desc" {
		order = 1
	}

	return bson.D{{Key: sortBy, Value: order}}
}

func toNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	return n, err == nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
