package repository

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/domain/repository"
)

// Facets declare how client filter tokens map onto one collection: which
// fields free-text search scans, which field a categorical token equates on,
// and whether price-range tokens apply. The search field list is static per
// collection rather than sampled from a live document, so an empty collection
// composes the same predicate as a full one.
type Facets struct {
	SearchFields  []string
	CategoryField string
	Categories    []string
	PriceField    string // "" when range tokens do not apply
}

var (
	mealFacets = Facets{
		SearchFields: []string{
			"title", "mealType", "ingredients", "description",
			"postTime", "distributorName", "distributorEmail",
		},
		CategoryField: "mealType",
		Categories:    []string{"breakfast", "lunch", "dinner"},
		PriceField:    "price",
	}

	requestFacets = Facets{
		SearchFields:  []string{"recEmail", "recName"},
		CategoryField: "status",
		Categories:    []string{"pending", "processing", "served"},
	}

	userFacets = Facets{
		SearchFields:  []string{"userName", "userEmail"},
		CategoryField: "badge",
		Categories:    []string{"Bronze", "Silver", "Gold", "Platinum"},
	}
)

var priceRangeTokens = map[string]bool{
	"0,5":   true,
	"5,10":  true,
	"10,15": true,
	"15,20": true,
}

// ComposeFilter turns the client parameter bag into a bson filter document.
// Rules in priority order: free-text search, categorical token, price-range
// token, no predicate. An unrecognized token falls through to "no filter"
// rather than erroring.
func ComposeFilter(params repository.ListParams, facets Facets) bson.M {
	if params.Search != "" {
		or := make([]bson.M, 0, len(facets.SearchFields))
		for _, field := range facets.SearchFields {
			or = append(or, bson.M{field: bson.M{"$regex": params.Search, "$options": "i"}})
		}
		return bson.M{"$or": or}
	}

	if params.Filter == "" {
		return bson.M{}
	}

	for _, category := range facets.Categories {
		if params.Filter == category {
			return bson.M{facets.CategoryField: params.Filter}
		}
	}

	if facets.PriceField != "" {
		if lo, hi, ok := parsePriceRange(params.Filter); ok {
			return bson.M{facets.PriceField: bson.M{"$gte": lo, "$lte": hi}}
		}
		if params.Filter == "20" {
			return bson.M{facets.PriceField: bson.M{"$gte": 20}}
		}
	}

	return bson.M{}
}

func parsePriceRange(token string) (int, int, bool) {
	if !priceRangeTokens[token] {
		return 0, 0, false
	}
	parts := strings.Split(token, ",")
	lo, _ := strconv.Atoi(parts[0])
	hi, _ := strconv.Atoi(parts[1])
	return lo, hi, true
}

// ComposeFindOptions applies the sort order and the skip/limit window.
func ComposeFindOptions(params repository.ListParams) *options.FindOptions {
	opts := options.Find().SetSort(sortOrder(params.Sort))
	if params.Limit > 0 {
		opts.SetLimit(params.Limit)
	}
	if params.Skip > 0 {
		opts.SetSkip(params.Skip)
	}
	return opts
}

// sortOrder defaults to insertion order, newest first. Callers may ask for
// the likes or review counter instead; anything else gets the default.
func sortOrder(key string) bson.D {
	switch key {
	case "likes":
		return bson.D{{Key: "likes", Value: -1}}
	case "review":
		return bson.D{{Key: "review", Value: -1}}
	default:
		return bson.D{{Key: "_id", Value: -1}}
	}
}
