package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ghuser/plantcatalog/services/catalog/domain/models"
)

// Document field names in the plants collection.
const (
	fieldID         = "_id"
	fieldName       = "name"
	fieldCategories = "categories"
)

// buildFilter translates a PlantFilter into a query document.
// Search becomes {$or: [{name: /q/i}, {categories: /q/i}]}; Category adds
// {categories: /category/i}. Top-level keys are implicitly ANDed. User input
// is quoted so it is always matched literally.
func buildFilter(f models.PlantFilter) bson.D {
	filter := bson.D{}
	if f.Search != "" {
		re := literalRegex(f.Search)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: fieldName, Value: re}},
			bson.D{{Key: fieldCategories, Value: re}},
		}})
	}
	if f.Category != "" {
		filter = append(filter, bson.E{Key: fieldCategories, Value: literalRegex(f.Category)})
	}
	return filter
}

func literalRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// buildSort returns the sort document for spec with _id as a tie-break so
// pages over equal keys are stable between requests.
func buildSort(spec models.SortSpec) bson.D {
	field := sortField(spec.Field)
	sort := bson.D{{Key: field, Value: int(spec.Direction)}}
	if field != fieldID {
		sort = append(sort, bson.E{Key: fieldID, Value: 1})
	}
	return sort
}

// sortField maps API field names onto document keys.
func sortField(field string) string {
	if field == "id" || field == "_id" {
		return fieldID
	}
	return field
}
