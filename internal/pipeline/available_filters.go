package pipeline

import (
	"maps"
	"slices"

	"sales-dashboard/internal/models"
)

// ExtractAvailableFilters collects the sorted distinct facet values and the
// observed age bounds of records. Empty input yields DefaultAgeRange.
// Empty strings are not offered since they cannot be selected.
func ExtractAvailableFilters(records []models.SalesTransaction) models.AvailableFilters {
	regions := make(map[string]struct{})
	genders := make(map[string]struct{})
	categories := make(map[string]struct{})
	tags := make(map[string]struct{})
	payments := make(map[string]struct{})

	ageRange := models.DefaultAgeRange
	for i := range records {
		tx := &records[i]
		addValue(regions, tx.CustomerRegion)
		addValue(genders, tx.Gender)
		addValue(categories, tx.ProductCategory)
		addValue(payments, tx.PaymentMethod)
		for _, tag := range tx.Tags {
			addValue(tags, tag)
		}

		if i == 0 {
			ageRange = models.AgeRange{Min: tx.Age, Max: tx.Age}
			continue
		}
		ageRange.Min = min(ageRange.Min, tx.Age)
		ageRange.Max = max(ageRange.Max, tx.Age)
	}

	return models.AvailableFilters{
		Regions:        sortedKeys(regions),
		Genders:        sortedKeys(genders),
		Categories:     sortedKeys(categories),
		Tags:           sortedKeys(tags),
		PaymentMethods: sortedKeys(payments),
		AgeRange:       ageRange,
	}
}

func addValue(set map[string]struct{}, value string) {
	if value == "" {
		return
	}
	set[value] = struct{}{}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := slices.Sorted(maps.Keys(set))
	if keys == nil {
		return []string{}
	}
	return keys
}
