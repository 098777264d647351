package search

import (
	"regexp"
	"strings"

	"milaparfum/internal/dal/product"
)

// scentCategories maps a scent type to the category subtypes that carry it.
// Mirrors the storefront's catalog taxonomy.
var scentCategories = map[string][]string{
	"men":    {"Aromatique Gentlemen", "Divine Aaradhana"},
	"women":  {"Essencia Femme", "Divine Aaradhana"},
	"unisex": {"Divine Aaradhana", "Arabia Collection"},
}

// scentWord matches the scent type as a whole word in a product name, so a
// "men" query never matches "women".
var scentWord = map[string]*regexp.Regexp{
	"men":    regexp.MustCompile(`\bmen\b`),
	"women":  regexp.MustCompile(`\bwomen\b`),
	"unisex": regexp.MustCompile(`\bunisex\b`),
}

// FilterByScent keeps the candidates matching scentType, preserving store
// order. Candidates are expected to already satisfy the price bound.
func FilterByScent(candidates []*product.Product, scentType string) []*product.Product {
	scent := strings.ToLower(strings.TrimSpace(scentType))
	allowed := scentCategories[scent]
	word := scentWord[scent]

	matched := make([]*product.Product, 0, len(candidates))
	for _, p := range candidates {
		if p == nil {
			continue
		}
		if matchScent(p.CategorySub(), p.Name, allowed, word) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matchScent applies the category allow-list first; the name fallback only
// runs when the category did not match. An empty allow-list sends every
// candidate through the name path.
func matchScent(categorySub, name string, allowed []string, word *regexp.Regexp) bool {
	if categorySub != "" {
		for _, sub := range allowed {
			if categorySub == sub {
				return true
			}
		}
	}
	if word == nil {
		return false
	}
	return word.MatchString(strings.ToLower(name))
}
