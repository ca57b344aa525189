package utils

import "strings"

// Slugify derives a URL slug from a display name: lowercased, spaces to
// hyphens. Kept deterministic so the same name always maps to the same slug.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// NormalizePagination applies defaults and bounds to page/limit query values.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
