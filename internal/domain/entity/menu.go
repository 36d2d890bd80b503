package entity

import "strings"

// MenuOptions are the drop-down lists maintained on the menus sheet.
type MenuOptions struct {
	Categories   []string `json:"categories"`
	Suppliers    []string `json:"suppliers"`
	Units        []string `json:"units"`
	KcalBuckets  []string `json:"kcal_buckets"`
	PriceBuckets []string `json:"price_buckets"`
}

// Allows reports whether value is acceptable for a list. An empty list or
// an empty value accepts anything.
func Allows(list []string, value string) bool {
	value = strings.TrimSpace(value)
	if len(list) == 0 || value == "" {
		return true
	}

	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), value) {
			return true
		}
	}

	return false
}
