package collection

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Name keywords per item type, checked in order.
var typeKeywords = []struct {
	itemType string
	words    []string
}{
	{"flower", []string{"花", "ひまわり", "flower", "sunflower", "blossom"}},
	{"stone", []string{"石", "stone", "pebble"}},
	{"crystal", []string{"結晶", "crystal"}},
}

// InferType derives an item type from an image id or a display name.
// An image id like "item_flower" yields its second underscore-separated
// segment. Otherwise the name is matched against a small keyword list after
// NFKC normalisation and case folding. Returns "" when nothing matches.
func InferType(image, name string) string {
	if image != "" {
		if parts := strings.Split(image, "_"); len(parts) >= 2 && parts[1] != "" {
			return parts[1]
		}
	}
	if name == "" {
		return ""
	}

	folded := cases.Fold().String(norm.NFKC.String(name))
	for _, kw := range typeKeywords {
		for _, w := range kw.words {
			if strings.Contains(folded, w) {
				return kw.itemType
			}
		}
	}
	return ""
}
