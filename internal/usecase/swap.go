package usecase

import (
	"fmt"
	"strings"

	"piscinas_xpto/internal/domain/entities"
)

// SwapPreservingPosition promotes selectedKey into the list position of
// previousKey, carrying over the previous item's quantity so a resize never
// sneaks in through a swap. It is a pure transform: the input family is
// never mutated and list order is preserved.
//
// The replacement item is resolved in three steps:
//  1. an existing row under selectedKey is reused (requantified);
//  2. otherwise it is synthesized from the previous item's advertised
//     alternatives, matched by product id or name inside selectedKey;
//  3. otherwise the previous item is cloned as an alternative row.
//
// When either key is empty, or previousKey is not in the family, the family
// is returned unchanged.
func SwapPreservingPosition(family entities.Family, selectedKey, previousKey string) entities.Family {
	if selectedKey == "" || previousKey == "" {
		return family
	}
	prevIndex := family.Index(previousKey)
	if prevIndex < 0 {
		return family
	}

	prev := family[prevIndex]
	prevQty := prev.Quantity
	if prevQty == 0 {
		prevQty = 1
	}

	selIndex := family.Index(selectedKey)
	var replacement entities.LineItem
	if selIndex >= 0 {
		replacement = family[selIndex]
		replacement.Quantity = prevQty
	} else if alt, ok := matchAlternative(prev, selectedKey); ok {
		replacement = entities.LineItem{
			Key:           selectedKey,
			Name:          alt.Name,
			Price:         alt.Price,
			Quantity:      prevQty,
			Unit:          prev.Unit,
			Role:          entities.RoleAlternativo,
			Reasoning:     prev.Reasoning,
			AlternativeTo: previousKey,
			ProductID:     alt.ID,
		}
	} else {
		replacement = prev
		replacement.Key = selectedKey
		replacement.Quantity = prevQty
		replacement.Role = entities.RoleAlternativo
		replacement.AlternativeTo = previousKey
	}
	replacement.Key = selectedKey

	out := make(entities.Family, 0, len(family))
	for i, item := range family {
		if i == selIndex {
			continue
		}
		if i == prevIndex {
			out = append(out, replacement)
			continue
		}
		out = append(out, item)
	}
	return out
}

// matchAlternative finds the advertised alternative referenced by
// selectedKey, by product id first and name second.
func matchAlternative(prev entities.LineItem, selectedKey string) (entities.AlternativeRef, bool) {
	loweredKey := strings.ToLower(selectedKey)
	for _, alt := range prev.Alternatives {
		if strings.Contains(selectedKey, fmt.Sprintf("%d", alt.ID)) {
			return alt, true
		}
		if alt.Name != "" && strings.Contains(loweredKey, strings.ToLower(alt.Name)) {
			return alt, true
		}
	}
	return entities.AlternativeRef{}, false
}
