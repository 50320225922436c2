package extract

import (
	"encoding/json"
	"strconv"

	"billscan/internal/domain"
)

// Heuristic guard: an amount above this is assumed to be a mis-extracted
// non-monetary field (date serial, invoice number, identifier).
const maxPlausibleAmount = 1_000_000

var requiredItemFields = []string{"item_name", "item_amount", "item_rate", "item_quantity"}

// ValidateAndClean filters the record's bill_items against a fixed rule
// set. It is a pure projection: applying it twice yields the same result
// as applying it once, it never fails, and fields other than bill_items
// pass through untouched. An item is dropped when any rule fails, in
// order: a required field is missing; a numeric field does not coerce to
// float; the amount is not positive; the amount exceeds the plausibility
// cap. Surviving items keep their original order with the three numeric
// fields coerced to float64.
func ValidateAndClean(rec Record) Record {
	cleaned := make(Record, len(rec))
	for k, v := range rec {
		cleaned[k] = v
	}

	items, _ := rec["bill_items"].([]interface{})
	survivors := make([]interface{}, 0, len(items))

	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if missingField(item) {
			continue
		}

		amount, ok := toFloat(item["item_amount"])
		if !ok {
			continue
		}
		rate, ok := toFloat(item["item_rate"])
		if !ok {
			continue
		}
		quantity, ok := toFloat(item["item_quantity"])
		if !ok {
			continue
		}

		if amount <= 0 {
			continue
		}
		if amount > maxPlausibleAmount {
			continue
		}

		survivors = append(survivors, map[string]interface{}{
			"item_name":     item["item_name"],
			"item_amount":   amount,
			"item_rate":     rate,
			"item_quantity": quantity,
		})
	}

	cleaned["bill_items"] = survivors
	return cleaned
}

// PageFromRecord converts a cleaned record into the typed page extraction.
func PageFromRecord(rec Record) domain.PageExtraction {
	page := domain.PageExtraction{
		PageNo:    toString(rec["page_no"]),
		PageType:  domain.PageType(toString(rec["page_type"])),
		BillItems: []domain.BillLineItem{},
	}

	items, _ := rec["bill_items"].([]interface{})
	for _, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		amount, _ := toFloat(item["item_amount"])
		rate, _ := toFloat(item["item_rate"])
		quantity, _ := toFloat(item["item_quantity"])
		page.BillItems = append(page.BillItems, domain.BillLineItem{
			ItemName:     toString(item["item_name"]),
			ItemAmount:   amount,
			ItemRate:     rate,
			ItemQuantity: quantity,
		})
	}
	return page
}

func missingField(item map[string]interface{}) bool {
	for _, field := range requiredItemFields {
		if _, ok := item[field]; !ok {
			return true
		}
	}
	return false
}

// toFloat coerces the value shapes encoding/json can produce into float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case nil:
		return ""
	default:
		return ""
	}
}
