package listing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document keys used by the car listings collection.
const (
	KeyCarName   = "carname"
	KeyModel     = "models"
	KeyYear      = "years"
	KeyPrice     = "price"
	KeyCondition = "condition"
	KeyMileage   = "mileage"
	KeyImage     = "images"
)

// CarRecord is one sale listing. Nil attributes were absent from the source
// document or held a value that could not be read as the expected type.
// Records are shared between snapshots and must be treated as read-only.
type CarRecord struct {
	ID        string   `json:"$id"`
	CarName   *string  `json:"carname,omitempty"`
	Model     *string  `json:"models,omitempty"`
	Year      *string  `json:"years,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Condition *string  `json:"condition,omitempty"`
	Mileage   *float64 `json:"mileage,omitempty"`
	ImageURI  string   `json:"images,omitempty"`
}

// Attr returns the text form of field f and whether the record carries it.
// Numbers use their shortest decimal representation (1500, 1500.5).
func (r CarRecord) Attr(f Field) (string, bool) {
	switch f {
	case FieldCarName:
		return deref(r.CarName)
	case FieldModel:
		return deref(r.Model)
	case FieldYear:
		return deref(r.Year)
	case FieldPrice:
		return formatNumber(r.Price)
	case FieldCondition:
		return deref(r.Condition)
	case FieldMileage:
		return formatNumber(r.Mileage)
	}
	return "", false
}

// FromDocument maps a loosely typed store document onto a CarRecord. Text
// attributes accept strings and numbers; numeric attributes accept numbers and
// numeric strings. Anything else leaves the attribute nil.
func FromDocument(id string, doc map[string]any) CarRecord {
	return CarRecord{
		ID:        id,
		CarName:   textValue(doc[KeyCarName]),
		Model:     textValue(doc[KeyModel]),
		Year:      textValue(doc[KeyYear]),
		Price:     numberValue(doc[KeyPrice]),
		Condition: textValue(doc[KeyCondition]),
		Mileage:   numberValue(doc[KeyMileage]),
		ImageURI:  imageValue(doc[KeyImage]),
	}
}

// DuplicateIDs returns ids that occur more than once, in first-seen order.
func DuplicateIDs(records []CarRecord) []string {
	seen := make(map[string]int, len(records))
	var dups []string
	for _, rec := range records {
		seen[rec.ID]++
		if seen[rec.ID] == 2 {
			dups = append(dups, rec.ID)
		}
	}
	return dups
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func formatNumber(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatFloat(*v, 'f', -1, 64), true
}

func textValue(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		s = strconv.Itoa(t)
	case int32:
		s = strconv.FormatInt(int64(t), 10)
	case int64:
		s = strconv.FormatInt(t, 10)
	default:
		return nil
	}
	return &s
}

func numberValue(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func imageValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	case []string:
		for _, s := range t {
			if strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
