package listing

// Field identifies one filterable attribute of a CarRecord.
type Field int

const (
	FieldCarName Field = iota
	FieldModel
	FieldYear
	FieldPrice
	FieldCondition
	FieldMileage
)

var fields = []Field{FieldCarName, FieldModel, FieldYear, FieldPrice, FieldCondition, FieldMileage}

// Fields returns the filterable attributes in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Label returns the human readable field name.
func (f Field) Label() string {
	switch f {
	case FieldCarName:
		return "Car Name"
	case FieldModel:
		return "Model"
	case FieldYear:
		return "Year"
	case FieldPrice:
		return "Price"
	case FieldCondition:
		return "Condition"
	case FieldMileage:
		return "Mileage"
	}
	return "Unknown"
}

// Key returns the document key the field is read from.
func (f Field) Key() string {
	switch f {
	case FieldCarName:
		return KeyCarName
	case FieldModel:
		return KeyModel
	case FieldYear:
		return KeyYear
	case FieldPrice:
		return KeyPrice
	case FieldCondition:
		return KeyCondition
	case FieldMileage:
		return KeyMileage
	}
	return ""
}

func (f Field) caseFolded() bool {
	return f == FieldCarName || f == FieldModel || f == FieldCondition
}

// Query holds the user's per-field search constraints. An empty field places
// no constraint on its attribute.
type Query struct {
	CarName   string
	Model     string
	Year      string
	Price     string
	Condition string
	Mileage   string
}

// Get returns the constraint for f.
func (q Query) Get(f Field) string {
	switch f {
	case FieldCarName:
		return q.CarName
	case FieldModel:
		return q.Model
	case FieldYear:
		return q.Year
	case FieldPrice:
		return q.Price
	case FieldCondition:
		return q.Condition
	case FieldMileage:
		return q.Mileage
	}
	return ""
}

// Set replaces the constraint for f.
func (q *Query) Set(f Field, value string) {
	switch f {
	case FieldCarName:
		q.CarName = value
	case FieldModel:
		q.Model = value
	case FieldYear:
		q.Year = value
	case FieldPrice:
		q.Price = value
	case FieldCondition:
		q.Condition = value
	case FieldMileage:
		q.Mileage = value
	}
}

// IsZero reports whether no field is constrained.
func (q Query) IsZero() bool {
	return q == Query{}
}

// Active returns the number of constrained fields.
func (q Query) Active() int {
	n := 0
	for _, f := range fields {
		if q.Get(f) != "" {
			n++
		}
	}
	return n
}
