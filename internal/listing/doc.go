// Package listing holds the car-sale domain: the record shape read from the
// document store, the per-field query, the filter engine and the one-shot
// loader.
//
// # Pipeline
//
//	Source.ListDocuments ──> Load ──> canonical []CarRecord
//	                                        │
//	                      Query ──> Filter ─┴─> filtered []CarRecord
//
// Load performs exactly one read of the collection. Filter is a pure function
// of the canonical records and a Query; it never narrows a previous result, so
// widening a query restores records a narrower query excluded.
//
// # Matching
//
// A record matches when every non-empty query field matches its attribute:
//
//   - Car name, model, condition: case-folded substring
//   - Year: substring of the stored text, case-sensitive
//   - Price, mileage: substring of the number's decimal text, so "15"
//     matches 1500 and 9150 alike
//
// Attributes the document did not carry never match a non-empty query.
//
// # Errors
//
// Load reports every store failure as a *LoadError. Its Message is the fixed
// text shown to users; Unwrap exposes the cause for logs.
package listing
