// Package appwrite reads car listings from an Appwrite database over its REST
// API.
//
// Only the document list endpoint is used:
//
//	GET {endpoint}/databases/{databaseId}/collections/{collectionId}/documents
//
// Requests carry the X-Appwrite-Project header and, when configured, the
// X-Appwrite-Key server key. The response envelope is
//
//	{"total": 2, "documents": [{"$id": "...", "carname": "...", ...}]}
//
// Each document is mapped with listing.FromDocument. Numbers are decoded as
// json.Number so integral prices keep their exact text.
//
// The client performs a single request per call and never retries; a failed
// request is reported to the loader as is.
package appwrite
