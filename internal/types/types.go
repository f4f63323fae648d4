// Package types holds the data structures shared by the storage backends
// and the HTTP handlers. Keeping them here avoids import cycles between
// handlers and storage.
package types

// Student represents a student record.
//
// Every attribute except ID is optional. A nil pointer means the client
// never sent the field: it is not persisted and it is left out of the
// JSON output, so a record round-trips exactly as it was created.
//
// ID is assigned by the store on creation and is exposed as "_id".
// It is always a 24 character hex string.
type Student struct {
	ID    string   `json:"_id"`
	Name  *string  `json:"name,omitempty"`
	Email *string  `json:"email,omitempty"`
	Age   *float64 `json:"age,omitempty"`
}
