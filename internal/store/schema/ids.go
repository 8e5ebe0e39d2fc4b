package schema

import "github.com/google/uuid"

// ensureID assigns a random UUID to an empty primary key
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
