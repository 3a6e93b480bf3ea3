package models

import (
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Message wraps one serialized record.
type Message struct {
	ID      uuid.UUID       `json:"id"`
	Kind    string          `json:"kind"`
	Content json.RawMessage `json:"content"`
	Hash    string          `json:"hash"`
}
