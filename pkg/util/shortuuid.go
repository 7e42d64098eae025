package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// MaxDocumentNumberLength is the longest numeroTituloCliente the boleto API accepts.
const MaxDocumentNumberLength = 18

// NewUUID returns a new base58 encoded UUID
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}

// NewDocumentNumber returns a random base58 identifier short enough for a boleto document number.
func NewDocumentNumber() string {
	id := NewUUID()
	if len(id) > MaxDocumentNumberLength {
		id = id[:MaxDocumentNumberLength]
	}
	return id
}
