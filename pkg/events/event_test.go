package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	added := NewProductAdded("id-1", "BPC-157", "recovery", 55)
	assert.Equal(t, TypeProductAdded, added.EventType())
	assert.Equal(t, "BPC-157", added.Payload()["name"])
	assert.False(t, added.Timestamp().IsZero())

	reloaded := NewCatalogReloaded(6, true)
	assert.Equal(t, TypeCatalogReloaded, reloaded.EventType())
	assert.Equal(t, true, reloaded.Payload()["fallback"])

	contact := NewContactReceived("id-2", "ada@example.com")
	assert.Equal(t, "id-2", contact.Payload()["entity_id"])
}
