package id

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDFromParts(t *testing.T) {
	a := UUIDFromParts("texture", "https://app.texture.capital/offerings/1")
	assert.Equal(t, a, UUIDFromParts("texture", "https://app.texture.capital/offerings/1"))
	assert.NotEqual(t, a, UUIDFromParts("centrifuge", "https://app.texture.capital/offerings/1"))
	assert.NotEqual(t, UUIDFromParts("ab", "c"), UUIDFromParts("a", "bc"))

	u, err := uuid.FromString(a)
	assert.Nil(t, err)
	assert.EqualValues(t, 3, u.Version())
}

func TestGenUUIDString(t *testing.T) {
	assert.NotEqual(t, GenUUIDString(), GenUUIDString())
	assert.Equal(t, UUIDFromString("state"), UUIDFromString("state"))
}
