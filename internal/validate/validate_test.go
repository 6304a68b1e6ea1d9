package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	id, ok := ID(" 12 ")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "abc", "1.5", "99999999999999999999"} {
		_, ok := ID(bad)
		assert.False(t, ok, bad)
	}

	id, ok = ID("0")
	assert.True(t, ok)
	assert.Zero(t, id)
	id, ok = ID("-3")
	assert.True(t, ok)
	assert.Equal(t, int64(-3), id)
}

func TestEmail(t *testing.T) {
	_, ok := Email("a@acme.com")
	assert.True(t, ok)
	_, ok = Email("not-an-email")
	assert.False(t, ok)
	_, ok = Email("")
	assert.False(t, ok)
}

func TestPaging(t *testing.T) {
	n, ok := Skip("")
	assert.True(t, ok)
	assert.Zero(t, n)
	_, ok = Skip("-1")
	assert.False(t, ok)

	n, ok = Limit("")
	assert.True(t, ok)
	assert.Equal(t, DefaultLimit, n)
	n, ok = Limit("5000")
	assert.True(t, ok)
	assert.Equal(t, MaxLimit, n)
	_, ok = Limit("x")
	assert.False(t, ok)
}

func TestThreshold(t *testing.T) {
	th, ok := Threshold("")
	assert.True(t, ok)
	assert.Nil(t, th)

	th, ok = Threshold("5")
	assert.True(t, ok)
	assert.Equal(t, 5, *th)

	_, ok = Threshold("five")
	assert.False(t, ok)
}
