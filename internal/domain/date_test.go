package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var in struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2025-01-10"}`), &in))
	assert.Equal(t, "2025-01-10", in.D.String())

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2025-01-10"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"d":"10/01/2025"}`), &in))
	require.Error(t, json.Unmarshal([]byte(`{"d":20250110}`), &in))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2025-03-04"))
	assert.Equal(t, NewDate(2025, time.March, 4), d)

	require.NoError(t, d.Scan([]byte("2025-03-05T00:00:00Z")))
	assert.Equal(t, "2025-03-05", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12-31", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2025, time.January, 10).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
