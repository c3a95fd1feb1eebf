package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarDecoding(t *testing.T) {
	var req EmailConfirmation
	require.NoError(t, json.Unmarshal([]byte(`{"email":"ada@example.com","loc":null,"date":{"d":2},"time":14.5,"phone":true}`), &req))

	assert.Equal(t, Scalar("ada@example.com"), req.Email)
	assert.Empty(t, req.Location)
	assert.Empty(t, req.Date)
	assert.Equal(t, Scalar("14.5"), req.Time)
	assert.Empty(t, req.Phone)
}
