package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_Value(t *testing.T) {
	arr := StringArray{"caching", "sharding"}
	v, err := arr.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["caching","sharding"]`, string(v.([]byte)))

	// Nil array serializes as an empty JSON array, not SQL NULL.
	var empty StringArray
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v.([]byte)))
}

func TestStringArray_Scan(t *testing.T) {
	var arr StringArray
	require.NoError(t, arr.Scan([]byte(`["caching","sharding"]`)))
	assert.Equal(t, StringArray{"caching", "sharding"}, arr)

	var fromNil StringArray
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, StringArray{}, fromNil)

	var bad StringArray
	assert.Error(t, bad.Scan(42))
}

func TestAttempt_ResultRoundTrip(t *testing.T) {
	raw := json.RawMessage(`{"overallScore":76,"verdict":"strong_hire"}`)
	a := Attempt{Result: raw, OverallScore: 76, Verdict: "strong_hire"}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded Attempt
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, string(raw), string(decoded.Result))
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	u := User{Name: "Dana", Email: "dana@example.com", PasswordHash: "$2a$12$secret"}
	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password_hash")
}
