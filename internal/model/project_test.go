package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessCode(t *testing.T) {
	code := NewAccessCode()

	assert.Regexp(t, "^[0-9A-F]{8}$", code)
	assert.NotEqual(t, code, NewAccessCode())
}

func TestOptionOverrideListRoundTrip(t *testing.T) {
	list := OptionOverrideList{
		{Text: "Day Shift", Code: "a"},
		{Text: "Night Shift", Code: "b"},
	}

	value, err := list.Value()
	require.NoError(t, err)

	var decoded OptionOverrideList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)
}

func TestOptionOverrideListEmptyStoresNull(t *testing.T) {
	value, err := OptionOverrideList{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestOptionOverrideListScanNilAndString(t *testing.T) {
	var list OptionOverrideList
	require.NoError(t, list.Scan(nil))
	assert.Nil(t, list)

	require.NoError(t, list.Scan(`[{"text":"Yes","code":"y"}]`))
	require.Len(t, list, 1)
	assert.Equal(t, "Yes", list[0].Text)

	assert.Error(t, list.Scan(42))
}

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"a", "c"}

	value, err := list.Value()
	require.NoError(t, err)

	var decoded StringList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)

	empty, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, empty)
}
