package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUInt32_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		input       string
		expected    UInt32
		expectedErr bool
	}{
		{input: `12`, expected: 12},
		{input: `"12"`, expected: 12},
		{input: `""`, expected: 0},
		{input: `null`, expected: 0},
		{input: `"4294967295"`, expected: 4294967295},
		{input: `"4294967296"`, expectedErr: true},
		{input: `-1`, expectedErr: true},
		{input: `"abc"`, expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			var u UInt32 = 7
			err := json.Unmarshal([]byte(tc.input), &u)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, u)
		})
	}
}

func TestUInt32_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(UInt32(42))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(data))

	data, err = json.Marshal(Payment{})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "source_tag")
	assert.NotContains(t, string(data), "destination_tag")
}

func TestTimestamp(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2014-06-11T21:03:30.000Z"`), &ts))
		assert.Equal(t, time.Date(2014, 6, 11, 21, 3, 30, 0, time.UTC), ts.UTC())
	})

	t.Run("empty_and_null", func(t *testing.T) {
		ts := Timestamp{Time: time.Now()}
		require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
		assert.True(t, ts.IsZero())

		ts = Timestamp{Time: time.Now()}
		require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
		assert.True(t, ts.IsZero())
	})

	t.Run("invalid", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
		assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
	})

	t.Run("encode", func(t *testing.T) {
		data, err := json.Marshal(Timestamp{})
		require.NoError(t, err)
		assert.Equal(t, `""`, string(data))

		data, err = json.Marshal(Timestamp{Time: time.Date(2014, 6, 11, 21, 3, 30, 0, time.UTC)})
		require.NoError(t, err)
		assert.Equal(t, `"2014-06-11T21:03:30Z"`, string(data))
	})
}
