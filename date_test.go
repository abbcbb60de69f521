package tdameritrade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_String(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{name: "zero padded", date: NewDate(2024, time.March, 5), want: "2024-03-05"},
		{name: "two digit fields", date: NewDate(2023, time.December, 31), want: "2023-12-31"},
		{name: "short year", date: Date{Year: 999, Month: time.January, Day: 1}, want: "0999-01-01"},
		{name: "normalized overflow", date: NewDate(2024, time.February, 30), want: "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.String())
			assert.Equal(t, tt.date.String(), tt.date.String())
		})
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	ts := time.Date(2024, time.March, 5, 23, 30, 0, 0, loc)

	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 5}, DateOf(ts))
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 6}, DateOf(ts.UTC()))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 5), d)

	for _, bad := range []string{"", "2024-3-5", "03/05/2024", "2024-02-30"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidQuery, "input %q", bad)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, formatDate(nil))

	d := NewDate(2024, time.March, 5)
	first := formatDate(&d)
	second := formatDate(&d)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, "2024-03-05", *first)
	assert.Equal(t, *first, *second)
}

func TestDate_Valid(t *testing.T) {
	assert.True(t, NewDate(2024, time.February, 29).valid())
	assert.True(t, Date{Year: 999, Month: time.January, Day: 1}.valid())
	assert.False(t, Date{}.valid())
	assert.False(t, Date{Year: 2024, Month: 13, Day: 40}.valid())
	assert.False(t, Date{Year: 2023, Month: time.February, Day: 29}.valid())
	assert.False(t, Date{Year: 10000, Month: time.January, Day: 1}.valid())
}
