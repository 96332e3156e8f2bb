package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BookingStatus
		wantErr bool
	}{
		{name: "plain pending", input: "pending", want: BookingStatusPending},
		{name: "plain confirmed", input: "confirmed", want: BookingStatusConfirmed},
		{name: "plain completed", input: "completed", want: BookingStatusCompleted},
		{name: "plain cancelled", input: "cancelled", want: BookingStatusCancelled},
		{name: "uppercase", input: "CONFIRMED", want: BookingStatusConfirmed},
		{name: "surrounding whitespace", input: "  Confirmed  ", want: BookingStatusConfirmed},
		{name: "mixed case with tab", input: "\tComPleTed", want: BookingStatusCompleted},
		{name: "unknown status", input: "shipped", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBookingStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBookingStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupTravelers(t *testing.T) {
	age := func(n int) *int { return &n }

	rows := []Traveler{
		{Type: TravelerTypeAdult, Name: "Anu", Age: age(34)},
		{Type: TravelerTypeChild, Name: "Kavi", Age: age(9)},
		{Type: TravelerTypeAdult, Name: "Ravi", Age: age(36)},
	}

	group := GroupTravelers(rows)

	require.Len(t, group.Adults, 2)
	require.Len(t, group.Children, 1)
	assert.Equal(t, "Anu", group.Adults[0].Name)
	assert.Equal(t, "Kavi", group.Children[0].Name)
}

func TestGroupTravelersEmptySerializesAsArrays(t *testing.T) {
	group := GroupTravelers(nil)

	b, err := json.Marshal(group)
	require.NoError(t, err)
	assert.JSONEq(t, `{"adults":[],"children":[]}`, string(b))
}

func TestDateOnlyRoundTrip(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15"`), &d))
	assert.Equal(t, 2026, d.Year())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(out))
}

func TestDateOnlyRejectsBadFormat(t *testing.T) {
	var d DateOnly
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2026"`), &d))
}

func TestDateOnlyEmptyIsZero(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}

func TestStringListScanAndValue(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, l)

	v, err := l.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, v.(string))
}

func TestStringListNilScansToEmpty(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(nil))
	assert.NotNil(t, l)
	assert.Empty(t, l)

	var n StringList
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v.(string))
}
