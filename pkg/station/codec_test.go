package station

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflare/stationd/internal/testutil"
)

func TestDecodeObservation(t *testing.T) {
	raw := []byte(`{"station_id":"USR0000WDDG","date":"2021-07-11","tmax":344,"tmin":210}`)

	rec, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, rec.Observation)

	assert.Equal(t, "USR0000WDDG", rec.StationID)
	assert.Equal(t, "2021-07-11", rec.Observation.DateString())
	assert.Equal(t, int32(344), rec.Observation.TMax)
	require.NotNil(t, rec.Observation.TMin)
	assert.Equal(t, int32(210), *rec.Observation.TMin)
}

func TestDecodeOptionalFields(t *testing.T) {
	rec, err := Decode([]byte(`{"station_id":"US1WIDA0007","date":"2021-07-11","tmax":300}`))
	require.NoError(t, err)
	require.NotNil(t, rec.Observation)
	assert.Nil(t, rec.Observation.TMin)
	assert.Empty(t, rec.Observation.Name)

	rec, err = Decode([]byte(`{"station_id":"US1WIDA0007","name":"MADISON 1.7 NW","date":"2021-07-11","tmax":300}`))
	require.NoError(t, err)
	assert.Equal(t, "MADISON 1.7 NW", rec.Observation.Name)
}

func TestDecodeMetadataOnly(t *testing.T) {
	rec, err := Decode([]byte(`{"station_id":"USR0000WDDG","name":"DODGE WISCONSIN"}`))
	require.NoError(t, err)

	assert.Nil(t, rec.Observation)
	assert.Equal(t, "USR0000WDDG", rec.StationID)
	assert.Equal(t, "DODGE WISCONSIN", rec.Name)
}

func TestDecodeMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		field string
	}{
		{name: "empty payload", raw: ``, field: "payload"},
		{name: "not json", raw: `tmax,344`, field: "payload"},
		{name: "json array", raw: `[1,2,3]`, field: "payload"},
		{name: "missing station id", raw: `{"date":"2021-07-11","tmax":344}`, field: "station_id"},
		{name: "blank station id", raw: `{"station_id":"  ","date":"2021-07-11","tmax":344}`, field: "station_id"},
		{name: "unparseable date", raw: `{"station_id":"X","date":"07/11/2021","tmax":344}`, field: "date"},
		{name: "tmax present but date missing", raw: `{"station_id":"X","tmax":344}`, field: "date"},
		{name: "date present but tmax missing", raw: `{"station_id":"X","date":"2021-07-11"}`, field: "tmax"},
		{name: "tmax not numeric", raw: `{"station_id":"X","date":"2021-07-11","tmax":"hot"}`, field: "payload"},
		{name: "neither observation nor name", raw: `{"station_id":"X"}`, field: "name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.raw))
			require.Error(t, err)

			var derr *DecodeError
			require.True(t, errors.As(err, &derr), "expected *DecodeError, got %T", err)
			assert.Equal(t, tc.field, derr.Field)
			assert.Equal(t, []byte(tc.raw), derr.Raw)
		})
	}
}

func TestEncodeObservationRoundTrip(t *testing.T) {
	tmin := int32(-55)
	obs := Observation{
		ID:   "USC00475516",
		Date: testutil.MustDate(t, "2021-01-30"),
		Name: "MOUNT HOREB",
		TMin: &tmin,
		TMax: 17,
	}

	raw, err := EncodeObservation(obs)
	require.NoError(t, err)

	rec, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, rec.Observation)
	assert.Equal(t, obs, *rec.Observation)
}

func TestEncodeName(t *testing.T) {
	raw, err := EncodeName("USR0000WDDG", "DODGE WISCONSIN")
	require.NoError(t, err)

	rec, err := Decode(raw)
	require.NoError(t, err)
	assert.Nil(t, rec.Observation)
	assert.Equal(t, "DODGE WISCONSIN", rec.Name)
}
