package station

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DecodeError reports a stream message that failed validation. It carries the
// raw payload and the violated field so the consumer can dead-letter it with
// context instead of halting ingestion.
type DecodeError struct {
	Field string
	Raw   []byte
	cause error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("decode record: field %q: %v", e.Field, e.cause)
	}
	return fmt.Sprintf("decode record: field %q invalid", e.Field)
}

func (e *DecodeError) Unwrap() error { return e.cause }

func decodeErr(field string, raw []byte, cause error) *DecodeError {
	return &DecodeError{Field: field, Raw: raw, cause: cause}
}

// Record is a validated stream message. Observation is nil for metadata-only
// messages, which carry just the station's static name (the loader publishes
// these when it replays the stations file).
type Record struct {
	StationID   string
	Name        string
	Observation *Observation
}

// wireRecord is the JSON shape published on the observation topic. Pointers
// distinguish missing fields from zero values.
type wireRecord struct {
	StationID string `json:"station_id"`
	Date      string `json:"date,omitempty"`
	Name      string `json:"name,omitempty"`
	TMin      *int32 `json:"tmin,omitempty"`
	TMax      *int32 `json:"tmax,omitempty"`
}

// Decode validates a raw stream payload. A message carrying a date must be a
// complete observation (parseable date, numeric tmax); a message with neither
// date nor tmax must carry a name. It is pure: no I/O, no shared state. Any
// validation failure returns a *DecodeError; malformed input never panics.
func Decode(raw []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(raw, &w); err != nil {
		return Record{}, decodeErr("payload", raw, err)
	}

	id := strings.TrimSpace(w.StationID)
	if id == "" {
		return Record{}, decodeErr("station_id", raw, fmt.Errorf("empty"))
	}
	name := strings.TrimSpace(w.Name)

	if w.Date == "" && w.TMax == nil {
		if name == "" {
			return Record{}, decodeErr("name", raw, fmt.Errorf("metadata message without name"))
		}
		return Record{StationID: id, Name: name}, nil
	}

	date, err := time.Parse(DateLayout, w.Date)
	if err != nil {
		return Record{}, decodeErr("date", raw, err)
	}
	if w.TMax == nil {
		return Record{}, decodeErr("tmax", raw, fmt.Errorf("missing"))
	}

	return Record{
		StationID: id,
		Name:      name,
		Observation: &Observation{
			ID:   id,
			Date: date,
			Name: name,
			TMin: w.TMin,
			TMax: *w.TMax,
		},
	}, nil
}

// EncodeObservation renders an Observation in the wire format. Used by the
// loader's replay path and by tests; Decode(Encode(o)) round-trips.
func EncodeObservation(o Observation) ([]byte, error) {
	tmax := o.TMax
	return json.Marshal(wireRecord{
		StationID: o.ID,
		Date:      o.DateString(),
		Name:      o.Name,
		TMin:      o.TMin,
		TMax:      &tmax,
	})
}

// EncodeName renders a metadata-only message carrying the static name.
func EncodeName(stationID, name string) ([]byte, error) {
	return json.Marshal(wireRecord{StationID: stationID, Name: name})
}
