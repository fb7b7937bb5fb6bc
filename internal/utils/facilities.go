package utils

import "encoding/json"

// Venue facilities are persisted as a JSON array of tag strings inside
// a TEXT column.  The mobile client has been seen writing malformed
// values there, so decoding is deliberately forgiving: anything that is
// not a valid JSON string array comes back as an empty list.

// DecodeFacilities parses the stored facilities text into a list of
// tags.  Empty input and malformed JSON both yield an empty, non-nil
// slice so responses always serialize as [].
func DecodeFacilities(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

// EncodeFacilities serializes a list of tags into the stored text form.
// A nil list encodes as an empty JSON array.
func EncodeFacilities(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}
