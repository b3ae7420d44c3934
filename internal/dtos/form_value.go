package dtos

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FormValue holds a raw field as submitted. HTML forms send every field as
// a string while JSON clients send numbers, so both decode into the same
// text and the service parses it.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(b)
	return nil
}

func (v FormValue) String() string { return strings.TrimSpace(string(v)) }

func (v FormValue) Empty() bool { return v.String() == "" }

func (v FormValue) Int64() (int64, error) {
	return strconv.ParseInt(v.String(), 10, 64)
}

func (v FormValue) Float64() (float64, error) {
	return strconv.ParseFloat(v.String(), 64)
}
