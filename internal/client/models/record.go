package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// RecordID is the server-assigned identifier of a Record. The backend may
// send it as a JSON number or a JSON string; the client treats it as opaque
// and only ever prints it.
type RecordID struct {
	raw     string
	numeric bool
}

// IntID returns a numeric RecordID.
func IntID(n int64) RecordID {
	return RecordID{raw: fmt.Sprintf("%d", n), numeric: true}
}

// StringID returns a string RecordID.
func StringID(s string) RecordID {
	return RecordID{raw: s}
}

// String returns the identifier without quotes. Numbers are printed in their
// shortest form, strings verbatim.
func (id RecordID) String() string {
	return id.raw
}

// IsZero reports whether the id was never set.
func (id RecordID) IsZero() bool {
	return id.raw == "" && !id.numeric
}

func (id RecordID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

func (id *RecordID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New("empty record id")
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		raw, err := formatNumber(n)
		if err != nil {
			return err
		}
		*id = RecordID{raw: raw, numeric: true}
		return nil
	default:
		return fmt.Errorf("unsupported record id %s", b)
	}
}

// formatNumber prints a numeric id in its shortest form, so 1.0 and 1e3
// become "1" and "1000".
func formatNumber(n json.Number) (string, error) {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	f, err := n.Float64()
	if err != nil {
		return "", fmt.Errorf("record id %s: %w", n, err)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// Record is one server-held item. The client never mutates a Record; it only
// appends new content and re-reads the whole list.
type Record struct {
	ID      RecordID `json:"id"`
	Content string   `json:"content"`
}

// AddRequest is the body of a write request.
type AddRequest struct {
	Content string `json:"content"`
}

// AddResponse is what the backend returns for a successful write. Only
// Message is guaranteed; Item is present when the backend echoes the record.
type AddResponse struct {
	Message string  `json:"message"`
	Item    *Record `json:"item,omitempty"`
}
