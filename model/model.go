package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// TimestampLayout is the submitted_at format, minute precision in local time.
const TimestampLayout = "2006-01-02 15:04"

// FormatID renders an identifier the way it travels over the wire.
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Optional maps an empty string to a NULL column.
func Optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// NullString is a JSON string field that remembers whether it was sent.
// Set with a nil Value means the body carried an explicit null.
type NullString struct {
	Set   bool
	Value *string
}

// Null is a present field that clears the column.
func Null() NullString {
	return NullString{Set: true}
}

// Some is a present field holding value.
func Some(value string) NullString {
	return NullString{Set: true, Value: &value}
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

func (n NullString) column() interface{} {
	if n.Value == nil {
		return nil
	}
	return *n.Value
}
