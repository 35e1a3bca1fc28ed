package handler

import (
	"bytes"
	"encoding/json"

	"mergington/internal/activities/models"
)

// MessageResponse is the success envelope for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityMap marshals activities as a JSON object keyed by activity name,
// preserving registry insertion order. encoding/json sorts map keys, which
// would lose the seeded ordering.
type ActivityMap []*models.Activity

func (m ActivityMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		record, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		buf.Write(record)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
