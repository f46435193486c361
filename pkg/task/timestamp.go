package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// layoutISO matches what a browser writes with Date.toISOString.
const layoutISO = "2006-01-02T15:04:05.000Z"

type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = time.Parse(time.RFC3339, timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(layoutISO)
}
