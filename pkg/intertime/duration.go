package intertime

import (
	"encoding/json"
	"time"
)

// Duration wraps time.Duration so it reads and writes as a human string ("30s", "1m30s")
// in JSON payloads and in environment variables.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.SetValue(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SetValue satisfies cleanenv.Setter so env values like "5s" parse directly. An empty
// value means zero.
func (d *Duration) SetValue(s string) error {
	if s == "" {
		*d = 0
		return nil
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(duration)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
