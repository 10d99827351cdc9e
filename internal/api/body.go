package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BodyMode selects how a request body is serialised.
type BodyMode int

const (
	// BodyFull sends every field that is set.
	BodyFull BodyMode = iota
	// BodyChanges sends only fields that changed since the value was tracked.
	// Values that are not ChangeTracked fall back to BodyFull.
	BodyChanges
)

func (m BodyMode) String() string {
	if m == BodyChanges {
		return "changes"
	}
	return "full"
}

// Tracker records the state a resource had when it was loaded or created.
// Embed it (tagged `json:"-"`) in a resource struct to make the struct
// ChangeTracked.
type Tracker struct {
	baseline map[string]json.RawMessage
}

func (t *Tracker) tracker() *Tracker { return t }

// Tracked reports whether a baseline has been recorded.
func (t *Tracker) Tracked() bool {
	return t.baseline != nil
}

// ChangeTracked is implemented by pointers to structs embedding Tracker.
type ChangeTracked interface {
	tracker() *Tracker
}

// RequiredFielder lists top-level JSON keys that are sent on every update,
// changed or not.
type RequiredFielder interface {
	RequiredFields() []string
}

// Track records v's current state as the baseline for Changes. The client
// tracks every ChangeTracked value it decodes; call Track on values built
// locally to get delta updates for them too.
func Track(v ChangeTracked) error {
	fields, err := topLevelFields(v)
	if err != nil {
		return err
	}
	v.tracker().baseline = fields
	return nil
}

// Changes returns the top-level fields of v whose JSON differs from the
// tracked baseline, plus v's required fields. Untracked values return
// every set field.
func Changes(v ChangeTracked) (map[string]json.RawMessage, error) {
	fields, err := topLevelFields(v)
	if err != nil {
		return nil, err
	}
	baseline := v.tracker().baseline
	if baseline == nil {
		return fields, nil
	}

	changed := make(map[string]json.RawMessage)
	for key, current := range fields {
		if previous, ok := baseline[key]; ok && bytes.Equal(previous, current) {
			continue
		}
		changed[key] = current
	}
	if rf, ok := v.(RequiredFielder); ok {
		for _, key := range rf.RequiredFields() {
			if current, ok := fields[key]; ok {
				changed[key] = current
			}
		}
	}
	return changed, nil
}

func topLevelFields(v any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%T does not encode to a JSON object: %w", v, err)
	}
	return fields, nil
}

// RequestBody returns the JSON that a request would carry for body under
// mode.
func RequestBody(body any, mode BodyMode) (json.RawMessage, error) {
	data, err := encodeBody(body, mode)
	return json.RawMessage(data), err
}

// encodeBody serialises a request body according to mode.
func encodeBody(body any, mode BodyMode) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	}

	if tracked, ok := body.(ChangeTracked); ok && mode == BodyChanges {
		changed, err := Changes(tracked)
		if err != nil {
			return nil, err
		}
		return json.Marshal(changed)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return data, nil
}

// trackDecoded sets the baseline on freshly decoded values.
func trackDecoded(v any) {
	if tracked, ok := v.(ChangeTracked); ok {
		_ = Track(tracked)
	}
}
