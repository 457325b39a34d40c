package event

import "encoding/json"

// DecodePayload extracts an event payload as T. Payloads published
// through the in-process bus are already the right struct and assert
// directly; payloads replayed from the dead letter log arrive as
// map[string]interface{} and go through a JSON round-trip instead.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
