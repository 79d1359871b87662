// internal/domain/homework/response.go
package homework

import "encoding/json"

// CheckResponse validates the raw API response against the documented
// shape and returns the homeworks list unchanged (order preserved, may
// be empty). The checks run in a fixed order and fail with the kind of
// the first violation.
func CheckResponse(raw any) ([]any, error) {
	response, ok := raw.(map[string]any)
	if !ok {
		return nil, newValidationError(KindBadType, "the response must be an object, got %T", raw)
	}

	rawHomeworks, ok := response["homeworks"]
	if !ok {
		return nil, newValidationError(KindMissingKey, `the "homeworks" key not found`)
	}
	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return nil, newValidationError(KindBadType, `the "homeworks" value must be a list`)
	}

	rawDate, ok := response["current_date"]
	if !ok {
		return nil, newValidationError(KindMissingKey, `the "current_date" key not found`)
	}
	if rawDate == nil {
		return nil, newValidationError(KindBadValue, `the "current_date" value not found`)
	}
	if _, ok := intValue(rawDate); !ok {
		return nil, newValidationError(KindBadType, `the "current_date" value must be an integer`)
	}

	return homeworks, nil
}

// CurrentDate returns the cursor value carried by a response that
// already passed CheckResponse.
func CurrentDate(raw any) (int64, error) {
	response, ok := raw.(map[string]any)
	if !ok {
		return 0, newValidationError(KindBadType, "the response must be an object, got %T", raw)
	}
	date, ok := intValue(response["current_date"])
	if !ok {
		return 0, newValidationError(KindBadType, `the "current_date" value must be an integer`)
	}
	return date, nil
}

// intValue accepts the integer forms a response value can arrive in.
// JSON bodies are decoded with json.Decoder.UseNumber, so a fractional
// number fails the json.Number conversion and is rejected.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
