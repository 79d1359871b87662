package homework

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors the production decoding path: json.Decoder with
// UseNumber, so numeric values arrive as json.Number.
func decode(t *testing.T, body string) any {
	t.Helper()
	decoder := json.NewDecoder(strings.NewReader(body))
	decoder.UseNumber()
	var raw any
	require.NoError(t, decoder.Decode(&raw))
	return raw
}

func TestCheckResponse_Valid(t *testing.T) {
	raw := decode(t, `{
		"homeworks": [
			{"homework_name": "hw2", "status": "reviewing"},
			{"homework_name": "hw1", "status": "approved"}
		],
		"current_date": 1000
	}`)

	homeworks, err := CheckResponse(raw)
	require.NoError(t, err)
	require.Len(t, homeworks, 2)

	// Order is preserved; the freshest homework stays at index 0.
	first, ok := homeworks[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hw2", first["homework_name"])
}

func TestCheckResponse_EmptyHomeworks(t *testing.T) {
	homeworks, err := CheckResponse(decode(t, `{"homeworks": [], "current_date": 1000}`))
	require.NoError(t, err)
	assert.Empty(t, homeworks)
}

func TestCheckResponse_Violations(t *testing.T) {
	cases := []struct {
		name string
		body string
		kind ErrorKind
	}{
		{"not an object", `[{"homeworks": []}]`, KindBadType},
		{"homeworks key missing", `{"current_date": 1000}`, KindMissingKey},
		{"homeworks not a list", `{"homeworks": {"homework_name": "hw1"}, "current_date": 1000}`, KindBadType},
		{"current_date key missing", `{"homeworks": []}`, KindMissingKey},
		{"current_date null", `{"homeworks": [], "current_date": null}`, KindBadValue},
		{"current_date not a number", `{"homeworks": [], "current_date": "1000"}`, KindBadType},
		{"current_date fractional", `{"homeworks": [], "current_date": 1000.5}`, KindBadType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			homeworks, err := CheckResponse(decode(t, tc.body))
			require.Error(t, err)
			assert.Nil(t, homeworks)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.kind, validationErr.Kind)
		})
	}
}

func TestCurrentDate(t *testing.T) {
	date, err := CurrentDate(decode(t, `{"homeworks": [], "current_date": 1000}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), date)
}

func TestParseStatus_Message(t *testing.T) {
	raw := decode(t, `{"homework_name": "hw1", "status": "approved"}`)

	message, err := ParseStatus(raw)
	require.NoError(t, err)
	assert.Equal(t, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`, message)
}

func TestParseStatus_AllVerdicts(t *testing.T) {
	for status, verdict := range Verdicts {
		message, err := ParseStatus(map[string]any{
			"homework_name": "hw1",
			"status":        status,
		})
		require.NoError(t, err)
		assert.Contains(t, message, verdict)
	}
}

func TestParseStatus_Failures(t *testing.T) {
	cases := []struct {
		name   string
		record any
		kind   ErrorKind
	}{
		{"not an object", "hw1", KindBadType},
		{"homework_name missing", map[string]any{"status": "approved"}, KindMissingField},
		{"status missing", map[string]any{"homework_name": "hw1"}, KindMissingField},
		{"status unknown", map[string]any{"homework_name": "hw1", "status": "unknown_code"}, KindUnknownStatus},
		{"status not a string", map[string]any{"homework_name": "hw1", "status": 5}, KindUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			message, err := ParseStatus(tc.record)
			require.Error(t, err)
			assert.Empty(t, message)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.kind, validationErr.Kind)
		})
	}
}
