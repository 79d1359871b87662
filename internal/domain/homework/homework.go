// internal/domain/homework/homework.go
package homework

import "fmt"

// Verdicts maps a homework status code to its human-readable verdict.
var Verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus extracts the status from a single homework record and
// renders the notification message for the chat.
func ParseStatus(record any) (string, error) {
	hw, ok := record.(map[string]any)
	if !ok {
		return "", newValidationError(KindBadType, "the homework record must be an object, got %T", record)
	}

	name, ok := hw["homework_name"]
	if !ok {
		return "", newValidationError(KindMissingField, `the "homework_name" field is missing`)
	}
	rawStatus, ok := hw["status"]
	if !ok {
		return "", newValidationError(KindMissingField, `the "status" field is missing`)
	}

	status, _ := rawStatus.(string)
	verdict, ok := Verdicts[status]
	if !ok {
		return "", newValidationError(KindUnknownStatus, "unknown homework status %q", fmt.Sprint(rawStatus))
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%v\". %s", name, verdict), nil
}
