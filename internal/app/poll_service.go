// internal/app/poll_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram" // Import from domain
	"homework_status_bot/internal/infra/practicum"
	itg "homework_status_bot/internal/infra/telegram" // For the rejection check

	"github.com/sirupsen/logrus"
)

// StatusProvider fetches raw homework status data starting from the
// given cursor value.
type StatusProvider interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// PollService runs the polling cycle against the homework statuses API
// and relays status changes to a Telegram chat. The cursor and the last
// sent message live in process memory only; a restart resets both.
type PollService struct {
	api            StatusProvider
	telegramClient domainTelegram.Client // Use the interface from the domain package
	chatID         int64
	logger         *logrus.Logger

	fromDate    int64
	lastMessage string
}

func NewPollService(
	api StatusProvider,
	tc domainTelegram.Client,
	chatID int64,
	logger *logrus.Logger,
) *PollService {
	return &PollService{
		api:            api,
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
		fromDate:       time.Now().Unix(),
	}
}

// RunCycle performs a single poll: fetch, validate, extract the latest
// homework status and notify the chat when it changed. Any error is
// converted into a diagnostic notification, deduplicated the same way
// as status messages; the cursor never advances on a failed cycle.
func (s *PollService) RunCycle(ctx context.Context) {
	if err := s.pollOnce(ctx); err != nil {
		diagnostic := "Сбой в работе программы: " + describeFailure(err)
		s.logger.Error(diagnostic)
		if diagnostic != s.lastMessage {
			if s.sendMessage(diagnostic) == nil {
				s.lastMessage = diagnostic
			}
		}
	}
}

func (s *PollService) pollOnce(ctx context.Context) error {
	raw, err := s.api.HomeworkStatuses(ctx, s.fromDate)
	if err != nil {
		return err
	}

	homeworks, err := homework.CheckResponse(raw)
	if err != nil {
		return err
	}
	currentDate, err := homework.CurrentDate(raw)
	if err != nil {
		return err
	}

	if len(homeworks) == 0 {
		s.logger.Debug("Status not updated")
		return nil
	}

	// Only the most recent homework is ever reported per cycle.
	message, err := homework.ParseStatus(homeworks[0])
	if err != nil {
		return err
	}
	if message == s.lastMessage {
		return nil
	}
	if err := s.sendMessage(message); err != nil {
		return fmt.Errorf("error sending message to Telegram: %w", err)
	}

	// The cursor advances only after the derived message was dispatched.
	s.lastMessage = message
	s.fromDate = currentDate
	return nil
}

// sendMessage delivers a message to the configured chat. A malformed
// request rejection from the Bot API is logged and swallowed: the send
// still counts as successful, so the loop does not retry it forever.
func (s *PollService) sendMessage(message string) error {
	err := s.telegramClient.SendMessage(s.chatID, message)
	switch {
	case err == nil:
		s.logger.Debug("Bot sent message to Telegram")
	case itg.IsRejected(err):
		s.logger.Errorf("Error \"%v\" when sending a message to Telegram", err)
	default:
		return err
	}
	return nil
}

// describeFailure renders a cycle error into the diagnostic line for
// the chat, matching on the failure class.
func describeFailure(err error) string {
	var endpointErr *practicum.EndpointError
	if errors.As(err, &endpointErr) {
		return endpointErr.Error()
	}

	var validationErr *homework.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Kind {
		case homework.KindMissingField, homework.KindUnknownStatus:
			return fmt.Sprintf("unexpected homework data: %s", validationErr.Detail)
		default:
			return fmt.Sprintf("unexpected API response: %s", validationErr.Detail)
		}
	}

	return err.Error()
}
