package notifier

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Telegram caps messages at 4096 characters; longer reports are split.
const maxMessageLen = 4096

// TelegramNotifier sends messages to a fixed chat via the Telegram Bot API.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authenticates the bot, with optional proxy support.
// chatID is the numeric chat identifier as a string.
func NewTelegramNotifier(botToken, chatID, proxyURL string) (*TelegramNotifier, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse chat id %q: %w", chatID, err)
	}

	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}

	bot, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("authenticate telegram bot: %w", err)
	}
	log.Info().Str("username", bot.Self.UserName).Msg("telegram bot authorized")

	return &TelegramNotifier{bot: bot, chatID: id}, nil
}

// Send delivers text to the configured chat as HTML, splitting messages that
// exceed the Telegram length ceiling.
func (t *TelegramNotifier) Send(text string) error {
	for _, chunk := range SplitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(t.chatID, chunk)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true
		if _, err := t.bot.Send(msg); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
	return nil
}

// SendTo delivers text to an arbitrary chat, used for command replies.
func (t *TelegramNotifier) SendTo(chatID int64, text string) error {
	for _, chunk := range SplitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true
		if _, err := t.bot.Send(msg); err != nil {
			return fmt.Errorf("send reply: %w", err)
		}
	}
	return nil
}

// SendWithRetry sends with exponential backoff, up to five attempts, giving
// up early when the context is cancelled.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(time.Second),
	), 4), ctx)

	return backoff.RetryNotify(
		func() error { return t.Send(text) },
		policy,
		func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retry_in", next).Msg("telegram send failed, retrying")
		},
	)
}

// SplitMessage cuts text into chunks no longer than limit, preferring to
// break at line boundaries. A single line longer than the limit is cut mid
// line, never mid rune.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		for len(line) > limit {
			if b.Len() > 0 {
				chunks = append(chunks, b.String())
				b.Reset()
			}
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		// +1 for the newline separator
		if b.Len() > 0 && b.Len()+len(line)+1 > limit {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
