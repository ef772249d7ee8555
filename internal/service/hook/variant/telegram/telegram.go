// Package telegram Telegram Bot API로 채팅방에 메시지를 보내는 훅 종류(telegram_v1)를 제공합니다.
package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/delivery"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant/summary"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/darkkaiser/team-hooks/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// component 로깅용 컴포넌트 이름
const component = "hook.telegram"

const (
	Name        = "telegram_v1"
	ServiceName = "Telegram"
)

const (
	RuleBotToken    = "bot_token"
	RuleChatID      = "chat_id"
	RuleAPIEndpoint = "api_endpoint"
)

var (
	// botTokenPattern 봇 식별자(숫자)와 비밀키가 콜론으로 구분된 토큰 (예: 123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
	botTokenPattern = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

	// chatIDPattern 숫자 채팅방 ID 또는 @채널이름
	chatIDPattern = regexp.MustCompile(`^(-?\d+|@[A-Za-z][A-Za-z0-9_]{3,})$`)
)

func init() {
	variant.MustRegister(variant.Default(), Spec())
}

type properties struct {
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`

	// APIEndpoint "https://api.telegram.org/bot%s/%s" 형식의 Bot API 주소 (토큰, 메서드 순)
	APIEndpoint string `json:"api_endpoint"`
}

// Notifier Telegram 메시지 전송기입니다.
type Notifier struct {
	token       string
	chatID      int64
	channel     string
	apiEndpoint string
	maskedURL   string
	transport   delivery.Transport
}

// Spec telegram_v1 훅 종류 선언을 반환합니다.
func Spec() variant.Spec[*Notifier] {
	schema := property.NewSchema().
		Define("bot_token").
		Define("chat_id").
		Define("api_endpoint", property.WithDefault(tgbotapi.APIEndpoint)).
		Validate("bot_token",
			property.Presence(),
			property.Predicate(RuleBotToken, matchTrimmed(botTokenPattern), "텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)", property.AllowBlank()),
		).
		Validate("chat_id",
			property.Presence(),
			property.Predicate(RuleChatID, matchTrimmed(chatIDPattern), "숫자 채팅방 ID 또는 @채널이름이어야 합니다", property.AllowBlank()),
		).
		Validate("api_endpoint",
			property.Presence(),
			property.Predicate(RuleAPIEndpoint, isAPIEndpoint, "토큰과 메서드 자리에 %s 를 하나씩 가진 http 또는 https 절대 URL이어야 합니다", property.AllowBlank()),
		)

	handlers := make(map[contract.EventKind]variant.Handler[*Notifier])
	for _, kind := range contract.AllEventKinds() {
		handlers[kind] = (*Notifier).notify
	}

	return variant.Spec[*Notifier]{
		Name:        Name,
		ServiceName: ServiceName,
		Schema:      schema,
		New:         newNotifier,
		Handlers:    handlers,
		Ping:        (*Notifier).ping,
	}
}

func matchTrimmed(re *regexp.Regexp) func(any) bool {
	return func(v any) bool {
		return re.MatchString(strings.TrimSpace(textOf(v)))
	}
}

// textOf 설정 파일의 JSON 숫자(float64)는 지수 표기 없이 정수 문자열로 바꿉니다.
func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// isAPIEndpoint v가 fmt 동사로 %s 두 개만 가진 http(s) 절대 URL 템플릿인지 검사합니다.
func isAPIEndpoint(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if strings.Count(s, "%") != 2 || strings.Count(s, "%s") != 2 {
		return false
	}
	return property.IsHTTPURL(strings.ReplaceAll(s, "%s", "x"))
}

func newNotifier(cfg *property.Configuration, env variant.Env) (*Notifier, error) {
	p, err := property.Decode[properties](cfg)
	if err != nil {
		return nil, err
	}

	n := &Notifier{
		token:       strings.TrimSpace(p.BotToken),
		apiEndpoint: strings.TrimSpace(p.APIEndpoint),
		transport:   env.Transport,
	}
	n.maskedURL = strutil.MaskURL(fmt.Sprintf(n.apiEndpoint, n.token, "sendMessage"))

	chatID := strings.TrimSpace(p.ChatID)
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		n.chatID = id
	} else {
		n.channel = chatID
	}

	return n, nil
}

func (n *Notifier) ping(ctx context.Context) error {
	return n.send(ctx, html.EscapeString(summary.PingText))
}

func (n *Notifier) notify(ctx context.Context, event *contract.Event) error {
	return n.send(ctx, format(summary.Of(event)))
}

func (n *Notifier) newMessage(text string) tgbotapi.MessageConfig {
	var msg tgbotapi.MessageConfig
	if n.channel != "" {
		msg = tgbotapi.NewMessageToChannel(n.channel, text)
	} else {
		msg = tgbotapi.NewMessage(n.chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}

func (n *Notifier) send(ctx context.Context, text string) error {
	client := &botClient{ctx: ctx, transport: n.transport}
	bot := &tgbotapi.BotAPI{Token: n.token, Client: client}
	bot.SetAPIEndpoint(n.apiEndpoint)

	sent, err := bot.Send(n.newMessage(text))
	if err != nil {
		if _, ok := delivery.AsError(err); ok {
			return err
		}

		var apiErr *tgbotapi.Error
		switch {
		case errors.As(err, &apiErr):
			return &delivery.Error{
				URL:   n.maskedURL,
				Cause: apperrors.Newf(apperrors.ExecutionFailed, "Telegram API가 요청을 거부했습니다 (error_code: %d): %s", apiErr.Code, apiErr.Message),
			}
		case client.resp == nil:
			return &delivery.Error{
				URL:   n.maskedURL,
				Cause: apperrors.Wrap(delivery.MaskURLError(err), apperrors.InvalidInput, "Telegram 요청을 생성하는 데 실패했습니다"),
			}
		}

		// 2xx 응답을 받았으므로 전송은 성공한 것으로 보고, 해석하지 못한 응답만 기록한다.
		applog.WithComponentAndFields(component, applog.Fields{
			"status_code": client.resp.StatusCode,
			"error":       err,
		}).Warn("Telegram 응답 본문을 해석하지 못했습니다")
	}

	fields := applog.Fields{
		"chat_id":    n.chatTarget(),
		"message_id": sent.MessageID,
	}
	if client.resp != nil {
		fields["status_code"] = client.resp.StatusCode
		fields["latency_ms"] = client.resp.Latency.Milliseconds()
	}
	applog.WithComponentAndFields(component, fields).Debug("Telegram 메시지 전송 완료")

	return nil
}

func (n *Notifier) chatTarget() string {
	if n.channel != "" {
		return n.channel
	}
	return strconv.FormatInt(n.chatID, 10)
}

// botClient tgbotapi.BotAPI가 만든 HTTP 요청을 delivery.Transport로 전달하는 tgbotapi.HTTPClient 구현입니다.
// 요청마다 새로 만들어 사용하며, 마지막으로 받은 2xx 응답을 resp에 보관합니다.
type botClient struct {
	ctx       context.Context
	transport delivery.Transport
	resp      *delivery.Response
}

func (c *botClient) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.Internal, "Telegram 요청 본문을 읽는 데 실패했습니다")
		}
		body = b
	}

	resp, err := delivery.Submit(c.ctx, c.transport, &delivery.Request{
		URL:         req.URL.String(),
		ContentType: req.Header.Get("Content-Type"),
		Body:        body,
	})
	if err != nil {
		return nil, err
	}
	c.resp = resp

	return &http.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       io.NopCloser(bytes.NewReader(resp.Body)),
		Request:    req,
	}, nil
}

// format 요약을 Telegram HTML 메시지로 만듭니다.
func format(s summary.Summary) string {
	var sb strings.Builder
	sb.WriteString("<b>" + html.EscapeString(s.Headline) + "</b>")

	if s.URL != "" {
		label := s.Title
		if label == "" {
			label = s.URL
		}
		fmt.Fprintf(&sb, "\n<a href=\"%s\">%s</a>", html.EscapeString(s.URL), html.EscapeString(label))
	} else if s.Title != "" {
		sb.WriteString("\n" + html.EscapeString(s.Title))
	}

	if s.Excerpt != "" {
		sb.WriteString("\n\n" + html.EscapeString(s.Excerpt))
	}

	return sb.String()
}
