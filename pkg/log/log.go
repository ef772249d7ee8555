// Package log logrus 기반의 애플리케이션 로깅 패키지입니다.
//
// 모든 로그는 component 필드를 포함하도록 WithComponent / WithComponentAndFields 헬퍼를 통해 기록합니다.
//
//	applog.WithComponentAndFields("hook.dispatcher", applog.Fields{
//	    "hook_id": id,
//	    "event":   kind,
//	}).Info("훅 발송 완료")
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Hook          = logrus.Hook
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
	JSONFormatter = logrus.JSONFormatter
)

// componentKey 로그 엔트리에서 발생 위치(패키지/모듈)를 나타내는 필드 이름
const componentKey = "component"

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// 전달된 fields 맵은 변경되지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[componentKey] = component

	return logrus.WithFields(merged)
}

// WithContext 컨텍스트를 포함한 로그 Entry를 반환합니다.
func WithContext(ctx context.Context) *Entry {
	return logrus.WithContext(ctx)
}

// WithFields 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// SetDebugMode debug 여부에 따라 전역 로그 레벨을 조정합니다.
//   - true: Trace (모든 로그)
//   - false: Info
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

func StandardLogger() *Logger { return logrus.StandardLogger() }

func SetLevel(level Level) { logrus.SetLevel(level) }

func GetLevel() Level { return logrus.GetLevel() }

func SetOutput(out io.Writer) { logrus.SetOutput(out) }

func SetFormatter(formatter Formatter) { logrus.SetFormatter(formatter) }

func IsLevelEnabled(level Level) bool { return logrus.IsLevelEnabled(level) }

func ParseLevel(level string) (Level, error) { return logrus.ParseLevel(level) }
