package middleware

import (
	"io"

	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/gommon/log"
)

// echoComponent Echo 내부 로그에 붙는 컴포넌트 이름
const echoComponent = "api.echo"

// echoToAppLevel Echo 로그 레벨과 애플리케이션 로그 레벨의 대응표. log.OFF는 대응하는 레벨이 없다.
var echoToAppLevel = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

// Logger Echo의 log.Logger 인터페이스를 애플리케이션 로거로 연결하는 어댑터입니다.
// 모든 로그에는 component=api.echo 필드가 붙습니다.
type Logger struct {
	*applog.Logger
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", echoComponent)
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix, SetPrefix, SetHeader Echo의 출력 형식 기능은 사용하지 않습니다.
func (l Logger) Prefix() string { return "" }

func (l Logger) SetPrefix(string) {}

func (l Logger) SetHeader(string) {}

// Level 애플리케이션 로그 레벨을 Echo 로그 레벨로 변환합니다. 대응하는 레벨이 없으면 OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	for lvl, appLevel := range echoToAppLevel {
		if appLevel == l.Logger.Level {
			return lvl
		}
	}
	return log.OFF
}

func (l Logger) SetLevel(lvl log.Lvl) {
	if appLevel, ok := echoToAppLevel[lvl]; ok {
		l.Logger.SetLevel(appLevel)
	}
}

func (l Logger) Print(i ...interface{})                    { l.entry().Print(i...) }
func (l Logger) Printf(format string, args ...interface{}) { l.entry().Printf(format, args...) }
func (l Logger) Printj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...interface{})                    { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, args ...interface{}) { l.entry().Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...interface{})                    { l.entry().Info(i...) }
func (l Logger) Infof(format string, args ...interface{}) { l.entry().Infof(format, args...) }
func (l Logger) Infoj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...interface{})                    { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, args ...interface{}) { l.entry().Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...interface{})                    { l.entry().Error(i...) }
func (l Logger) Errorf(format string, args ...interface{}) { l.entry().Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...interface{})                    { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, args ...interface{}) { l.entry().Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...interface{})                    { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, args ...interface{}) { l.entry().Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON)                         { l.entry().WithFields(applog.Fields(j)).Panic() }
