package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// 프로세스 생명주기 동안 Setup은 한 번만 적용되며, 이후 호출은 최초 결과를 그대로 돌려줍니다.
	setupOnce      sync.Once
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로거를 초기화합니다. 반환된 Closer는 종료 시 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}
	opts = opts.withDefaults()

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	logrus.SetLevel(opts.Level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 출력은 router가 담당하므로 logrus 자체의 포맷팅/출력은 비활성화한다.
	logrus.SetFormatter(discardFormatter{})
	logrus.SetOutput(io.Discard)

	mainWriter := newRotatingWriter(opts, "")
	r := &router{
		formatter: newTextFormatter(opts.CallerPathPrefix),
		main:      mainWriter,
	}
	closers := []io.Closer{mainWriter}

	if opts.EnableCriticalLog {
		w := newRotatingWriter(opts, "critical")
		r.critical = w
		closers = append(closers, w)
	}
	if opts.EnableVerboseLog {
		w := newRotatingWriter(opts, "verbose")
		r.verbose = w
		closers = append(closers, w)
	}
	if opts.EnableConsoleLog {
		r.console = os.Stdout
	}

	logrus.AddHook(r)

	c := &closer{router: r, closers: closers}

	// Fatal 로그로 프로세스가 종료되기 직전에도 버퍼를 비우고 파일을 닫는다.
	logrus.RegisterExitHandler(func() { _ = c.Close() })

	return c, nil
}

func newRotatingWriter(opts Options, suffix string) *lumberjack.Logger {
	name := opts.Name
	if suffix != "" {
		name += "." + suffix
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, name+".log"),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}

// discardFormatter 포맷팅을 수행하지 않는 포맷터 (출력은 router에서 처리)
type discardFormatter struct{}

func (discardFormatter) Format(*logrus.Entry) ([]byte, error) {
	return nil, nil
}
