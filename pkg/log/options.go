package log

import (
	"fmt"
	"os"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

// Options Setup에 전달하는 로거 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용될 애플리케이션 식별자 (필수)
	Dir   string // 로그 디렉토리 (기본값: logs)
	Level Level  // 로그 레벨 (0이면 Info)

	MaxAge     int // 로테이션된 파일 보관 일수 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 100MB)
	MaxBackups int // 보관할 백업 파일 수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상 로그를 <name>.critical.log 에 별도 기록
	EnableVerboseLog  bool // DEBUG 이하 로그를 <name>.verbose.log 로 분리
	EnableConsoleLog  bool // 표준 출력에도 기록

	ReportCaller bool

	// 호출자 함수명에서 잘라낼 모듈 경로 (예: "github.com/darkkaiser/team-hooks")
	CallerPathPrefix string
}

// Validate 설정값의 유효성을 검사합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	switch {
	case opts.MaxAge < 0:
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	case opts.MaxSizeMB < 0:
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	case opts.MaxBackups < 0:
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}

// withDefaults 0 값 필드를 기본값으로 채운 복사본을 반환합니다.
func (opts Options) withDefaults() Options {
	if opts.Level == 0 {
		opts.Level = InfoLevel
	}
	if opts.Dir == "" {
		opts.Dir = defaultDir
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = defaultMaxSizeMB
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = defaultMaxBackups
	}
	return opts
}

// NewProductionOptions 운영 환경용 설정을 반환합니다.
// 파일 중심으로 기록하며 장애 분석을 위해 Critical/Verbose 파일을 분리합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,

		ReportCaller: true,
	}
}

// NewDevelopmentOptions 개발 환경용 설정을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableConsoleLog: true,
		ReportCaller:     true,
	}
}
