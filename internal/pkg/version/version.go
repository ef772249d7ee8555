// Package version team-hooks 실행 파일의 빌드 정보를 제공합니다.
//
// 빌드 정보는 다음 순서로 결정됩니다.
//  1. 링커 플래그로 주입된 값
//
//     go build -ldflags "-X github.com/darkkaiser/team-hooks/internal/pkg/version.version=v1.2.0 \
//     -X github.com/darkkaiser/team-hooks/internal/pkg/version.commit=f25b8bf"
//
//  2. 실행 파일에 기록된 VCS 메타데이터(debug.ReadBuildInfo)
//  3. 그래도 비어 있으면 "unknown"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"

	applog "github.com/darkkaiser/team-hooks/pkg/log"
)

const unknown = "unknown"

// 링커 플래그(-X)로 주입되는 값입니다. 직접 읽지 말고 Get()을 사용합니다.
var (
	version     string
	commit      string
	treeState   string // "clean" 또는 "dirty"
	buildDate   string
	buildNumber string
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

// Info 실행 파일의 빌드 정보
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

var current = sync.OnceValue(func() Info {
	injected := Info{
		Version:     strings.TrimSpace(version),
		Commit:      strings.TrimSpace(commit),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(treeState), "dirty"),
	}

	bi, _ := readBuildInfo()
	return resolve(injected, bi)
})

// Get 현재 실행 파일의 빌드 정보를 반환합니다. 최초 호출 시 한 번만 계산합니다.
func Get() Info {
	return current()
}

// resolve 주입된 값의 빈 필드를 런타임 정보와 VCS 메타데이터로 채웁니다. bi는 nil일 수 있습니다.
func resolve(injected Info, bi *debug.BuildInfo) Info {
	info := injected
	info.GoVersion = runtime.Version()
	info.OS = runtime.GOOS
	info.Arch = runtime.GOARCH

	if bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				// 주입된 값이 clean이어도 실제 소스가 수정되었다면 dirty로 표시한다.
				info.DirtyBuild = info.DirtyBuild || s.Value == "true"
			}
		}

		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}

	return info
}

// ShortCommit 커밋 해시의 앞 7자리를 반환합니다.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// LogFields 구조적 로깅용 필드를 반환합니다.
func (i Info) LogFields() applog.Fields {
	return applog.Fields{
		"version":      i.Version,
		"commit":       i.ShortCommit(),
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"dirty_build":  i.DirtyBuild,
	}
}

// String 배너와 version 명령에 표시하는 한 줄 요약입니다.
//
//	v1.2.0+dirty (commit: f25b8bf, build: 7, date: 2026-01-10, go1.24.0 linux/amd64)
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		details = append(details, "commit: "+i.ShortCommit())
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, fmt.Sprintf("%s %s/%s", i.GoVersion, i.OS, i.Arch))
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
