package dispatcher

import (
	"errors"
	"time"

	"github.com/darkkaiser/team-hooks/internal/service/contract"
)

// Status 훅 하나에 대한 이벤트 전달 결과 상태
type Status int

const (
	// Unknown 결과가 아직 기록되지 않음. 완료된 Report에는 나타나지 않습니다.
	Unknown Status = iota

	// Delivered 훅이 이벤트를 처리하고 대상 서비스가 요청을 수락함
	Delivered

	// Failed 훅 처리 또는 전송이 실패함
	Failed

	// Skipped 훅이 해당 이벤트를 처리하지 않아 호출하지 않음 (에러 아님)
	Skipped
)

var statusNames = [...]string{
	Unknown:   "unknown",
	Delivered: "delivered",
	Failed:    "failed",
	Skipped:   "skipped",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// MarshalText JSON 응답 등에서 상태를 문자열로 표현합니다.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome 이벤트 하나와 훅 하나의 전달 결과입니다.
type Outcome struct {
	HookID   contract.HookID
	Variant  string
	Status   Status
	Err      error
	Duration time.Duration
}

// Report Dispatch 한 번의 전체 결과입니다. Outcomes는 입력된 훅의 순서를 따릅니다.
type Report struct {
	Event    contract.EventKind
	Outcomes []Outcome
}

// Counts 상태별 결과 개수
type Counts struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

func (r Report) Delivered() []Outcome { return r.filter(Delivered) }

func (r Report) Failed() []Outcome { return r.filter(Failed) }

func (r Report) Skipped() []Outcome { return r.filter(Skipped) }

// Err 실패한 모든 훅의 에러를 하나로 합쳐 반환합니다. 실패가 없으면 nil입니다.
func (r Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Status == Failed {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

func (r Report) Summary() Counts {
	var c Counts
	for _, o := range r.Outcomes {
		switch o.Status {
		case Delivered:
			c.Delivered++
		case Failed:
			c.Failed++
		case Skipped:
			c.Skipped++
		}
	}
	return c
}

func (r Report) filter(s Status) []Outcome {
	var outcomes []Outcome
	for _, o := range r.Outcomes {
		if o.Status == s {
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}
