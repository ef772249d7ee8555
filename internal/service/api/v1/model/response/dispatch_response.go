package response

import (
	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/dispatcher"
)

// DispatchResponse 이벤트 발송 결과 응답
type DispatchResponse struct {
	// ResultCode 처리 결과 코드 (0: 요청 처리 완료, 개별 훅의 실패 여부는 Outcomes에서 확인)
	ResultCode int `json:"result_code" example:"0"`

	// Event 발송한 이벤트 종류
	Event contract.EventKind `json:"event" swaggertype:"string" example:"item_created"`

	// Summary 상태별 훅 개수
	Summary dispatcher.Counts `json:"summary"`

	// Outcomes 훅별 전달 결과 (설정 순서)
	Outcomes []OutcomeResponse `json:"outcomes"`
}

// OutcomeResponse 훅 하나의 전달 결과
type OutcomeResponse struct {
	HookID  contract.HookID `json:"hook_id" swaggertype:"string" example:"slack-1"`
	Variant string          `json:"variant" example:"slack_v2"`

	// Status delivered, failed, skipped
	Status string `json:"status" example:"delivered"`

	// Error 실패 원인 (실패한 경우에만)
	Error string `json:"error,omitempty" example:""`

	// ErrorType 실패 원인의 분류 (예: Timeout, Unavailable, ExecutionFailed)
	ErrorType string `json:"error_type,omitempty" example:""`

	// DurationMs 전달에 걸린 시간(ms)
	DurationMs int64 `json:"duration_ms" example:"120"`
}

// NewDispatchResponse 발송 결과를 응답 형식으로 변환합니다.
func NewDispatchResponse(report dispatcher.Report) DispatchResponse {
	outcomes := make([]OutcomeResponse, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		r := OutcomeResponse{
			HookID:     o.HookID,
			Variant:    o.Variant,
			Status:     o.Status.String(),
			DurationMs: o.Duration.Milliseconds(),
		}
		if o.Err != nil {
			r.Error = o.Err.Error()
			r.ErrorType = apperrors.UnderlyingType(o.Err).String()
		}
		outcomes = append(outcomes, r)
	}

	return DispatchResponse{
		ResultCode: 0,
		Event:      report.Event,
		Summary:    report.Summary(),
		Outcomes:   outcomes,
	}
}
