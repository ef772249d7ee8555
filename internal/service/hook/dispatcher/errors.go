package dispatcher

import (
	"fmt"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
)

var (
	// ErrPanicRecovered 훅 처리 도중 발생한 패닉을 복구했을 때 결과에 기록되는 에러입니다.
	ErrPanicRecovered = apperrors.New(apperrors.Internal, "훅 처리 도중 예기치 않은 패닉이 발생했습니다")

	// ErrDispatchCanceled 호출자의 컨텍스트가 종료되어 훅 처리를 시작하지 못했을 때 기록되는 에러입니다.
	ErrDispatchCanceled = apperrors.New(apperrors.Unavailable, "이벤트 발송이 취소되어 훅을 호출하지 않았습니다")

	// ErrNilEvent 이벤트 없이 Dispatch가 호출되었을 때 기록되는 에러입니다.
	ErrNilEvent = apperrors.New(apperrors.InvalidInput, "발송할 이벤트가 없습니다")
)

func newErrPanicRecovered(id contract.HookID, v any) error {
	return apperrors.Wrap(ErrPanicRecovered, apperrors.Internal, fmt.Sprintf("훅(%s) 처리 도중 패닉 발생 (상세: %v)", id, v))
}

func newErrDispatchCanceled(id contract.HookID, cause error) error {
	return apperrors.Wrapf(ErrDispatchCanceled, apperrors.Unavailable, "훅(%s) 호출 전에 발송이 취소되었습니다 (원인: %v)", id, cause)
}
