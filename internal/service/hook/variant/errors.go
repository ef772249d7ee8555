package variant

import (
	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
)

// ErrNotImplemented 폐기(Deprecated)된 Variant의 핸들러가 호출되었을 때 반환됩니다.
// 전송 실패와 달리 재시도 대상이 아니며, 훅 설정을 새 Variant로 옮겨야 함을 의미합니다.
var ErrNotImplemented = apperrors.New(apperrors.NotImplemented, "더 이상 지원하지 않는 훅입니다. 새 버전의 훅으로 전환해 주세요")

// ErrVariantNotFound 등록되지 않은 Variant 이름이 요청되었을 때 반환됩니다.
var ErrVariantNotFound = apperrors.New(apperrors.NotFound, "등록되지 않은 훅 종류입니다")

// ErrUnsupportedEvent Variant가 처리하지 않는 이벤트로 Handle이 호출되었을 때 반환됩니다.
var ErrUnsupportedEvent = apperrors.New(apperrors.InvalidInput, "훅이 처리하지 않는 이벤트입니다")

func newErrNotImplemented(name string, kind contract.EventKind) error {
	return apperrors.Wrapf(ErrNotImplemented, apperrors.NotImplemented, "폐기된 훅(%s)은 이벤트를 처리할 수 없습니다 (event: %s)", name, kind)
}

func newErrVariantNotFound(name string) error {
	return apperrors.Wrapf(ErrVariantNotFound, apperrors.NotFound, "등록되지 않은 훅 종류입니다: '%s'", name)
}

func newErrUnsupportedEvent(name string, kind contract.EventKind) error {
	return apperrors.Wrapf(ErrUnsupportedEvent, apperrors.InvalidInput, "훅(%s)이 처리하지 않는 이벤트입니다: '%s'", name, kind)
}

func newErrDuplicateVariant(name string) error {
	return apperrors.Newf(apperrors.Conflict, "이미 등록된 훅 종류입니다: '%s'", name)
}

func newErrInvalidSpec(name, reason string) error {
	return apperrors.Newf(apperrors.Internal, "훅 종류(%s) 정의가 올바르지 않습니다: %s", name, reason)
}

func newErrInvalidConfiguration(id contract.HookID, name string, err error) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "훅(%s) 설정이 올바르지 않습니다 (종류: %s)", id, name)
}
