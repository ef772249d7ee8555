package contract

import (
	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
)

// newErrMissingResource 이벤트 종류에 필요한 리소스가 요청에 없을 때 반환하는 에러를 생성합니다.
func newErrMissingResource(kind EventKind, resource string) error {
	return apperrors.Newf(apperrors.InvalidInput, "'%s' 이벤트에는 '%s' 항목이 필요합니다", kind, resource)
}

func newErrUnsupportedEventKind(kind EventKind) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 이벤트 종류입니다: '%s'", kind)
}
