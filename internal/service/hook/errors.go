package hook

import (
	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
)

// ErrHookNotFound 설정되지 않았거나 비활성화된 훅 ID가 요청되었을 때 반환합니다.
var ErrHookNotFound = apperrors.New(apperrors.NotFound, "설정되지 않은 훅입니다. 설정 파일을 확인해 주세요")

func newErrHookNotFound(id contract.HookID) error {
	return apperrors.Wrapf(ErrHookNotFound, apperrors.NotFound, "설정되지 않은 훅입니다: '%s'", id)
}

// newErrDuplicateHookID 설정에서 같은 훅 ID가 두 번 이상 선언되었을 때 반환하는 에러를 생성합니다.
func newErrDuplicateHookID(id contract.HookID) error {
	return apperrors.Newf(apperrors.Conflict, "중복된 훅 ID('%s')가 감지되었습니다. 설정을 확인해주세요", id)
}

func newErrHookInitFailed(err error) error {
	return apperrors.Wrap(err, apperrors.InvalidInput, "훅 초기화 중 에러가 발생했습니다")
}
