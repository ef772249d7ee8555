package contract

import (
	"strings"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
)

// HookID 설정된 훅 인스턴스의 고유 식별자입니다.
// config, hook, api 패키지에서 함께 참조하므로 순환 참조를 피하기 위해 contract 패키지에 정의합니다.
type HookID string

func (id HookID) IsEmpty() bool {
	return len(id) == 0
}

func (id HookID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return apperrors.New(apperrors.InvalidInput, "HookID는 필수입니다")
	}
	return nil
}

func (id HookID) String() string {
	return string(id)
}
