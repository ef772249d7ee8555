package api

import (
	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
)

// ErrHookServiceNotInitialized 서비스 시작 시 HookService가 주입되지 않았을 때 반환하는 에러입니다.
var ErrHookServiceNotInitialized = apperrors.New(apperrors.Internal, "HookService 객체가 초기화되지 않았습니다")
