package auth

import (
	"github.com/darkkaiser/team-hooks/internal/service/api/httputil"
)

var (
	// ErrAppKeyRequired API 호출 자격 증명인 App Key가 누락되었을 때 반환하는 에러입니다.
	// X-App-Key 헤더 또는 app_key 쿼리 파라미터를 통해 전달되어야 합니다.
	ErrAppKeyRequired = httputil.NewBadRequestError("app_key는 필수입니다 (X-App-Key 헤더 또는 app_key 쿼리 파라미터)")

	// ErrInvalidAppKey 제공된 App Key가 설정된 값과 일치하지 않을 때 반환하는 401 에러입니다.
	ErrInvalidAppKey = httputil.NewUnauthorizedError("app_key가 유효하지 않습니다")
)
