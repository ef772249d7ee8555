package handler

import (
	"github.com/darkkaiser/team-hooks/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문이 올바른 JSON이 아니어서 파싱에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError("요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요")
}

// NewErrHookIDRequired 경로의 훅 ID가 비어 있을 때 발생하는 에러를 생성합니다.
func NewErrHookIDRequired() error {
	return httputil.NewBadRequestError("훅 ID는 필수입니다")
}
