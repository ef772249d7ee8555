package errors

import "strconv"

// ErrorType 에러의 성격을 분류하는 타입입니다.
//
// 훅 발송 흐름에서는 다음과 같이 사용됩니다.
//   - InvalidInput: 훅 속성(Property) 검증 실패, 잘못된 이벤트 요청
//   - NotFound: 등록되지 않은 훅 또는 Variant
//   - NotImplemented: 폐기(Deprecated)된 Variant의 핸들러 호출
//   - Timeout / Unavailable: 일시적인 전송 실패 (재시도 가능)
//   - ExecutionFailed: 대상 서비스가 요청을 명시적으로 거부 (4xx 등)
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// Unauthorized 인증 실패
	Unauthorized

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 입력값
	InvalidInput

	// Conflict 리소스 충돌 (중복 등록 등)
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// NotImplemented 구현되지 않았거나 더 이상 지원하지 않는 기능
	NotImplemented

	// ExecutionFailed 외부 서비스 호출이 명시적으로 실패함
	ExecutionFailed

	// ParsingFailed 데이터 파싱 또는 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	NotImplemented:  "NotImplemented",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}

// Temporary 재시도하면 성공할 가능성이 있는 일시적인 에러 타입인지 여부를 반환합니다.
func (t ErrorType) Temporary() bool {
	return t == Timeout || t == Unavailable
}
