package property

import (
	"strings"
)

// Violation 필드 하나가 규칙 하나를 위반한 내역입니다.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationErrors Build에서 발견된 모든 위반 내역입니다.
// 필드 정의 순서, 같은 필드 안에서는 규칙 등록 순서로 정렬되어 있습니다.
type ValidationErrors []Violation

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.String())
	}
	return "훅 속성 검증 실패: " + strings.Join(parts, "; ")
}

// Has 지정된 필드와 규칙에 대한 위반이 있는지 확인합니다.
func (e ValidationErrors) Has(field, rule string) bool {
	for _, v := range e {
		if v.Field == field && v.Rule == rule {
			return true
		}
	}
	return false
}

// Fields 위반이 발생한 필드 이름을 중복 없이 순서대로 반환합니다.
func (e ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	fields := make([]string, 0, len(e))
	for _, v := range e {
		if _, ok := seen[v.Field]; ok {
			continue
		}
		seen[v.Field] = struct{}{}
		fields = append(fields, v.Field)
	}
	return fields
}
