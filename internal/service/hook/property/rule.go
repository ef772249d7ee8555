package property

import (
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/darkkaiser/team-hooks/pkg/strutil"
	"github.com/go-playground/validator/v10"
)

const (
	RulePresence    = "presence"
	RuleFormat      = "format"
	RuleAbsoluteURL = "absolute_url"
)

// Rule 필드 하나에 적용되는 검증 규칙입니다.
//
// 빈 값(nil, 빈 문자열, 공백 문자열, 빈 슬라이스/맵)에 대한 처리:
//   - Presence 규칙은 빈 값을 위반으로 판단합니다.
//   - AllowBlank 옵션이 지정된 규칙은 빈 값을 검사하지 않고 통과시킵니다.
//     즉 "값이 비어 있음"은 Presence 위반일 뿐, Format 위반이 아닙니다.
type Rule struct {
	name       string
	message    string
	allowBlank bool
	check      func(value any) bool
}

// RuleOption 규칙의 동작을 변경하는 옵션입니다.
type RuleOption func(*Rule)

// AllowBlank 값이 비어 있으면 규칙을 건너뛰도록 합니다.
func AllowBlank() RuleOption {
	return func(r *Rule) {
		r.allowBlank = true
	}
}

// WithMessage 위반 시 보고할 메시지를 지정합니다.
func WithMessage(message string) RuleOption {
	return func(r *Rule) {
		r.message = message
	}
}

// Presence 값이 비어 있지 않아야 한다는 규칙입니다.
func Presence(opts ...RuleOption) Rule {
	return newRule(RulePresence, "값이 비어 있습니다", func(v any) bool { return !isBlank(v) }, opts)
}

// Format 값의 문자열 표현이 정규식과 일치해야 한다는 규칙입니다.
// 정규식은 부분 일치로 평가되므로 전체 일치가 필요하면 ^...$ 로 고정해야 합니다.
func Format(re *regexp.Regexp, opts ...RuleOption) Rule {
	if re == nil {
		panic("property: Format 규칙에 nil 정규식이 전달되었습니다")
	}
	return newRule(RuleFormat, "형식이 올바르지 않습니다", func(v any) bool { return re.MatchString(stringify(v)) }, opts)
}

// Predicate 임의의 조건 함수로 값을 검사하는 규칙입니다. name은 위반 항목을 구분하는 규칙 이름입니다.
func Predicate(name string, fn func(value any) bool, message string, opts ...RuleOption) Rule {
	if fn == nil {
		panic(fmt.Sprintf("property: '%s' 규칙에 nil 조건 함수가 전달되었습니다", name))
	}
	return newRule(name, message, fn, opts)
}

// AbsoluteURL 값이 http 또는 https 스킴의 절대 URL이어야 한다는 규칙입니다.
func AbsoluteURL(opts ...RuleOption) Rule {
	return newRule(RuleAbsoluteURL, "http 또는 https 절대 URL이어야 합니다", func(v any) bool { return IsHTTPURL(stringify(v)) }, opts)
}

// IsHTTPURL s가 호스트를 가진 http 또는 https 절대 URL인지 여부를 반환합니다.
func IsHTTPURL(s string) bool {
	return fieldValidator().Var(s, "http_url") == nil
}

var fieldValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

func newRule(name, message string, check func(any) bool, opts []RuleOption) Rule {
	r := Rule{name: name, message: message, check: check}
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	return r
}

func (r Rule) Name() string { return r.name }

// apply 값을 검사하고, 통과하면 true를 반환합니다.
func (r Rule) apply(value any) bool {
	if r.allowBlank && isBlank(value) {
		return true
	}
	return r.check(value)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strutil.IsBlank(s)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strutil.IsBlank(rv.String())
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
