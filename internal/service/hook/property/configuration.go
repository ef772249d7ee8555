package property

import (
	"maps"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/pkg/maputil"
)

// Configuration Schema.Build로 검증을 통과한 설정값입니다. 생성 후에는 변경할 수 없습니다.
type Configuration struct {
	schema *Schema
	values map[string]any
}

// Get 필드 값을 반환합니다. 값이 없으면 ok는 false입니다.
func (c *Configuration) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// String 필드 값을 문자열로 반환합니다. 값이 없으면 빈 문자열을 반환합니다.
func (c *Configuration) String(name string) string {
	v, ok := c.values[name]
	if !ok {
		return ""
	}
	return stringify(v)
}

// Has 필드에 비어 있지 않은 값이 있는지 확인합니다.
func (c *Configuration) Has(name string) bool {
	v, ok := c.values[name]
	return ok && !isBlank(v)
}

// Values 설정값의 복사본을 반환합니다.
func (c *Configuration) Values() map[string]any {
	return maps.Clone(c.values)
}

// Schema 이 설정을 검증한 Schema를 반환합니다.
func (c *Configuration) Schema() *Schema {
	return c.schema
}

// With 필드 하나를 바꾼 새 Configuration을 반환합니다. 새 값으로 전체 검증을 다시 수행합니다.
func (c *Configuration) With(name string, value any) (*Configuration, error) {
	if _, ok := c.schema.index[name]; !ok {
		return nil, apperrors.Newf(apperrors.InvalidInput, "정의되지 않은 훅 속성입니다: '%s'", name)
	}

	raw := c.Values()
	if raw == nil {
		raw = make(map[string]any, 1)
	}
	raw[name] = value

	return c.schema.Build(raw)
}

// Decode 설정값을 타입 T의 구조체로 변환합니다. 필드 매핑에는 `json` 태그를 사용합니다.
//
//	type props struct {
//	    RoomID string `json:"room_id"`
//	    Token  string `json:"token"`
//	}
//	p, err := property.Decode[props](cfg)
func Decode[T any](c *Configuration) (*T, error) {
	out, err := maputil.Decode[T](c.values)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "훅 속성을 변환하는 데 실패했습니다")
	}
	return out, nil
}
