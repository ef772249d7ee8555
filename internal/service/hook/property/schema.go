// Package property 훅 Variant의 설정 항목(Property)과 검증 규칙을 선언하고,
// 원시 설정값으로부터 검증된 불변 Configuration을 만드는 기능을 제공합니다.
//
//	var schema = property.NewSchema().
//	    Define("username", property.WithDefault("Qiita:Team")).
//	    Define("icon_emoji").
//	    Validate("username", property.Presence()).
//	    Validate("icon_emoji", property.Format(iconEmojiPattern, property.AllowBlank()))
//
// Schema는 패키지 초기화 시점에 한 번 구성한 뒤 읽기 전용으로 공유합니다.
package property

import (
	"fmt"
)

type field struct {
	name       string
	def        any
	hasDefault bool
	rules      []Rule
}

// Schema 필드 정의와 규칙 목록입니다.
type Schema struct {
	fields []*field
	index  map[string]*field
}

// FieldOption 필드 정의 옵션입니다.
type FieldOption func(*field)

// WithDefault 값이 주어지지 않았을 때 사용할 기본값을 지정합니다.
func WithDefault(v any) FieldOption {
	return func(f *field) {
		f.def = v
		f.hasDefault = true
	}
}

func NewSchema() *Schema {
	return &Schema{index: make(map[string]*field)}
}

// Define 필드를 등록합니다. 같은 이름을 두 번 등록하면 panic이 발생합니다.
func (s *Schema) Define(name string, opts ...FieldOption) *Schema {
	if name == "" {
		panic("property: 빈 필드 이름은 정의할 수 없습니다")
	}
	if _, exists := s.index[name]; exists {
		panic(fmt.Sprintf("property: 필드 '%s'가 이미 정의되어 있습니다", name))
	}

	f := &field{name: name}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	s.fields = append(s.fields, f)
	s.index[name] = f

	return s
}

// Validate 필드에 규칙을 추가합니다. 정의되지 않은 필드를 지정하면 panic이 발생합니다.
func (s *Schema) Validate(name string, rules ...Rule) *Schema {
	f, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("property: 정의되지 않은 필드 '%s'에 규칙을 추가할 수 없습니다", name))
	}
	f.rules = append(f.rules, rules...)

	return s
}

// Merge s의 필드 뒤에 other의 필드를 이어 붙인 새 Schema를 반환합니다. 원본은 변경되지 않습니다.
// 두 Schema에 같은 필드가 있으면 panic이 발생합니다.
func (s *Schema) Merge(other *Schema) *Schema {
	merged := NewSchema()
	for _, src := range []*Schema{s, other} {
		if src == nil {
			continue
		}
		for _, f := range src.fields {
			if _, exists := merged.index[f.name]; exists {
				panic(fmt.Sprintf("property: 병합할 Schema에 필드 '%s'가 중복되어 있습니다", f.name))
			}
			clone := &field{name: f.name, def: f.def, hasDefault: f.hasDefault, rules: append([]Rule(nil), f.rules...)}
			merged.fields = append(merged.fields, clone)
			merged.index[f.name] = clone
		}
	}
	return merged
}

// Fields 필드 이름을 정의 순서대로 반환합니다.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.name)
	}
	return names
}

// FieldInfo 외부에 노출하는 필드 정의 정보입니다.
type FieldInfo struct {
	Name     string   `json:"name"`
	Default  any      `json:"default,omitempty"`
	Required bool     `json:"required"`
	Rules    []string `json:"rules,omitempty"`
}

// Describe 필드 정의 정보를 정의 순서대로 반환합니다.
func (s *Schema) Describe() []FieldInfo {
	infos := make([]FieldInfo, 0, len(s.fields))
	for _, f := range s.fields {
		info := FieldInfo{Name: f.name, Default: f.def}
		for _, r := range f.rules {
			info.Rules = append(info.Rules, r.name)
			if r.name == RulePresence {
				info.Required = true
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// Build 원시 설정값에 기본값을 적용하고 모든 필드의 모든 규칙을 검사합니다.
//
// 하나라도 위반이 있으면 Configuration 없이 모든 위반 내역을 담은 ValidationErrors를 반환합니다.
// 값이 없거나 nil인 필드는 기본값을 사용하며, Schema에 정의되지 않은 키는 무시됩니다.
// 같은 입력에 대해 항상 같은 결과를 반환합니다.
func (s *Schema) Build(raw map[string]any) (*Configuration, error) {
	values := make(map[string]any, len(s.fields))
	var violations ValidationErrors

	for _, f := range s.fields {
		v, ok := raw[f.name]
		if (!ok || v == nil) && f.hasDefault {
			v, ok = f.def, true
		}
		if ok && v != nil {
			values[f.name] = v
		}

		for _, r := range f.rules {
			if !r.apply(values[f.name]) {
				violations = append(violations, Violation{Field: f.name, Rule: r.name, Message: r.message})
			}
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}

	return &Configuration{schema: s, values: values}, nil
}
