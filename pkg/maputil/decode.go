// Package maputil map[string]any 형태의 데이터를 구조체로 변환하는 유틸리티를 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode input을 타입 T의 새 값으로 디코딩합니다.
//
// 기본 동작:
//   - `json` 태그 기준으로 필드를 매핑합니다.
//   - 타입이 달라도 변환 가능한 값은 변환합니다 ("123" -> 123, "true" -> true).
//   - "10s" 같은 문자열을 time.Duration으로, "a, b" 문자열을 슬라이스로 변환합니다.
//   - 구조체에 없는 키는 무시하고, 임베디드 구조체는 평탄화합니다.
//
//	type slackProps struct {
//	    WebhookURL string `json:"webhook_url"`
//	}
//	props, err := maputil.Decode[slackProps](cfg.Values())
func Decode[T any](input any) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo input을 output이 가리키는 값에 디코딩합니다. output에 이미 있는 값은 입력에 없는 한 유지됩니다.
func DecodeTo[T any](input any, output *T) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			stringToDurationHookFunc(),
			stringToSliceHookFunc(),
		),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}

	return nil
}
