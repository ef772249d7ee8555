package response

import (
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
)

// HookListResponse 설정된 훅 목록 응답
type HookListResponse struct {
	Hooks []hook.Info `json:"hooks"`
}

// VariantListResponse 사용할 수 있는 훅 종류 목록 응답
type VariantListResponse struct {
	Variants []VariantResponse `json:"variants"`
}

// VariantResponse 훅 종류 하나의 정보
type VariantResponse struct {
	Name         string               `json:"name" example:"slack_v2"`
	ServiceName  string               `json:"service_name" example:"Slack"`
	Deprecated   bool                 `json:"deprecated" example:"false"`
	Capabilities []contract.EventKind `json:"capabilities" swaggertype:"array,string"`
	Properties   []property.FieldInfo `json:"properties"`
}

// NewVariantListResponse 훅 종류 목록을 응답 형식으로 변환합니다.
func NewVariantListResponse(descriptors []*variant.Descriptor) VariantListResponse {
	variants := make([]VariantResponse, 0, len(descriptors))
	for _, d := range descriptors {
		variants = append(variants, VariantResponse{
			Name:         d.Name,
			ServiceName:  d.ServiceName,
			Deprecated:   d.Deprecated,
			Capabilities: d.Capabilities(),
			Properties:   d.Schema.Describe(),
		})
	}
	return VariantListResponse{Variants: variants}
}
