package handler

import (
	"net/http"
	"strings"

	"github.com/darkkaiser/team-hooks/internal/service/api/httputil"
	"github.com/darkkaiser/team-hooks/internal/service/api/v1/model/response"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/labstack/echo/v4"
)

// ListHooksHandler godoc
// @Summary 설정된 훅 목록
// @Description 활성화된 훅의 ID, 종류, 처리 가능한 이벤트 목록을 설정 순서대로 반환합니다.
// @Tags Hooks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.HookListResponse
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Router /api/v1/hooks [get]
func (h *Handler) ListHooksHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.HookListResponse{Hooks: h.hookService.Hooks()})
}

// ListVariantsHandler godoc
// @Summary 훅 종류 목록
// @Description 등록된 모든 훅 종류와 각 종류의 설정 속성 정의를 이름 순으로 반환합니다.
// @Tags Hooks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.VariantListResponse
// @Router /api/v1/variants [get]
func (h *Handler) ListVariantsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.NewVariantListResponse(h.hookService.Variants()))
}

// PingHookHandler godoc
// @Summary 훅 테스트 메시지 전송
// @Description 지정한 훅으로 설정 확인용 테스트 메시지를 보냅니다.
// @Description 전송 결과는 서버 로그로만 확인할 수 있으며, 훅이 존재하면 항상 성공으로 응답합니다.
// @Tags Hooks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "훅 ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "설정되지 않은 훅"
// @Router /api/v1/hooks/{id}/ping [post]
func (h *Handler) PingHookHandler(c echo.Context) error {
	id := contract.HookID(strings.TrimSpace(c.Param("id")))
	if id.IsEmpty() {
		return NewErrHookIDRequired()
	}

	if err := h.hookService.Ping(c.Request().Context(), id); err != nil {
		return httputil.FromAppError(err)
	}

	return httputil.Success(c)
}
