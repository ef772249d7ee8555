package handler

import (
	"net/http"

	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	"github.com/darkkaiser/team-hooks/internal/service/api/httputil"
	"github.com/darkkaiser/team-hooks/internal/service/api/v1/model/response"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
)

// DispatchEventHandler godoc
// @Summary 이벤트 발송
// @Description Qiita:Team 이벤트를 설정된 모든 훅으로 전달하고, 훅별 전달 결과를 반환합니다.
// @Description
// @Description 이벤트 종류를 처리하지 않는 훅은 skipped, 전송에 실패한 훅은 failed로 표시됩니다.
// @Description 일부 훅이 실패하더라도 요청 자체는 200 OK로 응답합니다.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body contract.EventRequest true "이벤트"
// @Success 200 {object} response.DispatchResponse "발송 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Router /api/v1/events [post]
func (h *Handler) DispatchEventHandler(c echo.Context) error {
	var req contract.EventRequest
	if err := c.Bind(&req); err != nil {
		return NewErrInvalidBody()
	}

	event, err := req.ToEvent()
	if err != nil {
		return httputil.FromAppError(err)
	}

	report := h.hookService.Dispatch(c.Request().Context(), event)
	summary := report.Summary()

	httputil.AddAccessLogFields(c, applog.Fields{
		"event":        event.Kind(),
		"failed_hooks": summary.Failed,
	})

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"event":     event.Kind(),
		"delivered": summary.Delivered,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
	}).Info("이벤트 발송 요청 처리 완료")

	return c.JSON(http.StatusOK, response.NewDispatchResponse(report))
}
