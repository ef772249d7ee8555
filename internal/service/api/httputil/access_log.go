package httputil

import (
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
)

// accessLogFieldsKey 핸들러가 접근 로그에 덧붙일 필드를 보관하는 echo.Context 키
const accessLogFieldsKey = "access_log_fields"

// AddAccessLogFields 요청의 접근 로그(HTTPLogger)에 함께 기록할 필드를 추가합니다.
// 같은 키를 다시 추가하면 나중 값이 남습니다.
func AddAccessLogFields(c echo.Context, fields applog.Fields) {
	existing, _ := c.Get(accessLogFieldsKey).(applog.Fields)
	if existing == nil {
		existing = make(applog.Fields, len(fields))
		c.Set(accessLogFieldsKey, existing)
	}
	for k, v := range fields {
		existing[k] = v
	}
}

// AccessLogFields AddAccessLogFields로 추가된 필드를 반환합니다. 없으면 nil입니다.
func AccessLogFields(c echo.Context) applog.Fields {
	fields, _ := c.Get(accessLogFieldsKey).(applog.Fields)
	return fields
}
