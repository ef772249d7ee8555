package main

import (
	"os"

	"github.com/darkkaiser/team-hooks/cmd/team-hooks/commands"
)

// @title Team Hooks API
// @version 1.0.0
// @description Qiita:Team 이벤트를 수신하여 설정된 훅(Slack, ChatWork, Telegram)으로 전달하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 이벤트 발송: 하나의 이벤트를 설정된 모든 훅으로 전달하고 훅별 결과를 반환
// @description - 훅 목록 및 훅 종류(Variant) 조회
// @description - 훅 설정 확인용 테스트 메시지 전송
// @description
// @description ## 인증 방법
// @description 설정 파일(team-hooks.json)의 api.app_key에 지정한 키를 X-App-Key 헤더로 전달합니다.
// @description 하위 호환을 위해 app_key 쿼리 파라미터도 허용합니다.
// @description    - 키 누락: 400 Bad Request
// @description    - 잘못된 키: 401 Unauthorized

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://github.com/DarkKaiser/team-hooks/blob/master/LICENSE

// @host localhost:2443
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description Application Key for authentication

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
