// Package auth API 요청의 App Key 인증을 담당합니다.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/darkkaiser/team-hooks/pkg/strutil"
)

// Authenticator 설정된 App Key와 요청의 App Key를 비교하여 인증합니다.
//
// 생성 이후 상태가 변하지 않으므로 여러 고루틴에서 동시에 호출해도 안전합니다.
type Authenticator struct {
	// appKeyHash 설정된 App Key의 SHA-256 해시. 길이가 다른 키도 상수 시간에 비교하기 위해 해시를 비교합니다.
	appKeyHash [sha256.Size]byte
}

// NewAuthenticator App Key로 Authenticator를 생성합니다.
//
// Panics:
//   - appKey가 비어 있는 경우
func NewAuthenticator(appKey string) *Authenticator {
	if appKey == "" {
		panic("Authenticator: appKey는 비어 있을 수 없습니다")
	}

	return &Authenticator{
		appKeyHash: sha256.Sum256([]byte(appKey)),
	}
}

// Authenticate 요청의 App Key를 검증합니다. 일치하지 않으면 401 에러를 반환합니다.
func (a *Authenticator) Authenticate(appKey string) error {
	if appKey == "" {
		return ErrAppKeyRequired
	}

	received := sha256.Sum256([]byte(appKey))
	if subtle.ConstantTimeCompare(a.appKeyHash[:], received[:]) != 1 {
		applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
			"received_app_key": strutil.MaskSensitiveData(appKey),
		}).Warn("APP_KEY 불일치")

		return ErrInvalidAppKey
	}

	return nil
}
