// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const maskMark = "***"

// IsBlank 문자열이 비어 있거나 공백 문자로만 이루어져 있는지 확인합니다.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  hello   world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeMultiLineSpaces 각 줄을 NormalizeSpaces로 정리하고, 연속된 빈 줄은 하나로 축약합니다.
// 앞뒤의 빈 줄은 제거됩니다.
func NormalizeMultiLineSpaces(s string) string {
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	blank := true // 선행 빈 줄 제거

	for line := range strings.SplitSeq(s, "\n") {
		line = NormalizeSpaces(line)
		if line == "" {
			if !blank {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		lines = append(lines, line)
		blank = false
	}

	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return strings.Join(lines, "\n")
}

// Truncate 문자열을 최대 maxBytes 바이트 이내로 자릅니다.
// 잘린 경우 UTF-8 문자 경계를 지키며 끝에 "..."을 붙입니다.
func Truncate(s string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "..."
}

// MaskSensitiveData 토큰, 키 등의 민감 정보를 로그에 남길 수 있도록 마스킹합니다.
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 노출
//   - 그 외: 앞 4자와 뒤 4자만 노출
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return maskMark
	case len(data) <= 12:
		return data[:4] + maskMark
	default:
		return data[:4] + maskMark + data[len(data)-4:]
	}
}

// MaskURL 웹훅 URL처럼 경로나 쿼리에 비밀값이 포함될 수 있는 URL을 마스킹합니다.
// 스킴과 호스트는 유지하고, 경로와 쿼리는 마스킹합니다. 사용자 정보는 제거됩니다.
//
//	MaskURL("https://hooks.slack.com/services/T000/B000/XXXX") // "https://hooks.slack.com/***"
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return MaskSensitiveData(raw)
	}

	masked := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		masked += "/" + maskMark
	}

	return masked
}
