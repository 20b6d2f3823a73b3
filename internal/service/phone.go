// File: internal/service/phone.go
package service

import "strings"

// NormalizePhone 將各種輸入格式的電話號碼轉為 +<國碼> 標準形式
// Accepts "+256758969973", "0758969973" or "758969973" and always yields the
// canonical "+256758969973" form (for the default country code). No digit
// count validation happens here; garbage input simply matches nothing
// downstream. Idempotent for already-canonical numbers.
func NormalizePhone(countryCode, raw string) string {
	clean := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(clean, "0"):
		return countryCode + clean[1:]
	case !strings.HasPrefix(clean, "+"):
		return countryCode + clean
	default:
		return clean
	}
}
