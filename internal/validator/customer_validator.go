package validator

import "regexp"

// 顧客入力の形式チェック。
// メール重複のようにDBを見る検証はusecase側（トランザクション内）で行う。

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// +国番号（任意）+ 10桁。例: +1234567890 / 1234567890
	phoneRe = regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{10}$`)
)

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailRe.MatchString(s)
}

// 電話番号の形式をチェック
func IsPhoneLike(s string) bool {
	return phoneRe.MatchString(s)
}
