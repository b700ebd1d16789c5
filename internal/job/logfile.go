package job

import "os"

// appendLogはジョブの成果物ログに追記する。
// 毎回O_APPENDで開き直す。既存の内容を切り詰めることは絶対にない。
func appendLog(path string, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(text)
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
