//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package chatApi

import "github.com/rotisserie/eris"

// ErrNotConfigured はバックエンドのエンドポイントが未設定の場合に返されるエラーです。
var ErrNotConfigured = eris.New("chat API endpoint is not configured")

// Client はバックエンドのチャットAPIとの通信を抽象化するインターフェースです。
type Client interface {
	// SendMessage はメッセージを送信し、応答テキストを返します。
	// ステータスコードが2xx以外の場合、レスポンスボディをエラーメッセージに含めます。
	SendMessage(endpoint string, message string, model string) (string, error)
}
