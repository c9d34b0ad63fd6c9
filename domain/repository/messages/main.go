package messages

import "github.com/t-kuni/acora/domain/model/message"

// Repository は会話履歴の永続化スロットへの読み書きを抽象化します。
type Repository interface {
	Read(path string) ([]message.Message, error)
	Write(path string, messages []message.Message) error
	Exists(path string) bool
}
