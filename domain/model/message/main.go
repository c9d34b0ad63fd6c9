package message

import "strings"

// Role は会話メッセージの役割を表す閉じたタグ集合です。
// 自由な文字列ではなく、この3種類のみを許可します。
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ValidateRole は指定された役割が有効かどうかを検証します。
func ValidateRole(role string) bool {
	switch Role(role) {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message は会話履歴の1件を表します。
// 作成後は変更されません。削除は履歴全体のクリアでのみ行われます。
type Message struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// NewMessage は新しいMessageインスタンスを作成します。
func NewMessage(id string, role Role, text string) Message {
	return Message{
		ID:   id,
		Role: role,
		Text: text,
	}
}

// LastAssistant は末尾から走査して直近のアシスタントメッセージを返します。
// 存在しない場合は2番目の戻り値がfalseになります。
func LastAssistant(messages []Message) (Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleAssistant {
			return messages[i], true
		}
	}
	return Message{}, false
}

// FormatTranscript は全メッセージを "<role>: <text>" 形式で連結して返します。
// 各行は空行1つで区切られます。
func FormatTranscript(messages []Message) string {
	lines := make([]string, len(messages))
	for i, msg := range messages {
		lines[i] = string(msg.Role) + ": " + msg.Text
	}
	return strings.Join(lines, "\n\n")
}
