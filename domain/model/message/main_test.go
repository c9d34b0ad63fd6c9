package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRole(t *testing.T) {
	t.Run("定義済みの役割が有効と判定されること", func(t *testing.T) {
		assert.True(t, ValidateRole("system"))
		assert.True(t, ValidateRole("user"))
		assert.True(t, ValidateRole("assistant"))
	})

	t.Run("未定義の役割が無効と判定されること", func(t *testing.T) {
		assert.False(t, ValidateRole("moderator"))
		assert.False(t, ValidateRole(""))
	})
}

func TestLastAssistant(t *testing.T) {
	t.Run("末尾に最も近いアシスタントメッセージが返ること", func(t *testing.T) {
		msgs := []Message{
			NewMessage("1", RoleSystem, "S"),
			NewMessage("2", RoleAssistant, "First"),
			NewMessage("3", RoleUser, "Question"),
			NewMessage("4", RoleAssistant, "Second"),
			NewMessage("5", RoleUser, "Another"),
		}

		last, found := LastAssistant(msgs)

		assert.True(t, found)
		assert.Equal(t, "Second", last.Text)
	})

	t.Run("アシスタントメッセージが無い場合はfoundがfalseになること", func(t *testing.T) {
		msgs := []Message{
			NewMessage("1", RoleSystem, "S"),
			NewMessage("2", RoleUser, "Question"),
		}

		_, found := LastAssistant(msgs)

		assert.False(t, found)
	})
}

func TestFormatTranscript(t *testing.T) {
	t.Run("全メッセージが役割付きで空行区切りに連結されること", func(t *testing.T) {
		msgs := []Message{
			NewMessage("1", RoleSystem, "S"),
			NewMessage("2", RoleAssistant, "Hello"),
			NewMessage("3", RoleUser, "Hi"),
		}

		actual := FormatTranscript(msgs)

		assert.Equal(t, "system: S\n\nassistant: Hello\n\nuser: Hi", actual)
	})

	t.Run("空の履歴では空文字列が返ること", func(t *testing.T) {
		assert.Equal(t, "", FormatTranscript([]Message{}))
	})
}
