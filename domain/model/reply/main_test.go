package reply

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateModel(t *testing.T) {
	t.Run("定義済みのモデル名が有効と判定されること", func(t *testing.T) {
		for _, model := range GetAvailableModels() {
			assert.True(t, ValidateModel(string(model)))
		}
	})

	t.Run("未定義のモデル名が無効と判定されること", func(t *testing.T) {
		assert.False(t, ValidateModel("gpt-4"))
		assert.False(t, ValidateModel(""))
	})
}
