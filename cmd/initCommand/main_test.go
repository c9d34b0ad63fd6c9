package initCommand_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/acora/cmd/initCommand"
	configRepo "github.com/t-kuni/acora/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/acora/infrastructure/repository/file"
	"github.com/t-kuni/acora/testUtil"
)

func TestInitCommand(t *testing.T) {
	callCommand := func() error {
		testee := initCommand.NewInitCommand(configRepo.NewConfigRepository(), fileRepo.NewFileRepository())

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(testee.CobraCommand)

		rootCmd.SetArgs([]string{"init"})
		return rootCmd.Execute()
	}

	t.Run("acora.ymlが作成されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		err := callCommand()
		assert.NoError(t, err)

		space.AssertFile("acora.yml", func(actual []byte) {
			expect := `
chat:
    driver: mock
    model: acora-lite
`
			assert.YAMLEq(t, expect, string(actual))
		})

		space.AssertExistPath(".acora")

		space.AssertFile(".gitignore", func(actual []byte) {
			assert.Contains(t, string(actual), "/.acora")
		})
	})

	t.Run("acora.ymlが既に存在する場合はエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("acora.yml", []byte(`chat: {driver: mock, model: acora-lite}`))

		err := callCommand()
		assert.Error(t, err)
	})

	t.Run("既存の.gitignoreに追記されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile(".gitignore", []byte("node_modules\n"))

		err := callCommand()
		assert.NoError(t, err)

		space.AssertFile(".gitignore", func(actual []byte) {
			assert.Contains(t, string(actual), "node_modules")
			assert.Contains(t, string(actual), "/.acora")
		})
	})
}
