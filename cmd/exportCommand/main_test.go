package exportCommand_test

import (
	"encoding/json"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/acora/cmd/exportCommand"
	"github.com/t-kuni/acora/domain/model/message"
	"github.com/t-kuni/acora/domain/service/configFindService"
	"github.com/t-kuni/acora/domain/service/export"
	"github.com/t-kuni/acora/domain/service/messageStore"
	fileRepo "github.com/t-kuni/acora/infrastructure/repository/file"
	messagesRepo "github.com/t-kuni/acora/infrastructure/repository/messages"
	ksuidInfra "github.com/t-kuni/acora/infrastructure/system/ksuid"
	"github.com/t-kuni/acora/testUtil"
)

const storePath = ".acora/acora_messages_v1.json"

func TestExportCommand(t *testing.T) {
	callCommand := func(args []string) error {
		fileRepository := fileRepo.NewFileRepository()
		configFindSvc := configFindService.NewConfigFindService(fileRepository)
		messageStoreSvc := messageStore.NewMessageStoreService(
			messagesRepo.NewMessagesRepository(),
			ksuidInfra.NewKsuidGenerator(),
			logr.Discard(),
		)
		exportSvc := export.NewExportService(fileRepository)

		testee := exportCommand.NewExportCommand(configFindSvc, messageStoreSvc, exportSvc)

		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(testee.CobraCommand)

		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	t.Run("全メッセージが整形済みJSONとして書き出されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("acora.yml", []byte(`
chat:
  driver: mock
  model: acora-lite
`))
		space.WriteFile(storePath, []byte(`[
			{"id":"a","role":"system","text":"S"},
			{"id":"b","role":"assistant","text":"Hello"}
		]`))

		err := callCommand([]string{"export"})
		assert.NoError(t, err)

		space.AssertFile("acora_conversation.json", func(actual []byte) {
			var msgs []message.Message
			assert.NoError(t, json.Unmarshal(actual, &msgs))
			assert.Equal(t, []message.Message{
				{ID: "a", Role: message.RoleSystem, Text: "S"},
				{ID: "b", Role: message.RoleAssistant, Text: "Hello"},
			}, msgs)

			// 整形済みで出力されること
			assert.Contains(t, string(actual), "\n  ")
		})
	})

	t.Run("既存のエクスポートファイルが上書きされること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("acora.yml", []byte(`
chat:
  driver: mock
  model: acora-lite
`))
		space.WriteFile(storePath, []byte(`[
			{"id":"a","role":"system","text":"S"}
		]`))
		space.WriteFile("acora_conversation.json", []byte(`[]`))

		err := callCommand([]string{"export"})
		assert.NoError(t, err)

		space.AssertFile("acora_conversation.json", func(actual []byte) {
			var msgs []message.Message
			assert.NoError(t, json.Unmarshal(actual, &msgs))
			assert.Len(t, msgs, 1)
		})
	})

	t.Run("-oオプションで出力先を指定できること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("acora.yml", []byte(`
chat:
  driver: mock
  model: acora-lite
`))
		space.WriteFile(storePath, []byte(`[
			{"id":"a","role":"system","text":"S"}
		]`))

		err := callCommand([]string{"export", "-o", "backup.json"})
		assert.NoError(t, err)

		space.AssertExistPath("backup.json")
	})
}
