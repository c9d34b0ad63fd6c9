package clearCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/acora/domain/service/configFindService"
	"github.com/t-kuni/acora/domain/service/messageStore"
	"github.com/t-kuni/acora/domain/system/prompt"
)

type ClearCommand struct {
	CobraCommand *cobra.Command
}

func NewClearCommand(
	configFindService *configFindService.ConfigFindService,
	messageStoreService *messageStore.MessageStoreService,
	confirm prompt.IConfirm,
) *ClearCommand {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the conversation history",
		Long:  `Clear the persisted conversation history after confirmation. The system message, if any, is kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := configFindService.FindConfig()
			if err != nil {
				return eris.Wrap(err, "failed to find config file")
			}

			rootDir := configFindService.GetProjectRoot(configPath)

			ok, err := confirm.Confirm("Clear conversation history?")
			if err != nil {
				return eris.Wrap(err, "failed to read confirmation")
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			msgs := messageStoreService.Load(rootDir)
			msgs = messageStoreService.Clear(msgs)
			messageStoreService.Persist(rootDir, msgs)

			fmt.Println("Conversation history cleared.")
			return nil
		},
	}

	return &ClearCommand{
		CobraCommand: cmd,
	}
}
