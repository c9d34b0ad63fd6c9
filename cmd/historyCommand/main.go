package historyCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/acora/domain/model/message"
	"github.com/t-kuni/acora/domain/service/configFindService"
	"github.com/t-kuni/acora/domain/service/messageStore"
)

type HistoryCommand struct {
	CobraCommand *cobra.Command
}

func NewHistoryCommand(
	configFindService *configFindService.ConfigFindService,
	messageStoreService *messageStore.MessageStoreService,
) *HistoryCommand {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the conversation history",
		Long:  `Show the persisted conversation history in insertion order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := configFindService.FindConfig()
			if err != nil {
				return eris.Wrap(err, "failed to find config file")
			}

			rootDir := configFindService.GetProjectRoot(configPath)

			msgs := messageStoreService.Load(rootDir)
			for _, msg := range msgs {
				fmt.Println(formatMessage(msg))
				fmt.Println()
			}

			return nil
		},
	}

	return &HistoryCommand{
		CobraCommand: cmd,
	}
}

func formatMessage(msg message.Message) string {
	switch msg.Role {
	case message.RoleUser:
		return "You: " + msg.Text
	case message.RoleAssistant:
		return "Acora: " + msg.Text
	default:
		return "(" + string(msg.Role) + ") " + msg.Text
	}
}
