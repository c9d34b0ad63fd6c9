package exportCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/acora/domain/service/configFindService"
	"github.com/t-kuni/acora/domain/service/export"
	"github.com/t-kuni/acora/domain/service/messageStore"
)

const defaultExportFileName = "acora_conversation.json"

type ExportCommand struct {
	CobraCommand *cobra.Command
}

func NewExportCommand(
	configFindService *configFindService.ConfigFindService,
	messageStoreService *messageStore.MessageStoreService,
	exportService *export.ExportService,
) *ExportCommand {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the conversation history to a JSON file",
		Long:  `Export the persisted conversation history as a pretty-printed JSON array. When the output file already exists, a diff of the change is shown before overwriting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := configFindService.FindConfig()
			if err != nil {
				return eris.Wrap(err, "failed to find config file")
			}

			rootDir := configFindService.GetProjectRoot(configPath)

			msgs := messageStoreService.Load(rootDir)

			err = exportService.Export(outputFlag, msgs)
			if err != nil {
				return eris.Wrap(err, "failed to export conversation")
			}

			fmt.Printf("Exported %d messages to %s\n", len(msgs), outputFlag)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", defaultExportFileName, "Output file path")

	return &ExportCommand{
		CobraCommand: cmd,
	}
}
