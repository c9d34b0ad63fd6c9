package copyCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/acora/domain/model/message"
	"github.com/t-kuni/acora/domain/service/configFindService"
	"github.com/t-kuni/acora/domain/service/messageStore"
	"github.com/t-kuni/acora/domain/system/clipboard"
)

type CopyCommand struct {
	CobraCommand *cobra.Command
}

func NewCopyCommand(
	configFindService *configFindService.ConfigFindService,
	messageStoreService *messageStore.MessageStoreService,
	clipboardWriter clipboard.IClipboard,
) *CopyCommand {
	var allFlag bool

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the last reply to the clipboard",
		Long:  `Copy the most recent assistant reply to the clipboard. With --all, copy the whole conversation as "<role>: <text>" lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := configFindService.FindConfig()
			if err != nil {
				return eris.Wrap(err, "failed to find config file")
			}

			rootDir := configFindService.GetProjectRoot(configPath)

			msgs := messageStoreService.Load(rootDir)

			if allFlag {
				err = clipboardWriter.Write(message.FormatTranscript(msgs))
				if err != nil {
					return eris.Wrap(err, "failed to write to clipboard")
				}
				fmt.Println("Copied the whole conversation to the clipboard.")
				return nil
			}

			last, found := message.LastAssistant(msgs)
			if !found {
				fmt.Println("No assistant reply to copy.")
				return nil
			}

			err = clipboardWriter.Write(last.Text)
			if err != nil {
				return eris.Wrap(err, "failed to write to clipboard")
			}

			fmt.Println("Copied the last reply to the clipboard.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&allFlag, "all", "a", false, "Copy the whole conversation")

	return &CopyCommand{
		CobraCommand: cmd,
	}
}
