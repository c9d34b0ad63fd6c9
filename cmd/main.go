package cmd

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"github.com/t-kuni/acora/cmd/askCommand"
	"github.com/t-kuni/acora/cmd/clearCommand"
	"github.com/t-kuni/acora/cmd/copyCommand"
	"github.com/t-kuni/acora/cmd/exportCommand"
	"github.com/t-kuni/acora/cmd/historyCommand"
	"github.com/t-kuni/acora/cmd/initCommand"
	"github.com/t-kuni/acora/domain/service/configFindService"
	"github.com/t-kuni/acora/domain/service/export"
	"github.com/t-kuni/acora/domain/service/messageStore"
	"github.com/t-kuni/acora/domain/service/replyFactory"
	chatApiClient "github.com/t-kuni/acora/infrastructure/external/chatApi"
	configRepo "github.com/t-kuni/acora/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/acora/infrastructure/repository/file"
	messagesRepo "github.com/t-kuni/acora/infrastructure/repository/messages"
	clipboardInfra "github.com/t-kuni/acora/infrastructure/system/clipboard"
	ksuidInfra "github.com/t-kuni/acora/infrastructure/system/ksuid"
	promptInfra "github.com/t-kuni/acora/infrastructure/system/prompt"
	timerInfra "github.com/t-kuni/acora/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	cmd := &cobra.Command{
		Use:   "acora",
		Short: "A conversation tool backed by a mock or real chat API",
		Long:  `Acora is a command-line conversation tool. It keeps a persisted message history and answers through a mock reply generator or a configured chat API backend.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	logger := newLogger()

	apiClient := chatApiClient.NewChatApiClient()
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	messagesRepository := messagesRepo.NewMessagesRepository()
	ksuidGenerator := ksuidInfra.NewKsuidGenerator()
	systemTimer := timerInfra.NewTimer()
	clipboardWriter := clipboardInfra.NewClipboard()
	confirmPrompt := promptInfra.NewStdinConfirm()
	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	messageStoreSrv := messageStore.NewMessageStoreService(messagesRepository, ksuidGenerator, logger)
	replyFactorySrv := replyFactory.NewReplyFactory(apiClient, systemTimer)
	exportSrv := export.NewExportService(fileRepository)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(askCommand.NewAskCommand(
		configFindSrv,
		configRepository,
		messageStoreSrv,
		replyFactorySrv,
		logger,
	).CobraCommand)
	cmd.AddCommand(historyCommand.NewHistoryCommand(configFindSrv, messageStoreSrv).CobraCommand)
	cmd.AddCommand(clearCommand.NewClearCommand(configFindSrv, messageStoreSrv, confirmPrompt).CobraCommand)
	cmd.AddCommand(exportCommand.NewExportCommand(configFindSrv, messageStoreSrv, exportSrv).CobraCommand)
	cmd.AddCommand(copyCommand.NewCopyCommand(configFindSrv, messageStoreSrv, clipboardWriter).CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}

func newLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{})
}
