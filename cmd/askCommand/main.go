package askCommand

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/acora/domain/model/message"
	"github.com/t-kuni/acora/domain/model/reply"
	"github.com/t-kuni/acora/domain/repository/config"
	"github.com/t-kuni/acora/domain/service/configFindService"
	"github.com/t-kuni/acora/domain/service/messageStore"
	"github.com/t-kuni/acora/domain/service/replyFactory"
)

// ApologyText は応答の生成に失敗した場合にアシスタントとして追加される固定メッセージです。
// 元のエラーはログにのみ記録されます。
const ApologyText = "Sorry, I could not come up with a reply. Please try again."

type AskCommand struct {
	CobraCommand *cobra.Command
}

func NewAskCommand(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	messageStoreService *messageStore.MessageStoreService,
	replyFactory *replyFactory.ReplyFactory,
	logger logr.Logger,
) *AskCommand {
	var modelFlag string
	var inputFlag bool

	cmd := &cobra.Command{
		Use:   "ask [message...]",
		Short: "Send a message and get a reply",
		Long:  `Send a message to the configured reply provider. The message and the reply are appended to the persisted conversation history.`,
		Args:  cobra.ArbitraryArgs,
		RunE: runAsk(&modelFlag, &inputFlag, configFindService, configRepository,
			messageStoreService, replyFactory, logger),
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Model to use (overrides acora.yml)")
	cmd.Flags().BoolVarP(&inputFlag, "input", "i", false, "Read the message from stdin")

	return &AskCommand{
		CobraCommand: cmd,
	}
}

func runAsk(
	modelFlag *string,
	inputFlag *bool,
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	messageStoreService *messageStore.MessageStoreService,
	replyFactory *replyFactory.ReplyFactory,
	logger logr.Logger,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		configPath, err := configFindService.FindConfig()
		if err != nil {
			return eris.Wrap(err, "failed to find config file")
		}

		cfg, err := configRepository.Read(configPath)
		if err != nil {
			return eris.Wrap(err, "failed to read config file")
		}

		rootDir := configFindService.GetProjectRoot(configPath)

		var text string
		if *inputFlag {
			text, err = readStdin()
			if err != nil {
				return eris.Wrap(err, "failed to read from stdin")
			}
		} else {
			text = strings.Join(args, " ")
		}

		// 空白のみの入力は何も追加せずに終了する
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}

		model := cfg.Chat.Model
		if *modelFlag != "" {
			model = *modelFlag
		}
		if !reply.ValidateModel(model) {
			return eris.Errorf("unsupported model: %s", model)
		}

		provider, err := replyFactory.Make(cfg)
		if err != nil {
			return eris.Wrap(err, "failed to create reply provider")
		}

		msgs := messageStoreService.Load(rootDir)
		msgs = messageStoreService.Append(msgs, message.RoleUser, text)
		messageStoreService.Persist(rootDir, msgs)

		fmt.Printf("Using chat driver: %s with model: %s\n", cfg.Chat.Driver, model)

		result, err := provider.GetReply(text, model)

		var replyText string
		if err != nil {
			logger.Error(err, "failed to get reply", "driver", cfg.Chat.Driver, "model", model)
			replyText = ApologyText
		} else {
			replyText = result.Content
		}

		msgs = messageStoreService.Append(msgs, message.RoleAssistant, replyText)
		messageStoreService.Persist(rootDir, msgs)

		fmt.Println(replyText)

		return nil
	}
}

func readStdin() (string, error) {
	stdin, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(stdin), nil
}
