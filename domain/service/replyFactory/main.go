package replyFactory

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/acora/domain/external/chatApi"
	"github.com/t-kuni/acora/domain/model/reply"
	"github.com/t-kuni/acora/domain/model/reply/api"
	"github.com/t-kuni/acora/domain/model/reply/mock"
	"github.com/t-kuni/acora/domain/repository/config"
	"github.com/t-kuni/acora/domain/system/timer"
)

type ReplyFactory struct {
	chatApiClient chatApi.Client
	timer         timer.ITimer
}

func NewReplyFactory(chatApiClient chatApi.Client, timer timer.ITimer) *ReplyFactory {
	return &ReplyFactory{
		chatApiClient: chatApiClient,
		timer:         timer,
	}
}

func (s *ReplyFactory) Make(cfg *config.Config) (reply.Provider, error) {
	switch cfg.Chat.Driver {
	case "mock":
		return mock.NewMockReply(s.timer), nil
	case "api":
		endpoint := cfg.Chat.Endpoint
		if endpoint == "" {
			endpoint = os.Getenv("ACORA_ENDPOINT")
		}
		return api.NewApiReply(s.chatApiClient, endpoint), nil
	default:
		return nil, eris.Errorf("unsupported chat driver: %s", cfg.Chat.Driver)
	}
}
