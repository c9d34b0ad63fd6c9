package messageStore

import (
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/t-kuni/acora/domain/model/message"
	"github.com/t-kuni/acora/domain/repository/messages"
	"github.com/t-kuni/acora/domain/system/ksuid"
)

const (
	storeDirName  = ".acora"
	storeFileName = "acora_messages_v1.json"

	defaultSystemText   = "You are Acora, a friendly and concise assistant."
	defaultGreetingText = "Hello! How can I help you today?"
)

// MessageStoreService は会話履歴の読み込み・追加・クリア・永続化を担います。
// 履歴は挿入順を保ち、メッセージは作成後に変更されません。
type MessageStoreService struct {
	messagesRepository messages.Repository
	ksuidGenerator     ksuid.IKsuid
	logger             logr.Logger
}

func NewMessageStoreService(
	messagesRepository messages.Repository,
	ksuidGenerator ksuid.IKsuid,
	logger logr.Logger,
) *MessageStoreService {
	return &MessageStoreService{
		messagesRepository: messagesRepository,
		ksuidGenerator:     ksuidGenerator,
		logger:             logger,
	}
}

// StorePath は永続化スロットのファイルパスを返します。
func (s *MessageStoreService) StorePath(rootDir string) string {
	return filepath.Join(rootDir, storeDirName, storeFileName)
}

// Load は永続化された履歴を読み込みます。
// ファイルが存在しない場合はシード2件（システム + 挨拶）を返します。
// パースに失敗した場合は空の履歴を返します。エラーは呼び出し元に伝播しません。
func (s *MessageStoreService) Load(rootDir string) []message.Message {
	path := s.StorePath(rootDir)

	if !s.messagesRepository.Exists(path) {
		return s.seed()
	}

	msgs, err := s.messagesRepository.Read(path)
	if err != nil {
		s.logger.Error(err, "failed to read message store, starting with an empty history", "path", path)
		return []message.Message{}
	}

	return msgs
}

// Append は新しいIDを採番したメッセージを1件追加した履歴を返します。
func (s *MessageStoreService) Append(msgs []message.Message, role message.Role, text string) []message.Message {
	return append(msgs, message.NewMessage(s.ksuidGenerator.New(), role, text))
}

// Clear はシステムメッセージが存在すればそれ1件のみ、なければ空の履歴を返します。
func (s *MessageStoreService) Clear(msgs []message.Message) []message.Message {
	for _, msg := range msgs {
		if msg.Role == message.RoleSystem {
			return []message.Message{msg}
		}
	}
	return []message.Message{}
}

// Persist は履歴全体を永続化します。
// 書き込みに失敗してもエラーはログに記録するだけで、呼び出し元には伝播しません。
func (s *MessageStoreService) Persist(rootDir string, msgs []message.Message) {
	path := s.StorePath(rootDir)

	err := s.messagesRepository.Write(path, msgs)
	if err != nil {
		s.logger.Error(err, "failed to persist message store", "path", path)
	}
}

func (s *MessageStoreService) seed() []message.Message {
	return []message.Message{
		message.NewMessage(s.ksuidGenerator.New(), message.RoleSystem, defaultSystemText),
		message.NewMessage(s.ksuidGenerator.New(), message.RoleAssistant, defaultGreetingText),
	}
}
