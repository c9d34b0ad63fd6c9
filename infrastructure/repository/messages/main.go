package messages

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/t-kuni/acora/domain/model/message"
)

type MessagesRepository struct{}

func NewMessagesRepository() *MessagesRepository {
	return &MessagesRepository{}
}

func (r *MessagesRepository) Read(path string) ([]message.Message, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var msgs []message.Message
	err = json.Unmarshal(content, &msgs)
	if err != nil {
		return nil, err
	}

	return msgs, nil
}

func (r *MessagesRepository) Write(path string, msgs []message.Message) error {
	content, err := json.Marshal(msgs)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	return os.WriteFile(path, content, 0644)
}

func (r *MessagesRepository) Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
