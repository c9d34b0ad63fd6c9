package chatApi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatApiClient_SendMessage(t *testing.T) {
	t.Run("メッセージとモデルを送信して応答テキストが返ること", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/chat", r.URL.Path)

			var req struct {
				Message string `json:"message"`
				Model   string `json:"model"`
			}
			err := json.NewDecoder(r.Body).Decode(&req)
			assert.NoError(t, err)
			assert.Equal(t, "ping", req.Message)
			assert.Equal(t, "acora-lite", req.Model)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"reply":"pong"}`))
		}))
		defer server.Close()

		client := NewChatApiClient()

		reply, err := client.SendMessage(server.URL, "ping", "acora-lite")

		assert.NoError(t, err)
		assert.Equal(t, "pong", reply)
	})

	t.Run("2xx以外のステータスコードではエラーになること", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewChatApiClient()

		_, err := client.SendMessage(server.URL, "ping", "acora-lite")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("不正なJSONレスポンスではエラーになること", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewChatApiClient()

		_, err := client.SendMessage(server.URL, "ping", "acora-lite")

		assert.Error(t, err)
	})
}
