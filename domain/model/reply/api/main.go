package api

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/acora/domain/external/chatApi"
	"github.com/t-kuni/acora/domain/model/reply"
)

// ApiReply は設定済みのバックエンドエンドポイントに応答生成を委譲します。
// エンドポイントが未設定の場合は接続を試みずにエラーを返します。
type ApiReply struct {
	client   chatApi.Client
	endpoint string
}

func NewApiReply(client chatApi.Client, endpoint string) *ApiReply {
	return &ApiReply{
		client:   client,
		endpoint: endpoint,
	}
}

func (a *ApiReply) GetReply(message string, model string) (reply.Result, error) {
	if a.endpoint == "" {
		return reply.Result{}, chatApi.ErrNotConfigured
	}

	content, err := a.client.SendMessage(a.endpoint, message, model)
	if err != nil {
		return reply.Result{}, eris.Wrap(err, "failed to get reply from chat API")
	}

	return reply.Result{
		Content: content,
	}, nil
}
