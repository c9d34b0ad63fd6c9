package chatApi

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
)

const requestTimeout = 15 * time.Second

type ChatApiClient struct {
	httpClient *resty.Client
}

type apiRequest struct {
	Message string `json:"message"`
	Model   string `json:"model"`
}

type apiResponse struct {
	Reply string `json:"reply"`
}

func NewChatApiClient() *ChatApiClient {
	client := resty.New()
	client.SetTimeout(requestTimeout)
	client.SetHeader("Content-Type", "application/json")

	if apiKey := os.Getenv("ACORA_API_KEY"); apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}

	return &ChatApiClient{
		httpClient: client,
	}
}

func (c *ChatApiClient) SendMessage(endpoint string, message string, model string) (string, error) {
	reqBody := apiRequest{
		Message: message,
		Model:   model,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", eris.Wrap(err, "failed to marshal request body")
	}

	resp, err := c.httpClient.R().
		SetBody(jsonBody).
		Post(strings.TrimSuffix(endpoint, "/") + "/api/chat")

	if err != nil {
		return "", eris.Wrap(err, "failed to send request")
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", eris.Errorf("API request failed with status code %d and response: %s", resp.StatusCode(), resp.String())
	}

	var apiResp apiResponse
	if err := json.Unmarshal(resp.Body(), &apiResp); err != nil {
		return "", eris.Wrap(err, "failed to unmarshal response body")
	}

	return apiResp.Reply, nil
}
