package mock

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/t-kuni/acora/domain/model/reply"
	"github.com/t-kuni/acora/domain/system/timer"
)

const (
	delayMin    = 800 * time.Millisecond
	delayJitter = 700 * time.Millisecond
)

// MockReply はバックエンドに接続せず、固定テンプレートの応答を返します。
// UIの動作確認用に [800ms, 1500ms) のランダムな遅延を挟みます。
type MockReply struct {
	timer timer.ITimer
}

func NewMockReply(timer timer.ITimer) *MockReply {
	return &MockReply{
		timer: timer,
	}
}

func (m *MockReply) GetReply(message string, model string) (reply.Result, error) {
	m.timer.Sleep(Delay())

	content := fmt.Sprintf(
		"[%s] This is a mock reply. You said: %q. Configure an endpoint to talk to a real backend.",
		model, message,
	)

	return reply.Result{
		Content: content,
	}, nil
}

// Delay は遅延時間を返します。常に [800ms, 1500ms) の範囲に収まります。
func Delay() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(delayJitter)))
	return delayMin + jitter
}
