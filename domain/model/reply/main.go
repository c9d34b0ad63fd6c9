//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package reply

// Provider は送信メッセージに対する応答の生成を抽象化するインターフェースです。
type Provider interface {
	// GetReply はメッセージとモデル名を受け取り、応答を返します。
	// モデルのバリデーションは行いません。
	GetReply(message string, model string) (Result, error)
}

// Result は応答の生成結果を表す構造体です。
type Result struct {
	Content string
}

// ModelName は使用可能なモデル名を定義する型です。
type ModelName string

const (
	ModelAcoraLite ModelName = "acora-lite"
	ModelAcoraPro  ModelName = "acora-pro"
)

// GetAvailableModels は利用可能なすべてのモデル名を返します。
func GetAvailableModels() []ModelName {
	return []ModelName{
		ModelAcoraLite,
		ModelAcoraPro,
	}
}

// ValidateModel は指定されたモデル名が有効かどうかを検証します。
func ValidateModel(model string) bool {
	for _, validModel := range GetAvailableModels() {
		if string(validModel) == model {
			return true
		}
	}
	return false
}
