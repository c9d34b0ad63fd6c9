//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package prompt

// IConfirm はユーザーへのyes/no確認を抽象化するインターフェースです。
// ブロッキングなネイティブダイアログの代わりに注入して使います。
type IConfirm interface {
	Confirm(message string) (bool, error)
}
