//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package clipboard

type IClipboard interface {
	Write(text string) error
}
