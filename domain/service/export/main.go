package export

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/t-kuni/acora/domain/model/message"
	"github.com/t-kuni/acora/domain/repository/file"
)

// ExportService は会話履歴を整形済みJSONとしてファイルに書き出します。
type ExportService struct {
	fileRepository file.Repository
}

func NewExportService(fileRepository file.Repository) *ExportService {
	return &ExportService{
		fileRepository: fileRepository,
	}
}

// Export は全メッセージを整形済みJSON配列としてpathに書き出します。
// 既存ファイルを上書きする場合は差分を表示します。
func (s *ExportService) Export(path string, msgs []message.Message) error {
	content, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return eris.Wrap(err, "failed to marshal messages")
	}

	if s.fileRepository.Exists(path) {
		oldContent, err := s.fileRepository.Read(path)
		if err != nil {
			return eris.Wrapf(err, "failed to read existing export file: %s", path)
		}
		showDiff(string(oldContent), string(content))
	}

	err = s.fileRepository.Write(path, content)
	if err != nil {
		return eris.Wrapf(err, "failed to write export file: %s", path)
	}

	return nil
}

func showDiff(oldContent string, newContent string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
