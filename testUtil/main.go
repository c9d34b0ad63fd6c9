package testUtil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type Space struct {
	t       *testing.T
	Dir     string
	CleanUp func()
}

func BeginTestSpace(t *testing.T) Space {
	t.Helper()

	originalDir, err := os.Getwd()
	assert.NoError(t, err)

	tempDir, err := os.MkdirTemp("", "")
	assert.NoError(t, err)

	// macではシンボリックリンク解決前のパスが返るため正規化する
	tempDir, err = filepath.EvalSymlinks(tempDir)
	assert.NoError(t, err)

	os.Chdir(tempDir)

	cleanup := func() {
		os.Chdir(originalDir)
		os.RemoveAll(tempDir)
	}

	return Space{
		t:       t,
		Dir:     tempDir,
		CleanUp: cleanup,
	}
}

func (s Space) WriteFile(path string, content []byte) {
	s.t.Helper()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(s.t, err)

	err = os.WriteFile(path, content, 0644)
	assert.NoError(s.t, err)
}

func (s Space) AssertFile(path string, assertion func(actual []byte)) {
	s.t.Helper()

	actual, err := os.ReadFile(path)
	assert.NoError(s.t, err)

	assertion(actual)
}

func (s Space) AssertExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.NoError(s.t, err)
}

func (s Space) AssertNotExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.True(s.t, os.IsNotExist(err))
}

// Stdin は標準入力を指定した内容に差し替えます。テスト終了時に復元されます。
func Stdin(t *testing.T, content string) {
	t.Helper()

	r, w, err := os.Pipe()
	assert.NoError(t, err)

	_, err = w.WriteString(content)
	assert.NoError(t, err)
	w.Close()

	original := os.Stdin
	os.Stdin = r

	t.Cleanup(func() {
		os.Stdin = original
		r.Close()
	})
}

// NewTime はRFC3339形式の文字列からtime.Timeを作成します。
func NewTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}
