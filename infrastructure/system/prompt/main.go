package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	domainPrompt "github.com/t-kuni/acora/domain/system/prompt"
)

type StdinConfirm struct{}

func NewStdinConfirm() domainPrompt.IConfirm {
	return &StdinConfirm{}
}

func (c *StdinConfirm) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/N]: ", message)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
