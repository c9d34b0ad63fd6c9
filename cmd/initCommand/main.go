package initCommand

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/t-kuni/acora/domain/model/reply"
	"github.com/t-kuni/acora/domain/repository/config"
	"github.com/t-kuni/acora/domain/repository/file"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new Acora workspace",
		Long:  `Initialize a new Acora workspace by creating an acora.yml configuration file in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "acora.yml")
			if fileRepository.Exists(configPath) {
				return fmt.Errorf("acora.yml already exists in the current directory")
			}

			cfg := &config.Config{
				Chat: config.Chat{
					Driver: "mock",
					Model:  string(reply.ModelAcoraLite),
				},
			}

			err = configRepository.Write(configPath, cfg)
			if err != nil {
				return err
			}

			err = os.MkdirAll(filepath.Join(currentDir, ".acora"), 0755)
			if err != nil {
				return err
			}

			err = addToGitignore(fileRepository, currentDir, "/.acora")
			if err != nil {
				return err
			}

			fmt.Println("Initialized Acora workspace. Created acora.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}

func addToGitignore(fileRepository file.Repository, dir string, entry string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")

	var content string
	if fileRepository.Exists(gitignorePath) {
		existing, err := fileRepository.Read(gitignorePath)
		if err != nil {
			return err
		}
		content = string(existing)

		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) == entry {
				return nil
			}
		}

		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
	}

	content += entry + "\n"

	return fileRepository.Write(gitignorePath, []byte(content))
}
