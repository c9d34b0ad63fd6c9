package config

type Config struct {
	Chat Chat `yaml:"chat"`
}

type Chat struct {
	Driver   string `yaml:"driver"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}
