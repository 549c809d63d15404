package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env-default:"info"`
	Difficulty string `yaml:"difficulty" env-default:"impossible" validate:"oneof=easy medium impossible"`
	TargetWins int    `yaml:"target-wins" env-default:"3" validate:"min=1"`

	// Seed - rng seed for reproducible games; 0 means seed from the clock.
	Seed int64 `yaml:"seed" env-default:"0"`

	Human PlayerConfig `yaml:"human"`
	Bot   PlayerConfig `yaml:"bot"`
}

type PlayerConfig struct {
	Name string `yaml:"name" validate:"required"`
	Mark string `yaml:"mark" validate:"required,len=1"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// MustLoad - load and validate all configuration in the config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(err)
	}

	return config
}

// Validate - struct-tag validation plus the cross-player checks: the two
// players may never share a mark or a name.
func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if that.Human.Mark == that.Bot.Mark {
		return fmt.Errorf("%w: %q", apperror.ErrDuplicateMark, that.Human.Mark)
	}

	if that.Human.Name == that.Bot.Name {
		return fmt.Errorf("%w: %q", apperror.ErrDuplicateName, that.Human.Name)
	}

	return nil
}
