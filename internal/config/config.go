package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidMark  = errors.New("mark must be a single printable character")
	ErrSameMarks    = errors.New("players must use different marks")
	ErrInvalidFlash = errors.New("flash interval and count must be positive")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"sliding-tictactoe.log"`
	Marks    Marks  `yaml:"marks"`
	Flash    Flash  `yaml:"flash"`
}

// Marks are the characters drawn for each player.
type Marks struct {
	PlayerA string `yaml:"player-a" env:"MARK_PLAYER_A" env-default:"X"`
	PlayerB string `yaml:"player-b" env:"MARK_PLAYER_B" env-default:"O"`
}

// Flash controls the blinking of the winning line and of the status line.
type Flash struct {
	Interval time.Duration `yaml:"interval" env:"FLASH_INTERVAL" env-default:"200ms"`
	Count    int           `yaml:"count" env:"FLASH_COUNT" env-default:"6"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the yaml file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	a, err := that.Marks.RuneA()
	if err != nil {
		return fmt.Errorf("player-a: %w", err)
	}

	b, err := that.Marks.RuneB()
	if err != nil {
		return fmt.Errorf("player-b: %w", err)
	}

	if a == b {
		return fmt.Errorf("%w: %q", ErrSameMarks, a)
	}

	if that.Flash.Interval <= 0 || that.Flash.Count <= 0 {
		return fmt.Errorf("%w: interval %s count %d", ErrInvalidFlash, that.Flash.Interval, that.Flash.Count)
	}

	return nil
}

func (that *Marks) RuneA() (rune, error) {
	return markRune(that.PlayerA)
}

func (that *Marks) RuneB() (rune, error) {
	return markRune(that.PlayerB)
}

func markRune(value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMark, value)
	}

	r, _ := utf8.DecodeRuneInString(value)
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMark, value)
	}

	return r, nil
}
