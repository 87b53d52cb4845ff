package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/wfunc/partymediator/action"
	"github.com/wfunc/partymediator/member"
)

const (
	OutputStdout = "stdout"
	OutputLog    = "log"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  string        `mapstructure:"output" validate:"oneof=stdout log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Parties []PartyConfig `mapstructure:"parties" validate:"dive"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace" validate:"required"`
}

// PartyConfig describes one party: who joins, in order, and who does what.
type PartyConfig struct {
	Name    string       `mapstructure:"name" validate:"required"`
	Members []string     `mapstructure:"members" validate:"min=1,dive,member_kind"`
	Script  []StepConfig `mapstructure:"script" validate:"dive"`
}

// StepConfig makes the first roster member of the given kind act.
type StepConfig struct {
	Member string `mapstructure:"member" validate:"required,member_kind"`
	Action string `mapstructure:"action" validate:"required,action"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 注册失败只会发生在编程错误时
	lo.Must0(v.RegisterValidation("member_kind", func(fl validator.FieldLevel) bool {
		return lo.Contains(member.Kinds(), strings.ToLower(fl.Field().String()))
	}))
	lo.Must0(v.RegisterValidation("action", func(fl validator.FieldLevel) bool {
		_, err := action.Parse(fl.Field().String())
		return err == nil
	}))
	return v
}

// DefaultParties is the party used when the configuration names none.
func DefaultParties() []PartyConfig {
	return []PartyConfig{
		{
			Name:    "fellowship",
			Members: []string{"hobbit", "wizard", "rogue", "hunter"},
			Script: []StepConfig{
				{Member: "hobbit", Action: "enemy"},
				{Member: "wizard", Action: "tale"},
				{Member: "rogue", Action: "gold"},
				{Member: "hunter", Action: "hunt"},
			},
		},
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig reads config.yaml from path. A missing file is fine: defaults
// and MEDIATOR_* environment variables apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("MEDIATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("output", OutputStdout)
	v.SetDefault("metrics.namespace", "mediator")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if len(cfg.Parties) == 0 {
		cfg.Parties = DefaultParties()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
