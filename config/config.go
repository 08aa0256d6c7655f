package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Gemini    Gemini
	Sentiment Sentiment
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Gemini holds the generation-service settings. ApiKey may be empty, in which
// case insight synthesis degrades to placeholder results.
type Gemini struct {
	ApiKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Sentiment selects the sentiment backend. When ScriptPath is set the
// out-of-process model script is used, otherwise the in-process lexicon.
type Sentiment struct {
	ScriptPath     string
	PythonBin      string
	TimeoutSeconds int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.4)
	viper.SetDefault("GEMINI_MAX_TOKENS", 512)
	viper.SetDefault("SENTIMENT_PYTHON", "python3")
	viper.SetDefault("SENTIMENT_TIMEOUT_SECONDS", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.Temperature = viper.GetFloat64("GEMINI_TEMPERATURE")
	config.Gemini.MaxTokens = viper.GetInt("GEMINI_MAX_TOKENS")

	config.Sentiment.ScriptPath = viper.GetString("SENTIMENT_SCRIPT")
	config.Sentiment.PythonBin = viper.GetString("SENTIMENT_PYTHON")
	config.Sentiment.TimeoutSeconds = viper.GetInt("SENTIMENT_TIMEOUT_SECONDS")

	log.Info().Str("port", config.Server.Port).Str("geminiModel", config.Gemini.Model).Msg("Config loaded")
	return &config, nil
}
