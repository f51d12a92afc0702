package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Бэкенды хранилища таблицы админов.
const (
	StoreBackendFile   = "file"
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	StoreBackend  string `env:"STORE_BACKEND"`
	StoreFilePath string `env:"STORE_FILE_PATH"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE"`

	// GeminiAPIKey задается только окружением: секрет в аргументах процесса был бы
	// виден всем. Пустой ключ не ошибка — деградирует только генерация инсайтов.
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`
	GeminiModel   string `env:"GEMINI_MODEL"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)

	switch conf.StoreBackend {
	case StoreBackendFile, StoreBackendMemory:
	case StoreBackendMongo:
		if conf.MongoURI == "" {
			return nil, fmt.Errorf("store backend %s requires mongo URI", StoreBackendMongo)
		}
	default:
		return nil, fmt.Errorf("unknown store backend: %s", conf.StoreBackend)
	}

	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.StoreBackend, "s", StoreBackendFile, "Store backend: file, memory or mongo")
	flag.StringVar(&flagConfig.StoreFilePath, "f", "data/ledger.json", "Path to the store file (file backend)")
	flag.StringVar(&flagConfig.MongoURI, "m", "", "MongoDB URI (mongo backend)")
	flag.StringVar(&flagConfig.MongoDatabase, "db", "loyaltypro", "MongoDB database name (mongo backend)")
	flag.StringVar(&flagConfig.GeminiBaseURL, "gemini-url", "", "Gemini API base URL")
	flag.StringVar(&flagConfig.GeminiModel, "gemini-model", "", "Gemini model name")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		StoreBackend:  defaultIfBlank(envConfig.StoreBackend, flagsConfig.StoreBackend),
		StoreFilePath: defaultIfBlank(envConfig.StoreFilePath, flagsConfig.StoreFilePath),
		MongoURI:      defaultIfBlank(envConfig.MongoURI, flagsConfig.MongoURI),
		MongoDatabase: defaultIfBlank(envConfig.MongoDatabase, flagsConfig.MongoDatabase),
		GeminiAPIKey:  envConfig.GeminiAPIKey,
		GeminiBaseURL: defaultIfBlank(envConfig.GeminiBaseURL, flagsConfig.GeminiBaseURL),
		GeminiModel:   defaultIfBlank(envConfig.GeminiModel, flagsConfig.GeminiModel),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
