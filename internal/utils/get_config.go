package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port string `yaml:"PORT"`

	// Store configuration
	DBFile string `yaml:"DB_FILE"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// AWS S3 configuration (optional photo archive)
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

// LoadConfig reads .env and config.yaml when present. Values from the
// YAML file are mirrored into the environment so code that reads
// os.Getenv sees the same configuration.
func LoadConfig() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	setIfPresent("PORT", config.Port)
	setIfPresent("DB_FILE", config.DBFile)
	setIfPresent("GEMINI_API_KEY", config.GeminiAPIKey)
	setIfPresent("GEMINI_MODEL", config.GeminiModel)
	setIfPresent("AWS_S3_BUCKET", config.AWSS3Bucket)
	setIfPresent("AWS_S3_REGION", config.AWSS3Region)
	setIfPresent("AWS_ACCESS_KEY", config.AWSAccessKey)
	setIfPresent("AWS_SECRET_KEY", config.AWSSecretKey)
}

func setIfPresent(key, value string) {
	if value != "" {
		os.Setenv(key, value)
	}
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		if config.Port != "" {
			return config.Port
		}
	case "DB_FILE":
		if config.DBFile != "" {
			return config.DBFile
		}
	case "GEMINI_API_KEY":
		if config.GeminiAPIKey != "" {
			return config.GeminiAPIKey
		}
	case "GEMINI_MODEL":
		if config.GeminiModel != "" {
			return config.GeminiModel
		}
	case "AWS_S3_BUCKET":
		if config.AWSS3Bucket != "" {
			return config.AWSS3Bucket
		}
	case "AWS_S3_REGION":
		if config.AWSS3Region != "" {
			return config.AWSS3Region
		}
	case "AWS_ACCESS_KEY":
		if config.AWSAccessKey != "" {
			return config.AWSAccessKey
		}
	case "AWS_SECRET_KEY":
		if config.AWSSecretKey != "" {
			return config.AWSSecretKey
		}
	}
	return os.Getenv(key)
}
