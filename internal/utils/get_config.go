package utils

import (
	"log"
	"os"
	"reflect"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	LogFile string `yaml:"LOG_FILE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// Object storage configuration, any S3 compatible endpoint
	AWSS3Bucket    string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region    string `yaml:"AWS_S3_REGION"`
	AWSAccessKey   string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey   string `yaml:"AWS_SECRET_KEY"`
	AWSS3Endpoint  string `yaml:"AWS_S3_ENDPOINT"`
	AWSS3PublicURL string `yaml:"AWS_S3_PUBLIC_URL"`
}

var (
	config Config

	configPath = "config.yaml"
	envPath    = ".env"
)

func defaultConfig() Config {
	return Config{
		AppPort:     "8080",
		LogFile:     "./logs/app.log",
		DBPort:      "5432",
		DBSSLMode:   "disable",
		AWSS3Bucket: "recipe-images",
		AWSS3Region: "us-east-1",
	}
}

// LoadConfig reads config.yaml, then lets the process environment (and an
// optional .env file) override any key. Missing files are not an error.
func LoadConfig() {
	config = defaultConfig()

	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading env file: %s\n", err)
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading YAML file: %s\n", err)
		}
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	applyEnv(&config)
}

// applyEnv overrides every field whose yaml key is set in the environment.
func applyEnv(c *Config) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		if value, ok := os.LookupEnv(key); ok && value != "" {
			v.Field(i).SetString(value)
		}
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_FILE":
		return config.LogFile
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_S3_PUBLIC_URL":
		return config.AWSS3PublicURL
	default:
		return ""
	}
}
