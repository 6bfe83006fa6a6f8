package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultDataFile = "hotel_data.json"

type Config struct {
	DataFile string
}

// Load reads configuration from the environment, with an optional .env file
// layered underneath.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using process environment")
	}

	dataFile := os.Getenv("HOTEL_DATA_FILE")
	if dataFile == "" {
		dataFile = defaultDataFile
	}

	return Config{DataFile: dataFile}
}
