package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/trade-invoice-csv/cmd/batch"
	"fjacquet/trade-invoice-csv/cmd/inspect"
	"fjacquet/trade-invoice-csv/cmd/root"
	"fjacquet/trade-invoice-csv/cmd/vendors"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load .env before anything logs so LOG_LEVEL applies from the first line.
	loadEnvSilently()
	root.Log.SetLevel(logLevelFromEnv())

	root.Init()

	root.Cmd.AddCommand(inspect.Cmd)
	root.Cmd.AddCommand(vendors.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// logLevelFromEnv reads LOG_LEVEL and sets it as the global logrus level
func logLevelFromEnv() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
