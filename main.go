package main

import (
	"log/slog"
	"os"

	"artist-mgmt/cmd"
	"artist-mgmt/internal/logger"
)

func main() {
	// Initialize custom logger with colors
	logHandler := logger.NewPrettyHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	cmd.Execute()
}
