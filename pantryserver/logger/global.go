package logger

import (
	"log/slog"
	"time"
)

// LogFork logs a copy-on-write fork outcome
func LogFork(householdID, collectionID, recipeID int64, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "FORK"),
		slog.Int64("household_id", householdID),
		slog.Int64("collection_id", collectionID),
		slog.Int64("recipe_id", recipeID),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Fork failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Fork completed", attrs...)
	}
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}
