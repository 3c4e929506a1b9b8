// Package main runs the coaching MCP server over stdio (for local agent use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/stridecoach/backend/internal/config"
	"github.com/stridecoach/backend/internal/db"
	"github.com/stridecoach/backend/internal/injuries"
	coachmcp "github.com/stridecoach/backend/internal/injuries/mcp"
	"github.com/stridecoach/backend/internal/training"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	injuriesRepo := injuries.NewRepo(dbPool)
	evaluator := training.NewEvaluator(training.NewRepo(dbPool), training.Config{
		LookbackDays:    cfg.TrainingLoadLookbackDays,
		MinCompleted:    cfg.FatigueMinCompletedCount,
		MinHardSessions: cfg.FatigueMinHardSessionCount,
	})
	server := coachmcp.NewServer(
		injuries.NewService(injuriesRepo),
		injuries.NewAnalyzer(injuriesRepo),
		evaluator,
	)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
