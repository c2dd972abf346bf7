package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"schedsim/api"
	"schedsim/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.GetSchedulerConfig()
	if err != nil {
		log.Fatalln(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalln(err)
	}
	defer func() { _ = logger.Sync() }()

	handler := api.NewSchedulerHandlerImpl(cfg, logger)

	app := fiber.New()
	apiGroup := app.Group("/api")

	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/schedule/fcfs", handler.FirstComeFirstServe)
		v1.Post("/schedule/sjf", handler.ShortestJobFirst)
		v1.Post("/schedule/rr", handler.RoundRobin)
		v1.Post("/schedule/priority", handler.Priority)
		v1.Post("/schedule/all", handler.AllAlgorithms)
		v1.Get("/samples", handler.Samples)
	}

	logger.Info("listening", zap.Int("port", cfg.Port))
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
