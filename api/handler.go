package api

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
	"schedsim/internal/util"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Samples(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *zap.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *zap.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	specs, err := request.Specs()
	if err != nil {
		return s.renderError(ctx, err)
	}

	result, err := schedulers.Run(algorithm, s.runConfig(request), specs)
	if err != nil {
		return s.renderError(ctx, err)
	}
	metrics := schedulers.GenerateAnalytics(result)

	response := responses.NewScheduleResponse(result, metrics)
	s.logger.Info("run completed",
		zap.String("run_id", response.RunID),
		zap.String("algorithm", response.Algorithm),
		zap.Int("processes", len(response.Details)),
		zap.Int("total_time", response.TotalTime))
	return ctx.JSON(response)
}

// AllAlgorithms runs every algorithm on the same input, each run on its own
// goroutine with fresh state.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	specs, err := request.Specs()
	if err != nil {
		return s.renderError(ctx, err)
	}

	algorithms := schedulers.Algorithms()
	results := make([]responses.ScheduleResponse, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm schedulers.Algorithm) {
			defer wg.Done()
			result, err := schedulers.Run(algorithm, s.runConfig(request), specs)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = responses.NewScheduleResponse(result, schedulers.GenerateAnalytics(result))
		}(i, algorithm)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return s.renderError(ctx, err)
		}
	}

	comparison := make(map[string]responses.ScheduleResponse, len(results))
	for _, resp := range results {
		comparison[resp.Algorithm] = resp
	}
	s.logger.Info("comparison completed", zap.Int("processes", len(specs)))
	return ctx.JSON(comparison)
}

func (s *SchedulerHandlerImpl) Samples(ctx *fiber.Ctx) error {
	return ctx.JSON(util.SampleSets())
}

// runConfig falls back to the configured quantum when the request omits one,
// so only an explicitly invalid quantum is rejected.
func (s *SchedulerHandlerImpl) runConfig(request requests.ScheduleRequest) schedulers.Config {
	quantum := request.TimeQuantum
	if quantum == 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	return schedulers.Config{TimeQuantum: quantum}
}

func (s *SchedulerHandlerImpl) renderError(ctx *fiber.Ctx, err error) error {
	var processErr *core.InvalidProcessError
	var configErr *core.InvalidConfigError

	status := fiber.StatusBadRequest
	kind := "invalid_request"
	switch {
	case errors.As(err, &processErr):
		kind = "invalid_process"
	case errors.As(err, &configErr):
		kind = "invalid_config"
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, core.ErrEmptyInput):
		kind = "empty_input"
	}

	s.logger.Warn("request rejected", zap.String("kind", kind), zap.Error(err))
	return ctx.Status(status).JSON(fiber.Map{
		"error":   kind,
		"message": err.Error(),
	})
}
