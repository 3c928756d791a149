package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"os-visualizer/config"
	"os-visualizer/internal/cache"
	"os-visualizer/internal/metrics"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
	"os-visualizer/internal/schedulers"
)

type SchedulerHandler interface {
	Calculate(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	logger  *zap.Logger
	cache   *cache.ScheduleCache
	metrics *metrics.Recorder
}

// NewSchedulerHandlerImpl wires the handler. scheduleCache may be nil to disable caching.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *zap.Logger, scheduleCache *cache.ScheduleCache, recorder *metrics.Recorder) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:  config,
		logger:  logger,
		cache:   scheduleCache,
		metrics: recorder,
	}
}

// Calculate serves the visualizer form: the algorithm is named in the body.
func (s *SchedulerHandlerImpl) Calculate(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidFormat(ctx, err)
	}
	algorithm, err := schedulers.ParseAlgorithm(request.Algorithm)
	if err != nil {
		s.metrics.ObserveSchedule("calculate", time.Now(), err)
		return s.writeError(ctx, err)
	}
	return s.respond(ctx, algorithm.String(), request, func() (any, error) {
		return schedulers.Calculate(algorithm, request)
	})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

// AllAlgorithms runs every algorithm, falling back to the configured quantum and levels.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidFormat(ctx, err)
	}
	request.Algorithm = ""
	defaults := schedulers.Options{
		TimeQuantum:       s.config.RoundRobinTimeQuantum,
		LevelsTimeQuantum: s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	return s.respond(ctx, "all", request, func() (any, error) {
		return schedulers.CalculateAll(request, defaults)
	})
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	names := make([]string, 0, len(schedulers.Algorithms))
	for _, algorithm := range schedulers.Algorithms {
		names = append(names, algorithm.String())
	}
	return ctx.JSON(responses.AlgorithmsResponse{Algorithms: names})
}

func (s *SchedulerHandlerImpl) Metrics(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	s.metrics.WriteJSON(ctx)
	return nil
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidFormat(ctx, err)
	}
	request.Algorithm = algorithm.String()
	return s.respond(ctx, algorithm.String(), request, func() (any, error) {
		return schedulers.Calculate(algorithm, request)
	})
}

// respond enforces the configured limits, serves from cache when possible and
// otherwise computes, encodes and caches the result.
func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, name string, request requests.ScheduleRequest, compute func() (any, error)) error {
	started := time.Now()
	if err := s.checkLimits(request); err != nil {
		s.metrics.ObserveSchedule(name, started, err)
		return s.writeError(ctx, err)
	}

	key, keyErr := cache.Key(name, request)
	if keyErr != nil {
		s.logger.Warn("can not build cache key", zap.Error(keyErr))
	} else if s.cache != nil {
		if body, ok := s.cache.Get(key); ok {
			s.metrics.CacheHit()
			s.metrics.ObserveSchedule(name, started, nil)
			ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return ctx.Send(body)
		}
		s.metrics.CacheMiss()
	}

	result, err := compute()
	s.metrics.ObserveSchedule(name, started, err)
	if err != nil {
		return s.writeError(ctx, err)
	}

	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding %s response: %w", name, err)
	}
	if keyErr == nil {
		s.cache.Set(key, body)
	}
	s.logger.Debug("schedule computed",
		zap.String("algorithm", name),
		zap.Int("processes", len(request.Processes)),
		zap.Duration("elapsed", time.Since(started)))

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(body)
}

func (s *SchedulerHandlerImpl) checkLimits(request requests.ScheduleRequest) error {
	return s.config.Limits().Check(request.CoreProcesses())
}

func (s *SchedulerHandlerImpl) invalidFormat(ctx *fiber.Ctx, err error) error {
	s.logger.Info("invalid request format", zap.String("path", ctx.Path()), zap.Error(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
}

// writeError reports validation errors verbatim and hides anything else behind a 500.
func (s *SchedulerHandlerImpl) writeError(ctx *fiber.Ctx, err error) error {
	var validationErr *schedulers.ValidationError
	if errors.As(err, &validationErr) {
		s.logger.Info("request rejected", zap.String("path", ctx.Path()), zap.String("reason", validationErr.Message))
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: validationErr.Message})
	}
	return err
}
