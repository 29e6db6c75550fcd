package cron

import (
	"context"
	"log"
	"time"

	"quadrafacil/config"
	matchRepo "quadrafacil/database/repository/match"
	chatSvc "quadrafacil/services/chat"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeChatReconcile = "chat:reconcile"

// InitReconcileWorker starts the background worker that periodically repairs
// chat membership for every active match. The bridge updates on the hot path
// are best-effort, so a divergent chat heals on the next sweep.
func InitReconcileWorker(matches matchRepo.MatchRepository, chats chatSvc.Service, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReconcileDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeChatReconcile, handleReconcileTask(matches, chats, logger))

	go func() {
		log.Println("[ReconcileWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts, logger)
}

// runScheduler enqueues the reconcile task on the configured interval.
func runScheduler(redisOpts asynq.RedisClientOpt, logger *zap.Logger) {
	interval := config.AppConfig.ReconcileInterval
	if _, err := time.ParseDuration(interval); err != nil {
		logger.Warn("invalid reconcile interval, falling back to 10m",
			zap.String("interval", interval), zap.Error(err))
		interval = "10m"
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	task := asynq.NewTask(TypeChatReconcile, nil)
	if _, err := scheduler.Register("@every "+interval, task); err != nil {
		logger.Error("failed to register reconcile schedule", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		logger.Error("reconcile scheduler stopped", zap.Error(err))
	}
}

func handleReconcileTask(matches matchRepo.MatchRepository, chats chatSvc.Service, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		active, err := matches.ListActive(ctx)
		if err != nil {
			logger.Error("reconcile: listing active matches failed", zap.Error(err))
			return err
		}

		var repaired, failed int
		for i := range active {
			if err := chats.SyncMatchMembership(ctx, &active[i]); err != nil {
				failed++
				logger.Warn("reconcile: membership sync failed",
					zap.String("matchID", active[i].ID), zap.Error(err))
				continue
			}
			repaired++
		}

		logger.Info("chat membership reconcile pass finished",
			zap.Int("matches", len(active)), zap.Int("synced", repaired), zap.Int("failed", failed))
		return nil
	}
}
