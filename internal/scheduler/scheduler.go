package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/omarshaarawi/statsboard/internal/config"
	"github.com/omarshaarawi/statsboard/internal/service"
)

const (
	jobTimeout = 2 * time.Minute
	viewName   = "scheduler"
)

type Scheduler struct {
	s           gocron.Scheduler
	svc         *service.DashboardService
	cfg         config.Scheduler
	sendMessage func(string) error
	sendPhoto   func([]byte) error
}

// NewScheduler builds the scheduler in cfg.Location. sendMessage and
// sendPhoto may be nil, in which case job results are only logged.
func NewScheduler(svc *service.DashboardService, cfg config.Scheduler, sendMessage func(string) error, sendPhoto func([]byte) error) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Location)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "location", cfg.Location, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		svc:         svc,
		cfg:         cfg,
		sendMessage: sendMessage,
		sendPhoto:   sendPhoto,
	}, nil
}

func (s *Scheduler) Start() error {
	if err := s.register(); err != nil {
		return err
	}
	s.s.Start()
	return nil
}

func (s *Scheduler) register() error {
	var err error

	// Data collection - daily 02:00
	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(2, 0, 0))),
		gocron.NewTask(s.triggerUpdate),
		gocron.WithName("daily-update"),
	)
	if err != nil {
		return fmt.Errorf("failed to create daily update job: %w", err)
	}

	// Full update, refresh and goal timing chart - Sunday 04:00
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(4, 0, 0))),
		gocron.NewTask(s.weeklyUpdate),
		gocron.WithName("weekly-update"),
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly update job: %w", err)
	}

	// Backend health check - daily 06:00
	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(6, 0, 0))),
		gocron.NewTask(s.checkBackend),
		gocron.WithName("backend-check"),
	)
	if err != nil {
		return fmt.Errorf("failed to create backend check job: %w", err)
	}

	if s.cfg.RefreshInterval > 0 {
		_, err = s.s.NewJob(
			gocron.DurationJob(s.cfg.RefreshInterval),
			gocron.NewTask(s.refresh),
			gocron.WithName("periodic-refresh"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to create refresh job: %w", err)
		}
	}

	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) send(text string) {
	if s.sendMessage == nil {
		slog.Info("Scheduled job finished", "message", text)
		return
	}
	if err := s.sendMessage(text); err != nil {
		slog.Error("Failed to send scheduled message", "error", err)
	}
}

// view is where scheduled loads and their alerts live, apart from any page
// or chat.
func (s *Scheduler) view() *service.View {
	return s.svc.Views().Named(viewName)
}

func (s *Scheduler) triggerUpdate() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, err := s.svc.UpdateReport(ctx, s.view())
	if err != nil {
		slog.Error("Failed to trigger update", "error", err)
		s.send("⚠️ " + err.Error())
		return
	}
	s.send(report)
}

func (s *Scheduler) weeklyUpdate() {
	s.triggerUpdate()
	s.refresh()
	s.sendGoalTiming()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.svc.Refresh(ctx, s.view()); err != nil {
		slog.Error("Failed to refresh statistics", "error", err)
	}
}

// sendGoalTiming posts the goal timing summary, followed by its chart when
// one could be drawn.
func (s *Scheduler) sendGoalTiming() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	text, img, err := s.svc.GoalTimingReport(ctx, s.view())
	if err != nil {
		slog.Error("Failed to build goal timing report", "error", err)
		return
	}
	s.send(text)

	if len(img) == 0 {
		return
	}
	if s.sendPhoto == nil {
		slog.Info("Goal timing chart drawn", "bytes", len(img))
		return
	}
	if err := s.sendPhoto(img); err != nil {
		slog.Error("Failed to send goal timing chart", "error", err)
	}
}

func (s *Scheduler) checkBackend() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.svc.CheckBackend(ctx); err != nil {
		slog.Error("Backend check failed", "error", err)
		s.send("⚠️ API de estatísticas indisponível: " + err.Error())
		return
	}
	slog.Info("Backend check succeeded")
}
