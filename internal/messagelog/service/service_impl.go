package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/reparo/internal/clock"
	"github.com/smallbiznis/reparo/internal/messagelog/domain"
	"github.com/smallbiznis/reparo/internal/providers/sms"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	Repo      domain.Repository
	Transport sms.Provider
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	repo      domain.Repository
	transport sms.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("messagelog.service"),
		clock:     p.Clock,
		repo:      p.Repo,
		transport: p.Transport,
	}
}

// Notify sends an SMS and appends the outcome to the audit trail. The
// transport error never propagates; it only decides the recorded status.
func (s *Service) Notify(ctx context.Context, req domain.NotifyRequest) (domain.MessageLog, error) {
	to := strings.TrimSpace(req.To)
	if to == "" {
		return domain.MessageLog{}, domain.ErrInvalidNumber
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return domain.MessageLog{}, domain.ErrInvalidMessage
	}

	status := domain.SendStatusSent
	if err := s.transport.Send(ctx, to, message); err != nil {
		status = domain.SendStatusFailed
		s.log.Warn("sms send failed",
			zap.String("to", to),
			zap.Error(err),
		)
	}

	entry := domain.MessageLog{
		ToNumber: to,
		Message:  message,
		SentAt:   s.clock.Now().UnixMilli(),
		Status:   status,
	}

	if err := s.repo.Insert(ctx, s.db, &entry); err != nil {
		return domain.MessageLog{}, err
	}
	return entry, nil
}

func (s *Service) List(ctx context.Context) ([]domain.MessageLog, error) {
	return s.repo.List(ctx, s.db)
}
