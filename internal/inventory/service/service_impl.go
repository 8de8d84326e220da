package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/reparo/internal/inventory/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("inventory.service"),
		repo: p.Repo,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddItemRequest) (domain.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.InventoryItem{}, domain.ErrInvalidName
	}
	if req.Qty < 0 {
		return domain.InventoryItem{}, domain.ErrInvalidQty
	}

	item := domain.InventoryItem{
		Name:      name,
		Qty:       req.Qty,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
	}

	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.repo.List(ctx, s.db)
}
