package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/reparo/internal/customer/domain"
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
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddCustomerRequest) (domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return domain.Customer{}, domain.ErrInvalidPhone
	}

	customer := domain.Customer{
		Name:    name,
		Phone:   phone,
		Address: req.Address,
		Note:    req.Note,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx, s.db)
}

// FindByPhone scans the contact list for the first matching phone. Phone is
// not unique; with duplicates the most recently added contact wins because
// the list is newest first.
func (s *Service) FindByPhone(ctx context.Context, phone string) (domain.Customer, bool, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return domain.Customer{}, false, nil
	}

	customers, err := s.repo.List(ctx, s.db)
	if err != nil {
		return domain.Customer{}, false, err
	}
	for _, customer := range customers {
		if customer.Phone == phone {
			return customer, true, nil
		}
	}
	return domain.Customer{}, false, nil
}
