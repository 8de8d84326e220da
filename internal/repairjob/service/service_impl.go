package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/reparo/internal/clock"
	"github.com/smallbiznis/reparo/internal/config"
	customerdomain "github.com/smallbiznis/reparo/internal/customer/domain"
	"github.com/smallbiznis/reparo/internal/providers/images"
	"github.com/smallbiznis/reparo/internal/providers/pdf"
	"github.com/smallbiznis/reparo/internal/repairjob/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	GenID     *snowflake.Node
	Repo      domain.Repository
	Images    *images.Importer
	Customers customerdomain.Service
	PDF       pdf.Provider
	Shop      config.ShopProfile
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	genID     *snowflake.Node
	repo      domain.Repository
	images    *images.Importer
	customers customerdomain.Service
	pdf       pdf.Provider
	shop      config.ShopProfile
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("repairjob.service"),
		clock:     p.Clock,
		genID:     p.GenID,
		repo:      p.Repo,
		images:    p.Images,
		customers: p.Customers,
		pdf:       p.PDF,
		shop:      p.Shop,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddJobRequest) (domain.RepairJob, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return domain.RepairJob{}, domain.ErrInvalidCustomerName
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return domain.RepairJob{}, domain.ErrInvalidPhone
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return domain.RepairJob{}, domain.ErrInvalidModel
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusPending
	}

	imagePath, err := s.images.Import(req.CapturedImagePath)
	if err != nil {
		return domain.RepairJob{}, fmt.Errorf("import job photo: %w", err)
	}

	createdAt := req.CreatedAt
	if createdAt == 0 {
		createdAt = s.clock.Now().UnixMilli()
	}

	job := domain.RepairJob{
		CustomerName: name,
		Phone:        phone,
		Model:        model,
		IMEI:         strings.TrimSpace(req.IMEI),
		Problem:      req.Problem,
		Status:       status,
		ImagePath:    imagePath,
		CreatedAt:    createdAt,
	}

	if err := s.repo.Insert(ctx, s.db, &job); err != nil {
		return domain.RepairJob{}, err
	}

	s.log.Debug("repair job added",
		zap.Int64("id", job.ID),
		zap.String("model", job.Model),
	)
	return job, nil
}

func (s *Service) List(ctx context.Context) ([]domain.RepairJob, error) {
	return s.repo.List(ctx, s.db)
}

// Get resolves a job by id with a read-time scan; the store only knows
// full-table reads.
func (s *Service) Get(ctx context.Context, id int64) (domain.RepairJob, error) {
	jobs, err := s.repo.List(ctx, s.db)
	if err != nil {
		return domain.RepairJob{}, err
	}
	for _, job := range jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return domain.RepairJob{}, domain.ErrNotFound
}

// UpdateStatus overwrites the job row with the new status. Applying the
// same status twice is a no-op for the stored data.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (domain.RepairJob, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return domain.RepairJob{}, domain.ErrInvalidStatus
	}

	job, err := s.Get(ctx, id)
	if err != nil {
		return domain.RepairJob{}, err
	}

	job.Status = status
	if err := s.repo.Update(ctx, s.db, job); err != nil {
		return domain.RepairJob{}, err
	}

	s.log.Debug("repair status updated",
		zap.Int64("id", id),
		zap.String("status", status),
	)
	return job, nil
}

func (s *Service) Invoice(ctx context.Context, req domain.InvoiceRequest) ([]byte, error) {
	job, err := s.Get(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	customer := s.resolveCustomer(ctx, job)

	issuedAt := s.clock.Now()
	number, err := pdf.FormatInvoiceNumber(s.shop.InvoiceNumberTemplate, issuedAt, job.ID)
	if err != nil {
		return nil, fmt.Errorf("format invoice number: %w", err)
	}

	fee := formatMoney(s.shop.Currency, req.ServiceFee)
	data := pdf.InvoiceData{
		ShopName:        s.shop.Name,
		ShopAddress:     s.shop.Address,
		ShopPhone:       s.shop.Phone,
		InvoiceNumber:   number,
		Reference:       s.genID.Generate().String(),
		IssueDate:       issuedAt.Format("2006-01-02"),
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Model:           job.Model,
		IMEI:            job.IMEI,
		Problem:         job.Problem,
		Status:          job.Status,
		Items: []pdf.InvoiceItem{
			{Description: "Repair service: " + job.Problem, Amount: fee},
		},
		Total: fee,
	}

	doc, err := s.pdf.GenerateInvoice(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return io.ReadAll(doc)
}

// resolveCustomer looks the contact up by phone. A missing contact falls
// back to a synthetic customer built from the job itself.
func (s *Service) resolveCustomer(ctx context.Context, job domain.RepairJob) customerdomain.Customer {
	found, ok, err := s.customers.FindByPhone(ctx, job.Phone)
	if err != nil {
		s.log.Warn("customer lookup failed, using job fields", zap.Error(err))
	}
	if err == nil && ok {
		return found
	}
	return customerdomain.Customer{
		Name:  job.CustomerName,
		Phone: job.Phone,
	}
}

func formatMoney(currency string, amount float64) string {
	value := strconv.FormatFloat(amount, 'f', 2, 64)
	if currency == "" {
		return value
	}
	return currency + " " + value
}
