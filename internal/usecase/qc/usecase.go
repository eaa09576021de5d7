package qc

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "bfsi-los-backend/internal/domain/qc"
)

type Usecase struct {
	records domain.Repository
}

func NewUsecase(records domain.Repository) *Usecase {
	return &Usecase{records: records}
}

type CreateInput struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name" validate:"required"`
	LeadID       string `json:"lead_id" validate:"required"`
	LoanType     string `json:"loan_type"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Record, error) {
	rec := &domain.Record{
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		LeadID:       in.LeadID,
		LoanType:     in.LoanType,
		Status:       domain.StatusPending,
	}
	if err := u.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Record, error) {
	return u.records.List(ctx)
}

func (u *Usecase) GetByID(ctx context.Context, id uint64) (*domain.Record, error) {
	rec, err := u.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) Approve(ctx context.Context, id uint64) (*domain.Record, error) {
	return u.setStatus(ctx, id, domain.StatusApproved)
}

func (u *Usecase) Reject(ctx context.Context, id uint64) (*domain.Record, error) {
	return u.setStatus(ctx, id, domain.StatusDeclined)
}

func (u *Usecase) setStatus(ctx context.Context, id uint64, status domain.Status) (*domain.Record, error) {
	rec, err := u.records.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}
