// Package memo creates and manages credit memos. A memo is cut from the
// borrower's summary at creation time and never tracks later summary
// edits, so the snapshot read and the memo write share one transaction.
package memo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bfsi-los-backend/internal/domain/borrower"
	domain "bfsi-los-backend/internal/domain/memo"
	qcDomain "bfsi-los-backend/internal/domain/qc"
	summaryDomain "bfsi-los-backend/internal/domain/summary"
	"bfsi-los-backend/internal/domain/uow"
	"bfsi-los-backend/internal/finmetrics"
)

type Usecase struct {
	memos     domain.Repository
	summaries summaryDomain.Repository
	qc        qcDomain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(memos domain.Repository, summaries summaryDomain.Repository, qc qcDomain.Repository, u uow.UnitOfWork) *Usecase {
	return &Usecase{memos: memos, summaries: summaries, qc: qc, uow: u}
}

type CreateInput struct {
	CustomerName string `json:"customer_name" validate:"required"`
	LeadID       string `json:"lead_id" validate:"required"`
	LoanType     string `json:"loan_type"`
	CreatedBy    string `json:"created_by"`

	LoanPurposeTable  string   `json:"loan_purpose_table"`
	SummaryHighlights string   `json:"summary_highlights"`
	Comments          string   `json:"comments"`
	Attachments       []string `json:"attachments"`
}

// EligibleBorrower is a borrower whose summary exists and whose QC record
// is approved, i.e. a memo can be cut for them.
type EligibleBorrower struct {
	CustomerName string `json:"customer_name"`
	LeadID       string `json:"lead_id"`
	LoanType     string `json:"loan_type"`
}

// Create snapshots the borrower's summary into a new memo. The borrower
// must have an approved QC record; the gate and the snapshot run inside
// one transaction so a concurrent summary rewrite cannot tear the copy.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Memo, error) {
	var out *domain.Memo
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		key := borrower.NewKey(in.CustomerName, in.LeadID)

		qcRec, err := r.QC.GetByKey(ctx, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotEligible
			}
			return err
		}
		if qcRec.Status != qcDomain.StatusApproved {
			return domain.ErrNotEligible
		}

		s, err := r.Summaries.GetByKey(ctx, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoSummary
			}
			return err
		}

		m := snapshot(s, in)
		if err := r.Memos.Create(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	return out, err
}

// ListEligible returns borrowers the generate-memo picker may offer:
// QC approved, summary present, no memo written yet.
func (u *Usecase) ListEligible(ctx context.Context) ([]EligibleBorrower, error) {
	qcs, err := u.qc.ListByStatus(ctx, qcDomain.StatusApproved)
	if err != nil {
		return nil, err
	}
	out := make([]EligibleBorrower, 0, len(qcs))
	for i := range qcs {
		rec := &qcs[i]
		if _, err := u.summaries.GetByKey(ctx, rec.Key()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if _, err := u.memos.GetByKey(ctx, rec.Key()); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		out = append(out, EligibleBorrower{
			CustomerName: rec.CustomerName,
			LeadID:       rec.LeadID,
			LoanType:     rec.LoanType,
		})
	}
	return out, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Memo, error) {
	return u.memos.List(ctx)
}

func (u *Usecase) GetByMemoID(ctx context.Context, memoID string) (*domain.Memo, error) {
	m, err := u.memos.GetByMemoID(ctx, memoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// UpdateStatus moves a memo between Draft, Approved and Declined.
func (u *Usecase) UpdateStatus(ctx context.Context, memoID string, status domain.Status) (*domain.Memo, error) {
	switch status {
	case domain.StatusDraft, domain.StatusApproved, domain.StatusDeclined:
	default:
		return nil, errors.New("invalid memo status: " + string(status))
	}
	m, err := u.memos.GetByMemoID(ctx, memoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	m.Status = status
	if err := u.memos.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// snapshot copies the summary into a memo, normalizing the loosely shaped
// summary fields into plain string slices.
func snapshot(s *summaryDomain.Summary, in CreateInput) *domain.Memo {
	ratios := make(map[string][]string, len(s.FinancialSummaryAndRatios.Data()))
	for k, raw := range s.FinancialSummaryAndRatios.Data() {
		ratios[k] = finmetrics.NormalizeToArray(raw)
	}

	return &domain.Memo{
		MemoID:       uuid.NewString(),
		CustomerName: s.CustomerName,
		LeadID:       s.LoanID,
		LoanType:     in.LoanType,
		CreatedBy:    in.CreatedBy,
		Status:       domain.StatusDraft,

		LoanPurposeTable: in.LoanPurposeTable,
		ExecutiveSummary: s.ExecutiveSummary,

		FinancialSummaryAndRatios: datatypes.NewJSONType(ratios),
		LoanPurpose:               datatypes.NewJSONType(finmetrics.NormalizeToArray(rawJSON(s.LoanPurpose))),
		SWOTAnalysis:              s.SWOTAnalysis,
		SecurityOffered:           s.SecurityOffered,
		Recommendation:            datatypes.NewJSONType(finmetrics.NormalizeToArray(rawJSON(s.Recommendation))),

		SummaryHighlights: in.SummaryHighlights,
		Comments:          in.Comments,
		Attachments:       datatypes.NewJSONType(in.Attachments),
	}
}

func rawJSON(j datatypes.JSON) []byte {
	if len(j) == 0 {
		return nil
	}
	return []byte(j)
}
