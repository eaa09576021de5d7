package uow

import (
	"context"

	"bfsi-los-backend/internal/domain/analysis"
	"bfsi-los-backend/internal/domain/lead"
	"bfsi-los-backend/internal/domain/memo"
	"bfsi-los-backend/internal/domain/qc"
	"bfsi-los-backend/internal/domain/risk"
	"bfsi-los-backend/internal/domain/summary"
)

type Repos struct {
	Leads           lead.Repository
	ExtractedValues analysis.ExtractedValuesRepository
	Ratios          analysis.RatiosRepository
	Risks           risk.Repository
	Summaries       summary.Repository
	Memos           memo.Repository
	QC              qc.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn with every repo bound to one transaction. Used by
	// the memo snapshot write and the analysis-results ingestion.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
