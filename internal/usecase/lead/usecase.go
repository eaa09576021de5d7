package lead

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bfsi-los-backend/internal/aml"
	analysisDomain "bfsi-los-backend/internal/domain/analysis"
	domain "bfsi-los-backend/internal/domain/lead"
	riskDomain "bfsi-los-backend/internal/domain/risk"
	summaryDomain "bfsi-los-backend/internal/domain/summary"
	"bfsi-los-backend/internal/domain/uow"
	"bfsi-los-backend/internal/finmetrics"
	"bfsi-los-backend/pkg/id"
)

var ErrAMLNotReady = errors.New("aml screening incomplete: company must be done and director idle or done")

type Usecase struct {
	leads domain.Repository
	uow   uow.UnitOfWork
	aml   *aml.Coordinator
}

func NewUsecase(leads domain.Repository, u uow.UnitOfWork, coordinator *aml.Coordinator) *Usecase {
	return &Usecase{leads: leads, uow: u, aml: coordinator}
}

// CreateInput is the `data` part of the intake form. Uploaded files are
// attached separately by the handler.
type CreateInput struct {
	CIN              string            `json:"cin"`
	RegistrationNo   string            `json:"registration_no"`
	BusinessName     string            `json:"business_name" validate:"required"`
	IncorporatedDate string            `json:"incorporated_date"`
	ContactEmail     string            `json:"contact_email" validate:"omitempty,email"`
	Address          domain.Address    `json:"address"`
	BusinessAddress  string            `json:"business_address"`
	Directors        []domain.Director `json:"directors"`
	ContactPerson    string            `json:"contact_person"`
	ContactPhone     string            `json:"contact_phone"`
	Designation      string            `json:"designation"`
	LoanType         string            `json:"loan_type" validate:"required"`
	LoanAmount       float64           `json:"loan_amount" validate:"gte=0"`
	Notes            string            `json:"notes"`
}

type UpdateInput struct {
	CreateInput
	Status domain.Status `json:"status" validate:"omitempty,oneof='Draft' 'Submitted' 'Under Review' 'Approved' 'Rejected'"`
}

// ResultsInput is the pipeline write-back payload. All four sections are
// persisted under the lead's borrower key in one transaction.
type ResultsInput struct {
	ExtractedValues map[string]finmetrics.YearlyItem        `json:"extracted_values" validate:"required"`
	Ratios          map[string]analysisDomain.RatioDetail `json:"ratios"`
	Risk            *RiskInput                      `json:"risk"`
	Summary         *SummaryInput                   `json:"summary"`
}

type RiskInput struct {
	Weights           riskDomain.Weights           `json:"weights"`
	FinancialStrength riskDomain.FinancialStrength `json:"financial_strength"`
	ManagementQuality riskDomain.ComponentScores   `json:"management_quality"`
	IndustryRisk      riskDomain.ComponentScores   `json:"industry_risk"`
	TotalScore        map[string]float64           `json:"total_score"`
	RiskBucket        map[string]string            `json:"risk_bucket"`
	RedFlags          map[string][]string          `json:"red_flags"`
}

type SummaryInput struct {
	FinancialSummary          string                     `json:"financial_summary"`
	ExecutiveSummary          string                     `json:"executive_summary"`
	FinancialSummaryAndRatios map[string]json.RawMessage         `json:"financial_summary_and_ratios"`
	LoanPurpose               json.RawMessage                    `json:"loan_purpose"`
	SWOTAnalysis              summaryDomain.SWOT         `json:"swot_analysis"`
	SecurityOffered           summaryDomain.SecurityOffered `json:"security_offered"`
	Recommendation            json.RawMessage                    `json:"recommendation"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput, userID string, docs []domain.StoredFile, signature *domain.StoredFile) (*domain.Lead, error) {
	l := &domain.Lead{
		LeadRef:          id.NewLeadRef(),
		CIN:              in.CIN,
		RegistrationNo:   in.RegistrationNo,
		BusinessName:     in.BusinessName,
		IncorporatedDate: in.IncorporatedDate,
		ContactEmail:     in.ContactEmail,
		Address:          datatypes.NewJSONType(in.Address),
		BusinessAddress:  in.BusinessAddress,
		Directors:        datatypes.NewJSONType(in.Directors),
		ContactPerson:    in.ContactPerson,
		ContactPhone:     in.ContactPhone,
		Designation:      in.Designation,
		LoanType:         in.LoanType,
		LoanAmount:       in.LoanAmount,
		Notes:            in.Notes,

		AMLCompanyStatus:  domain.AMLIdle,
		AMLDirectorStatus: domain.AMLIdle,
		Status:            domain.StatusDraft,
		UserID:            userID,

		FinancialDocuments: datatypes.NewJSONType(docs),
		Signature:          datatypes.NewJSONType(signature),
	}
	if err := u.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) GetByID(ctx context.Context, leadID uint64) (*domain.Lead, error) {
	l, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (u *Usecase) List(ctx context.Context) ([]domain.Lead, error) {
	return u.leads.List(ctx)
}

func (u *Usecase) Update(ctx context.Context, leadID uint64, in UpdateInput) (*domain.Lead, error) {
	l, err := u.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	// Submitting requires the screening guard: company done, director
	// untouched or done.
	if in.Status == domain.StatusSubmitted && l.Status != domain.StatusSubmitted {
		if !aml.ReadyToSubmit(l.AMLCompanyStatus, l.AMLDirectorStatus) {
			return nil, ErrAMLNotReady
		}
	}

	l.CIN = in.CIN
	l.RegistrationNo = in.RegistrationNo
	l.BusinessName = in.BusinessName
	l.IncorporatedDate = in.IncorporatedDate
	l.ContactEmail = in.ContactEmail
	l.Address = datatypes.NewJSONType(in.Address)
	l.BusinessAddress = in.BusinessAddress
	l.Directors = datatypes.NewJSONType(in.Directors)
	l.ContactPerson = in.ContactPerson
	l.ContactPhone = in.ContactPhone
	l.Designation = in.Designation
	l.LoanType = in.LoanType
	l.LoanAmount = in.LoanAmount
	l.Notes = in.Notes
	if in.Status != "" {
		l.Status = in.Status
	}

	if err := u.leads.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) Delete(ctx context.Context, leadID uint64) error {
	err := u.leads.Delete(ctx, leadID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// IngestResults persists the pipeline output for a lead: extracted values,
// ratios, risk grading and summary, all under the lead's borrower key, and
// flips the lead's analysis status. One transaction covers the five writes.
func (u *Usecase) IngestResults(ctx context.Context, leadID uint64, in ResultsInput) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Leads.GetByID(ctx, leadID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		name, ref := l.BusinessName, l.LeadRef

		if err := r.ExtractedValues.Create(ctx, &analysisDomain.ExtractedValues{
			CustomerName: name,
			LeadID:       ref,
			Data:         datatypes.NewJSONType(in.ExtractedValues),
		}); err != nil {
			return err
		}

		if len(in.Ratios) > 0 {
			if err := r.Ratios.Create(ctx, &analysisDomain.Ratios{
				CustomerName: name,
				LeadID:       ref,
				Ratios:       datatypes.NewJSONType(in.Ratios),
			}); err != nil {
				return err
			}
		}

		if in.Risk != nil {
			if err := r.Risks.Create(ctx, &riskDomain.Risk{
				CustomerName:      name,
				LeadID:            ref,
				Weights:           datatypes.NewJSONType(in.Risk.Weights),
				FinancialStrength: datatypes.NewJSONType(in.Risk.FinancialStrength),
				ManagementQuality: datatypes.NewJSONType(in.Risk.ManagementQuality),
				IndustryRisk:      datatypes.NewJSONType(in.Risk.IndustryRisk),
				TotalScore:        datatypes.NewJSONType(in.Risk.TotalScore),
				RiskBucket:        datatypes.NewJSONType(in.Risk.RiskBucket),
				RedFlags:          datatypes.NewJSONType(in.Risk.RedFlags),
			}); err != nil {
				return err
			}
		}

		if in.Summary != nil {
			if err := r.Summaries.Create(ctx, &summaryDomain.Summary{
				CustomerName:              name,
				LoanID:                    ref,
				FinancialSummary:          in.Summary.FinancialSummary,
				ExecutiveSummary:          in.Summary.ExecutiveSummary,
				FinancialSummaryAndRatios: datatypes.NewJSONType(in.Summary.FinancialSummaryAndRatios),
				LoanPurpose:               datatypes.JSON(in.Summary.LoanPurpose),
				SWOTAnalysis:              datatypes.NewJSONType(in.Summary.SWOTAnalysis),
				SecurityOffered:           datatypes.NewJSONType(in.Summary.SecurityOffered),
				Recommendation:            datatypes.JSON(in.Summary.Recommendation),
			}); err != nil {
				return err
			}
		}

		now := time.Now()
		l.AnalysisStatus = "completed"
		l.AnalysisDate = &now
		return r.Leads.Save(ctx, l)
	})
}

// SubmitAML kicks off screening for one target of the lead.
func (u *Usecase) SubmitAML(ctx context.Context, leadID uint64, target domain.AMLTarget) error {
	l, err := u.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	return u.aml.Submit(ctx, aml.Request{
		LeadID:       l.ID,
		Target:       target,
		BusinessName: l.BusinessName,
		CIN:          l.CIN,
		Directors:    l.Directors.Data(),
	})
}

// PollAML reports the stored status for one target.
func (u *Usecase) PollAML(ctx context.Context, leadID uint64, target domain.AMLTarget) (domain.AMLStatus, error) {
	l, err := u.GetByID(ctx, leadID)
	if err != nil {
		return "", err
	}
	if target == domain.AMLTargetDirector {
		return l.AMLDirectorStatus, nil
	}
	return l.AMLCompanyStatus, nil
}

// CancelAML aborts a running check and resets the target to idle.
func (u *Usecase) CancelAML(ctx context.Context, leadID uint64, target domain.AMLTarget) error {
	if _, err := u.GetByID(ctx, leadID); err != nil {
		return err
	}
	return u.aml.Cancel(ctx, leadID, target)
}
