package services

import (
	"context"
	"strings"
	"time"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	DefaultQuestion = "List my recent transactions."
	NoActionMessage = "No action proposed."
)

type ProposeInput struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Question string
	Provider string
}

// ProposeOutcome holds the stored proposal, or nil with the provider's
// message when no valid tool call came back.
type ProposeOutcome struct {
	Proposal *models.Proposal
	Provider string
	Message  string
}

// ProposalService runs grounding, the provider call, validation and storage
type ProposalService struct {
	aiConfig     config.AIConfig
	providers    llm.Factory
	grounding    GroundingServiceInterface
	validator    ProposalValidatorInterface
	proposalRepo repositories.ProposalRepositoryInterface
	auditLogger  AuditLoggerInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
}

func NewProposalService(
	aiConfig config.AIConfig,
	providers llm.Factory,
	grounding GroundingServiceInterface,
	validator ProposalValidatorInterface,
	proposalRepo repositories.ProposalRepositoryInterface,
	auditLogger AuditLoggerInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
) ProposalServiceInterface {
	if providers == nil {
		providers = llm.NewProvider
	}

	return &ProposalService{
		aiConfig:     aiConfig,
		providers:    providers,
		grounding:    grounding,
		validator:    validator,
		proposalRepo: proposalRepo,
		auditLogger:  auditLogger,
		auditService: auditService,
		metrics:      metrics,
	}
}

func (s *ProposalService) Propose(ctx context.Context, input ProposeInput) (*ProposeOutcome, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		question = DefaultQuestion
	}

	groundingCtx, err := s.grounding.Build(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}

	provider, err := s.providers(s.aiConfig, input.Provider)
	if err != nil {
		return nil, err
	}

	result, err := s.callProvider(ctx, provider, llm.Request{
		System:      llm.SystemPrompt,
		UserMessage: groundingCtx.PromptPayload(question),
		Tool:        llm.ProposeRecategorizeTool(),
	})
	if err != nil {
		s.countOutcome(provider.Name(), "provider_error")
		return nil, err
	}

	if !result.IsToolCall() || result.ToolCall.Name != llm.ProposeRecategorizeToolName {
		s.countOutcome(provider.Name(), "no_action")

		message := strings.TrimSpace(result.Text)
		if message == "" {
			message = NoActionMessage
		}
		return &ProposeOutcome{Provider: provider.Name(), Message: message}, nil
	}

	action, err := s.validator.Validate(ctx, input.TenantID, groundingCtx, result.ToolCall)
	if err != nil {
		s.countOutcome(provider.Name(), "rejected")
		s.auditLogger.LogProposalRejectedByValidator(ctx, input.TenantID, input.UserID, provider.Name(), err)
		s.auditService.Record(ctx, AuditEntry{
			TenantID: &input.TenantID,
			UserID:   &input.UserID,
			Action:   models.AuditActionProposalRefused,
			Resource: models.AuditResourceProposal,
			Metadata: models.JSONBMap{"provider": provider.Name(), "reason": err.Error()},
		})
		return nil, err
	}

	proposal := &models.Proposal{
		TenantID:                 input.TenantID,
		UserID:                   input.UserID,
		Provider:                 provider.Name(),
		Model:                    result.ModelID,
		RequestID:                result.RequestID,
		ProposedAction:           action.ToMap(),
		ReferencedTransactionIDs: pq.StringArray(action.TransactionIDs),
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	s.countOutcome(provider.Name(), "proposed")
	s.auditLogger.LogProposalCreated(ctx, proposal)
	s.auditService.Record(ctx, AuditEntry{
		TenantID:   &proposal.TenantID,
		UserID:     &proposal.UserID,
		Action:     models.AuditActionProposalCreated,
		Resource:   models.AuditResourceProposal,
		ResourceID: proposal.ID.String(),
		Metadata: models.JSONBMap{
			"provider":        proposal.Provider,
			"model":           proposal.Model,
			"request_id":      proposal.RequestID,
			"transaction_ids": action.TransactionIDs,
			"category_name":   action.CategoryName,
		},
	})

	return &ProposeOutcome{Proposal: proposal, Provider: provider.Name()}, nil
}

func (s *ProposalService) ListProposals(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Proposal, error) {
	return s.proposalRepo.ListByTenant(ctx, tenantID, limit)
}

// callProvider bounds the provider call by the configured timeout. There is
// exactly one attempt.
func (s *ProposalService) callProvider(ctx context.Context, provider llm.Provider, req llm.Request) (*llm.Result, error) {
	if s.aiConfig.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.aiConfig.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := provider.ProposeAction(ctx, req)
	s.metrics.RecordProcessingTime("provider_request", time.Since(start))

	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.IncrementCounter("provider_request", map[string]string{
		"provider": provider.Name(),
		"status":   status,
	})

	if err != nil {
		return nil, llm.AsProviderError(provider.Name(), err)
	}
	return result, nil
}

func (s *ProposalService) countOutcome(provider, outcome string) {
	s.metrics.IncrementCounter("proposals_total", map[string]string{
		"provider": provider,
		"outcome":  outcome,
	})
}
