package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/database"
	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ProposalServiceTestSuite struct {
	suite.Suite
	db       *database.DB
	tenantA  *models.Tenant
	tenantB  *models.Tenant
	userA    *models.User
	txnA1    *models.Transaction
	txnA2    *models.Transaction
	txnB1    *models.Transaction
	provider *scriptedProvider
	aiConfig config.AIConfig
	ctx      context.Context
}

func TestProposalServiceSuite(t *testing.T) {
	suite.Run(t, new(ProposalServiceTestSuite))
}

func (s *ProposalServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.tenantA = database.CreateTestTenant(s.T(), s.db, "Tenant A")
	s.tenantB = database.CreateTestTenant(s.T(), s.db, "Tenant B")
	s.userA = database.CreateTestUser(s.T(), s.db, s.tenantA, "user-a@demo.local")
	database.CreateTestCategory(s.T(), s.db, s.tenantA.ID, "Coffee")
	database.CreateTestCategory(s.T(), s.db, s.tenantA.ID, "Dining")

	day := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	s.txnA1 = database.CreateTestTransaction(s.T(), s.db, s.tenantA.ID, "txn-a-1", "Starbucks", "-5.50", day)
	s.txnA2 = database.CreateTestTransaction(s.T(), s.db, s.tenantA.ID, "txn-a-2", "Starbucks", "-4.25", day.AddDate(0, 0, 1))
	s.txnB1 = database.CreateTestTransaction(s.T(), s.db, s.tenantB.ID, "txn-b-1", "Delta", "-320.00", day)

	s.provider = &scriptedProvider{name: config.ProviderOpenAI}
	s.aiConfig = config.AIConfig{DefaultProvider: config.ProviderOpenAI, RequestTimeout: 5 * time.Second}
}

func (s *ProposalServiceTestSuite) newService(factory llm.Factory) ProposalServiceInterface {
	logger := discardLogger()
	return NewProposalService(
		s.aiConfig,
		factory,
		NewGroundingService(repositories.NewTransactionRepository(s.db.DB)),
		NewProposalValidator(repositories.NewCategoryRepository(s.db.DB)),
		repositories.NewProposalRepository(s.db.DB),
		NewAuditLogger(logger),
		NewAuditService(repositories.NewAuditLogRepository(s.db.DB), logger),
		testMetrics(),
	)
}

func (s *ProposalServiceTestSuite) input(question string) ProposeInput {
	return ProposeInput{TenantID: s.tenantA.ID, UserID: s.userA.ID, Question: question}
}

func (s *ProposalServiceTestSuite) countProposals() int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.Proposal{}).Count(&count).Error)
	return count
}

func (s *ProposalServiceTestSuite) countAudit(action string) int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.AuditLog{}).Where("action = ?", action).Count(&count).Error)
	return count
}

func (s *ProposalServiceTestSuite) TestPropose_StoresValidatedProposal() {
	s.provider.result = toolCallResult(map[string]any{
		"transaction_ids": []string{s.txnA1.ID.String(), s.txnA2.ID.String()},
		"category_name":   "Coffee",
		"rationale":       "Starbucks is coffee.",
		"citations":       []string{s.txnA1.ID.String(), s.txnA2.ID.String()},
	})

	outcome, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("Move Starbucks to Coffee"))
	s.Require().NoError(err)
	s.Require().NotNil(outcome.Proposal)

	proposal := outcome.Proposal
	s.Equal(config.ProviderOpenAI, outcome.Provider)
	s.Equal(models.ProposalStatusProposed, proposal.Status)
	s.Equal(s.tenantA.ID, proposal.TenantID)
	s.Equal(s.userA.ID, proposal.UserID)
	s.Equal("test-model", proposal.Model)
	s.Equal("req-123", proposal.RequestID)
	s.ElementsMatch([]string{s.txnA1.ID.String(), s.txnA2.ID.String()}, []string(proposal.ReferencedTransactionIDs))

	stored, err := repositories.NewProposalRepository(s.db.DB).GetByID(s.ctx, s.tenantA.ID, proposal.ID)
	s.Require().NoError(err)
	action, err := stored.Action()
	s.Require().NoError(err)
	s.Equal("Coffee", action.CategoryName)

	req := s.provider.lastRequest()
	s.Equal(llm.SystemPrompt, req.System)
	s.Equal(llm.ProposeRecategorizeToolName, req.Tool.Name)
	s.Contains(req.UserMessage, s.txnA1.ID.String())
	s.NotContains(req.UserMessage, s.txnB1.ID.String())
	s.True(strings.HasSuffix(req.UserMessage, "User question: Move Starbucks to Coffee"))

	s.Equal(int64(1), s.countAudit(models.AuditActionProposalCreated))
}

func (s *ProposalServiceTestSuite) TestPropose_BlankQuestionUsesDefault() {
	s.provider.result = &llm.Result{Kind: llm.ResultText, Text: "Here are your transactions."}

	_, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("   "))
	s.Require().NoError(err)
	s.True(strings.HasSuffix(s.provider.lastRequest().UserMessage, DefaultQuestion))
}

func (s *ProposalServiceTestSuite) TestPropose_TextReplyIsNoAction() {
	s.provider.result = &llm.Result{Kind: llm.ResultText, Text: "You spent $9.75 at Starbucks."}

	outcome, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("How much on coffee?"))
	s.Require().NoError(err)
	s.Nil(outcome.Proposal)
	s.Equal("You spent $9.75 at Starbucks.", outcome.Message)
	s.Zero(s.countProposals())
}

func (s *ProposalServiceTestSuite) TestPropose_EmptyTextFallsBackToMessage() {
	s.provider.result = &llm.Result{Kind: llm.ResultText}

	outcome, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("hi"))
	s.Require().NoError(err)
	s.Equal(NoActionMessage, outcome.Message)
}

func (s *ProposalServiceTestSuite) TestPropose_OtherToolIsNoAction() {
	result := toolCallResult(map[string]any{"amount": "100"})
	result.ToolCall.Name = "transfer_funds"
	s.provider.result = result

	outcome, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("send money"))
	s.Require().NoError(err)
	s.Nil(outcome.Proposal)
	s.Zero(s.countProposals())
}

func (s *ProposalServiceTestSuite) TestPropose_RejectedCallStoresNothing() {
	s.provider.result = toolCallResult(map[string]any{
		"transaction_ids": []string{s.txnA1.ID.String(), s.txnB1.ID.String()},
		"category_name":   "Coffee",
		"rationale":       "All coffee.",
		"citations":       []string{s.txnA1.ID.String()},
	})

	outcome, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("Recategorize"))
	s.Nil(outcome)

	var groundingErr *GroundingError
	s.Require().ErrorAs(err, &groundingErr)
	s.Equal([]string{s.txnB1.ID.String()}, groundingErr.IDs)

	s.Zero(s.countProposals())
	s.Equal(int64(1), s.countAudit(models.AuditActionProposalRefused))
}

func (s *ProposalServiceTestSuite) TestPropose_UnknownCategoryStoresNothing() {
	s.provider.result = toolCallResult(map[string]any{
		"transaction_ids": []string{s.txnA1.ID.String()},
		"category_name":   "Groceries",
		"rationale":       "Food.",
		"citations":       []string{s.txnA1.ID.String()},
	})

	_, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("Recategorize"))
	s.ErrorIs(err, ErrUnknownCategory)
	s.Zero(s.countProposals())
}

func (s *ProposalServiceTestSuite) TestPropose_ProviderErrorSurfaces() {
	s.provider.err = &llm.ProviderError{Provider: "openai", StatusCode: 500, Body: "upstream exploded"}

	_, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("anything"))

	var providerErr *llm.ProviderError
	s.Require().ErrorAs(err, &providerErr)
	s.Equal(500, providerErr.StatusCode)
	s.Len(s.provider.requests, 1)
	s.Zero(s.countProposals())
}

func (s *ProposalServiceTestSuite) TestPropose_TimeoutIsTaggedWithProvider() {
	s.aiConfig.RequestTimeout = 20 * time.Millisecond
	s.provider.hang = true

	_, err := s.newService(s.provider.factory()).Propose(s.ctx, s.input("anything"))

	var providerErr *llm.ProviderError
	s.Require().ErrorAs(err, &providerErr)
	s.Equal(config.ProviderOpenAI, providerErr.Provider)
	s.Zero(providerErr.StatusCode)
	s.True(providerErr.Timeout())
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Len(s.provider.requests, 1)
	s.Zero(s.countProposals())
}

func (s *ProposalServiceTestSuite) TestPropose_UnknownProvider() {
	input := s.input("anything")
	input.Provider = "mistral"

	_, err := s.newService(s.provider.factory()).Propose(s.ctx, input)
	s.ErrorIs(err, llm.ErrUnknownProvider)
	s.Empty(s.provider.requests)
}

func (s *ProposalServiceTestSuite) TestPropose_MissingCredentialFailsBeforeNetwork() {
	input := s.input("anything")
	input.Provider = "claude"

	_, err := s.newService(nil).Propose(s.ctx, input)
	s.ErrorIs(err, llm.ErrMissingCredential)
	s.Zero(s.countProposals())
}

func (s *ProposalServiceTestSuite) TestListProposals_TenantScoped() {
	repo := repositories.NewProposalRepository(s.db.DB)
	for _, tenant := range []*models.Tenant{s.tenantA, s.tenantB} {
		s.Require().NoError(repo.Create(s.ctx, &models.Proposal{
			TenantID:                 tenant.ID,
			UserID:                   uuid.New(),
			Provider:                 config.ProviderOpenAI,
			ProposedAction:           models.JSONBMap{"action": models.ActionRecategorize},
			ReferencedTransactionIDs: []string{uuid.NewString()},
		}))
	}

	proposals, err := s.newService(s.provider.factory()).ListProposals(s.ctx, s.tenantA.ID, 10)
	s.Require().NoError(err)
	s.Require().Len(proposals, 1)
	s.Equal(s.tenantA.ID, proposals[0].TenantID)
}
