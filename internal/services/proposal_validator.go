package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"
	"ledger-copilot/internal/validation"

	"github.com/google/uuid"
)

const (
	GroundingRuleCitationNotInTargets = "citation_not_in_targets"
	GroundingRuleOutOfTenantOrUnknown = "out_of_tenant_or_unknown"
)

var (
	ErrCitationNotInTargets = errors.New("every citation must be one of the targeted transactions")
	ErrUnknownCategory      = errors.New("category does not exist for tenant")
)

// RecategorizeArgs is the argument shape of the propose_recategorize tool
type RecategorizeArgs struct {
	TransactionIDs []string `json:"transaction_ids" validate:"required,min=1,max=50,dive,uuid_rfc4122"`
	CategoryName   string   `json:"category_name" validate:"required,min=1,max=64,category_label"`
	Rationale      string   `json:"rationale" validate:"required,min=1,max=500"`
	Citations      []string `json:"citations" validate:"required,min=1,dive,required"`
}

// ShapeError reports tool arguments that do not match the tool schema
type ShapeError struct {
	Details []string
}

func (e *ShapeError) Error() string {
	return "invalid tool arguments: " + strings.Join(e.Details, "; ")
}

// GroundingError reports ids that break a grounding rule
type GroundingError struct {
	Rule string
	IDs  []string
}

func (e *GroundingError) Error() string {
	return fmt.Sprintf("grounding rule %s violated by %s", e.Rule, strings.Join(e.IDs, ", "))
}

func (e *GroundingError) Unwrap() error {
	if e.Rule == GroundingRuleCitationNotInTargets {
		return ErrCitationNotInTargets
	}
	return nil
}

// ProposalValidator accepts a tool call only when its citations are a subset
// of its targets and its targets are a subset of the grounding context.
type ProposalValidator struct {
	categoryRepo repositories.CategoryRepositoryInterface
	validator    *validation.Validator
}

func NewProposalValidator(categoryRepo repositories.CategoryRepositoryInterface) ProposalValidatorInterface {
	return &ProposalValidator{
		categoryRepo: categoryRepo,
		validator:    validation.GetValidator(),
	}
}

func (v *ProposalValidator) Validate(ctx context.Context, tenantID uuid.UUID, groundingCtx *GroundingContext, call *llm.ToolCall) (*models.RecategorizeAction, error) {
	if call == nil {
		return nil, &ShapeError{Details: []string{"tool call is missing"}}
	}
	if groundingCtx == nil || groundingCtx.TenantID != tenantID {
		return nil, errors.New("grounding context does not belong to tenant")
	}

	args, err := v.decode(call.Arguments)
	if err != nil {
		return nil, err
	}

	targets := normalizeIDs(args.TransactionIDs)
	citations := normalizeIDs(args.Citations)

	targetSet := make(map[string]struct{}, len(targets))
	for _, id := range targets {
		targetSet[id] = struct{}{}
	}

	var strayCitations []string
	for _, id := range citations {
		if _, ok := targetSet[id]; !ok {
			strayCitations = append(strayCitations, id)
		}
	}
	if len(strayCitations) > 0 {
		return nil, &GroundingError{Rule: GroundingRuleCitationNotInTargets, IDs: strayCitations}
	}

	if missing := groundingCtx.Missing(targets); len(missing) > 0 {
		return nil, &GroundingError{Rule: GroundingRuleOutOfTenantOrUnknown, IDs: missing}
	}

	categoryName := strings.TrimSpace(args.CategoryName)
	category, err := v.categoryRepo.FindByName(ctx, tenantID, categoryName)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryName)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	return &models.RecategorizeAction{
		Action:         models.ActionRecategorize,
		TransactionIDs: targets,
		CategoryName:   category.Name,
		CategoryID:     category.ID.String(),
		Rationale:      strings.TrimSpace(args.Rationale),
		Citations:      citations,
	}, nil
}

func (v *ProposalValidator) decode(raw json.RawMessage) (*RecategorizeArgs, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &ShapeError{Details: []string{"tool arguments are empty"}}
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	var args RecategorizeArgs
	if err := decoder.Decode(&args); err != nil {
		return nil, &ShapeError{Details: []string{err.Error()}}
	}

	if err := v.validator.Struct(&args); err != nil {
		return nil, &ShapeError{Details: validation.FormatErrors(err)}
	}

	return &args, nil
}

// normalizeIDs puts ids in canonical lower-case UUID form and drops repeats,
// keeping first-seen order. Citations that are not UUIDs stay verbatim and
// so can never match a target.
func normalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if parsed, err := uuid.Parse(id); err == nil {
			id = parsed.String()
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
