// Package runtime is the per-agent executor: it composes routing, budget,
// memory, self-correction, refinement termination, trajectory recording, and
// observability into one task pipeline.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agentfoundry/maestro/pkg/budget"
	"github.com/agentfoundry/maestro/pkg/config"
	"github.com/agentfoundry/maestro/pkg/correction"
	"github.com/agentfoundry/maestro/pkg/llm"
	"github.com/agentfoundry/maestro/pkg/memory"
	"github.com/agentfoundry/maestro/pkg/models"
	"github.com/agentfoundry/maestro/pkg/observability"
	"github.com/agentfoundry/maestro/pkg/refine"
	"github.com/agentfoundry/maestro/pkg/router"
	"github.com/agentfoundry/maestro/pkg/trajectory"
)

// Error kinds surfaced in the response envelope.
const (
	ErrKindValidation     = "validation"
	ErrKindConfiguration  = "configuration"
	ErrKindSafetyBlocked  = "safety_blocked"
	ErrKindBudgetExceeded = "budget_exceeded"
	ErrKindApprovalDenied = "approval_denied"
	ErrKindSignature      = "signature"
	ErrKindProvider       = "provider"
	ErrKindExecution      = "execution"
)

// Default promotion thresholds applied when the agent config leaves them
// unset.
const (
	defaultReflectionThreshold = 0.7
	defaultConsensusThreshold  = 0.9
)

// Request is one task execution request.
type Request struct {
	AgentName    string            `json:"agent_name"`
	UserID       string            `json:"user_id"`
	Task         *models.Task      `json:"task"`
	Expectations map[string]string `json:"expectations,omitempty"`
}

// Response is the run envelope. Failed runs carry ErrorKind and Message;
// successful runs carry the artifact plus correction details.
type Response struct {
	OK            bool                       `json:"ok"`
	CorrelationID string                     `json:"correlation_id"`
	Attempts      int                        `json:"attempts"`
	ErrorKind     string                     `json:"error_kind,omitempty"`
	Message       string                     `json:"message,omitempty"`
	Artifact      string                     `json:"artifact,omitempty"`
	QAFeedback    *models.QAFeedback         `json:"qa_feedback,omitempty"`
	History       []correction.AttemptRecord `json:"correction_history,omitempty"`
	Stats         *correction.Snapshot       `json:"stats,omitempty"`
	Routing       *models.RoutingDecision    `json:"routing,omitempty"`
	SessionState  refine.State               `json:"session_state,omitempty"`
	TrajectoryID  string                     `json:"trajectory_id,omitempty"`
}

// Runtime executes tasks for any registered agent. One instance serves all
// agents; per-request state lives on the stack.
type Runtime struct {
	cfg          *config.Config
	router       *router.Router
	governor     *budget.Governor
	memory       memory.Store
	trajectories *trajectory.Store
	llm          llm.Client
	obs          *observability.Manager
	tools        map[string]Tool
}

// New wires a runtime from the shared subsystems.
func New(
	cfg *config.Config,
	rt *router.Router,
	governor *budget.Governor,
	mem memory.Store,
	trajectories *trajectory.Store,
	llmClient llm.Client,
	obs *observability.Manager,
) (*Runtime, error) {
	if cfg == nil || rt == nil || governor == nil || mem == nil || trajectories == nil || llmClient == nil || obs == nil {
		return nil, fmt.Errorf("all runtime dependencies are required")
	}
	return &Runtime{
		cfg:          cfg,
		router:       rt,
		governor:     governor,
		memory:       mem,
		trajectories: trajectories,
		llm:          llmClient,
		obs:          obs,
		tools:        make(map[string]Tool),
	}, nil
}

// RegisterTool makes a tool invocable by agents that list it.
func (r *Runtime) RegisterTool(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Execute runs one task through the full pipeline. Failures are reported in
// the envelope; the process-level error is reserved for context
// cancellation.
func (r *Runtime) Execute(ctx context.Context, req *Request) *Response {
	corr := observability.NewCorrelationContext(taskDescription(req))
	ctx = observability.WithCorrelation(ctx, corr)

	span := r.obs.Tracer.StartSpan(ctx, observability.SpanOrchestration, "agent_run")
	resp := r.execute(ctx, req, corr)
	if resp.OK {
		span.End(observability.SpanStatusOK)
	} else {
		span.SetAttribute("error_kind", resp.ErrorKind)
		span.End(observability.SpanStatusError)
	}
	return resp
}

func (r *Runtime) execute(ctx context.Context, req *Request, corr *observability.CorrelationContext) *Response {
	if req == nil || req.Task == nil {
		return fail(corr, ErrKindValidation, "task is required", 0)
	}
	agentCfg, err := r.cfg.AgentRegistry.Get(req.AgentName)
	if err != nil {
		return fail(corr, ErrKindConfiguration, err.Error(), 0)
	}

	// Route; a safety block aborts with the gate's explanation.
	decision, err := r.router.Route(ctx, req.Task, req.AgentName, nil)
	if err != nil {
		return fail(corr, ErrKindValidation, err.Error(), 0)
	}
	if decision.Blocked {
		return fail(corr, ErrKindSafetyBlocked, decision.BlockedReason, 0)
	}

	// Reserve budget for the projected spend. Free-tier runs cost nothing
	// and skip the governor entirely.
	if decision.EstimatedCost > 0 {
		record, budgetErr := r.governor.EnsureBudget(ctx, req.AgentName, "llm", decision.EstimatedCost,
			map[string]interface{}{
				"model_tier": string(decision.ModelTier),
				"model":      decision.Model,
			}, corr.CorrelationID)
		if budgetErr != nil {
			return fail(corr, budgetErrorKind(budgetErr), budgetErr.Error(), 0)
		}
		r.obs.RecordEvent(observability.Event{
			Category:      observability.EventSpend,
			CorrelationID: corr.CorrelationID,
			AgentID:       req.AgentName,
			Payload: map[string]interface{}{
				"service": "llm",
				"amount":  record.Amount,
				"status":  record.Status,
			},
		})
	}

	taskContext, contextMemoryIDs := r.gatherContext(ctx, req)

	provider, err := r.providerFor(agentCfg, decision)
	if err != nil {
		return fail(corr, ErrKindConfiguration, err.Error(), 0)
	}

	recorder := newStepRecorder()

	toolContext, toolErr := r.runTools(ctx, req, recorder)
	if toolErr != nil {
		r.recordTrajectory(ctx, req, recorder, models.OutcomeFailure, 0,
			toolErr.Error(), "tool_error", corr.CorrelationID)
		return fail(corr, ErrKindExecution, toolErr.Error(), 0)
	}
	if toolContext != "" {
		taskContext = strings.TrimSpace(taskContext + "\n" + toolContext)
	}

	executor := &llmExecutor{
		client:       r.llm,
		provider:     provider,
		instructions: agentCfg.Instructions,
		recorder:     recorder,
	}
	evaluator := &qaEvaluator{client: r.llm, provider: provider, recorder: recorder}

	maxAttempts := 0
	if agentCfg.MaxCorrectionAttempts != nil {
		maxAttempts = *agentCfg.MaxCorrectionAttempts
	}
	loop := correction.NewLoop(executor, evaluator, maxAttempts, nil)

	result, err := loop.Run(ctx, req.Task.Description, req.Expectations, taskContext)
	if err != nil {
		// Nothing executed at all: provider-level failure.
		trajectoryID := r.recordTrajectory(ctx, req, recorder, models.OutcomeFailure, 0,
			err.Error(), "provider_error", corr.CorrelationID)
		resp := fail(corr, ErrKindProvider, err.Error(), 0)
		resp.TrajectoryID = trajectoryID
		return resp
	}

	session := buildSession(result)
	score := qualityScore(result)

	outcome := models.OutcomeFailure
	rationale := ""
	if result.Valid {
		outcome = models.OutcomeSuccess
	} else {
		rationale = fmt.Sprintf("validation failed after %d attempts", result.Attempts)
		if result.Solution != "" {
			outcome = models.OutcomePartial
		}
	}

	trajectoryID := r.recordTrajectory(ctx, req, recorder, outcome, score,
		rationale, errorCategory(result), corr.CorrelationID)

	if result.Valid {
		r.promoteStrategy(ctx, req, agentCfg, result, score, contextMemoryIDs)
	}
	r.emitRunEvents(req, corr, result, score, executor.canned.Load())

	statsSnapshot := loop.Stats().Snapshot()
	return &Response{
		OK:            result.Valid,
		CorrelationID: corr.CorrelationID,
		Attempts:      result.Attempts,
		Artifact:      result.Solution,
		QAFeedback:    result.Feedback,
		History:       result.History,
		Stats:         &statsSnapshot,
		Routing:       decision,
		SessionState:  session.State(),
		TrajectoryID:  trajectoryID,
		ErrorKind:     invalidErrorKind(result),
		Message:       invalidMessage(result),
	}
}

// gatherContext pulls similar memories and known anti-patterns, returning
// the prompt context and the ids of the memories that fed it. Store errors
// are logged and skipped; they never abort the request.
func (r *Runtime) gatherContext(ctx context.Context, req *Request) (string, []string) {
	var b strings.Builder
	var memoryIDs []string

	entries, err := r.memory.Retrieve(ctx, req.AgentName, req.UserID, req.Task.Description, "", 5)
	if err != nil {
		slog.Warn("Memory retrieval failed, continuing without context", "error", err)
	} else if len(entries) > 0 {
		b.WriteString("Relevant past patterns:\n")
		for _, entry := range entries {
			fmt.Fprintf(&b, "- %s\n", entry.Content)
			memoryIDs = append(memoryIDs, entry.ID)
		}
	}

	if req.Task.TaskType != "" {
		patterns, err := r.trajectories.QueryAntiPatterns(ctx, req.Task.TaskType, 3)
		if err != nil {
			slog.Warn("Anti-pattern query failed, continuing without it", "error", err)
		} else if len(patterns) > 0 {
			b.WriteString("Known failure modes to avoid:\n")
			for _, pattern := range patterns {
				fmt.Fprintf(&b, "- %s", pattern.FailureRationale)
				if pattern.FixApplied != "" {
					fmt.Fprintf(&b, " (known fix: %s)", pattern.FixApplied)
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String(), memoryIDs
}

// runTools invokes the task's required tools in order, feeding their output
// into the solution context. A tool failure is fatal for the request.
func (r *Runtime) runTools(ctx context.Context, req *Request, recorder *stepRecorder) (string, error) {
	var b strings.Builder
	for _, name := range req.Task.RequiredTools {
		tool, ok := r.tools[name]
		if !ok {
			continue
		}
		args := map[string]any{"task": req.Task.Description}
		output, err := tool.Invoke(ctx, args)
		if err != nil {
			recorder.record(name, args, fmt.Sprintf("error: %v", err), "")
			return "", fmt.Errorf("tool %s failed: %w", name, err)
		}
		recorder.record(name, args, truncate(output, maxRecordedResult), "gather tool context")
		fmt.Fprintf(&b, "Output of %s:\n%s\n", name, output)
	}
	return b.String(), nil
}

func (r *Runtime) providerFor(agentCfg *config.AgentConfig, decision *models.RoutingDecision) (*config.LLMProviderConfig, error) {
	if agentCfg.LLMProvider != "" {
		return r.cfg.LLMProviderRegistry.Get(agentCfg.LLMProvider)
	}
	return r.cfg.LLMProviderRegistry.GetByTier(string(decision.ModelTier))
}

// recordTrajectory persists the run trace. Persistence failures are logged
// and skipped.
func (r *Runtime) recordTrajectory(ctx context.Context, req *Request, recorder *stepRecorder, outcome models.Outcome, reward float64, rationale, category, correlationID string) string {
	record := &models.TrajectoryRecord{
		AgentID:          req.AgentName,
		TaskDescription:  req.Task.Description,
		TaskType:         req.Task.TaskType,
		Steps:            recorder.snapshot(),
		FinalOutcome:     outcome,
		Reward:           reward,
		FailureRationale: rationale,
		ErrorCategory:    category,
		CorrelationID:    correlationID,
	}
	id, err := r.trajectories.Store(ctx, record)
	if err != nil {
		slog.Warn("Failed to persist trajectory", "agent", req.AgentName, "error", err)
		return ""
	}
	return id
}

// promoteStrategy reflects a successful run back into memory when its score
// clears the agent's reflection threshold, and into the consensus namespace
// above the consensus threshold. The promoted strategy is linked to the
// memories that informed the run, so later retrievals can follow the graph.
func (r *Runtime) promoteStrategy(ctx context.Context, req *Request, agentCfg *config.AgentConfig, result *correction.Result, score float64, contextMemoryIDs []string) {
	reflection := defaultReflectionThreshold
	if agentCfg.ReflectionThreshold != nil {
		reflection = *agentCfg.ReflectionThreshold
	}
	if score < reflection {
		return
	}

	content := fmt.Sprintf("Strategy for %q (score %.2f): %s",
		req.Task.Description, score, truncate(result.Solution, maxRecordedResult))

	metadata := map[string]interface{}{
		"task_type": req.Task.TaskType,
		"score":     score,
	}
	if len(contextMemoryIDs) > 0 {
		metadata[memory.MetadataRelatedTo] = contextMemoryIDs
	}

	if _, err := r.memory.Store(ctx, memory.StoreRequest{
		AgentID:  req.AgentName,
		UserID:   req.UserID,
		Content:  content,
		Type:     memory.TypeStrategy,
		Metadata: metadata,
	}); err != nil {
		slog.Warn("Failed to promote strategy into memory", "agent", req.AgentName, "error", err)
		return
	}

	consensus := defaultConsensusThreshold
	if agentCfg.ConsensusThreshold != nil {
		consensus = *agentCfg.ConsensusThreshold
	}
	if score < consensus {
		return
	}
	if _, err := r.memory.Store(ctx, memory.StoreRequest{
		AgentID: req.AgentName,
		UserID:  "consensus",
		Content: content,
		Type:    memory.TypeConsensus,
		Metadata: map[string]interface{}{
			"task_type": req.Task.TaskType,
			"score":     score,
		},
	}); err != nil {
		slog.Warn("Failed to promote strategy into consensus", "agent", req.AgentName, "error", err)
	}
}

func (r *Runtime) emitRunEvents(req *Request, corr *observability.CorrelationContext, result *correction.Result, score float64, canned bool) {
	r.obs.RecordEvent(observability.Event{
		Category:      observability.EventRubric,
		CorrelationID: corr.CorrelationID,
		AgentID:       req.AgentName,
		Payload: map[string]interface{}{
			"score":    score,
			"valid":    result.Valid,
			"attempts": result.Attempts,
		},
	})
	r.obs.RecordEvent(observability.Event{
		Category:      observability.EventHallucination,
		CorrelationID: corr.CorrelationID,
		AgentID:       req.AgentName,
		Payload: map[string]interface{}{
			"canned_response": canned,
		},
	})
	r.obs.RecordEvent(observability.Event{
		Category:      observability.EventPolicy,
		CorrelationID: corr.CorrelationID,
		AgentID:       req.AgentName,
		Payload: map[string]interface{}{
			"outcome": result.Valid,
		},
	})
}

// buildSession replays the correction history into a refinement session so
// the terminator's state reflects how the loop ended.
func buildSession(result *correction.Result) *refine.Session {
	session := refine.NewSession(refine.DefaultConfig())
	for _, attempt := range result.History {
		if attempt.Feedback == nil {
			continue
		}
		if decision := session.RecordRound(attempt.Feedback.Confidence); decision != refine.DecisionContinue {
			break
		}
	}
	if result.Valid {
		session.Complete()
	} else {
		session.Fail()
	}
	return session
}

func qualityScore(result *correction.Result) float64 {
	if result.Feedback == nil {
		return 0
	}
	if !result.Valid {
		return 0
	}
	return result.Feedback.Confidence
}

func errorCategory(result *correction.Result) string {
	if result.Valid {
		return ""
	}
	return "qa_rejected"
}

func invalidErrorKind(result *correction.Result) string {
	if result.Valid {
		return ""
	}
	return ErrKindExecution
}

func invalidMessage(result *correction.Result) string {
	if result.Valid {
		return ""
	}
	return fmt.Sprintf("no valid solution after %d attempts", result.Attempts)
}

func budgetErrorKind(err error) string {
	switch {
	case errors.Is(err, budget.ErrBudgetExceeded):
		return ErrKindBudgetExceeded
	case errors.Is(err, budget.ErrApprovalDenied):
		return ErrKindApprovalDenied
	case errors.Is(err, budget.ErrSignature):
		return ErrKindSignature
	case errors.Is(err, budget.ErrValidation):
		return ErrKindValidation
	default:
		return ErrKindConfiguration
	}
}

func fail(corr *observability.CorrelationContext, kind, message string, attempts int) *Response {
	return &Response{
		OK:            false,
		CorrelationID: corr.CorrelationID,
		ErrorKind:     kind,
		Message:       message,
		Attempts:      attempts,
	}
}

func taskDescription(req *Request) string {
	if req == nil || req.Task == nil {
		return ""
	}
	return req.Task.Description
}
