// Package trajectory persists immutable execution traces and derives an
// anti-pattern index from failure trajectories.
package trajectory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/ent"
	enttrajectory "github.com/agentfoundry/maestro/ent/trajectory"
	"github.com/agentfoundry/maestro/pkg/models"
)

// failureScanLimit bounds how many recent failures feed one anti-pattern
// aggregation.
const failureScanLimit = 500

// Store is the append-only trajectory store. Rows are never updated;
// amendments are additional entries.
type Store struct {
	client *ent.Client
}

// NewStore creates a trajectory store over an ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Store persists a trajectory and returns its id. The record is validated
// but never mutated.
func (s *Store) Store(ctx context.Context, record *models.TrajectoryRecord) (string, error) {
	if record == nil {
		return "", fmt.Errorf("trajectory record is required")
	}
	if record.AgentID == "" || record.TaskDescription == "" {
		return "", fmt.Errorf("agent_id and task_description are required")
	}
	switch record.FinalOutcome {
	case models.OutcomeSuccess, models.OutcomeFailure, models.OutcomePartial:
	default:
		return "", fmt.Errorf("invalid final_outcome %q", record.FinalOutcome)
	}
	if record.Reward < 0 || record.Reward > 1 {
		return "", fmt.Errorf("reward %f outside [0,1]", record.Reward)
	}

	id := record.TrajectoryID
	if id == "" {
		id = uuid.New().String()
	}

	steps, err := stepsToJSON(record.Steps)
	if err != nil {
		return "", fmt.Errorf("failed to encode steps: %w", err)
	}

	create := s.client.Trajectory.Create().
		SetID(id).
		SetAgentID(record.AgentID).
		SetTaskDescription(record.TaskDescription).
		SetSteps(steps).
		SetFinalOutcome(enttrajectory.FinalOutcome(record.FinalOutcome)).
		SetReward(record.Reward).
		SetDurationMs(record.Duration.Milliseconds())
	if record.TaskType != "" {
		create.SetTaskType(record.TaskType)
	}
	if record.InitialState != "" {
		create.SetInitialState(record.InitialState)
	}
	if record.FailureRationale != "" {
		create.SetFailureRationale(record.FailureRationale)
	}
	if record.ErrorCategory != "" {
		create.SetErrorCategory(record.ErrorCategory)
	}
	if record.FixApplied != "" {
		create.SetFixApplied(record.FixApplied)
	}
	if record.CorrelationID != "" {
		create.SetCorrelationID(record.CorrelationID)
	}
	if !record.CreatedAt.IsZero() {
		create.SetCreatedAt(record.CreatedAt.UTC())
	}

	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to store trajectory: %w", err)
	}
	return id, nil
}

// QueryByOutcome returns recent trajectories with the given outcome, newest
// first. agentFilter narrows to one agent when non-empty.
func (s *Store) QueryByOutcome(ctx context.Context, outcome models.Outcome, agentFilter string, limit int) ([]*models.TrajectoryRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.client.Trajectory.Query().
		Where(enttrajectory.FinalOutcomeEQ(enttrajectory.FinalOutcome(outcome)))
	if agentFilter != "" {
		query = query.Where(enttrajectory.AgentID(agentFilter))
	}

	rows, err := query.
		Order(ent.Desc(enttrajectory.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectories: %w", err)
	}

	records := make([]*models.TrajectoryRecord, 0, len(rows))
	for _, row := range rows {
		record, err := fromEnt(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Get returns one trajectory by id.
func (s *Store) Get(ctx context.Context, trajectoryID string) (*models.TrajectoryRecord, error) {
	row, err := s.client.Trajectory.Get(ctx, trajectoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trajectory %s: %w", trajectoryID, err)
	}
	return fromEnt(row)
}

// QueryAntiPatterns aggregates failure trajectories for a task type into the
// topN most frequent failure rationales with their most recent recorded fix.
func (s *Store) QueryAntiPatterns(ctx context.Context, taskType string, topN int) ([]*models.AntiPattern, error) {
	if topN <= 0 {
		topN = 5
	}

	rows, err := s.client.Trajectory.Query().
		Where(
			enttrajectory.TaskType(taskType),
			enttrajectory.FinalOutcomeEQ(enttrajectory.FinalOutcomeFailure),
			enttrajectory.FailureRationaleNEQ(""),
		).
		Order(ent.Desc(enttrajectory.FieldCreatedAt)).
		Limit(failureScanLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query failure trajectories: %w", err)
	}

	// Rows arrive newest first, so the first fix seen per rationale is the
	// most recent one.
	byRationale := make(map[string]*models.AntiPattern)
	var order []string
	for _, row := range rows {
		pattern, ok := byRationale[row.FailureRationale]
		if !ok {
			pattern = &models.AntiPattern{
				TaskType:         taskType,
				FailureRationale: row.FailureRationale,
				FixApplied:       row.FixApplied,
			}
			byRationale[row.FailureRationale] = pattern
			order = append(order, row.FailureRationale)
		}
		pattern.Frequency++
		if pattern.FixApplied == "" && row.FixApplied != "" {
			pattern.FixApplied = row.FixApplied
		}
	}

	patterns := make([]*models.AntiPattern, 0, len(byRationale))
	for _, rationale := range order {
		patterns = append(patterns, byRationale[rationale])
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Frequency > patterns[j].Frequency
	})
	if len(patterns) > topN {
		patterns = patterns[:topN]
	}
	return patterns, nil
}

func fromEnt(row *ent.Trajectory) (*models.TrajectoryRecord, error) {
	steps, err := stepsFromJSON(row.Steps)
	if err != nil {
		return nil, fmt.Errorf("failed to decode steps for %s: %w", row.ID, err)
	}
	return &models.TrajectoryRecord{
		TrajectoryID:     row.ID,
		AgentID:          row.AgentID,
		TaskDescription:  row.TaskDescription,
		TaskType:         row.TaskType,
		InitialState:     row.InitialState,
		Steps:            steps,
		FinalOutcome:     models.Outcome(row.FinalOutcome),
		Reward:           row.Reward,
		Duration:         time.Duration(row.DurationMs) * time.Millisecond,
		FailureRationale: row.FailureRationale,
		ErrorCategory:    row.ErrorCategory,
		FixApplied:       row.FixApplied,
		CorrelationID:    row.CorrelationID,
		CreatedAt:        row.CreatedAt,
	}, nil
}

func stepsToJSON(steps []models.ActionStep) ([]map[string]interface{}, error) {
	data, err := json.Marshal(steps)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []map[string]interface{}{}
	}
	return out, nil
}

func stepsFromJSON(raw []map[string]interface{}) ([]models.ActionStep, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var steps []models.ActionStep
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}
