package evolution

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/agentfoundry/maestro/ent"
	"github.com/agentfoundry/maestro/ent/evolutionattempt"
)

// Attempt is one evolution attempt, persisted whether or not it was
// accepted.
type Attempt struct {
	AttemptID        string             `json:"attempt_id"`
	AgentType        string             `json:"agent_type"`
	ParentVersion    string             `json:"parent_version"`
	ImprovementType  ImprovementType    `json:"improvement_type"`
	Diagnosis        string             `json:"diagnosis,omitempty"`
	ProposedChanges  string             `json:"proposed_changes,omitempty"`
	MetricsBefore    map[string]float64 `json:"metrics_before,omitempty"`
	MetricsAfter     map[string]float64 `json:"metrics_after,omitempty"`
	ImprovementDelta float64            `json:"improvement_delta"`
	RubricReward     float64            `json:"rubric_reward"`
	Accepted         bool               `json:"accepted"`
	Generation       int                `json:"generation"`
	SandboxLogs      string             `json:"sandbox_logs,omitempty"`
}

// Archive persists attempts and exposes accepted variants as parents for
// selection. Single writer per agent_type: one evolution run at a time.
type Archive struct {
	client     *ent.Client
	evolvedDir string
}

// NewArchive creates an archive over an ent client. evolvedDir is the root
// for accepted variant artifacts.
func NewArchive(client *ent.Client, evolvedDir string) *Archive {
	return &Archive{client: client, evolvedDir: evolvedDir}
}

// Record persists one attempt. The attempt id is assigned when empty.
func (a *Archive) Record(ctx context.Context, attempt *Attempt) (string, error) {
	id := attempt.AttemptID
	if id == "" {
		id = uuid.New().String()
		attempt.AttemptID = id
	}

	create := a.client.EvolutionAttempt.Create().
		SetID(id).
		SetAgentType(attempt.AgentType).
		SetParentVersion(attempt.ParentVersion).
		SetImprovementType(evolutionattempt.ImprovementType(attempt.ImprovementType)).
		SetImprovementDelta(attempt.ImprovementDelta).
		SetRubricReward(attempt.RubricReward).
		SetAccepted(attempt.Accepted).
		SetGeneration(attempt.Generation)
	if attempt.Diagnosis != "" {
		create.SetDiagnosis(attempt.Diagnosis)
	}
	if attempt.ProposedChanges != "" {
		create.SetProposedChanges(attempt.ProposedChanges)
	}
	if attempt.MetricsBefore != nil {
		create.SetMetricsBefore(attempt.MetricsBefore)
	}
	if attempt.MetricsAfter != nil {
		create.SetMetricsAfter(attempt.MetricsAfter)
	}
	if attempt.SandboxLogs != "" {
		create.SetSandboxLogs(attempt.SandboxLogs)
	}

	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to record attempt: %w", err)
	}
	return id, nil
}

// Parents returns the accepted variants for an agent type, usable for
// fitness-proportional selection. Variant code is read back from the
// evolved artifact when present.
func (a *Archive) Parents(ctx context.Context, agentType string) ([]Parent, error) {
	rows, err := a.client.EvolutionAttempt.Query().
		Where(
			evolutionattempt.AgentType(agentType),
			evolutionattempt.Accepted(true),
		).
		Order(ent.Asc(evolutionattempt.FieldGeneration)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}

	parents := make([]Parent, 0, len(rows))
	for _, row := range rows {
		parent := Parent{
			Version:        row.ID,
			BenchmarkScore: row.MetricsAfter["overall_score"],
		}
		if path, pathErr := a.ArtifactPath(agentType, row.ID); pathErr == nil {
			if code, readErr := os.ReadFile(path); readErr == nil {
				parent.Code = string(code)
			}
		}
		parents = append(parents, parent)
	}
	return parents, nil
}

// Size returns the number of accepted variants for an agent type.
func (a *Archive) Size(ctx context.Context, agentType string) (int, error) {
	count, err := a.client.EvolutionAttempt.Query().
		Where(
			evolutionattempt.AgentType(agentType),
			evolutionattempt.Accepted(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count archive: %w", err)
	}
	return count, nil
}

// ArtifactPath builds the sanitized path for an accepted variant.
func (a *Archive) ArtifactPath(agentType, attemptID string) (string, error) {
	name, err := sanitizeComponent(agentType)
	if err != nil {
		return "", err
	}
	attempt, err := sanitizeComponent(attemptID)
	if err != nil {
		return "", err
	}
	return filepath.Join(a.evolvedDir, name, attempt), nil
}

// SaveArtifact writes accepted variant code under the evolved root.
func (a *Archive) SaveArtifact(agentType, attemptID, code string) (string, error) {
	path, err := a.ArtifactPath(agentType, attemptID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create evolved dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("failed to write variant artifact: %w", err)
	}
	return path, nil
}
