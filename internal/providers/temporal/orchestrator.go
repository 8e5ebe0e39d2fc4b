package temporal

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
)

// TemporalOrchestrator starts workflows, the subset of client.Client used outside workers
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// ClientConfig holds the connection settings of a Temporal client
type ClientConfig struct {
	HostPort  string
	Namespace string
	// Identity is reported to the server, defaults to the SDK's host based identity
	Identity string
}

// Dial connects a Temporal client that logs through zap
func Dial(cfg ClientConfig, zapLogger *zap.Logger) (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
		Identity:  cfg.Identity,
		Logger:    NewZapLoggerAdapter(zapLogger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to temporal at %s: %w", cfg.HostPort, err)
	}
	return c, nil
}
