package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// workflowFields extracts the identifying fields of the running workflow
// Returns nil outside of a workflow context
func workflowFields(ctx workflow.Context) []zap.Field {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	workflowType := info.WorkflowType.Name
	if workflowType == "" {
		workflowType = "unknown"
	}

	return []zap.Field{
		zap.String("workflow_type", workflowType),
		zap.String("workflow_id", info.WorkflowExecution.ID),
		zap.String("run_id", info.WorkflowExecution.RunID),
		zap.String("task_queue", info.TaskQueueName),
	}
}

// FromWorkflow returns the global logger annotated with workflow identifiers
func FromWorkflow(ctx workflow.Context) *zap.Logger {
	fields := workflowFields(ctx)
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}

// InfoWf logs an info message with workflow context (shortcut for workflows)
// Skipped while the workflow is replaying so history replays stay quiet
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Info(msg, fields...)
}

// ErrorWf logs an error message with workflow context (shortcut for workflows)
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	if err != nil {
		FromWorkflow(ctx).Error(err.Error(), fields...)
	} else {
		FromWorkflow(ctx).Error("error occurred", fields...)
	}
}

// WarnWf logs a warning message with workflow context (shortcut for workflows)
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Warn(msg, fields...)
}
