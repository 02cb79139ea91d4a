// Command conductor is a minimal CLI harness around the orchestrator
// kernel: it wires the demo agents and tools, submits a goal, and
// prints or renders the resulting timeline. It exists to give the
// kernel an entry point a human can drive; it is illustrative
// scaffolding, not part of the core per spec §1.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/wintertask/orchestrator/internal/agentcontext"
	"github.com/wintertask/orchestrator/internal/config"
	"github.com/wintertask/orchestrator/internal/demoagents"
	"github.com/wintertask/orchestrator/internal/executor"
	"github.com/wintertask/orchestrator/internal/feedback"
	"github.com/wintertask/orchestrator/internal/logger"
	"github.com/wintertask/orchestrator/internal/memory"
	"github.com/wintertask/orchestrator/internal/models"
	"github.com/wintertask/orchestrator/internal/persistence"
	"github.com/wintertask/orchestrator/internal/report"
	"github.com/wintertask/orchestrator/internal/toolregistry"
)

// Version is the current version of the conductor application.
const Version = "1.0.0"

var (
	flagConfigPath string
	flagDataRoot   string
	flagLogLevel   string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "conductor",
		Short:   "Drive the multi-agent task orchestrator from the command line.",
		Version: Version,
	}
	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flagDataRoot, "data-root", "", "override the persisted-state directory")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override the configured log level")

	root.AddCommand(newRunCommand())
	root.AddCommand(newFeedbackCommand())
	root.AddCommand(newReportCommand())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, err
	}
	if flagDataRoot != "" {
		cfg.DataRoot = flagDataRoot
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newToolRegistry() *toolregistry.ToolRegistry {
	tools := toolregistry.NewToolRegistry()
	tools.RegisterTool(toolregistry.EchoTool{})
	tools.RegisterTool(toolregistry.FileTool{})
	return tools
}

func newRunCommand() *cobra.Command {
	var goalID string
	cmd := &cobra.Command{
		Use:   "run <goal text>",
		Short: "Submit a goal as a Planning task and run it to completion.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.NewConsoleLogger(os.Stdout, cfg.LogLevel)

			orch := executor.NewOrchestrator(*cfg, log)
			demoagents.RegisterAll(orch)

			if goalID == "" {
				goalID = uuid.NewString()
			}
			projectDir := persistence.NewPaths(cfg.DataRoot).ProjectDir(goalID)
			if err := os.MkdirAll(projectDir, 0o755); err != nil {
				return fmt.Errorf("create project directory: %w", err)
			}

			ctx := agentcontext.AgentContext{
				Task:          memory.NewTaskMemory(),
				Session:       memory.NewSessionMemory(),
				Project:       memory.NewProjectMemory(projectDir),
				Global:        memory.NewGlobalMemory(),
				PlannerMemory: memory.NewPlannerMemory(),
				Tools:         newToolRegistry(),
			}

			task := models.AgentTask{
				TaskID:   uuid.NewString(),
				TaskType: string(models.CapabilityPlanning),
				Payload:  args[0],
				Context:  models.TaskContext{Origin: "cli", GoalID: &goalID},
				Status:   models.Pending(),
			}

			resp := orch.Handle(task, ctx)
			if resp.Err != nil {
				return fmt.Errorf("goal %s failed: %s", goalID, resp.Err.Reason)
			}

			fmt.Printf("goal %s succeeded\n", goalID)
			return nil
		},
	}
	cmd.Flags().StringVar(&goalID, "goal-id", "", "goal identifier to use (random UUID if omitted)")
	return cmd
}

func newFeedbackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback",
		Short: "Drain the persisted task-feedback queue, retrying flagged tasks up to the configured bound.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.NewConsoleLogger(os.Stdout, cfg.LogLevel)

			orch := executor.NewOrchestrator(*cfg, log)
			demoagents.RegisterAll(orch)

			paths := persistence.NewPaths(cfg.DataRoot)
			proc := feedback.NewProcessor(orch, paths, log, cfg.MaxRetries)

			ctx := agentcontext.AgentContext{
				Task:          memory.NewTaskMemory(),
				Session:       memory.NewSessionMemory(),
				Project:       memory.NewProjectMemory(cfg.DataRoot),
				Global:        memory.NewGlobalMemory(),
				PlannerMemory: memory.NewPlannerMemory(),
				Tools:         newToolRegistry(),
			}

			return proc.Drain(ctx)
		},
	}
}

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <goal-id>",
		Short: "Render a goal's persisted timeline as Markdown.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paths := persistence.NewPaths(cfg.DataRoot)
			events, err := paths.ReadTimeline(args[0])
			if err != nil {
				return fmt.Errorf("read timeline: %w", err)
			}
			fmt.Print(report.RenderTimeline(args[0], events))
			return nil
		},
	}
	return cmd
}
