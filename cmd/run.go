package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"heurun.dev/pkg/heurun/internal/adapter"
	"heurun.dev/pkg/heurun/internal/controller"
	"heurun.dev/pkg/heurun/internal/domain"
	m "heurun.dev/pkg/heurun/internal/model"
)

var runParallelFlag int
var runNoEvaluateFlag bool
var runUseTesterFlag bool
var runPlainFlag bool

// buildWorkflow assembles a Workflow from a resolved config. Swapped out in
// tests.
var buildWorkflow = defaultWorkflow

func defaultWorkflow(cfg m.RunConfig, interactive bool) (domain.Workflow, error) {
	extractor, err := domain.NewExtractor(cfg.Test.ScoreRegex, cfg.Test.CommentRegex)
	if err != nil {
		return nil, err
	}

	runner := adapter.NewLocalProcessRunner()
	caseFS := adapter.NewLocalCaseFS()

	selector := domain.NewSelector(caseFS, cfg.Test.InDir)
	pipeline := domain.NewPipeline(cfg, runner, caseFS, extractor)
	scheduler := domain.NewScheduler(pipeline, cfg.Test.Threads)
	ui := controller.NewUI(os.Stdout, interactive)

	return domain.NewWorkflow(
		cfg,
		selector,
		pipeline,
		scheduler,
		adapter.NewSystemClipboard(),
		adapter.NewYAMLReportStore(),
		ui,
	), nil
}

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [cases...]",
		Short: "Build the solver and run the selected cases",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveRunConfig()
			if err != nil {
				return err
			}

			tokens := args
			if len(tokens) == 0 {
				tokens = strings.Fields(viper.GetString(testCasesKey))
			}

			interactive := !runPlainFlag && controller.IsTTY(os.Stdout)

			workflow, err := buildWorkflow(cfg, interactive)
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{Tokens: tokens})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, parallelFlagName, "p", viper.GetInt(testThreadsKey), "number of parallel case workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), testThreadsKey)

	cmd.Flags().BoolVar(&runNoEvaluateFlag, noEvaluateFlagName, viper.GetBool(testNoEvaluateKey), "skip the scoring step (cases carry no score)")
	bindFlagToConfig(cmd.Flags().Lookup(noEvaluateFlagName), testNoEvaluateKey)

	cmd.Flags().BoolVar(&runUseTesterFlag, useTesterFlagName, viper.GetBool(testUseTesterKey), "run the combined tester instead of solver+visualizer")
	bindFlagToConfig(cmd.Flags().Lookup(useTesterFlagName), testUseTesterKey)

	cmd.Flags().BoolVar(&runPlainFlag, plainFlagName, false, "disable the interactive progress display")
}
