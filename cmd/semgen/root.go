package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"semgen/adapters/csvsheet"
	"semgen/adapters/excel"
	"semgen/adapters/output"
	"semgen/adapters/sqlcheck"
	"semgen/app"
	"semgen/internal"
	"semgen/internal/cli"
	"semgen/internal/config"
	"semgen/ports"

	"github.com/spf13/cobra"
)

const errorPrefix = "Error generating SEM configuration: "

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "semgen [options]",
		Short: "Generate the SEM configuration document from the rule sheets",
		Long:  cli.Usage,
		// Flags are interpreted by cli.ParseArgs: unknown flags and flags
		// missing their value are ignored rather than rejected.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// run performs one generation. Failures are reported on stderr and do not
// change the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts, err := cli.ParseArgs(args)
	if stderrors.Is(err, cli.ErrHelp) {
		fmt.Fprint(stdout, cli.Usage)
		return
	}

	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, errorPrefix+err.Error())
		return
	}

	logger := internal.DefaultLogger
	logger.SetLevel(internal.ParseLogLevel(appConfig.Log.Level))

	if opts.Format != "" {
		appConfig.Output.Format = opts.Format
	}
	if opts.Workbook != "" {
		appConfig.Paths.Workbook = opts.Workbook
	}

	var source ports.SheetSourcePort
	if appConfig.Paths.Workbook != "" {
		source = excel.NewWorkbookSource(appConfig.Paths.Workbook, logger)
	} else {
		source = csvsheet.NewDirSource(appConfig.Paths.InputDir, logger)
	}
	writer := output.NewFileWriter(appConfig.OutputPath(), appConfig.Output.Format, logger)

	svc := app.NewGeneratorService(source, writer, sqlcheck.NewChecker(), logger)
	result, err := svc.Generate(ctx, app.GenerateRequest{
		Overrides: opts.Overrides,
		CheckSQL:  opts.CheckSQL,
	})
	if err != nil {
		fmt.Fprintln(stderr, errorPrefix+err.Error())
		return
	}

	fmt.Fprintf(stdout, "SEM configuration generated successfully: %s\n", result.OutputPath)
	for _, line := range result.Summary.Lines() {
		fmt.Fprintln(stdout, line)
	}
}
