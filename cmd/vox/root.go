package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vox/internal/config"
	"vox/internal/deps"
	"vox/internal/download"
	"vox/internal/history"
	"vox/internal/interrupt"
	"vox/internal/logging"
	"vox/internal/media"
	"vox/internal/pipeline"
	"vox/internal/whisper"
)

func newRootCommand() *cobra.Command {
	var flagArgs config.Args
	var listModels bool
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "vox [input]",
		Short: "Transcribe local media files and remote URLs to text",
		Long: `vox transcribes audio from a local media file or a remote URL into
txt, json, srt, or vtt output using whisper.cpp. Remote inputs are fetched
with yt-dlp; everything is normalized to MP3 with ffmpeg before inference.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			if listModels {
				printModelCatalog(cmd.OutOrStdout())
				return nil
			}
			if len(argv) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("an input file or URL is required unless --list-models is given")
			}
			flagArgs.Input = argv[0]
			return runTranscription(cmd, flagArgs, configFlag)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&flagArgs.Format, "format", "f", "txt", "Comma-separated output formats (txt, json, srt, vtt)")
	flags.StringVarP(&flagArgs.Name, "name", "n", "", "Base name for output files (defaults to the media title)")
	flags.StringVarP(&flagArgs.Output, "output", "o", "", "Output directory (defaults to the current directory)")
	flags.CountVarP(&flagArgs.Verbose, "verbose", "v", "Increase log verbosity (repeatable)")
	flags.BoolVarP(&flagArgs.Keep, "keep", "k", false, "Keep the intermediate MP3 next to the transcripts")
	flags.StringVar(&flagArgs.Model, "model", config.DefaultModel, "Whisper model to use (see --list-models)")
	flags.BoolVar(&listModels, "list-models", false, "List available Whisper models and exit")
	flags.BoolVar(&flagArgs.Overwrite, "overwrite", false, "Overwrite existing output files without prompting")
	flags.BoolVar(&flagArgs.Stdout, "stdout", false, "Print the transcript to stdout instead of writing files")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Defaults file path")

	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newDepsCommand())

	return rootCmd
}

// runTranscription overlays file-backed defaults under untouched flags,
// validates the run configuration, wires the collaborators, and executes
// the pipeline.
func runTranscription(cmd *cobra.Command, args config.Args, configPath string) error {
	defaults, resolvedPath, found, err := config.LoadDefaults(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		args.Format = defaults.Format
	}
	if !flags.Changed("model") {
		args.Model = defaults.Model
	}
	if !flags.Changed("output") && defaults.OutputDir != "" {
		args.Output = defaults.OutputDir
	}
	if !flags.Changed("keep") {
		args.Keep = defaults.KeepAudio
	}
	if !flags.Changed("overwrite") {
		args.Overwrite = defaults.Overwrite
	}

	cfg, err := config.FromArgs(args)
	if err != nil {
		return err
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []config.OutputFormat{config.FormatTXT}
	}

	logger := logging.New(logging.Options{Verbosity: cfg.VerboseLevel})
	if found {
		logger.Debug("loaded defaults", "path", resolvedPath)
	}

	if err := deps.CheckFFmpeg(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "ffmpeg is required. Install it with your package manager,")
		fmt.Fprintln(cmd.ErrOrStderr(), "e.g. `brew install ffmpeg` or `apt install ffmpeg`.")
		return err
	}

	token := interrupt.NewToken()
	stop := interrupt.Install(token)
	defer stop()

	ffmpeg := media.NewFFmpeg("")
	transcriber, err := whisper.NewService("", "", ffmpeg, logger)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cfg, token, logger, download.New(""), ffmpeg, transcriber).
		WithConfirm(confirmOverwrite)

	if ledgerPath, pathErr := history.DefaultPath(); pathErr == nil {
		if store, openErr := history.Open(ledgerPath); openErr == nil {
			defer store.Close()
			runner.WithRecorder(store)
		} else {
			logger.Debug("history ledger unavailable", "error", openErr)
		}
	}

	return runner.Run(cmd.Context())
}
