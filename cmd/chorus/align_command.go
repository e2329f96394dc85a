package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"chorus/internal/logging"
	"chorus/internal/pipeline"
)

func newAlignCommand(configFlag *string) *cobra.Command {
	var (
		turnsPath string
		outputDir string
		baseName  string
		txtOnly   bool
		srtOnly   bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "align <words.json>",
		Short: "Align transcription words with speaker turns and write transcript artifacts",
		Long: `Align reads word-level transcription JSON (WhisperX/faster-whisper layout)
and diarization speaker turns (RTTM or JSON), assigns a speaker to every
word, and writes a plain dialogue transcript (.txt) and a phrase-segmented
subtitle file (.srt).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if txtOnly && srtOnly {
				return errors.New("--txt-only and --srt-only are mutually exclusive")
			}

			cfg, err := loadConfig(configFlag)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cfg, logger)
			result, err := runner.Run(cmd.Context(), pipeline.Request{
				WordsPath:       args[0],
				TurnsPath:       turnsPath,
				OutputDir:       outputDir,
				BaseName:        baseName,
				WriteTranscript: !srtOnly,
				WriteSubtitles:  !txtOnly,
				DisableCache:    noCache,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.TranscriptPath != "" {
				fmt.Fprintf(out, "Transcript: %s (%d paragraphs)\n", result.TranscriptPath, result.ParagraphCount)
			}
			if result.SubtitlePath != "" {
				fmt.Fprintf(out, "Subtitles:  %s (%d entries)\n", result.SubtitlePath, result.EntryCount)
			}
			if summary := renderSpeakerSummary(result); summary != "" {
				fmt.Fprintln(out, summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&turnsPath, "turns", "t", "", "Speaker turn file (.rttm or .json)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&baseName, "base-name", "", "Artifact base name (defaults to the words file name)")
	cmd.Flags().BoolVar(&txtOnly, "txt-only", false, "Write only the plain transcript")
	cmd.Flags().BoolVar(&srtOnly, "srt-only", false, "Write only the subtitle file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the alignment cache for this run")
	_ = cmd.MarkFlagRequired("turns")

	return cmd
}
