package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"trailcut/internal/anchors"
	"trailcut/internal/assemble"
	"trailcut/internal/config"
	"trailcut/internal/film"
	"trailcut/internal/logging"
	"trailcut/internal/manifest"
	"trailcut/internal/runstore"
	"trailcut/internal/services/llm"
	"trailcut/internal/signals"
	"trailcut/internal/subtitles"
	"trailcut/internal/vibes"
)

const previewClipLimit = 10

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		candidatesPath string
		subtitlesPath  string
		durationS      float64
		vibeName       string
		outputDir      string
	)

	cmd := &cobra.Command{
		Use:   "run <video>",
		Short: "Assemble a trailer manifest for a film",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			logging.CleanupOldLogs(logger, cfg.Paths.LogDir, "trailcut*.log", cfg.Logging.RetentionDays)

			sourceFile, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}
			if durationS <= 0 {
				return errors.New("--duration must be a positive number of seconds")
			}

			scenes, err := film.LoadCandidates(candidatesPath)
			if err != nil {
				return err
			}

			var dialogue []film.DialogueEvent
			if strings.TrimSpace(subtitlesPath) != "" {
				dialogue, err = subtitles.ParseSRT(subtitlesPath)
				if err != nil {
					return err
				}
			} else {
				logger.Warn("no subtitles supplied, dialogue signals disabled")
			}

			if strings.TrimSpace(vibeName) == "" {
				vibeName = cfg.Assembly.DefaultVibe
			}
			profile, err := vibes.Lookup(vibeName)
			if err != nil {
				return err
			}

			engine := buildEngine(cfg, logger)
			m, err := engine.Run(cmd.Context(), assemble.Input{
				SourceFile: sourceFile,
				Profile:    profile,
				Scenes:     scenes,
				Dialogue:   dialogue,
				DurationS:  durationS,
			})
			if err != nil {
				return err
			}

			targetDir := strings.TrimSpace(outputDir)
			if targetDir == "" {
				targetDir = cfg.Paths.WorkDir
			}
			manifestPath := filepath.Join(targetDir, manifest.FileName)
			if err := m.Write(manifestPath); err != nil {
				return err
			}

			recordRun(cmd, cfg.Paths.WorkDir, m, manifestPath, logger)

			fmt.Fprintf(cmd.OutOrStdout(), "Manifest written to %s (%d clips, vibe %s, anchors %s)\n",
				manifestPath, len(m.Clips), m.Vibe, m.Anchors.Source)
			fmt.Fprintln(cmd.OutOrStdout(), previewTable(m))
			return nil
		},
	}

	cmd.Flags().StringVar(&candidatesPath, "candidates", "", "Path to the candidate scenes JSON file")
	cmd.Flags().StringVar(&subtitlesPath, "subtitles", "", "Path to the film's SRT subtitle file")
	cmd.Flags().Float64Var(&durationS, "duration", 0, "Film duration in seconds")
	cmd.Flags().StringVar(&vibeName, "vibe", "", "Editing vibe (see 'trailcut vibes')")
	cmd.Flags().StringVar(&outputDir, "output", "", "Directory for the manifest (defaults to the work directory)")
	_ = cmd.MarkFlagRequired("candidates")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

// buildEngine wires signal extraction and anchor analysis from config. Both
// the face detector and the language model are optional capabilities.
func buildEngine(cfg *config.Config, logger *slog.Logger) *assemble.Engine {
	var faces signals.FaceDetector
	if path := cfg.Faces.CascadePath; path != "" {
		detector, err := signals.LoadFaceDetector(path)
		if err != nil {
			logger.Warn("face cascade unavailable, face signal disabled", "path", path, "error", err)
		} else {
			faces = detector
		}
	}

	var generator anchors.TextGenerator
	if cfg.LLMEnabled() {
		generator = llm.NewClient(llm.Config{
			APIKey:         cfg.LLM.APIKey,
			BaseURL:        cfg.LLM.BaseURL,
			Model:          cfg.LLM.Model,
			TimeoutSeconds: cfg.LLM.TimeoutSeconds,
		})
	} else {
		logger.Info("no llm api key configured, using heuristic anchors")
	}

	return assemble.NewEngine(
		signals.NewExtractor(faces, logger),
		anchors.NewExtractor(generator, logger),
		logger,
	)
}

func recordRun(cmd *cobra.Command, workDir string, m *manifest.Manifest, manifestPath string, logger *slog.Logger) {
	store, err := runstore.Open(workDir)
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return
	}
	defer store.Close()
	if _, err := store.RecordRun(cmd.Context(), m, manifestPath); err != nil {
		logger.Warn("record run failed", "error", err)
	}
}

func previewTable(m *manifest.Manifest) string {
	rows := make([][]string, 0, previewClipLimit)
	for i, clip := range m.Clips {
		if i >= previewClipLimit {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f–%.1f", clip.SourceStartS, clip.SourceEndS),
			string(clip.Zone),
			string(clip.BeatType),
			string(clip.Transition),
			fmt.Sprintf("%.3f", clip.StandoutScore),
		})
	}
	out := renderTable(
		[]string{"#", "Window (s)", "Zone", "Beat", "Transition", "Score"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
	if len(m.Clips) > previewClipLimit {
		out += fmt.Sprintf("\n(%d more clips in the manifest)", len(m.Clips)-previewClipLimit)
	}
	return out
}
