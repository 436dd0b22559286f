package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"faceless-pipeline/bridge"
	"faceless-pipeline/config"
	"faceless-pipeline/history"
	"faceless-pipeline/ideas"
	"faceless-pipeline/pipeline"
	"faceless-pipeline/schedule"
	"faceless-pipeline/script"
	"faceless-pipeline/trends"
	"faceless-pipeline/types"
	"faceless-pipeline/upload"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "faceless",
		Short:         "Content automation toolkit for faceless YouTube channels",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}

	root.AddCommand(
		newIdeasCmd(loadConfig),
		newScriptCmd(loadConfig),
		newPipelineCmd(loadConfig),
		newUploadCmd(loadConfig),
		newAnalyticsCmd(loadConfig),
		newShortenCmd(loadConfig),
		newScheduleCmd(loadConfig),
	)
	return root
}

type configLoader func() (*config.Config, error)

func newIdeasCmd(loadConfig configLoader) *cobra.Command {
	var niche string
	var withTrends bool

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Generate fresh video ideas for a niche",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if niche == "" {
				niche = cfg.Ideas.DefaultNiche
			}

			store, err := history.Open(cfg.History.File, history.JSONStoreOptions{
				RetentionLimit: cfg.History.RetentionLimit,
				LockTimeout:    time.Duration(cfg.History.LockTimeoutSec) * time.Second,
			})
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			// The flag wins when set; otherwise fall back to the config default.
			if !cmd.Flags().Changed("trends") {
				withTrends = cfg.Ideas.IncludeTrends
			}

			gen := ideas.New(store, cfg.Ideas)
			if withTrends {
				fetcher, err := trends.New(cfg)
				if err != nil {
					return err
				}
				topics, err := fetcher.TopicsFor(cmd.Context(), niche)
				if err != nil {
					log.Printf("⚠️  Trend fetch failed: %v — continuing without", err)
				} else {
					gen.SetTrending(topics)
				}
			}

			list, err := gen.Generate(niche)
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	cmd.Flags().StringVar(&niche, "niche", "", "niche to generate for (default from config)")
	cmd.Flags().BoolVar(&withTrends, "trends", false, "mix in trending Reddit topics")
	return cmd
}

func newScriptCmd(loadConfig configLoader) *cobra.Command {
	var title, hook, out string
	var minutes int
	var useLLM bool

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Write a full narration script for a title",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			if minutes == 0 {
				minutes = cfg.Script.TargetMinutes
			}

			var s *types.Script
			if useLLM {
				writer, err := script.NewLLMWriter(cfg)
				if err != nil {
					return err
				}
				if s, err = writer.Generate(cmd.Context(), title, hook, minutes); err != nil {
					return err
				}
			} else {
				if s, err = script.New(cfg).Generate(title, hook, minutes); err != nil {
					return err
				}
			}

			if out != "" {
				if err := os.WriteFile(out, []byte(s.Text), 0o644); err != nil {
					return fmt.Errorf("write script: %w", err)
				}
				log.Printf("[script] Saved to %s", out)
				return nil
			}
			fmt.Println(s.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "video title to script")
	cmd.Flags().StringVar(&hook, "hook", "", "opening hook (optional)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "target length in minutes (default from config)")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "use the LLM writer instead of templates")
	cmd.Flags().StringVar(&out, "out", "", "write the script to a file instead of stdout")
	return cmd
}

func newPipelineCmd(loadConfig configLoader) *cobra.Command {
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run the full idea → script → TTS → upload pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, err = pipeline.New(cfg).Run(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Niche, "niche", "", "niche to produce for (default from config)")
	cmd.Flags().BoolVar(&opts.UseTrends, "trends", false, "mix in trending Reddit topics")
	cmd.Flags().BoolVar(&opts.UseLLM, "llm", false, "use the LLM script writer")
	cmd.Flags().BoolVar(&opts.Distribute, "distribute", false, "cross-post after upload")
	return cmd
}

func newUploadCmd(loadConfig configLoader) *cobra.Command {
	var videoFile, title, description string
	var tags []string
	var atNextSlot bool

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a finished video straight to YouTube, bypassing n8n",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if videoFile == "" || title == "" {
				return fmt.Errorf("--video and --title are required")
			}

			req := upload.Request{
				VideoFile:   videoFile,
				Title:       title,
				Description: description,
				Tags:        tags,
			}
			if atNextSlot {
				planner, err := schedule.New(cfg)
				if err != nil {
					return err
				}
				req.PublishAt = planner.NextPublishTime(time.Now())
			}

			result, err := upload.New(cfg).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := upload.LogUpload(cfg.Paths.Logs, req, result); err != nil {
				log.Printf("⚠️  Could not write upload log: %v", err)
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&videoFile, "video", "", "path to the video file")
	cmd.Flags().StringVar(&title, "title", "", "video title")
	cmd.Flags().StringVar(&description, "description", "", "video description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().BoolVar(&atNextSlot, "schedule", false, "publish at the next configured slot instead of immediately")
	return cmd
}

func newAnalyticsCmd(loadConfig configLoader) *cobra.Command {
	var channelID string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Fetch the current channel analytics snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			snap, err := bridge.New(cfg).Analytics(cmd.Context(), channelID)
			if err != nil {
				return err
			}
			return printJSON(snap)
		},
	}
	cmd.Flags().StringVar(&channelID, "channel", "", "channel ID (empty = workflow default)")
	return cmd
}

func newShortenCmd(loadConfig configLoader) *cobra.Command {
	var campaign string

	cmd := &cobra.Command{
		Use:   "shorten URL",
		Short: "Shorten an affiliate link through the link workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			res, err := bridge.New(cfg).ShortenLink(cmd.Context(), args[0], campaign)
			if err != nil {
				return err
			}
			fmt.Println(res.ShortURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&campaign, "campaign", "", "campaign tag for tracking")
	return cmd
}

func newScheduleCmd(loadConfig configLoader) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the upcoming publish slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			planner, err := schedule.New(cfg)
			if err != nil {
				return err
			}
			for _, slot := range planner.UpcomingSlots(time.Now(), count) {
				fmt.Println(slot.Format(time.RFC1123))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 5, "number of slots to show")
	return cmd
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
