// ABOUTME: Generate subcommands for video, presenter video, and voiceover
// ABOUTME: Video kinds can poll the status endpoint until a terminal state

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/studio"
	"github.com/spf13/cobra"
)

// watchInterval is how often --watch polls the status endpoint
const watchInterval = 3 * time.Second

var (
	videoTopic    string
	videoScript   string
	videoDuration int
	videoStyle    string
	videoVoice    string
	videoWatch    bool
)

var generateVideoCmd = &cobra.Command{
	Use:   "video",
	Short: "Generate a video from a topic",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if videoTopic == "" {
			fmt.Fprintln(os.Stderr, "Error: --topic is required")
			os.Exit(2)
		}

		exitCode := runVideoGeneration(ctx, os.Stdout, videoWatch, "Video generation failed. Please try again.",
			func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
				return ctrl.Video(ctx, &api.VideoRequest{
					Topic:    videoTopic,
					Script:   videoScript,
					Duration: videoDuration,
					Style:    videoStyle,
					Voice:    videoVoice,
				})
			})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var (
	presenterScript     string
	presenterAvatarID   string
	presenterBackground string
	presenterVoiceID    string
	presenterWatch      bool
)

var generatePresenterCmd = &cobra.Command{
	Use:   "presenter",
	Short: "Generate an avatar presenter video",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if presenterScript == "" || presenterAvatarID == "" {
			fmt.Fprintln(os.Stderr, "Error: --script and --avatar-id are required")
			os.Exit(2)
		}

		exitCode := runVideoGeneration(ctx, os.Stdout, presenterWatch, "Presenter video generation failed. Please try again.",
			func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
				return ctrl.Presenter(ctx, &api.PresenterRequest{
					Script:     presenterScript,
					AvatarID:   presenterAvatarID,
					Background: presenterBackground,
					VoiceID:    presenterVoiceID,
				})
			})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var (
	voiceoverText  string
	voiceoverVoice string
	voiceoverSpeed float64
)

var generateVoiceoverCmd = &cobra.Command{
	Use:   "voiceover",
	Short: "Convert text to speech",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if voiceoverText == "" {
			fmt.Fprintln(os.Stderr, "Error: --text is required")
			os.Exit(2)
		}

		exitCode := runGeneration(ctx, os.Stdout, "Voiceover generation failed. Please try again.",
			func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
				return ctrl.Voiceover(ctx, &api.VoiceoverRequest{
					Text:  voiceoverText,
					Voice: voiceoverVoice,
					Speed: voiceoverSpeed,
				})
			})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

// runVideoGeneration is runGeneration plus optional polling until the
// generation reaches a terminal state
func runVideoGeneration(ctx context.Context, w io.Writer, watch bool, fallback string,
	call func(context.Context, *studio.Controller) (*api.Generation, error)) int {

	ctrl := newController()

	ok, err := ctrl.Session().Resume(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch your profile."))
		return 1
	}
	if !ok {
		fmt.Fprintln(w, "Not logged in. Run 'mediaforge login' first.")
		return 1
	}

	gen, err := call(ctx, ctrl)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, fallback))
		return 1
	}

	if watch && !gen.Terminal() {
		fmt.Fprintf(w, "Generation %s submitted, waiting for completion...\n", gen.ID)
		gen, err = ctrl.WaitForCompletion(ctx, gen.ID, watchInterval)
		if err != nil {
			fmt.Fprintf(w, "Error: %s\n", api.ErrorMessage(err, "Could not fetch the generation status."))
			return 1
		}
	}

	if IsJSONOutput() {
		printJSON(w, gen)
		return 0
	}

	printGeneration(w, gen)
	if user := ctrl.Session().User(); user != nil {
		fmt.Fprintf(w, "Credits remaining: %d\n", user.Credits)
	}
	if gen.Status == api.StatusFailed {
		return 1
	}
	return 0
}

func init() {
	generateCmd.AddCommand(generateVideoCmd)
	generateVideoCmd.Flags().StringVar(&videoTopic, "topic", "", "Video topic or subject")
	generateVideoCmd.Flags().StringVar(&videoScript, "script", "", "Video script (auto-generated if empty)")
	generateVideoCmd.Flags().IntVar(&videoDuration, "duration", 30, "Video duration in seconds")
	generateVideoCmd.Flags().StringVar(&videoStyle, "style", "modern", "Visual style")
	generateVideoCmd.Flags().StringVar(&videoVoice, "voice", "alloy", "Voice for narration")
	generateVideoCmd.Flags().BoolVar(&videoWatch, "watch", false, "Poll until the generation completes")

	generateCmd.AddCommand(generatePresenterCmd)
	generatePresenterCmd.Flags().StringVar(&presenterScript, "script", "", "Full script for the presenter")
	generatePresenterCmd.Flags().StringVar(&presenterAvatarID, "avatar-id", "", "Avatar/presenter ID")
	generatePresenterCmd.Flags().StringVar(&presenterBackground, "background", "studio", "Background setting")
	generatePresenterCmd.Flags().StringVar(&presenterVoiceID, "voice-id", "", "Custom voice ID")
	generatePresenterCmd.Flags().BoolVar(&presenterWatch, "watch", false, "Poll until the generation completes")

	generateCmd.AddCommand(generateVoiceoverCmd)
	generateVoiceoverCmd.Flags().StringVar(&voiceoverText, "text", "", "Text to convert to speech")
	generateVoiceoverCmd.Flags().StringVar(&voiceoverVoice, "voice", "alloy", "Voice ID")
	generateVoiceoverCmd.Flags().Float64Var(&voiceoverSpeed, "speed", 1.0, "Speech speed")
}
