// ABOUTME: Generate command group: image, banner, logo, and background removal
// ABOUTME: Runs the shared submit flow and reports cost and remaining credits

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/studio"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content",
	Long:  `Generate images, banners, logos, videos, and voiceovers. Each generation spends credits from your balance.`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runGeneration resumes the session, executes one generation through the
// controller, and prints the result. The fallback message is used when the
// error payload carries no readable detail.
func runGeneration(ctx context.Context, w io.Writer, fallback string,
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

// printGeneration renders a record in the aligned key/value style
func printGeneration(w io.Writer, gen *api.Generation) {
	fmt.Fprintf(w, "Generation:  %s\n", gen.ID)
	fmt.Fprintf(w, "Type:        %s\n", gen.Type)
	fmt.Fprintf(w, "Status:      %s\n", gen.Status)
	if gen.Prompt != "" {
		fmt.Fprintf(w, "Prompt:      %s\n", gen.Prompt)
	}
	if gen.OutputURL != "" {
		fmt.Fprintf(w, "Output:      %s\n", gen.OutputURL)
	}
	if gen.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:       %s\n", gen.ErrorMessage)
	}
	fmt.Fprintf(w, "Cost:        %d credits\n", gen.CreditsUsed)
}

var (
	imagePrompt string
	imageSize   string
	imageStyle  string
)

var generateImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Generate an image from a prompt",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if imagePrompt == "" {
			fmt.Fprintln(os.Stderr, "Error: --prompt is required")
			os.Exit(2)
		}

		exitCode := runGeneration(ctx, os.Stdout, "Image generation failed. Please try again.",
			func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
				return ctrl.Image(ctx, &api.ImageRequest{
					Prompt: imagePrompt,
					Size:   imageSize,
					Style:  imageStyle,
				})
			})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var (
	bannerTitle    string
	bannerSubtitle string
	bannerPlatform string
	bannerStyle    string
)

var generateBannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Generate a social or marketing banner",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if bannerTitle == "" {
			fmt.Fprintln(os.Stderr, "Error: --title is required")
			os.Exit(2)
		}

		exitCode := runGeneration(ctx, os.Stdout, "Banner generation failed. Please try again.",
			func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
				return ctrl.Banner(ctx, &api.BannerRequest{
					Title:    bannerTitle,
					Subtitle: bannerSubtitle,
					Platform: bannerPlatform,
					Style:    bannerStyle,
				})
			})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var (
	logoBrandName string
	logoIndustry  string
	logoStyle     string
	logoColors    string
)

var generateLogoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Generate a brand logo",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if logoBrandName == "" || logoIndustry == "" {
			fmt.Fprintln(os.Stderr, "Error: --brand-name and --industry are required")
			os.Exit(2)
		}

		var colors []string
		if logoColors != "" {
			colors = strings.Split(logoColors, ",")
		}

		exitCode := runGeneration(ctx, os.Stdout, "Logo generation failed. Please try again.",
			func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
				return ctrl.Logo(ctx, &api.LogoRequest{
					BrandName: logoBrandName,
					Industry:  logoIndustry,
					Style:     logoStyle,
					Colors:    colors,
				})
			})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var removeBgImageURL string

var generateRemoveBgCmd = &cobra.Command{
	Use:   "remove-bg",
	Short: "Remove the background from an image",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if removeBgImageURL == "" {
			fmt.Fprintln(os.Stderr, "Error: --image-url is required")
			os.Exit(2)
		}

		exitCode := runGeneration(ctx, os.Stdout, "Background removal failed. Please try again.",
			func(ctx context.Context, ctrl *studio.Controller) (*api.Generation, error) {
				return ctrl.RemoveBackground(ctx, &api.RemoveBackgroundRequest{
					ImageURL: removeBgImageURL,
				})
			})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	generateCmd.AddCommand(generateImageCmd)
	generateImageCmd.Flags().StringVar(&imagePrompt, "prompt", "", "Describe the image you want")
	generateImageCmd.Flags().StringVar(&imageSize, "size", "1024x1024", "Image size")
	generateImageCmd.Flags().StringVar(&imageStyle, "style", "auto", "Style preset")

	generateCmd.AddCommand(generateBannerCmd)
	generateBannerCmd.Flags().StringVar(&bannerTitle, "title", "", "Main title text")
	generateBannerCmd.Flags().StringVar(&bannerSubtitle, "subtitle", "", "Subtitle or tagline")
	generateBannerCmd.Flags().StringVar(&bannerPlatform, "platform", "youtube", "Target platform")
	generateBannerCmd.Flags().StringVar(&bannerStyle, "style", "modern", "Design style")

	generateCmd.AddCommand(generateLogoCmd)
	generateLogoCmd.Flags().StringVar(&logoBrandName, "brand-name", "", "Brand or company name")
	generateLogoCmd.Flags().StringVar(&logoIndustry, "industry", "", "Business industry")
	generateLogoCmd.Flags().StringVar(&logoStyle, "style", "minimal", "Logo style")
	generateLogoCmd.Flags().StringVar(&logoColors, "colors", "", "Comma-separated brand colors")

	generateCmd.AddCommand(generateRemoveBgCmd)
	generateRemoveBgCmd.Flags().StringVar(&removeBgImageURL, "image-url", "", "URL of the image to process")
}
