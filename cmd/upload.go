package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kartoza/kartoza-meeting-compositor/internal/config"
	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
	"github.com/kartoza/kartoza-meeting-compositor/internal/upload"
	"github.com/spf13/cobra"
)

var (
	uploadTitle       string
	uploadDescription string
	uploadTags        []string
	uploadPrivacy     string
	uploadThumbAt     string
)

var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a composited video to YouTube",
	Long: `Upload a video to YouTube using OAuth2 credentials from the config file.

The first upload opens a browser window to authorize the application;
the token is cached for later runs.

Set youtube.client_id and youtube.client_secret in
~/.config/kartoza-meeting-compositor/config.json first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.YouTube.ClientID == "" || cfg.YouTube.ClientSecret == "" {
			return fmt.Errorf("youtube.client_id and youtube.client_secret are not configured")
		}

		ctx := context.Background()
		auth := upload.NewAuth(cfg.YouTube.ClientID, cfg.YouTube.ClientSecret, config.GetConfigDir())

		if !auth.IsAuthenticated() {
			fmt.Println("Opening browser for YouTube authorization...")
			if err := auth.Authenticate(ctx); err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}
		}

		title := uploadTitle
		if title == "" {
			base := filepath.Base(path)
			title = strings.TrimSuffix(base, filepath.Ext(base))
		}
		privacy := uploadPrivacy
		if privacy == "" {
			privacy = cfg.YouTube.DefaultPrivacy
		}

		opts := upload.Options{
			Title:       title,
			Description: uploadDescription,
			Tags:        uploadTags,
			Privacy:     privacy,
		}

		if uploadThumbAt != "" {
			offset, err := models.ParseTimestamp(uploadThumbAt)
			if err != nil {
				return fmt.Errorf("invalid --thumbnail-at: %w", err)
			}
			thumb, err := upload.ExtractThumbnail(path, offset)
			if err != nil {
				return err
			}
			defer func() { _ = os.RemoveAll(filepath.Dir(thumb)) }()
			opts.Thumbnail = thumb
		}

		fmt.Printf("Uploading %s...\n", path)
		lastPercent := -1
		result, err := upload.NewUploader(auth).Upload(ctx, path, opts, func(sent, total int64) {
			if total <= 0 {
				return
			}
			p := int(sent * 100 / total)
			if p != lastPercent {
				lastPercent = p
				fmt.Printf("\rUploading: %3d%%", p)
			}
		})
		fmt.Println()
		if err != nil {
			return err
		}

		fmt.Printf("Uploaded: %s\n", result.URL)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadTitle, "title", "t", "", "Video title (default: file name)")
	uploadCmd.Flags().StringVar(&uploadDescription, "description", "", "Video description")
	uploadCmd.Flags().StringSliceVar(&uploadTags, "tags", nil, "Comma-separated video tags")
	uploadCmd.Flags().StringVar(&uploadPrivacy, "privacy", "", "Privacy status: private, unlisted or public (default from config)")
	uploadCmd.Flags().StringVar(&uploadThumbAt, "thumbnail-at", "", "Extract a thumbnail frame at this timestamp")
}
