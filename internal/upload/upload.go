package upload

import (
	"context"
	"fmt"
	"io"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Options describes the video to publish.
type Options struct {
	Title       string
	Description string
	Tags        []string
	Privacy     string // "private", "unlisted", or "public"
	Thumbnail   string // optional image path
}

// Result holds the uploaded video's identifiers.
type Result struct {
	VideoID string
	URL     string
}

// ProgressFunc receives bytes sent and total bytes during an upload.
type ProgressFunc func(sent, total int64)

// Uploader publishes videos over an authenticated client.
type Uploader struct {
	auth *Auth
}

// NewUploader wraps an authenticator.
func NewUploader(auth *Auth) *Uploader {
	return &Uploader{auth: auth}
}

type progressReader struct {
	reader   io.Reader
	total    int64
	sent     int64
	progress ProgressFunc
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.sent += int64(n)
	if r.progress != nil {
		r.progress(r.sent, r.total)
	}
	return n, err
}

// Upload sends the file to YouTube and returns its video ID.
func (u *Uploader) Upload(ctx context.Context, path string, opts Options, progress ProgressFunc) (*Result, error) {
	client, err := u.auth.GetClient(ctx)
	if err != nil {
		return nil, err
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat video file: %w", err)
	}

	privacy := opts.Privacy
	if privacy == "" {
		privacy = "private"
	}

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       opts.Title,
			Description: opts.Description,
			Tags:        opts.Tags,
			CategoryId:  "28", // Science & Technology
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus: privacy,
		},
	}

	reader := &progressReader{
		reader:   file,
		total:    info.Size(),
		progress: progress,
	}

	call := service.Videos.Insert([]string{"snippet", "status"}, video)
	uploaded, err := call.Media(reader).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	if opts.Thumbnail != "" {
		if err := u.setThumbnail(ctx, service, uploaded.Id, opts.Thumbnail); err != nil {
			fmt.Printf("Warning: failed to set thumbnail: %v\n", err)
		}
	}

	return &Result{
		VideoID: uploaded.Id,
		URL:     "https://youtu.be/" + uploaded.Id,
	}, nil
}

func (u *Uploader) setThumbnail(ctx context.Context, service *youtube.Service, videoID, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open thumbnail: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, err = service.Thumbnails.Set(videoID).Media(file).Context(ctx).Do()
	return err
}
