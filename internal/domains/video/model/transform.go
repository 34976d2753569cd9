package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/query"
)

// FallbackThumbnails is used when a video has neither a stored thumbnail
// nor a valid YouTube identifier. Image 5 is part of the set but no
// keyword selects it.
var FallbackThumbnails = [5]string{
	"/images/videos/fallback-1.jpg",
	"/images/videos/fallback-2.jpg",
	"/images/videos/fallback-3.jpg",
	"/images/videos/fallback-4.jpg",
	"/images/videos/fallback-5.jpg",
}

// FallbackThumbnail picks by case-insensitive title keyword:
// aws → 4, docker → 2, tutorial → 3, anything else → 1.
func FallbackThumbnail(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "aws"):
		return FallbackThumbnails[3]
	case strings.Contains(t, "docker"):
		return FallbackThumbnails[1]
	case strings.Contains(t, "tutorial"):
		return FallbackThumbnails[2]
	default:
		return FallbackThumbnails[0]
	}
}

// FormatDuration renders seconds as m:ss; nil renders 0:00.
func FormatDuration(seconds *int) string {
	if seconds == nil || *seconds < 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", *seconds/60, *seconds%60)
}

type VideoResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	YoutubeID       string    `json:"youtubeId"`
	URL             string    `json:"url"`
	EmbedURL        string    `json:"embedUrl"`
	VideoURL        string    `json:"videoUrl"`
	Thumbnail       string    `json:"thumbnail"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Featured        bool      `json:"featured"`
	Visible         bool      `json:"visible"`
	Duration        string    `json:"duration"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToResponse derives the playable URLs and thumbnail. It never fails.
func ToResponse(v Video) VideoResponse {
	resp := VideoResponse{
		ID:        v.ID,
		Title:     v.Title,
		Category:  string(v.Category),
		Tags:      []string{},
		Featured:  v.Featured,
		Visible:   v.Visible,
		Duration:  FormatDuration(v.Duration),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.Description != nil {
		resp.Description = *v.Description
	}
	if v.VideoURL != nil {
		resp.VideoURL = *v.VideoURL
	}
	if v.Duration != nil {
		resp.DurationSeconds = *v.Duration
	}
	if len(v.Tags) > 0 {
		resp.Tags = append(resp.Tags, v.Tags...)
	}

	stored := ""
	if v.Thumbnail != nil {
		stored = *v.Thumbnail
	}

	if v.YoutubeID != nil && IsYouTubeID(*v.YoutubeID) {
		id := *v.YoutubeID
		resp.YoutubeID = id
		resp.URL = YouTubeWatchURL(id)
		resp.EmbedURL = YouTubeEmbedURL(id)
		resp.Thumbnail = stored
		if resp.Thumbnail == "" {
			resp.Thumbnail = YouTubeThumbnailURL(id)
		}
		return resp
	}

	if v.YoutubeID != nil {
		resp.YoutubeID = *v.YoutubeID
	}
	resp.URL = resp.VideoURL
	resp.Thumbnail = stored
	if resp.Thumbnail == "" {
		resp.Thumbnail = FallbackThumbnail(v.Title)
	}
	return resp
}

type ListVideosResponse struct {
	Videos     []VideoResponse  `json:"videos"`
	Pagination query.Pagination `json:"pagination"`
}
