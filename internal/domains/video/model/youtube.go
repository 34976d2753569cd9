package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	youtubeURLPattern   = regexp.MustCompile(`(?:watch\?v=|youtu\.be/|embed/)([A-Za-z0-9_-]{11})(?:[?&#/]|$)`)
	youtubeTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ExtractYouTubeID tries, in order, the watch?v=, youtu.be/ and embed/ URL
// forms, then the whole input as a bare 11-character identifier.
func ExtractYouTubeID(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if m := youtubeURLPattern.FindStringSubmatch(input); m != nil {
		return m[1], true
	}
	if youtubeTokenPattern.MatchString(input) {
		return input, true
	}
	return "", false
}

// IsYouTubeID reports whether id is a well-formed identifier.
func IsYouTubeID(id string) bool {
	return youtubeTokenPattern.MatchString(id)
}

func YouTubeWatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

func YouTubeEmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}

func YouTubeThumbnailURL(id string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}
