// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package tmdb

import "strings"

// Image sizes accepted by the image CDN.
const (
	PosterSmall   = "w185"
	PosterMedium  = "w500"
	BackdropLarge = "w1280"
	OriginalSize  = "original"
)

// ImageURL builds a CDN URL for a poster or backdrop path. An empty path gives "".
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = PosterMedium
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.cfg.ImageURL + "/" + size + path
}
