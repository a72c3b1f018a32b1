package viewer

import (
	json "github.com/goccy/go-json"
)

// Video is one match video reference from the score document.
type Video struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// ExtractVideos pulls video references out of the opaque score document. The
// score is kept verbatim from TBA, so any shape is tolerated; anything that
// does not look like a video list yields no videos.
func ExtractVideos(score json.RawMessage) []Video {
	if len(score) == 0 {
		return nil
	}
	var doc struct {
		Videos []Video `json:"videos"`
	}
	if err := json.Unmarshal(score, &doc); err != nil {
		return nil
	}
	var out []Video
	for _, v := range doc.Videos {
		if v.Key != "" {
			out = append(out, v)
		}
	}
	return out
}
