package render

import "strings"

type VideoKind string

const (
	VideoNone    VideoKind = "none"
	VideoYouTube VideoKind = "youtube"
	VideoNative  VideoKind = "native"
)

// Video 是项目卡片顶部的视频区域
type Video struct {
	Kind  VideoKind
	Src   string
	Title string
}

const youtubeEmbed = "https://www.youtube.com/embed/"

// ClassifyVideo 把 youtube.com/embed/<id> 和 youtu.be/<id> 都统一成 embed 地址，
// 其他地址按原生 <video> 处理，空地址显示占位。
func ClassifyVideo(rawURL, title string) Video {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return Video{Kind: VideoNone, Title: title}
	}
	if !strings.Contains(u, "youtube.com/embed") && !strings.Contains(u, "youtu.be") {
		return Video{Kind: VideoNative, Src: u, Title: title}
	}

	id := u
	for _, marker := range []string{"youtube.com/embed/", "youtu.be/"} {
		if _, after, ok := strings.Cut(u, marker); ok {
			id, _, _ = strings.Cut(after, "?")
			break
		}
	}
	if title == "" {
		title = "Video"
	}
	return Video{Kind: VideoYouTube, Src: youtubeEmbed + id, Title: title}
}
