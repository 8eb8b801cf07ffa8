package entities

import "strings"

// Quality is one target rendition profile the pipeline attempts to produce.
type Quality string

const (
	Quality1080 Quality = "P1080"
	Quality720  Quality = "P720"
	Quality480  Quality = "P480"
	Quality360  Quality = "P360"
	Quality240  Quality = "P240"
)

// Qualities returns all quality levels in processing order, highest first.
func Qualities() []Quality {
	return []Quality{Quality1080, Quality720, Quality480, Quality360, Quality240}
}

func (q Quality) Lower() string {
	return strings.ToLower(string(q))
}

// ConversionParams holds the fixed encoding profile for one quality level.
type ConversionParams struct {
	Width        int
	Height       int
	VideoBitrate int // kbps
}

var conversionParams = map[Quality]ConversionParams{
	Quality1080: {Width: 1920, Height: 1080, VideoBitrate: 5000},
	Quality720:  {Width: 1280, Height: 720, VideoBitrate: 3000},
	Quality480:  {Width: 854, Height: 480, VideoBitrate: 1500},
	Quality360:  {Width: 640, Height: 360, VideoBitrate: 800},
	Quality240:  {Width: 426, Height: 240, VideoBitrate: 400},
}

func (q Quality) Params() ConversionParams {
	return conversionParams[q]
}
