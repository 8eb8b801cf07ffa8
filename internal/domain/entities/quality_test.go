package entities

import "testing"

func TestQualitiesOrder(t *testing.T) {
	want := []Quality{Quality1080, Quality720, Quality480, Quality360, Quality240}
	got := Qualities()

	if len(got) != len(want) {
		t.Fatalf("expected %d qualities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestQualityParams(t *testing.T) {
	tests := []struct {
		quality Quality
		width   int
		height  int
		bitrate int
	}{
		{Quality1080, 1920, 1080, 5000},
		{Quality720, 1280, 720, 3000},
		{Quality480, 854, 480, 1500},
		{Quality360, 640, 360, 800},
		{Quality240, 426, 240, 400},
	}

	for _, tt := range tests {
		params := tt.quality.Params()
		if params.Width != tt.width || params.Height != tt.height || params.VideoBitrate != tt.bitrate {
			t.Errorf("%s: expected %dx%d @ %dk, got %dx%d @ %dk",
				tt.quality, tt.width, tt.height, tt.bitrate,
				params.Width, params.Height, params.VideoBitrate)
		}
	}
}

func TestQualityLower(t *testing.T) {
	if got := Quality1080.Lower(); got != "p1080" {
		t.Errorf("expected p1080, got %s", got)
	}
	if got := Quality240.Lower(); got != "p240" {
		t.Errorf("expected p240, got %s", got)
	}
}
