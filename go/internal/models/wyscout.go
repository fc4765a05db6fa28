package models

// WyscoutProfile is the per-player metric sheet exported from Wyscout
type WyscoutProfile struct {
	Metrics         map[string]string `json:"metrics"`
	Position        string            `json:"position"`
	WyscoutPosition string            `json:"wyscoutPosition"`
}

// ClipReport is one player folder of the video library: the written report
// plus its clips and still frames
type ClipReport struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Age            string  `json:"age"`
	Club           string  `json:"club"`
	Position       string  `json:"position"`
	MarketValue    string  `json:"marketValue"`
	Contract       string  `json:"contract"`
	Agent          string  `json:"agent"`
	Recommendation string  `json:"recommendation"`
	ReportMarkdown string  `json:"reportMarkdown"`
	Clips          []Clip  `json:"clips"`
	Frames         []Frame `json:"frames"`
	TotalClips     int     `json:"totalClips"`
	TotalFrames    int     `json:"totalFrames"`
}

type Clip struct {
	FileName string `json:"filename"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

type Frame struct {
	FileName  string `json:"filename"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}
