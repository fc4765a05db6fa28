package wyscout

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bacauscout/scout/go/internal/models"
)

const (
	reportFileName = "SCOUTING_REPORT.md"
	framesDirName  = "frames"
	clipExtension  = ".mp4"
)

var (
	reportNamePattern     = regexp.MustCompile(`# .+ SCOUTING REPORT: (.+)`)
	reportAgePattern      = regexp.MustCompile(`\*\*Age:\*\* (\d+)`)
	reportClubPattern     = regexp.MustCompile(`\*\*Club:\*\* (.+)`)
	reportPositionPattern = regexp.MustCompile(`\*\*Position:\*\* (.+)`)
	reportValuePattern    = regexp.MustCompile(`\*\*Market Value:\*\* (.+)`)
	reportContractPattern = regexp.MustCompile(`\*\*Contract:\*\* (.+)`)
	reportAgentPattern    = regexp.MustCompile(`\*\*Agent:\*\* (.+)`)
	reportRecPattern      = regexp.MustCompile(`\*\*RECOMMENDATION: (.+)\*\*`)
	frameTimestampPattern = regexp.MustCompile(`_(\d{6})\.`)

	unsafePlayerChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	unsafeFileChars   = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
)

var (
	clipTypes  = map[string]string{".mp4": "video/mp4"}
	frameTypes = map[string]string{".jpg": "image/jpeg", ".png": "image/png"}
)

// MediaFile is a clip or frame resolved inside the clip library
type MediaFile struct {
	Path        string
	Name        string
	ContentType string
}

// Reports lists every player folder of the clip library in name order. A
// missing library yields an empty list.
func (a *App) Reports() ([]models.ClipReport, error) {
	reports := []models.ClipReport{}
	if a.cfg.ClipsDir == "" {
		return reports, nil
	}

	entries, err := os.ReadDir(a.cfg.ClipsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return reports, nil
		}
		return nil, fmt.Errorf("failed to read clip library: %w", err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		report, err := readClipReport(filepath.Join(a.cfg.ClipsDir, e.Name()), e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read clips of %s: %w", e.Name(), err)
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// ClipFile resolves a video clip of a player folder
func (a *App) ClipFile(player, file string) (*MediaFile, error) {
	return a.mediaFile(player, "", file, clipTypes)
}

// FrameFile resolves a still frame of a player folder
func (a *App) FrameFile(player, file string) (*MediaFile, error) {
	return a.mediaFile(player, framesDirName, file, frameTypes)
}

// mediaFile strips both names down to a safe character set before joining
// them under the library, so neither can leave its folder.
func (a *App) mediaFile(player, subdir, file string, types map[string]string) (*MediaFile, error) {
	if player == "" || file == "" {
		return nil, ErrMissingParams
	}

	safePlayer := unsafePlayerChars.ReplaceAllString(player, "")
	safeFile := unsafeFileChars.ReplaceAllString(file, "")
	contentType, ok := types[strings.ToLower(filepath.Ext(safeFile))]
	if a.cfg.ClipsDir == "" || safePlayer == "" || !ok || strings.Contains(safeFile, "..") {
		return nil, ErrFileNotFound
	}

	path := filepath.Join(a.cfg.ClipsDir, safePlayer, subdir, safeFile)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, ErrFileNotFound
	}
	return &MediaFile{Path: path, Name: safeFile, ContentType: contentType}, nil
}

func readClipReport(dir, id string) (*models.ClipReport, error) {
	markdown := ""
	data, err := os.ReadFile(filepath.Join(dir, reportFileName))
	switch {
	case err == nil:
		markdown = string(data)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	clips, err := listClips(dir, id)
	if err != nil {
		return nil, err
	}
	frames, err := listFrames(filepath.Join(dir, framesDirName), id)
	if err != nil {
		return nil, err
	}

	name := firstMatch(reportNamePattern, markdown)
	if name == "" {
		name = capitalize(id)
	}

	return &models.ClipReport{
		ID:             id,
		Name:           name,
		Age:            firstMatch(reportAgePattern, markdown),
		Club:           firstMatch(reportClubPattern, markdown),
		Position:       firstMatch(reportPositionPattern, markdown),
		MarketValue:    firstMatch(reportValuePattern, markdown),
		Contract:       firstMatch(reportContractPattern, markdown),
		Agent:          firstMatch(reportAgentPattern, markdown),
		Recommendation: firstMatch(reportRecPattern, markdown),
		ReportMarkdown: markdown,
		Clips:          clips,
		Frames:         frames,
		TotalClips:     len(clips),
		TotalFrames:    len(frames),
	}, nil
}

func listClips(dir, id string) ([]models.Clip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	clips := []models.Clip{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), clipExtension) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		clips = append(clips, models.Clip{
			FileName: e.Name(),
			Name:     strings.ReplaceAll(strings.Replace(e.Name(), clipExtension, "", 1), "_", " "),
			Path:     mediaPath("clip", id, e.Name()),
			Size:     info.Size(),
		})
	}
	return clips, nil
}

func listFrames(dir, id string) ([]models.Frame, error) {
	frames := []models.Frame{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return frames, nil
		}
		return nil, err
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasSuffix(name, ".jpg") || strings.HasSuffix(name, ".png")) {
			continue
		}
		frames = append(frames, models.Frame{
			FileName:  name,
			Path:      mediaPath("frame", id, name),
			Timestamp: submatch(frameTimestampPattern, name),
		})
	}
	return frames, nil
}

func mediaPath(kind, player, file string) string {
	return fmt.Sprintf("/api/scouting-reports/%s?player=%s&file=%s", kind, url.QueryEscape(player), url.QueryEscape(file))
}

func firstMatch(re *regexp.Regexp, s string) string {
	return strings.TrimSpace(submatch(re, s))
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
