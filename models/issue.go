package models

import "time"

// IssueType categorizes the reported playback problem.
type IssueType int

const (
	IssueTypePlayback  IssueType = 1
	IssueTypeSync      IssueType = 2
	IssueTypeSubtitles IssueType = 3
	IssueTypeOther     IssueType = 4
)

// IssueTypeNames maps issue types to their display labels.
var IssueTypeNames = map[IssueType]string{
	IssueTypeSync:      "Audio Sync",
	IssueTypePlayback:  "Media Playback",
	IssueTypeSubtitles: "Subtitles",
	IssueTypeOther:     "Other",
}

// IssueStatus tracks whether an issue is still open.
type IssueStatus int

const (
	IssueStatusOpen     IssueStatus = 1
	IssueStatusResolved IssueStatus = 2
)

type Issue struct {
	ID             int            `json:"id"`
	IssueType      IssueType      `json:"issueType"`
	Status         IssueStatus    `json:"status"`
	ProblemSeason  int            `json:"problemSeason"`  // 0 = all seasons
	ProblemEpisode int            `json:"problemEpisode"` // 0 = all episodes
	Media          Media          `json:"media"`
	CreatedBy      User           `json:"createdBy"`
	Comments       []IssueComment `json:"comments"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type IssueComment struct {
	ID        int       `json:"id"`
	IssueID   int       `json:"-"`
	User      User      `json:"user"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
