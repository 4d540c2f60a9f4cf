package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueTypeNames(t *testing.T) {
	want := map[IssueType]string{
		IssueTypeSync:      "Audio Sync",
		IssueTypePlayback:  "Media Playback",
		IssueTypeSubtitles: "Subtitles",
		IssueTypeOther:     "Other",
	}

	assert.Equal(t, want, IssueTypeNames)
}

func TestIssueStatusValues(t *testing.T) {
	assert.Equal(t, IssueStatus(1), IssueStatusOpen)
	assert.Equal(t, IssueStatus(2), IssueStatusResolved)
}
