package service

import (
	"testing"
	"time"

	"swingshift_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStatusStampsFirstOpenAndClose(t *testing.T) {
	p := &model.Project{Status: model.StatusDraft}
	opened := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	ApplyStatus(p, model.StatusActive, opened)

	assert.Equal(t, model.StatusActive, p.Status)
	require.NotNil(t, p.OpenedAt)
	assert.Equal(t, opened, *p.OpenedAt)
	assert.Nil(t, p.ClosedAt)

	closed := opened.Add(14 * 24 * time.Hour)
	ApplyStatus(p, model.StatusClosed, closed)

	assert.Equal(t, model.StatusClosed, p.Status)
	require.NotNil(t, p.ClosedAt)
	assert.Equal(t, closed, *p.ClosedAt)
}

func TestApplyStatusNeverOverwritesTimestamps(t *testing.T) {
	p := &model.Project{Status: model.StatusDraft}
	first := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	ApplyStatus(p, model.StatusActive, first)
	ApplyStatus(p, model.StatusClosed, first.Add(time.Hour))

	// Reopening and closing again keeps the original stamps.
	ApplyStatus(p, model.StatusActive, first.Add(48*time.Hour))
	ApplyStatus(p, model.StatusCompleted, first.Add(72*time.Hour))

	assert.Equal(t, first, *p.OpenedAt)
	assert.Equal(t, first.Add(time.Hour), *p.ClosedAt)
}

func TestApplyStatusCompletedStampsClose(t *testing.T) {
	p := &model.Project{Status: model.StatusActive}
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	ApplyStatus(p, model.StatusCompleted, now)

	require.NotNil(t, p.ClosedAt)
	assert.Equal(t, now, *p.ClosedAt)
}
