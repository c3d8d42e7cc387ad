package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GDG-MenuMate/MenuMate-BE/services"
)

func TestAIStatusServiceLastWriteWins(t *testing.T) {
	t.Parallel()

	status := services.NewAIStatusService()

	last, checkedAt := status.Last()
	assert.False(t, last.Available)
	assert.True(t, checkedAt.IsZero())

	status.Record(services.AIHealth{Available: true, Status: 200})
	status.Record(services.AIHealth{Available: false, Error: "connection refused"})

	last, checkedAt = status.Last()
	assert.False(t, last.Available)
	assert.Equal(t, "connection refused", last.Error)
	assert.WithinDuration(t, time.Now(), checkedAt, time.Second)
}
