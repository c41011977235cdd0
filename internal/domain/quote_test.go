package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuote_IsNew(t *testing.T) {
	q := &Quote{}
	assert.True(t, q.IsNew())

	q.ID = "8b9e2c1a-0000-0000-0000-000000000000"
	assert.False(t, q.IsNew())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(2*time.Hour)))
}
