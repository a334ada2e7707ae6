package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidate(t *testing.T) {
	s := NewStore(MaxAge)

	token, err := s.Create()
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 bytes hex

	assert.True(t, s.Validate(token))
	assert.Equal(t, 1, s.Len())
}

func TestValidateRejectsEmptyAndUnknown(t *testing.T) {
	s := NewStore(MaxAge)

	assert.False(t, s.Validate(""))
	assert.False(t, s.Validate("deadbeef"))
}

func TestTokensAreUnique(t *testing.T) {
	s := NewStore(MaxAge)

	a, err := s.Create()
	require.NoError(t, err)
	b, err := s.Create()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestExpiryPurgesEntry(t *testing.T) {
	s := NewStore(time.Hour)
	issued := time.Now()
	s.now = func() time.Time { return issued }

	token, err := s.Create()
	require.NoError(t, err)

	// exactly at the boundary the session is still valid
	s.now = func() time.Time { return issued.Add(time.Hour) }
	assert.True(t, s.Validate(token))

	// past the boundary the check fails and removes the entry
	s.now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	assert.False(t, s.Validate(token))
	assert.Equal(t, 0, s.Len())

	// once purged the token stays invalid even for a fresh check
	s.now = func() time.Time { return issued }
	assert.False(t, s.Validate(token))
}

func TestRevoke(t *testing.T) {
	s := NewStore(MaxAge)

	token, err := s.Create()
	require.NoError(t, err)

	s.Revoke(token)
	assert.False(t, s.Validate(token))

	// revoking again is a no-op
	s.Revoke(token)
	s.Revoke("never-issued")
	assert.Equal(t, 0, s.Len())
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore(MaxAge)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := s.Create()
			if err != nil {
				t.Error(err)
				return
			}
			if !s.Validate(token) {
				t.Error("fresh token should validate")
			}
			s.Revoke(token)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())
}
