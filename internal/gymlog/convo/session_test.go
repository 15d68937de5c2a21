package convo_test

import (
	"sync"
	"testing"

	"github.com/2beens/gymprogress/internal/gymlog/convo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_CreateGetRemove(t *testing.T) {
	store := convo.NewSessionStore()

	_, ok := store.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())

	store.Create(1)
	sess, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Equal(t, convo.StepAwaitingDateChoice, sess.Step)
	assert.Equal(t, 1, store.Len())

	// sessions are per user
	_, ok = store.Get(2)
	assert.False(t, ok)

	store.Remove(1)
	_, ok = store.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())

	// removing an absent session is a no-op
	store.Remove(1)
}

func TestSessionStore_CreateOverwrites(t *testing.T) {
	store := convo.NewSessionStore()
	workflow := convo.NewWorkflow(store, nil)

	workflow.Begin(1)
	_, err := workflow.ChooseToday(1)
	require.NoError(t, err)

	sess, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, convo.StepAwaitingExercise, sess.Step)

	// restarting mid-flow discards the draft
	workflow.Begin(1)
	sess, ok = store.Get(1)
	require.True(t, ok)
	assert.Equal(t, convo.StepAwaitingDateChoice, sess.Step)
	assert.False(t, sess.Draft.HasDate)
}

func TestSessionStore_ConcurrentUsers(t *testing.T) {
	store := convo.NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Create(userID)
			_, ok := store.Get(userID)
			assert.True(t, ok)
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 100, store.Len())

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Remove(userID)
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 0, store.Len())
}
