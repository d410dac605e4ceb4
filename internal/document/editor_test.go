package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_FirstSubmission(t *testing.T) {
	e := NewEditor(nil)
	require.Equal(t, StateNoDocument, e.State())
	assert.True(t, e.Editing())
	assert.False(t, e.UsesUpdate())

	require.NoError(t, e.BeginSubmit())
	assert.Equal(t, StateSubmitting, e.State())
	assert.ErrorIs(t, e.BeginSubmit(), ErrInvalidTransition)

	require.NoError(t, e.SubmitSucceeded(&Document{ID: "d1"}))
	assert.Equal(t, StatePending, e.State())
	assert.True(t, e.UsesUpdate())
	assert.False(t, e.Editing())
}

func TestEditor_ResubmitAfterRemark(t *testing.T) {
	e := NewEditor(&Document{ID: "d1", Remark: "re-upload"})
	require.Equal(t, StateActionRequired, e.State())
	assert.ErrorIs(t, e.BeginSubmit(), ErrInvalidTransition)

	require.NoError(t, e.BeginEdit())
	require.Equal(t, StateEditingResubmit, e.State())
	require.NoError(t, e.BeginSubmit())
	require.NoError(t, e.SubmitSucceeded(&Document{ID: "d1", Verified: true, Remark: "re-upload"}))
	assert.Equal(t, StateVerified, e.State())
}

func TestEditor_FailureReturnsToStart(t *testing.T) {
	e := NewEditor(&Document{ID: "d1"})
	require.NoError(t, e.BeginEdit())
	require.NoError(t, e.BeginSubmit())
	require.NoError(t, e.SubmitFailed())
	assert.Equal(t, StateEditingResubmit, e.State())

	fresh := NewEditor(nil)
	require.NoError(t, fresh.BeginSubmit())
	require.NoError(t, fresh.SubmitFailed())
	assert.Equal(t, StateNoDocument, fresh.State())
}

func TestEditor_InvalidTransitions(t *testing.T) {
	e := NewEditor(nil)
	assert.ErrorIs(t, e.BeginEdit(), ErrInvalidTransition)
	assert.ErrorIs(t, e.CancelEdit(), ErrInvalidTransition)
	assert.ErrorIs(t, e.SubmitSucceeded(nil), ErrInvalidTransition)
	assert.ErrorIs(t, e.SubmitFailed(), ErrInvalidTransition)

	v := NewEditor(&Document{ID: "d", Verified: true})
	require.NoError(t, v.BeginEdit())
	assert.ErrorIs(t, v.BeginEdit(), ErrInvalidTransition)
	require.NoError(t, v.CancelEdit())
	assert.Equal(t, StateVerified, v.State())
}
