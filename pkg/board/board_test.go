package board

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleBoard() (*Board, IntegrationEvent, IntegrationEvent, KeyDecision) {
	eventA := IntegrationEvent{Id: uuid.New(), Name: "IE1", Sequence: 0}
	eventB := IntegrationEvent{Id: uuid.New(), Name: "IE2", Sequence: 1}
	decision := KeyDecision{Id: uuid.New(), Title: "Pick supplier", IntegrationEventId: eventA.Id}

	b := New(uuid.New())
	b.Events = []IntegrationEvent{eventA, eventB}
	b.Decisions = []KeyDecision{decision}
	return b, eventA, eventB, decision
}

func TestDecisionsForEvent(t *testing.T) {
	b, eventA, eventB, decision := sampleBoard()

	assert.Len(t, b.DecisionsForEvent(eventA.Id), 1)
	assert.Empty(t, b.DecisionsForEvent(eventB.Id))
	assert.Equal(t, decision.Id, b.DecisionsForEvent(eventA.Id)[0].Id)
}

func TestGapsForDecision(t *testing.T) {
	b, _, _, decision := sampleBoard()
	gap := KnowledgeGap{Id: uuid.New(), Title: "Cycle life data", KeyDecisionId: decision.Id}
	b.Gaps = []KnowledgeGap{gap}

	assert.Len(t, b.GapsForDecision(decision.Id), 1)
	assert.Empty(t, b.GapsForDecision(uuid.New()))
}

func TestBeginMoveAppliesOptimistically(t *testing.T) {
	b, eventA, eventB, decision := sampleBoard()

	move, err := b.BeginMove(decision.Id, eventB.Id)
	assert.NoError(t, err)
	assert.NotNil(t, move)
	assert.Equal(t, eventA.Id, move.From)
	assert.Equal(t, eventB.Id, move.To)

	// Card already sits in the target column before the server answers.
	assert.Len(t, b.DecisionsForEvent(eventB.Id), 1)
	assert.Empty(t, b.DecisionsForEvent(eventA.Id))
}

func TestBeginMoveSameColumnIsNoop(t *testing.T) {
	b, eventA, _, decision := sampleBoard()

	move, err := b.BeginMove(decision.Id, eventA.Id)
	assert.NoError(t, err)
	assert.Nil(t, move, "dropping on the same column must not produce a move")
}

func TestBeginMoveValidation(t *testing.T) {
	b, _, eventB, decision := sampleBoard()

	_, err := b.BeginMove(uuid.New(), eventB.Id)
	assert.ErrorIs(t, err, ErrUnknownDecision)

	_, err = b.BeginMove(decision.Id, uuid.New())
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestRollbackRestoresColumn(t *testing.T) {
	b, eventA, eventB, decision := sampleBoard()

	move, err := b.BeginMove(decision.Id, eventB.Id)
	assert.NoError(t, err)

	assert.NoError(t, move.Rollback())
	assert.Len(t, b.DecisionsForEvent(eventA.Id), 1)
	assert.Empty(t, b.DecisionsForEvent(eventB.Id))
}

func TestCommitKeepsColumn(t *testing.T) {
	b, _, eventB, decision := sampleBoard()

	move, err := b.BeginMove(decision.Id, eventB.Id)
	assert.NoError(t, err)

	assert.NoError(t, move.Commit())
	assert.Len(t, b.DecisionsForEvent(eventB.Id), 1)
}

func TestMoveResolvedOnlyOnce(t *testing.T) {
	b, _, eventB, decision := sampleBoard()

	move, _ := b.BeginMove(decision.Id, eventB.Id)
	assert.NoError(t, move.Commit())
	assert.ErrorIs(t, move.Commit(), ErrMoveResolved)
	assert.ErrorIs(t, move.Rollback(), ErrMoveResolved)

	// A late rollback after commit must not touch the board.
	assert.Len(t, b.DecisionsForEvent(eventB.Id), 1)
}
