// Package board holds the client-side state for the key-decision board: one
// column per integration event, cards for key decisions, with optimistic
// drag moves staged as pending until the server confirms them.
package board

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownDecision = errors.New("board: unknown key decision")
	ErrUnknownEvent    = errors.New("board: unknown integration event")
	ErrMoveResolved    = errors.New("board: move already resolved")
)

type IntegrationEvent struct {
	Id       uuid.UUID
	Name     string
	Date     string
	Sequence int
}

type KeyDecision struct {
	Id                 uuid.UUID
	Title              string
	Status             string
	Owner              string
	IntegrationEventId uuid.UUID
}

type KnowledgeGap struct {
	Id            uuid.UUID
	Title         string
	Status        string
	Owner         string
	KeyDecisionId uuid.UUID
}

// Board is the per-project view state. Events, decisions and gaps are
// fetched independently; the board tolerates partial data and derives
// columns by filtering.
type Board struct {
	ProjectId uuid.UUID
	Events    []IntegrationEvent
	Decisions []KeyDecision
	Gaps      []KnowledgeGap
}

func New(projectId uuid.UUID) *Board {
	return &Board{ProjectId: projectId}
}

// DecisionsForEvent derives one column's cards.
func (b *Board) DecisionsForEvent(eventId uuid.UUID) []KeyDecision {
	out := make([]KeyDecision, 0)
	for _, d := range b.Decisions {
		if d.IntegrationEventId == eventId {
			out = append(out, d)
		}
	}
	return out
}

// GapsForDecision derives the knowledge gaps hanging off one card.
func (b *Board) GapsForDecision(decisionId uuid.UUID) []KnowledgeGap {
	out := make([]KnowledgeGap, 0)
	for _, g := range b.Gaps {
		if g.KeyDecisionId == decisionId {
			out = append(out, g)
		}
	}
	return out
}

func (b *Board) decision(id uuid.UUID) *KeyDecision {
	for i := range b.Decisions {
		if b.Decisions[i].Id == id {
			return &b.Decisions[i]
		}
	}
	return nil
}

func (b *Board) hasEvent(id uuid.UUID) bool {
	for _, e := range b.Events {
		if e.Id == id {
			return true
		}
	}
	return false
}

// PendingMove is an optimistic move that has been applied locally but not
// yet confirmed by the server. Commit keeps it; Rollback restores the
// previous column.
type PendingMove struct {
	board      *Board
	DecisionId uuid.UUID
	From       uuid.UUID
	To         uuid.UUID
	resolved   bool
}

// BeginMove stages dropping a decision onto a target column. Dropping a card
// back onto its own column is not a move: it returns (nil, nil) and the
// caller must issue no server call.
func (b *Board) BeginMove(decisionId, targetEventId uuid.UUID) (*PendingMove, error) {
	d := b.decision(decisionId)
	if d == nil {
		return nil, ErrUnknownDecision
	}
	if !b.hasEvent(targetEventId) {
		return nil, ErrUnknownEvent
	}
	if d.IntegrationEventId == targetEventId {
		return nil, nil
	}

	move := &PendingMove{
		board:      b,
		DecisionId: decisionId,
		From:       d.IntegrationEventId,
		To:         targetEventId,
	}
	d.IntegrationEventId = targetEventId
	return move, nil
}

// Commit marks the optimistic value as confirmed.
func (m *PendingMove) Commit() error {
	if m.resolved {
		return ErrMoveResolved
	}
	m.resolved = true
	return nil
}

// Rollback restores the card to its previous column after a failed update.
func (m *PendingMove) Rollback() error {
	if m.resolved {
		return ErrMoveResolved
	}
	m.resolved = true
	if d := m.board.decision(m.DecisionId); d != nil {
		d.IntegrationEventId = m.From
	}
	return nil
}
