package searcher

import (
	"chessai/game"
	"fmt"

	"golang.org/x/exp/rand"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("m%d", m.id)
}

// mockState is an explicit game tree. Leaf values are from White's point of view.
type mockState struct {
	player   game.Color
	children []*mockState
	value    float64
	outcome  *game.Outcome
	panics   bool
}

func (m *mockState) Player() game.Color {
	return m.player
}

func (m *mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = mockMove{id: i}
	}
	return moves
}

func (m *mockState) Play(move game.Move) game.State {
	if m.panics {
		panic("rules engine fault")
	}
	return m.children[move.(mockMove).id]
}

func (m *mockState) IsTerminal() bool {
	return m.outcome != nil
}

func (m *mockState) Outcome() game.Outcome {
	return *m.outcome
}

func evaluateMock(state game.State, perspective game.Color) float64 {
	v := state.(*mockState).value
	if perspective == game.Black {
		return -v
	}
	return v
}

// tree builds a node for player whose children alternate sides. Leaves are
// given by values.
func tree(player game.Color, children ...*mockState) *mockState {
	for _, child := range children {
		child.player = player.Opponent()
	}
	return &mockState{player: player, children: children}
}

func leaf(value float64) *mockState {
	return &mockState{value: value}
}

func terminal(outcome game.Outcome) *mockState {
	return &mockState{outcome: &outcome}
}

// randomTree builds a tree of the given height with 1-4 children per node.
// Some nodes end the game early.
func randomTree(rng *rand.Rand, player game.Color, height int) *mockState {
	node := &mockState{player: player, value: rng.Float64()*1.8 - 0.9}
	if height == 0 {
		return node
	}
	if rng.Intn(8) == 0 {
		var outcome game.Outcome
		switch rng.Intn(3) {
		case 0:
			outcome = game.WinFor(game.White)
		case 1:
			outcome = game.LossFor(game.White)
		default:
			outcome = game.DrawOutcome()
		}
		node.outcome = &outcome
		return node
	}
	branching := 1 + rng.Intn(4)
	for i := 0; i < branching; i++ {
		node.children = append(node.children, randomTree(rng, player.Opponent(), height-1))
	}
	return node
}

// exactValue is a plain minimax written independently of the searcher, scoring
// from perspective.
func exactValue(state game.State, depth int, perspective game.Color) float64 {
	if state.IsTerminal() {
		return game.TerminalScore(state, perspective)
	}
	if depth == 0 {
		return evaluateMock(state, perspective)
	}
	var values []float64
	for _, move := range state.LegalMoves() {
		values = append(values, exactValue(state.Play(move), depth-1, perspective))
	}
	best := values[0]
	for _, v := range values[1:] {
		if state.Player() == perspective && v > best || state.Player() != perspective && v < best {
			best = v
		}
	}
	return best
}
