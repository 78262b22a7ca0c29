package game

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/fifty-one/internal/apperrors"
	"github.com/palemoky/fifty-one/internal/game/card"
	"github.com/palemoky/fifty-one/internal/game/stock"
)

// ordinalOrder: dA d2 d3 d4 d5 hA h2 h3 h4 h5 J
var ordinalOrder = []card.Card(card.NewDeck())

// orderFor builds a deal order that hands out the given table, cpu and player cards
func orderFor(t *testing.T, table, cpu, player card.Hand) []card.Card {
	t.Helper()
	order := []card.Card{table[0], table[1], cpu[0], cpu[1], player[0], player[1]}
	for _, c := range card.NewDeck() {
		if !slices.Contains(order, c) {
			order = append(order, c)
		}
	}
	require.Len(t, order, card.Count)
	return order
}

func newDealtGame(t *testing.T, order []card.Card) *Game {
	t.Helper()
	g := New(Options{Rand: rand.New(rand.NewPCG(1, 1))})
	require.NoError(t, g.InitWithOrder(order))
	return g
}

// allCards collects stock, table and both hands
func allCards(t *testing.T, g *Game) []card.Card {
	t.Helper()
	cards, err := g.StockCards()
	require.NoError(t, err)
	cards = append(cards, g.Table().Cards()...)
	cards = append(cards, g.Hand(Cpu).Cards()...)
	cards = append(cards, g.Hand(Player).Cards()...)
	return cards
}

func assertConserved(t *testing.T, g *Game) {
	t.Helper()
	n, err := g.CardCount()
	require.NoError(t, err)
	assert.Equal(t, card.Count, n)
	assert.ElementsMatch(t, ordinalOrder, allCards(t, g))
}

func TestInitWithOrder_DealOrder(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)

	assert.Equal(t, card.Hand{card.DA, card.D2}, g.Table())
	assert.Equal(t, card.Hand{card.D3, card.D4}, g.Hand(Cpu))
	assert.Equal(t, card.Hand{card.D5, card.HA}, g.Hand(Player))

	pile, err := g.StockCards()
	require.NoError(t, err)
	assert.Equal(t, []card.Card{card.H2, card.H3, card.H4, card.H5, card.Joker}, pile)

	assert.Equal(t, 0, g.CalculateScore(Player), "d5 and hA break suit")
	assert.Equal(t, 7, g.CalculateScore(Cpu))
	assert.Equal(t, PhasePlaying, g.Phase())
	assertConserved(t, g)
}

func TestInitWithOrder_RejectsBadDeck(t *testing.T) {
	t.Parallel()

	g := New(Options{})
	err := g.InitWithOrder([]card.Card{card.DA, card.D2, card.D3})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDeck)
	assert.Equal(t, PhaseNew, g.Phase())
}

func TestInit_ShuffledDeal(t *testing.T) {
	t.Parallel()

	for seed := range uint64(50) {
		g := New(Options{Rand: rand.New(rand.NewPCG(seed, seed))})
		require.NoError(t, g.Init())

		n, err := g.CardCount()
		require.NoError(t, err)
		assert.Equal(t, card.Count, n)

		pile, err := g.StockCards()
		require.NoError(t, err)
		assert.Len(t, pile, 5)
		assertConserved(t, g)
	}
}

func TestInit_SeedReproducible(t *testing.T) {
	t.Parallel()

	a := New(Options{Rand: rand.New(rand.NewPCG(3, 4))})
	b := New(Options{Rand: rand.New(rand.NewPCG(3, 4))})
	require.NoError(t, a.Init())
	require.NoError(t, b.Init())

	assert.Equal(t, a.Table(), b.Table())
	assert.Equal(t, a.Hand(Cpu), b.Hand(Cpu))
	assert.Equal(t, a.Hand(Player), b.Hand(Player))
}

func TestInit_Twice(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	assert.ErrorIs(t, g.Init(), apperrors.ErrAlreadyDealt)
}

func TestActionsBeforeInit(t *testing.T) {
	t.Parallel()

	g := New(Options{})
	assert.ErrorIs(t, g.Pass(), apperrors.ErrNotInitialized)
	assert.ErrorIs(t, g.ClearTableCards(), apperrors.ErrNotInitialized)
	assert.ErrorIs(t, g.ChangeCard(0, 0, Player), apperrors.ErrNotInitialized)
	_, err := g.Call(Player)
	assert.ErrorIs(t, err, apperrors.ErrNotInitialized)
}

func TestChangeCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		actor         Actor
		handIndex     int
		tableIndex    int
		expectedHand  card.Hand
		expectedTable card.Hand
	}{
		{
			name:          "Player left with table left",
			actor:         Player,
			handIndex:     0,
			tableIndex:    0,
			expectedHand:  card.Hand{card.DA, card.HA},
			expectedTable: card.Hand{card.D5, card.D2},
		},
		{
			name:          "Player right with table left",
			actor:         Player,
			handIndex:     1,
			tableIndex:    0,
			expectedHand:  card.Hand{card.D5, card.DA},
			expectedTable: card.Hand{card.HA, card.D2},
		},
		{
			name:          "Cpu left with table right",
			actor:         Cpu,
			handIndex:     0,
			tableIndex:    1,
			expectedHand:  card.Hand{card.D2, card.D4},
			expectedTable: card.Hand{card.DA, card.D3},
		},
		{
			name:          "Cpu right with table right",
			actor:         Cpu,
			handIndex:     1,
			tableIndex:    1,
			expectedHand:  card.Hand{card.D3, card.D2},
			expectedTable: card.Hand{card.DA, card.D4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newDealtGame(t, ordinalOrder)
			other := g.Hand(tt.actor.Opponent())

			require.NoError(t, g.ChangeCard(tt.handIndex, tt.tableIndex, tt.actor))
			assert.Equal(t, tt.expectedHand, g.Hand(tt.actor))
			assert.Equal(t, tt.expectedTable, g.Table())
			assert.Equal(t, other, g.Hand(tt.actor.Opponent()))
			assertConserved(t, g)
		})
	}
}

func TestChangeCard_OutOfRange(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	table, hand := g.Table(), g.Hand(Player)

	assert.ErrorIs(t, g.ChangeCard(2, 0, Player), apperrors.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.ChangeCard(0, -1, Player), apperrors.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.ChangeCard(0, 0, Actor(9)), apperrors.ErrUnknownActor)

	assert.Equal(t, table, g.Table())
	assert.Equal(t, hand, g.Hand(Player))
	assert.Zero(t, g.Turns())
}

func TestClearTableCards(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	before, err := g.StockCards()
	require.NoError(t, err)
	oldTable := g.Table()

	require.NoError(t, g.ClearTableCards())

	assert.Equal(t, card.Hand{before[0], before[1]}, g.Table())
	after, err := g.StockCards()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
	assert.Equal(t, []card.Card{card.H4, card.H5, card.Joker, oldTable[0], oldTable[1]}, after)
	assertConserved(t, g)
}

func TestClearTableCards_Repeated(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	for range 20 {
		require.NoError(t, g.ClearTableCards())
		assertConserved(t, g)
	}
	// stock and table rotate as a 7-card cycle, two steps per clear
	assert.Equal(t, card.Hand{card.H5, card.Joker}, g.Table())
}

// flakyStock fails PopFront once broken, like a Redis stock losing its connection
type flakyStock struct {
	*stock.Deque
	broken bool
}

var errStockDown = errors.New("stock unavailable")

func (s *flakyStock) PopFront() (card.Card, error) {
	if s.broken {
		return -1, errStockDown
	}
	return s.Deque.PopFront()
}

func TestClearTableCards_FailedDrawKeepsCards(t *testing.T) {
	t.Parallel()

	fs := &flakyStock{Deque: stock.NewDeque()}
	g := New(Options{Stock: fs})
	require.NoError(t, g.InitWithOrder(ordinalOrder))
	before, err := g.StockCards()
	require.NoError(t, err)
	table := g.Table()

	fs.broken = true
	err = g.ClearTableCards()
	require.ErrorIs(t, err, errStockDown)

	after, err := g.StockCards()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, table, g.Table())
	assert.Zero(t, g.Turns())
	assertConserved(t, g)
}

func TestPass(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	table, cpu, player := g.Table(), g.Hand(Cpu), g.Hand(Player)
	stock, err := g.StockCards()
	require.NoError(t, err)

	require.NoError(t, g.Pass())

	assert.Equal(t, table, g.Table())
	assert.Equal(t, cpu, g.Hand(Cpu))
	assert.Equal(t, player, g.Hand(Player))
	after, err := g.StockCards()
	require.NoError(t, err)
	assert.Equal(t, stock, after)
	assert.Equal(t, 1, g.Turns())
}

func TestCall(t *testing.T) {
	t.Parallel()

	losing := card.Hand{card.D5, card.HA}  // 0
	strong := card.Hand{card.D3, card.D4}  // 7
	tieCpu := card.Hand{card.DA, card.D2}  // 7
	tiePlay := card.Hand{card.HA, card.H2} // 7

	tests := []struct {
		name           string
		table          card.Hand
		cpu            card.Hand
		player         card.Hand
		caller         Actor
		playerWins     bool
		reward         int
		playerReward   int
		expectedScores [2]int // player, cpu
	}{
		{
			name:           "Player calls and loses",
			table:          card.Hand{card.DA, card.D2},
			cpu:            strong,
			player:         losing,
			caller:         Player,
			playerWins:     false,
			reward:         -10,
			playerReward:   -10,
			expectedScores: [2]int{0, 7},
		},
		{
			name:           "Cpu calls and wins",
			table:          card.Hand{card.DA, card.D2},
			cpu:            strong,
			player:         losing,
			caller:         Cpu,
			playerWins:     false,
			reward:         10,
			playerReward:   -10,
			expectedScores: [2]int{0, 7},
		},
		{
			name:           "Tie favors the player on a player call",
			table:          card.Hand{card.H3, card.H4},
			cpu:            tieCpu,
			player:         tiePlay,
			caller:         Player,
			playerWins:     true,
			reward:         10,
			playerReward:   10,
			expectedScores: [2]int{7, 7},
		},
		{
			name:           "Tie loses for the cpu on a cpu call",
			table:          card.Hand{card.H3, card.H4},
			cpu:            tieCpu,
			player:         tiePlay,
			caller:         Cpu,
			playerWins:     true,
			reward:         -10,
			playerReward:   10,
			expectedScores: [2]int{7, 7},
		},
		{
			name:           "Joker hand beats broken hand",
			table:          card.Hand{card.D2, card.D3},
			cpu:            card.Hand{card.HA, card.D5},
			player:         card.Hand{card.Joker, card.D4},
			caller:         Player,
			playerWins:     true,
			reward:         10,
			playerReward:   10,
			expectedScores: [2]int{10, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newDealtGame(t, orderFor(t, tt.table, tt.cpu, tt.player))
			assert.Equal(t, tt.playerWins, g.IsWin())

			o, err := g.Call(tt.caller)
			require.NoError(t, err)
			require.NotNil(t, o)

			assert.Equal(t, g.ID, o.GameID)
			assert.Equal(t, tt.caller, o.Caller)
			assert.Equal(t, tt.expectedScores[0], o.PlayerScore)
			assert.Equal(t, tt.expectedScores[1], o.CpuScore)
			assert.Equal(t, tt.playerWins, o.PlayerWins)
			if tt.playerWins {
				assert.Equal(t, Player, o.Winner())
			} else {
				assert.Equal(t, Cpu, o.Winner())
			}
			assert.Equal(t, tt.reward, o.Reward)
			assert.Equal(t, tt.playerReward, o.RewardFor(Player))
			assert.Equal(t, -tt.playerReward, o.RewardFor(Cpu))
			assert.Equal(t, tt.cpu, o.CpuHand)
			assert.Equal(t, tt.player, o.PlayerHand)
			assert.Equal(t, tt.table, o.Table)
			assert.Equal(t, PhaseOver, g.Phase())
			assert.Same(t, o, g.Outcome())
		})
	}
}

func TestCall_IsTerminal(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	_, err := g.Call(Player)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Pass(), apperrors.ErrGameOver)
	assert.ErrorIs(t, g.ClearTableCards(), apperrors.ErrGameOver)
	assert.ErrorIs(t, g.ChangeCard(0, 0, Cpu), apperrors.ErrGameOver)
	_, err = g.Call(Cpu)
	assert.ErrorIs(t, err, apperrors.ErrGameOver)
	assertConserved(t, g)
}

func TestReward_NoSideEffects(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	assert.Equal(t, 0, g.Reward(Player))
	assert.Equal(t, 7, g.Reward(Cpu))
	assert.Equal(t, 0, g.Reward(Actor(5)))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Zero(t, g.Turns())
	assert.Nil(t, g.Outcome())
}

func TestApply_RandomSequencesConserveCards(t *testing.T) {
	t.Parallel()

	actions := []Action{
		SwapAction(0, 0), SwapAction(0, 1), SwapAction(1, 0), SwapAction(1, 1),
		ClearTableAction, PassAction,
	}

	rng := rand.New(rand.NewPCG(11, 13))
	for range 30 {
		g := New(Options{Rand: rng})
		require.NoError(t, g.Init())
		assertConserved(t, g)

		actor := Player
		for range 100 {
			a := actions[rng.IntN(len(actions))]
			o, err := g.Apply(actor, a)
			require.NoError(t, err)
			assert.Nil(t, o)
			assertConserved(t, g)

			for _, p := range []Actor{Player, Cpu} {
				score := g.CalculateScore(p)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 10)
			}
			actor = actor.Opponent()
		}

		o, err := g.Apply(actor, CallAction)
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, 101, o.Turns)
		assertConserved(t, g)
	}
}

func TestApply_UnknownAction(t *testing.T) {
	t.Parallel()

	g := newDealtGame(t, ordinalOrder)
	_, err := g.Apply(Player, Action{Kind: ActionKind(42)})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAction)
}

func TestApply_UnknownActor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action Action
	}{
		{name: "Swap", action: SwapAction(0, 0)},
		{name: "Clear", action: ClearTableAction},
		{name: "Pass", action: PassAction},
		{name: "Call", action: CallAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newDealtGame(t, ordinalOrder)
			table := g.Table()

			o, err := g.Apply(Actor(9), tt.action)
			assert.ErrorIs(t, err, apperrors.ErrUnknownActor)
			assert.Nil(t, o)
			assert.Zero(t, g.Turns())
			assert.Equal(t, table, g.Table())
			assert.Equal(t, PhasePlaying, g.Phase())
		})
	}
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "swap(hand=1, table=0)", SwapAction(1, 0).String())
	assert.Equal(t, "clear", ClearTableAction.String())
	assert.Equal(t, "pass", PassAction.String())
	assert.Equal(t, "call", CallAction.String())
	assert.Equal(t, "CPU", Cpu.String())
	assert.Equal(t, "Player", Player.String())
}
