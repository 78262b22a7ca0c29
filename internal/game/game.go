package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/palemoky/fifty-one/internal/apperrors"
	"github.com/palemoky/fifty-one/internal/game/card"
	"github.com/palemoky/fifty-one/internal/game/rule"
	"github.com/palemoky/fifty-one/internal/game/stock"
)

// Actor 行动方
type Actor int

const (
	Player Actor = iota // 玩家
	Cpu                 // CPU
)

var actorNames = map[Actor]string{
	Player: "Player",
	Cpu:    "CPU",
}

func (a Actor) String() string {
	if name, ok := actorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Actor(%d)", int(a))
}

func (a Actor) Valid() bool {
	return a == Player || a == Cpu
}

// Opponent 对手
func (a Actor) Opponent() Actor {
	if a == Player {
		return Cpu
	}
	return Player
}

// Phase 游戏阶段
type Phase int

const (
	PhaseNew     Phase = iota // 已创建，未发牌
	PhasePlaying              // 已发牌，可以行动
	PhaseOver                 // 已叫牌，游戏结束
)

// Options 创建游戏的参数，零值字段使用默认值
type Options struct {
	ID    string
	Rules rule.Rules
	Rand  *rand.Rand
	Stock stock.Stock
}

// Game 定义游戏状态
type Game struct {
	ID string

	rules rule.Rules
	rng   *rand.Rand
	stock stock.Stock

	table card.Hand
	hands [2]card.Hand // 按 Actor 索引

	phase   Phase
	turns   int
	outcome *Outcome
}

// New 创建一局新游戏，需要调用 Init 发牌
func New(opts Options) *Game {
	g := &Game{
		ID:    opts.ID,
		rules: opts.Rules,
		rng:   opts.Rand,
		stock: opts.Stock,
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.rules == (rule.Rules{}) {
		g.rules = rule.Default()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.stock == nil {
		g.stock = stock.NewDeque()
	}
	return g
}

// Init 洗牌并发牌
func (g *Game) Init() error {
	deck := card.NewDeck()
	deck.Shuffle(g.rng)
	return g.deal(deck)
}

// InitWithOrder 跳过洗牌，按给定顺序（第一张在牌堆顶）发牌
func (g *Game) InitWithOrder(cards []card.Card) error {
	deck := card.Deck(cards)
	if !deck.IsComplete() {
		return apperrors.ErrInvalidDeck
	}
	return g.deal(deck)
}

// deal 发牌顺序固定：场牌 → CPU → 玩家，每次从牌堆顶取
func (g *Game) deal(deck card.Deck) error {
	if g.phase != PhaseNew {
		return apperrors.ErrAlreadyDealt
	}
	if err := g.stock.Reset(deck); err != nil {
		return fmt.Errorf("初始化牌堆失败: %w", err)
	}

	for _, h := range []*card.Hand{&g.table, &g.hands[Cpu], &g.hands[Player]} {
		for i := range card.HandSize {
			c, err := g.stock.PopFront()
			if err != nil {
				return fmt.Errorf("发牌失败: %w", err)
			}
			h[i] = c
		}
	}

	g.phase = PhasePlaying
	return nil
}

func (g *Game) checkPlaying() error {
	switch g.phase {
	case PhaseNew:
		return apperrors.ErrNotInitialized
	case PhaseOver:
		return apperrors.ErrGameOver
	}
	return nil
}

// ChangeCard 交换行动方手牌 handIndex 与场牌 tableIndex
func (g *Game) ChangeCard(handIndex, tableIndex int, actor Actor) error {
	if err := g.checkPlaying(); err != nil {
		return err
	}
	if !actor.Valid() {
		return apperrors.ErrUnknownActor
	}

	hand := &g.hands[actor]
	held, err := hand.At(handIndex)
	if err != nil {
		return err
	}
	onTable, err := g.table.At(tableIndex)
	if err != nil {
		return err
	}

	if err := hand.Set(handIndex, onTable); err != nil {
		return err
	}
	if err := g.table.Set(tableIndex, held); err != nil {
		return err
	}
	g.turns++
	return nil
}

// ClearTableCards 流局：每张场牌先放回牌堆底，再从牌堆顶换一张新牌
func (g *Game) ClearTableCards() error {
	if err := g.checkPlaying(); err != nil {
		return err
	}

	for i := range card.HandSize {
		if err := g.stock.PushBack(g.table[i]); err != nil {
			return fmt.Errorf("换场牌失败: %w", err)
		}
		fresh, err := g.stock.PopFront()
		if err != nil {
			// 撤回刚放入的旧牌，保持总张数不变
			if _, undoErr := g.stock.PopBack(); undoErr != nil {
				return fmt.Errorf("换场牌失败: %w（撤回旧牌失败: %v）", err, undoErr)
			}
			return fmt.Errorf("换场牌失败: %w", err)
		}
		g.table[i] = fresh
	}
	g.turns++
	return nil
}

// Pass 不做任何操作
func (g *Game) Pass() error {
	if err := g.checkPlaying(); err != nil {
		return err
	}
	g.turns++
	return nil
}

// Call 叫牌，结算双方得分并结束游戏
func (g *Game) Call(caller Actor) (*Outcome, error) {
	if err := g.checkPlaying(); err != nil {
		return nil, err
	}
	if !caller.Valid() {
		return nil, apperrors.ErrUnknownActor
	}
	g.turns++

	o := &Outcome{
		GameID:      g.ID,
		Caller:      caller,
		CpuScore:    g.CalculateScore(Cpu),
		PlayerScore: g.CalculateScore(Player),
		Table:       g.table,
		CpuHand:     g.hands[Cpu],
		PlayerHand:  g.hands[Player],
		Turns:       g.turns,
	}
	o.PlayerWins = rule.IsWin(o.PlayerScore, o.CpuScore)

	callerWins := o.PlayerWins
	if caller == Cpu {
		callerWins = !o.PlayerWins
	}
	o.Reward = g.rules.Payoff(callerWins)

	g.phase = PhaseOver
	g.outcome = o
	return o, nil
}

// CalculateScore 行动方当前手牌得分
func (g *Game) CalculateScore(actor Actor) int {
	if !actor.Valid() {
		return 0
	}
	return g.rules.HandScore(g.hands[actor].Cards())
}

// Reward 当前局面对行动方的评估值，不修改状态
func (g *Game) Reward(actor Actor) int {
	return g.CalculateScore(actor)
}

// IsWin 玩家是否获胜，平局算玩家赢
func (g *Game) IsWin() bool {
	return rule.IsWin(g.CalculateScore(Player), g.CalculateScore(Cpu))
}

func (g *Game) Table() card.Hand {
	return g.table
}

func (g *Game) Hand(actor Actor) card.Hand {
	if !actor.Valid() {
		return card.Hand{}
	}
	return g.hands[actor]
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Rules() rule.Rules {
	return g.rules
}

// Outcome 游戏结束后的结果，未结束时为 nil
func (g *Game) Outcome() *Outcome {
	return g.outcome
}

// StockCards 牌堆快照，第一张为牌堆顶
func (g *Game) StockCards() ([]card.Card, error) {
	return g.stock.Cards()
}

// CardCount 牌堆与场上、手上的总张数，正常情况下恒为 11
func (g *Game) CardCount() (int, error) {
	n, err := g.stock.Len()
	if err != nil {
		return 0, err
	}
	if g.phase == PhaseNew {
		return n, nil
	}
	return n + 3*card.HandSize, nil
}
