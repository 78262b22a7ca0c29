package card

import (
	"fmt"
	"math/rand/v2"
)

// Suit 定义花色
type Suit int

const (
	Diamond   Suit = iota // 方块
	Heart                 // 红心
	JokerSuit             // 王牌，可匹配任意花色
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Diamond:   "♦",
	Heart:     "♥",
	JokerSuit: "★",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Card 定义一张牌，值即序号
type Card int

const (
	DA Card = iota
	D2
	D3
	D4
	D5
	HA
	H2
	H3
	H4
	H5
	Joker
)

const (
	// Count 整副牌的张数
	Count = 11
	// RanksPerSuit 每种花色的张数
	RanksPerSuit = 5
)

// cardNames 牌名映射表
var cardNames = map[Card]string{
	DA: "dA", D2: "d2", D3: "d3", D4: "d4", D5: "d5",
	HA: "hA", H2: "h2", H3: "h3", H4: "h4", H5: "h5",
	Joker: "J",
}

// nameToCard 用于快速查找名称对应的 Card
var nameToCard = func() map[string]Card {
	m := make(map[string]Card, len(cardNames))
	for c, name := range cardNames {
		m[name] = c
	}
	return m
}()

func (c Card) String() string {
	if name, ok := cardNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Card(%d)", int(c))
}

// Parse 解析牌名，例如 "dA"、"h3"、"J"
func Parse(name string) (Card, error) {
	if c, ok := nameToCard[name]; ok {
		return c, nil
	}
	return -1, fmt.Errorf("无法识别的牌: %q", name)
}

// Valid 是否为 11 张牌之一
func (c Card) Valid() bool {
	return c >= DA && c <= Joker
}

func (c Card) IsJoker() bool {
	return c == Joker
}

func (c Card) IsAce() bool {
	return c == DA || c == HA
}

// Suit 返回花色，王牌返回 JokerSuit
func (c Card) Suit() Suit {
	if c.IsJoker() {
		return JokerSuit
	}
	return Suit(int(c) / RanksPerSuit)
}

// Rank 返回点数 1..5，王牌返回 0
func (c Card) Rank() int {
	if c.IsJoker() {
		return 0
	}
	return int(c)%RanksPerSuit + 1
}

// Matches 两张牌是否同花色，王牌匹配任意花色
func (c Card) Matches(other Card) bool {
	if c.IsJoker() || other.IsJoker() {
		return true
	}
	return c.Suit() == other.Suit()
}

// Deck 定义一副牌
type Deck []Card

// NewDeck 按序号顺序返回全部 11 张牌
func NewDeck() Deck {
	deck := make(Deck, 0, Count)
	for c := DA; c <= Joker; c++ {
		deck = append(deck, c)
	}
	return deck
}

// Shuffle 使用注入的随机源洗牌
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// IsComplete 是否恰好包含 11 张牌各一张
func (d Deck) IsComplete() bool {
	if len(d) != Count {
		return false
	}
	var seen [Count]bool
	for _, c := range d {
		if !c.Valid() || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
