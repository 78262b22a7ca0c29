package card

import (
	"strings"

	"github.com/palemoky/fifty-one/internal/apperrors"
)

// HandSize 手牌和场牌的张数
const HandSize = 2

// Hand 定长的两张牌：场牌、CPU 手牌、玩家手牌都用它表示
type Hand [HandSize]Card

// At 取指定牌位的牌
func (h *Hand) At(i int) (Card, error) {
	if i < 0 || i >= HandSize {
		return -1, apperrors.ErrIndexOutOfRange
	}
	return h[i], nil
}

// Set 设置指定牌位的牌
func (h *Hand) Set(i int, c Card) error {
	if i < 0 || i >= HandSize {
		return apperrors.ErrIndexOutOfRange
	}
	h[i] = c
	return nil
}

// Cards 返回切片形式，便于按任意张数计分
func (h Hand) Cards() []Card {
	return h[:]
}

func (h Hand) String() string {
	names := make([]string, 0, HandSize)
	for _, c := range h {
		names = append(names, c.String())
	}
	return strings.Join(names, " ")
}
