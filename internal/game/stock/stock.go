// Package stock holds the undealt/discard pile, a deque accessed only from its two ends.
package stock

import (
	"github.com/palemoky/fifty-one/internal/apperrors"
	"github.com/palemoky/fifty-one/internal/game/card"
)

// Stock is a double-ended pile of cards. Every method returns an error so
// storage-backed implementations can report I/O failures; Pop and Peek on an
// empty stock return apperrors.ErrEmptyStock.
type Stock interface {
	PushFront(c card.Card) error
	PushBack(c card.Card) error
	PopFront() (card.Card, error)
	PopBack() (card.Card, error)
	PeekFront() (card.Card, error)
	PeekBack() (card.Card, error)
	Len() (int, error)
	// Reset replaces the contents, cards[0] becomes the front.
	Reset(cards []card.Card) error
	// Cards returns a front-to-back snapshot.
	Cards() ([]card.Card, error)
}

// Deque is the in-memory Stock.
type Deque struct {
	cards []card.Card
}

var _ Stock = (*Deque)(nil)

// NewDeque creates a deque holding cards front to back.
func NewDeque(cards ...card.Card) *Deque {
	d := &Deque{}
	_ = d.Reset(cards)
	return d
}

func (d *Deque) PushFront(c card.Card) error {
	d.cards = append([]card.Card{c}, d.cards...)
	return nil
}

func (d *Deque) PushBack(c card.Card) error {
	d.cards = append(d.cards, c)
	return nil
}

func (d *Deque) PopFront() (card.Card, error) {
	if len(d.cards) == 0 {
		return -1, apperrors.ErrEmptyStock
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *Deque) PopBack() (card.Card, error) {
	if len(d.cards) == 0 {
		return -1, apperrors.ErrEmptyStock
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

func (d *Deque) PeekFront() (card.Card, error) {
	if len(d.cards) == 0 {
		return -1, apperrors.ErrEmptyStock
	}
	return d.cards[0], nil
}

func (d *Deque) PeekBack() (card.Card, error) {
	if len(d.cards) == 0 {
		return -1, apperrors.ErrEmptyStock
	}
	return d.cards[len(d.cards)-1], nil
}

func (d *Deque) Len() (int, error) {
	return len(d.cards), nil
}

func (d *Deque) Reset(cards []card.Card) error {
	d.cards = append(make([]card.Card, 0, max(len(cards), card.Count)), cards...)
	return nil
}

func (d *Deque) Cards() ([]card.Card, error) {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out, nil
}
