package bot

import (
	"github.com/palemoky/fifty-one/internal/apperrors"
	"github.com/palemoky/fifty-one/internal/game"
)

// Action codes. The two letters of the swap codes are hand slot then table
// slot, L = 0 and R = 1.
const (
	CodeSwapLL = iota
	CodeSwapLR
	CodeSwapRL
	CodeSwapRR
	CodeClearTable
	CodePass
	CodeCall

	NumActions
)

var codeToAction = [NumActions]game.Action{
	CodeSwapLL:     game.SwapAction(0, 0),
	CodeSwapLR:     game.SwapAction(0, 1),
	CodeSwapRL:     game.SwapAction(1, 0),
	CodeSwapRR:     game.SwapAction(1, 1),
	CodeClearTable: game.ClearTableAction,
	CodePass:       game.PassAction,
	CodeCall:       game.CallAction,
}

// Decode maps an action code to its action.
func Decode(code int) (game.Action, error) {
	if code < 0 || code >= NumActions {
		return game.Action{}, apperrors.ErrUnknownAction
	}
	return codeToAction[code], nil
}

// Encode is the inverse of Decode.
func Encode(a game.Action) (int, error) {
	for code, candidate := range codeToAction {
		if candidate == a {
			return code, nil
		}
	}
	return -1, apperrors.ErrUnknownAction
}
