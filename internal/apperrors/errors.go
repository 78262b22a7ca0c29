package apperrors

// 错误码
const (
	CodeEmptyStock = iota + 1001
	CodeIndexOutOfRange
	CodeNotInitialized
	CodeGameOver
	CodeInvalidDeck
	CodeUnknownAction
	CodeUnknownActor
	CodeAlreadyDealt
)

// GameError 游戏错误（引擎和驱动共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrEmptyStock      = &GameError{Code: CodeEmptyStock, Message: "牌堆已空"}
	ErrIndexOutOfRange = &GameError{Code: CodeIndexOutOfRange, Message: "牌位索引越界"}
	ErrNotInitialized  = &GameError{Code: CodeNotInitialized, Message: "游戏尚未发牌"}
	ErrGameOver        = &GameError{Code: CodeGameOver, Message: "游戏已结束"}
	ErrInvalidDeck     = &GameError{Code: CodeInvalidDeck, Message: "牌组不是 11 张牌的完整排列"}
	ErrUnknownAction   = &GameError{Code: CodeUnknownAction, Message: "未知的动作"}
	ErrUnknownActor    = &GameError{Code: CodeUnknownActor, Message: "未知的玩家"}
	ErrAlreadyDealt    = &GameError{Code: CodeAlreadyDealt, Message: "已经发过牌"}
)
