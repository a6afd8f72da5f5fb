package model

import (
	"github.com/shopspring/decimal"
)

// Тип приза раскрытой карточки
type PrizeKind string

const (
	PrizeNone   PrizeKind = "none"
	PrizeMoney  PrizeKind = "money"
	PrizeIphone PrizeKind = "iphone"
)

// Decision - решение по раунду, принимается ДО генерации поля
// и больше не меняется
type Decision struct {
	ShouldWin   bool
	PrizeKind   PrizeKind
	PrizeAmount decimal.Decimal
}

type Position struct {
	X int
	Y int
}

// Cell - одна ячейка поля 3x3. IsRevealed чисто косметика,
// на расчет выигрыша не влияет
type Cell struct {
	ID         int
	Symbol     string
	IsRevealed bool
	Position   Position
}

// Card - скретч-карта одного раунда
type Card struct {
	ID          string
	UserID      int
	Cost        decimal.Decimal
	Grid        [9]Cell
	HasWon      bool
	PrizeKind   PrizeKind
	PrizeAmount decimal.Decimal
	Settled     bool
}

// ScratchState - персистентное состояние игрока
// (баланс, сыгранные раунды, флаг айфона)
type ScratchState struct {
	Balance      decimal.Decimal
	CardsUsed    int
	HasWonIphone bool
}

type PlayResult struct {
	Card    *Card
	Balance decimal.Decimal
	// Косметический "шанс выигрыша" в процентах, к реальному исходу отношения не имеет
	Chance int
}

type SettleResult struct {
	Balance      decimal.Decimal
	HasWonIphone bool
}

type Data struct {
	Balance      decimal.Decimal
	CardsUsed    int
	HasWonIphone bool
}

// ScratchStats - сводка по всем раундам процесса
type ScratchStats struct {
	TotalRounds    int
	TotalWins      int
	TotalCost      decimal.Decimal
	TotalPayout    decimal.Decimal
	IphonesAwarded int
}
