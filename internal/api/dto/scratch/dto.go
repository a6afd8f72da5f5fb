package scratch

type PositionDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type CellDTO struct {
	ID         int         `json:"id"`
	Symbol     string      `json:"symbol"`
	IsRevealed bool        `json:"is_revealed"`
	Position   PositionDTO `json:"position"`
}

type CardDTO struct {
	ID          string     `json:"id"`
	Cost        string     `json:"cost"`         // Стоимость карты, 2 знака
	Grid        [9]CellDTO `json:"grid"`         // Поле 3x3 построчно
	HasWon      bool       `json:"has_won"`      // Исход решен при выдаче
	PrizeKind   string     `json:"prize_kind"`   // none | money | iphone
	PrizeAmount string     `json:"prize_amount"` // Для money, 2 знака
}

type PlayResponse struct {
	Card    CardDTO `json:"card"`
	Balance string  `json:"balance"` // Баланс после списания
	Chance  int     `json:"chance"`  // Косметический "шанс выигрыша", %
}

type SettleRequest struct {
	CardID string `json:"card_id"`
}

type SettleResponse struct {
	Balance      string `json:"balance"`
	HasWonIphone bool   `json:"has_won_iphone"`
}

type DepositRequest struct {
	Amount string `json:"amount"` // Сумма пополнения, например "25.00"
}

type DataResponse struct {
	Balance      string `json:"balance"`
	CardsUsed    int    `json:"cards_used"`
	HasWonIphone bool   `json:"has_won_iphone"`
}

type StatsResponse struct {
	TotalRounds    int    `json:"total_rounds"`
	TotalWins      int    `json:"total_wins"`
	TotalCost      string `json:"total_cost"`
	TotalPayout    string `json:"total_payout"`
	IphonesAwarded int    `json:"iphones_awarded"`
}
