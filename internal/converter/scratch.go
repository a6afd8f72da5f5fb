package converter

import (
	dto "github.com/FPFAVILA/raspadinhabet/internal/api/dto/scratch"
	"github.com/FPFAVILA/raspadinhabet/internal/model"
)

func ToPlayResponse(res model.PlayResult) dto.PlayResponse {
	return dto.PlayResponse{
		Card:    toCardDTO(res.Card),
		Balance: res.Balance.StringFixed(2),
		Chance:  res.Chance,
	}
}

func toCardDTO(card *model.Card) dto.CardDTO {
	var grid [9]dto.CellDTO
	for i, cell := range card.Grid {
		grid[i] = dto.CellDTO{
			ID:         cell.ID,
			Symbol:     cell.Symbol,
			IsRevealed: cell.IsRevealed,
			Position:   dto.PositionDTO{X: cell.Position.X, Y: cell.Position.Y},
		}
	}

	return dto.CardDTO{
		ID:          card.ID,
		Cost:        card.Cost.StringFixed(2),
		Grid:        grid,
		HasWon:      card.HasWon,
		PrizeKind:   string(card.PrizeKind),
		PrizeAmount: card.PrizeAmount.StringFixed(2),
	}
}

func ToSettleResponse(res model.SettleResult) dto.SettleResponse {
	return dto.SettleResponse{
		Balance:      res.Balance.StringFixed(2),
		HasWonIphone: res.HasWonIphone,
	}
}

func ToDataResponse(data model.Data) dto.DataResponse {
	return dto.DataResponse{
		Balance:      data.Balance.StringFixed(2),
		CardsUsed:    data.CardsUsed,
		HasWonIphone: data.HasWonIphone,
	}
}

func ToStatsResponse(stats model.ScratchStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalRounds:    stats.TotalRounds,
		TotalWins:      stats.TotalWins,
		TotalCost:      stats.TotalCost.StringFixed(2),
		TotalPayout:    stats.TotalPayout.StringFixed(2),
		IphonesAwarded: stats.IphonesAwarded,
	}
}
