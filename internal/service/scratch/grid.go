package scratch

import (
	"log"

	"github.com/FPFAVILA/raspadinhabet/internal/model"

	"github.com/google/uuid"
)

// Каталог символов. Денежные глифы и токены призов - непрозрачные
// строки для клиента, на расчет выигрыша влияет только их равенство
var (
	moneySymbols = []string{"💵", "💰", "💸", "🪙", "🤑"}

	// Выигрышные символы
	winningMoneySymbol  = "💰"
	winningIphoneSymbol = "/iphone_13_PNG31.png"

	// Токены призов для заполнения выигрышной карты:
	// без iphone 13, он зарезервирован под выигрышную линию
	prizeFillSymbols = []string{
		"/iphone_11_PNG20.png",
		"/pngimg.com - iphone_14_PNG41.png",
		"/Apple-iPhone-15-Pro-Max-Blue-Titanium-frontimage.webp",
		"/Airpods-Transparent-Images-PNG.png",
		"/Apple-Watch-PNG-High-Quality-Image.png",
	}

	// Токены призов для проигрышной карты - полный набор
	prizeLoseSymbols = []string{
		"/iphone_11_PNG20.png",
		"/iphone_13_PNG31.png",
		"/pngimg.com - iphone_14_PNG41.png",
		"/Apple-iPhone-15-Pro-Max-Blue-Titanium-frontimage.webp",
		"/Airpods-Transparent-Images-PNG.png",
		"/Apple-Watch-PNG-High-Quality-Image.png",
	}
)

const (
	gridSize = 9

	// Доля денежных глифов при заполнении проигрышной карты
	moneySymbolShare = 0.7
	// Лимит пересэмплирования символа ячейки при коллизии
	maxPlacementAttempts = 50
)

// Все 8 линий поля 3x3: строки, столбцы, диагонали
var winPatterns = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Индексы выигрышной линии (средняя строка)
const (
	payLineStart = 3
	payLineEnd   = 5
)

func newCell(id int, symbol string) model.Cell {
	return model.Cell{
		ID:         id,
		Symbol:     symbol,
		IsRevealed: false,
		Position:   model.Position{X: id % 3, Y: id / 3},
	}
}

// makeWinningGrid - средняя строка получает выигрышный символ, остальные
// ячейки заполняются случайно из полного каталога. Случайные тройки вне
// выигрышной линии допустимы: одна заданная линия уже определяет исход
func (s *serv) makeWinningGrid(kind model.PrizeKind) [gridSize]model.Cell {
	winningSymbol := winningMoneySymbol
	if kind == model.PrizeIphone {
		winningSymbol = winningIphoneSymbol
	}

	fillers := make([]string, 0, len(moneySymbols)+len(prizeFillSymbols))
	fillers = append(fillers, moneySymbols...)
	fillers = append(fillers, prizeFillSymbols...)

	var grid [gridSize]model.Cell
	for i := 0; i < gridSize; i++ {
		if i >= payLineStart && i <= payLineEnd {
			grid[i] = newCell(i, winningSymbol)
			continue
		}
		grid[i] = newCell(i, fillers[s.rng.Intn(len(fillers))])
	}

	return grid
}

// makeLosingGrid - каждая ячейка заполняется независимо (70% деньги / 30%
// призы), но символ, замыкающий любую из 8 линий по уже заполненным
// ячейкам, пересэмплируется. После 50 попыток ячейка заполняется любым
// символом каталога: к этому моменту замыкание линии уже невозможно
func (s *serv) makeLosingGrid() [gridSize]model.Cell {
	catalog := make([]string, 0, len(moneySymbols)+len(prizeLoseSymbols))
	catalog = append(catalog, moneySymbols...)
	catalog = append(catalog, prizeLoseSymbols...)

	var grid [gridSize]model.Cell
	for i := 0; i < gridSize; i++ {
		var symbol string
		attempts := 0
		for {
			if s.rng.Float64() < moneySymbolShare {
				symbol = moneySymbols[s.rng.Intn(len(moneySymbols))]
			} else {
				symbol = prizeLoseSymbols[s.rng.Intn(len(prizeLoseSymbols))]
			}
			attempts++
			if !wouldCompleteLine(&grid, i, symbol) || attempts >= maxPlacementAttempts {
				break
			}
		}

		if attempts >= maxPlacementAttempts {
			symbol = catalog[s.rng.Intn(len(catalog))]
		}

		grid[i] = newCell(i, symbol)
	}

	return grid
}

// wouldCompleteLine - замкнет ли symbol в позиции pos какую-либо линию
// по уже заполненным ячейкам (ячейки после pos еще пустые)
func wouldCompleteLine(grid *[gridSize]model.Cell, pos int, symbol string) bool {
	symbolAt := func(i int) string {
		if i == pos {
			return symbol
		}
		if i < pos {
			return grid[i].Symbol
		}
		return ""
	}

	for _, pattern := range winPatterns {
		first := symbolAt(pattern[0])
		if first == "" {
			continue
		}
		if symbolAt(pattern[1]) == first && symbolAt(pattern[2]) == first {
			return true
		}
	}

	return false
}

// hasAnyTriple - есть ли на поле хоть одна линия из трех одинаковых
func hasAnyTriple(grid *[gridSize]model.Cell) bool {
	for _, pattern := range winPatterns {
		first := grid[pattern[0]].Symbol
		if grid[pattern[1]].Symbol == first && grid[pattern[2]].Symbol == first {
			return true
		}
	}
	return false
}

// buildCard - собирает карту раунда по принятому решению.
// Исход фиксируется здесь и при раскрытии ячеек уже не меняется
func (s *serv) buildCard(userID int, decision model.Decision) *model.Card {
	var grid [gridSize]model.Cell
	if decision.ShouldWin {
		grid = s.makeWinningGrid(decision.PrizeKind)
	} else {
		grid = s.makeLosingGrid()
		// Нарушение инварианта - дефект генератора, а не ошибка игрока:
		// перегенерируем один раз и громко логируем
		if hasAnyTriple(&grid) {
			log.Printf("losing grid contained a triple, regenerating")
			grid = s.makeLosingGrid()
		}
	}

	return &model.Card{
		ID:          uuid.NewString(),
		UserID:      userID,
		Cost:        s.cfg.CardCost(),
		Grid:        grid,
		HasWon:      decision.ShouldWin,
		PrizeKind:   decision.PrizeKind,
		PrizeAmount: decision.PrizeAmount,
		Settled:     false,
	}
}
