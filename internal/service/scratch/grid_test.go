package scratch

import (
	"testing"

	"github.com/FPFAVILA/raspadinhabet/internal/model"
)

func TestMakeLosingGridNeverHasTriple(t *testing.T) {
	s, _ := newTestServ(11)

	for i := 0; i < 2000; i++ {
		grid := s.makeLosingGrid()
		if hasAnyTriple(&grid) {
			t.Fatalf("losing grid %d contains a triple: %+v", i, grid)
		}
	}
}

func TestMakeLosingGridSymbols(t *testing.T) {
	s, _ := newTestServ(12)

	catalog := make(map[string]bool)
	for _, sym := range moneySymbols {
		catalog[sym] = true
	}
	for _, sym := range prizeLoseSymbols {
		catalog[sym] = true
	}

	for i := 0; i < 200; i++ {
		grid := s.makeLosingGrid()
		for _, cell := range grid {
			if !catalog[cell.Symbol] {
				t.Fatalf("losing grid cell has unknown symbol %q", cell.Symbol)
			}
		}
	}
}

func TestMakeWinningGridMoney(t *testing.T) {
	s, _ := newTestServ(13)

	for i := 0; i < 200; i++ {
		grid := s.makeWinningGrid(model.PrizeMoney)
		for pos := payLineStart; pos <= payLineEnd; pos++ {
			if grid[pos].Symbol != winningMoneySymbol {
				t.Fatalf("cell %d = %q, want %q", pos, grid[pos].Symbol, winningMoneySymbol)
			}
		}
	}
}

func TestMakeWinningGridIphone(t *testing.T) {
	s, _ := newTestServ(14)

	for i := 0; i < 200; i++ {
		grid := s.makeWinningGrid(model.PrizeIphone)
		for pos := payLineStart; pos <= payLineEnd; pos++ {
			if grid[pos].Symbol != winningIphoneSymbol {
				t.Fatalf("cell %d = %q, want %q", pos, grid[pos].Symbol, winningIphoneSymbol)
			}
		}

		// Вне выигрышной линии символ айфона 13 не встречается
		for pos := 0; pos < gridSize; pos++ {
			if pos >= payLineStart && pos <= payLineEnd {
				continue
			}
			if grid[pos].Symbol == winningIphoneSymbol {
				t.Fatalf("filler cell %d reuses the winning iphone symbol", pos)
			}
		}
	}
}

func TestCellPositions(t *testing.T) {
	s, _ := newTestServ(15)

	grid := s.makeWinningGrid(model.PrizeMoney)
	for i, cell := range grid {
		if cell.ID != i {
			t.Errorf("cell %d: ID = %d", i, cell.ID)
		}
		if cell.Position.X != i%3 || cell.Position.Y != i/3 {
			t.Errorf("cell %d: position = (%d, %d), want (%d, %d)",
				i, cell.Position.X, cell.Position.Y, i%3, i/3)
		}
		if cell.IsRevealed {
			t.Errorf("cell %d revealed at generation time", i)
		}
	}
}

func TestWouldCompleteLine(t *testing.T) {
	var grid [gridSize]model.Cell
	grid[0] = newCell(0, "💵")
	grid[1] = newCell(1, "💵")

	if !wouldCompleteLine(&grid, 2, "💵") {
		t.Error("third matching symbol in the top row must complete the line")
	}
	if wouldCompleteLine(&grid, 2, "💰") {
		t.Error("different symbol must not complete the line")
	}

	// Линия через еще не заполненную ячейку не считается замкнутой
	if wouldCompleteLine(&grid, 4, "💵") {
		t.Error("line through an empty cell reported as complete")
	}
}

func TestBuildCardOutcome(t *testing.T) {
	s, _ := newTestServ(16)

	win := s.buildCard(1, model.Decision{
		ShouldWin:   true,
		PrizeKind:   model.PrizeMoney,
		PrizeAmount: dec("20.00"),
	})
	if !win.HasWon || win.PrizeKind != model.PrizeMoney || !win.PrizeAmount.Equal(dec("20.00")) {
		t.Errorf("winning card mismatch: %+v", win)
	}
	if !win.Cost.Equal(dec("4.90")) {
		t.Errorf("card cost = %s, want 4.90", win.Cost)
	}
	if win.ID == "" {
		t.Error("card has no id")
	}

	lose := s.buildCard(1, model.Decision{ShouldWin: false, PrizeKind: model.PrizeNone})
	if lose.HasWon || hasAnyTriple(&lose.Grid) {
		t.Errorf("losing card mismatch: %+v", lose)
	}
}
