package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation codes.
const (
	CodeEmptyPlan       = "EMPTY_PLAN"
	CodeUnknownSymbol   = "UNKNOWN_SYMBOL"
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
	CodeNoCoins         = "NO_COINS"
	CodePlayerBlocked   = "PLAYER_BLOCKED"
)

// blankSymbols are plan symbols that mean empty space.
const blankSymbols = " ."

// Validate checks that a level is playable with the given parser.
// Checks:
//   - The plan has at least one non-blank row
//   - Every symbol is blank, an obstacle, or mapped to an actor
//   - Exactly one player
//   - At least one coin
//   - The player does not spawn inside an obstacle
func Validate(lvl Level, p *world.Parser) error {
	// Check 1: Plan present
	if !hasContent(lvl.Plan) {
		return ValidationError{
			Code:    CodeEmptyPlan,
			Message: fmt.Sprintf("level %s has an empty plan", lvl.ID),
		}
	}

	// Check 2: Symbols known
	if err := validateSymbols(lvl, p); err != nil {
		return err
	}

	// Check 3: Actors
	level := p.Parse(lvl.Plan)
	switch n := level.Count(world.KindPlayer); {
	case n == 0:
		return ValidationError{Code: CodeNoPlayer, Message: fmt.Sprintf("level %s has no player", lvl.ID)}
	case n > 1:
		return ValidationError{Code: CodeMultiplePlayers, Message: fmt.Sprintf("level %s has %d players", lvl.ID, n)}
	}
	if level.Count(world.KindCoin) == 0 {
		return ValidationError{Code: CodeNoCoins, Message: fmt.Sprintf("level %s has no coins to collect", lvl.ID)}
	}

	// Check 4: Spawn point clear
	body := level.Player().Bounds()
	if o := level.ObstacleAt(body.Pos, body.Size); o != world.ObstacleNone {
		return ValidationError{
			Code:    CodePlayerBlocked,
			Message: fmt.Sprintf("level %s spawns the player inside %s at %s", lvl.ID, o, body.Pos),
		}
	}

	return nil
}

func hasContent(plan world.Plan) bool {
	for _, row := range plan {
		if strings.Trim(row, blankSymbols) != "" {
			return true
		}
	}
	return false
}

func validateSymbols(lvl Level, p *world.Parser) error {
	for y, row := range lvl.Plan {
		x := 0
		for _, sym := range row {
			_, isActor := p.ActorFromSymbol(sym)
			known := isActor ||
				p.ObstacleFromSymbol(sym) != world.ObstacleNone ||
				strings.ContainsRune(blankSymbols, sym)
			if !known {
				return ValidationError{
					Code:    CodeUnknownSymbol,
					Message: fmt.Sprintf("level %s: unknown symbol %q at row %d column %d", lvl.ID, sym, y, x),
				}
			}
			x++
		}
	}
	return nil
}
