package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"battleship-cli/internal/config"
	cerr "battleship-cli/internal/error"
	"battleship-cli/internal/util"
	bs "battleship-cli/models/battleship"
)

const banner = `
                                     |__
                                     |\/
                                     ---
                                     / | [
                              !      | |||
                            _/|     _/|-++'
                        +  +--|    |--|--|_ |-
                     { /|__|  |/\__|  |--- |||__/
                    +---------------___[}-_===_.'____                 /\
                ____` + "`" + `-' ||___-{]_| _[}-  |     |_[___\==--            \/   _
 __..._____--==/___]_|__|_____________________________[___\==--____,------' .7
|                                                                          /
 \_________________________________________________________________________|
`

func main() {
	// Optional .env for local overrides, same knobs work as plain env.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}

	cfg, err := config.Load(os.Getenv("BATTLESHIP_CONFIG"))
	if err != nil {
		log.Fatalln("loading config:", err)
	}

	if rawSeed := os.Getenv("BATTLESHIP_SEED"); rawSeed != "" {
		seed, err := strconv.ParseInt(rawSeed, 10, 64)
		if err != nil {
			log.Fatalln("BATTLESHIP_SEED must be an integer:", err)
		}
		cfg.Seed = seed
	}

	game := &cliGame{
		cfg:    cfg,
		rng:    util.New(cfg.Seed),
		reader: bufio.NewReader(os.Stdin),
	}
	if err := game.run(); err != nil {
		log.Fatalln(err)
	}
}

type cliGame struct {
	cfg    config.GameConfig
	rng    *rand.Rand
	reader *bufio.Reader
}

func (g *cliGame) run() error {
	fmt.Printf("%s\n", banner)
	g.pause("Starting new game of battleships. Press enter to continue.")

	humanBoard, err := bs.NewBoard(g.cfg.GridSize)
	if err != nil {
		return err
	}
	computerBoard, err := bs.NewBoard(g.cfg.GridSize)
	if err != nil {
		return err
	}

	human := bs.NewPlayer("You", humanBoard)
	computer := bs.NewPlayer("Computer", computerBoard)
	match := bs.NewMatch(human, computer)

	if err := g.placeHumanFleet(humanBoard); err != nil {
		return err
	}
	if err := computerBoard.PlaceFleetRandom(g.cfg.Fleet, g.rng); err != nil {
		return err
	}

	g.coinFlipCeremony(match)

	for !match.Finished() {
		if match.TurnOwner() == human {
			if err := g.humanTurn(match); err != nil {
				return err
			}
		} else {
			if err := g.computerTurn(match); err != nil {
				return err
			}
		}
	}

	winner := match.Winner()
	if winner == human {
		fmt.Println("You win!")
	} else {
		fmt.Println("You lose.")
	}
	fmt.Printf("Your accuracy: %d/%d (%.1f%%)\n", human.ShotsHit(), human.ShotsFired(), human.Accuracy())
	fmt.Printf("Computer accuracy: %d/%d (%.1f%%)\n", computer.ShotsHit(), computer.ShotsFired(), computer.Accuracy())
	return nil
}

func (g *cliGame) placeHumanFleet(board *bs.Board) error {
	for {
		choice := strings.ToUpper(g.prompt("Would you like your ships to be randomly placed for you? (Y/N) "))
		if choice == "" {
			continue
		}
		switch choice[0] {
		case 'Y':
			return board.PlaceFleetRandom(g.cfg.Fleet, g.rng)
		case 'N':
			return g.placeFleetInteractively(board)
		}
	}
}

func (g *cliGame) placeFleetInteractively(board *bs.Board) error {
	fmt.Print(renderBoard(board, true))

	for _, length := range g.cfg.Fleet {
		variety, err := bs.VarietyForLength(length)
		if err != nil {
			return err
		}
		fmt.Printf("Now placing %s of length %d.\n", variety, length)
		fmt.Println("Specify start point and direction for ship.")

		for {
			start, err := g.readCoordinate()
			if err != nil {
				fmt.Println(err)
				continue
			}
			direction, err := g.readDirection()
			if err != nil {
				fmt.Println(err)
				continue
			}

			ship, err := bs.NewShip(length, start, direction)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if !board.IsValidPlacement(ship) {
				fmt.Println("Invalid placement. Ship would intersect other ships or be out of bounds; try again.")
				continue
			}
			if err := board.PlaceShip(ship); err != nil {
				return err
			}
			break
		}

		fmt.Print(renderBoard(board, true))
		g.pause(fmt.Sprintf("%s placed, press enter to continue.", variety))
	}
	return nil
}

func (g *cliGame) coinFlipCeremony(match *bs.Match) {
	fmt.Println("All ships placed. A coin will be flipped to determine turn order.")
	var call string
	for {
		call = strings.ToUpper(g.prompt("Enter heads or tails: "))
		if call != "" && (call[0] == 'H' || call[0] == 'T') {
			break
		}
	}
	fmt.Println("Flipping coin...")

	first := match.CoinFlip(g.rng)
	if first == match.Human() {
		fmt.Println("Correct - You move first.")
	} else {
		fmt.Println("Incorrect - Computer moves first.")
	}
}

func (g *cliGame) humanTurn(match *bs.Match) error {
	g.pause("Your turn, press enter to continue.")
	fmt.Print(renderBoard(match.Computer().Board, false))

	target, err := g.readCoordinate()
	for err != nil {
		fmt.Println(err)
		target, err = g.readCoordinate()
	}

	g.pause(fmt.Sprintf("Firing on %s! Press enter to continue.", target))
	outcome, err := match.Fire(target)
	if err != nil {
		return err
	}
	g.announce(outcome)
	return nil
}

func (g *cliGame) computerTurn(match *bs.Match) error {
	g.pause("Computer's turn, press enter to continue.")
	fmt.Print(renderBoard(match.Human().Board, true))
	fmt.Println("Thinking...")

	targets := match.Human().Board.GenerateTargets()
	target := targets[g.rng.Intn(len(targets))]

	g.pause(fmt.Sprintf("Incoming at %s! Press enter to continue.", target))
	outcome, err := match.Fire(target)
	if err != nil {
		return err
	}
	g.announce(outcome)
	return nil
}

func (g *cliGame) announce(outcome bs.Outcome) {
	switch outcome.Result {
	case bs.ShotHit:
		fmt.Println("Hit!")
	case bs.ShotHitAndSunk:
		fmt.Printf("Hit! %s sunk!\n", outcome.Sunk)
	default:
		fmt.Println("Miss.")
	}
}

func (g *cliGame) prompt(msg string) string {
	fmt.Print(msg)
	line, _ := g.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (g *cliGame) pause(msg string) {
	g.prompt(msg + " ")
}

func (g *cliGame) readCoordinate() (bs.Coordinate, error) {
	raw := g.prompt(`Enter coordinate in the form "A1": `)
	return parseCoordinate(raw, g.cfg.GridSize)
}

func (g *cliGame) readDirection() (bs.Direction, error) {
	return bs.ParseDirection(g.prompt("Enter direction (NESW): "))
}

// parseCoordinate turns display form ("A1", "j10") into a zero-based
// coordinate, bounds-checked against the grid size.
func parseCoordinate(raw string, gridSize int) (bs.Coordinate, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if len(raw) < 2 {
		return bs.Coordinate{}, cerr.ErrInvalidCoordString(raw)
	}

	row := int(raw[0] - 'A')
	col, err := strconv.Atoi(raw[1:])
	if err != nil {
		return bs.Coordinate{}, cerr.ErrInvalidCoordString(raw)
	}
	col--

	if row < 0 || row >= gridSize || col < 0 || col >= gridSize {
		return bs.Coordinate{}, cerr.ErrRowOrColOutOfGridBound(row, col)
	}
	return bs.NewCoordinate(row, col), nil
}

// renderBoard boxes the core's symbol grid with row letters and column
// numbers the way the player sees it.
func renderBoard(board *bs.Board, revealShips bool) string {
	grid := board.Render(revealShips)

	var sb strings.Builder
	sb.WriteString("  " + strings.Repeat("_ ", board.Size()) + "\n")
	for row, cells := range grid {
		sb.WriteByte(byte('A' + row))
		sb.WriteByte('|')
		for _, symbol := range cells {
			sb.WriteRune(symbol)
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := 1; col <= board.Size(); col++ {
		sb.WriteString(" " + strconv.Itoa(col))
	}
	sb.WriteString("\n")
	return sb.String()
}
