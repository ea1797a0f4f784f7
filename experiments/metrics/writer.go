package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentRecord identifies one agent configuration used in a run.
type AgentRecord struct {
	ID    int
	Name  string
	Depth int // 0 for the random baseline
	Seed  uint64
}

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID       int
	Agent1   int // AgentRecord.ID, moved first
	Agent2   int // AgentRecord.ID
	Winner   string
	Moves    int
	Forfeit  bool
	Duration time.Duration
}

// MoveRecord captures the cost of one decision inside a game.
type MoveRecord struct {
	Game      int // GameRecord.ID
	Step      int
	Player    string
	Column    int
	Nodes     int
	CacheHits int
	Cutoffs   int
	Elapsed   time.Duration
}

// Writer persists run records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(resultsDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(resultsDir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer writes into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgents(agents []AgentRecord) error {
	rows := [][]string{{"id", "name", "depth", "seed"}}
	for _, a := range agents {
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			a.Name,
			strconv.Itoa(a.Depth),
			strconv.FormatUint(a.Seed, 10),
		})
	}
	return w.writeFile("agent_configs.csv", rows)
}

func (w *Writer) WriteGames(games []GameRecord) error {
	rows := [][]string{{"id", "agent1", "agent2", "winner", "moves", "forfeit", "duration_ms"}}
	for _, g := range games {
		rows = append(rows, []string{
			strconv.Itoa(g.ID),
			strconv.Itoa(g.Agent1),
			strconv.Itoa(g.Agent2),
			g.Winner,
			strconv.Itoa(g.Moves),
			strconv.FormatBool(g.Forfeit),
			strconv.FormatInt(g.Duration.Milliseconds(), 10),
		})
	}
	return w.writeFile("games.csv", rows)
}

func (w *Writer) WriteMoves(moves []MoveRecord) error {
	rows := [][]string{{"game", "step", "player", "column", "nodes", "cache_hits", "cutoffs", "elapsed_us"}}
	for _, m := range moves {
		rows = append(rows, []string{
			strconv.Itoa(m.Game),
			strconv.Itoa(m.Step),
			m.Player,
			strconv.Itoa(m.Column),
			strconv.Itoa(m.Nodes),
			strconv.Itoa(m.CacheHits),
			strconv.Itoa(m.Cutoffs),
			strconv.FormatInt(m.Elapsed.Microseconds(), 10),
		})
	}
	return w.writeFile("moves.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
