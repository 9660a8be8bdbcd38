// main.go
// Copyright (C) 2024 The scrabble-solver contributors

// boardwords is the command-line driver (§7): it reads a board and a
// word list from disk and a tray from the command line, runs the
// Evaluator, and prints the legal moves it finds (up to -limit),
// highest score first - the same
// read-files/evaluate/print-ranked-moves shape the original
// command-line driver follows, rebuilt on flag and godotenv the way
// the teacher's own command entrypoints are.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	solver "github.com/seb-bl/scrabble-solver"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "boardwords: could not load .env: %v\n", err)
	}

	boardPath := flag.String("board", "", "path to a 15-line board text file")
	tray := flag.String("tray", "", "tray letters, '*' for a blank (e.g. \"teaz*\")")
	lexiconPath := flag.String("lexicon", "", "path to a newline-delimited word list")
	rules := flag.String("rules", "standard", "letter value table: standard or wwf")
	verbose := flag.Bool("v", false, "enable debug logging")
	limit := flag.Int("limit", 20, "maximum number of moves to print")
	asJSON := flag.Bool("json", false, "emit machine-readable JSON instead of a text table")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	solver.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger())

	if *boardPath == "" || *tray == "" || *lexiconPath == "" {
		fmt.Fprintln(os.Stderr, "usage: boardwords -board FILE -tray LETTERS -lexicon FILE")
		flag.PrintDefaults()
		os.Exit(2)
	}

	board, err := loadBoard(*boardPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boardwords: %v\n", err)
		os.Exit(1)
	}

	lex, err := loadLexicon(*lexiconPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boardwords: %v\n", err)
		os.Exit(1)
	}

	trayValue, unknown := solver.NewTrayFromString(*tray)
	if len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "boardwords: ignoring unknown tray characters: %q\n", string(unknown))
	}

	rulesValue := solver.DefaultRules()
	if *rules == "wwf" {
		rulesValue.Values = solver.WordsWithFriendsValues
	}

	results, err := solver.Evaluate(context.Background(), board, trayValue, lex, rulesValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boardwords: evaluation failed: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		printResultsJSON(results, *limit)
	} else {
		printResults(results, *limit)
	}
}

func loadBoard(path string) (*solver.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	return solver.ParseBoard(rows), nil
}

func loadLexicon(path string) (*solver.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}
	return solver.NewLexiconFromWords(words), nil
}

// printResults prints at most limit moves, highest score first (the
// Evaluator itself returns them ascending).
func printResults(results []solver.EvaluationResult, limit int) {
	if len(results) == 0 {
		fmt.Println("no legal moves found")
		return
	}
	count := 0
	for i := len(results) - 1; i >= 0 && count < limit; i-- {
		r := results[i]
		fmt.Printf("%4d  %-20s  %s\n", r.Score, formatMove(r.Move), strings.Join(r.Words, ", "))
		count++
	}
}

// jsonMove is the flattened, machine-readable rendering of one
// EvaluationResult, replacing GoSkrafl's dropped HTTP JSON response
// shape as the thin external collaborator for non-interactive callers.
type jsonMove struct {
	Score int      `json:"score"`
	Move  string   `json:"move"`
	Words []string `json:"words"`
}

// printResultsJSON emits at most limit moves, highest score first, as
// a JSON array on stdout.
func printResultsJSON(results []solver.EvaluationResult, limit int) {
	out := make([]jsonMove, 0, limit)
	count := 0
	for i := len(results) - 1; i >= 0 && count < limit; i-- {
		r := results[i]
		out = append(out, jsonMove{Score: r.Score, Move: formatMove(r.Move), Words: r.Words})
		count++
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "boardwords: encoding JSON: %v\n", err)
	}
}

func formatMove(m solver.Move) string {
	switch mv := m.(type) {
	case solver.SingleLetterMove:
		return fmt.Sprintf("%s@%s", tileLetter(mv.Tile), formatPos(mv.Pos))
	case solver.MultiLettersMove:
		axis := "across"
		if mv.Anchor.Dir == solver.Vertical {
			axis = "down"
		}
		return fmt.Sprintf("%s %s@%s", axis, tileLetter(mv.First), formatPos(mv.Anchor.Pos))
	default:
		return "?"
	}
}

func tileLetter(t solver.LetterTile) string {
	if t.IsWildcard {
		return "*"
	}
	return string(t.Letter)
}

func formatPos(p solver.Position) string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}
