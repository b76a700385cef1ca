// Package boardio reads and writes boards in the fixed-width grid
// format: one line per row, one symbol per cell, dimensions inferred
// from the file itself.
package boardio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/siegechess/siegechess/internal/game/core"
)

var (
	ErrEmptyBoard  = errors.New("board file is empty")
	ErrRaggedBoard = errors.New("board rows have inconsistent width")
	ErrBoardTooBig = errors.New("board dimension exceeds limit")
)

// Read decodes a board from r. A zero maxDim disables the dimension
// limit. Malformed input (empty, ragged rows, unknown symbols,
// oversized dimensions) is a fatal error, never silently truncated.
func Read(r io.Reader, maxDim int) (*core.Board, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}

	// A trailing blank line is tolerated; blank lines elsewhere are
	// ragged input.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyBoard
	}

	rows, cols := len(lines), len(lines[0])
	if maxDim > 0 && (rows > maxDim || cols > maxDim) {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrBoardTooBig, rows, cols, maxDim)
	}

	board := core.NewBoard(rows, cols)
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedBoard, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			occ, err := core.OccupantFromSymbol(line[c])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			board.Set(core.NewPosition(r, c), occ)
		}
	}
	return board, nil
}

// Write encodes the board to w in the same format Read accepts.
func Write(w io.Writer, b *core.Board) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if err := bw.WriteByte(b.At(core.NewPosition(r, c)).Symbol()); err != nil {
				return fmt.Errorf("writing board: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing board: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing board: %w", err)
	}
	return nil
}

// Load reads a board from a file.
func Load(path string, maxDim int) (*core.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()

	board, err := Read(f, maxDim)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return board, nil
}

// Save writes a board to a file, replacing any existing content.
func Save(path string, b *core.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating board file: %w", err)
	}
	if err := Write(f, b); err != nil {
		f.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
