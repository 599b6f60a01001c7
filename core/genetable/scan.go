// core/genetable/scan.go
package genetable

import (
	"bufio"
	"context"
	"io"
)

// Block is a consecutive run of rows sharing one QueryFull key.
type Block struct {
	Key  string
	Rows []GeneRecord
}

// ScanStats tallies what the scanner saw. Skips are silent at the row
// level; callers surface these counts through their own diagnostics.
type ScanStats struct {
	Rows      int // rows successfully parsed
	ShortRows int // skipped: fewer than 12 fields (includes blank lines)
	BadCoords int // skipped: non-integer start/stop
	Blocks    int
}

// ScanBlocksCtx reads rows from r and emits one Block per consecutive
// run of equal QueryFull keys. Blank and unparseable lines are skipped
// and never terminate the run. The final block is flushed at EOF.
//
// Grouping is by consecutive run, not a global group-by: a key that
// reappears after a different key starts a new, independent block.
//
// It is cancelable between rows via ctx; the partial block accumulated
// at cancellation is not emitted.
func ScanBlocksCtx(ctx context.Context, r io.Reader, emit func(Block) error) (ScanStats, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 4 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		stats ScanStats
		cur   Block
	)
	flush := func() error {
		if len(cur.Rows) == 0 {
			return nil
		}
		stats.Blocks++
		if err := emit(cur); err != nil {
			return err
		}
		cur = Block{}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}
		rec, err := ParseLine(sc.Text())
		switch err {
		case nil:
		case ErrShortRow:
			stats.ShortRows++
			continue
		case ErrBadCoord:
			stats.BadCoords++
			continue
		default:
			return stats, err
		}
		stats.Rows++
		if len(cur.Rows) > 0 && rec.QueryFull != cur.Key {
			if err := flush(); err != nil {
				return stats, err
			}
		}
		cur.Key = rec.QueryFull
		cur.Rows = append(cur.Rows, rec)
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}
	return stats, flush()
}
