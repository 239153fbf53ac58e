package experiments

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPlayouts(t *testing.T) {
	t.Run("records every game", func(t *testing.T) {
		records, err := RunPlayouts(Config{Games: 3, Seed: 10, MaxTurns: 20})
		require.NoError(t, err)
		require.Len(t, records, 3)

		for i, r := range records {
			require.Equal(t, uint64(10+i), r.Seed)
			require.NotEmpty(t, r.ID)
			require.LessOrEqual(t, r.TotalMoves, 20)
			require.Zero(t, r.Rejected)
		}
		require.Equal(t, "black", records[0].StartingPlayer)
		require.Equal(t, "white", records[1].StartingPlayer)
	})

	t.Run("writes csv files", func(t *testing.T) {
		dir := t.TempDir()
		records, err := RunPlayouts(Config{Games: 2, Seed: 1, MaxTurns: 10, OutDir: dir})
		require.NoError(t, err)

		games, err := filepath.Glob(filepath.Join(dir, "playouts", "*", "game_records.csv"))
		require.NoError(t, err)
		require.Len(t, games, 1)

		data, err := os.ReadFile(games[0])
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, len(records)+1)
		require.True(t, strings.HasPrefix(lines[0], "id,seed,starting_player,winner"))
		require.True(t, strings.HasPrefix(lines[1], records[0].ID+",1,white,"))

		moves, err := filepath.Glob(filepath.Join(dir, "playouts", "*", "move_records.csv"))
		require.NoError(t, err)
		require.Len(t, moves, 1)
	})
}
