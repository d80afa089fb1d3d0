package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"resto/internal/core/application/usecases/queries"
)

func TestGetTableBoardQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	db := openTestDB(t)
	repo := orderRepo(t, db)
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	occupied := tableOrderAt(t, 401, 2, base)
	require.NoError(t, repo.Add(ctx, occupied))

	// A cancelled order frees its table on the board.
	freed := tableOrderAt(t, 402, 3, base)
	require.NoError(t, freed.Cancel())
	require.NoError(t, repo.Add(ctx, freed))

	query, err := queries.NewGetTableBoardQuery(4)
	require.NoError(t, err)

	board, err := queries.NewGetTableBoardQueryHandler(db).Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, board, 4)
	for i, seat := range board {
		require.Equal(t, i+1, seat.Table)
	}

	require.False(t, board[0].Occupied)
	require.True(t, board[1].Occupied)
	require.Equal(t, "ORD-0401", board[1].OrderID)
	require.Equal(t, "Marta", board[1].CustomerName)
	require.False(t, board[2].Occupied)
	require.Empty(t, board[2].OrderID)
	require.False(t, board[3].Occupied)
}

func TestGetTableBoardQueryHandler_Handle_TableBeyondBoardIsSkipped(t *testing.T) {
	ctx := t.Context()
	db := openTestDB(t)
	repo := orderRepo(t, db)

	outOfRange := tableOrderAt(t, 403, 9, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Add(ctx, outOfRange))

	query, err := queries.NewGetTableBoardQuery(4)
	require.NoError(t, err)

	board, err := queries.NewGetTableBoardQueryHandler(db).Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, board, 4)
	for _, seat := range board {
		require.False(t, seat.Occupied)
	}
}

func TestNewGetTableBoardQuery_Validation(t *testing.T) {
	_, err := queries.NewGetTableBoardQuery(0)
	require.Error(t, err)

	_, err = queries.NewGetTableBoardQuery(-3)
	require.Error(t, err)
}
