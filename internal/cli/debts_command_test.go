package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeledger/internal/domain"
)

func TestDebtsCommand_Execute(t *testing.T) {
	t.Run("should report when no debts are active", func(t *testing.T) {
		app, _, out := setupTestApp(t)
		_, err := app.api.AddEntry(domain.EntryTypeAsset, 60, domain.CategoryDeepWork, "", 0)
		require.NoError(t, err)

		require.NoError(t, NewDebtsCommand(app).Execute())

		assert.Contains(t, out.String(), "No active debts")
	})

	t.Run("should list debts largest total owed first", func(t *testing.T) {
		app, clock, out := setupTestApp(t)
		small, err := app.api.AddEntry(domain.EntryTypeLiability, 30, domain.CategoryGaming, "", 0)
		require.NoError(t, err)
		large, err := app.api.AddEntry(domain.EntryTypeLiability, 120, domain.CategoryStreaming, "", 0)
		require.NoError(t, err)
		clock.Advance(24 * time.Hour)

		require.NoError(t, NewDebtsCommand(app).Execute())

		output := out.String()
		assert.Contains(t, output, "TOTAL OWED")
		assert.Contains(t, output, "Gaming")
		assert.Contains(t, output, "Streaming")
		assert.Less(t, indexOf(t, output, large.ID), indexOf(t, output, small.ID))
	})
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected output to contain %q", needle)
	return idx
}
