package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Run("default set", func(t *testing.T) {
		table := NewTable()

		for code, want := range map[Code]Status{
			OK:              "OK",
			BadRequest:      "Bad Request",
			Forbidden:       "Forbidden",
			NotFound:        "Not Found",
			UpgradeRequired: "Upgrade Required",
		} {
			reason, found := table.Reason(code)
			require.True(t, found)
			require.Equal(t, want, reason)
		}
	})

	t.Run("unregistered code", func(t *testing.T) {
		reason, found := NewTable().Reason(Created)

		require.False(t, found)
		require.Empty(t, reason)
	})

	t.Run("registration", func(t *testing.T) {
		table := NewTable().Set(Created, "Created")

		reason, found := table.Reason(Created)
		require.True(t, found)
		require.Equal(t, Status("Created"), reason)
	})
}
