package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-planner/backend/internal/application/usecase/recurring"
)

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["recurring"])

	runOnce, _, err := root.Find([]string{"recurring", "run-once"})
	require.NoError(t, err)
	assert.NotNil(t, runOnce.Flags().Lookup("date"))
}

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDateFlag("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *d)

	_, err = parseDateFlag("29/02/2024")
	assert.Error(t, err)
}

func TestPrintCycle(t *testing.T) {
	var buf bytes.Buffer
	printCycle(&buf, &recurring.MaterializeDueOutput{
		Today:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Candidates:   3,
		Due:          2,
		Materialized: 2,
	})

	assert.Contains(t, buf.String(), "Today:        2024-03-01")
	assert.Contains(t, buf.String(), "Materialized: 2")
}
