package main

import (
	"bytes"
	"testing"

	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/amirasaad/payrecon/pkg/service/sweep"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, sweep.Report{Scanned: 5, Reconciled: 2, Already: 1, Flagged: 1, StillPending: 1})
	assert.Contains(t, buf.String(), "scanned        5")
	assert.Contains(t, buf.String(), "reconciled     2")
	assert.Contains(t, buf.String(), "flagged        1")
	assert.Contains(t, buf.String(), "failed         0")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, "chg_1", &reconcile.Result{Outcome: reconcile.OutcomeFlagged, Reason: "amount mismatch"})
	assert.Equal(t, "chg_1: flagged (amount mismatch)\n", buf.String())
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, 2, false)
	assert.Equal(t, "schema version 2 (clean)\n", buf.String())
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"token", "ops", "--env-file", "does-not-exist.env"})
	require.NoError(t, root.Execute())
	assert.Len(t, bytes.Split(bytes.TrimSpace(out.Bytes()), []byte(".")), 3)
}

func TestMigrateRequiresAction(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"migrate"})
	assert.Error(t, root.Execute())
}
