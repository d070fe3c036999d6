package qbitcoin

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_ChangeIsLastOutput(t *testing.T) {
	tx := NewTransaction()
	tx.AddInput("t1", 0, 1.5)
	tx.AddInput("t2", 3, 0.5)
	tx.AddKey("k1")
	tx.AddOutput("X", 1.25)
	tx.AddOutput("Y", 0.25)

	change := tx.AddChangeOutput("A", 0.125)
	assert.Equal(t, 2.0-1.25-0.25-0.125, change)
	assert.Equal(t, 2.0, tx.Balance())

	last, err := tx.ChangeOutput()
	require.NoError(t, err)
	assert.Equal(t, Output{Address: "A", Amount: change}, last)

	outputs, err := json.Marshal(tx.Outputs)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"X":1.25},{"Y":0.25},{"A":0.375}]`, string(outputs))

	inputs, err := json.Marshal(tx.Inputs)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"txid":"t1","vout":0},{"txid":"t2","vout":3}]`, string(inputs))
}

func TestTransaction_ChangeSubtractsInOrder(t *testing.T) {
	tx := NewTransaction()
	tx.AddInput("t1", 0, 0.3)
	tx.AddOutput("X", 0.1)
	tx.AddOutput("Y", 0.2)

	want := 0.3
	want -= 0.1
	want -= 0.2
	want -= 0.0001
	assert.Equal(t, want, tx.CalculateChange(0.0001))
}

func TestTransaction_NegativeChangeKept(t *testing.T) {
	tx := NewTransaction()
	tx.AddInput("t1", 0, 1.0)
	tx.AddOutput("X", 2.0)

	assert.Equal(t, -1.5, tx.AddChangeOutput("A", 0.5))
}

func TestTransaction_KeysKeepOrder(t *testing.T) {
	tx := NewTransaction()
	for _, k := range []string{"k3", "k1", "k2"} {
		tx.AddKey(k)
	}
	assert.Equal(t, []string{"k3", "k1", "k2"}, tx.Keys)
}

func TestTransaction_NoOutputs(t *testing.T) {
	_, err := NewTransaction().ChangeOutput()
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.50000000 QBTC (150000000 sat)", FormatAmount(1.5))
	assert.Equal(t, "0.00000001 QBTC (1 sat)", FormatAmount(0.00000001))
}
