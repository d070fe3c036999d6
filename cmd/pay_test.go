package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/chinmay1088/qbtc/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noKeyReader(t *testing.T) func(string) (string, error) {
	return func(address string) (string, error) {
		t.Fatalf("unexpected key prompt for %s", address)
		return "", nil
	}
}

func TestParsePayments(t *testing.T) {
	payments, err := parsePayments([]string{"qX=1.5", "qY=0.00000001", "qZ = 2"})
	require.NoError(t, err)
	assert.Equal(t, []api.Payment{
		{Address: "qX", Amount: 1.5},
		{Address: "qY", Amount: 0.00000001},
		{Address: "qZ", Amount: 2},
	}, payments)
}

func TestParsePayments_Invalid(t *testing.T) {
	for _, value := range []string{"qX", "=1", "qX=abc", "qX=-1", "qX=0"} {
		_, err := parsePayments([]string{value})
		assert.Error(t, err, value)
	}
}

func TestParseSources_KeepsOrder(t *testing.T) {
	sources, err := parseSources([]string{"qB=kB", "qA=kA", "qC=kC"}, noKeyReader(t))
	require.NoError(t, err)
	assert.Equal(t, []api.AddressKeyPair{
		{Address: "qB", PrivateKey: "kB"},
		{Address: "qA", PrivateKey: "kA"},
		{Address: "qC", PrivateKey: "kC"},
	}, sources)
}

func TestParseSources_PromptsForMissingKey(t *testing.T) {
	var asked []string
	sources, err := parseSources([]string{"qA", "qB=kB"}, func(address string) (string, error) {
		asked = append(asked, address)
		return "kA", nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"qA"}, asked)
	assert.Equal(t, "kA", sources[0].PrivateKey)
}

func TestParseSources_Errors(t *testing.T) {
	_, err := parseSources(nil, noKeyReader(t))
	assert.Error(t, err)

	_, err = parseSources([]string{"=k"}, noKeyReader(t))
	assert.Error(t, err)

	_, err = parseSources([]string{"qA"}, func(string) (string, error) { return "", nil })
	assert.Error(t, err)

	_, err = parseSources([]string{"qA"}, func(string) (string, error) { return "", errors.New("no tty") })
	assert.ErrorContains(t, err, "no tty")
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount(" 0.1 ")
	require.NoError(t, err)
	assert.Equal(t, "0.1", amount.String())

	_, err = parseAmount("-0.1")
	assert.Error(t, err)

	_, err = parseAmount("")
	assert.Error(t, err)
}

func TestGetTransactionConfirmation(t *testing.T) {
	assert.True(t, getTransactionConfirmation(strings.NewReader("y\n")))
	assert.True(t, getTransactionConfirmation(strings.NewReader("YES\n")))
	assert.False(t, getTransactionConfirmation(strings.NewReader("n\n")))
	assert.False(t, getTransactionConfirmation(strings.NewReader("")))
}

func TestSendWithSpinner(t *testing.T) {
	trxID, err := sendWithSpinner(func() (string, error) { return "txid1", nil })
	require.NoError(t, err)
	assert.Equal(t, "txid1", trxID)

	_, err = sendWithSpinner(func() (string, error) { return "", errors.New("rejected") })
	assert.EqualError(t, err, "rejected")
}
