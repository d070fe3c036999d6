package qbitcoin

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
)

// Output is a single destination of a raw transaction.
// It encodes as a one-member object {"address": amount}.
type Output struct {
	Address string
	Amount  float64
}

// MarshalJSON implements json.Marshaler
func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{o.Address: o.Amount})
}

// Transaction collects what createrawtransaction and signrawtransactionwithkey
// need: the spent outputs, the destinations and the signing keys.
type Transaction struct {
	Inputs  []btcjson.TransactionInput
	Outputs []Output
	Keys    []string

	balance float64
}

// NewTransaction creates an empty transaction
func NewTransaction() *Transaction {
	return &Transaction{
		Inputs:  make([]btcjson.TransactionInput, 0),
		Outputs: make([]Output, 0),
		Keys:    make([]string, 0),
	}
}

// AddKey adds a private key used to sign the inputs. Keys are passed to the
// node in the order they were added.
func (tx *Transaction) AddKey(privateKey string) {
	tx.Keys = append(tx.Keys, privateKey)
}

// AddInput spends the output vout of txid, worth amount
func (tx *Transaction) AddInput(txid string, vout uint32, amount float64) {
	tx.Inputs = append(tx.Inputs, btcjson.TransactionInput{
		Txid: txid,
		Vout: vout,
	})
	tx.balance += amount
}

// AddOutput adds a destination output
func (tx *Transaction) AddOutput(address string, amount float64) {
	tx.Outputs = append(tx.Outputs, Output{Address: address, Amount: amount})
}

// Balance is the total amount of the added inputs
func (tx *Transaction) Balance() float64 {
	return tx.balance
}

// CalculateChange returns what is left of the inputs after the outputs added so
// far and fee. Amounts are subtracted one by one in output order, fee last.
// The result may be negative; it is not checked here.
func (tx *Transaction) CalculateChange(fee float64) float64 {
	change := tx.balance
	for _, out := range tx.Outputs {
		change -= out.Amount
	}
	change -= fee
	return change
}

// AddChangeOutput appends the change output to address and returns its amount.
// It must be called after all destination outputs so change stays last.
func (tx *Transaction) AddChangeOutput(address string, fee float64) float64 {
	change := tx.CalculateChange(fee)
	tx.AddOutput(address, change)
	return change
}

// ChangeOutput returns the last output, which is the change once AddChangeOutput ran
func (tx *Transaction) ChangeOutput() (Output, error) {
	if len(tx.Outputs) == 0 {
		return Output{}, fmt.Errorf("transaction has no outputs")
	}
	return tx.Outputs[len(tx.Outputs)-1], nil
}

// FormatAmount formats a coin amount with its satoshi equivalent
func FormatAmount(amount float64) string {
	sats, err := btcutil.NewAmount(amount)
	if err != nil {
		return fmt.Sprintf("%.8f QBTC", amount)
	}
	return fmt.Sprintf("%.8f QBTC (%d sat)", amount, int64(sats))
}
