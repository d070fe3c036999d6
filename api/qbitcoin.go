package api

import (
	"context"
	"fmt"
	"math"

	"github.com/chinmay1088/qbtc/chains/qbitcoin"
)

// Ping checks that the node is reachable and answering
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Call(ctx, MethodPing)
	return err
}

// GetTrxConf returns the number of confirmations of a transaction
func (c *Client) GetTrxConf(ctx context.Context, trxID string) (int64, error) {
	res, err := c.Call(ctx, MethodGetRawTransaction, trxID)
	if err != nil {
		return 0, err
	}

	conf, err := res.IntField("confirmations")
	if err != nil {
		return 0, err
	}

	return conf, nil
}

// NewAddressPair asks the node for a new address and its private key
func (c *Client) NewAddressPair(ctx context.Context) (AddressKeyPair, error) {
	res, err := c.Call(ctx, MethodGetNewAddress)
	if err != nil {
		return AddressKeyPair{}, err
	}

	address, err := res.StringField("address")
	if err != nil {
		return AddressKeyPair{}, err
	}
	key, err := res.StringField("private_key")
	if err != nil {
		return AddressKeyPair{}, err
	}

	return AddressKeyPair{Address: address, PrivateKey: key}, nil
}

// GetBalance sums the unspent outputs of address with at least conf confirmations
func (c *Client) GetBalance(ctx context.Context, address string, conf int64) (float64, error) {
	items, err := c.listUnspent(ctx, address, conf)
	if err != nil {
		return 0, err
	}

	balance := 0.0
	for _, item := range items {
		if err := checkUnspentAddress(item, address); err != nil {
			return 0, err
		}

		amount, err := item.FloatField("amount")
		if err != nil {
			return 0, err
		}
		balance += amount
	}

	return balance, nil
}

// ListUnspent returns the unspent outputs of address with at least conf confirmations
func (c *Client) ListUnspent(ctx context.Context, address string, conf int64) ([]UnspentOutput, error) {
	items, err := c.listUnspent(ctx, address, conf)
	if err != nil {
		return nil, err
	}

	utxos := make([]UnspentOutput, 0, len(items))
	for _, item := range items {
		utxo, err := parseUnspentOutput(item, address)
		if err != nil {
			return nil, err
		}
		utxos = append(utxos, utxo)
	}

	return utxos, nil
}

// SendBalance spends every unspent output of the source addresses, pays the
// destinations and sends the rest minus fee to the change address. It returns
// the id of the broadcast transaction.
//
// The steps are listunspent for each source address, createrawtransaction,
// signrawtransactionwithkey and sendrawtransaction. A failure aborts the
// sequence; a transaction created or signed before the failure is left to the
// caller.
//
// The change amount is not checked: when the destinations and fee exceed the
// balance a negative change is sent to the node as is.
func (c *Client) SendBalance(ctx context.Context, req SendRequest) (string, error) {
	if len(req.From) == 0 {
		return "", ErrNoSourceAddresses
	}

	changeAddress := req.ChangeAddress
	if changeAddress == "" {
		changeAddress = req.From[0].Address
	}

	tx := qbitcoin.NewTransaction()
	seen := make(map[string]bool, len(req.From))

	for _, from := range req.From {
		if seen[from.Address] {
			return "", fmt.Errorf("duplicate source address %q", from.Address)
		}
		seen[from.Address] = true

		utxos, err := c.ListUnspent(ctx, from.Address, req.Conf)
		if err != nil {
			return "", fmt.Errorf("failed to list unspent outputs of %s: %w", from.Address, err)
		}

		for _, utxo := range utxos {
			tx.AddInput(utxo.TxID, uint32(utxo.Vout), utxo.Amount)
		}
		tx.AddKey(from.PrivateKey)
	}

	for _, to := range req.To {
		tx.AddOutput(to.Address, to.Amount)
	}
	change := tx.AddChangeOutput(changeAddress, req.Fee)

	c.logger.Debug().
		Int("inputs", len(tx.Inputs)).
		Int("outputs", len(tx.Outputs)).
		Float64("balance", tx.Balance()).
		Float64("change", change).
		Msg("creating raw transaction")

	res, err := c.Call(ctx, MethodCreateRawTransaction, tx.Inputs, tx.Outputs)
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}
	rawTx, err := res.AsString()
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	res, err = c.Call(ctx, MethodSignRawTransactionWithKey, rawTx, tx.Keys)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}
	signedTx, err := res.StringField("hex")
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	res, err = c.Call(ctx, MethodSendRawTransaction, signedTx)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	trxID, err := res.AsString()
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return trxID, nil
}

func (c *Client) listUnspent(ctx context.Context, address string, conf int64) ([]Value, error) {
	res, err := c.Call(ctx, MethodListUnspent, address, conf)
	if err != nil {
		return nil, err
	}
	return res.AsList()
}

func checkUnspentAddress(item Value, address string) error {
	itemAddress, err := item.StringField("address")
	if err != nil {
		return err
	}
	if itemAddress != address {
		return &ConsistencyError{Want: address, Got: itemAddress}
	}
	return nil
}

func parseUnspentOutput(item Value, address string) (UnspentOutput, error) {
	if err := checkUnspentAddress(item, address); err != nil {
		return UnspentOutput{}, err
	}

	amount, err := item.FloatField("amount")
	if err != nil {
		return UnspentOutput{}, err
	}
	txid, err := item.StringField("txid")
	if err != nil {
		return UnspentOutput{}, err
	}
	vout, err := item.IntField("vout")
	if err != nil {
		return UnspentOutput{}, err
	}
	if vout < 0 || vout > math.MaxUint32 {
		return UnspentOutput{}, &TypeError{Path: item.Path() + ".vout", Want: "output index", Got: fmt.Sprintf("%d", vout)}
	}

	return UnspentOutput{
		Address: address,
		TxID:    txid,
		Vout:    vout,
		Amount:  amount,
	}, nil
}
