package api

import "time"

// Conn describes how to reach a node. It is an immutable value and can be
// shared between goroutines.
type Conn struct {
	URL          string
	Timeout      time.Duration
	MaxReadBytes int64
}

// NewConn returns a Conn for url with the default timeout and read limit
func NewConn(url string) Conn {
	return Conn{
		URL:          url,
		Timeout:      DefaultTimeout,
		MaxReadBytes: DefaultMaxReadBytes,
	}
}

func (c Conn) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c Conn) maxReadBytes() int64 {
	if c.MaxReadBytes <= 0 {
		return DefaultMaxReadBytes
	}
	return c.MaxReadBytes
}

// Request is a JSON-RPC 2.0 request body
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// UnspentOutput is one entry of a listunspent result
type UnspentOutput struct {
	Address string  `json:"address"`
	TxID    string  `json:"txid"`
	Vout    int64   `json:"vout"`
	Amount  float64 `json:"amount"`
}

// AddressKeyPair is an address together with its private key.
// Storing the key safely is up to the caller.
type AddressKeyPair struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
}

// Payment is a destination output of SendBalance
type Payment struct {
	Address string  `json:"address"`
	Amount  float64 `json:"amount"`
}

// SendRequest holds the arguments of SendBalance.
//
// From is ordered: its first address is the default change address and the
// signing keys are passed to the node in the same order.
type SendRequest struct {
	From          []AddressKeyPair
	To            []Payment
	ChangeAddress string // defaults to From[0].Address
	Fee           float64
	Conf          int64
}
