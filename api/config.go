package api

import "time"

// connection defaults
const (
	DefaultTimeout      = 1000 * time.Second
	DefaultMaxReadBytes = 256 * 1024 * 1024
)

// JSON-RPC envelope constants
const (
	jsonRPCVersion = "2.0"
	requestID      = 1
)

// RPC methods consumed from the node. Names and argument order are fixed by the node.
const (
	MethodPing                      = "ping"
	MethodGetRawTransaction         = "getrawtransaction"
	MethodGetNewAddress             = "getnewaddress"
	MethodListUnspent               = "listunspent"
	MethodCreateRawTransaction      = "createrawtransaction"
	MethodSignRawTransactionWithKey = "signrawtransactionwithkey"
	MethodSendRawTransaction        = "sendrawtransaction"
)
