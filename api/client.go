package api

// API Client-
//
// Files:
//   config.go    - Connection defaults and RPC method names
//   types.go     - Struct definitions (request, unspent output, key pair, etc.)
//   base.go      - Core client functionality (Client, NewClient, Call transport)
//   response.go  - Response envelope validation
//   value.go     - Typed access to untyped JSON values
//   errors.go    - Error kinds returned by the client
//   qbitcoin.go  - Node operations (ping, confirmations, addresses, balance, send)
//
// Usage:
//   client := api.NewClient(api.NewConn("http://172.17.0.1:9556/"))
//   err := client.Ping(ctx)                                // from qbitcoin.go
//   balance, err := client.GetBalance(ctx, address, 1)     // from qbitcoin.go
//   txID, err := client.SendBalance(ctx, api.SendRequest{...})
