package model

// Network names the chain a response was fetched from.
type Network string

var (
	Standard Network = "standard"
	Testnet  Network = "testnet"
	Devnet   Network = "devnet"
)
