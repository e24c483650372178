package config

import (
	"fmt"
	"os"

	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet         bool `long:"testnet" description:"Use the test network"`
	ActiveNetParams *chaincfg.Params
}

// ResolveNetwork parses the network command line argument and sets
// ActiveNetParams accordingly. The main network is selected unless
// --testnet is given.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	networkName := chaincfg.MainnetParams.Name
	if networkFlags.Testnet {
		networkName = chaincfg.TestnetParams.Name
	}

	params, err := chaincfg.ParamsForNetwork(networkName)
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve network %s", networkName)
		fmt.Fprintln(os.Stderr, err)
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	networkFlags.ActiveNetParams = params
	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	return networkFlags.ActiveNetParams
}
