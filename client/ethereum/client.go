package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"morpho/core"
)

// Config chain client config, assembled from core.Config at startup
type Config struct {
	Endpoint      string
	ChainID       int64
	PrivateKey    string
	Backend       core.Backend
	BlocksPerYear uint64

	Router        common.Address
	Lens          common.Address
	Oracle        common.Address
	WrappedNative common.Address
}

// Client JSON-RPC connection plus the signer identity. All protocol
// collaborators (lens, router, oracle, tokens) share one client.
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int
	key     *ecdsa.PrivateKey
	account common.Address
	cfg     Config
}

// Dial connect to the chain. A missing private key leaves the client
// read-only; mutators will refuse to run.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Endpoint, err)
	}

	c := &Client{
		eth:     eth,
		chainID: big.NewInt(cfg.ChainID),
		cfg:     cfg,
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		c.key = key
		c.account = crypto.PubkeyToAddress(key.PublicKey)
	}

	return c, nil
}

// Account the signer address; zero when read-only
func (c *Client) Account() common.Address {
	return c.account
}

// Close release the underlying connection
func (c *Client) Close() {
	c.eth.Close()
}

func (c *Client) call(ctx context.Context, to common.Address, a abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	input, err := a.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	output, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: call %s: %s", core.ErrExternalCallFailure, method, err)
	}

	values, err := a.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return values, nil
}

func (c *Client) transact(ctx context.Context, to common.Address, a abi.ABI, method string, value *big.Int, args ...interface{}) error {
	if c.key == nil {
		return errors.New("ethereum: no signer key configured")
	}

	input, err := a.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("pack %s: %w", method, err)
	}

	if value == nil {
		value = new(big.Int)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.account)
	if err != nil {
		return fmt.Errorf("%w: nonce: %s", core.ErrExternalCallFailure, err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("%w: gas price: %s", core.ErrExternalCallFailure, err)
	}

	gas, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.account,
		To:    &to,
		Value: value,
		Data:  input,
	})
	if err != nil {
		// estimation runs the call; a revert here carries the protocol
		// error and nothing has been spent yet
		return fmt.Errorf("%w: %s reverted: %s", core.ErrExternalCallFailure, method, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas + gas/5,
		To:       &to,
		Value:    value,
		Data:     input,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return fmt.Errorf("sign %s: %w", method, err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("%w: send %s: %s", core.ErrExternalCallFailure, method, err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, signed)
	if err != nil {
		return fmt.Errorf("%w: wait %s: %s", core.ErrExternalCallFailure, method, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s tx %s reverted", core.ErrExternalCallFailure, method, signed.Hash())
	}

	return nil
}
