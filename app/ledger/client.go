package ledger

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"github.com/openpari/parimarket/models"
)

// contractABI describes the prediction-market contract surface consumed by
// this client. Query endpoints are views; mutations each map to one signed
// transaction.
const contractABI = `[
  {"type":"function","name":"getMarket","stateMutability":"view","inputs":[{"name":"marketId","type":"uint64"}],"outputs":[{"name":"description","type":"string"},{"name":"endTime","type":"uint64"},{"name":"status","type":"uint8"},{"name":"winningOutcome","type":"uint8"},{"name":"totalStaked","type":"uint256"},{"name":"yesPool","type":"uint256"},{"name":"noPool","type":"uint256"},{"name":"participants","type":"uint64"}]},
  {"type":"function","name":"getMarketCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"getOutcomeTotal","stateMutability":"view","inputs":[{"name":"marketId","type":"uint64"},{"name":"outcome","type":"uint8"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getParticipantCount","stateMutability":"view","inputs":[{"name":"marketId","type":"uint64"}],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"getUserBetOutcome","stateMutability":"view","inputs":[{"name":"marketId","type":"uint64"},{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"getUserBetAmount","stateMutability":"view","inputs":[{"name":"marketId","type":"uint64"},{"name":"user","type":"address"},{"name":"outcome","type":"uint8"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"createMarket","stateMutability":"nonpayable","inputs":[{"name":"description","type":"string"},{"name":"endTime","type":"uint64"}],"outputs":[]},
  {"type":"function","name":"placeBet","stateMutability":"payable","inputs":[{"name":"marketId","type":"uint64"},{"name":"outcome","type":"uint8"}],"outputs":[]},
  {"type":"function","name":"resolveMarket","stateMutability":"nonpayable","inputs":[{"name":"marketId","type":"uint64"},{"name":"winningOutcome","type":"uint8"}],"outputs":[]},
  {"type":"function","name":"claimWinnings","stateMutability":"nonpayable","inputs":[{"name":"marketId","type":"uint64"}],"outputs":[]},
  {"type":"function","name":"claimWinningsBatch","stateMutability":"nonpayable","inputs":[{"name":"marketIds","type":"uint64[]"}],"outputs":[]},
  {"type":"function","name":"resetAll","stateMutability":"nonpayable","inputs":[],"outputs":[]}
]`

// EVMClient implements Client against an EVM JSON-RPC endpoint.
type EVMClient struct {
	eth      *ethclient.Client
	abi      abi.ABI
	contract common.Address
	chainID  *big.Int
	gas      GasSchedule

	// nil when no key is configured; queries still work, mutations fail.
	key    *ecdsa.PrivateKey
	sender common.Address
}

// NewEVMClient dials the configured endpoint and prepares the signer.
func NewEVMClient(cfg *Config) (*EVMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	eth, err := ethclient.Dial(cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ledger endpoint: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	c := &EVMClient{
		eth:      eth,
		abi:      parsed,
		contract: common.HexToAddress(cfg.ContractAddress),
		chainID:  big.NewInt(cfg.ChainID),
		gas:      cfg.Gas,
	}

	if cfg.PrivateKey != "" {
		key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid ledger private key: %w", err)
		}
		c.key = key
		c.sender = ethcrypto.PubkeyToAddress(key.PublicKey)
	}

	return c, nil
}

// Close releases the underlying RPC connection.
func (c *EVMClient) Close() {
	c.eth.Close()
}

// Sender returns the address transactions are signed with.
func (c *EVMClient) Sender() string {
	return c.sender.Hex()
}

func (c *EVMClient) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	out, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrLedgerUnavailable, method, err)
	}

	vals, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	return vals, nil
}

func (c *EVMClient) submit(ctx context.Context, method string, gasLimit uint64, value *big.Int, args ...interface{}) (TxHash, error) {
	if c.key == nil {
		return "", models.ErrLedgerNotConfigured
	}

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("failed to pack %s: %w", method, err)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.sender)
	if err != nil {
		return "", fmt.Errorf("%w: nonce: %v", models.ErrLedgerUnavailable, err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: gas price: %v", models.ErrLedgerUnavailable, err)
	}

	if value == nil {
		value = big.NewInt(0)
	}

	tx := types.NewTransaction(nonce, c.contract, value, gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s: %w", method, err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("%w: broadcast %s: %v", models.ErrLedgerUnavailable, method, err)
	}

	return TxHash(signed.Hash().Hex()), nil
}

// GetMarket returns the full snapshot of one market.
func (c *EVMClient) GetMarket(ctx context.Context, marketID uint64) (*models.Market, error) {
	vals, err := c.call(ctx, "getMarket", marketID)
	if err != nil {
		return nil, err
	}
	if len(vals) != 8 {
		return nil, fmt.Errorf("getMarket: unexpected result arity %d", len(vals))
	}

	status, err := models.NormalizeStatus(strconv.Itoa(int(vals[2].(uint8))))
	if err != nil {
		return nil, fmt.Errorf("getMarket %d: %w", marketID, err)
	}

	market := &models.Market{
		ID:             marketID,
		Description:    vals[0].(string),
		EndTime:        int64(vals[1].(uint64)),
		Status:         status,
		WinningOutcome: models.Outcome(vals[3].(uint8)),
		TotalStaked:    decimal.NewFromBigInt(vals[4].(*big.Int), 0),
		YesPool:        decimal.NewFromBigInt(vals[5].(*big.Int), 0),
		NoPool:         decimal.NewFromBigInt(vals[6].(*big.Int), 0),
		Participants:   int64(vals[7].(uint64)),
	}
	return market, nil
}

// GetMarketCount returns the number of markets ever created. Identifiers
// are assigned sequentially from 1, so this is also the highest market id.
func (c *EVMClient) GetMarketCount(ctx context.Context) (uint64, error) {
	vals, err := c.call(ctx, "getMarketCount")
	if err != nil {
		return 0, err
	}
	return vals[0].(uint64), nil
}

// GetOutcomeTotal returns the pool staked on one side of a market.
func (c *EVMClient) GetOutcomeTotal(ctx context.Context, marketID uint64, outcome models.Outcome) (decimal.Decimal, error) {
	vals, err := c.call(ctx, "getOutcomeTotal", marketID, uint8(outcome))
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(vals[0].(*big.Int), 0), nil
}

// GetParticipantCount returns the number of distinct bettors in a market.
func (c *EVMClient) GetParticipantCount(ctx context.Context, marketID uint64) (int64, error) {
	vals, err := c.call(ctx, "getParticipantCount", marketID)
	if err != nil {
		return 0, err
	}
	return int64(vals[0].(uint64)), nil
}

// GetUserBetOutcome returns the side a user backed, or OutcomeNone.
func (c *EVMClient) GetUserBetOutcome(ctx context.Context, marketID uint64, address string) (models.Outcome, error) {
	vals, err := c.call(ctx, "getUserBetOutcome", marketID, common.HexToAddress(address))
	if err != nil {
		return models.OutcomeNone, err
	}
	return models.Outcome(vals[0].(uint8)), nil
}

// GetUserBetAmount returns the user's stake on the given side.
func (c *EVMClient) GetUserBetAmount(ctx context.Context, marketID uint64, address string, outcome models.Outcome) (decimal.Decimal, error) {
	vals, err := c.call(ctx, "getUserBetAmount", marketID, common.HexToAddress(address), uint8(outcome))
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(vals[0].(*big.Int), 0), nil
}

func (c *EVMClient) CreateMarket(ctx context.Context, description string, endTime int64) (TxHash, error) {
	return c.submit(ctx, "createMarket", c.gas.CreateMarket, nil, description, uint64(endTime))
}

func (c *EVMClient) PlaceBet(ctx context.Context, marketID uint64, outcome models.Outcome, amount decimal.Decimal) (TxHash, error) {
	if !outcome.Valid() {
		return "", models.ErrInvalidOutcome
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", models.ErrInvalidAmount
	}
	return c.submit(ctx, "placeBet", c.gas.PlaceBet, amount.BigInt(), marketID, uint8(outcome))
}

func (c *EVMClient) ResolveMarket(ctx context.Context, marketID uint64, winner models.Outcome) (TxHash, error) {
	if !winner.Valid() {
		return "", models.ErrInvalidOutcome
	}
	return c.submit(ctx, "resolveMarket", c.gas.ResolveMarket, nil, marketID, uint8(winner))
}

func (c *EVMClient) ClaimWinnings(ctx context.Context, marketID uint64) (TxHash, error) {
	return c.submit(ctx, "claimWinnings", c.gas.Claim, nil, marketID)
}

// ClaimWinningsBatch submits one transaction claiming every market in ids.
// The gas limit scales linearly with the batch size.
func (c *EVMClient) ClaimWinningsBatch(ctx context.Context, marketIDs []uint64) (TxHash, error) {
	if len(marketIDs) == 0 {
		return "", models.ErrEmptyClaimBatch
	}
	return c.submit(ctx, "claimWinningsBatch", c.gas.BatchClaim(len(marketIDs)), nil, marketIDs)
}

func (c *EVMClient) ResetAll(ctx context.Context) (TxHash, error) {
	return c.submit(ctx, "resetAll", c.gas.ResetAll, nil)
}
