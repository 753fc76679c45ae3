package blockchain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const givablesABI = `[
	{"type":"constructor","inputs":[{"name":"uri","type":"string"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"adminIssueToken","inputs":[{"name":"to","type":"address"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"tokenURI","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"function","name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}
]`

// answerCode deploys a runtime that returns the word 42 for every call.
// Init: CODECOPY the 10 byte runtime to memory and RETURN it.
const answerCode = "0x600a600c600039600a6000f3" + "602a60005260206000f3"

// revertCode deploys a runtime that reverts every call
const revertCode = "0x6005600c6000396005" + "6000f3" + "60006000fd"

const simulatedChainID = 1337

type stubArtifacts struct {
	artifact *domain.ContractArtifact
	err      error
}

func (s stubArtifacts) FindArtifact(ctx context.Context, name string) (*domain.ContractArtifact, error) {
	return s.artifact, s.err
}

type simEnv struct {
	sim      *simulated.Backend
	provider *EthProvider
	cfg      *config.RuntimeConfig
	factory  *domain.ContractFactory
}

func newSimEnv(t *testing.T, bytecode string, mutate func(cfg *config.RuntimeConfig)) *simEnv {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	deployer := crypto.PubkeyToAddress(key.PublicKey)

	sim := simulated.NewBackend(types.GenesisAlloc{
		deployer: {Balance: new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))},
	})
	t.Cleanup(func() { _ = sim.Close() })

	parsed, err := abi.JSON(strings.NewReader(givablesABI))
	require.NoError(t, err)

	artifact := &domain.ContractArtifact{
		Name:     "Givables",
		Path:     "artifacts/Givables.sol/Givables.json",
		ABI:      parsed,
		Bytecode: common.FromHex(bytecode),
	}

	cfg := &config.RuntimeConfig{
		Network:             &config.Network{Name: "localhost", RPCURL: "simulated"},
		PrivateKey:          hexutil.Encode(crypto.FromECDSA(key)),
		ConfirmationTimeout: 5 * time.Second,
	}
	if mutate != nil {
		mutate(cfg)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := NewEthProvider(cfg, stubArtifacts{artifact: artifact}, log).
		WithDialer(func(ctx context.Context, rpcURL string) (Backend, error) {
			return sim.Client(), nil
		})

	factory, err := provider.GetFactory(context.Background(), "Givables")
	require.NoError(t, err)

	return &simEnv{sim: sim, provider: provider, cfg: cfg, factory: factory}
}

// deploy submits and mines the contract
func (e *simEnv) deploy(t *testing.T) *domain.ContractHandle {
	t.Helper()
	ctx := context.Background()

	pending, err := e.provider.Deploy(ctx, e.factory, []string{"ipfs://givables"})
	require.NoError(t, err)
	require.NotNil(t, pending.ContractAddress)
	e.sim.Commit()

	receipt, err := e.provider.WaitForConfirmation(ctx, pending)
	require.NoError(t, err)
	assert.Equal(t, domain.ReceiptStatusSuccess, receipt.Status)
	assert.Equal(t, *pending.ContractAddress, receipt.ContractAddress)
	assert.Equal(t, pending.Hash, receipt.TxHash)
	assert.NotZero(t, receipt.BlockNumber)

	return &domain.ContractHandle{Name: e.factory.Name, Address: receipt.ContractAddress, ABI: e.factory.ABI}
}

func TestEthProvider_DeployCallAndRead(t *testing.T) {
	env := newSimEnv(t, answerCode, nil)
	ctx := context.Background()

	chainID, err := env.provider.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(simulatedChainID), chainID)

	handle := env.deploy(t)

	mint, err := env.provider.Call(ctx, handle, domain.CallStep{
		Method: "adminIssueToken",
		Args:   []string{"0x5bfad8b41f8172375db73344b53318fa290b1030"},
	})
	require.NoError(t, err)
	require.True(t, mint.IsTransaction())
	env.sim.Commit()

	receipt, err := env.provider.WaitForConfirmation(ctx, mint.Tx)
	require.NoError(t, err)
	assert.Equal(t, domain.ReceiptStatusSuccess, receipt.Status)
	assert.Equal(t, common.Address{}, receipt.ContractAddress)

	read, err := env.provider.Call(ctx, handle, domain.CallStep{Method: "totalSupply"})
	require.NoError(t, err)
	assert.False(t, read.IsTransaction())
	assert.Equal(t, "42", read.Value)
}

func TestEthProvider_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("chain id mismatch", func(t *testing.T) {
		env := newSimEnv(t, answerCode, nil)
		env.provider.backend = nil
		env.cfg.Network.ChainID = 5

		_, err := env.provider.ChainID(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
		assert.Contains(t, err.Error(), "chain ID mismatch: expected 5, got 1337")
	})

	t.Run("missing signer", func(t *testing.T) {
		env := newSimEnv(t, answerCode, func(cfg *config.RuntimeConfig) { cfg.PrivateKey = "" })

		_, err := env.provider.Deploy(ctx, env.factory, []string{"ipfs://givables"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
		assert.Contains(t, err.Error(), "PRIVATE_KEY")
	})

	t.Run("bad constructor arguments", func(t *testing.T) {
		env := newSimEnv(t, answerCode, nil)

		_, err := env.provider.Deploy(ctx, env.factory, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDeployment))
	})

	t.Run("unknown method", func(t *testing.T) {
		env := newSimEnv(t, answerCode, nil)
		handle := env.deploy(t)

		_, err := env.provider.Call(ctx, handle, domain.CallStep{Method: "burn"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCall))
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("reverting method", func(t *testing.T) {
		env := newSimEnv(t, revertCode, nil)
		handle := env.deploy(t)

		_, err := env.provider.Call(ctx, handle, domain.CallStep{
			Method: "adminIssueToken",
			Args:   []string{"0x5bfad8b41f8172375db73344b53318fa290b1030"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCall))
	})

	t.Run("confirmation timeout", func(t *testing.T) {
		env := newSimEnv(t, answerCode, func(cfg *config.RuntimeConfig) {
			cfg.ConfirmationTimeout = 50 * time.Millisecond
		})

		pending, err := env.provider.Deploy(ctx, env.factory, []string{"ipfs://givables"})
		require.NoError(t, err)

		// never committed, so never mined
		_, err = env.provider.WaitForConfirmation(ctx, pending)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConfirmationTimeout))
	})

	t.Run("missing artifact", func(t *testing.T) {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		provider := NewEthProvider(&config.RuntimeConfig{}, stubArtifacts{err: domain.ErrContractNotFound}, log)

		_, err := provider.GetFactory(ctx, "Givables")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProvider))
		assert.True(t, errors.Is(err, domain.ErrContractNotFound))
	})
}
