package adapters

import (
	"github.com/google/wire"
	"github.com/givables-xyz/givables-deploy/internal/adapters/artifacts"
	"github.com/givables-xyz/givables-deploy/internal/adapters/blockchain"
	internalconfig "github.com/givables-xyz/givables-deploy/internal/adapters/config"
	"github.com/givables-xyz/givables-deploy/internal/adapters/fs"
	"github.com/givables-xyz/givables-deploy/internal/adapters/interactive"
	"github.com/givables-xyz/givables-deploy/internal/adapters/progress"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
)

// ArtifactSet provides compiled contract lookup
var ArtifactSet = wire.NewSet(
	artifacts.NewLoader,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Loader)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewRunStoreAdapter,
	wire.Bind(new(usecase.RunStore), new(*fs.RunStoreAdapter)),
)

// BlockchainSet provides the go-ethereum contract provider
var BlockchainSet = wire.NewSet(
	blockchain.NewEthProvider,
	wire.Bind(new(usecase.ContractProvider), new(*blockchain.EthProvider)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.BroadcastConfirmer), new(*interactive.ConfirmerAdapter)),

	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.PlanSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),

	internalconfig.NewPlanLoaderAdapter,
	wire.Bind(new(usecase.PlanLoader), new(*internalconfig.PlanLoaderAdapter)),
)

// ProgressSet provides the progress sink for the configured output
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ArtifactSet,
	FSSet,
	BlockchainSet,
	InteractiveSet,
	ConfigSet,
	ProgressSet,
)
