// Package deployment wires typed contract handles to a deployed MCD
// instance, starting from a JSON address book or from the network a node
// reports.
package deployment

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/makerdao/go-dss/addrbook"
	dsscommon "github.com/makerdao/go-dss/common"
	"github.com/makerdao/go-dss/dss"
)

// Collateral groups the per-ilk quadruple: gem token, vat adapter, price
// feed and collateral auction house.
type Collateral struct {
	Ilk     string // on-chain form, ETH-A
	Symbol  string // gem symbol, ETH
	Gem     dss.Gem
	Adapter *dss.GemJoin
	Pip     dss.Pip
	Flipper *dss.Flipper
}

// Symbols whose adapter is the decimal-scaling GemJoin5 variant.
var gemJoin5Symbols = map[string]bool{
	"USDC":   true,
	"WBTC":   true,
	"TUSD":   true,
	"USDT":   true,
	"GUSD":   true,
	"RENBTC": true,
}

// Deployment exposes one handle per MCD contract plus the collateral set.
type Deployment struct {
	Network string

	Pause           *dss.DSPause
	Vat             *dss.Vat
	Vow             *dss.Vow
	Jug             *dss.Jug
	Cat             *dss.Cat
	Flapper         *dss.Flapper
	Flopper         *dss.Flopper
	Pot             *dss.Pot
	Dai             *dss.DSToken
	DaiJoin         *dss.DaiJoin
	Mkr             *dss.DSToken
	Spotter         *dss.Spotter
	Chief           *dss.DSChief
	Esm             *dss.ShutdownModule
	End             *dss.End
	ProxyRegistry   *dss.ProxyRegistry
	ProxyActionsDsr *dss.DssProxyActionsDsr
	CdpManager      *dss.CdpManager
	DsrManager      *dss.DsrManager

	// Collaterals is keyed by on-chain ilk name (ETH-A).
	Collaterals map[string]*Collateral

	backend bind.ContractBackend
}

// New builds every handle from the address book. The backend is not
// touched; a malformed or incomplete book fails here, a dead node fails on
// the first call.
func New(backend bind.ContractBackend, network string, book addrbook.AddressBook) (*Deployment, error) {
	get := func(name string) (common.Address, error) {
		return book.Get(name)
	}

	d := &Deployment{
		Network:     network,
		Collaterals: make(map[string]*Collateral),
		backend:     backend,
	}

	bindings := []struct {
		key  string
		bind func(common.Address)
	}{
		{"MCD_PAUSE", func(a common.Address) { d.Pause = dss.NewDSPause(backend, a) }},
		{"MCD_VAT", func(a common.Address) { d.Vat = dss.NewVat(backend, a) }},
		{"MCD_VOW", func(a common.Address) { d.Vow = dss.NewVow(backend, a) }},
		{"MCD_JUG", func(a common.Address) { d.Jug = dss.NewJug(backend, a) }},
		{"MCD_CAT", func(a common.Address) { d.Cat = dss.NewCat(backend, a) }},
		{"MCD_FLAP", func(a common.Address) { d.Flapper = dss.NewFlapper(backend, a) }},
		{"MCD_FLOP", func(a common.Address) { d.Flopper = dss.NewFlopper(backend, a) }},
		{"MCD_POT", func(a common.Address) { d.Pot = dss.NewPot(backend, a) }},
		{"MCD_DAI", func(a common.Address) { d.Dai = dss.NewDSToken(backend, a) }},
		{"MCD_JOIN_DAI", func(a common.Address) { d.DaiJoin = dss.NewDaiJoin(backend, a) }},
		{"MCD_GOV", func(a common.Address) { d.Mkr = dss.NewDSToken(backend, a) }},
		{"MCD_SPOT", func(a common.Address) { d.Spotter = dss.NewSpotter(backend, a) }},
		{"MCD_ADM", func(a common.Address) { d.Chief = dss.NewDSChief(backend, a) }},
		{"MCD_ESM", func(a common.Address) { d.Esm = dss.NewShutdownModule(backend, a) }},
		{"MCD_END", func(a common.Address) { d.End = dss.NewEnd(backend, a) }},
		{"PROXY_REGISTRY", func(a common.Address) { d.ProxyRegistry = dss.NewProxyRegistry(backend, a) }},
		{"PROXY_ACTIONS_DSR", func(a common.Address) { d.ProxyActionsDsr = dss.NewDssProxyActionsDsr(a) }},
		{"CDP_MANAGER", func(a common.Address) { d.CdpManager = dss.NewCdpManager(backend, a) }},
		{"DSR_MANAGER", func(a common.Address) { d.DsrManager = dss.NewDsrManager(backend, a) }},
	}
	for _, b := range bindings {
		addr, gerr := get(b.key)
		if gerr != nil {
			return nil, gerr
		}
		b.bind(addr)
	}

	for _, key := range book.InferCollaterals() {
		col, err := newCollateral(backend, network, book, key)
		if err != nil {
			return nil, err
		}
		d.Collaterals[key.IlkName()] = col
	}

	return d, nil
}

func newCollateral(backend bind.ContractBackend, network string, book addrbook.AddressBook, key addrbook.CollateralKey) (*Collateral, error) {
	gemAddr, err := book.Get(key.Symbol)
	if err != nil {
		return nil, err
	}
	joinAddr, err := book.Get("MCD_JOIN_" + key.Ilk)
	if err != nil {
		return nil, err
	}
	flipAddr, err := book.Get("MCD_FLIP_" + key.Ilk)
	if err != nil {
		return nil, err
	}
	pipAddr, err := book.Get("PIP_" + key.Symbol)
	if err != nil {
		return nil, err
	}

	var gem dss.Gem
	if key.Symbol == "ETH" {
		gem = dss.NewDSEthToken(backend, gemAddr)
	} else {
		gem = dss.NewDSToken(backend, gemAddr)
	}

	var adapter *dss.GemJoin
	if gemJoin5Symbols[key.Symbol] {
		adapter = dss.NewGemJoin5(backend, joinAddr)
	} else {
		adapter = dss.NewGemJoin(backend, joinAddr)
	}

	// The PIP may be a DSValue, an OSM or a bogus address; testnets get
	// the plain value store.
	var pip dss.Pip
	switch {
	case network == "testnet":
		pip = dss.NewDSValue(backend, pipAddr)
	case strings.HasPrefix(key.Symbol, "UNIV2"):
		pip = dss.NewUniv2LpOSM(backend, pipAddr)
	default:
		pip = dss.NewOSM(backend, pipAddr)
	}

	return &Collateral{
		Ilk:     key.IlkName(),
		Symbol:  key.Symbol,
		Gem:     gem,
		Adapter: adapter,
		Pip:     pip,
		Flipper: dss.NewFlipper(backend, flipAddr),
	}, nil
}

// FromJSON builds a deployment from raw address-book JSON, resolving the
// network from the connected node.
func FromJSON(ctx context.Context, client *ethclient.Client, raw []byte) (*Deployment, error) {
	book, err := addrbook.FromJSON(raw)
	if err != nil {
		return nil, err
	}
	chainID, err := client.NetworkID(ctx)
	if err != nil {
		return nil, xerrors.Errorf("query network id: %w", err)
	}
	return New(client, addrbook.NetworkName(chainID.String()), book)
}

// FromNetwork builds a deployment from the embedded address book for a
// named network.
func FromNetwork(client *ethclient.Client, network string) (*Deployment, error) {
	book, err := dsscommon.Book(network)
	if err != nil {
		return nil, err
	}
	return New(client, network, book)
}

// FromNode resolves the node's network id and loads the matching embedded
// address book.
func FromNode(ctx context.Context, client *ethclient.Client) (*Deployment, error) {
	chainID, err := client.NetworkID(ctx)
	if err != nil {
		return nil, xerrors.Errorf("query network id: %w", err)
	}
	return FromNetwork(client, addrbook.NetworkName(chainID.String()))
}

// Book reconstructs the address table, collateral groupings included.
func (d *Deployment) Book() addrbook.AddressBook {
	book := addrbook.AddressBook{
		"MCD_PAUSE":         d.Pause.Address(),
		"MCD_VAT":           d.Vat.Address(),
		"MCD_VOW":           d.Vow.Address(),
		"MCD_JUG":           d.Jug.Address(),
		"MCD_CAT":           d.Cat.Address(),
		"MCD_FLAP":          d.Flapper.Address(),
		"MCD_FLOP":          d.Flopper.Address(),
		"MCD_POT":           d.Pot.Address(),
		"MCD_DAI":           d.Dai.Address(),
		"MCD_JOIN_DAI":      d.DaiJoin.Address(),
		"MCD_GOV":           d.Mkr.Address(),
		"MCD_SPOT":          d.Spotter.Address(),
		"MCD_ADM":           d.Chief.Address(),
		"MCD_ESM":           d.Esm.Address(),
		"MCD_END":           d.End.Address(),
		"PROXY_REGISTRY":    d.ProxyRegistry.Address(),
		"PROXY_ACTIONS_DSR": d.ProxyActionsDsr.Address(),
		"CDP_MANAGER":       d.CdpManager.Address(),
		"DSR_MANAGER":       d.DsrManager.Address(),
	}

	for _, col := range d.Collaterals {
		ilkKey := strings.ReplaceAll(col.Ilk, "-", "_")
		book.Set(col.Symbol, col.Gem.Address())
		if col.Pip != nil {
			book.Set("PIP_"+col.Symbol, col.Pip.Address())
		}
		book.Set("MCD_JOIN_"+ilkKey, col.Adapter.Address())
		book.Set("MCD_FLIP_"+ilkKey, col.Flipper.Address())
	}
	return book
}

// ToJSON serializes the address book.
func (d *Deployment) ToJSON() ([]byte, error) {
	return d.Book().ToJSON()
}

// ApproveDai lets the sender draw dai from and repay dai to their vaults:
// vat.hope(daiJoin) plus an ERC20 approval on the dai token.
func (d *Deployment) ApproveDai(opts *bind.TransactOpts) error {
	if _, err := d.Vat.Hope(opts, d.DaiJoin.Address()); err != nil {
		return xerrors.Errorf("hope dai adapter: %w", err)
	}
	if _, err := d.Dai.Approve(opts, d.DaiJoin.Address(), maxUint256()); err != nil {
		return xerrors.Errorf("approve dai adapter: %w", err)
	}
	return nil
}

func maxUint256() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 256)
	return max.Sub(max, big.NewInt(1))
}

// ActiveAuctions aggregates live auctions across every house.
type ActiveAuctions struct {
	Flips map[string][]dss.Bid
	Flaps []dss.Bid
	Flops []dss.Bid
}

// ActiveAuctions queries each flipper plus the flapper and flopper for
// their live auction slots.
func (d *Deployment) ActiveAuctions(ctx context.Context) (ActiveAuctions, error) {
	out := ActiveAuctions{Flips: make(map[string][]dss.Bid)}

	for ilk, col := range d.Collaterals {
		bids, err := col.Flipper.ActiveAuctions(ctx)
		if err != nil {
			return ActiveAuctions{}, xerrors.Errorf("flip auctions for %s: %w", ilk, err)
		}
		out.Flips[ilk] = bids
	}

	var err error
	if out.Flaps, err = d.Flapper.ActiveAuctions(ctx); err != nil {
		return ActiveAuctions{}, xerrors.Errorf("flap auctions: %w", err)
	}
	if out.Flops, err = d.Flopper.ActiveAuctions(ctx); err != nil {
		return ActiveAuctions{}, xerrors.Errorf("flop auctions: %w", err)
	}
	return out, nil
}

// AuctionAddresses lists every auction-house address: the flapper, the
// flopper and one flipper per collateral.
func (d *Deployment) AuctionAddresses() []common.Address {
	addrs := []common.Address{d.Flapper.Address(), d.Flopper.Address()}
	for _, col := range d.Collaterals {
		addrs = append(addrs, col.Flipper.Address())
	}
	return addrs
}
