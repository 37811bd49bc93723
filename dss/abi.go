package dss

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Hand-trimmed ABI fragments covering the methods and events this layer
// binds. Full artifacts live with the contract deployments, not here.

const VatABI = `[
{"constant":true,"inputs":[{"name":"","type":"bytes32"}],"name":"ilks","outputs":[{"name":"Art","type":"uint256"},{"name":"rate","type":"uint256"},{"name":"spot","type":"uint256"},{"name":"line","type":"uint256"},{"name":"dust","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes32"},{"name":"","type":"address"}],"name":"urns","outputs":[{"name":"ink","type":"uint256"},{"name":"art","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"dai","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes32"},{"name":"","type":"address"}],"name":"gem","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"debt","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"Line","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"live","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"usr","type":"address"}],"name":"hope","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"usr","type":"address"}],"name":"nope","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const CatABI = `[
{"constant":true,"inputs":[{"name":"","type":"bytes32"}],"name":"ilks","outputs":[{"name":"flip","type":"address"},{"name":"chop","type":"uint256"},{"name":"lump","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"live","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const VowABI = `[
{"constant":true,"inputs":[],"name":"bump","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"hump","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"sump","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"live","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const JugABI = `[
{"constant":true,"inputs":[{"name":"","type":"bytes32"}],"name":"ilks","outputs":[{"name":"duty","type":"uint256"},{"name":"rho","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"base","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"ilk","type":"bytes32"}],"name":"drip","outputs":[{"name":"rate","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}
]`

const PotABI = `[
{"constant":true,"inputs":[],"name":"chi","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"dsr","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"pie","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[],"name":"drip","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}
]`

const SpotterABI = `[
{"constant":true,"inputs":[{"name":"","type":"bytes32"}],"name":"ilks","outputs":[{"name":"pip","type":"address"},{"name":"mat","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"par","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const FlipperABI = `[
{"constant":true,"inputs":[],"name":"kicks","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"uint256"}],"name":"bids","outputs":[{"name":"bid","type":"uint256"},{"name":"lot","type":"uint256"},{"name":"guy","type":"address"},{"name":"tic","type":"uint48"},{"name":"end","type":"uint48"},{"name":"usr","type":"address"},{"name":"gal","type":"address"},{"name":"tab","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"ilk","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"beg","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"ttl","outputs":[{"name":"","type":"uint48"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"tau","outputs":[{"name":"","type":"uint48"}],"stateMutability":"view","type":"function"},
{"anonymous":false,"inputs":[{"indexed":false,"name":"id","type":"uint256"},{"indexed":false,"name":"lot","type":"uint256"},{"indexed":false,"name":"bid","type":"uint256"},{"indexed":false,"name":"tab","type":"uint256"},{"indexed":true,"name":"usr","type":"address"},{"indexed":true,"name":"gal","type":"address"}],"name":"Kick","type":"event"}
]`

const FlapperABI = `[
{"constant":true,"inputs":[],"name":"kicks","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"uint256"}],"name":"bids","outputs":[{"name":"bid","type":"uint256"},{"name":"lot","type":"uint256"},{"name":"guy","type":"address"},{"name":"tic","type":"uint48"},{"name":"end","type":"uint48"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"live","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"anonymous":false,"inputs":[{"indexed":false,"name":"id","type":"uint256"},{"indexed":false,"name":"lot","type":"uint256"},{"indexed":false,"name":"bid","type":"uint256"}],"name":"Kick","type":"event"}
]`

const FlopperABI = `[
{"constant":true,"inputs":[],"name":"kicks","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"uint256"}],"name":"bids","outputs":[{"name":"bid","type":"uint256"},{"name":"lot","type":"uint256"},{"name":"guy","type":"address"},{"name":"tic","type":"uint48"},{"name":"end","type":"uint48"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"live","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"anonymous":false,"inputs":[{"indexed":false,"name":"id","type":"uint256"},{"indexed":false,"name":"lot","type":"uint256"},{"indexed":false,"name":"bid","type":"uint256"},{"indexed":true,"name":"gal","type":"address"}],"name":"Kick","type":"event"}
]`

const DSTokenABI = `[
{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"guy","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"src","type":"address"},{"name":"guy","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"guy","type":"address"},{"name":"wad","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"dst","type":"address"},{"name":"wad","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"guy","type":"address"},{"name":"wad","type":"uint256"}],"name":"mint","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const DSEthTokenABI = `[
{"constant":true,"inputs":[{"name":"guy","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[],"name":"deposit","outputs":[],"stateMutability":"payable","type":"function"},
{"constant":false,"inputs":[{"name":"wad","type":"uint256"}],"name":"withdraw","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"guy","type":"address"},{"name":"wad","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}
]`

const GemJoinABI = `[
{"constant":true,"inputs":[],"name":"ilk","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"gem","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"dec","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"usr","type":"address"},{"name":"wad","type":"uint256"}],"name":"join","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"usr","type":"address"},{"name":"wad","type":"uint256"}],"name":"exit","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const DaiJoinABI = `[
{"constant":true,"inputs":[],"name":"dai","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"vat","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"usr","type":"address"},{"name":"wad","type":"uint256"}],"name":"join","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"usr","type":"address"},{"name":"wad","type":"uint256"}],"name":"exit","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const DSValueABI = `[
{"constant":true,"inputs":[],"name":"peek","outputs":[{"name":"","type":"bytes32"},{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"read","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"wut","type":"bytes32"}],"name":"poke","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const OSMABI = `[
{"constant":true,"inputs":[],"name":"peek","outputs":[{"name":"","type":"bytes32"},{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"zzz","outputs":[{"name":"","type":"uint64"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"hop","outputs":[{"name":"","type":"uint16"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[],"name":"poke","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const DSPauseABI = `[
{"constant":true,"inputs":[],"name":"delay","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"proxy","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const DSChiefABI = `[
{"constant":true,"inputs":[],"name":"hat","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"approvals","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const ESMABI = `[
{"constant":true,"inputs":[],"name":"min","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"Sum","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[],"name":"fire","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const EndABI = `[
{"constant":true,"inputs":[],"name":"live","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"when","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes32"}],"name":"tag","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const ProxyRegistryABI = `[
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"proxies","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[],"name":"build","outputs":[{"name":"proxy","type":"address"}],"stateMutability":"nonpayable","type":"function"}
]`

const CdpManagerABI = `[
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"first","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"last","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"count","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"uint256"}],"name":"urns","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"uint256"}],"name":"ilks","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"uint256"}],"name":"owns","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const DsrManagerABI = `[
{"constant":true,"inputs":[{"name":"","type":"address"}],"name":"pieOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"pot","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"dst","type":"address"},{"name":"wad","type":"uint256"}],"name":"join","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"dst","type":"address"},{"name":"wad","type":"uint256"}],"name":"exit","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

func mustABI(src string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	return parsed
}

var (
	vatABI           = mustABI(VatABI)
	catABI           = mustABI(CatABI)
	vowABI           = mustABI(VowABI)
	jugABI           = mustABI(JugABI)
	potABI           = mustABI(PotABI)
	spotterABI       = mustABI(SpotterABI)
	flipperABI       = mustABI(FlipperABI)
	flapperABI       = mustABI(FlapperABI)
	flopperABI       = mustABI(FlopperABI)
	dsTokenABI       = mustABI(DSTokenABI)
	dsEthTokenABI    = mustABI(DSEthTokenABI)
	gemJoinABI       = mustABI(GemJoinABI)
	daiJoinABI       = mustABI(DaiJoinABI)
	dsValueABI       = mustABI(DSValueABI)
	osmABI           = mustABI(OSMABI)
	dsPauseABI       = mustABI(DSPauseABI)
	dsChiefABI       = mustABI(DSChiefABI)
	esmABI           = mustABI(ESMABI)
	endABI           = mustABI(EndABI)
	proxyRegistryABI = mustABI(ProxyRegistryABI)
	cdpManagerABI    = mustABI(CdpManagerABI)
	dsrManagerABI    = mustABI(DsrManagerABI)
)
