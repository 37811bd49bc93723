package database

import (
	"math/big"
	"time"

	"golang.org/x/xerrors"
	"gorm.io/gorm/clause"
)

// Auction is one observed auction slot in a flipper, flapper or flopper.
type Auction struct {
	House string // flip, flap or flop
	Ilk   string // empty for flap/flop
	ID    uint64

	Bid *big.Int
	Lot *big.Int
	Tab *big.Int
	Guy string

	Tic time.Time
	End time.Time

	Live bool
}

// AuctionStore is the persisted form; big numbers are stored as base-10
// strings.
type AuctionStore struct {
	House string `gorm:"primaryKey"`
	Ilk   string `gorm:"primaryKey"`
	ID    uint64 `gorm:"primaryKey;autoIncrement:false"`

	Bid string
	Lot string
	Tab string
	Guy string

	Tic time.Time `gorm:"column:tic"`
	End time.Time `gorm:"column:end"`

	Live bool
}

func InitAuction() error {
	return GlobalDataBase.AutoMigrate(&AuctionStore{})
}

// SaveAuction inserts or replaces the row for (house, ilk, id).
func (a *Auction) SaveAuction() error {
	store := AuctionToAuctionStore(*a)
	return GlobalDataBase.Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(&store).Error
}

// CloseAuction marks an auction dealt or yanked.
func CloseAuction(house, ilk string, id uint64) error {
	return GlobalDataBase.Model(&AuctionStore{}).
		Where("house = ? AND ilk = ? AND id = ?", house, ilk, id).
		Update("live", false).Error
}

func GetAuction(house, ilk string, id uint64) (Auction, error) {
	var store AuctionStore
	err := GlobalDataBase.Model(&AuctionStore{}).
		Where("house = ? AND ilk = ? AND id = ?", house, ilk, id).
		First(&store).Error
	if err != nil {
		return Auction{}, err
	}
	return AuctionStoreToAuction(store)
}

// ListLiveAuctions returns the live rows for one house kind, or all houses
// for an empty kind.
func ListLiveAuctions(house string) ([]Auction, error) {
	query := GlobalDataBase.Model(&AuctionStore{}).Where("live = ?", true)
	if house != "" {
		query = query.Where("house = ?", house)
	}

	var stores []AuctionStore
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}

	auctions := make([]Auction, 0, len(stores))
	for _, store := range stores {
		auction, err := AuctionStoreToAuction(store)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

func AuctionToAuctionStore(a Auction) AuctionStore {
	return AuctionStore{
		House: a.House,
		Ilk:   a.Ilk,
		ID:    a.ID,

		Bid: bigString(a.Bid),
		Lot: bigString(a.Lot),
		Tab: bigString(a.Tab),
		Guy: a.Guy,

		Tic: a.Tic,
		End: a.End,

		Live: a.Live,
	}
}

func AuctionStoreToAuction(store AuctionStore) (Auction, error) {
	bid, ok := new(big.Int).SetString(store.Bid, 10)
	if !ok {
		return Auction{}, xerrors.Errorf("Failed to convert %s to BigInt", store.Bid)
	}
	lot, ok := new(big.Int).SetString(store.Lot, 10)
	if !ok {
		return Auction{}, xerrors.Errorf("Failed to convert %s to BigInt", store.Lot)
	}
	tab, ok := new(big.Int).SetString(store.Tab, 10)
	if !ok {
		return Auction{}, xerrors.Errorf("Failed to convert %s to BigInt", store.Tab)
	}

	return Auction{
		House: store.House,
		Ilk:   store.Ilk,
		ID:    store.ID,

		Bid: bid,
		Lot: lot,
		Tab: tab,
		Guy: store.Guy,

		Tic: store.Tic,
		End: store.End,

		Live: store.Live,
	}, nil
}

func bigString(i *big.Int) string {
	if i == nil {
		return "0"
	}
	return i.String()
}
