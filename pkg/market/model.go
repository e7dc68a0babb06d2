package market

// Listing is the sale-offer state attached to an NFT. Absent rows read as
// the zero value: unlisted, unpriced.
type Listing struct {
	NFTID    int64 `json:"nft_id"`
	Price    int64 `json:"price"`
	IsListed bool  `json:"is_listed"`
}

// Sale describes one completed purchase.
type Sale struct {
	NFTID      int64  `json:"nft_id"`
	SellerUUID string `json:"seller_uuid"`
	BuyerUUID  string `json:"buyer_uuid"`
	Price      int64  `json:"price"`
	Payment    int64  `json:"payment"`
}
