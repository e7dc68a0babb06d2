package events

import "time"

const (
	EventNFTMinted      = "nft_minted"
	EventNFTListed      = "nft_listed"
	EventNFTDelisted    = "nft_delisted"
	EventNFTSold        = "nft_sold"
	EventFundsWithdrawn = "funds_withdrawn"
)

// Event is a market state change broadcast to all feed subscribers.
type Event struct {
	Type      string    `json:"type"`
	NFTID     int64     `json:"nft_id,omitempty"`
	Owner     string    `json:"owner,omitempty"`
	Buyer     string    `json:"buyer,omitempty"`
	TokenURI  string    `json:"token_uri,omitempty"`
	Price     int64     `json:"price,omitempty"`
	Amount    int64     `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
