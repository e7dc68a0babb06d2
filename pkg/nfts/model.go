package nfts

import "time"

type NFT struct {
	ID        int64     `json:"id"`
	OwnerUUID string    `json:"owner_uuid"`
	TokenURI  string    `json:"token_uri"`
	Price     int64     `json:"price"`
	IsListed  bool      `json:"is_listed"`
	MintedAt  time.Time `json:"minted_at"`
}

type NFTList struct {
	Items []NFT `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
