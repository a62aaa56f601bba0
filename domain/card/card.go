package card

import (
	"io"
	"strconv"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/domain"
)

type Id struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenID"`
}

func (id Id) ToLower() Id {
	id.ContractAddress = id.ContractAddress.ToLower()
	return id
}

// Components returns the id parts in key order: chainId, contract, tokenId
func (id Id) Components() []string {
	return []string{
		strconv.Itoa(int(id.ChainId)),
		id.ContractAddress.ToLowerStr(),
		id.TokenId.String(),
	}
}

// TokenMetadata is the subset of token metadata shown on a card.
// Image is nil when the metadata carries no image at all.
type TokenMetadata struct {
	Image *string `json:"image,omitempty"`
	Name  string  `json:"name"`
}

// TokenRecord is one token with its metadata and current owner,
// as supplied by the marketplace store or by a caller.
type TokenRecord struct {
	Metadata TokenMetadata  `json:"metadata"`
	Owner    domain.Address `json:"owner"`
}

type Usecase interface {
	BuildView(c ctx.Ctx, record TokenRecord) View
	Render(c ctx.Ctx, record TokenRecord) ([]byte, error)
	RenderById(c ctx.Ctx, id Id) ([]byte, error)
	GetView(c ctx.Ctx, id Id) (*View, error)
	Invalidate(c ctx.Ctx, id Id) error
}

type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*TokenRecord, error)
	Upsert(c ctx.Ctx, id Id, record TokenRecord) error
}

// Renderer turns a display tree into markup
type Renderer interface {
	Render(v View) ([]byte, error)
	Write(w io.Writer, v View) error
}
