package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/base/database/mongoclient"
	"github.com/x-xyz/nftcard/base/log"
	"github.com/x-xyz/nftcard/base/metrics"
	"github.com/x-xyz/nftcard/domain"
	"github.com/x-xyz/nftcard/domain/card"
)

const queryTimeout = 5 * time.Second

// nftItem is the part of an nftitems document a card needs
type nftItem struct {
	ChainId         domain.ChainId `bson:"chainId"`
	ContractAddress domain.Address `bson:"contractAddress"`
	TokenId         domain.TokenId `bson:"tokenID"`
	Name            string         `bson:"name"`
	ImageUrl        *string        `bson:"imageURL,omitempty"`
	HostedImageUrl  *string        `bson:"hostedImageURL,omitempty"`
	Owner           domain.Address `bson:"owner"`
	UpdatedAt       time.Time      `bson:"updatedAt"`
}

// toRecord prefers the hosted image, falling back to the raw image url.
// An item with neither keeps a nil image.
func (n *nftItem) toRecord() *card.TokenRecord {
	image := n.ImageUrl
	if n.HostedImageUrl != nil && len(*n.HostedImageUrl) > 0 {
		image = n.HostedImageUrl
	}
	return &card.TokenRecord{
		Metadata: card.TokenMetadata{
			Image: image,
			Name:  n.Name,
		},
		Owner: n.Owner,
	}
}

func makeFilter(id card.Id) bson.M {
	id = id.ToLower()
	return bson.M{
		"chainId":         id.ChainId,
		"contractAddress": id.ContractAddress,
		"tokenID":         id.TokenId,
	}
}

// makeUpdater stores the owner as given. Owners may be case sensitive, only
// the contract address in the filter is normalized.
func makeUpdater(record card.TokenRecord, now time.Time) bson.M {
	set := bson.M{
		"name":      record.Metadata.Name,
		"owner":     record.Owner,
		"updatedAt": now,
	}
	if record.Metadata.Image != nil {
		set["imageURL"] = *record.Metadata.Image
	}
	return bson.M{"$set": set}
}

type tokenRecordRepo struct {
	client *mongoclient.Client
	met    metrics.Service
}

func NewTokenRecordRepo(client *mongoclient.Client) card.Repo {
	return &tokenRecordRepo{
		client: client,
		met:    metrics.New("mongo"),
	}
}

func (r *tokenRecordRepo) collection() *mongo.Collection {
	return r.client.Collection(string(domain.TableNFTItems))
}

func (r *tokenRecordRepo) FindOne(c ctx.Ctx, id card.Id) (*card.TokenRecord, error) {
	defer r.met.BumpTime("time", "func", "findOne", "table", string(domain.TableNFTItems)).End()

	qctx, cancel := ctx.WithTimeout(c, queryTimeout)
	defer cancel()

	item := nftItem{}
	err := r.collection().FindOne(qctx, makeFilter(id)).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("FindOne failed")
		return nil, xerrors.Errorf("find token record: %w", err)
	}
	return item.toRecord(), nil
}

func (r *tokenRecordRepo) Upsert(c ctx.Ctx, id card.Id, record card.TokenRecord) error {
	defer r.met.BumpTime("time", "func", "upsert", "table", string(domain.TableNFTItems)).End()

	qctx, cancel := ctx.WithTimeout(c, queryTimeout)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection().UpdateOne(qctx, makeFilter(id), makeUpdater(record, time.Now()), opts); err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("UpdateOne failed")
		return xerrors.Errorf("upsert token record: %w", err)
	}
	return nil
}
