package usecase

import (
	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/base/metrics"
	"github.com/x-xyz/nftcard/domain/card"
	"github.com/x-xyz/nftcard/domain/keys"
	"github.com/x-xyz/nftcard/service/cache"
)

type CardUseCaseCfg struct {
	Repo     card.Repo
	Renderer card.Renderer
	// Cache keeps rendered fragments, keyed by token id
	Cache cache.Service
}

type impl struct {
	repo     card.Repo
	renderer card.Renderer
	cache    cache.Service
	met      metrics.Service
}

func New(cfg *CardUseCaseCfg) card.Usecase {
	return &impl{
		repo:     cfg.Repo,
		renderer: cfg.Renderer,
		cache:    cfg.Cache,
		met:      metrics.New("card"),
	}
}

// fragment is the cached form of a rendered card
type fragment struct {
	Html []byte `json:"html"`
}

func cacheKey(id card.Id) string {
	return keys.RedisKey(id.Components()...)
}

func (im *impl) BuildView(c ctx.Ctx, record card.TokenRecord) card.View {
	return card.NewView(record)
}

func (im *impl) Render(c ctx.Ctx, record card.TokenRecord) ([]byte, error) {
	defer im.met.BumpTime("render.time").End()

	html, err := im.renderer.Render(card.NewView(record))
	if err != nil {
		c.WithField("err", err).Error("renderer.Render failed")
		return nil, err
	}
	return html, nil
}

func (im *impl) RenderById(c ctx.Ctx, id card.Id) ([]byte, error) {
	c = ctx.WithValue(c, "cardId", id)

	f := fragment{}
	err := im.cache.GetByFunc(c, cacheKey(id), &f, func() (interface{}, error) {
		im.met.BumpSum("cache.miss", 1)
		record, err := im.repo.FindOne(c, id)
		if err != nil {
			return nil, err
		}
		html, err := im.Render(c, *record)
		if err != nil {
			return nil, err
		}
		return &fragment{Html: html}, nil
	})
	if err != nil {
		return nil, err
	}
	return f.Html, nil
}

func (im *impl) GetView(c ctx.Ctx, id card.Id) (*card.View, error) {
	record, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	v := card.NewView(*record)
	return &v, nil
}

func (im *impl) Invalidate(c ctx.Ctx, id card.Id) error {
	return im.cache.Del(c, cacheKey(id))
}
