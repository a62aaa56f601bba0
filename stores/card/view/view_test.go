package view

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcard/base/ptr"
	"github.com/x-xyz/nftcard/domain/card"
)

type viewSuite struct {
	suite.Suite
	im *renderer
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(viewSuite))
}

func (s *viewSuite) SetupTest() {
	r, err := New()
	s.Require().NoError(err)
	s.im = r.(*renderer)
}

func (s *viewSuite) render(record card.TokenRecord) string {
	b, err := s.im.Render(card.NewView(record))
	s.Require().NoError(err)
	return string(b)
}

func (s *viewSuite) TestRender() {
	html := s.render(card.TokenRecord{
		Metadata: card.TokenMetadata{
			Image: ptr.String("https://x/y.png"),
			Name:  "Cool NFT #1",
		},
		Owner: "0xABCDEF1234567890",
	})

	s.Equal(`<div class="card">
  <img class="thumbnail" src="https://x/y.png">
  <h3>Cool NFT #1</h3>
  <p>Owned by</p>
  <p>0xAB...7890</p>
</div>
`, html)
}

func (s *viewSuite) TestRenderMissingImageKeepsEmptySource() {
	tests := []struct {
		desc  string
		image *string
	}{
		{desc: "nil image", image: nil},
		{desc: "empty image", image: ptr.String("")},
	}
	for _, t := range tests {
		html := s.render(card.TokenRecord{
			Metadata: card.TokenMetadata{Image: t.image, Name: "n"},
			Owner:    "0xABCDEF1234567890",
		})
		s.Contains(html, `<img class="thumbnail" src="">`, t.desc)
	}
}

func (s *viewSuite) TestRenderEscapesNameByDefault() {
	html := s.render(card.TokenRecord{
		Metadata: card.TokenMetadata{Name: `<script>alert("x")</script> & co`},
		Owner:    "0xABCDEF1234567890",
	})
	s.Contains(html, "<h3>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; co</h3>")
	s.NotContains(html, "<script>")
}

func (s *viewSuite) TestRenderShortOwner() {
	html := s.render(card.TokenRecord{
		Metadata: card.TokenMetadata{Name: "n"},
		Owner:    "0x1",
	})
	s.Contains(html, "<p>0x1...0x1</p>")
}

func (s *viewSuite) TestRenderKeepsImageSource() {
	tests := []struct {
		desc   string
		image  string
		expImg string
	}{
		{
			desc:   "ipfs uri",
			image:  "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.png",
			expImg: `<img class="thumbnail" src="ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG/1.png">`,
		},
		{
			desc:   "arweave uri",
			image:  "ar://abc123",
			expImg: `<img class="thumbnail" src="ar://abc123">`,
		},
		{
			desc:   "data uri",
			image:  "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=",
			expImg: `<img class="thumbnail" src="data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=">`,
		},
		{
			desc:   "space is not percent encoded",
			image:  "https://x/a b.png",
			expImg: `<img class="thumbnail" src="https://x/a b.png">`,
		},
		{
			desc:   "quotes can't leave the attribute",
			image:  `x" onerror="alert(1)`,
			expImg: `<img class="thumbnail" src="x&#34; onerror=&#34;alert(1)">`,
		},
	}
	for _, t := range tests {
		html := s.render(card.TokenRecord{
			Metadata: card.TokenMetadata{Image: ptr.String(t.image), Name: "n"},
			Owner:    "0xABCDEF1234567890",
		})
		s.Contains(html, t.expImg, t.desc)
	}
}

func (s *viewSuite) TestMustNew() {
	s.NotPanics(func() { MustNew() })
}
