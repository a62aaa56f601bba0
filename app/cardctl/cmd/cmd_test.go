package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcard/domain"
)

const record = `{"metadata":{"image":"https://x/y.png","name":"Cool NFT #1"},"owner":"0xABCDEF1234567890"}`

const recordHtml = `<div class="card">
  <img class="thumbnail" src="https://x/y.png">
  <h3>Cool NFT #1</h3>
  <p>Owned by</p>
  <p>0xAB...7890</p>
</div>
`

type cmdSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestCmdSuite(t *testing.T) {
	suite.Run(t, new(cmdSuite))
}

func (s *cmdSuite) SetupTest() {
	color.NoColor = true
	s.out = &bytes.Buffer{}
	RootCmd.SetOut(s.out)
	RootCmd.SetErr(&bytes.Buffer{})
}

func (s *cmdSuite) run(stdin string, args ...string) error {
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func (s *cmdSuite) TestRenderStdin() {
	s.Require().NoError(s.run(record, "render", "-f", "-", "-o", "-"))
	s.Equal(recordHtml, s.out.String())
}

func (s *cmdSuite) TestRenderFileToFile() {
	dir := s.T().TempDir()
	in := filepath.Join(dir, "record.json")
	out := filepath.Join(dir, "card.html")
	s.Require().NoError(os.WriteFile(in, []byte(record), 0o644))

	s.Require().NoError(s.run("", "render", "-f", in, "-o", out))

	b, err := os.ReadFile(out)
	s.Require().NoError(err)
	s.Equal(recordHtml, string(b))
	s.Empty(s.out.String())
}

func (s *cmdSuite) TestRenderMissingFile() {
	err := s.run("", "render", "-f", filepath.Join(s.T().TempDir(), "nope.json"), "-o", "-")
	s.Error(err)
}

func (s *cmdSuite) TestRenderBadJson() {
	err := s.run("{", "render", "-f", "-", "-o", "-")
	s.Error(err)
}

func (s *cmdSuite) TestView() {
	s.Require().NoError(s.run(`{"metadata":{"name":"Bare"},"owner":"0x12"}`, "view", "-f", "-"))
	s.Equal("Bare\n\nOwned by\n0x12...0x12\n", s.out.String())
}

func (s *cmdSuite) TestViewWithImage() {
	s.Require().NoError(s.run(record, "view", "-f", "-"))
	s.Equal("Cool NFT #1\nhttps://x/y.png\nOwned by\n0xAB...7890\n", s.out.String())
}

func (s *cmdSuite) TestOwner() {
	s.Require().NoError(s.run("", "owner", "0xABCDEF1234567890"))
	s.Equal("0xAB...7890\n", s.out.String())
}

func (s *cmdSuite) TestOwnerNeedsOneArg() {
	s.Error(s.run("", "owner"))
}

func (s *cmdSuite) TestSeedId() {
	tests := []struct {
		desc     string
		chain    string
		contract string
		expErr   error
	}{
		{
			desc:     "valid",
			chain:    "1",
			contract: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
		},
		{
			desc:     "zero chain",
			chain:    "0",
			contract: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expErr:   domain.ErrInvalidChainId,
		},
		{
			desc:     "bad contract",
			chain:    "1",
			contract: "0x000",
			expErr:   domain.ErrInvalidAddress,
		},
	}
	for _, t := range tests {
		s.Require().NoError(seedCmd.Flags().Set("chain", t.chain), t.desc)
		s.Require().NoError(seedCmd.Flags().Set("contract", t.contract), t.desc)
		s.Require().NoError(seedCmd.Flags().Set("token", "42"), t.desc)

		id, err := seedId(seedCmd)
		if t.expErr != nil {
			s.ErrorIs(err, t.expErr, t.desc)
			continue
		}
		s.NoError(err, t.desc)
		s.Equal(domain.ChainId(1), id.ChainId, t.desc)
		s.Equal(domain.TokenId("42"), id.TokenId, t.desc)
	}
}
