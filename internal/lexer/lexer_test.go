package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-at-pretension-io/vhdlfront/internal/token"
)

func kinds(t *testing.T, toks []token.Token) []token.Kind {
	t.Helper()
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestKeywordVsIdentifierIsCaseInsensitive(t *testing.T) {
	toks, err := New("Entity ENTITY entity my_entity").Tokens()
	require.NoError(t, err)
	require.Equal(t, token.Keyword, toks[0].Kind)
	require.Equal(t, token.Keyword, toks[1].Kind)
	require.Equal(t, token.Keyword, toks[2].Kind)
	require.Equal(t, token.Identifier, toks[3].Kind)
}

func TestLineCommentsAreDroppedNotEmitted(t *testing.T) {
	toks, err := New("a -- this is a comment\n b").Tokens()
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.Identifier, token.Identifier, token.EOF}, kinds(t, toks))
}

func TestExtendedIdentifierPreservesEmbeddedBackslash(t *testing.T) {
	toks, err := New(`\foo\\bar\`).Tokens()
	require.NoError(t, err)
	require.Equal(t, token.ExtendedIdentifier, toks[0].Kind)
	require.Equal(t, `foo\bar`, toks[0].Text)
}

func TestUnterminatedExtendedIdentifierErrors(t *testing.T) {
	_, err := New(`\foo`).Tokens()
	require.Error(t, err)
}

func TestCharacterLiteralVsTickAttribute(t *testing.T) {
	toks, err := New(`'0' range'high`).Tokens()
	require.NoError(t, err)
	require.Equal(t, token.CharacterLiteral, toks[0].Kind)
	require.Equal(t, "0", toks[0].Text)
	// "range'high" lexes as keyword "range" then delimiter "'" then identifier "high".
	require.Equal(t, token.Keyword, toks[1].Kind)
	require.Equal(t, token.Delimiter, toks[2].Kind)
	require.Equal(t, "'", toks[2].Text)
	require.Equal(t, token.Identifier, toks[3].Kind)
}

func TestStringLiteralWithEscapedQuote(t *testing.T) {
	toks, err := New(`"a""b"`).Tokens()
	require.NoError(t, err)
	require.Equal(t, token.StringLiteral, toks[0].Kind)
	require.Equal(t, `a"b`, toks[0].Text)
}

func TestBitStringLiteralPrefixDisambiguation(t *testing.T) {
	toks, err := New(`x"FF" xray`).Tokens()
	require.NoError(t, err)
	require.Equal(t, token.BitStringLiteral, toks[0].Kind)
	require.Equal(t, `x"FF"`, toks[0].Text)
	// "xray" shares the prefix letter but isn't followed by a quote: falls
	// back to a plain identifier rather than a malformed bit string.
	require.Equal(t, token.Identifier, toks[1].Kind)
	require.Equal(t, "xray", toks[1].Text)
}

func TestAbstractLiteralWithUnderscoreAndExponent(t *testing.T) {
	toks, err := New(`1_000.5e-3`).Tokens()
	require.NoError(t, err)
	require.Equal(t, token.AbstractLiteral, toks[0].Kind)
	require.Equal(t, "1_000.5e-3", toks[0].Text)
}

func TestBasedLiteral(t *testing.T) {
	toks, err := New(`16#FF#`).Tokens()
	require.NoError(t, err)
	require.Equal(t, token.Based, toks[0].Kind)
	require.Equal(t, "16#FF#", toks[0].Text)
}

func TestMultiCharDelimitersPreferLongestMatch(t *testing.T) {
	toks, err := New(`<= >= := => /= ** <>`).Tokens()
	require.NoError(t, err)
	want := []string{"<=", ">=", ":=", "=>", "/=", "**", "<>"}
	for i, w := range want {
		require.Equal(t, token.Delimiter, toks[i].Kind)
		require.Equal(t, w, toks[i].Text)
	}
}

func TestUnexpectedCharacterErrors(t *testing.T) {
	_, err := New("a @ b").Tokens()
	require.Error(t, err)
}

func TestTokensAlwaysEndWithEOF(t *testing.T) {
	toks, err := New("").Tokens()
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, token.EOF, toks[0].Kind)
}
