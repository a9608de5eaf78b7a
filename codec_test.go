package bigint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalStringBasic(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "-1", FromInt64(-1).String())
	assert.Equal(t, "1000000000", FromInt64(1000000000).String())
}

func TestParseDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123456789012345678901234567890", "-999999999999999999"}
	for _, s := range cases {
		v, err := ParseDecimal(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestParseDecimalLeadingZerosAndUnderscores(t *testing.T) {
	v, err := ParseDecimal("00_123_456")
	require.NoError(t, err)
	assert.Equal(t, "123456", v.String())

	zero, err := ParseDecimal("000")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestParseDecimalErrors(t *testing.T) {
	_, err := ParseDecimal("")
	assert.Error(t, err)
	_, err = ParseDecimal("123_")
	assert.Error(t, err)
	_, err = ParseDecimal("_123")
	assert.Error(t, err)
	_, err = ParseDecimal("12x3")
	assert.Error(t, err)
	_, err = ParseDecimal("-")
	assert.Error(t, err)
}

func TestDecimalRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		n := FromInt64(r.Int63())
		if r.Intn(2) == 0 {
			n = n.Neg()
		}
		v, err := ParseDecimal(n.String())
		require.NoError(t, err)
		assert.Equal(t, 0, n.Cmp(v))
	}
}

func TestHexStringDefault(t *testing.T) {
	x := FromInt64(255)
	assert.Equal(t, "0xFF", x.HexString(DefaultHexFormat()))
}

func TestHexStringFormatOptions(t *testing.T) {
	x := FromInt64(-10)
	f := HexFormat{Prefix: "", Suffix: "h", MinDigits: 4, UpperCase: false}
	assert.Equal(t, "-000ah", x.HexString(f))
}

func TestParseHexRoundTrip(t *testing.T) {
	cases := []string{"0x0", "0xFF", "-0x1A", "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"}
	for _, s := range cases {
		v, err := ParseHex(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.HexString(DefaultHexFormat()))
	}
}

func TestParseHexWithUnderscoresAndCase(t *testing.T) {
	v, err := ParseHex("0xFFFF_FFFF_FFFF_FFFF")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), v.LittleEndianLimbs64()[0])

	v2, err := ParseHex("0xabcd")
	require.NoError(t, err)
	assert.Equal(t, "0xABCD", v2.HexString(DefaultHexFormat()))
}

func TestParseHexWorkedExamplePlusOne(t *testing.T) {
	v, err := ParseHex("0xFFFF_FFFF_FFFF_FFFF")
	require.NoError(t, err)
	sum := v.Add(One())
	assert.Equal(t, "0x10000000000000000", sum.HexString(DefaultHexFormat()))
}

func TestParseHexErrors(t *testing.T) {
	_, err := ParseHex("")
	assert.Error(t, err)
	_, err = ParseHex("0x")
	assert.Error(t, err)
	_, err = ParseHex("0xG")
	assert.Error(t, err)
	_, err = ParseHex("0xFF_")
	assert.Error(t, err)
}

func TestParseDecimalBytes(t *testing.T) {
	v, err := ParseDecimalBytes([]byte("123456789"))
	require.NoError(t, err)
	assert.Equal(t, "123456789", v.String())
}

func TestParseDecimalBytesRange(t *testing.T) {
	buf := []byte("xx123yy")
	v, err := ParseDecimalBytesRange(buf, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "123", v.String())
}

func TestParseHexBytes(t *testing.T) {
	v, err := ParseHexBytes([]byte("0xFF"))
	require.NoError(t, err)
	assert.Equal(t, int64(255), mustInt64(t, v))
}

func TestParseHexBytesRange(t *testing.T) {
	buf := []byte("--0x1A--")
	v, err := ParseHexBytesRange(buf, 2, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(26), mustInt64(t, v))
}

func TestMustParseHelpersPanicOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustParseDecimal("abc") })
	assert.Panics(t, func() { MustParseHex("zz") })
}
