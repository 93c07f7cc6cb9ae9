package keypairs

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/anyswap/xrpl-codec/addresscodec"
	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type KeySuite struct{}

var _ = Suite(&KeySuite{})

func b2h(b []byte) string {
	return fmt.Sprintf("%X", b)
}

func h2b(s string) []byte {
	h, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return h
}

var testMessage = []byte("test message")

// Account family vectors: seed 71ED064155FFADFA38782C5E0158CB26.
func (s *KeySuite) TestSecp256k1FamilyVectors(c *C) {
	seed, err := GenerateSeed(h2b("71ED064155FFADFA38782C5E0158CB26"), SECP256K1)
	c.Assert(err, IsNil)
	c.Check(seed, Equals, "shHM53KPZ87Gwdqarm1bAmPeXg8Tn")

	public, private, err := DeriveKeypair(seed, true)
	c.Assert(err, IsNil)
	c.Check(private, Equals, "007CFBA64F771E93E817E15039215430B53F7401C34931D111EAB3510B22DBB0D8")
	node, err := addresscodec.EncodeNodePublicKey(h2b(public))
	c.Assert(err, IsNil)
	c.Check(node, Equals, "n9MXXueo837zYH36DvMc13BwHcqtfAWNJY5czWVbp7uYTj7x17TH")

	public, _, err = DeriveKeypair(seed, false)
	c.Assert(err, IsNil)
	c.Check(public, Equals, "03FA25B68DA6FF6832E4462FDFB9A2AAA58888C0ED17285FFE92E4465E0C6E782A")
	address, err := DeriveClassicAddress(public)
	c.Assert(err, IsNil)
	c.Check(address, Equals, "rhcfR9Cg98qCxHpCcPBmMonbDBXo84wyTn")
}

func (s *KeySuite) TestMasterPassphrase(c *C) {
	public, _, err := DeriveKeypair("snoPBrXtMeMyMHUVTgbuqAfg1SUTb", false)
	c.Assert(err, IsNil)
	address, err := DeriveClassicAddress(public)
	c.Assert(err, IsNil)
	c.Check(address, Equals, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
}

func (s *KeySuite) TestSecp256k1(c *C) {
	public, private, err := DeriveKeypair("sp5fghtJtpUorTwvof1NpDXAzNwf5", false)
	c.Assert(err, IsNil)
	c.Check(public, Equals, "030D58EB48B4420B1F7B9DF55087E0E29FEF0E8468F9A6825B01CA2C361042D435")
	c.Check(private, Equals, "00D78B9735C3F26501C7337B8A5727FD53A6EFDBC6AA55984F098488561F985E23")
	address, err := DeriveClassicAddress(public)
	c.Assert(err, IsNil)
	c.Check(address, Equals, "rU6K7V3Po4snVhBBaU29sesqs2qTQJWDw1")

	public, private, err = DeriveKeypair("sp5fghtJtpUorTwvof1NpDXAzNwf5", true)
	c.Assert(err, IsNil)
	c.Check(public, Equals, "03B462771E99AAE9C7912AF47D6120C0B0DA972A4043A17F26320A52056DA46EA8")
	c.Check(private, Equals, "001A6B48BF0DE7C7E425B61E0444E3921182B6529867685257CEDC3E7EF13F0F18")
}

func (s *KeySuite) TestEd25519(c *C) {
	public, private, err := DeriveKeypair("sEdSKaCy2JT7JaM7v95H9SxkhP9wS2r", false)
	c.Assert(err, IsNil)
	c.Check(public, Equals, "ED01FA53FA5A7E77798F882ECE20B1ABC00BB358A9E55A202D0D0676BD0CE37A63")
	c.Check(private, Equals, "EDB4C4E046826BD26190D09715FC31F4E6A728204EADD112905B08B14B7F15C4F3")
	address, err := DeriveClassicAddress(public)
	c.Assert(err, IsNil)
	c.Check(address, Equals, "rLUEXYuLiQptky37CqLcm9USQpPiz5rkpD")

	signature, err := Sign(testMessage, private)
	c.Assert(err, IsNil)
	c.Check(signature, Equals, "CB199E1BFD4E3DAA105E4832EEDFA36413E1F44205E4EFB9E27E826044C21E3E2E848BBC8195E8959BADF887599B7310AD1B7047EF11B682E0D068F73749750E")
	c.Check(IsValidMessage(testMessage, signature, public), Equals, true)
	c.Check(IsValidMessage([]byte("other message"), signature, public), Equals, false)
}

func (s *KeySuite) TestEd25519ValidatorRejected(c *C) {
	_, _, err := DeriveKeypair("sEdSKaCy2JT7JaM7v95H9SxkhP9wS2r", true)
	c.Check(errors.Is(err, ErrUnsupportedValidatorAlgorithm), Equals, true)
}

func (s *KeySuite) TestSignVerifyRoundTrip(c *C) {
	for _, algo := range []CryptoAlgorithm{SECP256K1, ED25519} {
		for i := byte(0); i < 8; i++ {
			seed, err := GenerateSeed(bytes.Repeat([]byte{i * 31}, 16), algo)
			c.Assert(err, IsNil)
			public, private, err := DeriveKeypair(seed, false)
			c.Assert(err, IsNil)
			for _, msg := range [][]byte{{}, testMessage, bytes.Repeat([]byte{0xAB}, 1000)} {
				signature, err := Sign(msg, private)
				c.Assert(err, IsNil)
				c.Check(IsValidMessage(msg, signature, public), Equals, true, Commentf("%v %v", algo, seed))
			}
		}
	}
}

func (s *KeySuite) TestSecp256k1SignatureIsCanonicalDER(c *C) {
	_, private, err := DeriveKeypair("sp5fghtJtpUorTwvof1NpDXAzNwf5", false)
	c.Assert(err, IsNil)
	first, err := Sign(testMessage, private)
	c.Assert(err, IsNil)
	second, err := Sign(testMessage, private)
	c.Assert(err, IsNil)
	c.Check(first, Equals, second)
	sig := h2b(first)
	c.Check(sig[0], Equals, byte(0x30))
	c.Check(int(sig[1]), Equals, len(sig)-2)
}

func (s *KeySuite) TestRandomSeed(c *C) {
	first, err := GenerateSeed(nil, ED25519)
	c.Assert(err, IsNil)
	second, err := GenerateSeed(nil, ED25519)
	c.Assert(err, IsNil)
	c.Check(first, Not(Equals), second)
	c.Check(first[:3], Equals, "sEd")

	_, err = GenerateSeed(make([]byte, 15), SECP256K1)
	c.Check(err, Equals, ErrInvalidEntropy)
}

func (s *KeySuite) TestInvalidInputs(c *C) {
	_, _, err := DeriveKeypair("not a seed", false)
	c.Check(err, NotNil)
	_, err = DeriveClassicAddress("02AB")
	c.Check(errors.Is(err, ErrInvalidKey), Equals, true)
	_, err = DeriveClassicAddress("zz")
	c.Check(errors.Is(err, ErrInvalidKey), Equals, true)
	_, err = Sign(testMessage, "00"+b2h(bytes.Repeat([]byte{0xFF}, 32)))
	c.Check(errors.Is(err, ErrInvalidKey), Equals, true)
	_, err = Sign(testMessage, "ED1234")
	c.Check(errors.Is(err, ErrInvalidKey), Equals, true)
	c.Check(IsValidMessage(testMessage, "3000", "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"), Equals, false)
	c.Check(IsValidMessage(testMessage, "zz", "ED01FA53FA5A7E77798F882ECE20B1ABC00BB358A9E55A202D0D0676BD0CE37A63"), Equals, false)
}

func (s *KeySuite) TestHashes(c *C) {
	c.Check(b2h(Sha512Half(nil)), Equals, "CF83E1357EEFB8BDF1542850D66D8007D620E4050B5715DC83F4A921D36CE9CE")
	c.Check(b2h(Sha256RipeMD160(nil)), Equals, "B472A266D0BD89C13706A4132CCFB16F7C3B9FCB")
}
