package keypairs

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec"
)

var (
	curve = btcec.S256()
	order = curve.N
)

type secp256k1Algorithm struct{}

// deriveScalar hashes data plus an optional discriminator and a counter
// until the digest is a valid private scalar.
func deriveScalar(data []byte, discriminator *uint32) *big.Int {
	buf := make([]byte, len(data), len(data)+8)
	copy(buf, data)
	if discriminator != nil {
		buf = buf[:len(data)+4]
		binary.BigEndian.PutUint32(buf[len(data):], *discriminator)
	}
	base := len(buf)
	buf = buf[:base+4]
	key := new(big.Int)
	for seq := uint32(0); ; seq++ {
		binary.BigEndian.PutUint32(buf[base:], seq)
		key.SetBytes(Sha512Half(buf))
		if key.Sign() > 0 && key.Cmp(order) < 0 {
			return key
		}
	}
}

func (secp256k1Algorithm) deriveKeypair(seed []byte, validator bool) (public, private string, err error) {
	root := deriveScalar(seed, nil)
	key := root
	if !validator {
		rootPriv, _ := btcec.PrivKeyFromBytes(curve, root.Bytes())
		var accountIndex uint32
		intermediate := deriveScalar(rootPriv.PubKey().SerializeCompressed(), &accountIndex)
		key = new(big.Int).Add(root, intermediate)
		key.Mod(key, order)
	}
	priv, pub := btcec.PrivKeyFromBytes(curve, key.Bytes())
	return formatKey(pub.SerializeCompressed()), fmt.Sprintf("00%064X", priv.D), nil
}

func (secp256k1Algorithm) sign(message []byte, privateKey string) ([]byte, error) {
	raw, err := hex.DecodeString(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) == btcec.PrivKeyBytesLen+1 && raw[0] == 0 {
		raw = raw[1:]
	}
	d := new(big.Int).SetBytes(raw)
	if len(raw) != btcec.PrivKeyBytesLen || d.Sign() == 0 || d.Cmp(order) >= 0 {
		return nil, fmt.Errorf("%w: secp256k1 private key out of range", ErrInvalidKey)
	}
	priv, _ := btcec.PrivKeyFromBytes(curve, raw)
	sig, err := priv.Sign(Sha512Half(message))
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

func (secp256k1Algorithm) verify(message, signature []byte, publicKey string) bool {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return false
	}
	pub, err := btcec.ParsePubKey(raw, curve)
	if err != nil {
		return false
	}
	sig, err := btcec.ParseDERSignature(signature, curve)
	if err != nil {
		return false
	}
	return sig.Verify(Sha512Half(message), pub)
}

func formatKey(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
