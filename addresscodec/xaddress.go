package addresscodec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	mainnetXAddressPrefix = []byte{0x05, 0x44}
	testnetXAddressPrefix = []byte{0x04, 0x93}
)

// ErrInvalidXAddress is returned for malformed X-addresses.
var ErrInvalidXAddress = errors.New("invalid x-address")

// XAddress is a decoded X-address.
type XAddress struct {
	ClassicAddress string
	Tag            uint32
	HasTag         bool
	IsTestNet      bool
}

// ClassicAddressToXAddress packs an r-address and an optional tag.
func ClassicAddressToXAddress(classicAddress string, tag uint32, hasTag, isTestNet bool) (string, error) {
	accountID, err := DecodeClassicAddress(classicAddress)
	if err != nil {
		return "", err
	}
	buf := make([]byte, 0, 31)
	if isTestNet {
		buf = append(buf, testnetXAddressPrefix...)
	} else {
		buf = append(buf, mainnetXAddressPrefix...)
	}
	buf = append(buf, accountID...)
	var flagAndTag [9]byte
	if hasTag {
		flagAndTag[0] = 1
		binary.LittleEndian.PutUint32(flagAndTag[1:5], tag)
	}
	buf = append(buf, flagAndTag[:]...)
	buf = append(buf, checksum(buf)...)
	return EncodeBase58(buf), nil
}

// DecodeXAddress splits an X-address into its parts.
func DecodeXAddress(xAddress string) (*XAddress, error) {
	body, err := DecodeChecked(xAddress)
	if err != nil {
		return nil, err
	}
	if len(body) != 31 {
		return nil, fmt.Errorf("%w: %v bytes", ErrInvalidXAddress, len(body))
	}
	x := &XAddress{}
	switch {
	case body[0] == mainnetXAddressPrefix[0] && body[1] == mainnetXAddressPrefix[1]:
	case body[0] == testnetXAddressPrefix[0] && body[1] == testnetXAddressPrefix[1]:
		x.IsTestNet = true
	default:
		return nil, fmt.Errorf("%w: bad prefix", ErrInvalidXAddress)
	}
	x.ClassicAddress, err = EncodeClassicAddress(body[2:22])
	if err != nil {
		return nil, err
	}
	flag, rest := body[22], body[23:]
	switch flag {
	case 0:
		for _, b := range rest {
			if b != 0 {
				return nil, fmt.Errorf("%w: tag bytes set without tag flag", ErrInvalidXAddress)
			}
		}
	case 1:
		if binary.LittleEndian.Uint32(rest[4:8]) != 0 {
			return nil, fmt.Errorf("%w: 64 bit tags are not supported", ErrInvalidXAddress)
		}
		x.Tag = binary.LittleEndian.Uint32(rest[0:4])
		x.HasTag = true
	default:
		return nil, fmt.Errorf("%w: unsupported flag %v", ErrInvalidXAddress, flag)
	}
	return x, nil
}

// XAddressToClassicAddress returns the classic address and tag of an
// X-address.
func XAddressToClassicAddress(xAddress string) (classicAddress string, tag uint32, hasTag bool, err error) {
	x, err := DecodeXAddress(xAddress)
	if err != nil {
		return "", 0, false, err
	}
	return x.ClassicAddress, x.Tag, x.HasTag, nil
}

// IsValidXAddress reports whether s decodes as an X-address.
func IsValidXAddress(s string) bool {
	_, err := DecodeXAddress(s)
	return err == nil
}
