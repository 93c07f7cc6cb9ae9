package serdes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/anyswap/xrpl-codec/binarycodec/definitions"
	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type SerdesSuite struct{}

var _ = Suite(&SerdesSuite{})

var lengthPrefixTests = []struct {
	length int
	prefix []byte
}{
	{0, []byte{0}},
	{1, []byte{1}},
	{192, []byte{192}},
	{193, []byte{193, 0}},
	{194, []byte{193, 1}},
	{12480, []byte{240, 255}},
	{12481, []byte{241, 0, 0}},
	{12482, []byte{241, 0, 1}},
	{918744, []byte{254, 212, 23}},
}

func (s *SerdesSuite) TestEncodeVariableLength(c *C) {
	for _, t := range lengthPrefixTests {
		prefix, err := EncodeVariableLength(t.length)
		c.Assert(err, IsNil)
		c.Check(prefix, DeepEquals, t.prefix, Commentf("length %d", t.length))
	}
	_, err := EncodeVariableLength(918745)
	c.Check(errors.Is(err, ErrLengthPrefixTooLarge), Equals, true)
}

func (s *SerdesSuite) TestReadVariableLength(c *C) {
	for _, t := range lengthPrefixTests {
		p := NewBinaryParser(t.prefix)
		length, err := p.ReadVariableLength()
		c.Assert(err, IsNil)
		c.Check(length, Equals, t.length)
		c.Check(p.IsEnd(), Equals, true)
	}
}

func (s *SerdesSuite) TestReadVariableLengthRejects255(c *C) {
	p := NewBinaryParser([]byte{255, 0, 0})
	_, err := p.ReadVariableLength()
	c.Check(errors.Is(err, ErrInvalidLengthPrefix), Equals, true)

	p = NewBinaryParser([]byte{241, 0})
	_, err = p.ReadVariableLength()
	c.Check(errors.Is(err, ErrParserOutOfBound), Equals, true)
}

var headerTests = []struct {
	typeCode, fieldCode int32
	encoded             []byte
}{
	{1, 2, []byte{0x12}},
	{8, 1, []byte{0x81}},
	{20, 3, []byte{0x03, 0x14}},
	{1, 16, []byte{0x10, 0x10}},
	{16, 16, []byte{0x00, 0x10, 0x10}},
	{15, 255, []byte{0xF0, 0xFF}},
}

func (s *SerdesSuite) TestFieldHeader(c *C) {
	for _, t := range headerTests {
		fh := definitions.FieldHeader{TypeCode: t.typeCode, FieldCode: t.fieldCode}
		b, err := EncodeFieldHeader(fh)
		c.Assert(err, IsNil)
		c.Check(b, DeepEquals, t.encoded)

		decoded, err := NewBinaryParser(b).ReadFieldHeader()
		c.Assert(err, IsNil)
		c.Check(decoded, Equals, fh)
	}
	_, err := EncodeFieldHeader(definitions.FieldHeader{TypeCode: 0, FieldCode: 1})
	c.Check(errors.Is(err, ErrInvalidFieldHeader), Equals, true)
	_, err = EncodeFieldHeader(definitions.FieldHeader{TypeCode: 1, FieldCode: 256})
	c.Check(errors.Is(err, ErrInvalidFieldHeader), Equals, true)
}

func (s *SerdesSuite) TestReadFieldHeaderRejectsSmallOverflow(c *C) {
	for _, b := range [][]byte{{0x10, 0x00}, {0x10, 0x0F}, {0x01, 0x05}, {0x00, 0x10, 0x01}} {
		_, err := NewBinaryParser(b).ReadFieldHeader()
		c.Check(errors.Is(err, ErrInvalidFieldHeader), Equals, true, Commentf("%X", b))
	}
}

func (s *SerdesSuite) TestReadField(c *C) {
	fi, err := NewBinaryParser([]byte{0x12}).ReadField()
	c.Assert(err, IsNil)
	c.Check(fi.FieldName, Equals, "TransactionType")

	fi, err = NewBinaryParser([]byte{0xE1}).ReadField()
	c.Assert(err, IsNil)
	c.Check(fi.FieldName, Equals, "ObjectEndMarker")

	_, err = NewBinaryParser([]byte{0x20, 0xC8}).ReadField()
	c.Check(errors.Is(err, ErrUnknownField), Equals, true)
	var unknown *UnknownFieldError
	c.Assert(errors.As(err, &unknown), Equals, true)
	c.Check(unknown.Header.FieldCode, Equals, int32(200))
}

func (s *SerdesSuite) TestParserPrimitives(c *C) {
	p, err := NewBinaryParserFromHex("0102030405060708090A")
	c.Assert(err, IsNil)
	b, err := p.Peek()
	c.Assert(err, IsNil)
	c.Check(b, Equals, byte(1))
	c.Check(p.Remaining(), Equals, 10)

	u8, err := p.ReadUint8()
	c.Assert(err, IsNil)
	c.Check(u8, Equals, uint8(1))
	u16, err := p.ReadUint16()
	c.Assert(err, IsNil)
	c.Check(u16, Equals, uint16(0x0203))
	u32, err := p.ReadUint32()
	c.Assert(err, IsNil)
	c.Check(u32, Equals, uint32(0x04050607))
	c.Check(p.IsEnd(3), Equals, true)
	c.Check(p.IsEnd(), Equals, false)

	c.Assert(p.Skip(1), IsNil)
	c.Check(errors.Is(p.Skip(3), ErrParserOutOfBound), Equals, true)
	_, err = p.ReadUint32()
	c.Check(errors.Is(err, ErrParserOutOfBound), Equals, true)
	rest, err := p.ReadBytes(2)
	c.Assert(err, IsNil)
	c.Check(rest, DeepEquals, []byte{9, 10})
	c.Check(p.HasMore(), Equals, false)
	_, err = p.Peek()
	c.Check(errors.Is(err, ErrParserOutOfBound), Equals, true)

	_, err = NewBinaryParserFromHex("XYZ")
	c.Check(err, NotNil)
}

func (s *SerdesSuite) TestWriteFieldAndValue(c *C) {
	defs := definitions.Get()
	account, err := defs.GetFieldInstanceByFieldName("Account")
	c.Assert(err, IsNil)
	flags, err := defs.GetFieldInstanceByFieldName("Flags")
	c.Assert(err, IsNil)
	id := bytes.Repeat([]byte{0xAB}, 20)

	ser := NewBinarySerializer()
	c.Assert(ser.WriteFieldAndValue(flags, []byte{0, 0, 0, 1}, false), IsNil)
	c.Assert(ser.WriteFieldAndValue(account, id, false), IsNil)
	expected := append([]byte{0x22, 0, 0, 0, 1, 0x81, 20}, id...)
	c.Check(ser.GetSink(), DeepEquals, expected)

	ser = NewBinarySerializer()
	c.Assert(ser.WriteFieldAndValue(account, id, true), IsNil)
	c.Check(ser.GetSink(), DeepEquals, []byte{0x81, 0})
}

func (s *SerdesSuite) TestWriteLengthEncodedLarge(c *C) {
	ser := NewBinarySerializer()
	value := bytes.Repeat([]byte{1}, 193)
	c.Assert(ser.WriteLengthEncoded(value, true), IsNil)
	c.Check(ser.GetSink()[:2], DeepEquals, []byte{193, 0})
	c.Check(len(ser.GetSink()), Equals, 195)

	c.Check(errors.Is(ser.WriteLengthEncoded(make([]byte, 918745), true), ErrLengthPrefixTooLarge), Equals, true)
}
