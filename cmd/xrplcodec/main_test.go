package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyswap/xrpl-codec/binarycodec"
)

const offerCreate = `{"Account":"raD5qJMAShLeHZXf9wjUmo6vRK4arj9cF3","Fee":"10","Flags":0,"Sequence":103929,"SigningPubKey":"028472865AF4CB32AA285834B57576B7290AA8C31B459047DB27E16F418D6A7166","TakerGets":{"value":"1694.768","currency":"ILS","issuer":"rNPRNzBB92BVpAhhZr4iXDTveCgV5Pofm9"},"TakerPays":"98957503520","TransactionType":"OfferCreate","TxnSignature":"304502202ABE08D5E78D1E74A4C18F2714F64E87B8BD57444AFA5733109EB3C077077520022100DB335EE97386E4C0591CAC024D50E9230D8F171EEB901B5E5E4BD6D1E0AEF98C"}`

func TestParseJSONObjectKeepsNumbers(t *testing.T) {
	obj, err := parseJSONObject([]byte(offerCreate))
	require.NoError(t, err)
	encoded, err := binarycodec.Encode(obj)
	require.NoError(t, err)
	assert.Equal(t, "120007220000000024000195F9", encoded[:26])

	_, err = parseJSONObject([]byte("[1, 2]"))
	assert.Error(t, err)
	_, err = parseJSONObject([]byte("{"))
	assert.Error(t, err)
}

func TestCommandsRun(t *testing.T) {
	initApp()
	for _, args := range [][]string{
		{"xrplcodec", "encode", offerCreate},
		{"xrplcodec", "encode-for-signing", offerCreate},
		{"xrplcodec", "encode-for-multisigning", "--signer", "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf", offerCreate},
		{"xrplcodec", "seed", "--entropy", "71ED064155FFADFA38782C5E0158CB26"},
		{"xrplcodec", "seed", "--algorithm", "ed25519"},
		{"xrplcodec", "keypair", "--seed", "sp5fghtJtpUorTwvof1NpDXAzNwf5"},
		{"xrplcodec", "keypair", "--seed", "sp5fghtJtpUorTwvof1NpDXAzNwf5", "--validator"},
		{"xrplcodec", "address", "030D58EB48B4420B1F7B9DF55087E0E29FEF0E8468F9A6825B01CA2C361042D435"},
		{"xrplcodec", "xaddress", "--tag", "1", "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf"},
		{"xrplcodec", "xaddress", "XVLhHMPHU98es4dbozjVtdWzVrDjtV8xvjGQTYPiAx6gwDC"},
		{"xrplcodec", "sign", "--text", "--message", "test message", "--key", "EDB4C4E046826BD26190D09715FC31F4E6A728204EADD112905B08B14B7F15C4F3"},
		{"xrplcodec", "verify", "--text", "--message", "test message",
			"--key", "ED01FA53FA5A7E77798F882ECE20B1ABC00BB358A9E55A202D0D0676BD0CE37A63",
			"--signature", "CB199E1BFD4E3DAA105E4832EEDFA36413E1F44205E4EFB9E27E826044C21E3E2E848BBC8195E8959BADF887599B7310AD1B7047EF11B682E0D068F73749750E"},
		{"xrplcodec", "version"},
	} {
		assert.NoError(t, app.Run(args), args[1])
	}

	assert.Error(t, app.Run([]string{"xrplcodec", "decode", "12Z"}))
	assert.Error(t, app.Run([]string{"xrplcodec", "verify", "--text", "--message", "other",
		"--key", "ED01FA53FA5A7E77798F882ECE20B1ABC00BB358A9E55A202D0D0676BD0CE37A63",
		"--signature", "CB199E1BFD4E3DAA105E4832EEDFA36413E1F44205E4EFB9E27E826044C21E3E2E848BBC8195E8959BADF887599B7310AD1B7047EF11B682E0D068F73749750E"}))
}
