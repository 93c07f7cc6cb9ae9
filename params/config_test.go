package params

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyswap/xrpl-codec/addresscodec"
)

func writeConfig(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestDecodeConfig(t *testing.T) {
	file := writeConfig(t, `
[Log]
File = "logs/xrplcodec.log"
RotationHours = 24
MaxAgeHours = 168

[Keypairs]
Algorithm = "ED25519"
TestNet = true
`)
	config, err := DecodeConfig(file)
	require.NoError(t, err)
	require.NotNil(t, config.Log)
	assert.Equal(t, "logs/xrplcodec.log", config.Log.File)
	assert.Equal(t, uint64(168), config.Log.MaxAgeHours)
	assert.Nil(t, config.Codec)

	SetConfig(config)
	defer SetConfig(nil)
	assert.Equal(t, addresscodec.ED25519, GetCryptoAlgorithm())
	assert.True(t, IsTestNet())
}

func TestDefaults(t *testing.T) {
	SetConfig(nil)
	assert.NotNil(t, GetConfig())
	assert.Equal(t, addresscodec.SECP256K1, GetCryptoAlgorithm())
	assert.False(t, IsTestNet())
}

func TestDecodeConfigErrors(t *testing.T) {
	_, err := DecodeConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = DecodeConfig(writeConfig(t, "[Log"))
	assert.Error(t, err)

	_, err = DecodeConfig(writeConfig(t, "[Keypairs]\nAlgorithm = \"rsa\""))
	assert.True(t, errors.Is(err, addresscodec.ErrUnknownAlgorithm))

	_, err = DecodeConfig(writeConfig(t, "[Log]\nRotationHours = 1"))
	assert.Error(t, err)

	_, err = DecodeConfig(writeConfig(t, "[Log]\nFile = \"a.log\"\nRotationHours = 24\nMaxAgeHours = 1"))
	assert.Error(t, err)

	_, err = DecodeConfig(writeConfig(t, "[Codec]\nDefinitionsFile = \"/nonexistent/definitions.json\""))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "definitions.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = DecodeConfig(writeConfig(t, "[Codec]\nDefinitionsFile = \""+filepath.ToSlash(bad)+"\""))
	assert.Error(t, err)
}

func TestVersionWithCommit(t *testing.T) {
	assert.Equal(t, "0.1.0", Version)
	assert.Equal(t, "0.1.0-0123abcd-20210101", VersionWithCommit("0123abcdef", "20210101"))
	assert.Equal(t, "0.1.0", VersionWithCommit("short", ""))
}
