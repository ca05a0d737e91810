package cli

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	secp256k1 "github.com/rafaelescrich/secp256k1-keygen"
	"github.com/rafaelescrich/secp256k1-keygen/group"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeKeys(t *testing.T, out string) []keyRecord {
	t.Helper()
	var records []keyRecord
	dec := json.NewDecoder(bytes.NewBufferString(out))
	for {
		var rec keyRecord
		err := dec.Decode(&rec)
		if err == io.EOF {
			return records
		}
		require.NoError(t, err)
		records = append(records, rec)
	}
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "--count", "3", "--seed", "cli")
	require.NoError(t, err)

	records := decodeKeys(t, out)
	require.Len(t, records, 3)
	for _, rec := range records {
		privBytes, err := hex.DecodeString(rec.PrivateKey)
		require.NoError(t, err)
		priv, err := secp256k1.PrivateKeyFromBytes(privBytes)
		require.NoError(t, err)

		pubBytes, err := hex.DecodeString(rec.PublicKey)
		require.NoError(t, err)
		require.Len(t, pubBytes, 33)
		pub, err := secp256k1.ParsePublicKey(pubBytes)
		require.NoError(t, err)

		assert.True(t, pub.IsEqual(priv.PublicKey()))
		assert.Equal(t, hex.EncodeToString(pub.Hash160()), rec.Hash160)
	}

	again, _, err := run(t, "generate", "--count", "3", "--seed", "cli")
	require.NoError(t, err)
	assert.Equal(t, out, again, "seeded runs must be reproducible")
}

func TestGenerateOptions(t *testing.T) {
	plain, _, err := run(t, "generate", "--seed", "options")
	require.NoError(t, err)

	fast, _, err := run(t, "generate", "--seed", "options", "--precompute")
	require.NoError(t, err)
	assert.Equal(t, plain, fast)

	out, _, err := run(t, "generate", "--seed", "options", "--compressed=false")
	require.NoError(t, err)
	records := decodeKeys(t, out)
	require.Len(t, records, 1)
	assert.Len(t, records[0].PublicKey, 130)
	assert.Equal(t, "04", records[0].PublicKey[:2])
}

func TestGenerateFromEnvironment(t *testing.T) {
	t.Setenv("SECP256K1_KEYGEN_COUNT", "2")
	t.Setenv("SECP256K1_KEYGEN_LOG_FORMAT", "json")
	t.Setenv("SECP256K1_KEYGEN_LOG_LEVEL", "debug")

	out, logs, err := run(t, "generate")
	require.NoError(t, err)
	assert.Len(t, decodeKeys(t, out), 2)
	assert.Contains(t, logs, `"msg":"Generated key pair"`)
	assert.NotContains(t, logs, "private_key")
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, _, err := run(t, "generate", "--count", "0")
	assert.EqualError(t, err, "count must be positive, got 0")

	_, _, err = run(t, "generate", "--log-format", "xml")
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	out, _, err := run(t, "params")
	require.NoError(t, err)

	var rec paramsRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "secp256k1", rec.Name)
	assert.Equal(t, "0x"+secp256k1.N().Text(16), rec.N)
	assert.Equal(t, "0x7", rec.B)
	assert.Equal(t, 256, rec.BitSize)
}

func TestCheckEncodedKey(t *testing.T) {
	g := group.Secp256k1().Generator()

	out, _, err := run(t, "check", hex.EncodeToString(g.SerializeCompressed()))
	require.NoError(t, err)
	var rec checkRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.True(t, rec.OnCurve)
	assert.Equal(t, secp256k1.Gy().String(), rec.Y)
	assert.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", rec.Hash160)

	bad := g.SerializeUncompressed()
	bad[64] ^= 0x01
	_, _, err = run(t, "check", hex.EncodeToString(bad))
	assert.True(t, errors.Is(err, group.ErrCurveViolation), "got %v", err)

	_, _, err = run(t, "check", "zz")
	assert.Error(t, err)
}

func TestCheckCoordinates(t *testing.T) {
	x := "38691711181538895418159153243459074037181781406247798684369213484306497014884"
	y := "52700585418916410786512382566155139688549611752353407161567662246516672768510"

	out, _, err := run(t, "check", "--x", x, "--y", y)
	require.NoError(t, err)
	assert.Contains(t, out, `"on_curve":true`)

	out, _, err = run(t, "check", "--x", x, "--y", "1")
	assert.True(t, errors.Is(err, group.ErrCurveViolation))
	assert.Contains(t, out, `"on_curve":false`)

	_, _, err = run(t, "check", "--x", x)
	assert.Error(t, err)
}
