package sigv4

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCreds = Credentials{AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "secret"}
	testTarget = Target{
		Bucket:    "mybucket",
		Region:    "us-east-1",
		ObjectKey: "profiles/u1/123-abc.png",
	}
	testReq     = Request{ContentType: "image/png", Expires: 3600}
	testInstant = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

var hexSignature = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestPresign_URLShape(t *testing.T) {
	raw := Presign(testCreds, testTarget, testReq, testInstant)

	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "mybucket.s3.us-east-1.amazonaws.com", u.Host)
	assert.Equal(t, "/profiles/u1/123-abc.png", u.Path)

	q := u.Query()
	assert.Equal(t, "AWS4-HMAC-SHA256", q.Get("X-Amz-Algorithm"))
	assert.Equal(t, "AKIDEXAMPLE/20240101/us-east-1/s3/aws4_request", q.Get("X-Amz-Credential"))
	assert.Equal(t, "20240101T000000Z", q.Get("X-Amz-Date"))
	assert.Equal(t, "3600", q.Get("X-Amz-Expires"))
	assert.Equal(t, "content-type;host", q.Get("X-Amz-SignedHeaders"))
	assert.Regexp(t, hexSignature, q.Get("X-Amz-Signature"))
}

func TestPresign_Deterministic(t *testing.T) {
	a := Presign(testCreds, testTarget, testReq, testInstant)
	b := Presign(testCreds, testTarget, testReq, testInstant)
	assert.Equal(t, a, b)
}

func TestPresign_ExpiryIsSignedAndEmitted(t *testing.T) {
	oneHour := Presign(testCreds, testTarget, testReq, testInstant)
	tenMin := Presign(testCreds, testTarget, Request{ContentType: "image/png", Expires: 600}, testInstant)

	qa, err := url.Parse(oneHour)
	require.NoError(t, err)
	qb, err := url.Parse(tenMin)
	require.NoError(t, err)

	assert.Equal(t, "3600", qa.Query().Get("X-Amz-Expires"))
	assert.Equal(t, "600", qb.Query().Get("X-Amz-Expires"))
	assert.NotEqual(t, qa.Query().Get("X-Amz-Signature"), qb.Query().Get("X-Amz-Signature"),
		"different expiries must not produce the same signature")
}

func TestPresign_ContentTypeChangesSignature(t *testing.T) {
	png := Presign(testCreds, testTarget, testReq, testInstant)
	jpeg := Presign(testCreds, testTarget, Request{ContentType: "image/jpeg", Expires: 3600}, testInstant)

	qa, _ := url.Parse(png)
	qb, _ := url.Parse(jpeg)
	assert.NotEqual(t, qa.Query().Get("X-Amz-Signature"), qb.Query().Get("X-Amz-Signature"))
}

// Reference computation following the protocol definition step by step,
// kept deliberately independent of the production assembly.
func TestPresign_SignatureMatchesReference(t *testing.T) {
	raw := Presign(testCreds, testTarget, testReq, testInstant)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	got := u.Query().Get("X-Amz-Signature")

	scope := "20240101/us-east-1/s3/aws4_request"
	query := url.Values{
		"X-Amz-Algorithm":     {"AWS4-HMAC-SHA256"},
		"X-Amz-Credential":    {"AKIDEXAMPLE/" + scope},
		"X-Amz-Date":          {"20240101T000000Z"},
		"X-Amz-Expires":       {"3600"},
		"X-Amz-SignedHeaders": {"content-type;host"},
	}.Encode()

	canonical := "PUT\n" +
		"/profiles/u1/123-abc.png\n" +
		query + "\n" +
		"content-type:image/png\n" +
		"host:mybucket.s3.us-east-1.amazonaws.com\n" +
		"\n" +
		"content-type;host\n" +
		"UNSIGNED-PAYLOAD"

	digest := sha256.Sum256([]byte(canonical))
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256",
		"20240101T000000Z",
		scope,
		hex.EncodeToString(digest[:]),
	}, "\n")

	kDate := hmacSHA256([]byte("AWS4secret"), "20240101")
	kRegion := hmacSHA256(kDate, "us-east-1")
	kService := hmacSHA256(kRegion, "s3")
	kSigning := hmacSHA256(kService, "aws4_request")
	want := hex.EncodeToString(hmacSHA256(kSigning, stringToSign))

	assert.Equal(t, want, got)
}

// Official derivation example from the AWS SigV4 documentation.
func TestSigningKey_AWSPublishedVector(t *testing.T) {
	key := signingKey("wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY", "20120215", "us-east-1", "iam")
	assert.Equal(t,
		"f4780e2d9f65fa895f9c67b32ce1baf0b0d8a43505a000a1a9e090d414db404d",
		hex.EncodeToString(key))
}

func TestPresign_EmittedQueryMatchesSignedQuery(t *testing.T) {
	raw := Presign(testCreds, testTarget, testReq, testInstant)
	u, err := url.Parse(raw)
	require.NoError(t, err)

	// Stripping the signature must reproduce exactly the query string that
	// was signed; any encoding drift here means S3 rejects the upload.
	q := u.Query()
	q.Del("X-Amz-Signature")
	signed := url.Values{}
	signed.Set("X-Amz-Algorithm", "AWS4-HMAC-SHA256")
	signed.Set("X-Amz-Credential", "AKIDEXAMPLE/20240101/us-east-1/s3/aws4_request")
	signed.Set("X-Amz-Date", "20240101T000000Z")
	signed.Set("X-Amz-Expires", "3600")
	signed.Set("X-Amz-SignedHeaders", "content-type;host")
	assert.Equal(t, signed.Encode(), q.Encode())
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://mybucket.s3.us-east-1.amazonaws.com/profiles/u1/123-abc.png",
		PublicURL(testTarget))
}

func TestPresign_MidnightBoundaryUsesSingleInstant(t *testing.T) {
	instant := time.Date(2024, 6, 30, 23, 59, 59, 999000000, time.UTC)
	raw := Presign(testCreds, testTarget, testReq, instant)
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "20240630T235959Z", q.Get("X-Amz-Date"))
	assert.True(t, strings.HasPrefix(q.Get("X-Amz-Credential"), "AKIDEXAMPLE/20240630/"),
		"date stamp must come from the same instant as the timestamp")
}
